package repository

import "gorm.io/gorm"

// Repositories 仓库集合
type Repositories struct {
	User              *UserRepository
	Blanket           *BlanketRepository
	Inventory         *InventoryRepository
	Production        *ProductionRepository
	Order             *OrderRepository
	DistributorOrder  *DistributorOrderRepository
	ManufacturerOrder *ManufacturerOrderRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:              NewUserRepository(db),
		Blanket:           NewBlanketRepository(db),
		Inventory:         NewInventoryRepository(db),
		Production:        NewProductionRepository(db),
		Order:             NewOrderRepository(db),
		DistributorOrder:  NewDistributorOrderRepository(db),
		ManufacturerOrder: NewManufacturerOrderRepository(db),
	}
}
