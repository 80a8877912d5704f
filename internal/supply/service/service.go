package service

import (
	"gorm.io/gorm"

	"github.com/cozycomfort/supply-api/internal/config"
	"github.com/cozycomfort/supply-api/internal/supply/cache"
	"github.com/cozycomfort/supply-api/internal/supply/repository"
)

// Services 业务服务集合
type Services struct {
	Auth              *AuthService
	User              *UserService
	Catalog           *CatalogService
	Inventory         *InventoryService
	Production        *ProductionService
	Order             *OrderService
	DistributorOrder  *DistributorOrderService
	ManufacturerOrder *ManufacturerOrderService
}

func NewServices(db *gorm.DB, repos *repository.Repositories, blanketCache *cache.BlanketCache, jwtCfg config.JWTConfig) *Services {
	return &Services{
		Auth:              NewAuthService(repos.User, jwtCfg),
		User:              NewUserService(repos.User),
		Catalog:           NewCatalogService(repos.Blanket, blanketCache),
		Inventory:         NewInventoryService(repos.Inventory),
		Production:        NewProductionService(repos.Production),
		Order:             NewOrderService(db, repos.Order, repos.Blanket, repos.User),
		DistributorOrder:  NewDistributorOrderService(db, repos.DistributorOrder, repos.Blanket, repos.User),
		ManufacturerOrder: NewManufacturerOrderService(db, repos.ManufacturerOrder, repos.Blanket),
	}
}
