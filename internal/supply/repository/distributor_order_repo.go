package repository

import (
	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"gorm.io/gorm"
)

type DistributorOrderRepository struct {
	db *gorm.DB
}

func NewDistributorOrderRepository(db *gorm.DB) *DistributorOrderRepository {
	return &DistributorOrderRepository{db: db}
}

func (r *DistributorOrderRepository) GetByID(id string) (*entity.DistributorOrder, error) {
	var order entity.DistributorOrder
	err := r.db.Preload("Seller").Preload("Distributor").
		Preload("Items").Preload("Items.BlanketModel").
		Where("id = ?", id).First(&order).Error
	return &order, err
}

// ListBySeller 列出零售商发出的补货订单
func (r *DistributorOrderRepository) ListBySeller(sellerID string) ([]entity.DistributorOrder, error) {
	var orders []entity.DistributorOrder
	err := r.db.Preload("Seller").Preload("Distributor").
		Preload("Items").Preload("Items.BlanketModel").
		Where("seller_id = ?", sellerID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// ListByDistributor 列出分销商收到的补货订单
func (r *DistributorOrderRepository) ListByDistributor(distributorID string) ([]entity.DistributorOrder, error) {
	var orders []entity.DistributorOrder
	err := r.db.Preload("Seller").Preload("Distributor").
		Preload("Items").Preload("Items.BlanketModel").
		Where("distributor_id = ?", distributorID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}
