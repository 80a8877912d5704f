package repository

import (
	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"gorm.io/gorm"
)

type ManufacturerOrderRepository struct {
	db *gorm.DB
}

func NewManufacturerOrderRepository(db *gorm.DB) *ManufacturerOrderRepository {
	return &ManufacturerOrderRepository{db: db}
}

func (r *ManufacturerOrderRepository) GetByID(id string) (*entity.ManufacturerOrder, error) {
	var order entity.ManufacturerOrder
	err := r.db.Preload("Distributor").Preload("ApprovedByUser").
		Preload("Items").Preload("Items.BlanketModel").
		Where("id = ?", id).First(&order).Error
	return &order, err
}

// List 列出全部生产订单（制造商视角）
func (r *ManufacturerOrderRepository) List() ([]entity.ManufacturerOrder, error) {
	var orders []entity.ManufacturerOrder
	err := r.db.Preload("Distributor").Preload("ApprovedByUser").
		Preload("Items").Preload("Items.BlanketModel").
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// ListByDistributor 列出分销商发出的生产订单
func (r *ManufacturerOrderRepository) ListByDistributor(distributorID string) ([]entity.ManufacturerOrder, error) {
	var orders []entity.ManufacturerOrder
	err := r.db.Preload("Distributor").Preload("ApprovedByUser").
		Preload("Items").Preload("Items.BlanketModel").
		Where("distributor_id = ?", distributorID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}
