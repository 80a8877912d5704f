package repository

import (
	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetByID(id string) (*entity.CustomerOrder, error) {
	var order entity.CustomerOrder
	err := r.db.Preload("Customer").Preload("Seller").
		Preload("Items").Preload("Items.BlanketModel").
		Where("id = ?", id).First(&order).Error
	return &order, err
}

// ListBySeller 列出指定零售商名下的客户订单
func (r *OrderRepository) ListBySeller(sellerID string) ([]entity.CustomerOrder, error) {
	var orders []entity.CustomerOrder
	err := r.db.Preload("Customer").Preload("Seller").
		Preload("Items").Preload("Items.BlanketModel").
		Where("seller_id = ?", sellerID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// ListByCustomer 列出指定客户提交的订单
func (r *OrderRepository) ListByCustomer(customerID string) ([]entity.CustomerOrder, error) {
	var orders []entity.CustomerOrder
	err := r.db.Preload("Customer").Preload("Seller").
		Preload("Items").Preload("Items.BlanketModel").
		Where("customer_id = ?", customerID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}
