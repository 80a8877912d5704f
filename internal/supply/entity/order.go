package entity

import (
	"time"
)

// 订单状态（客户订单与分销订单共用）
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// ValidOrderTransitions 状态转换表。Delivered 和 Cancelled 为终态。
var ValidOrderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// CanTransition 判断 from 状态能否转换到 to
func CanTransition(from, to string) bool {
	for _, s := range ValidOrderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CustomerOrder 客户订单（客户→零售商）
type CustomerOrder struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderNumber     string    `json:"order_number" gorm:"size:30;not null;uniqueIndex"`
	OrderDate       time.Time `json:"order_date"`
	CustomerID      *string   `json:"customer_id" gorm:"type:uuid;index"`
	SellerID        string    `json:"seller_id" gorm:"type:uuid;not null;index"`
	Status          string    `json:"status" gorm:"size:20;not null;default:Pending"`
	TotalAmount     float64   `json:"total_amount" gorm:"type:decimal(12,2);not null;default:0"`
	ShippingAddress string    `json:"shipping_address" gorm:"type:text"`
	ContactPhone    string    `json:"contact_phone" gorm:"size:20"`
	Notes           string    `json:"notes" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Customer *User               `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Seller   *User               `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	Items    []CustomerOrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (CustomerOrder) TableName() string {
	return "customer_orders"
}

// CustomerOrderItem 客户订单明细，单价在创建时锁定
type CustomerOrderItem struct {
	ID             string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderID        string  `json:"order_id" gorm:"type:uuid;not null;index"`
	BlanketModelID string  `json:"blanket_model_id" gorm:"type:uuid;not null"`
	Quantity       int     `json:"quantity" gorm:"not null"`
	UnitPrice      float64 `json:"unit_price" gorm:"type:decimal(12,2);not null"`

	BlanketModel *BlanketModel `json:"blanket_model,omitempty" gorm:"foreignKey:BlanketModelID"`
}

func (CustomerOrderItem) TableName() string {
	return "customer_order_items"
}
