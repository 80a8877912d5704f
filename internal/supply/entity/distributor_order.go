package entity

import (
	"time"
)

// DistributorOrder 分销订单（零售商→分销商补货）
type DistributorOrder struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderNumber   string    `json:"order_number" gorm:"size:30;not null;uniqueIndex"`
	OrderDate     time.Time `json:"order_date"`
	SellerID      string    `json:"seller_id" gorm:"type:uuid;not null;index"`
	DistributorID string    `json:"distributor_id" gorm:"type:uuid;not null;index"`
	Status        string    `json:"status" gorm:"size:20;not null;default:Pending"`
	TotalAmount   float64   `json:"total_amount" gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Seller      *User                  `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	Distributor *User                  `json:"distributor,omitempty" gorm:"foreignKey:DistributorID"`
	Items       []DistributorOrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (DistributorOrder) TableName() string {
	return "distributor_orders"
}

// DistributorOrderItem 分销订单明细
type DistributorOrderItem struct {
	ID             string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderID        string  `json:"order_id" gorm:"type:uuid;not null;index"`
	BlanketModelID string  `json:"blanket_model_id" gorm:"type:uuid;not null"`
	Quantity       int     `json:"quantity" gorm:"not null"`
	UnitPrice      float64 `json:"unit_price" gorm:"type:decimal(12,2);not null"`

	BlanketModel *BlanketModel `json:"blanket_model,omitempty" gorm:"foreignKey:BlanketModelID"`
}

func (DistributorOrderItem) TableName() string {
	return "distributor_order_items"
}
