package entity

import (
	"time"
)

// 生产订单状态：Pending → Approved → Completed，
// 由 approve/complete 接口驱动，不走通用状态更新。
const (
	MfrOrderStatusPending   = "Pending"
	MfrOrderStatusApproved  = "Approved"
	MfrOrderStatusCompleted = "Completed"
)

// ManufacturerOrder 生产订单（分销商→制造商）。由分销商直接创建，
// 或在分销订单进入 Processing 时因库存不足自动级联生成。
type ManufacturerOrder struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderNumber   string     `json:"order_number" gorm:"size:30;not null;uniqueIndex"`
	OrderDate     time.Time  `json:"order_date"`
	DistributorID string     `json:"distributor_id" gorm:"type:uuid;not null;index"`
	Status        string     `json:"status" gorm:"size:20;not null;default:Pending"`
	TotalAmount   float64    `json:"total_amount" gorm:"type:decimal(12,2);not null;default:0"`
	ApprovedDate  *time.Time `json:"approved_date"`
	ApprovedBy    *string    `json:"approved_by" gorm:"type:uuid"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Distributor    *User                   `json:"distributor,omitempty" gorm:"foreignKey:DistributorID"`
	ApprovedByUser *User                   `json:"approved_by_user,omitempty" gorm:"foreignKey:ApprovedBy"`
	Items          []ManufacturerOrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (ManufacturerOrder) TableName() string {
	return "manufacturer_orders"
}

// ManufacturerOrderItem 生产订单明细，按出厂价计价
type ManufacturerOrderItem struct {
	ID             string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderID        string  `json:"order_id" gorm:"type:uuid;not null;index"`
	BlanketModelID string  `json:"blanket_model_id" gorm:"type:uuid;not null"`
	Quantity       int     `json:"quantity" gorm:"not null"`
	UnitPrice      float64 `json:"unit_price" gorm:"type:decimal(12,2);not null"`

	BlanketModel *BlanketModel `json:"blanket_model,omitempty" gorm:"foreignKey:BlanketModelID"`
}

func (ManufacturerOrderItem) TableName() string {
	return "manufacturer_order_items"
}
