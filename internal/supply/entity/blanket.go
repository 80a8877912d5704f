package entity

import (
	"time"
)

// BlanketModel 毛毯型号（产品目录）。通过 IsActive 软删除，
// 保证历史订单的引用有效。
type BlanketModel struct {
	ID                string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name              string    `json:"name" gorm:"size:100;not null"`
	Description       string    `json:"description" gorm:"type:text"`
	Material          string    `json:"material" gorm:"size:100;not null"`
	Size              string    `json:"size" gorm:"size:50;not null"`
	Weight            float64   `json:"weight" gorm:"type:decimal(8,2);not null"`
	ManufacturerPrice float64   `json:"manufacturer_price" gorm:"type:decimal(12,2);not null"`
	RetailPrice       float64   `json:"retail_price" gorm:"type:decimal(12,2);not null"`
	ImageURL          string    `json:"image_url" gorm:"size:255"`
	IsActive          bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (BlanketModel) TableName() string {
	return "blanket_models"
}
