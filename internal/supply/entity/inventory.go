package entity

import (
	"time"
)

// ManufacturerInventory 制造商库存，每个产品一行，创建产品时初始化
type ManufacturerInventory struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	BlanketModelID string    `json:"blanket_model_id" gorm:"type:uuid;not null;uniqueIndex"`
	Quantity       int       `json:"quantity" gorm:"not null;default:0"`
	LastUpdated    time.Time `json:"last_updated"`

	BlanketModel *BlanketModel `json:"blanket_model,omitempty" gorm:"foreignKey:BlanketModelID"`
}

func (ManufacturerInventory) TableName() string {
	return "manufacturer_inventories"
}

// DistributorInventory 分销商库存，每个(分销商,产品)一行
type DistributorInventory struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	DistributorID  string    `json:"distributor_id" gorm:"type:uuid;not null;uniqueIndex:idx_distributor_model"`
	BlanketModelID string    `json:"blanket_model_id" gorm:"type:uuid;not null;uniqueIndex:idx_distributor_model"`
	Quantity       int       `json:"quantity" gorm:"not null;default:0"`
	LastUpdated    time.Time `json:"last_updated"`

	BlanketModel *BlanketModel `json:"blanket_model,omitempty" gorm:"foreignKey:BlanketModelID"`
}

func (DistributorInventory) TableName() string {
	return "distributor_inventories"
}

// SellerInventory 零售商库存，每个(零售商,产品)一行
type SellerInventory struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SellerID       string    `json:"seller_id" gorm:"type:uuid;not null;uniqueIndex:idx_seller_model"`
	BlanketModelID string    `json:"blanket_model_id" gorm:"type:uuid;not null;uniqueIndex:idx_seller_model"`
	Quantity       int       `json:"quantity" gorm:"not null;default:0"`
	LastUpdated    time.Time `json:"last_updated"`

	BlanketModel *BlanketModel `json:"blanket_model,omitempty" gorm:"foreignKey:BlanketModelID"`
}

func (SellerInventory) TableName() string {
	return "seller_inventories"
}
