package entity

import (
	"time"
)

// DefaultDailyCapacity 新产品的默认日产能
const DefaultDailyCapacity = 100

// ProductionCapacity 产能记录：每产品的日产能与在产队列
type ProductionCapacity struct {
	ID                     string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	BlanketModelID         string    `json:"blanket_model_id" gorm:"type:uuid;not null;uniqueIndex"`
	DailyCapacity          int       `json:"daily_capacity" gorm:"not null;default:0"`
	CurrentProductionQueue int       `json:"current_production_queue" gorm:"not null;default:0"`
	LastUpdated            time.Time `json:"last_updated"`

	BlanketModel *BlanketModel `json:"blanket_model,omitempty" gorm:"foreignKey:BlanketModelID"`
}

func (ProductionCapacity) TableName() string {
	return "production_capacities"
}

// Available 返回未占用的日产能
func (p *ProductionCapacity) Available() int {
	return p.DailyCapacity - p.CurrentProductionQueue
}
