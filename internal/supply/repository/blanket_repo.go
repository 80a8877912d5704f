package repository

import (
	"time"

	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"gorm.io/gorm"
)

type BlanketRepository struct {
	db *gorm.DB
}

func NewBlanketRepository(db *gorm.DB) *BlanketRepository {
	return &BlanketRepository{db: db}
}

// CreateWithSeeds 创建产品，并在同一事务内初始化制造商库存与产能记录
func (r *BlanketRepository) CreateWithSeeds(bm *entity.BlanketModel) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bm).Error; err != nil {
			return err
		}
		now := time.Now().UTC()
		inv := &entity.ManufacturerInventory{
			BlanketModelID: bm.ID,
			Quantity:       0,
			LastUpdated:    now,
		}
		if err := tx.Create(inv).Error; err != nil {
			return err
		}
		capacity := &entity.ProductionCapacity{
			BlanketModelID: bm.ID,
			DailyCapacity:  entity.DefaultDailyCapacity,
			LastUpdated:    now,
		}
		return tx.Create(capacity).Error
	})
}

func (r *BlanketRepository) GetByID(id string) (*entity.BlanketModel, error) {
	var bm entity.BlanketModel
	err := r.db.Where("id = ?", id).First(&bm).Error
	return &bm, err
}

func (r *BlanketRepository) ListActive() ([]entity.BlanketModel, error) {
	var models []entity.BlanketModel
	err := r.db.Where("is_active = ?", true).Order("created_at").Find(&models).Error
	return models, err
}

func (r *BlanketRepository) Update(bm *entity.BlanketModel) error {
	return r.db.Save(bm).Error
}
