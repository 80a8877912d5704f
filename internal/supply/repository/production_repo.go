package repository

import (
	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"gorm.io/gorm"
)

type ProductionRepository struct {
	db *gorm.DB
}

func NewProductionRepository(db *gorm.DB) *ProductionRepository {
	return &ProductionRepository{db: db}
}

// List 列出所有激活产品的产能记录
func (r *ProductionRepository) List() ([]entity.ProductionCapacity, error) {
	var rows []entity.ProductionCapacity
	err := r.db.Preload("BlanketModel").
		Joins("JOIN blanket_models ON blanket_models.id = production_capacities.blanket_model_id").
		Where("blanket_models.is_active = ?", true).
		Find(&rows).Error
	return rows, err
}

func (r *ProductionRepository) GetByModel(modelID string) (*entity.ProductionCapacity, error) {
	var row entity.ProductionCapacity
	err := r.db.Where("blanket_model_id = ?", modelID).First(&row).Error
	return &row, err
}

func (r *ProductionRepository) Update(row *entity.ProductionCapacity) error {
	return r.db.Save(row).Error
}
