package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"github.com/cozycomfort/supply-api/internal/supply/repository"
)

type ProductionService struct {
	productionRepo *repository.ProductionRepository
}

func NewProductionService(productionRepo *repository.ProductionRepository) *ProductionService {
	return &ProductionService{productionRepo: productionRepo}
}

// UpdateCapacityRequest 整体替换产能记录，日产能可以为零（暂停生产）
type UpdateCapacityRequest struct {
	DailyCapacity          int `json:"daily_capacity" binding:"min=0"`
	CurrentProductionQueue int `json:"current_production_queue" binding:"min=0"`
}

func (s *ProductionService) List() ([]entity.ProductionCapacity, error) {
	return s.productionRepo.List()
}

func (s *ProductionService) GetByModel(modelID string) (*entity.ProductionCapacity, error) {
	row, err := s.productionRepo.GetByModel(modelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询产能失败: %w", err)
	}
	return row, nil
}

// UpdateCapacity 整体替换日产能与当前生产队列
func (s *ProductionService) UpdateCapacity(modelID string, req UpdateCapacityRequest) (*entity.ProductionCapacity, error) {
	row, err := s.productionRepo.GetByModel(modelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询产能失败: %w", err)
	}
	row.DailyCapacity = req.DailyCapacity
	row.CurrentProductionQueue = req.CurrentProductionQueue
	row.LastUpdated = time.Now().UTC()
	if err := s.productionRepo.Update(row); err != nil {
		return nil, fmt.Errorf("更新产能失败: %w", err)
	}
	return row, nil
}
