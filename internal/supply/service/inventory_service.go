package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"github.com/cozycomfort/supply-api/internal/supply/repository"
)

type InventoryService struct {
	inventoryRepo *repository.InventoryRepository
}

func NewInventoryService(inventoryRepo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// SetQuantityRequest 直接设置库存数量，不做取值校验，调用方给什么存什么
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// --- 制造商库存 ---

func (s *InventoryService) ListManufacturer() ([]entity.ManufacturerInventory, error) {
	return s.inventoryRepo.ListManufacturer()
}

func (s *InventoryService) SetManufacturerQuantity(modelID string, quantity int) (*entity.ManufacturerInventory, error) {
	row, err := s.inventoryRepo.GetManufacturerByModel(modelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询制造商库存失败: %w", err)
	}
	row.Quantity = quantity
	row.LastUpdated = time.Now().UTC()
	if err := s.inventoryRepo.UpdateManufacturer(row); err != nil {
		return nil, fmt.Errorf("更新制造商库存失败: %w", err)
	}
	return row, nil
}

// --- 分销商库存 ---

func (s *InventoryService) ListDistributor(distributorID string) ([]entity.DistributorInventory, error) {
	return s.inventoryRepo.ListDistributor(distributorID)
}

func (s *InventoryService) SetDistributorQuantity(distributorID, modelID string, quantity int) (*entity.DistributorInventory, error) {
	row, err := s.inventoryRepo.GetDistributorByModel(distributorID, modelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询分销商库存失败: %w", err)
	}
	row.Quantity = quantity
	row.LastUpdated = time.Now().UTC()
	if err := s.inventoryRepo.UpdateDistributor(row); err != nil {
		return nil, fmt.Errorf("更新分销商库存失败: %w", err)
	}
	return row, nil
}

// --- 零售商库存 ---

func (s *InventoryService) ListSeller(sellerID string) ([]entity.SellerInventory, error) {
	return s.inventoryRepo.ListSeller(sellerID)
}

func (s *InventoryService) SetSellerQuantity(sellerID, modelID string, quantity int) (*entity.SellerInventory, error) {
	row, err := s.inventoryRepo.GetSellerByModel(sellerID, modelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询零售商库存失败: %w", err)
	}
	row.Quantity = quantity
	row.LastUpdated = time.Now().UTC()
	if err := s.inventoryRepo.UpdateSeller(row); err != nil {
		return nil, fmt.Errorf("更新零售商库存失败: %w", err)
	}
	return row, nil
}
