package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cozycomfort/supply-api/internal/supply/cache"
	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"github.com/cozycomfort/supply-api/internal/supply/repository"
)

type CatalogService struct {
	blanketRepo  *repository.BlanketRepository
	blanketCache *cache.BlanketCache
}

func NewCatalogService(blanketRepo *repository.BlanketRepository, blanketCache *cache.BlanketCache) *CatalogService {
	return &CatalogService{blanketRepo: blanketRepo, blanketCache: blanketCache}
}

type CreateBlanketRequest struct {
	Name              string  `json:"name" binding:"required,max=100"`
	Description       string  `json:"description"`
	Material          string  `json:"material"`
	Size              string  `json:"size"`
	Weight            float64 `json:"weight"`
	ManufacturerPrice float64 `json:"manufacturer_price" binding:"required,gt=0"`
	RetailPrice       float64 `json:"retail_price" binding:"required,gt=0"`
	ImageURL          string  `json:"image_url"`
}

type UpdateBlanketRequest struct {
	Name              string  `json:"name" binding:"required,max=100"`
	Description       string  `json:"description"`
	Material          string  `json:"material"`
	Size              string  `json:"size"`
	Weight            float64 `json:"weight"`
	ManufacturerPrice float64 `json:"manufacturer_price" binding:"required,gt=0"`
	RetailPrice       float64 `json:"retail_price" binding:"required,gt=0"`
	ImageURL          string  `json:"image_url"`
	IsActive          bool    `json:"is_active"`
}

// Create 新建产品，同一事务内初始化制造商库存与产能
func (s *CatalogService) Create(ctx context.Context, req CreateBlanketRequest) (*entity.BlanketModel, error) {
	bm := &entity.BlanketModel{
		Name:              req.Name,
		Description:       req.Description,
		Material:          req.Material,
		Size:              req.Size,
		Weight:            req.Weight,
		ManufacturerPrice: req.ManufacturerPrice,
		RetailPrice:       req.RetailPrice,
		ImageURL:          req.ImageURL,
		IsActive:          true,
	}
	if err := s.blanketRepo.CreateWithSeeds(bm); err != nil {
		return nil, fmt.Errorf("创建产品失败: %w", err)
	}
	s.blanketCache.Invalidate(ctx, "")
	return bm, nil
}

func (s *CatalogService) List(ctx context.Context) ([]entity.BlanketModel, error) {
	return s.blanketCache.ListActive(ctx)
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*entity.BlanketModel, error) {
	bm, err := s.blanketCache.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询产品失败: %w", err)
	}
	if !bm.IsActive {
		return nil, ErrNotFound
	}
	return bm, nil
}

// Update 整体替换产品字段，激活标志也在其中，可重新上架已下架的产品
func (s *CatalogService) Update(ctx context.Context, id string, req UpdateBlanketRequest) (*entity.BlanketModel, error) {
	bm, err := s.blanketRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询产品失败: %w", err)
	}

	bm.Name = req.Name
	bm.Description = req.Description
	bm.Material = req.Material
	bm.Size = req.Size
	bm.Weight = req.Weight
	bm.ManufacturerPrice = req.ManufacturerPrice
	bm.RetailPrice = req.RetailPrice
	bm.ImageURL = req.ImageURL
	bm.IsActive = req.IsActive

	if err := s.blanketRepo.Update(bm); err != nil {
		return nil, fmt.Errorf("更新产品失败: %w", err)
	}
	s.blanketCache.Invalidate(ctx, id)
	return bm, nil
}

// Deactivate 软删除：仅置 is_active=false，历史订单与库存保留
func (s *CatalogService) Deactivate(ctx context.Context, id string) error {
	bm, err := s.blanketRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("查询产品失败: %w", err)
	}
	if !bm.IsActive {
		return ErrNotFound
	}
	bm.IsActive = false
	if err := s.blanketRepo.Update(bm); err != nil {
		return fmt.Errorf("下架产品失败: %w", err)
	}
	s.blanketCache.Invalidate(ctx, id)
	return nil
}
