package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"github.com/cozycomfort/supply-api/internal/supply/repository"
)

type ManufacturerOrderService struct {
	db          *gorm.DB
	orderRepo   *repository.ManufacturerOrderRepository
	blanketRepo *repository.BlanketRepository
}

func NewManufacturerOrderService(db *gorm.DB, orderRepo *repository.ManufacturerOrderRepository, blanketRepo *repository.BlanketRepository) *ManufacturerOrderService {
	return &ManufacturerOrderService{db: db, orderRepo: orderRepo, blanketRepo: blanketRepo}
}

type CreateManufacturerOrderRequest struct {
	Items []CreateOrderItem `json:"items" binding:"required"`
}

// Create 分销商向制造商发起生产订单，买方取自令牌
func (s *ManufacturerOrderService) Create(req CreateManufacturerOrderRequest, callerID, callerRole string) (*entity.ManufacturerOrder, error) {
	if callerRole != entity.RoleDistributor {
		return nil, ErrForbidden
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	order := &entity.ManufacturerOrder{
		OrderNumber:   newOrderNumber(OrderPrefixManufacturer),
		OrderDate:     time.Now().UTC(),
		DistributorID: callerID,
		Status:        entity.MfrOrderStatusPending,
	}

	var total float64
	for _, item := range req.Items {
		bm, err := s.blanketRepo.GetByID(item.BlanketModelID)
		if err != nil || !bm.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrInvalidProduct, item.BlanketModelID)
		}
		total += float64(item.Quantity) * bm.ManufacturerPrice
		order.Items = append(order.Items, entity.ManufacturerOrderItem{
			BlanketModelID: item.BlanketModelID,
			Quantity:       item.Quantity,
			UnitPrice:      bm.ManufacturerPrice,
		})
	}
	order.TotalAmount = total

	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("创建生产订单失败: %w", err)
	}
	return s.orderRepo.GetByID(order.ID)
}

// List 制造商看全部，分销商只看自己的
func (s *ManufacturerOrderService) List(callerID, callerRole string) ([]entity.ManufacturerOrder, error) {
	switch callerRole {
	case entity.RoleManufacturer:
		return s.orderRepo.List()
	case entity.RoleDistributor:
		return s.orderRepo.ListByDistributor(callerID)
	default:
		return nil, ErrForbidden
	}
}

func (s *ManufacturerOrderService) GetByID(id, callerID, callerRole string) (*entity.ManufacturerOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询生产订单失败: %w", err)
	}
	switch callerRole {
	case entity.RoleManufacturer:
	case entity.RoleDistributor:
		if order.DistributorID != callerID {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}
	return order, nil
}

// Approve 制造商批准生产订单。所有明细必须都有足够剩余产能，
// 否则整单失败且产能不变；成功时各明细数量计入生产队列并落批准人与时间。
func (s *ManufacturerOrderService) Approve(id, approverID string) (*entity.ManufacturerOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询生产订单失败: %w", err)
	}
	if order.Status != entity.MfrOrderStatusPending {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, entity.MfrOrderStatusApproved)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for _, item := range order.Items {
			var capacity entity.ProductionCapacity
			if err := tx.Where("blanket_model_id = ?", item.BlanketModelID).First(&capacity).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrInsufficientCapacity, productName(item.BlanketModel, item.BlanketModelID))
				}
				return err
			}
			if capacity.Available() < item.Quantity {
				return fmt.Errorf("%w: %s", ErrInsufficientCapacity, productName(item.BlanketModel, item.BlanketModelID))
			}
			capacity.CurrentProductionQueue += item.Quantity
			capacity.LastUpdated = now
			if err := tx.Save(&capacity).Error; err != nil {
				return err
			}
		}
		return tx.Model(&entity.ManufacturerOrder{}).Where("id = ?", order.ID).
			Updates(map[string]interface{}{
				"status":        entity.MfrOrderStatusApproved,
				"approved_by":   approverID,
				"approved_date": now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(order.ID)
}

// Complete 完成生产：制造商库存累加、生产队列扣减、分销商库存累加（缺行则新建）
func (s *ManufacturerOrderService) Complete(id string) (*entity.ManufacturerOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询生产订单失败: %w", err)
	}
	if order.Status != entity.MfrOrderStatusApproved {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, entity.MfrOrderStatusCompleted)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for _, item := range order.Items {
			var inv entity.ManufacturerInventory
			if err := tx.Where("blanket_model_id = ?", item.BlanketModelID).First(&inv).Error; err != nil {
				return fmt.Errorf("制造商库存缺失: %w", err)
			}
			inv.Quantity += item.Quantity
			inv.LastUpdated = now
			if err := tx.Save(&inv).Error; err != nil {
				return err
			}

			var capacity entity.ProductionCapacity
			if err := tx.Where("blanket_model_id = ?", item.BlanketModelID).First(&capacity).Error; err != nil {
				return fmt.Errorf("产能记录缺失: %w", err)
			}
			capacity.CurrentProductionQueue -= item.Quantity
			if capacity.CurrentProductionQueue < 0 {
				capacity.CurrentProductionQueue = 0
			}
			capacity.LastUpdated = now
			if err := tx.Save(&capacity).Error; err != nil {
				return err
			}

			var distInv entity.DistributorInventory
			err := tx.Where("distributor_id = ? AND blanket_model_id = ?", order.DistributorID, item.BlanketModelID).
				First(&distInv).Error
			switch {
			case err == nil:
				distInv.Quantity += item.Quantity
				distInv.LastUpdated = now
				if err := tx.Save(&distInv).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				distInv = entity.DistributorInventory{
					DistributorID:  order.DistributorID,
					BlanketModelID: item.BlanketModelID,
					Quantity:       item.Quantity,
					LastUpdated:    now,
				}
				if err := tx.Create(&distInv).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return tx.Model(&entity.ManufacturerOrder{}).Where("id = ?", order.ID).
			Update("status", entity.MfrOrderStatusCompleted).Error
	})
	if err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(order.ID)
}
