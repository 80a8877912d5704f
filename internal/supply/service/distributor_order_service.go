package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"github.com/cozycomfort/supply-api/internal/supply/repository"
)

type DistributorOrderService struct {
	db          *gorm.DB
	orderRepo   *repository.DistributorOrderRepository
	blanketRepo *repository.BlanketRepository
	userRepo    *repository.UserRepository
}

func NewDistributorOrderService(db *gorm.DB, orderRepo *repository.DistributorOrderRepository, blanketRepo *repository.BlanketRepository, userRepo *repository.UserRepository) *DistributorOrderService {
	return &DistributorOrderService{db: db, orderRepo: orderRepo, blanketRepo: blanketRepo, userRepo: userRepo}
}

type CreateDistributorOrderRequest struct {
	DistributorID string            `json:"distributor_id" binding:"required"`
	Items         []CreateOrderItem `json:"items" binding:"required"`
}

// Create 零售商向分销商发起补货订单
func (s *DistributorOrderService) Create(req CreateDistributorOrderRequest, callerID, callerRole string) (*entity.DistributorOrder, error) {
	if callerRole != entity.RoleSeller {
		return nil, ErrForbidden
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	distributor, err := s.userRepo.GetByID(req.DistributorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: distributor %s", ErrNotFound, req.DistributorID)
		}
		return nil, fmt.Errorf("查询分销商失败: %w", err)
	}
	if distributor.Role == nil || distributor.Role.Name != entity.RoleDistributor {
		return nil, fmt.Errorf("%w: %s is not a distributor", ErrInvalidProduct, req.DistributorID)
	}

	order := &entity.DistributorOrder{
		OrderNumber:   newOrderNumber(OrderPrefixDistributor),
		OrderDate:     time.Now().UTC(),
		SellerID:      callerID,
		DistributorID: req.DistributorID,
		Status:        entity.OrderStatusPending,
	}

	var total float64
	for _, item := range req.Items {
		bm, err := s.blanketRepo.GetByID(item.BlanketModelID)
		if err != nil || !bm.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrInvalidProduct, item.BlanketModelID)
		}
		total += float64(item.Quantity) * bm.ManufacturerPrice
		order.Items = append(order.Items, entity.DistributorOrderItem{
			BlanketModelID: item.BlanketModelID,
			Quantity:       item.Quantity,
			UnitPrice:      bm.ManufacturerPrice,
		})
	}
	order.TotalAmount = total

	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("创建分销订单失败: %w", err)
	}
	return s.orderRepo.GetByID(order.ID)
}

func (s *DistributorOrderService) List(callerID, callerRole string) ([]entity.DistributorOrder, error) {
	switch callerRole {
	case entity.RoleSeller:
		return s.orderRepo.ListBySeller(callerID)
	case entity.RoleDistributor:
		return s.orderRepo.ListByDistributor(callerID)
	default:
		return nil, ErrForbidden
	}
}

func (s *DistributorOrderService) GetByID(id, callerID, callerRole string) (*entity.DistributorOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询分销订单失败: %w", err)
	}
	if !s.canAccess(order, callerID, callerRole) {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *DistributorOrderService) canAccess(order *entity.DistributorOrder, callerID, callerRole string) bool {
	switch callerRole {
	case entity.RoleSeller:
		return order.SellerID == callerID
	case entity.RoleDistributor:
		return order.DistributorID == callerID
	default:
		return false
	}
}

// UpdateStatus 推进分销订单状态。
// 分销商转为 Processing 时，自身库存不足的明细汇总为一张待处理生产订单；
// 转为 Delivered 时零售商库存累加、分销商库存扣减（最低归零）。
// 状态变更与全部级联在同一事务内完成。
func (s *DistributorOrderService) UpdateStatus(id, newStatus, callerID, callerRole string) (*entity.DistributorOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询分销订单失败: %w", err)
	}
	if !s.canAccess(order, callerID, callerRole) {
		return nil, ErrForbidden
	}
	if !entity.CanTransition(order.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, newStatus)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if newStatus == entity.OrderStatusProcessing && callerRole == entity.RoleDistributor {
			if err := s.createReplenishmentOrder(tx, order); err != nil {
				return err
			}
		}
		if newStatus == entity.OrderStatusDelivered {
			if err := s.settleDelivery(tx, order); err != nil {
				return err
			}
		}
		return tx.Model(&entity.DistributorOrder{}).Where("id = ?", order.ID).
			Update("status", newStatus).Error
	})
	if err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(order.ID)
}

// createReplenishmentOrder 把分销商库存覆盖不了的数量汇总成一张生产订单。
// 全部明细都有足够库存时不创建任何东西。
func (s *DistributorOrderService) createReplenishmentOrder(tx *gorm.DB, order *entity.DistributorOrder) error {
	var items []entity.ManufacturerOrderItem
	var total float64

	for _, item := range order.Items {
		var inv entity.DistributorInventory
		available := 0
		err := tx.Where("distributor_id = ? AND blanket_model_id = ?", order.DistributorID, item.BlanketModelID).
			First(&inv).Error
		if err == nil {
			available = inv.Quantity
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		shortfall := item.Quantity - available
		if shortfall <= 0 {
			continue
		}

		var bm entity.BlanketModel
		if err := tx.Where("id = ?", item.BlanketModelID).First(&bm).Error; err != nil {
			return err
		}
		total += float64(shortfall) * bm.ManufacturerPrice
		items = append(items, entity.ManufacturerOrderItem{
			BlanketModelID: item.BlanketModelID,
			Quantity:       shortfall,
			UnitPrice:      bm.ManufacturerPrice,
		})
	}

	if len(items) == 0 {
		return nil
	}

	mo := &entity.ManufacturerOrder{
		OrderNumber:   newOrderNumber(OrderPrefixManufacturer),
		OrderDate:     time.Now().UTC(),
		DistributorID: order.DistributorID,
		Status:        entity.MfrOrderStatusPending,
		TotalAmount:   total,
		Items:         items,
	}
	if err := tx.Create(mo).Error; err != nil {
		return fmt.Errorf("创建补货生产订单失败: %w", err)
	}
	return nil
}

// settleDelivery 交付结算：零售商侧按明细累加（缺行则新建），
// 分销商侧扣减且最低归零（缺行不动）。
func (s *DistributorOrderService) settleDelivery(tx *gorm.DB, order *entity.DistributorOrder) error {
	now := time.Now().UTC()
	for _, item := range order.Items {
		var sellerInv entity.SellerInventory
		err := tx.Where("seller_id = ? AND blanket_model_id = ?", order.SellerID, item.BlanketModelID).
			First(&sellerInv).Error
		switch {
		case err == nil:
			sellerInv.Quantity += item.Quantity
			sellerInv.LastUpdated = now
			if err := tx.Save(&sellerInv).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			sellerInv = entity.SellerInventory{
				SellerID:       order.SellerID,
				BlanketModelID: item.BlanketModelID,
				Quantity:       item.Quantity,
				LastUpdated:    now,
			}
			if err := tx.Create(&sellerInv).Error; err != nil {
				return err
			}
		default:
			return err
		}

		var distInv entity.DistributorInventory
		err = tx.Where("distributor_id = ? AND blanket_model_id = ?", order.DistributorID, item.BlanketModelID).
			First(&distInv).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		distInv.Quantity -= item.Quantity
		if distInv.Quantity < 0 {
			distInv.Quantity = 0
		}
		distInv.LastUpdated = now
		if err := tx.Save(&distInv).Error; err != nil {
			return err
		}
	}
	return nil
}
