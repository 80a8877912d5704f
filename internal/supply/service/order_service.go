package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"github.com/cozycomfort/supply-api/internal/supply/repository"
)

type OrderService struct {
	db          *gorm.DB
	orderRepo   *repository.OrderRepository
	blanketRepo *repository.BlanketRepository
	userRepo    *repository.UserRepository
}

func NewOrderService(db *gorm.DB, orderRepo *repository.OrderRepository, blanketRepo *repository.BlanketRepository, userRepo *repository.UserRepository) *OrderService {
	return &OrderService{db: db, orderRepo: orderRepo, blanketRepo: blanketRepo, userRepo: userRepo}
}

type CreateOrderItem struct {
	BlanketModelID string `json:"blanket_model_id" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	SellerID        string            `json:"seller_id" binding:"required"`
	ShippingAddress string            `json:"shipping_address"`
	ContactPhone    string            `json:"contact_phone"`
	Notes           string            `json:"notes"`
	Items           []CreateOrderItem `json:"items" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create 创建客户订单。客户下单时买方取自令牌；零售商可代录无账号客户的订单。
func (s *OrderService) Create(req CreateOrderRequest, callerID, callerRole string) (*entity.CustomerOrder, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	seller, err := s.userRepo.GetByID(req.SellerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: seller %s", ErrNotFound, req.SellerID)
		}
		return nil, fmt.Errorf("查询零售商失败: %w", err)
	}
	if seller.Role == nil || seller.Role.Name != entity.RoleSeller {
		return nil, fmt.Errorf("%w: %s is not a seller", ErrInvalidProduct, req.SellerID)
	}

	var customerID *string
	switch callerRole {
	case entity.RoleCustomer:
		id := callerID
		customerID = &id
	case entity.RoleSeller:
		// 零售商代录订单：必须是本店订单，买方留空
		if callerID != req.SellerID {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}

	order := &entity.CustomerOrder{
		OrderNumber:     newOrderNumber(OrderPrefixCustomer),
		OrderDate:       time.Now().UTC(),
		CustomerID:      customerID,
		SellerID:        req.SellerID,
		Status:          entity.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		ContactPhone:    req.ContactPhone,
		Notes:           req.Notes,
	}

	var total float64
	for _, item := range req.Items {
		bm, err := s.blanketRepo.GetByID(item.BlanketModelID)
		if err != nil || !bm.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrInvalidProduct, item.BlanketModelID)
		}
		total += float64(item.Quantity) * bm.RetailPrice
		order.Items = append(order.Items, entity.CustomerOrderItem{
			BlanketModelID: item.BlanketModelID,
			Quantity:       item.Quantity,
			UnitPrice:      bm.RetailPrice,
		})
	}
	order.TotalAmount = total

	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("创建客户订单失败: %w", err)
	}
	return s.orderRepo.GetByID(order.ID)
}

// List 按调用方身份过滤：客户看自己的购买记录，零售商看本店销售
func (s *OrderService) List(callerID, callerRole string) ([]entity.CustomerOrder, error) {
	switch callerRole {
	case entity.RoleCustomer:
		return s.orderRepo.ListByCustomer(callerID)
	case entity.RoleSeller:
		return s.orderRepo.ListBySeller(callerID)
	default:
		return nil, ErrForbidden
	}
}

func (s *OrderService) GetByID(id, callerID, callerRole string) (*entity.CustomerOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询客户订单失败: %w", err)
	}
	if !s.canAccess(order, callerID, callerRole) {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *OrderService) canAccess(order *entity.CustomerOrder, callerID, callerRole string) bool {
	switch callerRole {
	case entity.RoleSeller:
		return order.SellerID == callerID
	case entity.RoleCustomer:
		return order.CustomerID != nil && *order.CustomerID == callerID
	default:
		return false
	}
}

// UpdateStatus 订单当事人（零售商或下单客户）推进订单状态。
// 转为 Delivered 时在同一事务内扣减零售商库存，
// 任一明细缺行或库存不足则整单失败且不落任何变更。
func (s *OrderService) UpdateStatus(id, newStatus, callerID, callerRole string) (*entity.CustomerOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询客户订单失败: %w", err)
	}
	if !s.canAccess(order, callerID, callerRole) {
		return nil, ErrForbidden
	}
	if !entity.CanTransition(order.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, newStatus)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if newStatus == entity.OrderStatusDelivered {
			for _, item := range order.Items {
				var inv entity.SellerInventory
				if err := tx.Where("seller_id = ? AND blanket_model_id = ?", order.SellerID, item.BlanketModelID).
					First(&inv).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("%w: %s", ErrInsufficientInventory, productName(item.BlanketModel, item.BlanketModelID))
					}
					return err
				}
				if inv.Quantity < item.Quantity {
					return fmt.Errorf("%w: %s", ErrInsufficientInventory, productName(item.BlanketModel, item.BlanketModelID))
				}
				inv.Quantity -= item.Quantity
				inv.LastUpdated = time.Now().UTC()
				if err := tx.Save(&inv).Error; err != nil {
					return err
				}
			}
		}
		return tx.Model(&entity.CustomerOrder{}).Where("id = ?", order.ID).
			Update("status", newStatus).Error
	})
	if err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(order.ID)
}

func productName(bm *entity.BlanketModel, fallbackID string) string {
	if bm != nil && bm.Name != "" {
		return bm.Name
	}
	return fallbackID
}
