package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cozycomfort/supply-api/internal/supply/service"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Create POST /orders [Customer, Seller]
func (h *OrderHandler) Create(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	order, err := h.svc.Create(req, GetUserID(c), GetUserRole(c))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Created(c, order)
}

// List GET /orders — 客户看自己的，零售商看本店的
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List(GetUserID(c), GetUserRole(c))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, orders)
}

// GetByID GET /orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	order, err := h.svc.GetByID(c.Param("id"), GetUserID(c), GetUserRole(c))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, order)
}

// UpdateStatus PUT /orders/:id/status [Customer, Seller]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	order, err := h.svc.UpdateStatus(c.Param("id"), req.Status, GetUserID(c), GetUserRole(c))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, order)
}
