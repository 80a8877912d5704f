package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cozycomfort/supply-api/internal/supply/service"
)

type DistributorOrderHandler struct {
	svc *service.DistributorOrderService
}

func NewDistributorOrderHandler(svc *service.DistributorOrderService) *DistributorOrderHandler {
	return &DistributorOrderHandler{svc: svc}
}

// Create POST /distributororders [Seller]
func (h *DistributorOrderHandler) Create(c *gin.Context) {
	var req service.CreateDistributorOrderRequest
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

// List GET /distributororders — 按零售商或分销商身份过滤
func (h *DistributorOrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List(GetUserID(c), GetUserRole(c))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, orders)
}

// GetByID GET /distributororders/:id
func (h *DistributorOrderHandler) GetByID(c *gin.Context) {
	order, err := h.svc.GetByID(c.Param("id"), GetUserID(c), GetUserRole(c))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, order)
}

// UpdateStatus PUT /distributororders/:id/status [Seller, Distributor]
func (h *DistributorOrderHandler) UpdateStatus(c *gin.Context) {
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
