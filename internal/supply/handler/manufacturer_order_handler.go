package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cozycomfort/supply-api/internal/supply/service"
)

type ManufacturerOrderHandler struct {
	svc *service.ManufacturerOrderService
}

func NewManufacturerOrderHandler(svc *service.ManufacturerOrderService) *ManufacturerOrderHandler {
	return &ManufacturerOrderHandler{svc: svc}
}

// Create POST /manufacturerorders [Distributor]
func (h *ManufacturerOrderHandler) Create(c *gin.Context) {
	var req service.CreateManufacturerOrderRequest
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

// List GET /manufacturerorders — 制造商看全部，分销商看自己的
func (h *ManufacturerOrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List(GetUserID(c), GetUserRole(c))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, orders)
}

// GetByID GET /manufacturerorders/:id
func (h *ManufacturerOrderHandler) GetByID(c *gin.Context) {
	order, err := h.svc.GetByID(c.Param("id"), GetUserID(c), GetUserRole(c))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, order)
}

// Approve PUT /manufacturerorders/:id/approve [Manufacturer]
func (h *ManufacturerOrderHandler) Approve(c *gin.Context) {
	order, err := h.svc.Approve(c.Param("id"), GetUserID(c))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, order)
}

// Complete PUT /manufacturerorders/:id/complete [Manufacturer]
func (h *ManufacturerOrderHandler) Complete(c *gin.Context) {
	order, err := h.svc.Complete(c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, order)
}
