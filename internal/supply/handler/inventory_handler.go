package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cozycomfort/supply-api/internal/supply/service"
)

type InventoryHandler struct {
	svc *service.InventoryService
}

func NewInventoryHandler(svc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// ListManufacturer GET /inventory/manufacturer [Manufacturer]
func (h *InventoryHandler) ListManufacturer(c *gin.Context) {
	rows, err := h.svc.ListManufacturer()
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, rows)
}

// SetManufacturer PUT /inventory/manufacturer/:productId [Manufacturer]
func (h *InventoryHandler) SetManufacturer(c *gin.Context) {
	var req service.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	row, err := h.svc.SetManufacturerQuantity(c.Param("productId"), req.Quantity)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, row)
}

// ListDistributor GET /inventory/distributor [Distributor]
func (h *InventoryHandler) ListDistributor(c *gin.Context) {
	rows, err := h.svc.ListDistributor(GetUserID(c))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, rows)
}

// SetDistributor PUT /inventory/distributor/:productId [Distributor]
func (h *InventoryHandler) SetDistributor(c *gin.Context) {
	var req service.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	row, err := h.svc.SetDistributorQuantity(GetUserID(c), c.Param("productId"), req.Quantity)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, row)
}

// ListSeller GET /inventory/seller [Seller]
func (h *InventoryHandler) ListSeller(c *gin.Context) {
	rows, err := h.svc.ListSeller(GetUserID(c))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, rows)
}

// SetSeller PUT /inventory/seller/:productId [Seller]
func (h *InventoryHandler) SetSeller(c *gin.Context) {
	var req service.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	row, err := h.svc.SetSellerQuantity(GetUserID(c), c.Param("productId"), req.Quantity)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, row)
}
