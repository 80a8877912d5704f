package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cozycomfort/supply-api/internal/supply/service"
)

type ProductionHandler struct {
	svc *service.ProductionService
}

func NewProductionHandler(svc *service.ProductionService) *ProductionHandler {
	return &ProductionHandler{svc: svc}
}

// List GET /production [Manufacturer]
func (h *ProductionHandler) List(c *gin.Context) {
	rows, err := h.svc.List()
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, rows)
}

// GetByModel GET /production/:productId [Manufacturer]
func (h *ProductionHandler) GetByModel(c *gin.Context) {
	row, err := h.svc.GetByModel(c.Param("productId"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, row)
}

// Update PUT /production/:productId [Manufacturer]
func (h *ProductionHandler) Update(c *gin.Context) {
	var req service.UpdateCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	row, err := h.svc.UpdateCapacity(c.Param("productId"), req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, row)
}
