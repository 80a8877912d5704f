package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cozycomfort/supply-api/internal/supply/service"
)

type BlanketHandler struct {
	svc *service.CatalogService
}

func NewBlanketHandler(svc *service.CatalogService) *BlanketHandler {
	return &BlanketHandler{svc: svc}
}

// List GET /blanketmodels（公开）
func (h *BlanketHandler) List(c *gin.Context) {
	models, err := h.svc.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, models)
}

// GetByID GET /blanketmodels/:id（公开）
func (h *BlanketHandler) GetByID(c *gin.Context) {
	bm, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, bm)
}

// Create POST /blanketmodels [Manufacturer]
func (h *BlanketHandler) Create(c *gin.Context) {
	var req service.CreateBlanketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	bm, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Created(c, bm)
}

// Update PUT /blanketmodels/:id [Manufacturer]
func (h *BlanketHandler) Update(c *gin.Context) {
	var req service.UpdateBlanketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	bm, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, bm)
}

// Delete DELETE /blanketmodels/:id [Manufacturer] — 软删除
func (h *BlanketHandler) Delete(c *gin.Context) {
	if err := h.svc.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, nil)
}
