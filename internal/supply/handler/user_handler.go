package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cozycomfort/supply-api/internal/supply/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ListDistributors GET /users/distributors
func (h *UserHandler) ListDistributors(c *gin.Context) {
	users, err := h.svc.ListDistributors()
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, users)
}

// ListSellers GET /users/sellers
func (h *UserHandler) ListSellers(c *gin.Context) {
	users, err := h.svc.ListSellers()
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, users)
}

// GetByID GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, user)
}
