package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cozycomfort/supply-api/internal/supply/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	user, err := h.svc.Register(req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Created(c, user)
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	resp, err := h.svc.Login(req)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	Success(c, resp)
}

// Me GET /auth/me — 直接回显令牌身份，不查库
func (h *AuthHandler) Me(c *gin.Context) {
	Success(c, gin.H{
		"id":       GetUserID(c),
		"username": GetUsername(c),
		"role":     GetUserRole(c),
	})
}
