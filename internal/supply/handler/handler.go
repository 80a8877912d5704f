package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/cozycomfort/supply-api/internal/supply/service"
)

// Handlers 处理器集合
type Handlers struct {
	Auth              *AuthHandler
	User              *UserHandler
	Blanket           *BlanketHandler
	Inventory         *InventoryHandler
	Production        *ProductionHandler
	Order             *OrderHandler
	DistributorOrder  *DistributorOrderHandler
	ManufacturerOrder *ManufacturerOrderHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:              NewAuthHandler(services.Auth),
		User:              NewUserHandler(services.User),
		Blanket:           NewBlanketHandler(services.Catalog),
		Inventory:         NewInventoryHandler(services.Inventory),
		Production:        NewProductionHandler(services.Production),
		Order:             NewOrderHandler(services.Order),
		DistributorOrder:  NewDistributorOrderHandler(services.DistributorOrder),
		ManufacturerOrder: NewManufacturerOrderHandler(services.ManufacturerOrder),
	}
}

// === 响应辅助函数 ===

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 40300, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// HandleServiceError 按哨兵错误映射 HTTP 状态码
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		Forbidden(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		Unauthorized(c, "invalid username or password")
	case errors.Is(err, service.ErrDuplicateUser),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrInsufficientInventory),
		errors.Is(err, service.ErrInsufficientCapacity),
		errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrInvalidProduct),
		errors.Is(err, service.ErrInvalidRole):
		BadRequest(c, err.Error())
	default:
		InternalError(c, err.Error())
	}
}

func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

func GetUserRole(c *gin.Context) string {
	role, _ := c.Get("role")
	if r, ok := role.(string); ok {
		return r
	}
	return ""
}

func GetUsername(c *gin.Context) string {
	username, _ := c.Get("username")
	if u, ok := username.(string); ok {
		return u
	}
	return ""
}
