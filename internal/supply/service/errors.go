package service

import "errors"

// 业务哨兵错误，处理器据此映射 HTTP 状态码
var (
	ErrNotFound              = errors.New("resource not found")
	ErrForbidden             = errors.New("operation not permitted")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrDuplicateUser         = errors.New("username or email already taken")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrInsufficientCapacity  = errors.New("insufficient production capacity")
	ErrEmptyOrder            = errors.New("order must contain at least one item")
	ErrInvalidProduct        = errors.New("unknown or inactive product")
	ErrInvalidRole           = errors.New("invalid role")
)
