package entity

import (
	"time"
)

// 角色名称（种子数据，固定不变）
const (
	RoleManufacturer = "Manufacturer"
	RoleDistributor  = "Distributor"
	RoleSeller       = "Seller"
	RoleCustomer     = "Customer"
)

// RoleNames 所有角色名称，按种子顺序
var RoleNames = []string{RoleManufacturer, RoleDistributor, RoleSeller, RoleCustomer}

// Role 角色（静态字典表）
type Role struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Role) TableName() string {
	return "roles"
}

// User 用户账号，含凭证与可选的企业信息
type User struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Username      string    `json:"username" gorm:"size:50;not null;uniqueIndex"`
	Email         string    `json:"email" gorm:"size:100;not null;uniqueIndex"`
	PasswordHash  string    `json:"-" gorm:"size:100;not null"`
	RoleID        string    `json:"role_id" gorm:"type:uuid;not null;index"`
	BusinessName  string    `json:"business_name" gorm:"size:100"`
	ContactPerson string    `json:"contact_person" gorm:"size:100"`
	Phone         string    `json:"phone" gorm:"size:20"`
	Address       string    `json:"address" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Role *Role `json:"role,omitempty" gorm:"foreignKey:RoleID"`
}

func (User) TableName() string {
	return "users"
}
