package entity

import "gorm.io/gorm"

// AutoMigrate 迁移所有供应链表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// 基础数据
		&Role{},
		&User{},
		&BlanketModel{},

		// 库存
		&ManufacturerInventory{},
		&DistributorInventory{},
		&SellerInventory{},

		// 生产
		&ProductionCapacity{},

		// 订单
		&CustomerOrder{},
		&CustomerOrderItem{},
		&DistributorOrder{},
		&DistributorOrderItem{},
		&ManufacturerOrder{},
		&ManufacturerOrderItem{},
	)
}

// SeedRoles 初始化固定角色，可重复执行
func SeedRoles(db *gorm.DB) error {
	for _, name := range RoleNames {
		var count int64
		if err := db.Model(&Role{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&Role{Name: name}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
