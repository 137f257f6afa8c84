package operator

import (
	"fmt"

	"gorm.io/gorm"
)

// PrimeDB 负责初始化operator模块的数据库表结构。
// AutoMigrate是幂等的：表不存在时建表，
// 面对旧版本数据库时只做增量加列（例如补上updated_at），不破坏已有数据。
func PrimeDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&Operator{}); err != nil {
		return fmt.Errorf("无法迁移operator表: %w", err)
	}
	fmt.Println("Operator数据库表迁移成功。")
	return nil
}
