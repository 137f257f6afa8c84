package record

import (
	"fmt"

	"gorm.io/gorm"
)

// PrimeDB 负责初始化journal模块的数据库表结构，迁移是幂等的
func PrimeDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&CalculationRecord{}, &ImportRecord{}); err != nil {
		return fmt.Errorf("无法迁移journal表: %w", err)
	}
	fmt.Println("Journal数据库表迁移成功。")
	return nil
}
