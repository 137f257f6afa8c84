package record

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// CleanupResult 描述一次过期记录清理的结果
type CleanupResult struct {
	Success             bool   `json:"success"`
	Message             string `json:"message"`
	DeletedCalculations int64  `json:"deleted_calculations"`
	DeletedImports      int64  `json:"deleted_imports"`
}

// Cleanup 按年龄清理journal：删除早于days天的计算记录，
// 以及早于3×days天的导入记录——导入历史构成审计痕迹，保留三倍时长。
// 两次删除在同一个事务内完成。
// 失败不会抛给调用方：回滚后返回零计数和失败说明。
func (r *Repository) Cleanup(days int) CleanupResult {
	if days <= 0 {
		days = 30
	}

	now := time.Now()
	calculationCutoff := now.AddDate(0, 0, -days)
	importCutoff := now.AddDate(0, 0, -3*days)

	var deletedCalculations, deletedImports int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("created_at < ?", calculationCutoff).Delete(&CalculationRecord{})
		if result.Error != nil {
			return fmt.Errorf("清理计算记录失败: %w", result.Error)
		}
		deletedCalculations = result.RowsAffected

		result = tx.Where("created_at < ?", importCutoff).Delete(&ImportRecord{})
		if result.Error != nil {
			return fmt.Errorf("清理导入记录失败: %w", result.Error)
		}
		deletedImports = result.RowsAffected
		return nil
	})
	if err != nil {
		msg := fmt.Sprintf("清理旧记录失败: %v", err)
		fmt.Println(msg)
		return CleanupResult{Success: false, Message: msg}
	}

	return CleanupResult{
		Success:             true,
		Message:             fmt.Sprintf("成功清理 %d 条计算记录和 %d 条导入记录", deletedCalculations, deletedImports),
		DeletedCalculations: deletedCalculations,
		DeletedImports:      deletedImports,
	}
}
