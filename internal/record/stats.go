package record

import (
	"fmt"
	"time"

	"github.com/SlpAus/arknights-damage-backend/pkg/besteffort"
)

// Summary 是存储的只读统计摘要
type Summary struct {
	TotalOperators    int64            `json:"total_operators"`
	TodayCalculations int64            `json:"today_calculations"`
	TotalImports      int64            `json:"total_imports"`
	TotalCalculations int64            `json:"total_calculations"`
	ClassDistribution map[string]int64 `json:"class_distribution"`
}

// emptySummary 是统计降级时返回的全零摘要
func emptySummary() Summary {
	return Summary{ClassDistribution: map[string]int64{}}
}

// TodayCalculations 返回今日（本地日历日）的计算次数
func (r *Repository) TodayCalculations() (int64, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var count int64
	err := r.db.Model(&CalculationRecord{}).Where("created_at >= ?", startOfDay).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("获取今日计算次数失败: %w", err)
	}
	return count, nil
}

// Statistics 返回存储的统计摘要。
// 统计面向被动展示界面，必须保持可用：任何引擎失败都降级为全零摘要，
// 被吞掉的错误保留在返回值里供诊断，而不是抛给调用方。
func (r *Repository) Statistics() besteffort.Result[Summary] {
	summary := emptySummary()

	// 干员总数
	var totalOperators int64
	if err := r.db.Table("operators").Count(&totalOperators).Error; err != nil {
		fmt.Printf("获取统计摘要失败: %v\n", err)
		return besteffort.Degraded(emptySummary(), err)
	}
	summary.TotalOperators = totalOperators

	// 今日计算次数
	todayCount, err := r.TodayCalculations()
	if err != nil {
		fmt.Printf("获取统计摘要失败: %v\n", err)
		return besteffort.Degraded(emptySummary(), err)
	}
	summary.TodayCalculations = todayCount

	// 导入记录总数
	if err := r.db.Model(&ImportRecord{}).Count(&summary.TotalImports).Error; err != nil {
		fmt.Printf("获取统计摘要失败: %v\n", err)
		return besteffort.Degraded(emptySummary(), err)
	}

	// 计算记录总数
	if err := r.db.Model(&CalculationRecord{}).Count(&summary.TotalCalculations).Error; err != nil {
		fmt.Printf("获取统计摘要失败: %v\n", err)
		return besteffort.Degraded(emptySummary(), err)
	}

	// 职业分布
	var classRows []struct {
		ClassType string
		Count     int64
	}
	err = r.db.Table("operators").
		Select("class_type, COUNT(*) AS count").
		Group("class_type").
		Scan(&classRows).Error
	if err != nil {
		fmt.Printf("获取统计摘要失败: %v\n", err)
		return besteffort.Degraded(emptySummary(), err)
	}
	for _, row := range classRows {
		summary.ClassDistribution[row.ClassType] = row.Count
	}

	return besteffort.Ok(summary)
}
