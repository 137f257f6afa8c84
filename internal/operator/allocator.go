package operator

import (
	"fmt"

	"gorm.io/gorm"
)

// nextAvailableID 在给定事务内计算下一个可用的干员ID。
// 把现存ID按升序排列后逐个比对：第k个位置期望值是k（从1起），
// 第一个大于期望值的ID暴露出一个空缺，直接返回该期望值；
// 没有空缺则返回最大ID+1；没有任何记录则返回1。
// 删除留下的ID由此被后续插入复用，活跃ID区间保持致密。
func nextAvailableID(tx *gorm.DB) int {
	var ids []int
	if err := tx.Model(&Operator{}).Order("id asc").Pluck("id", &ids).Error; err != nil {
		// 检查失败时退回传统方式：最大ID+1
		fmt.Printf("寻找可用ID失败: %v\n", err)
		var next int
		if err := tx.Model(&Operator{}).Select("COALESCE(MAX(id), 0) + 1").Scan(&next).Error; err != nil || next < 1 {
			return 1
		}
		return next
	}

	expected := 1
	for _, id := range ids {
		if id == expected {
			expected++
		} else if id > expected {
			// 找到了空缺
			return expected
		}
	}
	return expected
}

// NextAvailableID 返回下一次插入将分配到的干员ID
func (r *Repository) NextAvailableID() int {
	return nextAvailableID(r.db)
}

// IDGaps 返回当前ID序列中所有缺失的ID（小于最大ID的未占用正整数）
func (r *Repository) IDGaps() ([]int, error) {
	var ids []int
	if err := r.db.Model(&Operator{}).Order("id asc").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("获取ID空缺失败: %w", err)
	}
	if len(ids) == 0 {
		return []int{}, nil
	}

	occupied := make(map[int]bool, len(ids))
	maxID := 0
	for _, id := range ids {
		occupied[id] = true
		if id > maxID {
			maxID = id
		}
	}

	gaps := []int{}
	for i := 1; i <= maxID; i++ {
		if !occupied[i] {
			gaps = append(gaps, i)
		}
	}
	return gaps, nil
}
