package operator

import (
	"fmt"

	"gorm.io/gorm"
)

// ReorderResult 描述一次ID重排的结果
type ReorderResult struct {
	Success        bool        `json:"success"`
	Message        string      `json:"message"`
	ReorderedCount int         `json:"reordered_count"`
	IDMapping      map[int]int `json:"id_mapping"`
}

// ReorderIDs 把所有干员的ID重排为连续的1..N，保持按当前ID升序的相对顺序，
// 并把每一处ID变更同步到calculation_records.operator_id。
//
// 重排分两个阶段，整体在一个事务内完成（要么全部生效，要么全部回滚）：
//  1. 暂存：把第i个干员（按当前ID升序，0起）的ID改为 -(i+1)。
//     负数与所有现存正ID保证不相交，即使唯一约束是即时检查的，
//     原地重新赋ID也不会撞约束。
//  2. 提交：把每个暂存行的ID改为 i+1，记录旧ID到新ID的映射，
//     并把引用旧ID的计算记录改为新ID。
//
// 最后重置自增序列基线，让下一次全新插入从N之后继续。
// 对已经连续有序的集合重复执行是幂等的（映射为恒等映射）。
func (r *Repository) ReorderIDs() ReorderResult {
	mapping := make(map[int]int)
	reordered := 0

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var ids []int
		if err := tx.Model(&Operator{}).Order("id asc").Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("读取干员ID失败: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		// 第一阶段：全部迁入负数ID空间
		for i, oldID := range ids {
			tempID := -(i + 1)
			if err := tx.Exec("UPDATE operators SET id = ? WHERE id = ?", tempID, oldID).Error; err != nil {
				return fmt.Errorf("暂存干员ID失败: %w", err)
			}
		}

		// 第二阶段：落到最终的连续ID，并修正计算记录的引用
		for i, oldID := range ids {
			tempID := -(i + 1)
			newID := i + 1
			if err := tx.Exec("UPDATE operators SET id = ? WHERE id = ?", newID, tempID).Error; err != nil {
				return fmt.Errorf("提交干员ID失败: %w", err)
			}
			if err := tx.Exec("UPDATE calculation_records SET operator_id = ? WHERE operator_id = ?", newID, oldID).Error; err != nil {
				return fmt.Errorf("更新计算记录引用失败: %w", err)
			}
			mapping[oldID] = newID
		}

		// 重置自增序列基线
		if err := tx.Exec("DELETE FROM sqlite_sequence WHERE name = 'operators'").Error; err != nil {
			return fmt.Errorf("重置ID序列失败: %w", err)
		}
		if err := tx.Exec("INSERT INTO sqlite_sequence (name, seq) VALUES ('operators', ?)", len(ids)).Error; err != nil {
			return fmt.Errorf("设置ID序列基线失败: %w", err)
		}

		reordered = len(ids)
		return nil
	})
	if err != nil {
		msg := fmt.Sprintf("ID重排失败: %v", err)
		fmt.Println(msg)
		return ReorderResult{Success: false, Message: msg, IDMapping: map[int]int{}}
	}

	if reordered == 0 {
		return ReorderResult{
			Success:   true,
			Message:   "没有干员需要重排ID",
			IDMapping: map[int]int{},
		}
	}

	result := ReorderResult{
		Success:        true,
		Message:        fmt.Sprintf("成功重排 %d 个干员的ID (按原有ID顺序重新编号)", reordered),
		ReorderedCount: reordered,
		IDMapping:      mapping,
	}
	fmt.Printf("ID重排完成: %s\n", result.Message)
	return result
}
