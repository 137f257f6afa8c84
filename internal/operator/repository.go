package operator

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound 表示更新的目标干员不存在
var ErrNotFound = errors.New("干员不存在")

// DuplicateNameError 表示干员名称已被另一个干员占用
type DuplicateNameError struct {
	Name     string
	HolderID int
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("干员名称 %q 已被ID为%d的干员使用，无法重复", e.Name, e.HolderID)
}

// Repository 是operator模块的数据仓库。
// 句柄在main中构造一次后传入，每个操作独立使用自己的连接，
// 多语句操作在显式事务中完成。
type Repository struct {
	db *gorm.DB
}

// NewRepository 构造一个operator仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert 插入一个新干员并返回分配到的ID。
// ID由分配器在事务内计算：优先复用删除留下的空缺，保持活跃ID区间致密。
// 引擎拒绝插入（例如并发写入造成的名称冲突）时回滚并返回错误。
func (r *Repository) Insert(in Input) (int, error) {
	in = in.withDefaults()

	var newID int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		id := nextAvailableID(tx)
		record := in.toRecord(id)
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("插入干员失败: %w", err)
		}
		newID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	fmt.Printf("成功插入干员 %s (智能分配ID: %d)\n", in.Name, newID)
	return newID, nil
}

// Update 更新指定干员的全部字段，输入的默认值补全规则与插入一致。
// 校验顺序是对外可观察的契约，必须保持：
// 先检查新名称是否被其他ID占用（DuplicateNameError），
// 再检查目标ID是否存在（ErrNotFound），任一失败都不产生任何修改。
// 返回是否有行被更新；两项检查通过后恒为true。
func (r *Repository) Update(id int, in Input) (bool, error) {
	in = in.withDefaults()

	var affected bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if in.Name != "" {
			var holder Operator
			err := tx.Select("id").Where("name = ? AND id != ?", in.Name, id).Take(&holder).Error
			if err == nil {
				return &DuplicateNameError{Name: in.Name, HolderID: holder.ID}
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("检查干员名称冲突失败: %w", err)
			}
		}

		var target Operator
		if err := tx.Select("id").Where("id = ?", id).Take(&target).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("检查目标干员失败: %w", err)
		}

		result := tx.Model(&Operator{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":        in.Name,
			"class_type":  in.ClassType,
			"hp":          in.HP,
			"atk":         in.Atk,
			"def":         in.Def,
			"mdef":        in.Mdef,
			"atk_speed":   in.AtkSpeed,
			"atk_type":    in.AtkType,
			"block_count": in.BlockCount,
			"cost":        in.Cost,
		})
		if result.Error != nil {
			return fmt.Errorf("更新干员失败: %w", result.Error)
		}
		affected = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	fmt.Printf("成功更新干员 %s (ID: %d)\n", in.Name, id)
	return affected, nil
}

// Delete 无条件删除指定ID的干员，返回是否有行被删除
func (r *Repository) Delete(id int) (bool, error) {
	result := r.db.Delete(&Operator{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("删除干员失败: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeleteAllResult 描述一次全量删除的结果
type DeleteAllResult struct {
	Success            bool   `json:"success"`
	Message            string `json:"message"`
	DeletedOperators   int64  `json:"deleted_operators"`
	DeletedCalcRecords int64  `json:"deleted_calc_records"`
}

// DeleteAll 在一个事务内删除所有干员及其关联的计算记录，并重置ID自增序列。
// 这个操作永远不会向调用方抛出：内部失败时回滚，返回零计数和失败说明。
func (r *Repository) DeleteAll() DeleteAllResult {
	var deletedOperators, deletedCalcRecords int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// 先统计待删除的干员数量，作为结果中上报的计数
		if err := tx.Model(&Operator{}).Count(&deletedOperators).Error; err != nil {
			return fmt.Errorf("统计干员数量失败: %w", err)
		}

		// 删除所有带干员引用的计算记录
		result := tx.Exec("DELETE FROM calculation_records WHERE operator_id IS NOT NULL")
		if result.Error != nil {
			return fmt.Errorf("删除关联计算记录失败: %w", result.Error)
		}
		deletedCalcRecords = result.RowsAffected

		// 删除所有干员
		if err := tx.Exec("DELETE FROM operators").Error; err != nil {
			return fmt.Errorf("删除干员失败: %w", err)
		}

		// 重置自增ID序列，让下一次插入从1开始
		if err := tx.Exec("DELETE FROM sqlite_sequence WHERE name = 'operators'").Error; err != nil {
			return fmt.Errorf("重置ID序列失败: %w", err)
		}
		return nil
	})
	if err != nil {
		msg := fmt.Sprintf("删除所有干员失败: %v", err)
		fmt.Println(msg)
		return DeleteAllResult{Success: false, Message: msg}
	}

	result := DeleteAllResult{
		Success:            true,
		Message:            fmt.Sprintf("成功删除 %d 个干员和 %d 条计算记录", deletedOperators, deletedCalcRecords),
		DeletedOperators:   deletedOperators,
		DeletedCalcRecords: deletedCalcRecords,
	}
	fmt.Printf("删除所有干员完成: %s\n", result.Message)
	return result
}

// Get 根据ID获取干员；不存在返回nil，不算错误
func (r *Repository) Get(id int) (*Operator, error) {
	var record Operator
	err := r.db.Where("id = ?", id).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询干员失败: %w", err)
	}
	return &record, nil
}

// GetByName 根据名称获取干员；不存在返回nil，不算错误
func (r *Repository) GetByName(name string) (*Operator, error) {
	var record Operator
	err := r.db.Where("name = ?", name).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询干员失败: %w", err)
	}
	return &record, nil
}

// GetAll 获取所有干员，按名称排序
func (r *Repository) GetAll() ([]Operator, error) {
	var records []Operator
	if err := r.db.Order("name").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("查询干员列表失败: %w", err)
	}
	return records, nil
}

// Count 返回当前干员总数
func (r *Repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Operator{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("统计干员数量失败: %w", err)
	}
	return count, nil
}
