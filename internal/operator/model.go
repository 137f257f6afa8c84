package operator

import "time"

// --- 属性分类常量 ---

const (
	// AtkTypePhysical 表示物理伤害类型
	AtkTypePhysical = "physical"
	// AtkTypeMagical 表示法术伤害类型
	AtkTypeMagical = "magical"
	// ClassUnknown 是未指定职业时的默认分类
	ClassUnknown = "unknown"
	// ClassMedic 是医疗职业，计算性能指标时有特殊处理
	ClassMedic = "medic"
)

// Operator 定义了数据库中干员的数据结构。
// ID由分配器管理：新插入的干员总是拿到当前最小可用的正整数ID，
// 因此这里不使用gorm.Model的自增主键语义，而是显式指定ID插入。
type Operator struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"uniqueIndex;not null" json:"name"`
	ClassType  string    `gorm:"column:class_type" json:"class_type"`
	HP         int       `gorm:"column:hp" json:"hp"`
	Atk        int       `json:"atk"`
	Def        int       `json:"def"`
	Mdef       int       `json:"mdef"`
	AtkSpeed   float64   `gorm:"column:atk_speed" json:"atk_speed"`
	AtkType    string    `gorm:"column:atk_type" json:"atk_type"`
	BlockCount int       `gorm:"column:block_count" json:"block_count"`
	Cost       int       `json:"cost"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Operator) TableName() string {
	return "operators"
}

// Input 是插入/更新干员时由调用方提供的原始字段。
// 缺失或为零值的数值字段会在入库前被替换为固定默认值。
type Input struct {
	Name       string  `json:"name"`
	ClassType  string  `json:"class_type"`
	HP         int     `json:"hp"`
	Atk        int     `json:"atk"`
	Def        int     `json:"def"`
	Mdef       int     `json:"mdef"`
	AtkSpeed   float64 `json:"atk_speed"`
	AtkType    string  `json:"atk_type"`
	BlockCount int     `json:"block_count"`
	Cost       int     `json:"cost"`
}

// withDefaults 返回补齐默认值后的输入。
// hp/atk/def/mdef的零值就是合法取值，保持不动；
// atk_speed、block_count、cost的零值视为缺失，换成默认值。
func (in Input) withDefaults() Input {
	if in.ClassType == "" {
		in.ClassType = ClassUnknown
	}
	if in.AtkSpeed == 0 {
		in.AtkSpeed = 1.0
	}
	if in.AtkType == "" {
		in.AtkType = AtkTypePhysical
	}
	if in.BlockCount == 0 {
		in.BlockCount = 1
	}
	if in.Cost == 0 {
		in.Cost = 10
	}
	return in
}

// toRecord 把补齐后的输入转换为待入库的实体
func (in Input) toRecord(id int) Operator {
	return Operator{
		ID:         id,
		Name:       in.Name,
		ClassType:  in.ClassType,
		HP:         in.HP,
		Atk:        in.Atk,
		Def:        in.Def,
		Mdef:       in.Mdef,
		AtkSpeed:   in.AtkSpeed,
		AtkType:    in.AtkType,
		BlockCount: in.BlockCount,
		Cost:       in.Cost,
	}
}
