package record

import "time"

// --- 导入状态常量 ---

const (
	// StatusSuccess 表示整个导入成功
	StatusSuccess = "success"
	// StatusFailure 表示导入完全失败
	StatusFailure = "failure"
	// StatusPartial 表示部分行被跳过的导入
	StatusPartial = "partial"
)

// CalculationRecord 定义了一条计算记录。
// 记录只追加、从不更新；operator_id是对干员的弱引用，
// 引擎不强制外键约束，干员被删除后引用可以悬空。
type CalculationRecord struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OperatorID      *int      `gorm:"column:operator_id" json:"operator_id"`
	CalculationType string    `gorm:"column:calculation_type;not null" json:"calculation_type"`
	Parameters      string    `json:"parameters"`
	Results         string    `json:"results"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName 指定表名
func (CalculationRecord) TableName() string {
	return "calculation_records"
}

// ImportRecord 定义了一条导入记录。只追加、从不更新，没有任何外键。
type ImportRecord struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ImportType   string    `gorm:"column:import_type;not null" json:"import_type"`
	FileName     string    `gorm:"column:file_name" json:"file_name"`
	RecordCount  int       `gorm:"column:record_count;default:0" json:"record_count"`
	Status       string    `gorm:"default:success" json:"status"`
	ErrorMessage string    `gorm:"column:error_message" json:"error_message"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName 指定表名
func (ImportRecord) TableName() string {
	return "import_records"
}
