package record

import (
	"fmt"
	"time"

	"github.com/SlpAus/arknights-damage-backend/pkg/payload"
	"gorm.io/gorm"
)

// Repository 是journal模块的数据仓库，管理计算记录和导入记录两份只追加日志
type Repository struct {
	db *gorm.DB
}

// NewRepository 构造一个journal仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// RecordCalculation 追加一条计算记录并返回新记录的ID。
// operatorID允许为nil：引用只是提示性的，不做强制校验。
// 参数和结果序列化为JSON文本落入TEXT列。
func (r *Repository) RecordCalculation(operatorID *int, calculationType string, parameters, results payload.Map) (int, error) {
	parametersText, err := payload.EncodeMap(parameters)
	if err != nil {
		return 0, err
	}
	resultsText, err := payload.EncodeMap(results)
	if err != nil {
		return 0, err
	}

	entry := CalculationRecord{
		OperatorID:      operatorID,
		CalculationType: calculationType,
		Parameters:      parametersText,
		Results:         resultsText,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		return 0, fmt.Errorf("记录计算操作失败: %w", err)
	}
	return entry.ID, nil
}

// RecordImport 追加一条导入记录并返回新记录的ID
func (r *Repository) RecordImport(importType, fileName string, recordCount int, status, errorMessage string) (int, error) {
	entry := ImportRecord{
		ImportType:   importType,
		FileName:     fileName,
		RecordCount:  recordCount,
		Status:       status,
		ErrorMessage: errorMessage,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		return 0, fmt.Errorf("记录导入操作失败: %w", err)
	}
	return entry.ID, nil
}

// HistoryEntry 是一条解码后的计算历史记录，附带关联干员的名称（若仍存在）
type HistoryEntry struct {
	ID              int         `json:"id"`
	OperatorID      *int        `json:"operator_id"`
	OperatorName    string      `json:"operator_name"`
	CalculationType string      `json:"calculation_type"`
	Parameters      payload.Map `json:"parameters"`
	Results         payload.Map `json:"results"`
	CreatedAt       time.Time   `json:"created_at"`
}

// historyRow 是历史查询的原始扫描行，payload仍是未解码的文本
type historyRow struct {
	ID              int
	OperatorID      *int
	OperatorName    *string
	CalculationType string
	Parameters      string
	Results         string
	CreatedAt       time.Time
}

// History 返回最近的计算记录，新的在前。
// parameters/results从存储文本解码回Map；
// 单条记录损坏时该字段解码为空Map，不中断其余记录的读取。
func (r *Repository) History(limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []historyRow
	err := r.db.Table("calculation_records").
		Select("calculation_records.id, calculation_records.operator_id, operators.name AS operator_name, "+
			"calculation_records.calculation_type, calculation_records.parameters, calculation_records.results, "+
			"calculation_records.created_at").
		Joins("LEFT JOIN operators ON operators.id = calculation_records.operator_id").
		Order("calculation_records.created_at DESC, calculation_records.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("获取计算历史失败: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entry := HistoryEntry{
			ID:              row.ID,
			OperatorID:      row.OperatorID,
			CalculationType: row.CalculationType,
			Parameters:      payload.DecodeMapLenient(row.Parameters),
			Results:         payload.DecodeMapLenient(row.Results),
			CreatedAt:       row.CreatedAt,
		}
		if row.OperatorName != nil {
			entry.OperatorName = *row.OperatorName
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ImportRecords 返回最近的导入记录，新的在前
func (r *Repository) ImportRecords(limit int) ([]ImportRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	var entries []ImportRecord
	err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("获取导入记录失败: %w", err)
	}
	return entries, nil
}
