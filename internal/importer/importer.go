package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SlpAus/arknights-damage-backend/internal/operator"
	"github.com/SlpAus/arknights-damage-backend/internal/record"
)

// --- 导入类型常量，写入journal的import_type列 ---

const (
	// TypeJSON 表示JSON文件导入
	TypeJSON = "json_import"
	// TypeCSV 表示CSV文件导入
	TypeCSV = "csv_import"
)

// Report 汇总一次导入的结果
type Report struct {
	Status   string   `json:"status"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// Importer 负责把JSON/CSV文件中的干员数据批量写入存储。
// 逐行校验：解析失败或名称重复的行被跳过，其余行继续导入；
// 每次导入的结果都作为一条导入记录追加进journal。
type Importer struct {
	operators *operator.Repository
	records   *record.Repository
}

// New 构造一个导入器
func New(operators *operator.Repository, records *record.Repository) *Importer {
	return &Importer{operators: operators, records: records}
}

// ImportFile 按扩展名分发到对应格式的导入流程
func (im *Importer) ImportFile(path string) (Report, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return im.ImportJSON(path), nil
	case ".csv":
		return im.ImportCSV(path), nil
	default:
		return Report{}, fmt.Errorf("不支持的文件格式: %s", filepath.Ext(path))
	}
}

// ImportJSON 导入一个JSON干员文件
func (im *Importer) ImportJSON(path string) Report {
	data, err := os.ReadFile(path)
	if err != nil {
		return im.fail(TypeJSON, path, fmt.Sprintf("读取JSON文件失败: %v", err))
	}

	inputs, parseErrors, err := parseJSON(data)
	if err != nil {
		return im.fail(TypeJSON, path, fmt.Sprintf("解析JSON文件失败: %v", err))
	}
	return im.apply(TypeJSON, path, inputs, parseErrors)
}

// ImportCSV 导入一个CSV干员文件（标题行支持中英文字段名）
func (im *Importer) ImportCSV(path string) Report {
	file, err := os.Open(path)
	if err != nil {
		return im.fail(TypeCSV, path, fmt.Sprintf("读取CSV文件失败: %v", err))
	}
	defer file.Close()

	inputs, parseErrors, err := parseCSV(file)
	if err != nil {
		return im.fail(TypeCSV, path, fmt.Sprintf("解析CSV文件失败: %v", err))
	}
	return im.apply(TypeCSV, path, inputs, parseErrors)
}

// apply 把解析出来的行逐个写入存储并记录导入结果
func (im *Importer) apply(importType, path string, inputs []operator.Input, parseErrors []string) Report {
	report := Report{Errors: parseErrors, Skipped: len(parseErrors)}

	for _, in := range inputs {
		if existing, err := im.operators.GetByName(in.Name); err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", in.Name, err))
			continue
		} else if existing != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("干员 %q 已存在，跳过", in.Name))
			continue
		}

		if _, err := im.operators.Insert(in); err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", in.Name, err))
			continue
		}
		report.Imported++
	}

	switch {
	case report.Imported == 0:
		report.Status = record.StatusFailure
	case report.Skipped > 0:
		report.Status = record.StatusPartial
	default:
		report.Status = record.StatusSuccess
	}

	im.journal(importType, path, report)
	return report
}

// fail 构造一次完全失败的导入结果并记录
func (im *Importer) fail(importType, path, message string) Report {
	report := Report{
		Status: record.StatusFailure,
		Errors: []string{message},
	}
	im.journal(importType, path, report)
	return report
}

// journal 把导入结果追加进导入journal；写入失败只记录警告
func (im *Importer) journal(importType, path string, report Report) {
	errorMessage := strings.Join(report.Errors, "; ")
	if _, err := im.records.RecordImport(importType, filepath.Base(path), report.Imported, report.Status, errorMessage); err != nil {
		fmt.Printf("警告: 导入记录写入失败: %v\n", err)
	}
}
