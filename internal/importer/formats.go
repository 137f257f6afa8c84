package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/SlpAus/arknights-damage-backend/internal/operator"
)

// parseJSON 解析JSON干员文件。
// 顶层可以是干员对象数组，也可以是带operators键的对象。
// 单个对象解析失败只产生一条错误，不中断其余对象。
func parseJSON(data []byte) ([]operator.Input, []string, error) {
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		var wrapper struct {
			Operators []map[string]any `json:"operators"`
		}
		if err2 := json.Unmarshal(data, &wrapper); err2 != nil || wrapper.Operators == nil {
			return nil, nil, err
		}
		rows = wrapper.Operators
	}

	inputs := []operator.Input{}
	errors := []string{}
	for i, row := range rows {
		in, err := parseRow(row)
		if err != nil {
			errors = append(errors, fmt.Sprintf("第%d个对象: %v", i+1, err))
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs, errors, nil
}

// parseCSV 解析CSV干员文件。第一行是标题行，支持中英文字段名；
// 单行解析失败只产生一条错误，不中断其余行。
func parseCSV(r io.Reader) ([]operator.Input, []string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("CSV文件为空")
	}

	// 标题行翻译：中文字段名归一为英文字段名
	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))
		if english, ok := chineseHeaders[name]; ok {
			name = english
		}
		header[i] = strings.ToLower(name)
	}

	inputs := []operator.Input{}
	errors := []string{}
	for rowNum, row := range rows[1:] {
		source := make(map[string]any, len(header))
		for i, value := range row {
			if i < len(header) && strings.TrimSpace(value) != "" {
				source[header[i]] = value
			}
		}

		in, err := parseRow(source)
		if err != nil {
			errors = append(errors, fmt.Sprintf("第%d行: %v", rowNum+2, err))
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs, errors, nil
}
