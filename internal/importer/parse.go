package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SlpAus/arknights-damage-backend/internal/operator"
)

// fieldAliases 是目标字段到来源文件中可能出现的字段名的映射，
// 兼容不同工具导出的命名习惯（标题行的中文字段名在读取时先翻译成英文名）
var fieldAliases = map[string][]string{
	"name":        {"name", "id"},
	"class_type":  {"class_type", "class"},
	"hp":          {"hp", "health"},
	"atk":         {"atk", "attack", "damage"},
	"def":         {"def", "defense"},
	"mdef":        {"mdef", "magic_defense", "resist"},
	"atk_speed":   {"atk_speed", "attack_speed", "speed"},
	"atk_type":    {"atk_type", "attack_type", "damage_type"},
	"cost":        {"cost", "deploy_cost"},
	"block_count": {"block_count", "block"},
}

// chineseHeaders 把CSV标题行的中文字段名翻译为英文字段名
var chineseHeaders = map[string]string{
	"名称":   "name",
	"职业类型": "class_type",
	"生命值":  "hp",
	"攻击力":  "atk",
	"防御力":  "def",
	"法抗":   "mdef",
	"法术抗性": "mdef",
	"攻击速度": "atk_speed",
	"攻击类型": "atk_type",
	"部署费用": "cost",
	"阻挡数":  "block_count",
}

// normalizeAtkType 把来源文件里的攻击类型表述归一为存储用的分类值
func normalizeAtkType(raw string) string {
	switch strings.TrimSpace(raw) {
	case "物伤", "物理伤害", operator.AtkTypePhysical:
		return operator.AtkTypePhysical
	case "法伤", "法术伤害", operator.AtkTypeMagical:
		return operator.AtkTypeMagical
	case "":
		return ""
	default:
		return strings.TrimSpace(raw)
	}
}

// pick 按别名表从来源行中取出目标字段的原始值
func pick(source map[string]any, target string) (any, bool) {
	for _, alias := range fieldAliases[target] {
		if v, ok := source[alias]; ok {
			return v, true
		}
	}
	return nil, false
}

// toInt 把any类型的数值（或数字字符串）转换为int
func toInt(raw any) (int, error) {
	switch t := raw.(type) {
	case float64:
		return int(t), nil
	case int:
		return t, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, err
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("无法转换为整数: %v", raw)
	}
}

// toFloat 把any类型的数值（或数字字符串）转换为float64
func toFloat(raw any) (float64, error) {
	switch t := raw.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(t), 64)
	default:
		return 0, fmt.Errorf("无法转换为数值: %v", raw)
	}
}

// toString 把any类型的字段转换为去除首尾空白的字符串
func toString(raw any) string {
	switch t := raw.(type) {
	case string:
		return strings.TrimSpace(t)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

// parseRow 把一行来源数据解析为干员输入。
// 必要字段：name、class_type、hp、atk、atk_speed；其余字段缺失时用默认值。
func parseRow(source map[string]any) (operator.Input, error) {
	var in operator.Input

	// 嵌套form格式兼容
	if form, ok := source["form"].(map[string]any); ok {
		source = form
	}

	if raw, ok := pick(source, "name"); ok {
		in.Name = toString(raw)
	}
	if in.Name == "" {
		return in, fmt.Errorf("缺少干员名称")
	}

	requiredNumbers := []struct {
		field string
		set   func(int)
	}{
		{"hp", func(v int) { in.HP = v }},
		{"atk", func(v int) { in.Atk = v }},
	}
	for _, req := range requiredNumbers {
		raw, ok := pick(source, req.field)
		if !ok {
			return in, fmt.Errorf("缺少必要字段: %s", req.field)
		}
		v, err := toInt(raw)
		if err != nil {
			return in, fmt.Errorf("字段 %s 类型转换失败: %w", req.field, err)
		}
		req.set(v)
	}

	raw, ok := pick(source, "class_type")
	if !ok || toString(raw) == "" {
		return in, fmt.Errorf("缺少必要字段: class_type")
	}
	in.ClassType = toString(raw)

	raw, ok = pick(source, "atk_speed")
	if !ok {
		return in, fmt.Errorf("缺少必要字段: atk_speed")
	}
	speed, err := toFloat(raw)
	if err != nil {
		return in, fmt.Errorf("字段 atk_speed 类型转换失败: %w", err)
	}
	in.AtkSpeed = speed

	// 可选字段
	optionalInts := []struct {
		field string
		set   func(int)
	}{
		{"def", func(v int) { in.Def = v }},
		{"mdef", func(v int) { in.Mdef = v }},
		{"cost", func(v int) { in.Cost = v }},
		{"block_count", func(v int) { in.BlockCount = v }},
	}
	for _, opt := range optionalInts {
		if raw, ok := pick(source, opt.field); ok {
			if v, err := toInt(raw); err == nil {
				opt.set(v)
			}
		}
	}
	if raw, ok := pick(source, "atk_type"); ok {
		in.AtkType = normalizeAtkType(toString(raw))
	}

	return in, nil
}
