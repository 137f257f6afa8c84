package payload

import (
	"encoding/json"
	"fmt"
)

// Kind 标识一个Value实际承载的类型
type Kind int

const (
	// KindNull 表示空值
	KindNull Kind = iota
	// KindNumber 表示数值（统一以float64承载，与JSON的number语义一致）
	KindNumber
	// KindString 表示字符串
	KindString
	// KindBool 表示布尔值
	KindBool
	// KindMap 表示嵌套的键值映射
	KindMap
	// KindList 表示有序序列
	KindList
)

// Value 是计算参数/结果的显式变体类型。
// 它取代了原先"什么都能塞"的无类型字典：一个Value只可能是
// null、数值、字符串、布尔、嵌套映射或序列之一，
// 序列化往返行为由类型本身保证，而不是靠文档约定。
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
	m    Map
	l    []Value
}

// Map 是以字符串为键的Value映射，即journal中parameters/results的形态
type Map map[string]Value

// --- 构造函数 ---

// Null 构造一个空值
func Null() Value { return Value{kind: KindNull} }

// Number 构造一个数值
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String 构造一个字符串值
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool 构造一个布尔值
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// MapValue 构造一个嵌套映射值
func MapValue(m Map) Value { return Value{kind: KindMap, m: m} }

// List 构造一个序列值
func List(items ...Value) Value { return Value{kind: KindList, l: items} }

// --- 访问器 ---

// Kind 返回该值的实际类型
func (v Value) Kind() Kind { return v.kind }

// AsNumber 返回数值内容；非数值返回0
func (v Value) AsNumber() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.num
}

// AsString 返回字符串内容；非字符串返回空串
func (v Value) AsString() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// AsBool 返回布尔内容；非布尔返回false
func (v Value) AsBool() bool {
	if v.kind != KindBool {
		return false
	}
	return v.b
}

// AsMap 返回嵌套映射；非映射返回nil
func (v Value) AsMap() Map {
	if v.kind != KindMap {
		return nil
	}
	return v.m
}

// AsList 返回序列内容；非序列返回nil
func (v Value) AsList() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.l
}

// --- JSON 序列化 ---

// MarshalJSON 把Value编码为其对应的JSON形态
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindNumber:
		return json.Marshal(v.num)
	case KindString:
		return json.Marshal(v.str)
	case KindBool:
		return json.Marshal(v.b)
	case KindMap:
		return json.Marshal(v.m)
	case KindList:
		return json.Marshal(v.l)
	default:
		return nil, fmt.Errorf("未知的payload类型: %d", v.kind)
	}
}

// UnmarshalJSON 从JSON还原Value；number统一还原为float64
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := fromAny(raw)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// fromAny 把encoding/json解码出的通用值转换为Value
func fromAny(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case float64:
		return Number(t), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case map[string]any:
		m := make(Map, len(t))
		for k, item := range t {
			val, err := fromAny(item)
			if err != nil {
				return Value{}, err
			}
			m[k] = val
		}
		return MapValue(m), nil
	case []any:
		l := make([]Value, len(t))
		for i, item := range t {
			val, err := fromAny(item)
			if err != nil {
				return Value{}, err
			}
			l[i] = val
		}
		return List(l...), nil
	default:
		return Value{}, fmt.Errorf("无法表示的JSON值: %T", raw)
	}
}

// EncodeMap 把一个Map编码为存入TEXT列的JSON文本
func EncodeMap(m Map) (string, error) {
	if m == nil {
		m = Map{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("序列化payload失败: %w", err)
	}
	return string(data), nil
}

// DecodeMap 从JSON文本还原Map
func DecodeMap(text string) (Map, error) {
	if text == "" {
		return Map{}, nil
	}
	var m Map
	if err := json.Unmarshal([]byte(text), &m); err != nil {
		return nil, fmt.Errorf("解析payload失败: %w", err)
	}
	if m == nil {
		m = Map{}
	}
	return m, nil
}

// DecodeMapLenient 宽容地还原Map：损坏的文本得到空Map而不是错误。
// journal是诊断性数据，单条损坏记录不应该阻断其余记录的读取。
func DecodeMapLenient(text string) Map {
	m, err := DecodeMap(text)
	if err != nil {
		return Map{}
	}
	return m
}
