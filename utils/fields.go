package utils

import (
	"regexp"
	"strconv"
	"strings"

	"circuitsheet/maths"
)

// Fields 输入框原始文本，键为参数名称
type Fields map[string]string

// 工程前缀倍率
var prefixMap = map[string]float64{
	"T":   1e12,
	"G":   1e9,
	"meg": 1e6,
	"k":   1e3,
	"K":   1e3,
	"m":   1e-3,
	"u":   1e-6,
	"µ":   1e-6,
	"μ":   1e-6,
	"n":   1e-9,
	"p":   1e-12,
	"f":   1e-15,
}

var prefixRe = regexp.MustCompile(`^([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)\s*(meg|[TGkKmunpfµμ])$`)

// ParseNumber 解析数值文本
// 支持普通浮点数以及 10k、4.7n 这类工程前缀写法，拒绝 NaN 与无穷大
func ParseNumber(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		m := prefixRe.FindStringSubmatch(s)
		if m == nil {
			return 0, false
		}
		if v, err = strconv.ParseFloat(m[1], 64); err != nil {
			return 0, false
		}
		v *= prefixMap[m[2]]
	}
	if !maths.Finite(v) {
		return 0, false
	}
	return v, true
}

// Lookup 获取原始文本
func (f Fields) Lookup(name string) (string, bool) {
	if f == nil {
		return "", false
	}
	s, ok := f[name]
	return s, ok
}

// ParseFloat64 解析浮点数，未提供时返回默认值
// 第二个返回值为假表示文本存在但无法解析
func (f Fields) ParseFloat64(name string, defaultValue float64) (float64, bool) {
	s, ok := f.Lookup(name)
	if !ok {
		return defaultValue, true
	}
	return ParseNumber(s)
}

// FromFloat64 数值转换为输入文本
func FromFloat64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseAssignments 解析 name=value 形式的参数列表
func ParseAssignments(args []string) (Fields, []string) {
	fields, rest := Fields{}, []string{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			rest = append(rest, arg)
			continue
		}
		fields[strings.TrimSpace(name)] = value
	}
	return fields, rest
}
