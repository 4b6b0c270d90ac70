package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatValueFactor 按工程前缀格式化数值
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue == 0:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e9:
		return fmt.Sprintf("%.3f G%s", value/1e9, unit)
	case absValue >= 1e6:
		return fmt.Sprintf("%.3f M%s", value/1e6, unit)
	case absValue >= 1e3:
		return fmt.Sprintf("%.3f k%s", value/1e3, unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f μ%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatFixed 固定小数位格式化
func FormatFixed(value float64, digits int, unit string) string {
	s := fmt.Sprintf("%.*f", digits, value)
	if unit == "" {
		return s
	}
	return s + " " + unit
}

// Alt 备用单位，value*Scale 后按 Digits 位小数显示
type Alt struct {
	Scale  float64
	Digits int
	Unit   string
}

// Format 只按备用单位显示
func (a Alt) Format(value float64) string {
	return FormatFixed(value*a.Scale, a.Digits, a.Unit)
}

// Milli 毫单位
func Milli(unit string) Alt { return Alt{Scale: 1e3, Digits: 3, Unit: "m" + unit} }

// Micro 微单位
func Micro(unit string) Alt { return Alt{Scale: 1e6, Digits: 2, Unit: "μ" + unit} }

// Kilo 千单位
func Kilo(unit string) Alt { return Alt{Scale: 1e-3, Digits: 1, Unit: "k" + unit} }

// FormatAlt 主单位与备用单位同时显示，如 "0.012000 A = 12.000 mA"
func FormatAlt(value float64, digits int, unit string, alts ...Alt) string {
	parts := []string{FormatFixed(value, digits, unit)}
	for _, alt := range alts {
		parts = append(parts, alt.Format(value))
	}
	return strings.Join(parts, " = ")
}

// FormatPercent 比例同时显示百分数，如 "0.5000 (50.00%)"
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.4f (%.2f%%)", ratio, ratio*100)
}
