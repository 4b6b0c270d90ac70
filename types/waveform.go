package types

import (
	"fmt"

	"circuitsheet/maths"
)

// Axis 参考线所在坐标轴
type Axis string

// 坐标轴常量定义
const (
	AxisX Axis = "x" // 竖线，x = Value
	AxisY Axis = "y" // 横线，y = Value
)

// ReferenceLine 参考线
type ReferenceLine struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
	Axis  Axis    `json:"axis"`
}

// Marker 标注点
type Marker struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// Waveform 波形采样数据
type Waveform struct {
	Title      string          `json:"title"`
	XLabel     string          `json:"x_label"`
	YLabel     string          `json:"y_label"`
	Time       []float64       `json:"time"`
	Value      []float64       `json:"value"`
	References []ReferenceLine `json:"reference_lines,omitempty"`
	Markers    []Marker        `json:"markers,omitempty"`
}

// Len 采样点数量
func (w *Waveform) Len() int { return len(w.Time) }

// AddReference 添加参考线
func (w *Waveform) AddReference(axis Axis, value float64, label string) {
	w.References = append(w.References, ReferenceLine{Value: value, Label: label, Axis: axis})
}

// AddMarker 添加标注点
func (w *Waveform) AddMarker(x, y float64, label string) {
	w.Markers = append(w.Markers, Marker{X: x, Y: y, Label: label})
}

// Validate 检查采样序列
// 长度一致且不少于2点，起点为0，时间单调不减；非有限数值返回定义域错误
func (w *Waveform) Validate() error {
	if len(w.Time) != len(w.Value) {
		return fmt.Errorf("waveform: %d time samples but %d values", len(w.Time), len(w.Value))
	}
	if len(w.Time) < 2 {
		return fmt.Errorf("waveform: need at least 2 samples, got %d", len(w.Time))
	}
	if w.Time[0] != 0 {
		return fmt.Errorf("waveform: first sample at %g, want 0", w.Time[0])
	}
	for i := range w.Time {
		if !maths.Finite(w.Time[i]) {
			return NonFiniteError(fmt.Sprintf("waveform time[%d]", i), w.Time[i])
		}
		if !maths.Finite(w.Value[i]) {
			return NonFiniteError(fmt.Sprintf("waveform value[%d]", i), w.Value[i])
		}
		if i > 0 && w.Time[i] < w.Time[i-1] {
			return fmt.Errorf("waveform: time decreases at sample %d", i)
		}
	}
	return nil
}
