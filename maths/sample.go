package maths

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Linspace 在 [start, stop] 上均匀取 n 个点，n 至少为 2
func Linspace(start, stop float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	return floats.Span(make([]float64, n), start, stop)
}

// Linear 线性段 v(t) = start + slope*(t-t0)
func Linear(start, slope, t0 float64, t []float64) []float64 {
	v := make([]float64, len(t))
	for i, x := range t {
		v[i] = start + slope*(x-t0)
	}
	return v
}

// TimeAverage 梯形积分求时间平均值
// t 必须单调不减；时间跨度为0时返回算术平均
func TimeAverage(t, v []float64) float64 {
	if len(t) == 0 {
		return 0
	}
	span := t[len(t)-1] - t[0]
	if span == 0 {
		return floats.Sum(v) / float64(len(v))
	}
	return integrate.Trapezoidal(t, v) / span
}

// Bounds 序列最小值与最大值
func Bounds(v []float64) (lo, hi float64) {
	if len(v) == 0 {
		return 0, 0
	}
	return floats.Min(v), floats.Max(v)
}
