package maths

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number 实数类型约束
type Number interface {
	constraints.Integer | constraints.Float
}

// InRange 判断 v 是否在闭区间 [lo, hi] 内
func InRange[T constraints.Ordered](v, lo, hi T) bool { return v >= lo && v <= hi }

// Positive 大于0
func Positive[T Number](v T) bool { return v > 0 }

// NonNegative 大于等于0
func NonNegative[T Number](v T) bool { return v >= 0 }

// NonZero 不等于0
func NonZero[T Number](v T) bool { return v != 0 }

// Unit 属于 [0, 1]
func Unit[T constraints.Float](v T) bool { return InRange(v, 0, 1) }

// Percent 属于 [0, 100]
func Percent[T constraints.Float](v T) bool { return InRange(v, 0, 100) }

// Finite 非 NaN 且非无穷
func Finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
