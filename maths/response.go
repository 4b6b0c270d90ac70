package maths

import "math"

// StepResponse 一阶阶跃响应 final*(1-e^(-t/tau))
// RC 充电电压与 RL 电流共用此式
func StepResponse(final, tau, t float64) float64 {
	if tau <= 0 {
		return final
	}
	return final * (1 - math.Exp(-t/tau))
}

// StepCurve 对时间序列逐点计算阶跃响应
func StepCurve(final, tau float64, t []float64) []float64 {
	v := make([]float64, len(t))
	for i, x := range t {
		v[i] = StepResponse(final, tau, x)
	}
	return v
}

// Settling 达到稳态(5τ)所需时间
func Settling(tau float64) float64 { return 5 * tau }
