package base

import (
	"math"

	"circuitsheet/element"
	"circuitsheet/maths"
	"circuitsheet/types"
	"circuitsheet/utils"
)

// RCCircuitType 定义模型
var RCCircuitType element.ModelType = element.AddElement(4, &RCCircuit{
	&element.Config{
		ID:       "rc_circuit",
		Name:     "RC Circuit",
		Category: element.CategoryACDC,
		Params: []types.Parameter{
			element.Resistance("R", "Resistance R", 10000),
			element.Capacitance("C", "Capacitance C", 0.0001),
		},
	},
})

// RCCircuit RC 时间常数与截止频率
// 充电曲线 Vc(t) 见 maths.StepResponse
type RCCircuit struct{ *element.Config }

// Evaluate 计算时间常数、截止频率与稳定时间
func (RCCircuit) Evaluate(in types.Inputs) (types.Outputs, error) {
	r, c := in["R"], in["C"]
	tau := r * c
	fc := 1 / (2 * math.Pi * r * c)
	t5 := maths.Settling(tau)
	return types.Outputs{
		element.SetOutput("tau", "Time Constant τ", tau, "s", utils.FormatAlt(tau, 6, "s", utils.Milli("s"))),
		element.SetOutput("fc", "Cutoff Frequency fc", fc, "Hz", utils.FormatFixed(fc, 3, "Hz")),
		element.SetOutput("t5tau", "Settling Time (5τ)", t5, "s", utils.FormatAlt(t5, 6, "s", utils.Milli("s"))),
	}, nil
}
