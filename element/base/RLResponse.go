package base

import (
	"circuitsheet/element"
	"circuitsheet/maths"
	"circuitsheet/types"
	"circuitsheet/utils"
)

// RLSamples 阶跃响应采样点数，5τ 等分 500 段使 t=τ 恰好落在采样点上
const RLSamples = 501

// RLResponseType 定义模型
var RLResponseType element.ModelType = element.AddElement(50, &RLResponse{
	&element.Config{
		ID:       "rl_response",
		Name:     "RL Step Response",
		Category: element.CategoryElectricalSystems,
		Params: []types.Parameter{
			element.Voltage("V", "Source Voltage V", 10),
			element.Resistance("R", "Resistance R", 100),
			element.Inductance("L", "Inductance L", 0.5),
		},
	},
})

// RLResponse RL 电路阶跃响应 i(t) = I∞(1-e^(-t/τ))
type RLResponse struct{ *element.Config }

func rlValues(in types.Inputs) (tau, iFinal float64) {
	return in["L"] / in["R"], in["V"] / in["R"]
}

// Evaluate 计算时间常数、稳态电流与稳定时间
func (RLResponse) Evaluate(in types.Inputs) (types.Outputs, error) {
	tau, iFinal := rlValues(in)
	t5 := maths.Settling(tau)
	return types.Outputs{
		element.SetOutput("tau", "Time Constant τ", tau, "s", utils.FormatAlt(tau, 4, "s", utils.Alt{Scale: 1e3, Digits: 2, Unit: "ms"})),
		element.SetOutput("Ifinal", "Final Current I(∞)", iFinal, "A", utils.FormatAlt(iFinal, 4, "A", utils.Milli("A"))),
		element.SetOutput("t5tau", "Settling Time (5τ)", t5, "s", utils.FormatFixed(t5, 4, "s")),
	}, nil
}

// Waveform 电流随时间变化曲线
func (RLResponse) Waveform(in types.Inputs) (*types.Waveform, error) {
	tau, iFinal := rlValues(in)
	t := maths.Linspace(0, maths.Settling(tau), RLSamples)
	w := &types.Waveform{
		Title:  "Current vs Time (Step Response)",
		XLabel: "Time (s)",
		YLabel: "Current (A)",
		Time:   t,
		Value:  maths.StepCurve(iFinal, tau, t),
	}
	w.AddReference(types.AxisY, iFinal, "I(∞) = "+utils.FormatValueFactor(iFinal, "A"))
	w.AddReference(types.AxisY, 0.632*iFinal, "63.2% of I(∞)")
	w.AddReference(types.AxisX, tau, "τ = "+utils.FormatValueFactor(tau, "s"))
	return w, nil
}
