package base

import (
	"circuitsheet/element"
	"circuitsheet/maths"
	"circuitsheet/types"
	"circuitsheet/utils"
)

// BuckSamples 每个线性段的采样点数
const BuckSamples = 200

// BuckConverterType 定义模型
var BuckConverterType element.ModelType = element.AddElement(40, &BuckConverter{
	&element.Config{
		ID:       "buck_converter",
		Name:     "Buck Converter",
		Category: element.CategoryPowerElectronics,
		Params: []types.Parameter{
			element.PositiveVoltage("Vin", "Input Voltage Vin", 12),
			element.Ratio("D", "Duty Cycle D (0-1)", 0.5),
			element.Frequency("f", "Switching Frequency f", 50000),
			element.Inductance("L", "Inductance L", 0.0001),
			element.Capacitance("C", "Capacitance C", 0.00001),
			element.Resistance("R", "Load Resistance R", 10),
		},
	},
})

// BuckConverter 降压变换器稳态，连续导通近似
// 纹波公式为一阶近似，忽略 ESR
type BuckConverter struct{ *element.Config }

type buckState struct {
	vin, vout, iout, d, f, l float64
	dIL, dVC                 float64
}

func buckValues(in types.Inputs) buckState {
	s := buckState{vin: in["Vin"], d: in["D"], f: in["f"], l: in["L"]}
	s.vout = s.d * s.vin
	s.iout = s.vout / in["R"]
	s.dIL = (s.vin - s.vout) * s.d / (s.l * s.f)
	s.dVC = s.dIL / (8 * s.f * in["C"])
	return s
}

// CCM 是否处于连续导通模式，仅作提示
func (s buckState) CCM() bool { return s.iout > s.dIL/2 }

// Evaluate 计算输出电压、电流与纹波
func (BuckConverter) Evaluate(in types.Inputs) (types.Outputs, error) {
	s := buckValues(in)
	ccm, mode := 0.0, "DCM boundary crossed (Iout ≤ ΔIL/2)"
	if s.CCM() {
		ccm, mode = 1, "continuous conduction (CCM)"
	}
	return types.Outputs{
		element.SetOutput("Vout", "Output Voltage Vout", s.vout, "V", utils.FormatFixed(s.vout, 3, "V")),
		element.SetOutput("Iout", "Output Current Iout", s.iout, "A", utils.FormatFixed(s.iout, 3, "A")),
		element.SetOutput("dIL", "Inductor Ripple ΔIL", s.dIL, "A", utils.FormatFixed(s.dIL, 4, "A")+" (pp)"),
		element.SetOutput("dVC", "Capacitor Ripple ΔVC", s.dVC, "V", utils.FormatFixed(s.dVC*1e3, 2, "mV")+" (pp)"),
		element.SetOutput("ccm", "Conduction Mode", ccm, "", mode),
	}, nil
}

// Waveform 一个开关周期内的电感电流
func (BuckConverter) Waveform(in types.Inputs) (*types.Waveform, error) {
	s := buckValues(in)
	period := 1 / s.f
	tOn := s.d * period

	t1 := maths.Linspace(0, tOn, BuckSamples)
	i1 := maths.Linear(s.iout-s.dIL/2, (s.vin-s.vout)/s.l, 0, t1)
	t2 := maths.Linspace(tOn, period, BuckSamples)
	i2 := maths.Linear(s.iout+s.dIL/2, -s.vout/s.l, tOn, t2)

	w := &types.Waveform{
		Title:  "Inductor Current (One Switching Cycle)",
		XLabel: "Time (s)",
		YLabel: "Inductor Current (A)",
		Time:   append(t1, t2...),
		Value:  append(i1, i2...),
	}
	w.AddReference(types.AxisY, s.iout, "Iavg = "+utils.FormatFixed(s.iout, 3, "A"))
	w.AddReference(types.AxisY, s.iout+s.dIL/2, "Iout + ΔIL/2")
	w.AddReference(types.AxisY, s.iout-s.dIL/2, "Iout - ΔIL/2")
	w.AddReference(types.AxisX, tOn, "D×T")
	return w, nil
}
