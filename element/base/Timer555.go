package base

import (
	"circuitsheet/element"
	"circuitsheet/maths"
	"circuitsheet/types"
	"circuitsheet/utils"
)

// 555 定时器常量
const (
	Timer555Ln2    = 0.693 // 充放电系数 ln2
	Timer555Cycles = 3     // 波形周期数
)

// Timer555Type 定义模型
var Timer555Type element.ModelType = element.AddElement(20, &Timer555{
	&element.Config{
		ID:       "timer555_astable",
		Name:     "555 Timer Astable",
		Category: element.CategoryOscillators,
		Params: []types.Parameter{
			element.Resistance("R1", "R1", 75000),
			element.Resistance("R2", "R2", 30000),
			element.Capacitance("C", "C", 0.000000047),
			element.PositiveVoltage("VCC", "VCC", 12),
		},
	},
})

// Timer555 555 定时器无稳态多谐振荡
type Timer555 struct{ *element.Config }

func timer555Values(in types.Inputs) (tHigh, tLow, period float64) {
	r1, r2, c := in["R1"], in["R2"], in["C"]
	tHigh = Timer555Ln2 * (r1 + r2) * c
	tLow = Timer555Ln2 * r2 * c
	return tHigh, tLow, tHigh + tLow
}

// Evaluate 计算高低电平时间、周期、频率与占空比
func (Timer555) Evaluate(in types.Inputs) (types.Outputs, error) {
	tHigh, tLow, period := timer555Values(in)
	f := 1 / period
	duty := 100 * tHigh / period
	ms := utils.Alt{Scale: 1e3, Digits: 3, Unit: "ms"}
	return types.Outputs{
		element.SetOutput("f", "Frequency f", f, "Hz", utils.FormatFixed(f, 2, "Hz")),
		element.SetOutput("T", "Period T", period, "s", utils.FormatAlt(period, 6, "s", ms)),
		element.SetOutput("Thigh", "High Time TH", tHigh, "s", utils.FormatAlt(tHigh, 6, "s", ms)),
		element.SetOutput("Tlow", "Low Time TL", tLow, "s", utils.FormatAlt(tLow, 6, "s", ms)),
		element.SetOutput("duty", "Duty Cycle D", duty, "%", utils.FormatFixed(duty, 1, "%")),
	}, nil
}

// Waveform 输出方波，3个周期，角点构造
func (Timer555) Waveform(in types.Inputs) (*types.Waveform, error) {
	tHigh, tLow, _ := timer555Values(in)
	vcc := in["VCC"]
	t, v := maths.PulseTrain(0, Timer555Cycles,
		maths.Segment{Duration: tHigh, Level: vcc},
		maths.Segment{Duration: tLow, Level: 0},
	)
	w := &types.Waveform{
		Title:  "Output Waveform (3 cycles)",
		XLabel: "Time (s)",
		YLabel: "Voltage (V)",
		Time:   t,
		Value:  v,
	}
	w.AddReference(types.AxisY, vcc/2, "VCC/2")
	return w, nil
}
