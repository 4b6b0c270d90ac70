package base

import (
	"fmt"

	"circuitsheet/element"
	"circuitsheet/maths"
	"circuitsheet/types"
	"circuitsheet/utils"
)

// PWMCycles 波形周期数
const PWMCycles = 3

// PWMType 定义模型
var PWMType element.ModelType = element.AddElement(44, &PWM{
	&element.Config{
		ID:       "pwm_analysis",
		Name:     "PWM Analysis",
		Category: element.CategoryPowerElectronics,
		Params: []types.Parameter{
			element.Voltage("Vhigh", "High Level Vhigh", 5),
			element.Voltage("Vlow", "Low Level Vlow", 0),
			element.PercentRatio("D", "Duty Cycle D", 50),
			element.Frequency("f", "Frequency f", 1000),
		},
	},
})

// PWM 脉宽调制信号分析，占空比以百分数输入
type PWM struct{ *element.Config }

func pwmValues(in types.Inputs) (period, tOn, tOff, vAvg float64) {
	d := in["D"]
	period = 1 / in["f"]
	tOn = d * period
	tOff = (1 - d) * period
	vAvg = d*in["Vhigh"] + (1-d)*in["Vlow"]
	return
}

// Evaluate 计算周期、导通与关断时间以及平均电压
func (PWM) Evaluate(in types.Inputs) (types.Outputs, error) {
	period, tOn, tOff, vAvg := pwmValues(in)
	ms := utils.Alt{Scale: 1e3, Digits: 3, Unit: "ms"}
	return types.Outputs{
		element.SetOutput("Vavg", "Average Voltage Vavg", vAvg, "V", utils.FormatFixed(vAvg, 3, "V")),
		element.SetOutput("Ton", "On Time Ton", tOn, "s", utils.FormatAlt(tOn, 6, "s", ms)),
		element.SetOutput("Toff", "Off Time Toff", tOff, "s", utils.FormatAlt(tOff, 6, "s", ms)),
		element.SetOutput("T", "Period T", period, "s", utils.FormatAlt(period, 6, "s", ms)),
	}, nil
}

// Waveform 矩形波，3个周期，角点构造
func (PWM) Waveform(in types.Inputs) (*types.Waveform, error) {
	_, tOn, tOff, vAvg := pwmValues(in)
	vHigh, vLow := in["Vhigh"], in["Vlow"]
	t, v := maths.PulseTrain(vLow, PWMCycles,
		maths.Segment{Duration: tOn, Level: vHigh},
		maths.Segment{Duration: tOff, Level: vLow},
	)
	w := &types.Waveform{
		Title:  fmt.Sprintf("PWM Waveform (3 cycles) - Duty Cycle = %.1f%%", in["D"]*100),
		XLabel: "Time (s)",
		YLabel: "Voltage (V)",
		Time:   t,
		Value:  v,
	}
	w.AddReference(types.AxisY, vAvg, fmt.Sprintf("Vavg = %.2fV", vAvg))
	w.AddReference(types.AxisY, vHigh, "Vhigh")
	w.AddReference(types.AxisY, vLow, "Vlow")
	return w, nil
}
