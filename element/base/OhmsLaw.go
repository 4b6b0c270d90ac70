package base

import (
	"circuitsheet/element"
	"circuitsheet/maths"
	"circuitsheet/types"
	"circuitsheet/utils"
)

// OhmsLawType 定义模型
var OhmsLawType element.ModelType = element.AddElement(1, &OhmsLaw{
	&element.Config{
		ID:       "ohms_law",
		Name:     "Ohm's Law",
		Category: element.CategoryACDC,
		Params: []types.Parameter{
			element.Voltage("V", "Voltage V", 12),
			element.SetParam("R", "Resistance R", "Ω", 1000, "≠ 0", maths.NonZero[float64]), // 允许负阻
		},
	},
})

// OhmsLaw 欧姆定律 I = V/R, P = V·I
type OhmsLaw struct{ *element.Config }

// Evaluate 计算电流与功率
func (OhmsLaw) Evaluate(in types.Inputs) (types.Outputs, error) {
	v, r := in["V"], in["R"]
	i := v / r
	p := v * i
	return types.Outputs{
		element.SetOutput("I", "Current I", i, "A", utils.FormatAlt(i, 6, "A", utils.Milli("A"))),
		element.SetOutput("P", "Power P", p, "W", utils.FormatAlt(p, 6, "W", utils.Milli("W"))),
	}, nil
}
