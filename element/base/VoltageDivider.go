package base

import (
	"circuitsheet/element"
	"circuitsheet/types"
	"circuitsheet/utils"
)

// VoltageDividerType 定义模型
var VoltageDividerType element.ModelType = element.AddElement(2, &VoltageDivider{
	&element.Config{
		ID:       "voltage_divider",
		Name:     "Voltage Divider",
		Category: element.CategoryACDC,
		Params: []types.Parameter{
			element.Voltage("Vin", "Input Voltage Vin", 12),
			element.Resistance("R1", "Resistor R1", 10000),
			element.Resistance("R2", "Resistor R2", 10000),
		},
	},
})

// VoltageDivider 电阻分压器
type VoltageDivider struct{ *element.Config }

// Check 串联总电阻不能为0
func (VoltageDivider) Check(in types.Inputs) error {
	if sum := in["R1"] + in["R2"]; sum <= 0 {
		return types.NewDomainError("", "R1 + R2 must be > 0", sum)
	}
	return nil
}

// Evaluate 计算输出电压与分压比
func (VoltageDivider) Evaluate(in types.Inputs) (types.Outputs, error) {
	vin, r1, r2 := in["Vin"], in["R1"], in["R2"]
	vout := vin * r2 / (r1 + r2)
	// 输入为0时分压比定义为0
	ratio := 0.0
	if vin != 0 {
		ratio = vout / vin
	}
	return types.Outputs{
		element.SetOutput("Vout", "Output Voltage Vout", vout, "V", utils.FormatFixed(vout, 4, "V")),
		element.SetOutput("ratio", "Ratio", ratio, "", utils.FormatPercent(ratio)),
	}, nil
}
