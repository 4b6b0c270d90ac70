package element

import (
	"circuitsheet/maths"
	"circuitsheet/types"
	"circuitsheet/utils"
)

// Category 电路分类，对应菜单的子菜单。
type Category string

// 分类常量定义，顺序即菜单顺序。
const (
	CategoryACDC              Category = "AC/DC"
	CategoryAmplifiers        Category = "Amplifiers"
	CategoryOscillators       Category = "Oscillators"
	CategoryPowerSupplies     Category = "Power Supplies"
	CategoryPowerElectronics  Category = "Power Electronics"
	CategoryElectricalSystems Category = "Electrical Systems"
	CategoryTools             Category = "Tools"
)

// Categories 全部分类，按菜单顺序排列。
var Categories = []Category{
	CategoryACDC,
	CategoryAmplifiers,
	CategoryOscillators,
	CategoryPowerSupplies,
	CategoryPowerElectronics,
	CategoryElectricalSystems,
	CategoryTools,
}

// Config 电路模型配置结构体，存储模型的静态配置信息。
// 这些配置在模型注册时初始化，之后不再修改。
type Config struct {
	ID       string            // 稳定标识（如 "ohms_law"）。
	Name     string            // 显示名称。
	Category Category          // 所属分类。
	Params   []types.Parameter // 输入参数列表，顺序即界面与命令行顺序。
}

// GetConfig 获取模型配置结构体指针。
func (config *Config) GetConfig() *Config { return config }

// Param 按名称查找参数。
// 返回：参数定义，以及是否找到。
func (config *Config) Param(name string) (types.Parameter, bool) {
	for _, p := range config.Params {
		if p.Name == name {
			return p, true
		}
	}
	return types.Parameter{}, false
}

// Defaults 获取全部参数的默认输入文本。
// 百分数参数保持百分数形式，与输入框一致。
func (config *Config) Defaults() utils.Fields {
	fields := make(utils.Fields, len(config.Params))
	for _, p := range config.Params {
		fields[p.Name] = utils.FromFloat64(p.Default)
	}
	return fields
}

// SetParam 创建输入参数。
// 参数check: 取值校验，为nil时接受任意有限数值。
// 参数constraint: 约束描述，用于错误提示。
func SetParam(name, label, unit string, value float64, constraint string, check types.Check) types.Parameter {
	return types.Parameter{
		Name:       name,
		Label:      label,
		Unit:       unit,
		Default:    value,
		Constraint: constraint,
		Check:      check,
	}
}

// Voltage 电压参数，任意有限值。
func Voltage(name, label string, value float64) types.Parameter {
	return SetParam(name, label, "V", value, "", nil)
}

// PositiveVoltage 正电压参数。
func PositiveVoltage(name, label string, value float64) types.Parameter {
	return SetParam(name, label, "V", value, "> 0", maths.Positive[float64])
}

// Resistance 电阻参数，必须大于0。
func Resistance(name, label string, value float64) types.Parameter {
	return SetParam(name, label, "Ω", value, "> 0", maths.Positive[float64])
}

// Capacitance 电容参数，必须大于0。
func Capacitance(name, label string, value float64) types.Parameter {
	return SetParam(name, label, "F", value, "> 0", maths.Positive[float64])
}

// Inductance 电感参数，必须大于0。
func Inductance(name, label string, value float64) types.Parameter {
	return SetParam(name, label, "H", value, "> 0", maths.Positive[float64])
}

// Frequency 频率参数，必须大于0。
func Frequency(name, label string, value float64) types.Parameter {
	return SetParam(name, label, "Hz", value, "> 0", maths.Positive[float64])
}

// Ratio 比例参数，属于[0,1]。
func Ratio(name, label string, value float64) types.Parameter {
	return SetParam(name, label, "", value, "in [0, 1]", maths.Unit[float64])
}

// PercentRatio 以百分数输入的比例参数，属于[0,100]，内部归一化到[0,1]。
func PercentRatio(name, label string, value float64) types.Parameter {
	p := SetParam(name, label, "%", value, "in [0, 100]", maths.Percent[float64])
	p.Percent = true
	return p
}

// SetOutput 创建计算结果。
// 参数display: 预格式化显示文本，为空时按工程前缀自动格式化。
func SetOutput(name, label string, value float64, unit, display string) types.Output {
	if display == "" {
		display = utils.FormatValueFactor(value, unit)
	}
	return types.Output{Name: name, Label: label, Value: value, Unit: unit, Display: display}
}
