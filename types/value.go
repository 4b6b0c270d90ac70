package types

// Inputs 已解析的输入值，键为参数名称
type Inputs map[string]float64

// Check 参数取值校验
type Check func(v float64) bool

// Parameter 电路模型的一个输入参数
type Parameter struct {
	Name       string  `json:"name"`       // 参数名称，也是命令行参数名
	Label      string  `json:"label"`      // 显示标签
	Unit       string  `json:"unit"`       // 单位
	Default    float64 `json:"default"`    // 默认值
	Constraint string  `json:"constraint"` // 取值约束描述
	Percent    bool    `json:"percent"`    // 以百分数输入，内部归一化到[0,1]
	Check      Check   `json:"-"`          // 取值校验
}

// Valid 校验参数值
func (p Parameter) Valid(v float64) bool {
	if p.Check == nil {
		return true
	}
	return p.Check(v)
}

// Normalize 百分数参数转换为比例
func (p Parameter) Normalize(v float64) float64 {
	if p.Percent {
		return v / 100
	}
	return v
}

// Output 计算结果
type Output struct {
	Name    string  `json:"name"`    // 结果名称
	Label   string  `json:"label"`   // 显示标签
	Value   float64 `json:"value"`   // 数值(国际单位)
	Unit    string  `json:"unit"`    // 单位
	Display string  `json:"display"` // 预格式化显示文本
}

// Outputs 结果列表
type Outputs []Output

// Get 按名称获取结果
func (out Outputs) Get(name string) (Output, bool) {
	for _, o := range out {
		if o.Name == name {
			return o, true
		}
	}
	return Output{}, false
}

// Value 按名称获取结果数值
func (out Outputs) Value(name string) float64 {
	o, _ := out.Get(name)
	return o.Value
}

// Result 一次计算的完整结果
type Result struct {
	ID       string    `json:"id"`
	Outputs  Outputs   `json:"outputs"`
	Waveform *Waveform `json:"waveform,omitempty"`
}
