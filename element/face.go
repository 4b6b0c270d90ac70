package element

import "circuitsheet/types"

// ConfigFace 模型配置接口，提供模型的静态配置信息。
// 所有注册的模型都必须实现此接口。
type ConfigFace interface {
	GetConfig() *Config // 获取模型配置结构体指针
}

// Evaluator 计算接口，已验证的输入映射为有序结果。
// 实现必须是纯函数，不保留任何状态。
type Evaluator interface {
	Evaluate(in types.Inputs) (types.Outputs, error)
}

// Waveformer 波形接口，已验证的输入映射为波形采样。
// 只有具有时域行为（或负载线）的模型实现此接口。
type Waveformer interface {
	Waveform(in types.Inputs) (*types.Waveform, error)
}

// Checker 模型级交叉约束，在单个参数校验通过后调用。
type Checker interface {
	Check(in types.Inputs) error
}

// Capability 模型能力标记。
type Capability uint8

// 能力常量定义
const (
	Unimplemented Capability = iota // 尚未实现，只占据菜单位置
	Implemented                     // 已实现计算
)

// String 返回能力的字符串表示。
func (c Capability) String() string {
	if c == Implemented {
		return "implemented"
	}
	return "unimplemented"
}
