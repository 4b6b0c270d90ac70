package circuitsheet

import (
	"circuitsheet/element"
	"circuitsheet/types"
	"circuitsheet/utils"

	_ "circuitsheet/element/base"
)

// ModelInfo 菜单构建所需的模型信息
type ModelInfo struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    element.Category `json:"category"`
	Implemented bool             `json:"implemented"`
	HasWaveform bool             `json:"has_waveform"`
}

func modelInfo(m *element.Model) ModelInfo {
	return ModelInfo{
		ID:          m.ID(),
		Name:        m.Config.Name,
		Category:    m.Config.Category,
		Implemented: m.Implemented(),
		HasWaveform: m.HasWaveform(),
	}
}

// ListModels 按菜单顺序列出全部模型
func ListModels() []ModelInfo {
	list := element.List()
	infos := make([]ModelInfo, len(list))
	for i, m := range list {
		infos[i] = modelInfo(m)
	}
	return infos
}

// Categories 按菜单顺序列出分类
func Categories() []element.Category {
	return append([]element.Category(nil), element.Categories...)
}

// Info 获取单个模型信息
func Info(id string) (ModelInfo, error) {
	m, err := element.Lookup(id)
	if err != nil {
		return ModelInfo{}, err
	}
	return modelInfo(m), nil
}

// Parameters 获取模型的输入参数，按界面顺序排列
func Parameters(id string) ([]types.Parameter, error) {
	m, err := element.Lookup(id)
	if err != nil {
		return nil, err
	}
	return append([]types.Parameter(nil), m.Config.Params...), nil
}

// Defaults 获取输入框默认文本
func Defaults(id string) (map[string]string, error) {
	m, err := element.Lookup(id)
	if err != nil {
		return nil, err
	}
	return m.Config.Defaults(), nil
}

// Evaluate 解析输入文本并计算结果
func Evaluate(id string, raw map[string]string) (types.Outputs, error) {
	m, err := element.Lookup(id)
	if err != nil {
		return nil, err
	}
	return m.Evaluate(utils.Fields(raw))
}

// Waveform 解析输入文本并生成波形
func Waveform(id string, raw map[string]string) (*types.Waveform, error) {
	m, err := element.Lookup(id)
	if err != nil {
		return nil, err
	}
	return m.Waveform(utils.Fields(raw))
}

// Calculate 计算结果并在支持时生成波形，全部成功或全部失败
func Calculate(id string, raw map[string]string) (*types.Result, error) {
	m, err := element.Lookup(id)
	if err != nil {
		return nil, err
	}
	return m.Calculate(utils.Fields(raw))
}
