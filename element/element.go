package element

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"circuitsheet/types"
)

// ModelType 模型类型标识，同时决定菜单中的排列顺序。
type ModelType uint

// Model 注册表中的模型条目。
// Capability 为 Unimplemented 时 Evaluator 与 Waveformer 均为 nil。
type Model struct {
	Type       ModelType  // 类型标识
	Config     *Config    // 静态配置
	Capability Capability // 能力标记
	Evaluator  Evaluator  // 计算实现
	Waveformer Waveformer // 波形实现，可为nil
	Checker    Checker    // 交叉约束，可为nil
}

// ElementList 模型注册表，键为模型类型。
// 只在包初始化期间写入，之后只读。
var ElementList = map[ModelType]*Model{}

// ElementListName 模型标识到类型的映射。
var ElementListName = map[string]ModelType{}

// AddElement 注册模型到全局注册表。
// 参数modelType: 模型类型标识，必须唯一。
// 参数face: 模型实现；实现了 Evaluator 的为已实现模型，否则为未实现模型。
// 返回：注册成功的模型类型标识。
// 注意：类型或标识重复注册会终止程序。
func AddElement(modelType ModelType, face ConfigFace) ModelType {
	config := face.GetConfig()
	if _, ok := ElementList[modelType]; ok {
		log.Fatalf("模型重复注册: %d", modelType)
	}
	if _, ok := ElementListName[config.ID]; ok {
		log.Fatalf("模型标识重复注册: %s", config.ID)
	}
	model := &Model{Type: modelType, Config: config}
	if ev, ok := face.(Evaluator); ok {
		model.Capability = Implemented
		model.Evaluator = ev
		model.Waveformer, _ = face.(Waveformer)
		model.Checker, _ = face.(Checker)
	}
	ElementList[modelType] = model
	ElementListName[config.ID] = modelType
	return modelType
}

// Lookup 按标识查找模型。
// 返回：模型条目；未注册时返回 types.ErrUnknownModel。
func Lookup(id string) (*Model, error) {
	t, ok := ElementListName[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownModel, id)
	}
	return ElementList[t], nil
}

// List 按类型顺序列出全部模型。
func List() []*Model {
	list := make([]*Model, 0, len(ElementList))
	for _, m := range ElementList {
		list = append(list, m)
	}
	slices.SortFunc(list, func(a, b *Model) int { return int(a.Type) - int(b.Type) })
	return list
}

// Config 获取指定模型类型的配置信息。
// 返回：配置指针，类型未注册时返回nil。
func (t ModelType) Config() *Config {
	if m, ok := ElementList[t]; ok {
		return m.Config
	}
	return nil
}

// String 返回模型标识。
func (t ModelType) String() string {
	if c := t.Config(); c != nil {
		return c.ID
	}
	return "unknown"
}
