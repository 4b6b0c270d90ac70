package element

import (
	"fmt"

	"circuitsheet/maths"
	"circuitsheet/types"
	"circuitsheet/utils"
)

// ID 模型标识。
func (m *Model) ID() string { return m.Config.ID }

// Implemented 是否已实现计算。
func (m *Model) Implemented() bool { return m.Capability == Implemented }

// HasWaveform 是否提供波形。
func (m *Model) HasWaveform() bool { return m.Implemented() && m.Waveformer != nil }

// unimplemented 未实现模型的提示错误。
func (m *Model) unimplemented() error {
	return &types.UnimplementedError{ID: m.Config.ID, Name: m.Config.Name}
}

// prepare 解析输入并执行交叉约束。
func (m *Model) prepare(raw utils.Fields) (types.Inputs, error) {
	if !m.Implemented() {
		return nil, m.unimplemented()
	}
	in, err := m.Config.Parse(raw)
	if err != nil {
		return nil, err
	}
	if m.Checker != nil {
		if err := m.Checker.Check(in); err != nil {
			return nil, err
		}
	}
	return in, nil
}

// Evaluate 解析输入并计算结果。
// 未实现模型直接返回 types.UnimplementedError，不检查输入。
func (m *Model) Evaluate(raw utils.Fields) (types.Outputs, error) {
	in, err := m.prepare(raw)
	if err != nil {
		return nil, err
	}
	return m.evaluate(in)
}

// evaluate 计算结果，溢出为非有限数值时返回定义域错误。
func (m *Model) evaluate(in types.Inputs) (types.Outputs, error) {
	outputs, err := m.Evaluator.Evaluate(in)
	if err != nil {
		return nil, err
	}
	for _, o := range outputs {
		if !maths.Finite(o.Value) {
			return nil, fmt.Errorf("%s: %w", m.Config.ID, types.NonFiniteError(o.Name, o.Value))
		}
	}
	return outputs, nil
}

// Waveform 解析输入并生成波形。
// 没有波形的模型返回 types.ErrNoWaveform。
func (m *Model) Waveform(raw utils.Fields) (*types.Waveform, error) {
	if m.Implemented() && m.Waveformer == nil {
		return nil, fmt.Errorf("%s: %w", m.Config.ID, types.ErrNoWaveform)
	}
	in, err := m.prepare(raw)
	if err != nil {
		return nil, err
	}
	return m.waveform(in)
}

func (m *Model) waveform(in types.Inputs) (*types.Waveform, error) {
	w, err := m.Waveformer.Waveform(in)
	if err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", m.Config.ID, err)
	}
	return w, nil
}

// Calculate 计算结果并在支持时生成波形。
// 要么返回完整的结果与波形，要么只返回错误。
func (m *Model) Calculate(raw utils.Fields) (*types.Result, error) {
	in, err := m.prepare(raw)
	if err != nil {
		return nil, err
	}
	outputs, err := m.evaluate(in)
	if err != nil {
		return nil, err
	}
	result := &types.Result{ID: m.Config.ID, Outputs: outputs}
	if m.Waveformer != nil {
		if result.Waveform, err = m.waveform(in); err != nil {
			return nil, err
		}
	}
	return result, nil
}
