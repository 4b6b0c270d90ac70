package base

import (
	"testing"

	"circuitsheet/element"
	"circuitsheet/types"
	"circuitsheet/utils"

	"github.com/stretchr/testify/require"
)

// evaluate 按标识查找模型并计算
func evaluate(t *testing.T, id string, raw utils.Fields) types.Outputs {
	t.Helper()
	m, err := element.Lookup(id)
	require.NoError(t, err)
	out, err := m.Evaluate(raw)
	require.NoError(t, err, "计算失败 %s", id)
	return out
}

// waveform 按标识查找模型并生成波形
func waveform(t *testing.T, id string, raw utils.Fields) *types.Waveform {
	t.Helper()
	m, err := element.Lookup(id)
	require.NoError(t, err)
	w, err := m.Waveform(raw)
	require.NoError(t, err, "生成波形失败 %s", id)
	return w
}

// evaluateErr 计算并返回错误
func evaluateErr(t *testing.T, id string, raw utils.Fields) error {
	t.Helper()
	m, err := element.Lookup(id)
	require.NoError(t, err)
	_, err = m.Evaluate(raw)
	return err
}

// edges 统计角点序列中的上升沿与下降沿
func edges(t, v []float64) (rising, falling int) {
	for i := 1; i < len(t); i++ {
		if t[i] != t[i-1] {
			continue
		}
		switch {
		case v[i] > v[i-1]:
			rising++
		case v[i] < v[i-1]:
			falling++
		}
	}
	return rising, falling
}
