package base

import (
	"testing"

	"circuitsheet/element"
	"circuitsheet/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRCCircuit(t *testing.T) {
	out := evaluate(t, "rc_circuit", utils.Fields{"R": "10000", "C": "0.0001"})
	if tau := out.Value("tau"); abs(tau-1) > 1e-12 {
		t.Errorf("时间常数不正确: 期望 %v, 实际 %v", 1, tau)
	}
	if fc := out.Value("fc"); abs(fc-0.15915494) > 1e-6 {
		t.Errorf("截止频率不正确: 期望 %v, 实际 %v", 0.15915494, fc)
	}
	if t5 := out.Value("t5tau"); abs(t5-5) > 1e-12 {
		t.Errorf("稳定时间不正确: 期望 %v, 实际 %v", 5, t5)
	}
}

func TestRCCircuitNoWaveform(t *testing.T) {
	m, err := element.Lookup("rc_circuit")
	require.NoError(t, err)
	assert.False(t, m.HasWaveform())

	// 没有波形的模型 Calculate 只返回结果
	res, err := m.Calculate(nil)
	require.NoError(t, err)
	assert.Nil(t, res.Waveform)
	assert.Len(t, res.Outputs, 3)
}
