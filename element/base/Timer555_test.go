package base

import (
	"testing"

	"circuitsheet/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimer555(t *testing.T) {
	out := evaluate(t, "timer555_astable", nil)

	tHigh := 0.693 * (75000 + 30000) * 47e-9
	tLow := 0.693 * 30000 * 47e-9
	period := tHigh + tLow
	assert.InDelta(t, tHigh, out.Value("Thigh"), 1e-12, "高电平时间不正确")
	assert.InDelta(t, tLow, out.Value("Tlow"), 1e-12, "低电平时间不正确")
	assert.InDelta(t, period, out.Value("T"), 1e-12, "周期不正确")
	assert.InDelta(t, 1/period, out.Value("f"), 1e-6, "频率不正确")
	assert.InDelta(t, 100*tHigh/period, out.Value("duty"), 1e-9, "占空比不正确")

	// 高电平时间约 3.420 ms，低电平约 0.977 ms
	assert.InDelta(t, 3.420e-3, out.Value("Thigh"), 1e-6)
	assert.InDelta(t, 0.977e-3, out.Value("Tlow"), 1e-6)
	// 占空比总是大于50%
	assert.Greater(t, out.Value("duty"), 50.0)
}

func TestTimer555Waveform(t *testing.T) {
	w := waveform(t, "timer555_astable", utils.Fields{"VCC": "12"})
	require.NoError(t, w.Validate())

	for i, v := range w.Value {
		if v < 0 || v > 12 {
			t.Fatalf("电压超出范围: 第%d点 %v", i, v)
		}
	}
	rising, falling := edges(w.Time, w.Value)
	assert.Equal(t, Timer555Cycles, rising, "上升沿数量不正确")
	assert.Equal(t, Timer555Cycles, falling, "下降沿数量不正确")

	out := evaluate(t, "timer555_astable", nil)
	assert.InDelta(t, 3*out.Value("T"), w.Time[w.Len()-1], 1e-12, "波形时长不正确")

	require.Len(t, w.References, 1)
	assert.Equal(t, 6.0, w.References[0].Value)
}

func TestTimer555InvalidVCC(t *testing.T) {
	err := evaluateErr(t, "timer555_astable", utils.Fields{"VCC": "-5"})
	assert.Error(t, err)
}
