package base

import (
	"testing"

	"circuitsheet/types"
	"circuitsheet/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommonEmitter(t *testing.T) {
	out := evaluate(t, "common_emitter", nil)

	vb := 12.0 * 10000 / 57000
	ve := vb - 0.7
	ic := ve / 1000
	vce := 12 - ic*2200 - ve
	assert.InDelta(t, vb, out.Value("VB"), 1e-12, "基极电压不正确")
	assert.InDelta(t, ve, out.Value("VE"), 1e-12, "发射极电压不正确")
	assert.InDelta(t, ic, out.Value("IC"), 1e-12, "集电极电流不正确")
	assert.InDelta(t, ic/100, out.Value("IB"), 1e-12, "基极电流不正确")
	assert.InDelta(t, vce, out.Value("VCE"), 1e-9, "VCE不正确")
	assert.InDelta(t, -2200/(0.026/ic), out.Value("Av"), 1e-9, "增益不正确")
	assert.InDelta(t, 47000.0*10000/57000, out.Value("Zi"), 1e-9, "输入阻抗不正确")

	ib, _ := out.Get("IB")
	assert.Equal(t, utils.FormatFixed(ic/100*1e6, 2, "μA"), ib.Display)

	region, ok := out.Get("region")
	require.True(t, ok)
	assert.Equal(t, "active region", region.Display)
	assert.Equal(t, float64(RegionActive), region.Value)
}

func TestCommonEmitterClassify(t *testing.T) {
	assert.Equal(t, RegionSaturation, Classify(0.1, 0.01))
	// 饱和优先于截止
	assert.Equal(t, RegionSaturation, Classify(0.1, 0.0001))
	assert.Equal(t, RegionCutoff, Classify(5, 0.0005))
	assert.Equal(t, RegionActive, Classify(5, 0.002))
}

func TestCommonEmitterSaturation(t *testing.T) {
	// 大集电极电阻使 VCE 跌到饱和
	out := evaluate(t, "common_emitter", utils.Fields{"RC": "10000"})
	region, _ := out.Get("region")
	assert.Equal(t, "saturation", region.Display)
}

func TestCommonEmitterLoadLine(t *testing.T) {
	w := waveform(t, "common_emitter", nil)
	require.NoError(t, w.Validate())
	require.Equal(t, 2, w.Len())

	// 负载线端点 (0, VCC/(RC+RE)) 与 (VCC, 0)
	assert.Equal(t, 0.0, w.Time[0])
	assert.InDelta(t, 12.0/3200, w.Value[0], 1e-15)
	assert.Equal(t, 12.0, w.Time[1])
	assert.Equal(t, 0.0, w.Value[1])

	require.Len(t, w.Markers, 1)
	out := evaluate(t, "common_emitter", nil)
	assert.InDelta(t, out.Value("VCE"), w.Markers[0].X, 1e-12)
	assert.InDelta(t, out.Value("IC"), w.Markers[0].Y, 1e-12)
	assert.Contains(t, w.Markers[0].Label, "active region")
}

func TestCommonEmitterReverseBias(t *testing.T) {
	// VB 低于 VBE 时发射结无法正偏，提示截止
	err := evaluateErr(t, "common_emitter", utils.Fields{"R2": "100"})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrDomain)
	assert.Contains(t, err.Error(), "cutoff")
}
