package circuitsheet

import (
	"testing"

	"circuitsheet/element"
	"circuitsheet/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListModels(t *testing.T) {
	models := ListModels()
	require.Len(t, models, 28)
	assert.Equal(t, ModelInfo{
		ID:          "ohms_law",
		Name:        "Ohm's Law",
		Category:    element.CategoryACDC,
		Implemented: true,
	}, models[0])

	waveforms := 0
	for _, m := range models {
		if m.HasWaveform {
			waveforms++
		}
	}
	assert.Equal(t, 5, waveforms, "带波形的模型数量不正确")
	assert.Equal(t, element.Categories, Categories())
}

func TestParametersAndDefaults(t *testing.T) {
	ps, err := Parameters("timer555_astable")
	require.NoError(t, err)
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"R1", "R2", "C", "VCC"}, names)

	d, err := Defaults("timer555_astable")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"R1": "75000", "R2": "30000", "C": "4.7e-08", "VCC": "12"}, d)

	// 默认文本重新解析后结果与缺省一致
	a, err := Evaluate("timer555_astable", d)
	require.NoError(t, err)
	b, err := Evaluate("timer555_astable", nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = Parameters("nope")
	assert.ErrorIs(t, err, types.ErrUnknownModel)
	_, err = Defaults("nope")
	assert.ErrorIs(t, err, types.ErrUnknownModel)
}

func TestCalculate(t *testing.T) {
	res, err := Calculate("pwm_analysis", map[string]string{"D": "75"})
	require.NoError(t, err)
	assert.InDelta(t, 3.75, res.Outputs.Value("Vavg"), 1e-12)
	require.NotNil(t, res.Waveform)

	w, err := Waveform("pwm_analysis", map[string]string{"D": "75"})
	require.NoError(t, err)
	assert.Equal(t, res.Waveform, w)

	_, err = Calculate("pwm_analysis", map[string]string{"D": "-1"})
	assert.ErrorIs(t, err, types.ErrDomain)

	_, err = Waveform("voltage_divider", nil)
	assert.ErrorIs(t, err, types.ErrNoWaveform)

	_, err = Evaluate("wien_bridge", nil)
	assert.ErrorIs(t, err, types.ErrUnimplemented)
}

func TestInfo(t *testing.T) {
	info, err := Info("common_emitter")
	require.NoError(t, err)
	assert.True(t, info.HasWaveform)
	assert.Equal(t, element.CategoryAmplifiers, info.Category)

	_, err = Info("")
	assert.ErrorIs(t, err, types.ErrUnknownModel)
}
