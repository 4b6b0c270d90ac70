package base

import (
	"errors"
	"testing"

	"circuitsheet/element"
	"circuitsheet/types"
	"circuitsheet/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPending(t *testing.T) {
	ids := []string{
		"current_divider", "rlc_circuit", "common_collector", "opamp_inverting",
		"opamp_noninverting", "timer555_monostable", "wien_bridge", "half_wave_rectifier",
		"full_wave_rectifier", "regulator_7805", "boost_converter", "buck_boost_converter",
		"three_phase_inverter", "rc_response", "rlc_transient", "three_phase_system",
		"power_factor_correction", "transformer", "standard_resistors", "tolerance",
	}
	for _, id := range ids {
		m, err := element.Lookup(id)
		require.NoError(t, err, "未注册模型 %s", id)
		assert.False(t, m.Implemented(), "%s 不应标记为已实现", id)
		assert.False(t, m.HasWaveform())

		// 输入不会被检查
		_, err = m.Evaluate(utils.Fields{"x": "abc"})
		var ue *types.UnimplementedError
		if !errors.As(err, &ue) {
			t.Errorf("%s: 期望未实现错误, 实际 %v", id, err)
			continue
		}
		assert.Equal(t, id, ue.ID)

		_, err = m.Waveform(nil)
		assert.ErrorIs(t, err, types.ErrUnimplemented)
		_, err = m.Calculate(nil)
		assert.ErrorIs(t, err, types.ErrUnimplemented)
	}
}
