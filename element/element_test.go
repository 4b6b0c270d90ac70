package element

import (
	"testing"

	"circuitsheet/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct{ *Config }

func (stubModel) Evaluate(in types.Inputs) (types.Outputs, error) {
	return types.Outputs{SetOutput("twice", "2V", 2*in["V"], "V", "")}, nil
}

type stubWave struct{ stubModel }

func (stubWave) Waveform(in types.Inputs) (*types.Waveform, error) {
	// 起点不为0，校验应失败
	return &types.Waveform{Time: []float64{1, 2}, Value: []float64{0, in["V"]}}, nil
}

func TestAddElement(t *testing.T) {
	c := testConfig()
	c.ID = "stub_eval"
	typ := AddElement(1000, stubModel{c})
	t.Cleanup(func() {
		delete(ElementList, typ)
		delete(ElementListName, c.ID)
	})

	m, err := Lookup(" stub_eval ")
	require.NoError(t, err)
	assert.Equal(t, Implemented, m.Capability)
	assert.False(t, m.HasWaveform())
	assert.Equal(t, "stub_eval", typ.String())
	assert.Same(t, c, typ.Config())

	out, err := m.Evaluate(map[string]string{"V": "2"})
	require.NoError(t, err)
	assert.Equal(t, 4.0, out.Value("twice"))

	_, err = m.Waveform(nil)
	assert.ErrorIs(t, err, types.ErrNoWaveform)
}

func TestInvalidWaveformRejected(t *testing.T) {
	c := testConfig()
	c.ID = "stub_wave"
	typ := AddElement(1001, stubWave{stubModel{c}})
	t.Cleanup(func() {
		delete(ElementList, typ)
		delete(ElementListName, c.ID)
	})

	m, err := Lookup("stub_wave")
	require.NoError(t, err)
	assert.True(t, m.HasWaveform())

	// 波形无效时整体失败，不返回部分结果
	res, err := m.Calculate(nil)
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestUnknownType(t *testing.T) {
	assert.Nil(t, ModelType(9999).Config())
	assert.Equal(t, "unknown", ModelType(9999).String())
	assert.Equal(t, "implemented", Implemented.String())
	assert.Equal(t, "unimplemented", Unimplemented.String())
}
