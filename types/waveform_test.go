package types

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaveformValidate(t *testing.T) {
	w := &Waveform{Time: []float64{0, 1, 1, 2}, Value: []float64{0, 0, 1, 1}}
	assert.NoError(t, w.Validate())

	cases := map[string]*Waveform{
		"长度不一致": {Time: []float64{0, 1}, Value: []float64{0}},
		"点数不足":  {Time: []float64{0}, Value: []float64{0}},
		"起点不为0": {Time: []float64{1, 2}, Value: []float64{0, 0}},
		"时间递减":  {Time: []float64{0, 2, 1}, Value: []float64{0, 0, 0}},
		"非有限值":  {Time: []float64{0, 1}, Value: []float64{0, math.NaN()}},
	}
	for name, w := range cases {
		if err := w.Validate(); err == nil {
			t.Errorf("%s: 期望校验失败", name)
		}
	}

	w = &Waveform{Time: []float64{0, 1}, Value: []float64{0, math.Inf(1)}}
	err := w.Validate()
	assert.ErrorIs(t, err, ErrDomain, "非有限采样应为定义域错误")
	assert.Contains(t, err.Error(), "waveform value[1]")
}

func TestWaveformReferences(t *testing.T) {
	w := &Waveform{}
	w.AddReference(AxisY, 1.5, "a")
	w.AddMarker(1, 2, "Q")
	assert.Equal(t, []ReferenceLine{{Value: 1.5, Label: "a", Axis: AxisY}}, w.References)
	assert.Equal(t, []Marker{{X: 1, Y: 2, Label: "Q"}}, w.Markers)
}

func TestErrors(t *testing.T) {
	err := NewDomainError("R", "> 0", -1)
	assert.True(t, errors.Is(err, ErrDomain))
	assert.Equal(t, "R must satisfy > 0 (got -1)", err.Error())
	assert.Equal(t, "R1 + R2 must be > 0 (got 0)", NewDomainError("", "R1 + R2 must be > 0", 0).Error())

	pe := &ParseError{Param: "V", Text: "x"}
	assert.ErrorIs(t, pe, ErrParse)
	assert.Equal(t, `V: "x" is not a valid number`, pe.Error())

	ue := &UnimplementedError{ID: "tolerance", Name: "Tolerance"}
	assert.ErrorIs(t, ue, ErrUnimplemented)

	up := &UnknownParamError{Param: "r", ID: "ohms_law"}
	assert.ErrorIs(t, up, ErrUnknownParam)
	assert.Equal(t, `unknown parameter: ohms_law has no parameter "r"`, up.Error())

	nf := NonFiniteError("I", math.Inf(1))
	assert.ErrorIs(t, nf, ErrDomain)
	assert.Equal(t, "I must satisfy a finite result (got +Inf)", nf.Error())
}
