package chart

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"circuitsheet/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() *Record {
	wf := &types.Waveform{
		Title:  "Load Line",
		XLabel: "VCE (V)",
		YLabel: "IC (A)",
		Time:   []float64{0, 12},
		Value:  []float64{0.00375, 0},
	}
	wf.AddReference(types.AxisX, 7.5, "VCE(Q)")
	wf.AddReference(types.AxisY, 0.0014, "IC(Q)")
	wf.AddMarker(7.5, 0.0014, "Q")
	return NewRecord("Common Emitter Amplifier", &types.Result{
		ID:       "common_emitter",
		Outputs:  types.Outputs{{Name: "VCE", Label: "VCE", Value: 7.5, Unit: "V", Display: "7.500 V"}},
		Waveform: wf,
	})
}

func TestRecordRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testRecord().Render(&buf))

	var got Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "common_emitter", got.ID)
	require.NotNil(t, got.Waveform)
	assert.Len(t, got.Waveform.References, 2)
	assert.Equal(t, []string{"VCE: 7.500 V"}, testRecord().Lines())
}

func TestRecordTitle(t *testing.T) {
	r := testRecord()
	assert.Equal(t, "Load Line", r.Title())
	r.Waveform = nil
	assert.Equal(t, "Common Emitter Amplifier", r.Title())
}

func TestChartsRender(t *testing.T) {
	c := NewCharts(testRecord(), Options{})
	assert.Equal(t, DefaultOptions, c.Options)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "VCE(Q)")
	assert.Contains(t, html, "markLine")
	assert.Contains(t, html, "scatter")
}

func TestChartsSummary(t *testing.T) {
	r := testRecord()
	r.Waveform = nil
	var buf bytes.Buffer
	require.NoError(t, NewCharts(r, Options{Width: 600}).Render(&buf))
	assert.Contains(t, buf.String(), "VCE: 7.500 V")
	assert.Contains(t, buf.String(), "600px")
}

func TestChartsHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NewCharts(testRecord(), DefaultOptions).Handler(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestPlot(t *testing.T) {
	for _, format := range Formats {
		p, err := NewPlot(testRecord(), 0, 0, format)
		require.NoError(t, err)

		var buf bytes.Buffer
		n, err := p.WriteTo(&buf)
		require.NoError(t, err, "绘图失败 %s", format)
		assert.Positive(t, n)
		assert.Equal(t, int64(buf.Len()), n)
	}

	p, _ := NewPlot(testRecord(), 0, 0, "")
	assert.Equal(t, "image/png", p.ContentType())
	var buf bytes.Buffer
	_, _ = p.WriteTo(&buf)
	assert.Equal(t, []byte("\x89PNG"), buf.Bytes()[:4])
}

func TestPlotErrors(t *testing.T) {
	_, err := NewPlot(testRecord(), 0, 0, "bmp")
	assert.ErrorIs(t, err, ErrFormat)

	r := testRecord()
	r.Waveform = nil
	p, err := NewPlot(r, 0, 0, FormatSVG)
	require.NoError(t, err)
	_, err = p.WriteTo(&bytes.Buffer{})
	assert.ErrorIs(t, err, types.ErrNoWaveform)
}
