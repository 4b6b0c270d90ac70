package chart

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	echartstypes "github.com/go-echarts/go-echarts/v2/types"

	"circuitsheet/types"
)

// Options 网页图表选项
type Options struct {
	Theme  string // 主题，见 go-echarts types.Theme*
	Width  int    // 画布宽度(px)
	Height int    // 画布高度(px)
}

// DefaultOptions 默认网页图表选项
var DefaultOptions = Options{Theme: echartstypes.ThemeWesteros, Width: 900, Height: 500}

// Charts 曲线绘制
type Charts struct {
	*Record
	Options
}

// NewCharts 创建网页图表
func NewCharts(r *Record, o Options) *Charts {
	if o.Theme == "" {
		o.Theme = DefaultOptions.Theme
	}
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.Height <= 0 {
		o.Height = DefaultOptions.Height
	}
	return &Charts{Record: r, Options: o}
}

func (c *Charts) initOpts() opts.Initialization {
	return opts.Initialization{
		PageTitle: c.Name,
		Theme:     c.Theme,
		Width:     px(c.Width),
		Height:    px(c.Height),
	}
}

// Render 格式化
// 有波形时输出曲线、参考线与标注点，结果列表放在副标题
func (c *Charts) Render(w io.Writer) error {
	page := components.NewPage()
	page.SetPageTitle(c.Name)
	if c.Waveform == nil {
		page.AddCharts(c.summary())
		return page.Render(w)
	}
	page.AddCharts(c.line(c.Waveform))
	return page.Render(w)
}

// summary 没有波形时只显示结果
func (c *Charts) summary() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(c.initOpts()),
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title(),
			Subtitle: strings.Join(c.Lines(), "\n"),
		}),
	)
	return line
}

func (c *Charts) line(wf *types.Waveform) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(c.initOpts()),
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title(),
			Subtitle: strings.Join(c.Lines(), "\n"),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: wf.XLabel, Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: wf.YLabel, Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)

	items := make([]opts.LineData, wf.Len())
	for i := range wf.Time {
		items[i] = opts.LineData{Value: []float64{wf.Time[i], wf.Value[i]}}
	}
	line.AddSeries(wf.YLabel, items,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		markLines(wf.References),
	)

	// 标注点
	if len(wf.Markers) > 0 {
		points := make([]opts.ScatterData, len(wf.Markers))
		for i, m := range wf.Markers {
			points[i] = opts.ScatterData{Name: m.Label, Value: []float64{m.X, m.Y}, SymbolSize: 12}
		}
		scatter := charts.NewScatter()
		scatter.AddSeries("Q", points,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right", Formatter: "{b}"}),
		)
		line.Overlap(scatter)
	}
	return line
}

// markLines 参考线转换为标线
func markLines(refs []types.ReferenceLine) charts.SeriesOpts {
	var xs []opts.MarkLineNameXAxisItem
	var ys []opts.MarkLineNameYAxisItem
	for _, r := range refs {
		switch r.Axis {
		case types.AxisX:
			xs = append(xs, opts.MarkLineNameXAxisItem{Name: r.Label, XAxis: r.Value})
		default:
			ys = append(ys, opts.MarkLineNameYAxisItem{Name: r.Label, YAxis: r.Value})
		}
	}
	return func(s *charts.SingleSeries) {
		charts.WithMarkLineNameXAxisItemOpts(xs...)(s)
		charts.WithMarkLineNameYAxisItemOpts(ys...)(s)
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol: []string{"none", "none"},
			Label:  &opts.Label{Show: opts.Bool(true), Formatter: "{b}"},
		})(s)
	}
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

func px(n int) string { return strconv.Itoa(n) + "px" }
