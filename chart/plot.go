package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"circuitsheet/maths"
	"circuitsheet/types"
)

// 静态图片格式
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Formats 支持的静态图片格式
var Formats = []string{FormatPNG, FormatSVG}

// ErrFormat 不支持的图片格式
var ErrFormat = fmt.Errorf("unsupported image format, want one of %v", Formats)

// 参考线颜色
var (
	waveColor = color.RGBA{R: 0x19, G: 0x87, B: 0xc7, A: 0xff}
	refColor  = color.RGBA{R: 0xc7, G: 0x19, B: 0x79, A: 0xb7}
)

// Plot 静态图片绘制
type Plot struct {
	*Record
	Width  vg.Length // 图片宽度
	Height vg.Length // 图片高度
	Format string    // png 或 svg
}

// NewPlot 创建静态图片
// 参数width,height: 图片尺寸(英寸)，不大于0时使用 6×4
func NewPlot(r *Record, width, height float64, format string) (*Plot, error) {
	if format == "" {
		format = FormatPNG
	}
	if format != FormatPNG && format != FormatSVG {
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if width <= 0 {
		width = 6
	}
	if height <= 0 {
		height = 4
	}
	return &Plot{Record: r, Width: vg.Length(width) * vg.Inch, Height: vg.Length(height) * vg.Inch, Format: format}, nil
}

// ContentType 图片的 MIME 类型
func (p *Plot) ContentType() string {
	if p.Format == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Build 构建波形图
func (p *Plot) Build() (*plot.Plot, error) {
	wf := p.Waveform
	if wf == nil {
		return nil, fmt.Errorf("%s: %w", p.ID, types.ErrNoWaveform)
	}
	pl := plot.New()
	pl.Title.Text = p.Title()
	pl.X.Label.Text = wf.XLabel
	pl.Y.Label.Text = wf.YLabel
	pl.Add(plotter.NewGrid())

	xys := make(plotter.XYs, wf.Len())
	for i := range wf.Time {
		xys[i].X, xys[i].Y = wf.Time[i], wf.Value[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.Color = waveColor
	line.Width = vg.Points(1.5)
	pl.Add(line)
	pl.Legend.Add(wf.YLabel, line)

	// 参考线跨越数据范围
	xMin, xMax := maths.Bounds(wf.Time)
	yMin, yMax := maths.Bounds(wf.Value)
	for _, r := range wf.References {
		var pts plotter.XYs
		switch r.Axis {
		case types.AxisX:
			pts = plotter.XYs{{X: r.Value, Y: min(yMin, 0)}, {X: r.Value, Y: yMax}}
		default:
			pts = plotter.XYs{{X: xMin, Y: r.Value}, {X: xMax, Y: r.Value}}
		}
		ref, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		ref.Color = refColor
		ref.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		pl.Add(ref)
		pl.Legend.Add(r.Label, ref)
	}

	if len(wf.Markers) > 0 {
		labels := plotter.XYLabels{XYs: make(plotter.XYs, len(wf.Markers)), Labels: make([]string, len(wf.Markers))}
		for i, m := range wf.Markers {
			labels.XYs[i].X, labels.XYs[i].Y = m.X, m.Y
			labels.Labels[i] = m.Label
		}
		sc, err := plotter.NewScatter(labels.XYs)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle = draw.GlyphStyle{Color: refColor, Radius: vg.Points(4), Shape: draw.CircleGlyph{}}
		lb, err := plotter.NewLabels(labels)
		if err != nil {
			return nil, err
		}
		pl.Add(sc, lb)
	}
	return pl, nil
}

// WriteTo 输出图片
func (p *Plot) WriteTo(w io.Writer) (int64, error) {
	pl, err := p.Build()
	if err != nil {
		return 0, err
	}
	wt, err := pl.WriterTo(p.Width, p.Height, p.Format)
	if err != nil {
		return 0, err
	}
	return wt.WriteTo(w)
}
