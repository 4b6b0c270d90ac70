package chart

import (
	"encoding/json"
	"io"
	"log"

	"circuitsheet/types"
)

// Record 一次计算的展示数据
type Record struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Outputs  types.Outputs   `json:"outputs"`
	Waveform *types.Waveform `json:"waveform,omitempty"`
}

// NewRecord 从计算结果创建展示数据
func NewRecord(name string, res *types.Result) *Record {
	return &Record{ID: res.ID, Name: name, Outputs: res.Outputs, Waveform: res.Waveform}
}

// Title 图表标题，没有波形时使用模型名称
func (r *Record) Title() string {
	if r.Waveform != nil && r.Waveform.Title != "" {
		return r.Waveform.Title
	}
	return r.Name
}

// Lines 结果显示文本，每项一行
func (r *Record) Lines() []string {
	lines := make([]string, len(r.Outputs))
	for i, o := range r.Outputs {
		lines[i] = o.Label + ": " + o.Display
	}
	return lines
}

// Render 格式和输出内容
func (r *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(r) }

func (r *Record) Error(err error) { log.Println(err) }
