package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"circuitsheet"
	"circuitsheet/chart"
	"circuitsheet/types"
)

// inputsRequest 计算请求
type inputsRequest struct {
	Inputs map[string]string `json:"inputs"`
}

// modelDetail 模型详情
type modelDetail struct {
	circuitsheet.ModelInfo
	Parameters []types.Parameter `json:"parameters"`
	Defaults   map[string]string `json:"defaults"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listModels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": circuitsheet.Categories(),
		"models":     circuitsheet.ListModels(),
	})
}

func (s *Server) getModel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	info, err := circuitsheet.Info(id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	params, _ := circuitsheet.Parameters(id)
	defaults, _ := circuitsheet.Defaults(id)
	writeJSON(w, http.StatusOK, modelDetail{ModelInfo: info, Parameters: params, Defaults: defaults})
}

// decodeInputs 读取请求体中的输入，空请求体使用默认值
func decodeInputs(r *http.Request) (map[string]string, error) {
	var req inputsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode request: %w", err)
	}
	return req.Inputs, nil
}

// queryInputs 读取查询参数中的输入
func queryInputs(r *http.Request) map[string]string {
	q := r.URL.Query()
	raw := make(map[string]string, len(q))
	for name := range q {
		raw[name] = q.Get(name)
	}
	return raw
}

func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeInputs(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id := mux.Vars(r)["id"]
	start := time.Now()
	out, err := circuitsheet.Evaluate(id, raw)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.trace(r, raw, start)
	writeJSON(w, http.StatusOK, types.Result{ID: id, Outputs: out})
}

func (s *Server) waveform(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeInputs(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	start := time.Now()
	wf, err := circuitsheet.Waveform(mux.Vars(r)["id"], raw)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.trace(r, raw, start)
	writeJSON(w, http.StatusOK, wf)
}

func (s *Server) calculate(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeInputs(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	start := time.Now()
	res, err := circuitsheet.Calculate(mux.Vars(r)["id"], raw)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.trace(r, raw, start)
	writeJSON(w, http.StatusOK, res)
}

// record 按查询参数计算并生成展示数据
func (s *Server) record(r *http.Request) (*chart.Record, error) {
	id := mux.Vars(r)["id"]
	info, err := circuitsheet.Info(id)
	if err != nil {
		return nil, err
	}
	start, raw := time.Now(), queryInputs(r)
	res, err := circuitsheet.Calculate(id, raw)
	if err != nil {
		return nil, err
	}
	s.trace(r, raw, start)
	return chart.NewRecord(info.Name, res), nil
}

func (s *Server) chart(w http.ResponseWriter, r *http.Request) {
	rec, err := s.record(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	chart.NewCharts(rec, s.cfg.ChartOptions()).Handler(w, r)
}

func (s *Server) plot(w http.ResponseWriter, r *http.Request) {
	rec, err := s.record(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if rec.Waveform == nil {
		s.fail(w, r, fmt.Errorf("%s: %w", rec.ID, types.ErrNoWaveform))
		return
	}
	p, err := chart.NewPlot(rec, s.cfg.Plot.Width, s.cfg.Plot.Height, mux.Vars(r)["format"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", p.ContentType())
	_, _ = buf.WriteTo(w)
}
