package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"circuitsheet/chart"
	"circuitsheet/config"
	"circuitsheet/types"
)

// RequestIDHeader 请求标识头
const RequestIDHeader = "X-Request-ID"

// Server HTTP 接口
type Server struct {
	cfg    *config.Config
	router *mux.Router
}

// New 创建 HTTP 接口并注册路由
func New(cfg *config.Config) *Server {
	s := &Server{cfg: cfg, router: mux.NewRouter()}
	r := s.router
	r.Use(requestID, s.logging)

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.HandleFunc("/models", s.listModels).Methods(http.MethodGet)
	r.HandleFunc("/models/{id}", s.getModel).Methods(http.MethodGet)
	r.HandleFunc("/models/{id}/evaluate", s.evaluate).Methods(http.MethodPost)
	r.HandleFunc("/models/{id}/waveform", s.waveform).Methods(http.MethodPost)
	r.HandleFunc("/models/{id}/calculate", s.calculate).Methods(http.MethodPost)
	r.HandleFunc("/models/{id}/chart", s.chart).Methods(http.MethodGet)
	r.HandleFunc("/models/{id}/plot.{format:png|svg}", s.plot).Methods(http.MethodGet)
	r.NotFoundHandler = requestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("route not found"))
	}))
	return s
}

// ServeHTTP 实现 http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

// ListenAndServe 启动服务，ctx 取消时优雅关闭
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.HTTP.Addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	log.Printf("HTTP 服务启动: %s", s.cfg.HTTP.Addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			return err
		}
		log.Printf("HTTP 服务已关闭")
		return nil
	}
}

// requestID 为每个响应附加请求标识，沿用客户端提供的值
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// statusWriter 记录响应状态码
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// logging 每个请求记录一行日志
func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.Printf("%s %s %d %s %s", r.Method, r.URL.Path, sw.status, w.Header().Get(RequestIDHeader), time.Since(start))
	})
}

// statusOf 错误映射为 HTTP 状态码
func statusOf(err error) int {
	switch {
	case errors.Is(err, types.ErrUnknownModel):
		return http.StatusNotFound
	case errors.Is(err, types.ErrUnimplemented):
		return http.StatusNotImplemented
	case errors.Is(err, types.ErrNoWaveform):
		return http.StatusConflict
	case errors.Is(err, types.ErrParse), errors.Is(err, types.ErrDomain), errors.Is(err, types.ErrUnknownParam):
		return http.StatusUnprocessableEntity
	case errors.Is(err, chart.ErrFormat):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// errorBody 错误响应
type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// writeJSON 先完整编码再写出状态码，编码失败时返回 500
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("响应编码失败: %v", err)
		status, data = http.StatusInternalServerError, []byte(`{"error":"failed to encode response"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

// writeError 输出错误，合并的校验错误逐条列出
func writeError(w http.ResponseWriter, status int, err error) {
	body := errorBody{Error: err.Error()}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			body.Details = append(body.Details, e.Error())
		}
	}
	writeJSON(w, status, body)
}

// trace 调试模式下记录成功的计算
func (s *Server) trace(r *http.Request, raw map[string]string, start time.Time) {
	if s.cfg.Debug {
		log.Printf("%s %s: inputs=%v %s", r.Method, mux.Vars(r)["id"], raw, time.Since(start))
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if s.cfg.Debug || status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	writeError(w, status, err)
}
