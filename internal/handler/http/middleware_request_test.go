package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging_LevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
		wantSize  string
	}{
		{name: "ok", status: http.StatusOK, body: "OK", wantLevel: `"level":"info"`, wantSize: `"size":2`},
		{name: "client error", status: http.StatusNotFound, wantLevel: `"level":"warn"`, wantSize: `"size":0`},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: `"level":"error"`, wantSize: `"size":0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)

			h := &Handler{logger: logger.Nop()}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/offers?limit=1", nil)
			req = req.WithContext(l.WithContext(req.Context()))
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, tt.wantSize)
			assert.Contains(t, out, `"uri":"/offers?limit=1"`)
			assert.Contains(t, out, `"method":"GET"`)
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	h := &Handler{logger: logger.Nop()}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	h.withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestWithTraceID_LoggerInContext(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
	assert.Contains(t, buf.String(), "inside handler")
}

func TestResponseWriter_RecordsFirstStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("hello"))
	_, _ = w.Write([]byte(" world"))

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, rec, w.Unwrap())
}
