package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func newTestRequest(method, target, body string) *Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return NewRequest(injectNopLogger(req))
}

// execute runs m with a next stage that records whether it was reached.
func execute(m Middleware, r *Request) (rr *httptest.ResponseRecorder, nextCalled bool, err error) {
	rr = httptest.NewRecorder()
	err = m.Execute(rr, r, func(w http.ResponseWriter, r *Request) error {
		nextCalled = true
		return nil
	})
	return rr, nextCalled, err
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
