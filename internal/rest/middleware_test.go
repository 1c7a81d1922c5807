package rest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tracing(name string, trace *[]string) Middleware {
	return MiddlewareFunc(func(w http.ResponseWriter, r *Request, next HandlerFunc) error {
		*trace = append(*trace, name)
		return next(w, r)
	})
}

func TestChain_RunsMiddlewaresInDeclaredOrder(t *testing.T) {
	var trace []string
	handler := func(w http.ResponseWriter, r *Request) error {
		trace = append(trace, "handler")
		return nil
	}

	err := Chain(handler, tracing("first", &trace), tracing("second", &trace), tracing("third", &trace))(
		httptest.NewRecorder(), newTestRequest(http.MethodGet, "/", ""))

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third", "handler"}, trace)
}

func TestChain_NoMiddlewares(t *testing.T) {
	called := false
	err := Chain(func(w http.ResponseWriter, r *Request) error {
		called = true
		return nil
	})(httptest.NewRecorder(), newTestRequest(http.MethodGet, "/", ""))

	require.NoError(t, err)
	assert.True(t, called)
}

func TestChain_AbortSkipsRemainingStages(t *testing.T) {
	var trace []string
	errStop := errors.New("stop")
	abort := MiddlewareFunc(func(w http.ResponseWriter, r *Request, next HandlerFunc) error {
		trace = append(trace, "abort")
		return errStop
	})
	handler := func(w http.ResponseWriter, r *Request) error {
		trace = append(trace, "handler")
		return nil
	}

	err := Chain(handler, tracing("first", &trace), abort, tracing("never", &trace))(
		httptest.NewRecorder(), newTestRequest(http.MethodGet, "/", ""))

	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, []string{"first", "abort"}, trace)
}

func TestChain_TerminalMiddlewareWritesResponse(t *testing.T) {
	handlerCalled := false
	terminal := MiddlewareFunc(func(w http.ResponseWriter, r *Request, next HandlerFunc) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	})

	rr := httptest.NewRecorder()
	err := Chain(func(w http.ResponseWriter, r *Request) error {
		handlerCalled = true
		return nil
	}, terminal)(rr, newTestRequest(http.MethodGet, "/", ""))

	require.NoError(t, err)
	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestChain_NextCalledTwice(t *testing.T) {
	handlerCalls := 0
	var secondErr error
	twice := MiddlewareFunc(func(w http.ResponseWriter, r *Request, next HandlerFunc) error {
		if err := next(w, r); err != nil {
			return err
		}
		secondErr = next(w, r)
		return secondErr
	})

	err := Chain(func(w http.ResponseWriter, r *Request) error {
		handlerCalls++
		return nil
	}, twice)(httptest.NewRecorder(), newTestRequest(http.MethodGet, "/", ""))

	assert.ErrorIs(t, err, ErrNextCalledTwice)
	assert.ErrorIs(t, secondErr, ErrNextCalledTwice)
	assert.Equal(t, 1, handlerCalls)
}

func TestChain_StagesAreFreshPerRequest(t *testing.T) {
	calls := 0
	h := Chain(func(w http.ResponseWriter, r *Request) error {
		calls++
		return nil
	}, tracing("only", new([]string)))

	for range 3 {
		require.NoError(t, h(httptest.NewRecorder(), newTestRequest(http.MethodGet, "/", "")))
	}
	assert.Equal(t, 3, calls)
}
