package rest

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppExceptionFilter_Catch(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantType    ErrorType
		wantMessage string
	}{
		{
			name:        "validation error",
			err:         NewValidationError("bad input", "test"),
			wantStatus:  http.StatusBadRequest,
			wantType:    ErrorTypeValidation,
			wantMessage: "bad input",
		},
		{
			name:        "unauthorized",
			err:         NewUnauthorizedError("Invalid token", "test"),
			wantStatus:  http.StatusUnauthorized,
			wantType:    ErrorTypeAuthentication,
			wantMessage: "Invalid token",
		},
		{
			name:        "forbidden",
			err:         NewForbiddenError("not yours", "test"),
			wantStatus:  http.StatusForbidden,
			wantType:    ErrorTypeCommon,
			wantMessage: "not yours",
		},
		{
			name:        "not found",
			err:         NewNotFoundError("Offer with x not found.", "test"),
			wantStatus:  http.StatusNotFound,
			wantType:    ErrorTypeNotFound,
			wantMessage: "Offer with x not found.",
		},
		{
			name:        "wrapped http error",
			err:         fmt.Errorf("context: %w", NewNotFoundError("gone", "test")),
			wantStatus:  http.StatusNotFound,
			wantType:    ErrorTypeNotFound,
			wantMessage: "gone",
		},
		{
			name:        "mapped domain error",
			err:         fmt.Errorf("repo: %w", errConflict),
			wantStatus:  http.StatusConflict,
			wantType:    ErrorTypeCommon,
			wantMessage: "Already exists",
		},
		{
			name:        "http error with server status hides message",
			err:         NewHTTPError(http.StatusBadGateway, "upstream said no", "test"),
			wantStatus:  http.StatusInternalServerError,
			wantType:    ErrorTypeUnknown,
			wantMessage: "Internal Server Error",
		},
		{
			name:        "unknown error",
			err:         errors.New("db exploded at 10.0.0.1"),
			wantStatus:  http.StatusInternalServerError,
			wantType:    ErrorTypeUnknown,
			wantMessage: "Internal Server Error",
		},
	}

	filter := NewExceptionFilter(testMapper)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

			filter.Catch(rr, req, tt.err)

			require.Equal(t, tt.wantStatus, rr.Code)
			body := decodeErrorResponse(t, rr)
			assert.Equal(t, tt.wantType, body.ErrorType)
			assert.Equal(t, tt.wantMessage, body.Error)
			assert.NotNil(t, body.Details)
			assert.Empty(t, body.Details)
		})
	}
}

func TestAppExceptionFilter_ValidationDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/offers", nil))

	NewExceptionFilter(nil).Catch(rr, req, NewValidationError("Validation error", "test",
		ValidationErrorField{Property: "name", Value: "ab", Messages: []string{"too short", "bad"}},
		ValidationErrorField{Property: "price", Value: 50, Messages: []string{"too cheap"}},
	))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{
		"errorType": "VALIDATION_ERROR",
		"error": "Validation error",
		"details": [
			{"property": "name", "value": "ab", "messages": ["too short", "bad"]},
			{"property": "price", "value": 50, "messages": ["too cheap"]}
		]
	}`, rr.Body.String())
}

func TestErrorTypeFromStatus(t *testing.T) {
	assert.Equal(t, ErrorTypeValidation, ErrorTypeFromStatus(http.StatusBadRequest))
	assert.Equal(t, ErrorTypeAuthentication, ErrorTypeFromStatus(http.StatusUnauthorized))
	assert.Equal(t, ErrorTypeNotFound, ErrorTypeFromStatus(http.StatusNotFound))
	assert.Equal(t, ErrorTypeCommon, ErrorTypeFromStatus(http.StatusConflict))
	assert.Equal(t, ErrorTypeUnknown, ErrorTypeFromStatus(http.StatusInternalServerError))
}

func TestHTTPError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("signature is invalid")
	err := NewUnauthorizedError("Invalid token", "ParseTokenMiddleware").WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[ParseTokenMiddleware] Invalid token: signature is invalid", err.Error())
}
