package rest

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/utils"
)

const internalServerErrorMessage = "Internal Server Error"

// ExceptionFilter converts an error escaping a request pipeline into a
// response.
type ExceptionFilter interface {
	Catch(w http.ResponseWriter, r *http.Request, err error)
}

// ErrorMapper translates domain errors into an [HTTPError]. It returns nil
// for errors it does not know.
type ErrorMapper func(err error) *HTTPError

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	ErrorType ErrorType              `json:"errorType"`
	Error     string                 `json:"error"`
	Details   []ValidationErrorField `json:"details"`
}

// AppExceptionFilter classifies errors as HTTP errors, mapped domain errors
// or unknown errors. Unknown errors are logged with their cause and answered
// with a generic 500.
type AppExceptionFilter struct {
	mapper ErrorMapper
}

func NewExceptionFilter(mapper ErrorMapper) *AppExceptionFilter {
	return &AppExceptionFilter{mapper: mapper}
}

func (f *AppExceptionFilter) Catch(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	httpErr := f.classify(err)
	if httpErr == nil || httpErr.Type() == ErrorTypeUnknown {
		log.Error().Err(err).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Msg("unhandled error")

		f.write(w, r, http.StatusInternalServerError, ErrorResponse{
			ErrorType: ErrorTypeUnknown,
			Error:     internalServerErrorMessage,
			Details:   []ValidationErrorField{},
		})
		return
	}

	log.Warn().Err(err).
		Int("status", httpErr.StatusCode).
		Str("detail", httpErr.Detail).
		Msg("request failed")

	details := httpErr.Fields
	if details == nil {
		details = []ValidationErrorField{}
	}

	f.write(w, r, httpErr.StatusCode, ErrorResponse{
		ErrorType: httpErr.Type(),
		Error:     httpErr.Message,
		Details:   details,
	})
}

func (f *AppExceptionFilter) classify(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	if f.mapper != nil {
		return f.mapper(err)
	}

	return nil
}

func (f *AppExceptionFilter) write(w http.ResponseWriter, r *http.Request, status int, body ErrorResponse) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
