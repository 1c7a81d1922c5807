package rest

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/six-cities/models"
)

// Request is the mutable per-request context threaded through a route's
// middlewares and handler. Middlewares communicate only by setting its
// fields.
type Request struct {
	*http.Request

	// Params holds named path parameters of the matched route.
	Params map[string]string

	// DTO is the decoded and validated request body, set by
	// [ValidateDTOMiddleware].
	DTO any

	// TokenPayload is the authenticated identity, set by
	// [ParseTokenMiddleware]. Nil means anonymous.
	TokenPayload *models.TokenPayload

	// Files maps an upload field name to the stored file name, set by
	// [UploadFileMiddleware].
	Files map[string]string
}

// NewRequest wraps r for dispatching.
func NewRequest(r *http.Request) *Request {
	return &Request{
		Request: r,
		Params:  make(map[string]string),
		Files:   make(map[string]string),
	}
}

// Param returns the named path parameter or an empty string.
func (r *Request) Param(name string) string {
	return r.Params[name]
}

// UserID returns the authenticated user id or an empty string.
func (r *Request) UserID() string {
	if r.TokenPayload == nil {
		return ""
	}
	return r.TokenPayload.ID
}

// DTOAs returns the validated body as *T. ok is false when no body of that
// type was attached.
func DTOAs[T any](r *Request) (dto *T, ok bool) {
	dto, ok = r.DTO.(*T)
	return dto, ok
}

// RequireDTO is [DTOAs] for handlers whose route declares a
// [ValidateDTOMiddleware]; a missing body is an [ErrNoDTO] error.
func RequireDTO[T any](r *Request) (*T, error) {
	dto, ok := DTOAs[T](r)
	if !ok || dto == nil {
		return nil, fmt.Errorf("%w: want %T", ErrNoDTO, dto)
	}
	return dto, nil
}
