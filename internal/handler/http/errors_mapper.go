package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/six-cities/internal/app"
	"github.com/MKhiriev/six-cities/internal/rest"
	"github.com/MKhiriev/six-cities/internal/service"
	"github.com/MKhiriev/six-cities/internal/store"
)

// errorMapping answers a domain error with status and, when set, message
// in place of the error text.
type errorMapping struct {
	err     error
	status  int
	message string
}

// errorMappings lists domain errors that are answered with a client error,
// checked in order. Anything not listed here is an unknown error and
// becomes a 500.
var errorMappings = []errorMapping{
	{err: service.ErrWrongCredentials, status: http.StatusUnauthorized, message: app.MsgWrongCredentials},
	{err: service.ErrForbidden, status: http.StatusForbidden, message: app.MsgForbidden},
	{err: store.ErrUserAlreadyExists, status: http.StatusConflict, message: app.MsgUserAlreadyExists},
	{err: store.ErrUserNotFound, status: http.StatusNotFound},
	{err: store.ErrOfferNotFound, status: http.StatusNotFound},
	{err: service.ErrInvalidCity, status: http.StatusBadRequest},
	{err: store.ErrInvalidFileName, status: http.StatusBadRequest},
	{err: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
}

// mapError translates err into an [rest.HTTPError] for the exception filter.
// The first matching entry of errorMappings wins; it returns nil for errors
// it does not know.
func mapError(err error) *rest.HTTPError {
	for _, m := range errorMappings {
		if !errors.Is(err, m.err) {
			continue
		}

		message := m.message
		if message == "" {
			message = m.err.Error()
		}

		return rest.NewHTTPError(m.status, message, "ErrorMapper").WithCause(err)
	}

	return nil
}
