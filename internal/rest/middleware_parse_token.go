package rest

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/utils"
)

// ParseTokenMiddleware attaches the identity carried by a bearer token.
//
// A request without an "Authorization" header, or with a header that has no
// token after the scheme, continues anonymously. A token that fails
// verification aborts the request with 401.
type ParseTokenMiddleware struct {
	signKey string
}

func NewParseTokenMiddleware(signKey string) *ParseTokenMiddleware {
	return &ParseTokenMiddleware{signKey: signKey}
}

func (m *ParseTokenMiddleware) Execute(w http.ResponseWriter, r *Request, next HandlerFunc) error {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return next(w, r)
	}

	token, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		logger.FromRequest(r.Request).Debug().Err(err).Msg("continuing anonymously")
		return next(w, r)
	}

	payload, err := utils.ValidateAndParseJWTToken(token, m.signKey)
	if err != nil {
		return NewUnauthorizedError("Invalid token", "ParseTokenMiddleware").WithCause(err)
	}

	r.TokenPayload = &payload
	return next(w, r)
}

func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
