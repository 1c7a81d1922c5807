package rest

import "net/http"

// PrivateRouteMiddleware rejects anonymous requests with 401.
type PrivateRouteMiddleware struct{}

func NewPrivateRouteMiddleware() *PrivateRouteMiddleware {
	return &PrivateRouteMiddleware{}
}

func (m *PrivateRouteMiddleware) Execute(w http.ResponseWriter, r *Request, next HandlerFunc) error {
	if r.TokenPayload == nil {
		return NewUnauthorizedError("Unauthorized", "PrivateRouteMiddleware")
	}
	return next(w, r)
}
