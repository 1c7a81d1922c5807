package rest

import (
	"context"
	"fmt"
	"net/http"
)

// DocumentExister reports whether an entity with the given id exists.
type DocumentExister interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// DocumentExistsMiddleware answers 404 when the entity named by a path
// parameter does not exist. Lookup failures are passed on unchanged.
type DocumentExistsMiddleware struct {
	service    DocumentExister
	entityName string
	param      string
}

func NewDocumentExistsMiddleware(service DocumentExister, entityName, param string) *DocumentExistsMiddleware {
	return &DocumentExistsMiddleware{
		service:    service,
		entityName: entityName,
		param:      param,
	}
}

func (m *DocumentExistsMiddleware) Execute(w http.ResponseWriter, r *Request, next HandlerFunc) error {
	id := r.Param(m.param)

	exists, err := m.service.Exists(r.Context(), id)
	if err != nil {
		return fmt.Errorf("checking %s %s exists: %w", m.entityName, id, err)
	}
	if !exists {
		return NewNotFoundError(
			fmt.Sprintf("%s with %s not found.", m.entityName, id),
			"DocumentExistsMiddleware",
		)
	}

	return next(w, r)
}
