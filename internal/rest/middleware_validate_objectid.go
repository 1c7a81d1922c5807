package rest

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/six-cities/internal/utils"
)

// ValidateObjectIDMiddleware rejects a request whose path parameter is not a
// well-formed identifier.
type ValidateObjectIDMiddleware struct {
	param string
}

func NewValidateObjectIDMiddleware(param string) *ValidateObjectIDMiddleware {
	return &ValidateObjectIDMiddleware{param: param}
}

func (m *ValidateObjectIDMiddleware) Execute(w http.ResponseWriter, r *Request, next HandlerFunc) error {
	id := r.Param(m.param)
	if utils.IsObjectID(id) {
		return next(w, r)
	}

	return NewValidationError(
		fmt.Sprintf("%s is invalid ObjectID", id),
		"ValidateObjectIDMiddleware",
		ValidationErrorField{
			Property: m.param,
			Value:    id,
			Messages: []string{fmt.Sprintf("%s must be a 24-character hexadecimal string", m.param)},
		},
	)
}
