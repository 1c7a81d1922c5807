package http

import (
	"net/http"

	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/rest"
	"github.com/MKhiriev/six-cities/internal/service"
	"github.com/MKhiriev/six-cities/internal/validators"
	"github.com/MKhiriev/six-cities/models"
)

// CommentController serves /comments.
type CommentController struct {
	*rest.BaseController

	commentService service.CommentService
}

func NewCommentController(commentService service.CommentService, validator validators.Validator, logger *logger.Logger) *CommentController {
	c := &CommentController{
		BaseController: rest.NewBaseController(logger),
		commentService: commentService,
	}

	c.AddRoute(rest.Route{
		Method:  http.MethodPost,
		Path:    "/",
		Handler: c.create,
		Middlewares: []rest.Middleware{
			rest.NewPrivateRouteMiddleware(),
			rest.NewValidateDTOMiddleware[models.CreateCommentDTO](validator),
		},
	})
	c.AddRoute(rest.Route{
		Method:      http.MethodGet,
		Path:        "/{offerId}",
		Handler:     c.index,
		Middlewares: []rest.Middleware{rest.NewValidateObjectIDMiddleware("offerId")},
	})

	return c
}

func (c *CommentController) create(w http.ResponseWriter, r *rest.Request) error {
	dto, err := rest.RequireDTO[models.CreateCommentDTO](r)
	if err != nil {
		return err
	}

	comment, err := c.commentService.Create(r.Context(), r.UserID(), *dto)
	if err != nil {
		return err
	}

	return c.Created(w, NewCommentRDO(comment))
}

func (c *CommentController) index(w http.ResponseWriter, r *rest.Request) error {
	comments, err := c.commentService.FindByOfferID(r.Context(), r.Param("offerId"))
	if err != nil {
		return err
	}

	return c.OK(w, NewCommentRDOs(comments))
}
