package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/six-cities/internal/app"
	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/rest"
	"github.com/MKhiriev/six-cities/internal/service"
	"github.com/MKhiriev/six-cities/internal/validators"
	"github.com/MKhiriev/six-cities/models"
)

// OfferController serves /offers.
type OfferController struct {
	*rest.BaseController

	offerService service.OfferService
}

func NewOfferController(offerService service.OfferService, validator validators.Validator, logger *logger.Logger) *OfferController {
	c := &OfferController{
		BaseController: rest.NewBaseController(logger),
		offerService:   offerService,
	}

	private := rest.NewPrivateRouteMiddleware()
	offerID := rest.NewValidateObjectIDMiddleware("offerId")
	offerExists := rest.NewDocumentExistsMiddleware(offerService, "Offer", "offerId")

	c.AddRoute(rest.Route{Method: http.MethodGet, Path: "/", Handler: c.index})
	c.AddRoute(rest.Route{
		Method:  http.MethodPost,
		Path:    "/",
		Handler: c.create,
		Middlewares: []rest.Middleware{
			private,
			rest.NewValidateDTOMiddleware[models.CreateOfferDTO](validator),
		},
	})
	c.AddRoute(rest.Route{Method: http.MethodGet, Path: "/premium/{city}", Handler: c.premium})
	c.AddRoute(rest.Route{
		Method:      http.MethodGet,
		Path:        "/favorite",
		Handler:     c.favorites,
		Middlewares: []rest.Middleware{private},
	})
	c.AddRoute(rest.Route{
		Method:      http.MethodPatch,
		Path:        "/favorite/{offerId}",
		Handler:     c.addToFavorites,
		Middlewares: []rest.Middleware{private, offerID, offerExists},
	})
	c.AddRoute(rest.Route{
		Method:      http.MethodDelete,
		Path:        "/favorite/{offerId}",
		Handler:     c.removeFromFavorites,
		Middlewares: []rest.Middleware{private, offerID, offerExists},
	})
	c.AddRoute(rest.Route{
		Method:      http.MethodGet,
		Path:        "/{offerId}",
		Handler:     c.show,
		Middlewares: []rest.Middleware{offerID, offerExists},
	})
	c.AddRoute(rest.Route{
		Method:  http.MethodPatch,
		Path:    "/{offerId}",
		Handler: c.update,
		Middlewares: []rest.Middleware{
			private,
			offerID,
			rest.NewValidateDTOMiddleware[models.UpdateOfferDTO](validator),
			offerExists,
		},
	})
	c.AddRoute(rest.Route{
		Method:      http.MethodDelete,
		Path:        "/{offerId}",
		Handler:     c.delete,
		Middlewares: []rest.Middleware{private, offerID, offerExists},
	})

	return c
}

func (c *OfferController) index(w http.ResponseWriter, r *rest.Request) error {
	limit, err := limitFromQuery(r)
	if err != nil {
		return err
	}

	offers, err := c.offerService.Find(r.Context(), r.UserID(), limit)
	if err != nil {
		return err
	}

	return c.OK(w, NewOfferRDOs(offers))
}

func (c *OfferController) create(w http.ResponseWriter, r *rest.Request) error {
	dto, err := rest.RequireDTO[models.CreateOfferDTO](r)
	if err != nil {
		return err
	}

	offer, err := c.offerService.Create(r.Context(), r.UserID(), *dto)
	if err != nil {
		return err
	}

	return c.Created(w, NewFullOfferRDO(offer))
}

func (c *OfferController) show(w http.ResponseWriter, r *rest.Request) error {
	offer, err := c.offerService.FindByID(r.Context(), r.Param("offerId"), r.UserID())
	if err != nil {
		return err
	}

	return c.OK(w, NewFullOfferRDO(offer))
}

func (c *OfferController) update(w http.ResponseWriter, r *rest.Request) error {
	dto, err := rest.RequireDTO[models.UpdateOfferDTO](r)
	if err != nil {
		return err
	}

	offer, err := c.offerService.UpdateByID(r.Context(), r.Param("offerId"), r.UserID(), *dto)
	if err != nil {
		return err
	}

	return c.OK(w, NewFullOfferRDO(offer))
}

func (c *OfferController) delete(w http.ResponseWriter, r *rest.Request) error {
	if err := c.offerService.DeleteByID(r.Context(), r.Param("offerId"), r.UserID()); err != nil {
		return err
	}

	return c.NoContent(w)
}

func (c *OfferController) premium(w http.ResponseWriter, r *rest.Request) error {
	offers, err := c.offerService.FindPremium(r.Context(), models.City(r.Param("city")), r.UserID())
	if err != nil {
		return err
	}

	return c.OK(w, NewOfferRDOs(offers))
}

func (c *OfferController) favorites(w http.ResponseWriter, r *rest.Request) error {
	offers, err := c.offerService.FindFavorites(r.Context(), r.UserID())
	if err != nil {
		return err
	}

	return c.OK(w, NewOfferRDOs(offers))
}

func (c *OfferController) addToFavorites(w http.ResponseWriter, r *rest.Request) error {
	offer, err := c.offerService.AddToFavorites(r.Context(), r.UserID(), r.Param("offerId"))
	if err != nil {
		return err
	}

	return c.Created(w, NewFullOfferRDO(offer))
}

func (c *OfferController) removeFromFavorites(w http.ResponseWriter, r *rest.Request) error {
	if _, err := c.offerService.RemoveFromFavorites(r.Context(), r.UserID(), r.Param("offerId")); err != nil {
		return err
	}

	return c.NoContent(w)
}

// limitFromQuery reads the optional "limit" query parameter. Zero means the
// service default.
func limitFromQuery(r *rest.Request) (uint64, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || limit == 0 {
		return 0, rest.NewValidationError(app.MsgInvalidQueryParameter, "OfferController", rest.ValidationErrorField{
			Property: "limit",
			Value:    raw,
			Messages: []string{"limit must be a positive integer"},
		})
	}

	return limit, nil
}
