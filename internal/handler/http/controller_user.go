package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/six-cities/internal/app"
	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/rest"
	"github.com/MKhiriev/six-cities/internal/service"
	"github.com/MKhiriev/six-cities/internal/store"
	"github.com/MKhiriev/six-cities/internal/validators"
	"github.com/MKhiriev/six-cities/models"
)

const avatarField = "avatar"

// UserController serves /users: registration, login and avatars.
type UserController struct {
	*rest.BaseController

	userService service.UserService
	authService service.AuthService
}

func NewUserController(
	userService service.UserService,
	authService service.AuthService,
	files store.FileStorage,
	validator validators.Validator,
	maxUploadSize int64,
	logger *logger.Logger,
) *UserController {
	c := &UserController{
		BaseController: rest.NewBaseController(logger),
		userService:    userService,
		authService:    authService,
	}

	c.AddRoute(rest.Route{
		Method:      http.MethodPost,
		Path:        "/register",
		Handler:     c.register,
		Middlewares: []rest.Middleware{rest.NewValidateDTOMiddleware[models.CreateUserDTO](validator)},
	})
	c.AddRoute(rest.Route{
		Method:      http.MethodPost,
		Path:        "/login",
		Handler:     c.login,
		Middlewares: []rest.Middleware{rest.NewValidateDTOMiddleware[models.LoginUserDTO](validator)},
	})
	c.AddRoute(rest.Route{
		Method:      http.MethodGet,
		Path:        "/login",
		Handler:     c.checkAuthenticate,
		Middlewares: []rest.Middleware{rest.NewPrivateRouteMiddleware()},
	})
	c.AddRoute(rest.Route{
		Method:  http.MethodPost,
		Path:    "/{userId}/avatar",
		Handler: c.uploadAvatar,
		Middlewares: []rest.Middleware{
			rest.NewPrivateRouteMiddleware(),
			rest.NewValidateObjectIDMiddleware("userId"),
			rest.NewDocumentExistsMiddleware(userService, "User", "userId"),
			rest.MiddlewareFunc(ownAccountOnly("userId")),
			rest.NewUploadFileMiddleware(files, avatarField, maxUploadSize),
		},
	})

	return c
}

func (c *UserController) register(w http.ResponseWriter, r *rest.Request) error {
	dto, err := rest.RequireDTO[models.CreateUserDTO](r)
	if err != nil {
		return err
	}

	user, err := c.userService.Register(r.Context(), *dto)
	if err != nil {
		return err
	}

	return c.Created(w, NewUserRDO(user))
}

func (c *UserController) login(w http.ResponseWriter, r *rest.Request) error {
	dto, err := rest.RequireDTO[models.LoginUserDTO](r)
	if err != nil {
		return err
	}

	user, err := c.userService.Login(r.Context(), *dto)
	if err != nil {
		return err
	}

	token, err := c.authService.CreateToken(r.Context(), user)
	if err != nil {
		return err
	}

	return c.OK(w, NewLoggedUserRDO(user, token))
}

// checkAuthenticate returns the account behind a still valid token. A token
// of a deleted account is treated as missing.
func (c *UserController) checkAuthenticate(w http.ResponseWriter, r *rest.Request) error {
	user, err := c.userService.FindByID(r.Context(), r.UserID())
	if errors.Is(err, store.ErrUserNotFound) {
		return rest.NewUnauthorizedError(app.MsgUnauthorized, "UserController").WithCause(err)
	}
	if err != nil {
		return err
	}

	return c.OK(w, NewUserRDO(user))
}

func (c *UserController) uploadAvatar(w http.ResponseWriter, r *rest.Request) error {
	user, err := c.userService.UpdateAvatar(r.Context(), r.Param("userId"), r.UserID(), r.Files[avatarField])
	if err != nil {
		return err
	}

	return c.Created(w, UploadAvatarRDO{Avatar: user.Avatar})
}

// ownAccountOnly rejects requests whose path parameter param names another
// user than the authenticated one.
func ownAccountOnly(param string) rest.MiddlewareFunc {
	return func(w http.ResponseWriter, r *rest.Request, next rest.HandlerFunc) error {
		if r.Param(param) != r.UserID() {
			return rest.NewForbiddenError("Access to the resource is forbidden.", "UserController")
		}
		return next(w, r)
	}
}
