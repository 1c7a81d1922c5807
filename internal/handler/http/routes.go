package http

import (
	"net/http"

	"github.com/MKhiriev/six-cities/internal/rest"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	router.Use(middleware.Recoverer)
	if h.cfg.Server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.Server.RequestTimeout))
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))

	// infrastructure routes
	router.Get("/version", h.getServerVersion)
	router.Handle("/metrics", h.metrics.handler())
	if !h.cfg.Storage.S3.Enabled() {
		router.Handle("/upload/*", staticDir("/upload/", h.cfg.Storage.Files.UploadDir))
	}
	router.Handle("/static/*", staticDir("/static/", h.cfg.Storage.Files.StaticDir))

	app := rest.NewApp(router, rest.NewExceptionFilter(mapError), h.logger)
	app.Use(rest.NewParseTokenMiddleware(h.cfg.App.TokenSignKey))

	app.Register("/offers", NewOfferController(h.services.OfferService, h.validator, h.logger))
	app.Register("/users", NewUserController(
		h.services.UserService,
		h.services.AuthService,
		h.files,
		h.validator,
		h.cfg.Server.MaxUploadSize,
		h.logger,
	))
	app.Register("/comments", NewCommentController(h.services.CommentService, h.validator, h.logger))

	return router
}

func staticDir(prefix, dir string) http.Handler {
	return http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
}
