package service

import (
	"github.com/MKhiriev/six-cities/internal/config"
	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/store"
	"github.com/MKhiriev/six-cities/internal/utils"
	"github.com/MKhiriev/six-cities/models"
)

type Services struct {
	OfferService   OfferService
	UserService    UserService
	AuthService    AuthService
	CommentService CommentService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewObjectIDGenerator()

	return &Services{
		OfferService:   NewOfferService(storages.OfferRepository, ids, logger),
		UserService:    NewUserService(storages.UserRepository, ids, cfg.App, logger),
		AuthService:    NewAuthService(cfg.App, logger),
		CommentService: NewCommentService(storages, ids, logger),
		AppInfoService: appInfoService,
	}, nil
}
