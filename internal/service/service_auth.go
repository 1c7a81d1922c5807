package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/six-cities/internal/config"
	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/utils"
	"github.com/MKhiriev/six-cities/models"
)

// authService is the concrete implementation of AuthService.
// It signs HS256 access tokens carrying the identity of a user.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign tokens. The same key is
	// used by the token parsing middleware to verify them.
	tokenSignKey string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with token
// parameters from cfg.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed token for user. The token carries
// [models.TokenPayload] of user and expires after the configured duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (string, error) {
	token, err := utils.GenerateJWTToken(models.NewTokenPayload(user), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("error creating token")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
