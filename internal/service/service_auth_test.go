package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/six-cities/internal/config"
	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/utils"
	"github.com/MKhiriev/six-cities/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_CreateToken(t *testing.T) {
	const signKey = "test-secret"

	user := models.User{
		ID:     "65f1c0de0000000000000001",
		Name:   "Keks",
		Email:  "keks@example.com",
		Avatar: "keks.png",
		Type:   models.UserTypePro,
	}

	tests := []struct {
		name    string
		cfg     config.App
		user    models.User
		wantErr bool
	}{
		{
			name: "valid user",
			cfg:  config.App{TokenSignKey: signKey, TokenDuration: time.Hour},
			user: user,
		},
		{
			name:    "user without id",
			cfg:     config.App{TokenSignKey: signKey, TokenDuration: time.Hour},
			user:    models.User{Email: "nobody@example.com"},
			wantErr: true,
		},
		{
			name:    "empty sign key",
			cfg:     config.App{TokenDuration: time.Hour},
			user:    user,
			wantErr: true,
		},
		{
			name:    "zero duration",
			cfg:     config.App{TokenSignKey: signKey},
			user:    user,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.cfg, logger.Nop())

			token, err := svc.CreateToken(context.Background(), tt.user)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrTokenCreationFailed))
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			payload, err := utils.ValidateAndParseJWTToken(token, signKey)
			require.NoError(t, err)
			assert.Equal(t, models.NewTokenPayload(tt.user), payload)
		})
	}
}
