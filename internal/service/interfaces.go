// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/six-cities/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// OfferService implements the offer use cases: listing, premium selection,
// favorites and owner-only modification.
//
// userID arguments identify the requesting user. An empty userID means an
// anonymous request; offers are then never marked as favorite.
type OfferService interface {
	Exists(ctx context.Context, id string) (bool, error)

	Find(ctx context.Context, userID string, limit uint64) ([]models.Offer, error)
	FindByID(ctx context.Context, id, userID string) (models.Offer, error)
	FindPremium(ctx context.Context, city models.City, userID string) ([]models.Offer, error)
	FindFavorites(ctx context.Context, userID string) ([]models.Offer, error)

	Create(ctx context.Context, userID string, dto models.CreateOfferDTO) (models.Offer, error)
	UpdateByID(ctx context.Context, id, userID string, dto models.UpdateOfferDTO) (models.Offer, error)
	DeleteByID(ctx context.Context, id, userID string) error

	AddToFavorites(ctx context.Context, userID, offerID string) (models.Offer, error)
	RemoveFromFavorites(ctx context.Context, userID, offerID string) (models.Offer, error)
}

// UserService manages user accounts and credentials.
type UserService interface {
	Exists(ctx context.Context, id string) (bool, error)

	Register(ctx context.Context, dto models.CreateUserDTO) (models.User, error)
	Login(ctx context.Context, dto models.LoginUserDTO) (models.User, error)

	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)

	// UpdateAvatar sets the avatar of user id. Only the user itself
	// (requesterID == id) may change it.
	UpdateAvatar(ctx context.Context, id, requesterID, avatar string) (models.User, error)
}

// AuthService issues access tokens.
type AuthService interface {
	CreateToken(ctx context.Context, user models.User) (string, error)
}

// CommentService manages comments left on offers.
type CommentService interface {
	Create(ctx context.Context, userID string, dto models.CreateCommentDTO) (models.Comment, error)
	FindByOfferID(ctx context.Context, offerID string) ([]models.Comment, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
