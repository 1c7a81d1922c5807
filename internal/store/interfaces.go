// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/six-cities/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (models.User, error)
	UserExists(ctx context.Context, id string) (bool, error)
}

// OfferRepository persists offers and the favorites relation.
//
// Rating, comment count and the favorite flag of returned offers are
// computed by the read queries.
type OfferRepository interface {
	CreateOffer(ctx context.Context, offer models.Offer) error
	FindOffers(ctx context.Context, filter models.OfferFilter) ([]models.Offer, error)
	FindOfferByID(ctx context.Context, id, forUserID string) (models.Offer, error)
	UpdateOffer(ctx context.Context, id string, update models.UpdateOfferDTO) error
	DeleteOffer(ctx context.Context, id string) error
	OfferExists(ctx context.Context, id string) (bool, error)
	AddFavorite(ctx context.Context, userID, offerID string) error
	RemoveFavorite(ctx context.Context, userID, offerID string) error
}

// CommentRepository persists comments left on offers.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	FindCommentsByOfferID(ctx context.Context, offerID string, limit uint64) ([]models.Comment, error)
}

// FileStorage persists uploaded files under a caller-chosen name.
type FileStorage interface {
	Save(ctx context.Context, name, contentType string, content io.Reader) error
}
