package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/store"
	"github.com/MKhiriev/six-cities/models"
)

// DefaultCommentCount caps the number of comments returned for an offer.
const DefaultCommentCount = 50

type commentService struct {
	commentRepository store.CommentRepository
	offerRepository   store.OfferRepository
	userRepository    store.UserRepository
	ids               IDGenerator

	logger *logger.Logger
}

func NewCommentService(storages *store.Storages, ids IDGenerator, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: storages.CommentRepository,
		offerRepository:   storages.OfferRepository,
		userRepository:    storages.UserRepository,
		ids:               ids,
		logger:            logger,
	}
}

// Create stores a comment of userID on dto.OfferID and returns it with its
// author filled. A missing offer yields store.ErrOfferNotFound.
func (c *commentService) Create(ctx context.Context, userID string, dto models.CreateCommentDTO) (models.Comment, error) {
	log := logger.FromContext(ctx)

	exists, err := c.offerRepository.OfferExists(ctx, dto.OfferID)
	if err != nil {
		log.Err(err).Str("offer_id", dto.OfferID).Msg("offer lookup failed")
		return models.Comment{}, fmt.Errorf("offer lookup failed: %w", err)
	}
	if !exists {
		log.Warn().Str("offer_id", dto.OfferID).Msg("comment on missing offer")
		return models.Comment{}, store.ErrOfferNotFound
	}

	author, err := c.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("comment author lookup failed")
		return models.Comment{}, fmt.Errorf("comment author lookup failed: %w", err)
	}

	comment, err := c.commentRepository.CreateComment(ctx, models.Comment{
		ID:      c.ids.Generate(),
		Text:    dto.Text,
		Rating:  dto.Rating,
		OfferID: dto.OfferID,
		UserID:  userID,
	})
	if err != nil {
		log.Err(err).Str("offer_id", dto.OfferID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	comment.User = author
	return comment, nil
}

// FindByOfferID returns the newest DefaultCommentCount comments of an offer.
func (c *commentService) FindByOfferID(ctx context.Context, offerID string) ([]models.Comment, error) {
	comments, err := c.commentRepository.FindCommentsByOfferID(ctx, offerID, DefaultCommentCount)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("offer_id", offerID).Msg("comment search failed")
		return nil, fmt.Errorf("comment search failed: %w", err)
	}

	return comments, nil
}
