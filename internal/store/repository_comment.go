package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/models"
	"github.com/jackc/pgerrcode"
)

type commentRepository struct {
	*DB
	logger *logger.Logger
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateComment stores comment and returns it with the server-assigned
// CreatedAt. A comment on a missing offer yields [ErrOfferNotFound].
func (c *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCommentQuery(comment)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("failed to build query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Comment
	err = c.DB.QueryRowContext(ctx, query, args...).
		Scan(&saved.ID, &saved.Text, &saved.Rating, &saved.OfferID, &saved.UserID, &saved.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "*commentRepository.CreateComment").
			Str("offer_id", comment.OfferID).
			Msg("failed to insert comment")

		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Comment{}, ErrCommentNotSaved
		case postgresError(err) == pgerrcode.ForeignKeyViolation:
			return models.Comment{}, ErrOfferNotFound
		default:
			return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return saved, nil
}

// FindCommentsByOfferID returns at most limit comments of the offer, newest
// first, each with its author.
func (c *commentRepository) FindCommentsByOfferID(ctx context.Context, offerID string, limit uint64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCommentsByOfferIDQuery(offerID, limit)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.FindCommentsByOfferID").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*commentRepository.FindCommentsByOfferID").
			Str("offer_id", offerID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0, limit)
	for rows.Next() {
		var comment models.Comment
		scanErr := rows.Scan(
			&comment.ID,
			&comment.Text,
			&comment.Rating,
			&comment.OfferID,
			&comment.UserID,
			&comment.CreatedAt,
			&comment.User.Name,
			&comment.User.Email,
			&comment.User.Avatar,
			&comment.User.Type,
			&comment.User.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*commentRepository.FindCommentsByOfferID").Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		comment.User.ID = comment.UserID

		comments = append(comments, comment)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.FindCommentsByOfferID").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}
