package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/models"
)

// offerRepository is the PostgreSQL-backed implementation of
// [OfferRepository]. Offers live in the "offers" table, favorites in the
// "favorites" join table; rating and comment count are aggregated from
// "comments" on every read.
type offerRepository struct {
	*DB
	logger *logger.Logger
}

func NewOfferRepository(db *DB, logger *logger.Logger) OfferRepository {
	logger.Debug().Msg("creating offer repository")
	return &offerRepository{
		DB:     db,
		logger: logger,
	}
}

func (o *offerRepository) CreateOffer(ctx context.Context, offer models.Offer) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateOfferQuery(offer)
	if err != nil {
		log.Err(err).Str("func", "*offerRepository.CreateOffer").Msg("failed to build query")
		return err
	}

	if _, err = o.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*offerRepository.CreateOffer").
			Str("offer_id", offer.ID).
			Msg("failed to insert offer")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindOffers returns offers matching filter, newest first.
func (o *offerRepository) FindOffers(ctx context.Context, filter models.OfferFilter) ([]models.Offer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindOffersQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*offerRepository.FindOffers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := o.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*offerRepository.FindOffers").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	offers := make([]models.Offer, 0, filter.Limit)
	for rows.Next() {
		offer, scanErr := scanOffer(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*offerRepository.FindOffers").Msg("failed to scan offer row")
			return nil, scanErr
		}
		offers = append(offers, offer)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*offerRepository.FindOffers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return offers, nil
}

// FindOfferByID returns the offer with id, its favorite flag computed for
// forUserID, or [ErrOfferNotFound].
func (o *offerRepository) FindOfferByID(ctx context.Context, id, forUserID string) (models.Offer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindOfferByIDQuery(id, forUserID)
	if err != nil {
		log.Err(err).Str("func", "*offerRepository.FindOfferByID").Msg("failed to build query")
		return models.Offer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	offer, err := scanOffer(o.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Offer{}, ErrOfferNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*offerRepository.FindOfferByID").Str("offer_id", id).Msg("failed to find offer")
		return models.Offer{}, err
	}

	return offer, nil
}

func (o *offerRepository) UpdateOffer(ctx context.Context, id string, update models.UpdateOfferDTO) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateOfferQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*offerRepository.UpdateOffer").Msg("failed to build query")
		return err
	}

	result, err := o.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*offerRepository.UpdateOffer").Str("offer_id", id).Msg("failed to update offer")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return offerAffected(result)
}

// DeleteOffer removes the offer; its comments and favorites go with it.
func (o *offerRepository) DeleteOffer(ctx context.Context, id string) error {
	result, err := o.DB.ExecContext(ctx, deleteOffer, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*offerRepository.DeleteOffer").
			Str("offer_id", id).
			Msg("failed to delete offer")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return offerAffected(result)
}

func (o *offerRepository) OfferExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := o.DB.QueryRowContext(ctx, offerExists, id).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*offerRepository.OfferExists").Str("offer_id", id).Msg("error checking offer")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// AddFavorite is idempotent.
func (o *offerRepository) AddFavorite(ctx context.Context, userID, offerID string) error {
	if _, err := o.DB.ExecContext(ctx, addFavorite, userID, offerID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*offerRepository.AddFavorite").
			Str("user_id", userID).
			Str("offer_id", offerID).
			Msg("failed to add favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RemoveFavorite is idempotent.
func (o *offerRepository) RemoveFavorite(ctx context.Context, userID, offerID string) error {
	if _, err := o.DB.ExecContext(ctx, removeFavorite, userID, offerID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*offerRepository.RemoveFavorite").
			Str("user_id", userID).
			Str("offer_id", offerID).
			Msg("failed to remove favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func offerAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOfferNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanOffer reads one row of [selectOffers].
func scanOffer(row rowScanner) (models.Offer, error) {
	var offer models.Offer
	var photos, amenities []byte

	err := row.Scan(
		&offer.ID,
		&offer.Name,
		&offer.Description,
		&offer.PostDate,
		&offer.City,
		&offer.PreviewImage,
		&photos,
		&offer.IsPremium,
		&offer.IsFavorite,
		&offer.Rating,
		&offer.CommentCount,
		&offer.Type,
		&offer.Rooms,
		&offer.Guests,
		&offer.Price,
		&amenities,
		&offer.Coordinates.Latitude,
		&offer.Coordinates.Longitude,
		&offer.UserID,
		&offer.CreatedAt,
		&offer.UpdatedAt,
		&offer.User.Name,
		&offer.User.Email,
		&offer.User.Avatar,
		&offer.User.Type,
		&offer.User.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Offer{}, err
	}
	if err != nil {
		return models.Offer{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	offer.User.ID = offer.UserID

	if err = json.Unmarshal(photos, &offer.Photos); err != nil {
		return models.Offer{}, fmt.Errorf("%w: photos: %w", ErrDecodingColumn, err)
	}
	if err = json.Unmarshal(amenities, &offer.Amenities); err != nil {
		return models.Offer{}, fmt.Errorf("%w: amenities: %w", ErrDecodingColumn, err)
	}

	return offer, nil
}
