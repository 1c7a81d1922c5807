package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/store"
	"github.com/MKhiriev/six-cities/models"
)

const (
	// DefaultOfferCount is the listing size used when no limit is requested.
	DefaultOfferCount = 60

	// PremiumOfferCount caps the premium selection of a city.
	PremiumOfferCount = 3
)

// offerService is the concrete implementation of OfferService.
type offerService struct {
	offerRepository store.OfferRepository
	ids             IDGenerator

	logger *logger.Logger
}

func NewOfferService(offerRepository store.OfferRepository, ids IDGenerator, logger *logger.Logger) OfferService {
	return &offerService{
		offerRepository: offerRepository,
		ids:             ids,
		logger:          logger,
	}
}

func (o *offerService) Exists(ctx context.Context, id string) (bool, error) {
	return o.offerRepository.OfferExists(ctx, id)
}

// Find lists the newest offers. A zero limit means DefaultOfferCount.
func (o *offerService) Find(ctx context.Context, userID string, limit uint64) ([]models.Offer, error) {
	if limit == 0 {
		limit = DefaultOfferCount
	}

	return o.find(ctx, models.OfferFilter{ForUserID: userID, Limit: limit})
}

func (o *offerService) FindByID(ctx context.Context, id, userID string) (models.Offer, error) {
	offer, err := o.offerRepository.FindOfferByID(ctx, id, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("offer_id", id).Msg("offer search by id failed")
		return models.Offer{}, fmt.Errorf("offer search by id failed: %w", err)
	}

	return offer, nil
}

// FindPremium returns up to PremiumOfferCount newest premium offers of city.
func (o *offerService) FindPremium(ctx context.Context, city models.City, userID string) ([]models.Offer, error) {
	if !city.IsValid() {
		logger.FromContext(ctx).Warn().Str("city", string(city)).Msg("premium offers requested for unknown city")
		return nil, ErrInvalidCity
	}

	return o.find(ctx, models.OfferFilter{
		ForUserID:   userID,
		City:        city,
		PremiumOnly: true,
		Limit:       PremiumOfferCount,
	})
}

func (o *offerService) FindFavorites(ctx context.Context, userID string) ([]models.Offer, error) {
	if userID == "" {
		return nil, ErrInvalidDataProvided
	}

	return o.find(ctx, models.OfferFilter{ForUserID: userID, FavoritesOnly: true})
}

func (o *offerService) find(ctx context.Context, filter models.OfferFilter) ([]models.Offer, error) {
	offers, err := o.offerRepository.FindOffers(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Any("filter", filter).Msg("offer search failed")
		return nil, fmt.Errorf("offer search failed: %w", err)
	}

	return offers, nil
}

// Create publishes a new offer of userID and returns it as read back from
// storage, with author and derived fields filled.
func (o *offerService) Create(ctx context.Context, userID string, dto models.CreateOfferDTO) (models.Offer, error) {
	log := logger.FromContext(ctx)

	if userID == "" || dto.Coordinates == nil {
		return models.Offer{}, ErrInvalidDataProvided
	}

	postDate, err := time.Parse(time.RFC3339, dto.PostDate)
	if err != nil {
		log.Err(err).Str("date", dto.PostDate).Msg("invalid offer date")
		return models.Offer{}, fmt.Errorf("%w: date: %w", ErrInvalidDataProvided, err)
	}

	var isPremium bool
	if dto.IsPremium != nil {
		isPremium = *dto.IsPremium
	}

	offer := models.Offer{
		ID:           o.ids.Generate(),
		Name:         dto.Name,
		Description:  dto.Description,
		PostDate:     postDate,
		City:         dto.City,
		PreviewImage: dto.PreviewImage,
		Photos:       dto.Photos,
		IsPremium:    isPremium,
		Type:         dto.Type,
		Rooms:        dto.Rooms,
		Guests:       dto.Guests,
		Price:        dto.Price,
		Amenities:    dto.Amenities,
		UserID:       userID,
		Coordinates:  *dto.Coordinates,
	}

	if err = o.offerRepository.CreateOffer(ctx, offer); err != nil {
		log.Err(err).Str("user_id", userID).Msg("offer creation ended with error")
		return models.Offer{}, fmt.Errorf("offer creation ended with error: %w", err)
	}

	return o.FindByID(ctx, offer.ID, userID)
}

// UpdateByID applies dto to offer id. Only the author may update an offer.
func (o *offerService) UpdateByID(ctx context.Context, id, userID string, dto models.UpdateOfferDTO) (models.Offer, error) {
	log := logger.FromContext(ctx)

	if err := o.checkOwner(ctx, id, userID); err != nil {
		return models.Offer{}, err
	}

	if !dto.IsEmpty() {
		if err := o.offerRepository.UpdateOffer(ctx, id, dto); err != nil {
			log.Err(err).Str("offer_id", id).Msg("offer update failed")
			return models.Offer{}, fmt.Errorf("offer update failed: %w", err)
		}
	}

	return o.FindByID(ctx, id, userID)
}

// DeleteByID removes offer id with its comments and favorite marks.
// Only the author may delete an offer.
func (o *offerService) DeleteByID(ctx context.Context, id, userID string) error {
	if err := o.checkOwner(ctx, id, userID); err != nil {
		return err
	}

	if err := o.offerRepository.DeleteOffer(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("offer_id", id).Msg("offer deletion failed")
		return fmt.Errorf("offer deletion failed: %w", err)
	}

	return nil
}

func (o *offerService) checkOwner(ctx context.Context, id, userID string) error {
	offer, err := o.FindByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if offer.UserID != userID {
		logger.FromContext(ctx).Warn().
			Str("offer_id", id).
			Str("owner_id", offer.UserID).
			Str("user_id", userID).
			Msg("attempt to modify offer of another user")
		return ErrForbidden
	}

	return nil
}

// AddToFavorites marks offerID as favorite of userID. Adding an offer twice
// is not an error.
func (o *offerService) AddToFavorites(ctx context.Context, userID, offerID string) (models.Offer, error) {
	if err := o.offerRepository.AddFavorite(ctx, userID, offerID); err != nil {
		logger.FromContext(ctx).Err(err).Str("offer_id", offerID).Str("user_id", userID).Msg("adding favorite failed")
		return models.Offer{}, fmt.Errorf("adding favorite failed: %w", err)
	}

	return o.FindByID(ctx, offerID, userID)
}

func (o *offerService) RemoveFromFavorites(ctx context.Context, userID, offerID string) (models.Offer, error) {
	if err := o.offerRepository.RemoveFavorite(ctx, userID, offerID); err != nil {
		logger.FromContext(ctx).Err(err).Str("offer_id", offerID).Str("user_id", userID).Msg("removing favorite failed")
		return models.Offer{}, fmt.Errorf("removing favorite failed: %w", err)
	}

	return o.FindByID(ctx, offerID, userID)
}
