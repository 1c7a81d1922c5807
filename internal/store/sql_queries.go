package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/six-cities/models"
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"id", "name", "email", "avatar", "password_hash", "type", "created_at"}

var commentColumns = []string{"c.id", "c.text", "c.rating", "c.offer_id", "c.user_id", "c.created_at",
	"u.name", "u.email", "u.avatar", "u.type", "u.created_at"}

const (
	userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);`

	offerExists = `SELECT EXISTS (SELECT 1 FROM offers WHERE id = $1);`

	deleteOffer = `DELETE FROM offers WHERE id = $1;`

	addFavorite = `INSERT INTO favorites (user_id, offer_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, offer_id) DO NOTHING;`

	removeFavorite = `DELETE FROM favorites
		WHERE user_id = $1 AND offer_id = $2;`

	offerRating = `COALESCE((SELECT ROUND(AVG(c.rating)::numeric, 1) FROM comments c WHERE c.offer_id = o.id), 0)::float8 AS rating`

	offerCommentCount = `(SELECT COUNT(*) FROM comments c WHERE c.offer_id = o.id) AS comment_count`
)

// ── users ──

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("id", "name", "email", "avatar", "password_hash", "type").
		Values(user.ID, user.Name, user.Email, user.Avatar, user.PasswordHash, string(user.Type)).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildFindUserQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
}

func buildUpdateAvatarQuery(id, avatar string) (string, []any, error) {
	return psql.Update("users").
		Set("avatar", avatar).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

// ── offers ──

// selectOffers returns the offer read query with derived columns. The
// favorite flag is computed for forUserID and is false for anonymous reads.
func selectOffers(forUserID string) sq.SelectBuilder {
	isFavorite := sq.Expr("FALSE")
	if forUserID != "" {
		isFavorite = sq.Expr("EXISTS (SELECT 1 FROM favorites f WHERE f.offer_id = o.id AND f.user_id = ?)", forUserID)
	}

	return psql.Select(
		"o.id", "o.name", "o.description", "o.post_date", "o.city", "o.preview_image", "o.photos", "o.is_premium").
		Column(sq.Alias(isFavorite, "is_favorite")).
		Columns(
			offerRating, offerCommentCount,
			"o.type", "o.rooms", "o.guests", "o.price", "o.amenities", "o.latitude", "o.longitude",
			"o.user_id", "o.created_at", "o.updated_at",
			"u.name", "u.email", "u.avatar", "u.type", "u.created_at").
		From("offers o").
		Join("users u ON u.id = o.user_id")
}

func buildFindOffersQuery(filter models.OfferFilter) (string, []any, error) {
	query := selectOffers(filter.ForUserID)

	if filter.FavoritesOnly {
		query = query.Join("favorites fav ON fav.offer_id = o.id AND fav.user_id = ?", filter.ForUserID)
	}
	if filter.City != "" {
		query = query.Where(sq.Eq{"o.city": string(filter.City)})
	}
	if filter.PremiumOnly {
		query = query.Where(sq.Eq{"o.is_premium": true})
	}

	query = query.OrderBy("o.post_date DESC", "o.id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}

func buildFindOfferByIDQuery(id, forUserID string) (string, []any, error) {
	return selectOffers(forUserID).
		Where(sq.Eq{"o.id": id}).
		ToSql()
}

func buildCreateOfferQuery(offer models.Offer) (string, []any, error) {
	photos, err := json.Marshal(offer.Photos)
	if err != nil {
		return "", nil, fmt.Errorf("%w: photos: %w", ErrBuildingSQLQuery, err)
	}
	amenities, err := json.Marshal(offer.Amenities)
	if err != nil {
		return "", nil, fmt.Errorf("%w: amenities: %w", ErrBuildingSQLQuery, err)
	}

	return psql.Insert("offers").
		Columns("id", "name", "description", "post_date", "city", "preview_image", "photos", "is_premium",
			"type", "rooms", "guests", "price", "amenities", "latitude", "longitude", "user_id").
		Values(offer.ID, offer.Name, offer.Description, offer.PostDate, string(offer.City), offer.PreviewImage,
			string(photos), offer.IsPremium, string(offer.Type), offer.Rooms, offer.Guests, offer.Price,
			string(amenities), offer.Coordinates.Latitude, offer.Coordinates.Longitude, offer.UserID).
		ToSql()
}

// buildUpdateOfferQuery sets only the fields present in update.
func buildUpdateOfferQuery(id string, update models.UpdateOfferDTO) (string, []any, error) {
	query := psql.Update("offers").Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.PostDate != nil {
		postDate, err := time.Parse(time.RFC3339, *update.PostDate)
		if err != nil {
			return "", nil, fmt.Errorf("%w: date: %w", ErrBuildingSQLQuery, err)
		}
		query = query.Set("post_date", postDate)
	}
	if update.City != nil {
		query = query.Set("city", string(*update.City))
	}
	if update.PreviewImage != nil {
		query = query.Set("preview_image", *update.PreviewImage)
	}
	if update.Photos != nil {
		photos, err := json.Marshal(update.Photos)
		if err != nil {
			return "", nil, fmt.Errorf("%w: photos: %w", ErrBuildingSQLQuery, err)
		}
		query = query.Set("photos", string(photos))
	}
	if update.IsPremium != nil {
		query = query.Set("is_premium", *update.IsPremium)
	}
	if update.Type != nil {
		query = query.Set("type", string(*update.Type))
	}
	if update.Rooms != nil {
		query = query.Set("rooms", *update.Rooms)
	}
	if update.Guests != nil {
		query = query.Set("guests", *update.Guests)
	}
	if update.Price != nil {
		query = query.Set("price", *update.Price)
	}
	if update.Amenities != nil {
		amenities, err := json.Marshal(update.Amenities)
		if err != nil {
			return "", nil, fmt.Errorf("%w: amenities: %w", ErrBuildingSQLQuery, err)
		}
		query = query.Set("amenities", string(amenities))
	}
	if update.Coordinates != nil {
		query = query.
			Set("latitude", update.Coordinates.Latitude).
			Set("longitude", update.Coordinates.Longitude)
	}

	return query.Where(sq.Eq{"id": id}).ToSql()
}

// ── comments ──

func buildCreateCommentQuery(comment models.Comment) (string, []any, error) {
	return psql.Insert("comments").
		Columns("id", "text", "rating", "offer_id", "user_id").
		Values(comment.ID, comment.Text, comment.Rating, comment.OfferID, comment.UserID).
		Suffix("RETURNING id, text, rating, offer_id, user_id, created_at").
		ToSql()
}

func buildFindCommentsByOfferIDQuery(offerID string, limit uint64) (string, []any, error) {
	query := psql.Select(commentColumns...).
		From("comments c").
		Join("users u ON u.id = c.user_id").
		Where(sq.Eq{"c.offer_id": offerID}).
		OrderBy("c.created_at DESC", "c.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	return query.ToSql()
}
