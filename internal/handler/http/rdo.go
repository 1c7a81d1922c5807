package http

import (
	"time"

	"github.com/MKhiriev/six-cities/models"
)

// UserRDO is the public view of a user. The password hash is never exposed.
type UserRDO struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Avatar string          `json:"avatar"`
	Type   models.UserType `json:"type"`
}

// LoggedUserRDO is returned by a successful login.
type LoggedUserRDO struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	IsPro  bool   `json:"isPro"`
	Token  string `json:"token"`
}

// UploadAvatarRDO is returned after an avatar upload.
type UploadAvatarRDO struct {
	Avatar string `json:"avatar"`
}

// OfferRDO is the short offer view used in listings.
type OfferRDO struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	PostDate     time.Time        `json:"date"`
	City         models.City      `json:"city"`
	PreviewImage string           `json:"previewImage"`
	IsPremium    bool             `json:"isPremium"`
	IsFavorite   bool             `json:"isFavorite"`
	Rating       float64          `json:"rating"`
	Type         models.OfferType `json:"type"`
	Price        int              `json:"price"`
	CommentCount int              `json:"commentCount"`
}

// FullOfferRDO is the detailed offer view with its author.
type FullOfferRDO struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	PostDate     time.Time          `json:"date"`
	City         models.City        `json:"city"`
	PreviewImage string             `json:"previewImage"`
	Photos       []string           `json:"photo"`
	IsPremium    bool               `json:"isPremium"`
	IsFavorite   bool               `json:"isFavorite"`
	Rating       float64            `json:"rating"`
	CommentCount int                `json:"commentCount"`
	Type         models.OfferType   `json:"type"`
	Rooms        int                `json:"rooms"`
	Guests       int                `json:"guests"`
	Price        int                `json:"price"`
	Amenities    []models.Amenity   `json:"amenities"`
	User         UserRDO            `json:"user"`
	Coordinates  models.Coordinates `json:"coordinates"`
}

// CommentRDO is the public view of a comment with its author.
type CommentRDO struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	User      UserRDO   `json:"user"`
	CreatedAt time.Time `json:"date"`
}

func NewUserRDO(u models.User) UserRDO {
	return UserRDO{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
		Type:   u.Type,
	}
}

func NewLoggedUserRDO(u models.User, token string) LoggedUserRDO {
	return LoggedUserRDO{
		Email:  u.Email,
		Name:   u.Name,
		Avatar: u.Avatar,
		IsPro:  u.IsPro(),
		Token:  token,
	}
}

func NewOfferRDO(o models.Offer) OfferRDO {
	return OfferRDO{
		ID:           o.ID,
		Name:         o.Name,
		PostDate:     o.PostDate,
		City:         o.City,
		PreviewImage: o.PreviewImage,
		IsPremium:    o.IsPremium,
		IsFavorite:   o.IsFavorite,
		Rating:       o.Rating,
		Type:         o.Type,
		Price:        o.Price,
		CommentCount: o.CommentCount,
	}
}

// NewOfferRDOs maps a listing. The result is never nil so that an empty
// listing is encoded as [].
func NewOfferRDOs(offers []models.Offer) []OfferRDO {
	rdos := make([]OfferRDO, 0, len(offers))
	for _, o := range offers {
		rdos = append(rdos, NewOfferRDO(o))
	}
	return rdos
}

func NewFullOfferRDO(o models.Offer) FullOfferRDO {
	photos := o.Photos
	if photos == nil {
		photos = []string{}
	}
	amenities := o.Amenities
	if amenities == nil {
		amenities = []models.Amenity{}
	}

	return FullOfferRDO{
		ID:           o.ID,
		Name:         o.Name,
		Description:  o.Description,
		PostDate:     o.PostDate,
		City:         o.City,
		PreviewImage: o.PreviewImage,
		Photos:       photos,
		IsPremium:    o.IsPremium,
		IsFavorite:   o.IsFavorite,
		Rating:       o.Rating,
		CommentCount: o.CommentCount,
		Type:         o.Type,
		Rooms:        o.Rooms,
		Guests:       o.Guests,
		Price:        o.Price,
		Amenities:    amenities,
		User:         NewUserRDO(o.User),
		Coordinates:  o.Coordinates,
	}
}

func NewCommentRDO(c models.Comment) CommentRDO {
	return CommentRDO{
		ID:        c.ID,
		Text:      c.Text,
		Rating:    c.Rating,
		User:      NewUserRDO(c.User),
		CreatedAt: c.CreatedAt,
	}
}

func NewCommentRDOs(comments []models.Comment) []CommentRDO {
	rdos := make([]CommentRDO, 0, len(comments))
	for _, c := range comments {
		rdos = append(rdos, NewCommentRDO(c))
	}
	return rdos
}
