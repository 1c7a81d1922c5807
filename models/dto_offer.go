package models

// CreateOfferDTO is the request body for publishing a new offer.
type CreateOfferDTO struct {
	Name         string      `json:"name" validate:"required,min=10,max=100"`
	Description  string      `json:"description" validate:"required,min=20,max=1024"`
	PostDate     string      `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	City         City        `json:"city" validate:"required,oneof=Paris Cologne Brussels Amsterdam Hamburg Dusseldorf"`
	PreviewImage string      `json:"previewImage" validate:"required,max=256"`
	Photos       []string    `json:"photo" validate:"required,len=6,dive,required"`
	IsPremium    *bool       `json:"isPremium" validate:"required"`
	Type         OfferType   `json:"type" validate:"required,oneof=apartment house room hotel"`
	Rooms        int         `json:"rooms" validate:"required,min=1,max=8"`
	Guests       int         `json:"guests" validate:"required,min=1,max=10"`
	Price        int         `json:"price" validate:"required,min=100,max=100000"`
	Amenities    []Amenity   `json:"amenities" validate:"required,min=1,dive,oneof='Breakfast' 'Air conditioning' 'Laptop friendly workspace' 'Baby seat' 'Washer' 'Towels' 'Fridge'"`
	Coordinates  *Coordinates `json:"coordinates" validate:"required"`
}

// UpdateOfferDTO is the request body for a partial offer update.
// Nil fields are left untouched.
type UpdateOfferDTO struct {
	Name         *string      `json:"name,omitempty" validate:"omitempty,min=10,max=100"`
	Description  *string      `json:"description,omitempty" validate:"omitempty,min=20,max=1024"`
	PostDate     *string      `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	City         *City        `json:"city,omitempty" validate:"omitempty,oneof=Paris Cologne Brussels Amsterdam Hamburg Dusseldorf"`
	PreviewImage *string      `json:"previewImage,omitempty" validate:"omitempty,max=256"`
	Photos       []string     `json:"photo,omitempty" validate:"omitempty,len=6,dive,required"`
	IsPremium    *bool        `json:"isPremium,omitempty"`
	Type         *OfferType   `json:"type,omitempty" validate:"omitempty,oneof=apartment house room hotel"`
	Rooms        *int         `json:"rooms,omitempty" validate:"omitempty,min=1,max=8"`
	Guests       *int         `json:"guests,omitempty" validate:"omitempty,min=1,max=10"`
	Price        *int         `json:"price,omitempty" validate:"omitempty,min=100,max=100000"`
	Amenities    []Amenity    `json:"amenities,omitempty" validate:"omitempty,min=1,dive,oneof='Breakfast' 'Air conditioning' 'Laptop friendly workspace' 'Baby seat' 'Washer' 'Towels' 'Fridge'"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u UpdateOfferDTO) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.PostDate == nil && u.City == nil &&
		u.PreviewImage == nil && u.Photos == nil && u.IsPremium == nil && u.Type == nil &&
		u.Rooms == nil && u.Guests == nil && u.Price == nil && u.Amenities == nil &&
		u.Coordinates == nil
}
