package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/six-cities/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func validCreateOfferDTO() models.CreateOfferDTO {
	return models.CreateOfferDTO{
		Name:         "Beautiful & luxurious studio",
		Description:  "A quiet cozy and picturesque place that hides behind a river.",
		PostDate:     "2024-04-01T10:00:00.000Z",
		City:         models.CityAmsterdam,
		PreviewImage: "preview.jpg",
		Photos:       []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"},
		IsPremium:    boolPtr(true),
		Type:         models.OfferTypeApartment,
		Rooms:        3,
		Guests:       4,
		Price:        120,
		Amenities:    []models.Amenity{models.AmenityBreakfast, models.AmenityAirConditioning},
		Coordinates:  &models.Coordinates{Latitude: 52.370216, Longitude: 4.895168},
	}
}

func validationErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
	return verrs
}

func properties(verrs ValidationErrors) []string {
	props := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		props = append(props, fe.Property)
	}
	return props
}

func TestStructValidator_ValidCreateOffer(t *testing.T) {
	v := NewStructValidator()
	dto := validCreateOfferDTO()

	assert.NoError(t, v.Validate(context.Background(), &dto))
}

func TestStructValidator_CreateOffer_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(dto *models.CreateOfferDTO)
		wantProps []string
		wantMsg   string
	}{
		{
			name:      "missing name",
			mutate:    func(dto *models.CreateOfferDTO) { dto.Name = "" },
			wantProps: []string{"name"},
			wantMsg:   "name should not be empty",
		},
		{
			name:      "short name",
			mutate:    func(dto *models.CreateOfferDTO) { dto.Name = "short" },
			wantProps: []string{"name"},
			wantMsg:   "name must be longer than or equal to 10 characters",
		},
		{
			name:      "five photos",
			mutate:    func(dto *models.CreateOfferDTO) { dto.Photos = dto.Photos[:5] },
			wantProps: []string{"photo"},
			wantMsg:   "photo must contain exactly 6 elements",
		},
		{
			name:      "unknown city",
			mutate:    func(dto *models.CreateOfferDTO) { dto.City = "Berlin" },
			wantProps: []string{"city"},
			wantMsg:   "city must be one of the following values: Paris, Cologne, Brussels, Amsterdam, Hamburg, Dusseldorf",
		},
		{
			name:      "unknown amenity",
			mutate:    func(dto *models.CreateOfferDTO) { dto.Amenities = []models.Amenity{"Sauna"} },
			wantProps: []string{"amenities[0]"},
		},
		{
			name:      "missing isPremium",
			mutate:    func(dto *models.CreateOfferDTO) { dto.IsPremium = nil },
			wantProps: []string{"isPremium"},
		},
		{
			name:      "bad date",
			mutate:    func(dto *models.CreateOfferDTO) { dto.PostDate = "yesterday" },
			wantProps: []string{"date"},
			wantMsg:   "date must be a valid ISO 8601 date string",
		},
		{
			name:      "missing coordinates",
			mutate:    func(dto *models.CreateOfferDTO) { dto.Coordinates = nil },
			wantProps: []string{"coordinates"},
		},
		{
			name:      "latitude out of range",
			mutate:    func(dto *models.CreateOfferDTO) { dto.Coordinates.Latitude = 100 },
			wantProps: []string{"coordinates.latitude"},
		},
		{
			name: "several fields at once",
			mutate: func(dto *models.CreateOfferDTO) {
				dto.Name = ""
				dto.Rooms = 9
				dto.Price = 50
			},
			wantProps: []string{"name", "rooms", "price"},
		},
	}

	v := NewStructValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := validCreateOfferDTO()
			tt.mutate(&dto)

			verrs := validationErrors(t, v.Validate(context.Background(), &dto))
			assert.Equal(t, tt.wantProps, properties(verrs))
			if tt.wantMsg != "" {
				assert.Contains(t, verrs[0].Messages, tt.wantMsg)
			}
		})
	}
}

func TestStructValidator_ReportsRejectedValue(t *testing.T) {
	v := NewStructValidator()
	dto := validCreateOfferDTO()
	dto.Guests = 11

	verrs := validationErrors(t, v.Validate(context.Background(), &dto))
	require.Len(t, verrs, 1)
	assert.Equal(t, "guests", verrs[0].Property)
	assert.Equal(t, 11, verrs[0].Value)
	assert.Equal(t, []string{"guests must not be greater than 10"}, verrs[0].Messages)
}

func TestStructValidator_UpdateOffer(t *testing.T) {
	v := NewStructValidator()

	empty := models.UpdateOfferDTO{}
	assert.NoError(t, v.Validate(context.Background(), &empty))

	ok := models.UpdateOfferDTO{Name: strPtr("A brand new offer name")}
	assert.NoError(t, v.Validate(context.Background(), &ok))

	bad := models.UpdateOfferDTO{Name: strPtr("short"), Coordinates: &models.Coordinates{Longitude: 200}}
	verrs := validationErrors(t, v.Validate(context.Background(), &bad))
	assert.Equal(t, []string{"name", "coordinates.longitude"}, properties(verrs))
}

func TestStructValidator_Users(t *testing.T) {
	v := NewStructValidator()

	user := models.CreateUserDTO{Name: "Keks", Email: "keks@htmlacademy.ru", Password: "secret1", Type: models.UserTypePro}
	assert.NoError(t, v.Validate(context.Background(), &user))

	user.Email = "not-an-email"
	user.Password = "123"
	verrs := validationErrors(t, v.Validate(context.Background(), &user))
	assert.Equal(t, []string{"email", "password"}, properties(verrs))
	assert.Equal(t, []string{"email must be an email"}, verrs[0].Messages)
}

func TestStructValidator_Comment(t *testing.T) {
	v := NewStructValidator()

	comment := models.CreateCommentDTO{Text: "Nice place", Rating: 5, OfferID: "65f1c0a3b2d4e5f6a7b8c9d0"}
	assert.NoError(t, v.Validate(context.Background(), &comment))

	comment.Rating = 6
	comment.OfferID = "abc"
	verrs := validationErrors(t, v.Validate(context.Background(), &comment))
	assert.Equal(t, []string{"rating", "offerId"}, properties(verrs))
}

func TestStructValidator_UnsupportedType(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), "not a struct")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidationErrors_Error(t *testing.T) {
	err := ValidationErrors{
		{Property: "name", Messages: []string{"a", "b"}},
		{Property: "price", Messages: []string{"c"}},
	}
	assert.Equal(t, "validation failed: name: a, b; price: c", err.Error())
}
