// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// City is one of the cities offers can be published in.
type City string

const (
	CityParis      City = "Paris"
	CityCologne    City = "Cologne"
	CityBrussels   City = "Brussels"
	CityAmsterdam  City = "Amsterdam"
	CityHamburg    City = "Hamburg"
	CityDusseldorf City = "Dusseldorf"
)

// Cities lists every supported [City] in display order.
var Cities = []City{CityParis, CityCologne, CityBrussels, CityAmsterdam, CityHamburg, CityDusseldorf}

// IsValid reports whether c is one of [Cities].
func (c City) IsValid() bool {
	for _, city := range Cities {
		if c == city {
			return true
		}
	}
	return false
}

// OfferType describes the kind of housing an offer is for.
type OfferType string

const (
	OfferTypeApartment OfferType = "apartment"
	OfferTypeHouse     OfferType = "house"
	OfferTypeRoom      OfferType = "room"
	OfferTypeHotel     OfferType = "hotel"
)

// Amenity is a convenience available in the offered housing.
type Amenity string

const (
	AmenityBreakfast       Amenity = "Breakfast"
	AmenityAirConditioning Amenity = "Air conditioning"
	AmenityWorkspace       Amenity = "Laptop friendly workspace"
	AmenityBabySeat        Amenity = "Baby seat"
	AmenityWasher          Amenity = "Washer"
	AmenityTowels          Amenity = "Towels"
	AmenityFridge          Amenity = "Fridge"
)

// Coordinates is a geographic point of the offered housing.
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// Offer is a rental listing.
//
// Rating, CommentCount and IsFavorite are never stored in the offers table:
// rating and comment count are derived from comments, IsFavorite is computed
// for the user the offer is read for.
type Offer struct {
	ID           string
	Name         string
	Description  string
	PostDate     time.Time
	City         City
	PreviewImage string
	Photos       []string
	IsPremium    bool
	IsFavorite   bool
	Rating       float64
	CommentCount int
	Type         OfferType
	Rooms        int
	Guests       int
	Price        int
	Amenities    []Amenity
	UserID       string
	User         User
	Coordinates  Coordinates
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OfferFilter narrows the set of offers returned by a listing query.
type OfferFilter struct {
	// ForUserID annotates IsFavorite for this user. Empty means anonymous.
	ForUserID string

	// City keeps only offers published in this city when non-empty.
	City City

	// PremiumOnly keeps only premium offers.
	PremiumOnly bool

	// FavoritesOnly keeps only offers ForUserID has added to favorites.
	FavoritesOnly bool

	// Limit caps the number of returned offers; zero means no limit.
	Limit uint64
}
