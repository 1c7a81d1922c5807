package models

import "time"

// Comment is a user review left on an offer.
type Comment struct {
	ID        string
	Text      string
	Rating    int
	OfferID   string
	UserID    string
	User      User
	CreatedAt time.Time
}
