package models

// CreateCommentDTO is the request body for leaving a comment on an offer.
type CreateCommentDTO struct {
	Text    string `json:"text" validate:"required,min=5,max=1024"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	OfferID string `json:"offerId" validate:"required,len=24,hexadecimal"`
}
