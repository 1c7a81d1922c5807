package models

// CreateUserDTO is the request body for registering an account.
type CreateUserDTO struct {
	Name     string   `json:"name" validate:"required,min=1,max=15"`
	Email    string   `json:"email" validate:"required,email"`
	Avatar   string   `json:"avatar,omitempty" validate:"omitempty,max=256"`
	Password string   `json:"password" validate:"required,min=6,max=12"`
	Type     UserType `json:"type" validate:"required,oneof=regular pro"`
}

// LoginUserDTO is the request body for obtaining an access token.
type LoginUserDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=12"`
}
