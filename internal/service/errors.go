package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials is returned by login when the email is unknown or the
	// password does not match. Both cases are reported the same way.
	ErrWrongCredentials = errors.New("wrong email or password")

	// ErrForbidden is returned when the requesting user does not own the
	// resource it tries to change.
	ErrForbidden = errors.New("resource belongs to another user")

	// ErrInvalidCity is returned for a city outside models.Cities.
	ErrInvalidCity = errors.New("unknown city")

	ErrHashingPassword     = errors.New("error hashing password")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
