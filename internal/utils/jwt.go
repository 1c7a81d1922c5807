package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/six-cities/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when a token cannot be verified: bad
	// signature, unexpected algorithm, malformed or expired.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidTokenPayload is returned when a verified token does not carry
	// a well-formed [models.TokenPayload].
	ErrInvalidTokenPayload = errors.New("invalid token payload")
)

// tokenClaims is the claim set of an access token: the identity fields at the
// top level next to the registered iat/exp claims.
type tokenClaims struct {
	models.TokenPayload
	jwt.RegisteredClaims
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT carrying payload.
//
// The token includes the identity fields of payload plus IssuedAt (iat) and
// ExpiresAt (exp = now + tokenDuration).
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.NewTokenPayload(user), 48*time.Hour, "secret")
func GenerateJWTToken(payload models.TokenPayload, tokenDuration time.Duration, signKey string) (string, error) {
	if payload.ID == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := tokenClaims{
		TokenPayload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken verifies tokenString with signKey and extracts the
// identity it carries.
//
// Verification covers the HS256 signature and the exp claim. A verified token
// must carry string "id", "mail", "name", "avatar" claims and a boolean
// "isPro" claim; "id" must not be empty.
//
// Returns [ErrInvalidToken] when verification fails and
// [ErrInvalidTokenPayload] when the claim set has the wrong shape.
func ValidateAndParseJWTToken(tokenString, signKey string) (models.TokenPayload, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.TokenPayload{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return tokenPayloadFromClaims(claims)
}

func tokenPayloadFromClaims(claims jwt.MapClaims) (models.TokenPayload, error) {
	var payload models.TokenPayload
	var ok bool

	if payload.ID, ok = claims["id"].(string); !ok || payload.ID == "" {
		return models.TokenPayload{}, fmt.Errorf("%w: id", ErrInvalidTokenPayload)
	}
	if payload.Mail, ok = claims["mail"].(string); !ok {
		return models.TokenPayload{}, fmt.Errorf("%w: mail", ErrInvalidTokenPayload)
	}
	if payload.Name, ok = claims["name"].(string); !ok {
		return models.TokenPayload{}, fmt.Errorf("%w: name", ErrInvalidTokenPayload)
	}
	if payload.Avatar, ok = claims["avatar"].(string); !ok {
		return models.TokenPayload{}, fmt.Errorf("%w: avatar", ErrInvalidTokenPayload)
	}
	if payload.IsPro, ok = claims["isPro"].(bool); !ok {
		return models.TokenPayload{}, fmt.Errorf("%w: isPro", ErrInvalidTokenPayload)
	}

	return payload, nil
}
