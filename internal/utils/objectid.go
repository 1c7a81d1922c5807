package utils

import (
	"encoding/hex"
	"regexp"

	"github.com/google/uuid"
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsObjectID reports whether s is a 24-character hexadecimal identifier.
func IsObjectID(s string) bool {
	return objectIDPattern.MatchString(s)
}

// ObjectIDGenerator produces 24-hex identifiers from the leading 12 bytes of
// a UUIDv7, so identifiers sort by creation time.
type ObjectIDGenerator struct {
}

func NewObjectIDGenerator() *ObjectIDGenerator {
	return &ObjectIDGenerator{}
}

func (g *ObjectIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		v7 = uuid.New()
	}

	return hex.EncodeToString(v7[:12])
}
