package validation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/video-social-api/internal/apperrors"
)

// IsValidID checks if a string is a well-formed entity identifier (UUID)
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// ValidateID checks an identifier before any store access. Malformed ids
// fail here so the store is never queried with them and "not found" stays
// distinct from "malformed".
func ValidateID(name, id string) error {
	if id == "" {
		return apperrors.InvalidIdentifier(fmt.Sprintf("%s is required", name))
	}
	if !IsValidID(id) {
		return apperrors.InvalidIdentifier(fmt.Sprintf("%s is not a valid identifier", name))
	}
	return nil
}
