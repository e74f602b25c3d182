package entity

import (
	"fmt"

	"github.com/rocketscienceinc/nullboard/internal/apperror"
)

// MaxDisplayNameBytes is the registration limit for display names, in bytes of UTF-8.
const MaxDisplayNameBytes = 32

// Player is a registered participant as the registration layer hands it over.
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// ValidateDisplayName - checks the registration limits of a display name.
// Board construction does not call it: players arrive already validated.
func ValidateDisplayName(name string) error {
	if name == "" {
		return apperror.ErrEmptyName
	}

	if len(name) > MaxDisplayNameBytes {
		return fmt.Errorf("%w: %d bytes, max %d", apperror.ErrNameTooLong, len(name), MaxDisplayNameBytes)
	}

	return nil
}
