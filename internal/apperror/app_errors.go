package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlayerCount  = errors.New("player count must be 3 or 4")
	ErrGlyphNotFound       = errors.New("glyph not found")
	ErrFontLoad            = errors.New("could not load font")
	ErrNoActiveGame        = errors.New("no active game")
	ErrNameTooLong         = errors.New("display name is too long")
	ErrEmptyName           = errors.New("display name is empty")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrPlayerAlreadyExists = errors.New("player already registered")
	ErrUnknownGlyphPolicy  = errors.New("unknown missing glyph policy")
	ErrEmptyPlayerID       = errors.New("player id is empty")
	ErrInvalidPosition     = errors.New("invalid board position")
)

// GlyphNotFoundError reports a character the loaded font has no glyph for.
type GlyphNotFoundError struct {
	Rune rune
}

func (that *GlyphNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q (U+%04X)", ErrGlyphNotFound, that.Rune, that.Rune)
}

func (that *GlyphNotFoundError) Unwrap() error {
	return ErrGlyphNotFound
}

// IsClientError reports whether err was caused by the request rather than by
// the service.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrInvalidPlayerCount,
		ErrNameTooLong,
		ErrEmptyName,
		ErrEmptyPlayerID,
		ErrPlayerNotFound,
		ErrPlayerAlreadyExists,
		ErrNoActiveGame,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
