package layout

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/nullboard/internal/apperror"
)

// MissingGlyphPolicy decides what happens to characters the font cannot render.
type MissingGlyphPolicy int

const (
	// PolicyPlaceholder draws the font's .notdef glyph (usually a box) in place
	// of the character and advances by its width.
	PolicyPlaceholder MissingGlyphPolicy = iota
	// PolicySkip drops the character; it takes no horizontal space.
	PolicySkip
	// PolicyFail aborts the layout with the GlyphNotFoundError.
	PolicyFail
)

func (that MissingGlyphPolicy) String() string {
	switch that {
	case PolicyPlaceholder:
		return "placeholder"
	case PolicySkip:
		return "skip"
	case PolicyFail:
		return "fail"
	default:
		return fmt.Sprintf("MissingGlyphPolicy(%d)", int(that))
	}
}

// ParseMissingGlyphPolicy - accepts "placeholder", "skip" or "fail".
func ParseMissingGlyphPolicy(s string) (MissingGlyphPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "placeholder", "":
		return PolicyPlaceholder, nil
	case "skip":
		return PolicySkip, nil
	case "fail":
		return PolicyFail, nil
	default:
		return PolicyPlaceholder, fmt.Errorf("%w: %q", apperror.ErrUnknownGlyphPolicy, s)
	}
}
