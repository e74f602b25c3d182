// Package typeface loads font assets and answers the per-character questions
// the layout engine asks: which glyph renders a rune, and how far it advances.
package typeface

import (
	"fmt"
	"os"
	"sync"

	"github.com/rocketscienceinc/nullboard/internal/apperror"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphID identifies a glyph inside one font. Zero is the .notdef glyph.
type GlyphID uint16

const NotDef GlyphID = 0

// Font wraps a parsed OpenType/TrueType font. It is safe for concurrent use;
// queries share a single sfnt.Buffer under a mutex.
type Font struct {
	font *opentype.Font

	mu  sync.Mutex
	buf sfnt.Buffer
}

// Parse - parses TrueType or OpenType font bytes.
func Parse(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty font data", apperror.ErrFontLoad)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrFontLoad, err)
	}

	return &Font{font: parsed}, nil
}

// Load - reads and parses the font file at path.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperror.ErrFontLoad, path, err)
	}

	parsed, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return parsed, nil
}

// Name returns the font family name, or an empty string if the font has none.
func (that *Font) Name() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	name, err := that.font.Name(&that.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}

	return name
}

// UnitsPerEm returns the size of the font's design grid.
func (that *Font) UnitsPerEm() int {
	return int(that.font.UnitsPerEm())
}

// GlyphIndex - resolves the glyph for r. A rune the font does not map yields
// a *apperror.GlyphNotFoundError.
func (that *Font) GlyphIndex(r rune) (GlyphID, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	idx, err := that.font.GlyphIndex(&that.buf, r)
	if err != nil {
		return NotDef, fmt.Errorf("could not look up glyph for %q: %w", r, err)
	}

	if idx == 0 {
		return NotDef, &apperror.GlyphNotFoundError{Rune: r}
	}

	return GlyphID(idx), nil
}

// Advance - returns the unhinted horizontal advance of id in font units.
func (that *Font) Advance(id GlyphID) (float64, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	// Asking for the advance at ppem == unitsPerEm returns it in font units.
	ppem := fixed.I(that.UnitsPerEm())

	advance, err := that.font.GlyphAdvance(&that.buf, sfnt.GlyphIndex(id), ppem, font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("could not get advance of glyph %d: %w", id, err)
	}

	return float64(advance) / 64, nil
}

// Outline - returns the outline of id scaled to ppem pixels per em. Segment
// coordinates are relative to the glyph origin on the baseline, y pointing down.
func (that *Font) Outline(id GlyphID, ppem float64) (sfnt.Segments, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	segments, err := that.font.LoadGlyph(&that.buf, sfnt.GlyphIndex(id), fixed.Int26_6(ppem*64), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load glyph %d: %w", id, err)
	}

	// segments alias the buffer and are invalidated by the next query.
	out := make(sfnt.Segments, len(segments))
	copy(out, segments)

	return out, nil
}
