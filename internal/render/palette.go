package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the board colors.
type Palette struct {
	EvenCell     color.NRGBA
	OddCell      color.NRGBA
	OccupiedCell color.NRGBA
	NameText     color.NRGBA
	StatText     color.NRGBA
}

func DefaultPalette() Palette {
	return Palette{
		EvenCell:     color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		OddCell:      color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff},
		OccupiedCell: color.NRGBA{R: 0x32, G: 0x48, B: 0xa8, A: 0xff},
		NameText:     color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		StatText:     color.NRGBA{R: 0xc7, G: 0x47, B: 0x36, A: 0xff},
	}
}

// PaletteFromHex builds a palette from "#RRGGBB" strings. Empty strings keep
// the default color for that slot.
func PaletteFromHex(even, odd, occupied, name, stat string) (Palette, error) {
	palette := DefaultPalette()

	slots := []struct {
		hex  string
		dest *color.NRGBA
	}{
		{even, &palette.EvenCell},
		{odd, &palette.OddCell},
		{occupied, &palette.OccupiedCell},
		{name, &palette.NameText},
		{stat, &palette.StatText},
	}

	for _, slot := range slots {
		if slot.hex == "" {
			continue
		}

		c, err := ParseHexColor(slot.hex)
		if err != nil {
			return Palette{}, err
		}
		*slot.dest = c
	}

	return palette, nil
}

// ParseHexColor parses "#RRGGBB" (the leading '#' is optional) into an opaque color.
func ParseHexColor(hex string) (color.NRGBA, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(digits) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", hex)
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return color.NRGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xff,
	}, nil
}
