// Package layout places glyphs for single-line text runs centered on an anchor.
package layout

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/nullboard/internal/apperror"
	"github.com/rocketscienceinc/nullboard/internal/typeface"
	"golang.org/x/text/unicode/norm"
)

// Metrics is the part of a font the engine needs.
type Metrics interface {
	GlyphIndex(r rune) (typeface.GlyphID, error)
	Advance(id typeface.GlyphID) (float64, error)
}

type Point struct {
	X, Y float64
}

// PositionedGlyph is a glyph and the baseline origin it is drawn at.
type PositionedGlyph struct {
	ID   typeface.GlyphID
	Rune rune
	X, Y float64
	// Advance is the scaled advance in pixels.
	Advance float64
}

// Run is the result of laying out one string.
type Run struct {
	Glyphs []PositionedGlyph
	// Width is the sum of all advances.
	Width float64
	// Missing lists the characters that were skipped or replaced.
	Missing []rune
}

type Engine struct {
	calibration Calibration
	policy      MissingGlyphPolicy
}

func NewEngine(calibration Calibration, policy MissingGlyphPolicy) (*Engine, error) {
	if err := calibration.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		calibration: calibration,
		policy:      policy,
	}, nil
}

func (that *Engine) Calibration() Calibration {
	return that.calibration
}

func (that *Engine) Policy() MissingGlyphPolicy {
	return that.policy
}

// Layout - lays text out left to right from anchor.X, then shifts the whole
// run left by half its width so it is centered on anchor.X. Every glyph sits on
// anchor.Y; there is no wrapping and no kerning.
func (that *Engine) Layout(metrics Metrics, pointSize float64, text string, anchor Point) (*Run, error) {
	// Composed forms are what fonts map; "e" + U+0301 has no glyph of its own.
	text = norm.NFC.String(text)

	run := &Run{
		Glyphs: make([]PositionedGlyph, 0, len(text)),
	}

	cursor := anchor.X
	for _, r := range text {
		id, err := metrics.GlyphIndex(r)
		if err != nil {
			id, err = that.resolveMissing(r, err)
			if err != nil {
				return nil, err
			}

			run.Missing = append(run.Missing, r)
			if that.policy == PolicySkip {
				continue
			}
		}

		advance, err := metrics.Advance(id)
		if err != nil {
			return nil, fmt.Errorf("could not lay out %q: %w", r, err)
		}

		step := that.calibration.Scale(advance, pointSize)
		run.Glyphs = append(run.Glyphs, PositionedGlyph{
			ID:      id,
			Rune:    r,
			X:       cursor,
			Y:       anchor.Y,
			Advance: step,
		})

		cursor += step
	}

	run.Width = cursor - anchor.X

	shift := run.Width / 2
	for i := range run.Glyphs {
		run.Glyphs[i].X -= shift
	}

	return run, nil
}

func (that *Engine) resolveMissing(r rune, err error) (typeface.GlyphID, error) {
	if !errors.Is(err, apperror.ErrGlyphNotFound) {
		return typeface.NotDef, fmt.Errorf("could not lay out %q: %w", r, err)
	}

	switch that.policy {
	case PolicyPlaceholder, PolicySkip:
		return typeface.NotDef, nil
	default:
		return typeface.NotDef, err
	}
}

// Width sums the advances of glyphs. For a run from Layout it equals Run.Width.
func Width(glyphs []PositionedGlyph) float64 {
	var width float64
	for _, glyph := range glyphs {
		width += glyph.Advance
	}

	return width
}
