// Package canvas is a fixed-size RGBA pixel buffer with the few drawing
// operations the board needs: solid rectangles and positioned glyph runs.
package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/nullboard/internal/layout"
	"github.com/rocketscienceinc/nullboard/internal/typeface"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const filePerm = 0o644

// Canvas is not safe for concurrent use.
type Canvas struct {
	img        *image.RGBA
	rasterizer vector.Rasterizer
}

// New allocates a transparent canvas of width x height pixels.
func New(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (that *Canvas) Bounds() image.Rectangle {
	return that.img.Bounds()
}

// Image returns the underlying buffer.
func (that *Canvas) Image() *image.RGBA {
	return that.img
}

// FillRect - paints a solid rectangle, clipped to the canvas.
func (that *Canvas) FillRect(x, y, width, height int, c color.Color) {
	rect := image.Rect(x, y, x+width, y+height)
	draw.Draw(that.img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawGlyphs - rasterizes each glyph at ppem pixels per em with its baseline
// origin at the glyph's position, and composites it in color c.
func (that *Canvas) DrawGlyphs(font *typeface.Font, ppem float64, glyphs []layout.PositionedGlyph, c color.Color) error {
	src := image.NewUniform(c)

	for _, glyph := range glyphs {
		segments, err := font.Outline(glyph.ID, ppem)
		if err != nil {
			return fmt.Errorf("could not draw %q: %w", glyph.Rune, err)
		}

		that.drawOutline(segments, glyph.X, glyph.Y, src)
	}

	return nil
}

func (that *Canvas) drawOutline(segments sfnt.Segments, x, y float64, src image.Image) {
	if len(segments) == 0 {
		return
	}

	bounds := segments.Bounds()
	rect := image.Rect(
		int(math.Floor(x+fixedToFloat64(bounds.Min.X))),
		int(math.Floor(y+fixedToFloat64(bounds.Min.Y))),
		int(math.Ceil(x+fixedToFloat64(bounds.Max.X))),
		int(math.Ceil(y+fixedToFloat64(bounds.Max.Y))),
	)

	if rect.Empty() || !rect.Overlaps(that.img.Bounds()) {
		return
	}

	// vector.Rasterizer works in mask space starting at (0, 0),
	// so outline points are shifted by the mask's offset.
	dx := float32(x - float64(rect.Min.X))
	dy := float32(y - float64(rect.Min.Y))
	point := func(p fixed.Point26_6) (float32, float32) {
		return dx + float32(p.X)/64, dy + float32(p.Y)/64
	}

	that.rasterizer.Reset(rect.Dx(), rect.Dy())
	that.rasterizer.DrawOp = draw.Src

	open := false
	for _, segment := range segments {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				that.rasterizer.ClosePath()
			}
			that.rasterizer.MoveTo(point(segment.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			that.rasterizer.LineTo(point(segment.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := point(segment.Args[0])
			tx, ty := point(segment.Args[1])
			that.rasterizer.QuadTo(cx, cy, tx, ty)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := point(segment.Args[0])
			c2x, c2y := point(segment.Args[1])
			tx, ty := point(segment.Args[2])
			that.rasterizer.CubeTo(c1x, c1y, c2x, c2y, tx, ty)
		}
	}
	if open {
		that.rasterizer.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	that.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	draw.DrawMask(that.img, rect, src, image.Point{}, mask, image.Point{}, draw.Over)
}

// EncodePNG - writes the canvas as PNG to w.
func (that *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, that.img); err != nil {
		return fmt.Errorf("could not encode png: %w", err)
	}

	return nil
}

// WritePNG - writes the canvas to path. The file appears only once fully
// written: data goes to a temp file in the same directory which is then renamed.
func (that *Canvas) WritePNG(path string) error {
	var buf bytes.Buffer
	if err := that.EncodePNG(&buf); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("could not create image file: %w", err)
	}

	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("could not write image file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("could not close image file: %w", err)
	}

	if err = os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("could not set image file mode: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("could not move image file into place: %w", err)
	}

	committed = true

	return nil
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
