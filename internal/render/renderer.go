// Package render draws a board snapshot to a PNG image.
package render

import (
	"fmt"
	"image/color"
	"log/slog"
	"strconv"

	"github.com/rocketscienceinc/nullboard/internal/canvas"
	"github.com/rocketscienceinc/nullboard/internal/entity"
	"github.com/rocketscienceinc/nullboard/internal/layout"
	"github.com/rocketscienceinc/nullboard/internal/typeface"
)

const (
	DefaultCellSize  = 200
	DefaultPointSize = 50.0

	// Baselines of the two labels, as a fraction of the cell height.
	nameBaseline = 0.4
	statBaseline = 0.8
)

type Options struct {
	CellSize    int
	PointSize   float64
	Calibration layout.Calibration
	Policy      layout.MissingGlyphPolicy
	Palette     Palette
}

func DefaultOptions() Options {
	return Options{
		CellSize:    DefaultCellSize,
		PointSize:   DefaultPointSize,
		Calibration: layout.DefaultCalibration(),
		Policy:      layout.PolicyPlaceholder,
		Palette:     DefaultPalette(),
	}
}

type Renderer struct {
	logger *slog.Logger
	fonts  typeface.Source

	engine    *layout.Engine
	cellSize  int
	pointSize float64
	palette   Palette
}

func New(logger *slog.Logger, fonts typeface.Source, opts Options) (*Renderer, error) {
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %d", opts.CellSize)
	}

	if opts.PointSize <= 0 {
		return nil, fmt.Errorf("point size must be positive, got %v", opts.PointSize)
	}

	engine, err := layout.NewEngine(opts.Calibration, opts.Policy)
	if err != nil {
		return nil, fmt.Errorf("could not create layout engine: %w", err)
	}

	return &Renderer{
		logger:    logger.With("component", "renderer"),
		fonts:     fonts,
		engine:    engine,
		cellSize:  opts.CellSize,
		pointSize: opts.PointSize,
		palette:   opts.Palette,
	}, nil
}

// ImageSize returns the side length of the rendered square in pixels.
func (that *Renderer) ImageSize() int {
	return entity.BoardSize * that.cellSize
}

// CellColor - occupied cells get the occupied color; empty cells follow the
// checkerboard on row+col parity, whatever their neighbours hold.
func (that *Renderer) CellColor(row, col int, cell entity.Cell) color.Color {
	switch cell.(type) {
	case entity.Occupied:
		return that.palette.OccupiedCell
	default:
		if (row+col)%2 == 0 {
			return that.palette.EvenCell
		}
		return that.palette.OddCell
	}
}

// Draw - paints the board onto a new canvas.
func (that *Renderer) Draw(board *entity.Board) (*canvas.Canvas, error) {
	font, err := that.fonts.Current()
	if err != nil {
		return nil, fmt.Errorf("could not get font: %w", err)
	}

	size := that.ImageSize()
	dst := canvas.New(size, size)

	var drawErr error
	board.ForEach(func(row, col int, cell entity.Cell) {
		if drawErr != nil {
			return
		}

		x, y := col*that.cellSize, row*that.cellSize
		dst.FillRect(x, y, that.cellSize, that.cellSize, that.CellColor(row, col, cell))

		switch cell := cell.(type) {
		case entity.Occupied:
			drawErr = that.drawSlot(dst, font, cell.Slot, row, col)
		case entity.Empty:
		}
	})

	if drawErr != nil {
		return nil, drawErr
	}

	return dst, nil
}

// Render - draws the board and writes it as PNG to path.
func (that *Renderer) Render(board *entity.Board, path string) error {
	dst, err := that.Draw(board)
	if err != nil {
		return err
	}

	if err = dst.WritePNG(path); err != nil {
		return fmt.Errorf("could not save board image: %w", err)
	}

	that.logger.Debug("board rendered", "path", path, "players", len(board.Players()))

	return nil
}

func (that *Renderer) drawSlot(dst *canvas.Canvas, font *typeface.Font, slot entity.PlayerSlot, row, col int) error {
	cell := float64(that.cellSize)
	centerX := (float64(col) + 0.5) * cell
	top := float64(row) * cell

	labels := []struct {
		text     string
		baseline float64
		color    color.Color
	}{
		{slot.DisplayName, top + nameBaseline*cell, that.palette.NameText},
		{FormatStat(slot.Stat), top + statBaseline*cell, that.palette.StatText},
	}

	for _, label := range labels {
		run, err := that.engine.Layout(font, that.pointSize, label.text, layout.Point{X: centerX, Y: label.baseline})
		if err != nil {
			return fmt.Errorf("could not lay out %q for player %s: %w", label.text, slot.PlayerID, err)
		}

		if len(run.Missing) > 0 {
			that.logger.Warn("font has no glyph for some characters",
				"player", slot.PlayerID,
				"missing", string(run.Missing),
				"policy", that.engine.Policy().String(),
			)
		}

		if err = dst.DrawGlyphs(font, that.pointSize, run.Glyphs, label.color); err != nil {
			return fmt.Errorf("could not draw label for player %s: %w", slot.PlayerID, err)
		}
	}

	return nil
}

// FormatStat renders a stat with one decimal place.
func FormatStat(stat float64) string {
	return strconv.FormatFloat(stat, 'f', 1, 64)
}
