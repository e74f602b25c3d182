package layout

import (
	"errors"
	"fmt"
)

const (
	DefaultUnitsPerEmReference = 24.0
	DefaultDPIReference        = 96.0
	DefaultAdjustmentFactor    = 2.2
)

var ErrInvalidCalibration = errors.New("invalid calibration")

// Calibration converts font-unit advances into pixels:
//
//	pixels = advance * pointSize / UnitsPerEmReference / DPIReference * AdjustmentFactor
//
// The defaults were tuned by eye against one font and rasterizer pair
// (SUITE ExtraBold). AdjustmentFactor corrects a systematic mismatch between
// the advance the font reports and the width the rasterizer draws; it is not
// a property of fonts in general and must be retuned per asset.
type Calibration struct {
	UnitsPerEmReference float64 `json:"units_per_em_reference"`
	DPIReference        float64 `json:"dpi_reference"`
	AdjustmentFactor    float64 `json:"adjustment_factor"`
}

func DefaultCalibration() Calibration {
	return Calibration{
		UnitsPerEmReference: DefaultUnitsPerEmReference,
		DPIReference:        DefaultDPIReference,
		AdjustmentFactor:    DefaultAdjustmentFactor,
	}
}

// Validate - every factor must be positive.
func (that Calibration) Validate() error {
	switch {
	case that.UnitsPerEmReference <= 0:
		return fmt.Errorf("%w: units per em reference %v", ErrInvalidCalibration, that.UnitsPerEmReference)
	case that.DPIReference <= 0:
		return fmt.Errorf("%w: dpi reference %v", ErrInvalidCalibration, that.DPIReference)
	case that.AdjustmentFactor <= 0:
		return fmt.Errorf("%w: adjustment factor %v", ErrInvalidCalibration, that.AdjustmentFactor)
	default:
		return nil
	}
}

// Scale returns the pixel advance for an advance given in font units.
func (that Calibration) Scale(advance, pointSize float64) float64 {
	return advance * pointSize / that.UnitsPerEmReference / that.DPIReference * that.AdjustmentFactor
}
