package layout

import (
	"testing"

	"github.com/rocketscienceinc/nullboard/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMissingGlyphPolicy(t *testing.T) {
	tests := []struct {
		input string
		want  MissingGlyphPolicy
	}{
		{"placeholder", PolicyPlaceholder},
		{"", PolicyPlaceholder},
		{"Skip", PolicySkip},
		{" fail ", PolicyFail},
	}

	for _, tt := range tests {
		got, err := ParseMissingGlyphPolicy(tt.input)

		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.NotEmpty(t, got.String())
	}

	_, err := ParseMissingGlyphPolicy("crash")
	assert.ErrorIs(t, err, apperror.ErrUnknownGlyphPolicy)
}

func TestCalibration(t *testing.T) {
	t.Run("Default scale", func(t *testing.T) {
		got := DefaultCalibration().Scale(1000, 50)

		assert.InDelta(t, 1000*50/24.0/96.0*2.2, got, epsilon)
	})

	t.Run("Validate rejects non-positive factors", func(t *testing.T) {
		for _, mutate := range []func(*Calibration){
			func(c *Calibration) { c.UnitsPerEmReference = 0 },
			func(c *Calibration) { c.DPIReference = -1 },
			func(c *Calibration) { c.AdjustmentFactor = 0 },
		} {
			calibration := DefaultCalibration()
			mutate(&calibration)

			assert.ErrorIs(t, calibration.Validate(), ErrInvalidCalibration)
		}

		assert.NoError(t, DefaultCalibration().Validate())
	})
}
