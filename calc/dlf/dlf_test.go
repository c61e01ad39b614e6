package dlf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/lookup"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

func TestCriticalVelocity(t *testing.T) {
	vc, err := CriticalVelocity(lookup.Embedded(nil), "316L", "80", "6")
	require.NoError(t, err)
	assert.InDelta(t, 1457.44, vc.Value(quantity.MeterPerSecond), 0.01)
}

func TestFactorBands(t *testing.T) {
	tables := lookup.Embedded(nil)
	tests := []struct {
		speed float64
		want  float64
	}{
		{1200, Below},
		{1311, Below},
		{1312, Inside},
		{1457, Inside},
		{1603, Inside},
		{1604, Above},
		{3000, Above},
	}
	for _, tt := range tests {
		got, err := Factor(tables, "316L", "80", "6", quantity.New(tt.speed, quantity.MeterPerSecond), 0.1)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v m/s", tt.speed)
	}
}

func TestFactorErrors(t *testing.T) {
	tables := lookup.Embedded(nil)
	speed := quantity.New(1500, quantity.MeterPerSecond)

	for _, pm := range []float64{0, -0.1, 1, 2, math.NaN()} {
		_, err := Factor(tables, "316L", "80", "6", speed, pm)
		assert.ErrorIs(t, err, errs.ErrInvalidBandFraction, "%v", pm)
	}

	_, err := Factor(tables, "unobtainium", "80", "6", speed, 0.1)
	assert.ErrorIs(t, err, errs.ErrMaterialNotFound)

	_, err = Factor(tables, "316L", "80", "6", quantity.New(1500, quantity.Psi), 0.1)
	assert.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestCalculateInFeetPerSecond(t *testing.T) {
	res, err := Calculate(lookup.Embedded(nil), Input{
		Material: "316L", Schedule: "80", Size: "6",
		CJSpeed:     quantity.New(1320, quantity.FootPerSecond),
		PlusOrMinus: DefaultBand,
	})
	require.NoError(t, err)
	assert.Equal(t, Below, res.Factor)
	assert.InDelta(t, 0.9, res.BandLow.Base()/res.CriticalVelocity.Base(), 1e-12)
}
