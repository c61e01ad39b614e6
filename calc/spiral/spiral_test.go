package spiral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

func TestDiameter(t *testing.T) {
	d, err := Diameter(quantity.New(5.76, quantity.Inch), 0.44)
	require.NoError(t, err)
	assert.InDelta(t, 5.76/2*(1-math.Sqrt(1-0.44)), d.Value(quantity.Inch), 1e-12)
	assert.Equal(t, quantity.Length, d.Dimension())
}

func TestDiameterRejectsBadRatio(t *testing.T) {
	tube := quantity.New(5.76, quantity.Inch)
	for _, br := range []float64{0, -35.2, 1, 1.2} {
		_, err := Diameter(tube, br)
		assert.ErrorIs(t, err, errs.ErrRatioOutOfRange, "%v", br)
	}
	for _, br := range []float64{math.NaN(), math.Inf(1)} {
		_, err := Diameter(tube, br)
		assert.ErrorIs(t, err, errs.ErrNonNumericRatio, "%v", br)
	}

	_, err := Diameter(quantity.New(5.76, quantity.Kelvin), 0.44)
	assert.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestBlockageRatio(t *testing.T) {
	br, err := BlockageRatio(quantity.New(5.76, quantity.Inch), quantity.New(0.75, quantity.Inch))
	require.NoError(t, err)
	inner := 1 - 2*0.75/5.76
	assert.InDelta(t, 1-inner*inner, br, 1e-12)

	_, err = BlockageRatio(quantity.New(1, quantity.Inch), quantity.New(1, quantity.Inch))
	assert.ErrorIs(t, err, errs.ErrSpiralNotSmallerThanTube)

	_, err = BlockageRatio(quantity.New(1, quantity.Inch), quantity.New(30, quantity.Millimeter))
	assert.ErrorIs(t, err, errs.ErrSpiralNotSmallerThanTube)

	_, err = BlockageRatio(quantity.New(1, quantity.Inch), quantity.New(-0.1, quantity.Inch))
	assert.ErrorIs(t, err, errs.ErrNegativeMagnitude)
}

func TestRoundTrip(t *testing.T) {
	tube := quantity.New(146.3, quantity.Millimeter)
	for i := 1; i < 20; i++ {
		br := float64(i) / 20
		d, err := Diameter(tube, br)
		require.NoError(t, err)
		got, err := BlockageRatio(tube, d)
		require.NoError(t, err)
		assert.InDelta(t, br, got, 1e-9, "br=%v", br)
	}
}
