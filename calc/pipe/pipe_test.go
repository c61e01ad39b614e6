package pipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/lookup"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

func TestLookup(t *testing.T) {
	tables := lookup.Embedded(nil)

	dims, err := Lookup(tables, "80", "6")
	require.NoError(t, err)
	assert.InDelta(t, 6.625, dims.OuterDiameter.Value(quantity.Inch), 1e-7)
	assert.InDelta(t, 5.761, dims.InnerDiameter.Value(quantity.Inch), 1e-7)
	assert.InDelta(t, 0.432, dims.WallThickness.Value(quantity.Inch), 1e-7)

	_, err = Lookup(tables, "80", "really big")
	assert.ErrorIs(t, err, errs.ErrSizeNotFound)
	assert.Contains(t, err.Error(), "really big")

	_, err = Lookup(tables, "81", "6")
	assert.ErrorIs(t, err, errs.ErrScheduleNotFound)
}

func TestAvailableSizes(t *testing.T) {
	sizes, err := AvailableSizes(lookup.Embedded(nil), "40")
	require.NoError(t, err)
	assert.Contains(t, sizes, "36")
	assert.NotContains(t, sizes, "42")

	_, err = AvailableSizes(lookup.Embedded(nil), "how do you type with boxing gloves on?")
	assert.ErrorIs(t, err, errs.ErrScheduleNotFound)
}

func TestMaxPressure(t *testing.T) {
	tables := lookup.Embedded(nil)

	r, err := MaxPressure(tables, RatingInput{
		Material:    "316L",
		Schedule:    "80",
		Size:        "6",
		Temperature: quantity.New(300, quantity.Kelvin),
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultSafetyFactor, r.SafetyFactor)
	assert.InDelta(t, 16.7, r.Stress.Value(quantity.Ksi), 1e-9)

	want := 2 * 16700 * 0.432 / (6.625 - 0.8*0.432) / 4
	assert.InDelta(t, want, r.MaxPressure.Value(quantity.Psi), 1e-6)

	welded, err := MaxPressure(tables, RatingInput{
		Material: "316L", Schedule: "80", Size: "6", Welded: true,
		Temperature: quantity.New(300, quantity.Kelvin),
	})
	require.NoError(t, err)
	assert.True(t, welded.MaxPressure.Less(r.MaxPressure))

	_, err = MaxPressure(tables, RatingInput{
		Material: "316L", Schedule: "80", Size: "6", SafetyFactor: 0.5,
		Temperature: quantity.New(300, quantity.Kelvin),
	})
	assert.ErrorIs(t, err, errs.ErrSafetyFactorBelowOne)

	_, err = MaxPressure(tables, RatingInput{
		Material: "316L", Schedule: "80", Size: "6",
		Temperature: quantity.New(300, quantity.Bar),
	})
	assert.ErrorIs(t, err, errs.ErrDimensionMismatch)

	_, err = MaxPressure(tables, RatingInput{
		Material: "unobtainium", Schedule: "80", Size: "6",
		Temperature: quantity.New(300, quantity.Kelvin),
	})
	assert.ErrorIs(t, err, errs.ErrMaterialNotFound)
}
