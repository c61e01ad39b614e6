package pressure

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoftwareDevEngResearch/BeaverDet/calc/pipe"
	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/lookup"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
	"github.com/SoftwareDevEngResearch/BeaverDet/thermo"
)

var h2o2 = thermo.Mixture{Species: map[string]float64{"H2": 2, "O2": 1}, Mechanism: "gri30.cti"}

func baseInput() Input {
	return Input{
		Material:           "316L",
		Schedule:           "80",
		Size:               "6",
		Mixture:            h2o2,
		InitialTemperature: quantity.New(300, quantity.Kelvin),
	}
}

func ptr(q quantity.Quantity) *quantity.Quantity { return &q }

// countingSolver wraps a solver and counts calls.
type countingSolver struct {
	thermo.Solver
	calls int
}

func (c *countingSolver) Detonation(mix thermo.Mixture, t0, p0 quantity.Quantity) (thermo.Detonation, error) {
	c.calls++
	return c.Solver.Detonation(mix, t0, p0)
}

type brokenSolver struct{}

func (brokenSolver) Detonation(thermo.Mixture, quantity.Quantity, quantity.Quantity) (thermo.Detonation, error) {
	return thermo.Detonation{}, errors.New("equilibrium failed")
}

func TestConverges(t *testing.T) {
	tables := lookup.Embedded(nil)
	solver := &countingSolver{Solver: thermo.HydrogenOxygen}

	res, err := MaxInitialPressure(tables, solver, baseInput())
	require.NoError(t, err)

	rating, err := pipe.MaxPressure(tables, pipe.RatingInput{
		Material: "316L", Schedule: "80", Size: "6",
		Temperature: quantity.New(300, quantity.Kelvin),
	})
	require.NoError(t, err)

	// CJ speed is well above the resonance band
	assert.Equal(t, 2.0, res.DLF)
	assert.InDelta(t, rating.MaxPressure.Base(), res.TubeLimit.Base(), 1e-6)

	ratio := res.ReflectedPressure.Base() * res.DLF / res.TubeLimit.Base()
	assert.InDelta(t, 1, ratio, DefaultErrorTol)

	want := rating.MaxPressure.Base() / (2 * thermo.HydrogenOxygen.ReflectedPressureRatio)
	assert.InEpsilon(t, want, res.InitialPressure.Base(), 2*DefaultErrorTol)
	assert.Equal(t, solver.calls, res.Iterations)
	assert.False(t, res.Capped)
}

func TestCapReturnedWhenAlreadySafe(t *testing.T) {
	in := baseInput()
	in.InitialPressureCap = ptr(quantity.New(3, quantity.Psi))

	res, err := MaxInitialPressure(lookup.Embedded(nil), thermo.HydrogenOxygen, in)
	require.NoError(t, err)
	assert.True(t, res.Capped)
	assert.Equal(t, 1, res.Iterations)
	assert.InDelta(t, 3, res.InitialPressure.Value(quantity.Psi), 1e-12)
	assert.Equal(t, in.InitialPressureCap.Base(), res.InitialPressure.Base())
}

func TestCapAboveTargetIsSearchedBelow(t *testing.T) {
	in := baseInput()
	in.InitialPressureCap = ptr(quantity.New(1200, quantity.Psi))

	capped, err := MaxInitialPressure(lookup.Embedded(nil), thermo.HydrogenOxygen, in)
	require.NoError(t, err)
	assert.False(t, capped.Capped)
	assert.True(t, capped.InitialPressure.Less(*in.InitialPressureCap))

	free, err := MaxInitialPressure(lookup.Embedded(nil), thermo.HydrogenOxygen, baseInput())
	require.NoError(t, err)
	assert.InEpsilon(t, free.InitialPressure.Base(), capped.InitialPressure.Base(), 4*DefaultErrorTol)
}

func TestTubeLimitOverrideSearchesUpward(t *testing.T) {
	in := baseInput()
	in.TubeLimit = ptr(quantity.New(200, quantity.Atmosphere))
	in.ErrorTol = 1e-6

	res, err := MaxInitialPressure(lookup.Embedded(nil), thermo.HydrogenOxygen, in)
	require.NoError(t, err)
	want := 200 / (2 * thermo.HydrogenOxygen.ReflectedPressureRatio)
	assert.InEpsilon(t, want, res.InitialPressure.Value(quantity.Atmosphere), 2e-6)
	assert.Greater(t, res.InitialPressure.Value(quantity.Atmosphere), 1.0)
}

func TestConvergenceFailure(t *testing.T) {
	in := baseInput()
	in.MaxIterations = 2

	solver := &countingSolver{Solver: thermo.HydrogenOxygen}
	_, err := MaxInitialPressure(lookup.Embedded(nil), solver, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConvergenceFailure)
	assert.True(t, errs.IsCategory(err, errs.Convergence))
	assert.Equal(t, 2, solver.calls)
}

func TestErrors(t *testing.T) {
	tables := lookup.Embedded(nil)

	_, err := MaxInitialPressure(tables, brokenSolver{}, baseInput())
	assert.ErrorContains(t, err, "equilibrium failed")

	in := baseInput()
	in.InitialTemperature = quantity.New(300, quantity.Psi)
	_, err = MaxInitialPressure(tables, thermo.HydrogenOxygen, in)
	assert.ErrorIs(t, err, errs.ErrDimensionMismatch)

	in = baseInput()
	in.InitialPressureCap = ptr(quantity.New(math.Inf(1), quantity.Psi))
	_, err = MaxInitialPressure(tables, thermo.HydrogenOxygen, in)
	assert.ErrorIs(t, err, errs.ErrNonNumericMagnitude)

	in = baseInput()
	in.Size = "really big"
	_, err = MaxInitialPressure(tables, thermo.HydrogenOxygen, in)
	assert.ErrorIs(t, err, errs.ErrSizeNotFound)

	in = baseInput()
	in.PlusOrMinus = 1.5
	_, err = MaxInitialPressure(tables, thermo.HydrogenOxygen, in)
	assert.ErrorIs(t, err, errs.ErrInvalidBandFraction)
}
