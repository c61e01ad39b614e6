package thermo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

var h2o2 = Mixture{Species: map[string]float64{"H2": 2, "O2": 1}, Mechanism: "gri30.cti"}

func TestScalingDetonation(t *testing.T) {
	det, err := HydrogenOxygen.Detonation(h2o2, quantity.New(300, quantity.Kelvin), quantity.New(2, quantity.Atmosphere))
	require.NoError(t, err)

	refl, err := det.State("reflected")
	require.NoError(t, err)
	assert.InDelta(t, 92.8, refl.Pressure.Value(quantity.Atmosphere), 1e-9)

	cj, err := det.State("CJ")
	require.NoError(t, err)
	assert.InDelta(t, 2836, cj.Speed.Value(quantity.MeterPerSecond), 1e-9)

	_, err = det.State("vn")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestScalingRejectsBadInitialState(t *testing.T) {
	_, err := PropaneAir.Detonation(h2o2, quantity.New(300, quantity.Kelvin), quantity.New(1, quantity.Inch))
	assert.ErrorIs(t, err, errs.ErrDimensionMismatch)

	_, err = PropaneAir.Detonation(Mixture{}, quantity.New(300, quantity.Kelvin), quantity.New(1, quantity.Atmosphere))
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestScalingFlameViscosity(t *testing.T) {
	f, err := HydrogenOxygen.Flame(h2o2, quantity.New(300, quantity.Kelvin), quantity.New(2, quantity.Atmosphere))
	require.NoError(t, err)
	assert.InDelta(t, 1.25e-5, f.KinematicViscosity.Base(), 1e-12)
	assert.InDelta(t, 9.6, f.ExpansionRatio, 1e-12)
}

func TestMixtureString(t *testing.T) {
	assert.Equal(t, "H2:2 O2:1", h2o2.String())
}

func TestPreset(t *testing.T) {
	s, err := Preset(" Propane_Air ")
	require.NoError(t, err)
	assert.Equal(t, PropaneAir.CJPressureRatio, s.CJPressureRatio)

	_, err = Preset("methane_air")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
	assert.Equal(t, []string{"hydrogen_oxygen", "propane_air"}, Presets())
}
