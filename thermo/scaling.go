package thermo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

// Scaling is a reference-state model. Wave pressures are fixed multiples of
// the initial pressure, temperatures and speeds are taken as constant, and
// kinematic viscosity varies inversely with pressure. It ignores the
// mixture beyond validating it.
type Scaling struct {
	CJPressureRatio        float64
	ReflectedPressureRatio float64
	CJTemperature          quantity.Quantity
	ReflectedTemperature   quantity.Quantity
	CJSpeed                quantity.Quantity

	LaminarSpeed       quantity.Quantity
	KinematicViscosity quantity.Quantity
	ReferencePressure  quantity.Quantity
	ProductSoundSpeed  quantity.Quantity
	ExpansionRatio     float64
}

// HydrogenOxygen is stoichiometric H2-O2 near 300 K.
var HydrogenOxygen = Scaling{
	CJPressureRatio:        18.8,
	ReflectedPressureRatio: 46.4,
	CJTemperature:          quantity.New(3680, quantity.Kelvin),
	ReflectedTemperature:   quantity.New(4050, quantity.Kelvin),
	CJSpeed:                quantity.New(2836, quantity.MeterPerSecond),

	LaminarSpeed:       quantity.New(10.1, quantity.MeterPerSecond),
	KinematicViscosity: quantity.New(2.5e-5, quantity.SquareMeterPerSecond),
	ReferencePressure:  quantity.New(1, quantity.Atmosphere),
	ProductSoundSpeed:  quantity.New(1450, quantity.MeterPerSecond),
	ExpansionRatio:     9.6,
}

// PropaneAir is stoichiometric C3H8-air near 300 K.
var PropaneAir = Scaling{
	CJPressureRatio:        18.3,
	ReflectedPressureRatio: 44.9,
	CJTemperature:          quantity.New(2820, quantity.Kelvin),
	ReflectedTemperature:   quantity.New(3230, quantity.Kelvin),
	CJSpeed:                quantity.New(1801, quantity.MeterPerSecond),

	LaminarSpeed:       quantity.New(0.40, quantity.MeterPerSecond),
	KinematicViscosity: quantity.New(1.6e-5, quantity.SquareMeterPerSecond),
	ReferencePressure:  quantity.New(1, quantity.Atmosphere),
	ProductSoundSpeed:  quantity.New(920, quantity.MeterPerSecond),
	ExpansionRatio:     7.9,
}

var presets = map[string]Scaling{
	"hydrogen_oxygen": HydrogenOxygen,
	"propane_air":     PropaneAir,
}

// Presets lists the names accepted by Preset.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Preset returns the scaling model registered under name, e.g.
// "propane_air".
func Preset(name string) (Scaling, error) {
	s, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Scaling{}, &errs.Error{
			Kind:     errs.ErrInvalidInput,
			Subject:  "thermo preset",
			Actual:   name,
			Expected: strings.Join(Presets(), ", "),
			Msg:      fmt.Sprintf("unknown thermo preset %q", name),
		}
	}
	return s, nil
}

func checkInitial(mix Mixture, temperature, pressure quantity.Quantity) error {
	if err := quantity.ValidateEach(
		quantity.Check{Name: "initial temperature", Value: temperature, Dimension: "temperature", NonNegative: true},
		quantity.Check{Name: "initial pressure", Value: pressure, Dimension: "pressure", NonNegative: true},
	); err != nil {
		return err
	}
	return mix.Validate()
}

func (s Scaling) Detonation(mix Mixture, temperature, pressure quantity.Quantity) (Detonation, error) {
	if err := checkInitial(mix, temperature, pressure); err != nil {
		return Detonation{}, err
	}
	return Detonation{
		CJ: State{
			Pressure:    pressure.Scale(s.CJPressureRatio),
			Temperature: s.CJTemperature,
			Speed:       s.CJSpeed,
		},
		Reflected: State{
			Pressure:    pressure.Scale(s.ReflectedPressureRatio),
			Temperature: s.ReflectedTemperature,
			Speed:       quantity.New(0, quantity.MeterPerSecond),
		},
	}, nil
}

func (s Scaling) Flame(mix Mixture, temperature, pressure quantity.Quantity) (Flame, error) {
	if err := checkInitial(mix, temperature, pressure); err != nil {
		return Flame{}, err
	}
	nu := s.KinematicViscosity
	if pressure.Base() > 0 {
		nu = nu.Scale(s.ReferencePressure.Base() / pressure.Base())
	}
	return Flame{
		LaminarSpeed:       s.LaminarSpeed,
		KinematicViscosity: nu,
		ProductSoundSpeed:  s.ProductSoundSpeed,
		ExpansionRatio:     s.ExpansionRatio,
	}, nil
}
