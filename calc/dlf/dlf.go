// Package dlf computes the dynamic load factor a travelling detonation
// imposes on a tube wall. Near the critical flexural wave speed of the tube
// the wall response is amplified by resonance.
package dlf

import (
	"fmt"
	"math"

	"github.com/SoftwareDevEngResearch/BeaverDet/calc/pipe"
	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/lookup"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

// DefaultBand is the fractional half-width of the resonance band.
const DefaultBand = 0.1

// Load factors below, inside and above the resonance band.
const (
	Below  = 1.0
	Inside = 4.0
	Above  = 2.0
)

type Input struct {
	Material    string            `json:"material"`
	Schedule    string            `json:"schedule"`
	Size        string            `json:"size"`
	CJSpeed     quantity.Quantity `json:"-"`
	PlusOrMinus float64           `json:"plus_or_minus"`
}

type Result struct {
	Factor           float64           `json:"factor"`
	CriticalVelocity quantity.Quantity `json:"-"`
	BandLow          quantity.Quantity `json:"-"`
	BandHigh         quantity.Quantity `json:"-"`
	Notes            string            `json:"notes"`
}

// CriticalVelocity is the flexural wave speed of a thin-walled tube,
// v = (E^2 h^2 / (3 rho^2 R^2 (1 - nu^2)))^(1/4) with R the mean radius.
func CriticalVelocity(tables *lookup.Tables, material, schedule, size string) (quantity.Quantity, error) {
	mat, err := tables.Material(material)
	if err != nil {
		return quantity.Quantity{}, err
	}
	dims, err := pipe.Lookup(tables, schedule, size)
	if err != nil {
		return quantity.Quantity{}, err
	}

	e := mat.ElasticModulus.Base()
	rho := mat.Density.Base()
	nu := mat.Poisson
	h := dims.WallThickness.Base()
	r := (dims.OuterDiameter.Base() + dims.InnerDiameter.Base()) / 4

	v := math.Pow(e*e*h*h/(3*rho*rho*r*r*(1-nu*nu)), 0.25)
	return quantity.New(v, quantity.MeterPerSecond), nil
}

// Calculate bands the CJ speed against the critical velocity. Band edges
// count as inside. PlusOrMinus must lie strictly between 0 and 1.
func Calculate(tables *lookup.Tables, in Input) (Result, error) {
	if err := quantity.Validate(in.CJSpeed, "velocity", true); err != nil {
		return Result{}, fmt.Errorf("cj speed: %w", err)
	}
	if !(in.PlusOrMinus > 0 && in.PlusOrMinus < 1) {
		return Result{}, &errs.Error{
			Kind:     errs.ErrInvalidBandFraction,
			Subject:  fmt.Sprint(in.PlusOrMinus),
			Expected: "0 < plus_or_minus < 1",
			Msg:      "plus_or_minus factor not between 0 and 1",
		}
	}

	vc, err := CriticalVelocity(tables, in.Material, in.Schedule, in.Size)
	if err != nil {
		return Result{}, err
	}
	low := vc.Scale(1 - in.PlusOrMinus)
	high := vc.Scale(1 + in.PlusOrMinus)

	factor := Inside
	switch {
	case in.CJSpeed.Less(low):
		factor = Below
	case high.Less(in.CJSpeed):
		factor = Above
	}
	return Result{
		Factor:           factor,
		CriticalVelocity: vc,
		BandLow:          low,
		BandHigh:         high,
		Notes: fmt.Sprintf("critical velocity %.6g m/s, band %.6g to %.6g m/s",
			vc.Value(quantity.MeterPerSecond), low.Value(quantity.MeterPerSecond), high.Value(quantity.MeterPerSecond)),
	}, nil
}

// Factor returns only the load factor.
func Factor(tables *lookup.Tables, material, schedule, size string, cjSpeed quantity.Quantity, plusOrMinus float64) (float64, error) {
	res, err := Calculate(tables, Input{
		Material:    material,
		Schedule:    schedule,
		Size:        size,
		CJSpeed:     cjSpeed,
		PlusOrMinus: plusOrMinus,
	})
	return res.Factor, err
}
