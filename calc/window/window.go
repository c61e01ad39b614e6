// Package window sizes flat viewing windows clamped on all edges, and the
// bolts that hold them.
package window

import (
	"fmt"
	"math"
	"sort"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

// beta is Roark's coefficient for the maximum stress of a rectangular plate
// with all edges fixed under uniform pressure, by aspect ratio a/b.
var beta = []struct{ ratio, beta float64 }{
	{1.0, 0.3078},
	{1.2, 0.3834},
	{1.4, 0.4356},
	{1.6, 0.4680},
	{1.8, 0.4872},
	{2.0, 0.4974},
}

// longAspect is beta for a/b beyond the table.
const longAspect = 0.5

func stressCoefficient(aspect float64) float64 {
	if aspect >= beta[len(beta)-1].ratio {
		if aspect == beta[len(beta)-1].ratio {
			return beta[len(beta)-1].beta
		}
		return longAspect
	}
	i := sort.Search(len(beta), func(i int) bool { return beta[i].ratio >= aspect })
	if i == 0 {
		return beta[0].beta
	}
	lo, hi := beta[i-1], beta[i]
	return lo.beta + (hi.beta-lo.beta)*(aspect-lo.ratio)/(hi.ratio-lo.ratio)
}

// geometry validates the window inputs and returns the short side b and
// the stress coefficient.
func geometry(length, width, pressure, ruptureModulus quantity.Quantity) (b, coef float64, err error) {
	err = quantity.ValidateEach(
		quantity.Check{Name: "length", Value: length, Dimension: "length", NonNegative: true},
		quantity.Check{Name: "width", Value: width, Dimension: "length", NonNegative: true},
		quantity.Check{Name: "pressure", Value: pressure, Dimension: "pressure", NonNegative: true},
		quantity.Check{Name: "rupture modulus", Value: ruptureModulus, Dimension: "pressure", NonNegative: true},
	)
	if err != nil {
		return 0, 0, err
	}
	a, b := length.Base(), width.Base()
	if a < b {
		a, b = b, a
	}
	if b == 0 || pressure.Base() == 0 || ruptureModulus.Base() == 0 {
		return 0, 0, &errs.Error{Kind: errs.ErrInvalidInput, Msg: "window dimensions, pressure and rupture modulus must be positive"}
	}
	return b, stressCoefficient(a / b), nil
}

// SafetyFactor is MR / sigma with sigma = beta q b^2 / t^2.
func SafetyFactor(length, width, thickness, pressure, ruptureModulus quantity.Quantity) (float64, error) {
	b, coef, err := geometry(length, width, pressure, ruptureModulus)
	if err != nil {
		return 0, err
	}
	if err := quantity.Validate(thickness, "length", true); err != nil {
		return 0, fmt.Errorf("thickness: %w", err)
	}
	t := thickness.Base()
	return ruptureModulus.Base() * t * t / (coef * pressure.Base() * b * b), nil
}

// Thickness is the window thickness giving safetyFactor.
func Thickness(length, width quantity.Quantity, safetyFactor float64, pressure, ruptureModulus quantity.Quantity) (quantity.Quantity, error) {
	if math.IsNaN(safetyFactor) || math.IsInf(safetyFactor, 0) {
		return quantity.Quantity{}, &errs.Error{
			Kind:    errs.ErrNonNumericSafetyFactor,
			Subject: fmt.Sprint(safetyFactor),
			Msg:     "Non-numeric safety factor",
		}
	}
	if safetyFactor < 1 {
		return quantity.Quantity{}, &errs.Error{
			Kind:    errs.ErrSafetyFactorBelowOne,
			Subject: fmt.Sprint(safetyFactor),
			Msg:     "Window safety factor < 1",
		}
	}
	b, coef, err := geometry(length, width, pressure, ruptureModulus)
	if err != nil {
		return quantity.Quantity{}, err
	}
	t := b * math.Sqrt(safetyFactor*coef*pressure.Base()/ruptureModulus.Base())
	return quantity.FromBase(t, quantity.Length), nil
}
