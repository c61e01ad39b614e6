// Package spiral relates the wire diameter of a Shchelkin spiral to the
// blockage ratio it produces in a tube.
package spiral

import (
	"fmt"
	"math"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

// Diameter returns the spiral diameter giving blockageRatio in a tube of
// inner diameter tube: d = D/2 (1 - sqrt(1 - BR)).
func Diameter(tube quantity.Quantity, blockageRatio float64) (quantity.Quantity, error) {
	if err := quantity.Validate(tube, "length", true); err != nil {
		return quantity.Quantity{}, fmt.Errorf("tube diameter: %w", err)
	}
	if math.IsNaN(blockageRatio) || math.IsInf(blockageRatio, 0) {
		return quantity.Quantity{}, &errs.Error{
			Kind:    errs.ErrNonNumericRatio,
			Subject: fmt.Sprint(blockageRatio),
			Msg:     "blockage ratio must be numeric",
		}
	}
	if blockageRatio <= 0 || blockageRatio >= 1 {
		return quantity.Quantity{}, &errs.Error{
			Kind:     errs.ErrRatioOutOfRange,
			Subject:  fmt.Sprint(blockageRatio),
			Expected: "0 < blockage ratio < 1",
			Msg:      "blockage ratio outside of 0 < BR < 1",
		}
	}
	return tube.Scale(0.5 * (1 - math.Sqrt(1-blockageRatio))), nil
}

// BlockageRatio is the fraction of the tube cross section a spiral of
// diameter spiral occludes: 1 - (1 - 2d/D)^2.
func BlockageRatio(tube, spiral quantity.Quantity) (float64, error) {
	if err := quantity.ValidateEach(
		quantity.Check{Name: "tube diameter", Value: tube, Dimension: "length", NonNegative: true},
		quantity.Check{Name: "spiral diameter", Value: spiral, Dimension: "length", NonNegative: true},
	); err != nil {
		return 0, err
	}
	if !spiral.Less(tube) {
		return 0, &errs.Error{
			Kind:    errs.ErrSpiralNotSmallerThanTube,
			Subject: spiral.String(),
			Bound:   tube.String(),
			Msg:     "Spiral diameter must be less than tube diameter.",
		}
	}
	inner := 1 - 2*spiral.Base()/tube.Base()
	return 1 - inner*inner, nil
}
