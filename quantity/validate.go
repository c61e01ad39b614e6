package quantity

import (
	"fmt"
	"math"
	"strings"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
)

// Validate checks that v is a finite Quantity of the named dimension and,
// when requireNonNegative is set, that its base-unit magnitude is not
// negative. Supported names are length, area, volume, temperature, pressure
// and velocity.
func Validate(v any, dimension string, requireNonNegative bool) error {
	want, ok := supported[dimension]
	if !ok {
		return &errs.Error{
			Kind:    errs.ErrUnsupportedDimension,
			Subject: dimension,
			Msg:     dimension + " not a supported dimension type",
		}
	}

	var q Quantity
	switch t := v.(type) {
	case Quantity:
		q = t
	case *Quantity:
		if t == nil {
			return &errs.Error{Kind: errs.ErrNotAQuantity, Msg: "Non-quantity value <nil>"}
		}
		q = *t
	default:
		return &errs.Error{
			Kind:    errs.ErrNotAQuantity,
			Subject: fmt.Sprintf("%T", v),
			Msg:     fmt.Sprintf("Non-quantity value of type %T", v),
		}
	}

	if math.IsNaN(q.base) || math.IsInf(q.base, 0) {
		return &errs.Error{Kind: errs.ErrNonNumericMagnitude, Subject: dimension, Msg: "Non-numeric quantity"}
	}

	if requireNonNegative && q.base < 0 {
		return &errs.Error{Kind: errs.ErrNegativeMagnitude, Subject: q.String(), Msg: "Input value < 0"}
	}

	if q.dim != want {
		return mismatch(q.dim, want)
	}
	return nil
}

func mismatch(actual, expected Dimension) *errs.Error {
	a, e := actual.String(), expected.String()
	return &errs.Error{
		Kind:     errs.ErrDimensionMismatch,
		Expected: e,
		Actual:   a,
		Msg:      strings.Trim(a, "[]") + " is not " + strings.Trim(e, "[]"),
	}
}

// Check names one argument for ValidateEach.
type Check struct {
	Name        string
	Value       any
	Dimension   string
	NonNegative bool
}

// ValidateEach runs Validate over checks in order and reports the first
// failure prefixed with the argument name.
func ValidateEach(checks ...Check) error {
	for _, c := range checks {
		if err := Validate(c.Value, c.Dimension, c.NonNegative); err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
	}
	return nil
}
