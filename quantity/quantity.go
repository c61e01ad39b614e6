// Package quantity provides a dimensioned value type for design inputs and
// the validator that gates every public calculation.
//
// A Quantity keeps its magnitude in SI base units together with its
// dimension, so no shared unit registry is needed to compare or convert
// values. Temperatures are held in kelvin.
package quantity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
)

type Quantity struct {
	base float64
	dim  Dimension
	// unit the value was created in, used only for display
	unit *Unit
}

// New returns magnitude expressed in u.
func New(magnitude float64, u Unit) Quantity {
	return Quantity{base: u.toBase(magnitude), dim: u.dim, unit: &u}
}

// FromBase builds a quantity from an SI base magnitude.
func FromBase(base float64, d Dimension) Quantity {
	return Quantity{base: base, dim: d}
}

// Parse reads "<magnitude> <unit>", e.g. "6.3 inch" or "1500 m/s".
func Parse(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	mag, sym, _ := strings.Cut(s, " ")
	sym = strings.TrimSpace(sym)
	u, ok := LookupUnit(sym)
	if !ok {
		return Quantity{}, &errs.Error{Kind: errs.ErrNotAQuantity, Subject: s, Msg: fmt.Sprintf("unknown unit %q", sym)}
	}
	v, err := strconv.ParseFloat(mag, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Quantity{}, &errs.Error{Kind: errs.ErrNonNumericMagnitude, Subject: s, Msg: "Non-numeric quantity " + strconv.Quote(s)}
	}
	return New(v, u), nil
}

// Base returns the magnitude in SI base units.
func (q Quantity) Base() float64 { return q.base }

func (q Quantity) Dimension() Dimension { return q.dim }

// In converts q to u, failing when the dimensions differ.
func (q Quantity) In(u Unit) (float64, error) {
	if q.dim != u.dim {
		return 0, mismatch(q.dim, u.dim)
	}
	return u.fromBase(q.base), nil
}

// Value converts q to u without checking dimensions. Callers use it after
// Validate has established the dimension.
func (q Quantity) Value(u Unit) float64 { return u.fromBase(q.base) }

func (q Quantity) Add(o Quantity) (Quantity, error) {
	if q.dim != o.dim {
		return Quantity{}, mismatch(o.dim, q.dim)
	}
	return Quantity{base: q.base + o.base, dim: q.dim, unit: q.unit}, nil
}

func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if q.dim != o.dim {
		return Quantity{}, mismatch(o.dim, q.dim)
	}
	return Quantity{base: q.base - o.base, dim: q.dim, unit: q.unit}, nil
}

func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{base: q.base * o.base, dim: q.dim.mul(o.dim)}
}

func (q Quantity) Div(o Quantity) Quantity {
	return Quantity{base: q.base / o.base, dim: q.dim.div(o.dim)}
}

// Scale multiplies the magnitude by a dimensionless factor.
func (q Quantity) Scale(f float64) Quantity {
	return Quantity{base: q.base * f, dim: q.dim, unit: q.unit}
}

// Sqrt requires every dimension exponent to be even.
func (q Quantity) Sqrt() (Quantity, error) {
	if !q.dim.even() {
		return Quantity{}, &errs.Error{Kind: errs.ErrDimensionMismatch, Subject: q.dim.String(), Msg: "square root of " + q.dim.String()}
	}
	return Quantity{base: math.Sqrt(q.base), dim: q.dim.half()}, nil
}

// Less compares base magnitudes; dimensions are assumed equal.
func (q Quantity) Less(o Quantity) bool { return q.base < o.base }

// Finite reports whether the magnitude is a usable number.
func (q Quantity) Finite() bool {
	return !math.IsNaN(q.base) && !math.IsInf(q.base, 0)
}

func (q Quantity) String() string {
	if q.unit != nil {
		return strconv.FormatFloat(q.unit.fromBase(q.base), 'g', -1, 64) + " " + q.unit.Symbol
	}
	return strconv.FormatFloat(q.base, 'g', -1, 64) + " " + baseSymbol(q.dim)
}

func baseSymbol(d Dimension) string {
	var parts []string
	add := func(sym string, exp int) {
		switch {
		case exp == 0:
		case exp == 1:
			parts = append(parts, sym)
		default:
			parts = append(parts, fmt.Sprintf("%s**%d", sym, exp))
		}
	}
	add("kg", d.Mass)
	add("m", d.Length)
	add("s", d.Time)
	add("K", d.Temperature)
	return strings.Join(parts, "*")
}
