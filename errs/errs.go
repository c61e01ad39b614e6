// Package errs defines the closed set of failures reported by the design
// library. Every failure is an *Error whose Kind is one of the sentinel
// values below, so callers branch with errors.Is and read the structured
// fields with errors.As instead of matching message text.
package errs

import (
	"errors"
	"strings"
)

// Category groups kinds by how a caller should react to them.
type Category int

const (
	// Validation failures come from bad caller input and are never retried.
	Validation Category = iota + 1
	// Lookup failures name an identifier or range the reference tables lack.
	Lookup
	// Integrity failures mean the reference data itself is unusable.
	Integrity
	// Convergence failures come from iterative searches that ran out of budget.
	Convergence
)

func (c Category) String() string {
	switch c {
	case Validation:
		return "validation"
	case Lookup:
		return "lookup"
	case Integrity:
		return "integrity"
	case Convergence:
		return "convergence"
	default:
		return "unknown"
	}
}

// Kind is a sentinel error identifying one failure mode.
type Kind struct {
	name     string
	category Category
}

func newKind(name string, c Category) *Kind {
	return &Kind{name: name, category: c}
}

func (k *Kind) Error() string { return k.name }

// Category reports the group the kind belongs to.
func (k *Kind) Category() Category { return k.category }

// Validation kinds.
var (
	ErrUnsupportedDimension     = newKind("unsupported dimension", Validation)
	ErrNotAQuantity             = newKind("not a quantity", Validation)
	ErrNonNumericMagnitude      = newKind("non-numeric magnitude", Validation)
	ErrNegativeMagnitude        = newKind("negative magnitude", Validation)
	ErrDimensionMismatch        = newKind("dimension mismatch", Validation)
	ErrNonStringMaterial        = newKind("non-string material", Validation)
	ErrInvalidBandFraction      = newKind("invalid band fraction", Validation)
	ErrNonNumericRatio          = newKind("non-numeric ratio", Validation)
	ErrRatioOutOfRange          = newKind("ratio out of range", Validation)
	ErrSpiralNotSmallerThanTube = newKind("spiral not smaller than tube", Validation)
	ErrSafetyFactorBelowOne     = newKind("safety factor below one", Validation)
	ErrNonNumericSafetyFactor   = newKind("non-numeric safety factor", Validation)
	ErrBlockageRatioOutOfRange  = newKind("blockage ratio out of range", Validation)
	ErrInvalidInput             = newKind("invalid input", Validation)
)

// Lookup kinds.
var (
	ErrTemperatureOutOfRange = newKind("temperature out of range", Lookup)
	ErrPressureOutOfRange    = newKind("pressure out of range", Lookup)
	ErrMaterialNotFound      = newKind("material not found", Lookup)
	ErrSizeNotFound          = newKind("size not found", Lookup)
	ErrScheduleNotFound      = newKind("schedule not found", Lookup)
	ErrInvalidGroup          = newKind("invalid group", Lookup)
	ErrThreadNotFound        = newKind("thread not found", Lookup)
)

// Integrity kinds.
var (
	ErrFileNotFound                 = newKind("file not found", Integrity)
	ErrEmptyTable                   = newKind("empty table", Integrity)
	ErrNegativeTabulatedValue       = newKind("negative tabulated value", Integrity)
	ErrMissingMaterialGroupFile     = newKind("missing material group file", Integrity)
	ErrMaterialNotFoundInStressFile = newKind("material not found in stress file", Integrity)
	ErrNoReferenceFilesFound        = newKind("no reference files found", Integrity)
	ErrMissingColumn                = newKind("missing column", Integrity)
)

// ErrConvergenceFailure is returned when an iterative search exhausts its budget.
var ErrConvergenceFailure = newKind("convergence failure", Convergence)

// Error carries a Kind plus whatever context the failing call knows about.
type Error struct {
	Kind *Kind
	// Subject is the offending identifier: a material, size, file or dimension name.
	Subject string
	// Expected and Actual describe a mismatch, Bound a violated limit.
	Expected string
	Actual   string
	Bound    string
	// Msg overrides the generated message when set.
	Msg string
	// Err is an underlying cause, if any.
	Err error
}

// New builds an Error with an explicit message.
func New(kind *Kind, subject, msg string) *Error {
	return &Error{Kind: kind, Subject: subject, Msg: msg}
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Subject != "" {
		b.WriteString(": ")
		b.WriteString(e.Subject)
	}
	if e.Expected != "" || e.Actual != "" {
		b.WriteString(" (expected ")
		b.WriteString(e.Expected)
		b.WriteString(", got ")
		b.WriteString(e.Actual)
		b.WriteString(")")
	}
	if e.Bound != "" {
		b.WriteString(" (limit ")
		b.WriteString(e.Bound)
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the kind of err, or nil when err is not an *Error.
func KindOf(err error) *Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}

// IsCategory reports whether err carries a kind from category c.
func IsCategory(err error, c Category) bool {
	k := KindOf(err)
	return k != nil && k.category == c
}
