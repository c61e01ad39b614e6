package errs

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"kind only", &Error{Kind: ErrEmptyTable}, "empty table"},
		{"subject", &Error{Kind: ErrMaterialNotFound, Subject: "316L"}, "material not found: 316L"},
		{
			"mismatch",
			&Error{Kind: ErrDimensionMismatch, Subject: "length", Expected: "[length]", Actual: "[pressure]"},
			"dimension mismatch: length (expected [length], got [pressure])",
		},
		{
			"bound",
			&Error{Kind: ErrTemperatureOutOfRange, Subject: "900 degC", Bound: "816 degC"},
			"temperature out of range: 900 degC (limit 816 degC)",
		},
		{
			"cause",
			&Error{Kind: ErrFileNotFound, Subject: "pipe_schedules", Err: fs.ErrNotExist},
			"file not found: pipe_schedules: file does not exist",
		},
		{"explicit message", New(ErrSizeNotFound, "7", "size 7 not found"), "size 7 not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	bare := &Error{Kind: ErrEmptyTable}
	assert.Equal(t, []error{ErrEmptyTable}, bare.Unwrap())
	assert.ErrorIs(t, bare, ErrEmptyTable)
	assert.NotErrorIs(t, bare, fs.ErrNotExist)

	wrapped := fmt.Errorf("load: %w", &Error{Kind: ErrFileNotFound, Err: fs.ErrNotExist})
	assert.ErrorIs(t, wrapped, ErrFileNotFound)
	assert.ErrorIs(t, wrapped, fs.ErrNotExist)
	assert.NotErrorIs(t, wrapped, ErrEmptyTable)
}

func TestKindAndCategory(t *testing.T) {
	err := fmt.Errorf("search: %w", &Error{Kind: ErrConvergenceFailure})
	assert.Same(t, ErrConvergenceFailure, KindOf(err))
	assert.True(t, IsCategory(err, Convergence))
	assert.False(t, IsCategory(err, Validation))

	plain := errors.New("plain")
	assert.Nil(t, KindOf(plain))
	assert.False(t, IsCategory(plain, Validation))

	assert.Equal(t, Integrity, ErrMissingColumn.Category())
	assert.Equal(t, "lookup", Lookup.String())
	assert.Equal(t, "unknown", Category(0).String())
}
