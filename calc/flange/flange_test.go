package flange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/lookup"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

func TestClass(t *testing.T) {
	tables := lookup.Embedded(nil)

	tests := []struct {
		name     string
		temp     quantity.Quantity
		pressure quantity.Quantity
		material string
		want     string
		wantKind *errs.Kind
	}{
		{name: "316L at 350 degC and 125 bar", temp: quantity.New(350, quantity.Celsius), pressure: quantity.New(125, quantity.Bar), material: "316L", want: "1500"},
		{name: "just under class 900", temp: quantity.New(350, quantity.Celsius), pressure: quantity.New(75, quantity.Bar), material: "316L", want: "900"},
		{name: "304 in group 2.1", temp: quantity.New(20, quantity.Celsius), pressure: quantity.New(10, quantity.Bar), material: "304", want: "150"},
		{name: "unknown material", temp: quantity.New(20, quantity.Celsius), pressure: quantity.New(10, quantity.Bar), material: "unobtainium", wantKind: errs.ErrMaterialNotFound},
		{name: "too hot", temp: quantity.New(1000, quantity.Celsius), pressure: quantity.New(10, quantity.Bar), material: "316L", wantKind: errs.ErrTemperatureOutOfRange},
		{name: "too much pressure", temp: quantity.New(350, quantity.Celsius), pressure: quantity.New(350, quantity.Bar), material: "316L", wantKind: errs.ErrPressureOutOfRange},
		{name: "pressure in wrong units", temp: quantity.New(350, quantity.Celsius), pressure: quantity.New(350, quantity.Inch), material: "316L", wantKind: errs.ErrDimensionMismatch},
		{name: "negative pressure", temp: quantity.New(350, quantity.Celsius), pressure: quantity.New(-1, quantity.Bar), material: "316L", wantKind: errs.ErrNegativeMagnitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Class(tables, tt.temp, tt.pressure, tt.material)
			if tt.wantKind != nil {
				assert.ErrorIs(t, err, tt.wantKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateReportsGroup(t *testing.T) {
	res, err := Calculate(lookup.Embedded(nil), Input{
		Temperature: quantity.New(660, quantity.Fahrenheit),
		Pressure:    quantity.New(1813, quantity.Psi),
		Material:    "316L",
	})
	require.NoError(t, err)
	assert.Equal(t, "2.3", res.Group)
	assert.Equal(t, "1500", res.Class)
	assert.NotEmpty(t, res.Notes)
}
