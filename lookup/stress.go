package lookup

import (
	"fmt"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

// StressPoint is one allowable stress at a temperature.
type StressPoint struct {
	Temperature quantity.Quantity
	Stress      quantity.Quantity
}

// StressTable is the ASME B31.3 allowable stress curve of one material.
type StressTable struct {
	Material string
	Welded   bool
	Points   []StressPoint
}

// StressFile names the stress table of the welded or seamless variant.
func StressFile(welded bool) string {
	if welded {
		return StressPrefix + "welded"
	}
	return StressPrefix + "seamless"
}

// StressLimits loads the allowable stress curve for material. Temperatures
// are tabulated in degF and stresses in ksi.
func (t *Tables) StressLimits(material string, welded bool) (*StressTable, error) {
	tb, err := t.load(StressFile(welded))
	if err != nil {
		return nil, err
	}
	col := -1
	for i := 1; i < len(tb.header); i++ {
		if cell(tb.header, i) == material {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, &errs.Error{
			Kind:    errs.ErrMaterialNotFound,
			Subject: material,
			Msg:     fmt.Sprintf("material %s not found in %s", material, tb.file),
		}
	}

	st := &StressTable{Material: material, Welded: welded}
	for _, row := range tb.rows {
		s := t.number(tb.file, cell(row, col))
		if s < 0 {
			return nil, negative(tb.file, "Stress")
		}
		st.Points = append(st.Points, StressPoint{
			Temperature: quantity.New(t.number(tb.file, cell(row, 0)), quantity.Fahrenheit),
			Stress:      quantity.New(s, quantity.Ksi),
		})
	}
	return st, nil
}

// At returns the stress of the first tabulated temperature at or above
// temperature.
func (st *StressTable) At(temperature quantity.Quantity) (quantity.Quantity, error) {
	for _, p := range st.Points {
		if !p.Temperature.Less(temperature) {
			return p.Stress, nil
		}
	}
	bound := ""
	if n := len(st.Points); n > 0 {
		bound = st.Points[n-1].Temperature.String()
	}
	return quantity.Quantity{}, &errs.Error{
		Kind:    errs.ErrTemperatureOutOfRange,
		Subject: temperature.String(),
		Bound:   bound,
		Msg:     fmt.Sprintf("Temperature %s above stress table limit %s", temperature, bound),
	}
}
