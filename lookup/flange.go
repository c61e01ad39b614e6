package lookup

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

// FlangeRow is the rated pressure of every class at one temperature.
type FlangeRow struct {
	Temperature quantity.Quantity
	Pressures   []quantity.Quantity
}

// FlangeTable is the ASME B16.5 pressure-temperature rating of one material
// group. Temperatures are tabulated in degC and pressures in bar.
type FlangeTable struct {
	Group   string
	Classes []string
	Rows    []FlangeRow
}

// FlangeLimits loads the rating table of a material group. Rows come back
// sorted by temperature.
func (t *Tables) FlangeLimits(group string) (*FlangeTable, error) {
	invalid := func(cause error) error {
		return &errs.Error{
			Kind:    errs.ErrInvalidGroup,
			Subject: group,
			Msg:     group + " is not a valid group",
			Err:     cause,
		}
	}
	if strings.TrimSpace(group) == "" {
		return nil, invalid(nil)
	}
	tb, err := t.load(FlangePrefix + group)
	if errors.Is(err, errs.ErrFileNotFound) {
		return nil, invalid(err)
	}
	if err != nil {
		return nil, err
	}

	ft := &FlangeTable{Group: group}
	for i := 1; i < len(tb.header); i++ {
		ft.Classes = append(ft.Classes, cell(tb.header, i))
	}
	for _, row := range tb.rows {
		fr := FlangeRow{Temperature: quantity.New(t.number(tb.file, cell(row, 0)), quantity.Celsius)}
		for i := range ft.Classes {
			p := t.number(tb.file, cell(row, i+1))
			if p < 0 {
				return nil, negative(tb.file, "Pressure")
			}
			fr.Pressures = append(fr.Pressures, quantity.New(p, quantity.Bar))
		}
		ft.Rows = append(ft.Rows, fr)
	}
	sort.SliceStable(ft.Rows, func(i, j int) bool {
		return ft.Rows[i].Temperature.Less(ft.Rows[j].Temperature)
	})
	return ft, nil
}

// Class returns the lowest flange class rated for pressure at the first
// tabulated temperature at or above temperature.
func (ft *FlangeTable) Class(temperature, pressure quantity.Quantity) (string, error) {
	if len(ft.Rows) == 0 {
		return "", &errs.Error{Kind: errs.ErrEmptyTable, Subject: ft.Group, Msg: "group " + ft.Group + " has no ratings"}
	}
	first, last := ft.Rows[0].Temperature, ft.Rows[len(ft.Rows)-1].Temperature
	if temperature.Less(first) || last.Less(temperature) {
		return "", &errs.Error{
			Kind:    errs.ErrTemperatureOutOfRange,
			Subject: temperature.String(),
			Bound:   fmt.Sprintf("%s to %s", first, last),
			Msg: fmt.Sprintf("Temperature %s out of range (%.6g to %.6g degC)",
				temperature, first.Value(quantity.Celsius), last.Value(quantity.Celsius)),
		}
	}

	var row FlangeRow
	for _, r := range ft.Rows {
		if !r.Temperature.Less(temperature) {
			row = r
			break
		}
	}
	var highest quantity.Quantity
	for i, p := range row.Pressures {
		if highest.Less(p) {
			highest = p
		}
		if !p.Less(pressure) {
			return ft.Classes[i], nil
		}
	}
	return "", &errs.Error{
		Kind:    errs.ErrPressureOutOfRange,
		Subject: pressure.String(),
		Bound:   highest.String(),
		Msg: fmt.Sprintf("Pressure %s out of range (max %.6g bar at %.6g degC)",
			pressure, highest.Value(quantity.Bar), row.Temperature.Value(quantity.Celsius)),
	}
}
