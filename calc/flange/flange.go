package flange

import (
	"fmt"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/lookup"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

type Input struct {
	Temperature quantity.Quantity `json:"-"`
	Pressure    quantity.Quantity `json:"-"`
	Material    string            `json:"material"`
}

type Result struct {
	Class string `json:"class"`
	Group string `json:"group"`
	Notes string `json:"notes"`
}

// Calculate finds the minimum ASME B16.5 flange class that holds pressure at
// temperature for the material's group.
func Calculate(tables *lookup.Tables, in Input) (Result, error) {
	if err := quantity.ValidateEach(
		quantity.Check{Name: "temperature", Value: in.Temperature, Dimension: "temperature", NonNegative: true},
		quantity.Check{Name: "pressure", Value: in.Pressure, Dimension: "pressure", NonNegative: true},
	); err != nil {
		return Result{}, err
	}

	groups, err := tables.MaterialGroups()
	if err != nil {
		return Result{}, err
	}
	group, ok := groups[in.Material]
	if !ok {
		return Result{}, &errs.Error{
			Kind:    errs.ErrMaterialNotFound,
			Subject: in.Material,
			Msg:     fmt.Sprintf("material %s not found", in.Material),
		}
	}

	limits, err := tables.FlangeLimits(group)
	if err != nil {
		return Result{}, err
	}
	class, err := limits.Class(in.Temperature, in.Pressure)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Class: class,
		Group: group,
		Notes: fmt.Sprintf("class %s flange, material group %s", class, group),
	}, nil
}

// Class is Calculate reduced to the class string.
func Class(tables *lookup.Tables, temperature, pressure quantity.Quantity, material string) (string, error) {
	res, err := Calculate(tables, Input{Temperature: temperature, Pressure: pressure, Material: material})
	return res.Class, err
}
