package window

import (
	"fmt"

	"github.com/SoftwareDevEngResearch/BeaverDet/calc/bolt"
	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/lookup"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

type BoltInput struct {
	MaxPressure      quantity.Quantity `json:"-"`
	Length           quantity.Quantity `json:"-"`
	Width            quantity.Quantity `json:"-"`
	NumBolts         int               `json:"num_bolts"`
	ThreadSize       string            `json:"thread_size"`
	ThreadClass      string            `json:"thread_class"`
	BoltTensile      quantity.Quantity `json:"-"`
	PlateTensile     quantity.Quantity `json:"-"`
	EngagementLength quantity.Quantity `json:"-"`
}

type BoltResult struct {
	Bolt        float64           `json:"bolt_safety_factor"`
	Plate       float64           `json:"plate_safety_factor"`
	LoadPerBolt quantity.Quantity `json:"-"`
	Areas       bolt.Result       `json:"areas"`
	Warnings    []string          `json:"warnings,omitempty"`
	Notes       string            `json:"notes"`
}

// BoltSafetyFactors spreads the pressure load on the window evenly over
// the bolts and compares it with the bolt and plate thread capacities.
func BoltSafetyFactors(tables *lookup.Tables, in BoltInput) (BoltResult, error) {
	if err := quantity.ValidateEach(
		quantity.Check{Name: "max pressure", Value: in.MaxPressure, Dimension: "pressure", NonNegative: true},
		quantity.Check{Name: "window length", Value: in.Length, Dimension: "length", NonNegative: true},
		quantity.Check{Name: "window width", Value: in.Width, Dimension: "length", NonNegative: true},
	); err != nil {
		return BoltResult{}, err
	}
	if in.NumBolts <= 0 {
		return BoltResult{}, &errs.Error{
			Kind:    errs.ErrInvalidInput,
			Subject: fmt.Sprint(in.NumBolts),
			Msg:     "number of bolts must be positive",
		}
	}

	areas, err := bolt.StressAreas(tables, bolt.Input{
		ThreadSize:       in.ThreadSize,
		ThreadClass:      in.ThreadClass,
		BoltTensile:      in.BoltTensile,
		PlateTensile:     in.PlateTensile,
		EngagementLength: in.EngagementLength,
	})
	if err != nil {
		return BoltResult{}, err
	}

	// F = P L W / N
	load := in.MaxPressure.Mul(in.Length).Mul(in.Width).Scale(1 / float64(in.NumBolts))
	f := load.Base()
	if f == 0 {
		return BoltResult{}, &errs.Error{Kind: errs.ErrInvalidInput, Msg: "window load must be positive"}
	}

	res := BoltResult{
		Bolt:        areas.ScrewArea.Base() * in.BoltTensile.Base() / f,
		Plate:       areas.PlateArea.Base() * in.PlateTensile.Base() / f,
		LoadPerBolt: load,
		Areas:       areas,
		Warnings:    areas.Warnings,
	}
	res.Notes = fmt.Sprintf("%d bolts at %.4g lbf each: bolt SF %.3g, plate SF %.3g",
		in.NumBolts, load.Value(quantity.PoundForce), res.Bolt, res.Plate)
	return res, nil
}
