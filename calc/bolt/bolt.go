// Package bolt computes thread stress areas for a bolt threaded into a
// tapped plate, following the FED-STD-H28/2B relations for unified inch
// threads.
package bolt

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/SoftwareDevEngResearch/BeaverDet/lookup"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

// HighStrengthThreshold switches the tensile area relation.
var HighStrengthThreshold = quantity.New(100, quantity.Ksi)

// ShearWarning is reported when the engagement length is below the minimum.
const ShearWarning = "Screws fail in shear, not tension. Plate may be damaged. Consider using a longer screw."

type Input struct {
	ThreadSize       string            `json:"thread_size"`  // e.g. 1/4-28
	ThreadClass      string            `json:"thread_class"` // 1, 2 or 3
	BoltTensile      quantity.Quantity `json:"-"`
	PlateTensile     quantity.Quantity `json:"-"`
	EngagementLength quantity.Quantity `json:"-"`
}

type Result struct {
	ScrewArea         quantity.Quantity `json:"-"` // tensile stress area
	PlateArea         quantity.Quantity `json:"-"` // internal thread shear area
	MinimumEngagement quantity.Quantity `json:"-"`
	Warnings          []string          `json:"warnings,omitempty"`
	Notes             string            `json:"notes"`
}

// StressAreas computes the bolt tensile area, the plate shear area over the
// engagement length and the minimum engagement length.
func StressAreas(tables *lookup.Tables, in Input) (Result, error) {
	if err := quantity.ValidateEach(
		quantity.Check{Name: "bolt tensile", Value: in.BoltTensile, Dimension: "pressure", NonNegative: true},
		quantity.Check{Name: "plate tensile", Value: in.PlateTensile, Dimension: "pressure", NonNegative: true},
		quantity.Check{Name: "engagement length", Value: in.EngagementLength, Dimension: "length", NonNegative: true},
	); err != nil {
		return Result{}, err
	}
	if in.ThreadClass == "" {
		in.ThreadClass = "2"
	}

	ext, internal, err := tables.ThreadPair(in.ThreadSize, in.ThreadClass)
	if err != nil {
		return Result{}, err
	}
	n, err := ext.TPI()
	if err != nil {
		return Result{}, err
	}

	// all thread geometry in inches
	d := internal.MajorMin.Value(quantity.Inch) // basic major diameter
	esMin := ext.PitchMin.Value(quantity.Inch)
	dsMin := ext.MajorMin.Value(quantity.Inch)
	enMax := internal.PitchMax.Value(quantity.Inch)
	knMax := internal.MinorMax.Value(quantity.Inch)
	le := in.EngagementLength.Value(quantity.Inch)

	var as float64
	if !HighStrengthThreshold.Less(in.BoltTensile) {
		as = math.Pi / 4 * math.Pow(d-0.9743/n, 2)
	} else {
		as = math.Pi * math.Pow(esMin/2-0.16238/n, 2)
	}

	plateArea := func(length float64) float64 {
		return math.Pi * n * length * dsMin * (1/(2*n) + 0.57735*(dsMin-enMax))
	}
	an := plateArea(le)

	leMin := 2 * as / (math.Pi * knMax * (0.5 + 0.57735*n*(esMin-knMax)))
	j := as * in.BoltTensile.Base() / (plateArea(leMin) * in.PlateTensile.Base())
	if j > 1 {
		leMin *= j
	}

	res := Result{
		ScrewArea:         quantity.New(as, quantity.SquareInch),
		PlateArea:         quantity.New(an, quantity.SquareInch),
		MinimumEngagement: quantity.New(leMin, quantity.Inch),
		Notes:             fmt.Sprintf("%s class %s, minimum engagement %.4g in", in.ThreadSize, in.ThreadClass, leMin),
	}
	if le < leMin {
		tables.Logger().Warn(ShearWarning,
			zap.String("thread", in.ThreadSize),
			zap.Float64("engagement_in", le),
			zap.Float64("minimum_in", leMin))
		res.Warnings = append(res.Warnings, ShearWarning)
	}
	return res, nil
}
