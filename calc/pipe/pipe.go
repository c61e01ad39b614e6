package pipe

import (
	"fmt"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/lookup"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

// Dimensions of a nominal pipe size in one schedule.
type Dimensions struct {
	OuterDiameter quantity.Quantity `json:"-"`
	InnerDiameter quantity.Quantity `json:"-"`
	WallThickness quantity.Quantity `json:"-"`
}

// Lookup returns the outer diameter, wall thickness and inner diameter of a
// nominal size.
func Lookup(tables *lookup.Tables, schedule, size string) (Dimensions, error) {
	s, err := tables.PipeSchedules()
	if err != nil {
		return Dimensions{}, err
	}
	od, wall, err := s.Dimensions(size, schedule)
	if err != nil {
		return Dimensions{}, err
	}
	return Dimensions{
		OuterDiameter: od,
		InnerDiameter: quantity.New(od.Value(quantity.Inch)-2*wall.Value(quantity.Inch), quantity.Inch),
		WallThickness: wall,
	}, nil
}

// AvailableSizes lists the nominal sizes tabulated for a schedule in table
// order.
func AvailableSizes(tables *lookup.Tables, schedule string) ([]string, error) {
	s, err := tables.PipeSchedules()
	if err != nil {
		return nil, err
	}
	return s.Sizes(schedule)
}

// DefaultSafetyFactor applies when RatingInput.SafetyFactor is unset.
const DefaultSafetyFactor = 4.0

// B31.3 coefficient Y for austenitic steel below 900 degF.
const coefficientY = 0.4

type RatingInput struct {
	Material     string            `json:"material"`
	Schedule     string            `json:"schedule"`
	Size         string            `json:"size"`
	Welded       bool              `json:"welded"`
	Temperature  quantity.Quantity `json:"-"`
	SafetyFactor float64           `json:"safety_factor"`
}

type Rating struct {
	Dimensions
	MaxPressure  quantity.Quantity `json:"-"`
	Stress       quantity.Quantity `json:"-"`
	SafetyFactor float64           `json:"safety_factor"`
	Notes        string            `json:"notes"`
}

// MaxPressure rates a tube for static pressure at temperature.
func MaxPressure(tables *lookup.Tables, in RatingInput) (Rating, error) {
	if err := quantity.Validate(in.Temperature, "temperature", true); err != nil {
		return Rating{}, fmt.Errorf("temperature: %w", err)
	}
	if in.SafetyFactor <= 0 {
		in.SafetyFactor = DefaultSafetyFactor
	}
	if in.SafetyFactor < 1 {
		return Rating{}, &errs.Error{
			Kind:    errs.ErrSafetyFactorBelowOne,
			Subject: fmt.Sprint(in.SafetyFactor),
			Msg:     "Safety factor < 1",
		}
	}

	dims, err := Lookup(tables, in.Schedule, in.Size)
	if err != nil {
		return Rating{}, err
	}
	limits, err := tables.StressLimits(in.Material, in.Welded)
	if err != nil {
		return Rating{}, err
	}
	stress, err := limits.At(in.Temperature)
	if err != nil {
		return Rating{}, err
	}

	// P = 2 S t / (D - 2 Y t)
	t := dims.WallThickness.Base()
	d := dims.OuterDiameter.Base()
	p := 2 * stress.Base() * t / (d - 2*coefficientY*t) / in.SafetyFactor

	variant := "seamless"
	if in.Welded {
		variant = "welded"
	}
	return Rating{
		Dimensions:   dims,
		MaxPressure:  quantity.FromBase(p, quantity.Pressure),
		Stress:       stress,
		SafetyFactor: in.SafetyFactor,
		Notes: fmt.Sprintf("NPS %s sch %s %s %s, allowable %.4g ksi",
			in.Size, in.Schedule, variant, in.Material, stress.Value(quantity.Ksi)),
	}, nil
}
