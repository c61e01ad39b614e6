// Package ddt estimates the deflagration-to-detonation run-up distance in a
// tube with periodic obstacles.
package ddt

import (
	"fmt"
	"math"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
	"github.com/SoftwareDevEngResearch/BeaverDet/thermo"
)

// DefaultK is the correlation constant for smooth-walled tubes.
const DefaultK = 5.5

type Input struct {
	BlockageRatio      float64           `json:"blockage_ratio"`
	TubeDiameter       quantity.Quantity `json:"-"`
	InitialTemperature quantity.Quantity `json:"-"`
	InitialPressure    quantity.Quantity `json:"-"`
	Mixture            thermo.Mixture    `json:"mixture"`
	K                  float64           `json:"k"`
}

type Result struct {
	RunUp    quantity.Quantity `json:"-"`
	Diameter float64           `json:"run_up_diameters"` // run-up length over tube diameter
	Gamma    float64           `json:"gamma"`
	Flame    thermo.Flame      `json:"-"`
	Notes    string            `json:"notes"`
}

// RunUp evaluates X/D = gamma/(1 - BR) (ln(gamma D / delta) + K) with
// gamma = ((sigma - 1)^2 S_L / a_p)^(1/7) and delta = nu / S_L, taking the
// flame properties from solver.
func RunUp(solver thermo.FlameSolver, in Input) (Result, error) {
	if math.IsNaN(in.BlockageRatio) || in.BlockageRatio <= 0 || in.BlockageRatio >= 1 {
		return Result{}, &errs.Error{
			Kind:     errs.ErrBlockageRatioOutOfRange,
			Subject:  fmt.Sprint(in.BlockageRatio),
			Expected: "0 < blockage ratio < 1",
			Msg:      "BR must be between 0 and 1",
		}
	}
	if err := quantity.ValidateEach(
		quantity.Check{Name: "tube diameter", Value: in.TubeDiameter, Dimension: "length", NonNegative: true},
		quantity.Check{Name: "initial temperature", Value: in.InitialTemperature, Dimension: "temperature", NonNegative: true},
		quantity.Check{Name: "initial pressure", Value: in.InitialPressure, Dimension: "pressure", NonNegative: true},
	); err != nil {
		return Result{}, err
	}
	if in.K == 0 {
		in.K = DefaultK
	}

	flame, err := solver.Flame(in.Mixture, in.InitialTemperature, in.InitialPressure)
	if err != nil {
		return Result{}, fmt.Errorf("flame properties: %w", err)
	}
	sl := flame.LaminarSpeed.Base()
	ap := flame.ProductSoundSpeed.Base()
	nu := flame.KinematicViscosity.Base()
	if sl <= 0 || ap <= 0 || nu <= 0 || flame.ExpansionRatio <= 1 {
		return Result{}, &errs.Error{
			Kind:    errs.ErrInvalidInput,
			Subject: in.Mixture.String(),
			Msg:     "flame solver returned non-physical properties",
		}
	}

	d := in.TubeDiameter.Base()
	sigma := flame.ExpansionRatio
	gamma := math.Pow((sigma-1)*(sigma-1)*sl/ap, 1.0/7)
	delta := nu / sl
	xd := gamma / (1 - in.BlockageRatio) * (math.Log(gamma*d/delta) + in.K)

	return Result{
		RunUp:    quantity.FromBase(xd*d, quantity.Length),
		Diameter: xd,
		Gamma:    gamma,
		Flame:    flame,
		Notes:    fmt.Sprintf("run-up %.3g tube diameters at BR %.3g", xd, in.BlockageRatio),
	}, nil
}
