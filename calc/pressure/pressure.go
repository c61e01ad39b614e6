// Package pressure finds the highest initial fill pressure a detonation
// tube can be run at: the pressure where the reflected shock pressure,
// amplified by the dynamic load factor, reaches the tube rating.
package pressure

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/SoftwareDevEngResearch/BeaverDet/calc/dlf"
	"github.com/SoftwareDevEngResearch/BeaverDet/calc/pipe"
	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/lookup"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
	"github.com/SoftwareDevEngResearch/BeaverDet/thermo"
)

const (
	DefaultErrorTol      = 1e-4
	DefaultMaxIterations = 500
)

type Input struct {
	Material           string            `json:"material"`
	Schedule           string            `json:"schedule"`
	Size               string            `json:"size"`
	Welded             bool              `json:"welded"`
	SafetyFactor       float64           `json:"safety_factor"`
	Mixture            thermo.Mixture    `json:"mixture"`
	InitialTemperature quantity.Quantity `json:"-"`
	// Tube rating override; computed from the stress tables when nil.
	TubeLimit *quantity.Quantity `json:"-"`
	// Upper bound on the answer, returned as-is when it is already safe.
	InitialPressureCap *quantity.Quantity `json:"-"`
	// DLF band fraction; zero means dlf.DefaultBand.
	PlusOrMinus   float64 `json:"plus_or_minus"`
	ErrorTol      float64 `json:"error_tol"`
	MaxIterations int     `json:"max_iterations"`
}

type Result struct {
	InitialPressure   quantity.Quantity `json:"-"`
	ReflectedPressure quantity.Quantity `json:"-"`
	TubeLimit         quantity.Quantity `json:"-"`
	DLF               float64           `json:"dlf"`
	Iterations        int               `json:"iterations"`
	Capped            bool              `json:"capped"`
	Notes             string            `json:"notes"`
}

// search holds the fixed inputs of one run and counts solver evaluations.
type search struct {
	tables *lookup.Tables
	solver thermo.Solver
	in     Input
	limit  float64
	log    *zap.Logger

	iterations int
}

type point struct {
	p0        float64
	reflected float64
	dlf       float64
	// reflected pressure over the allowable reflected pressure, minus one
	g float64
}

func (s *search) eval(p0 float64) (point, error) {
	if s.iterations >= s.in.MaxIterations {
		return point{}, &errs.Error{
			Kind:  errs.ErrConvergenceFailure,
			Bound: fmt.Sprint(s.in.MaxIterations),
			Msg:   fmt.Sprintf("max initial pressure did not converge in %d iterations", s.in.MaxIterations),
		}
	}
	s.iterations++

	p := quantity.FromBase(p0, quantity.Pressure)
	det, err := s.solver.Detonation(s.in.Mixture, s.in.InitialTemperature, p)
	if err != nil {
		return point{}, fmt.Errorf("detonation at %s: %w", p, err)
	}
	factor, err := dlf.Factor(s.tables, s.in.Material, s.in.Schedule, s.in.Size, det.CJ.Speed, s.in.PlusOrMinus)
	if err != nil {
		return point{}, err
	}
	pt := point{
		p0:        p0,
		reflected: det.Reflected.Pressure.Base(),
		dlf:       factor,
	}
	pt.g = pt.reflected*factor/s.limit - 1
	s.log.Debug("initial pressure iteration",
		zap.Int("iteration", s.iterations),
		zap.Float64("initial_pressure_pa", p0),
		zap.Float64("reflected_pressure_pa", pt.reflected),
		zap.Float64("dlf", factor),
		zap.Float64("error", pt.g))
	return pt, nil
}

func (s *search) converged(pt point) bool { return math.Abs(pt.g) <= s.in.ErrorTol }

// MaxInitialPressure bisects on initial pressure until the reflected
// pressure equals TubeLimit / DLF within ErrorTol. Every solver evaluation
// counts against MaxIterations.
func MaxInitialPressure(tables *lookup.Tables, solver thermo.Solver, in Input) (Result, error) {
	if err := quantity.Validate(in.InitialTemperature, "temperature", true); err != nil {
		return Result{}, fmt.Errorf("initial temperature: %w", err)
	}
	if in.InitialPressureCap != nil {
		if err := quantity.Validate(*in.InitialPressureCap, "pressure", true); err != nil {
			return Result{}, fmt.Errorf("initial pressure cap: %w", err)
		}
	}
	if in.ErrorTol <= 0 {
		in.ErrorTol = DefaultErrorTol
	}
	if in.MaxIterations <= 0 {
		in.MaxIterations = DefaultMaxIterations
	}
	if in.PlusOrMinus == 0 {
		in.PlusOrMinus = dlf.DefaultBand
	}

	var limit quantity.Quantity
	if in.TubeLimit != nil {
		if err := quantity.Validate(*in.TubeLimit, "pressure", true); err != nil {
			return Result{}, fmt.Errorf("tube limit: %w", err)
		}
		limit = *in.TubeLimit
	} else {
		rating, err := pipe.MaxPressure(tables, pipe.RatingInput{
			Material:     in.Material,
			Schedule:     in.Schedule,
			Size:         in.Size,
			Welded:       in.Welded,
			Temperature:  in.InitialTemperature,
			SafetyFactor: in.SafetyFactor,
		})
		if err != nil {
			return Result{}, err
		}
		limit = rating.MaxPressure
	}
	if limit.Base() <= 0 {
		return Result{}, &errs.Error{Kind: errs.ErrInvalidInput, Subject: limit.String(), Msg: "tube limit must be positive"}
	}

	s := &search{tables: tables, solver: solver, in: in, limit: limit.Base(), log: tables.Logger()}
	pt, err := s.run()
	if err != nil {
		return Result{}, err
	}

	res := Result{
		InitialPressure:   quantity.FromBase(pt.p0, quantity.Pressure),
		ReflectedPressure: quantity.FromBase(pt.reflected, quantity.Pressure),
		TubeLimit:         limit,
		DLF:               pt.dlf,
		Iterations:        s.iterations,
	}
	if in.InitialPressureCap != nil && pt.p0 == in.InitialPressureCap.Base() {
		res.InitialPressure = *in.InitialPressureCap
		res.Capped = true
	}
	res.Notes = fmt.Sprintf("max initial pressure %.5g atm (DLF %g, reflected %.5g atm, limit %.5g atm) after %d iterations",
		res.InitialPressure.Value(quantity.Atmosphere), res.DLF,
		res.ReflectedPressure.Value(quantity.Atmosphere), limit.Value(quantity.Atmosphere), res.Iterations)
	return res, nil
}

func (s *search) run() (point, error) {
	var lo, hi point
	var err error

	if c := s.in.InitialPressureCap; c != nil {
		if hi, err = s.eval(c.Base()); err != nil {
			return point{}, err
		}
		if hi.g <= 0 || s.converged(hi) {
			return hi, nil
		}
		if lo, err = s.bracketBelow(hi); err != nil {
			return point{}, err
		}
	} else {
		start, err := s.eval(quantity.New(1, quantity.Atmosphere).Base())
		if err != nil {
			return point{}, err
		}
		if s.converged(start) {
			return start, nil
		}
		if start.g < 0 {
			lo = start
			if hi, err = s.bracketAbove(start); err != nil {
				return point{}, err
			}
		} else {
			hi = start
			if lo, err = s.bracketBelow(start); err != nil {
				return point{}, err
			}
		}
	}
	if s.converged(lo) {
		return lo, nil
	}
	if s.converged(hi) {
		return hi, nil
	}

	for {
		mid, err := s.eval((lo.p0 + hi.p0) / 2)
		if err != nil {
			return point{}, err
		}
		if s.converged(mid) {
			return mid, nil
		}
		if mid.g < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
}

// bracketBelow halves the pressure until the tube is no longer overloaded.
func (s *search) bracketBelow(hi point) (point, error) {
	p := hi.p0
	for {
		p /= 2
		pt, err := s.eval(p)
		if err != nil {
			return point{}, err
		}
		if pt.g <= 0 {
			return pt, nil
		}
	}
}

// bracketAbove doubles the pressure until the tube is overloaded.
func (s *search) bracketAbove(lo point) (point, error) {
	p := lo.p0
	for {
		p *= 2
		pt, err := s.eval(p)
		if err != nil {
			return point{}, err
		}
		if pt.g >= 0 {
			return pt, nil
		}
	}
}
