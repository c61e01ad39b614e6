// Package beaverdet is a mechanical design toolkit for detonation tubes.
//
// A Designer ties configuration, logging, the reference tables and a
// thermochemistry solver together and exposes the calculators in the calc
// packages with the configured defaults applied. The calc packages can also
// be used directly with a *lookup.Tables.
package beaverdet

import (
	"io"

	"go.uber.org/zap"

	"github.com/SoftwareDevEngResearch/BeaverDet/calc/bolt"
	"github.com/SoftwareDevEngResearch/BeaverDet/calc/ddt"
	"github.com/SoftwareDevEngResearch/BeaverDet/calc/dlf"
	"github.com/SoftwareDevEngResearch/BeaverDet/calc/flange"
	"github.com/SoftwareDevEngResearch/BeaverDet/calc/pipe"
	"github.com/SoftwareDevEngResearch/BeaverDet/calc/pressure"
	"github.com/SoftwareDevEngResearch/BeaverDet/calc/report"
	"github.com/SoftwareDevEngResearch/BeaverDet/calc/spiral"
	"github.com/SoftwareDevEngResearch/BeaverDet/calc/window"
	"github.com/SoftwareDevEngResearch/BeaverDet/config"
	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/logging"
	"github.com/SoftwareDevEngResearch/BeaverDet/lookup"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
	"github.com/SoftwareDevEngResearch/BeaverDet/thermo"
)

type Designer struct {
	cfg    *config.Config
	logger *zap.Logger
	tables *lookup.Tables
	solver thermo.Solver
	flames thermo.FlameSolver
}

type Option func(*Designer)

// WithLogger replaces the logger built from the configuration.
func WithLogger(l *zap.Logger) Option { return func(d *Designer) { d.logger = l } }

// WithTables replaces the configured reference tables.
func WithTables(t *lookup.Tables) Option { return func(d *Designer) { d.tables = t } }

func WithSolver(s thermo.Solver) Option { return func(d *Designer) { d.solver = s } }

func WithFlameSolver(s thermo.FlameSolver) Option { return func(d *Designer) { d.flames = s } }

// New builds a Designer. A nil cfg means config.Default(). A configured
// thermo preset fills whichever solvers the options leave unset.
func New(cfg *config.Config, opts ...Option) (*Designer, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Designer{cfg: cfg}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		l, err := logging.New(cfg.Log)
		if err != nil {
			return nil, err
		}
		d.logger = l
	}
	if cfg.Thermo.Preset != "" {
		preset, err := thermo.Preset(cfg.Thermo.Preset)
		if err != nil {
			return nil, err
		}
		if d.solver == nil {
			d.solver = preset
		}
		if d.flames == nil {
			d.flames = preset
		}
	}
	if d.tables == nil {
		if cfg.LookupDir == "" {
			d.tables = lookup.Embedded(d.logger)
		} else {
			d.tables = lookup.Dir(cfg.LookupDir, d.logger)
		}
	}
	d.logger.Debug("designer ready",
		zap.String("lookup_dir", cfg.LookupDir),
		zap.Float64("dlf_band", cfg.DLF.Band),
		zap.Float64("safety_factor", cfg.Tube.SafetyFactor))
	return d, nil
}

func (d *Designer) Config() *config.Config { return d.cfg }

func (d *Designer) Logger() *zap.Logger { return d.logger }

func (d *Designer) Tables() *lookup.Tables { return d.tables }

// VerifyCoverage checks the reference tables for missing groups and
// materials.
func (d *Designer) VerifyCoverage() (*lookup.CoverageReport, error) {
	return d.tables.VerifyCoverage()
}

func (d *Designer) FlangeClass(temperature, pressure quantity.Quantity, material string) (string, error) {
	return flange.Class(d.tables, temperature, pressure, material)
}

func (d *Designer) PipeDimensions(schedule, size string) (pipe.Dimensions, error) {
	return pipe.Lookup(d.tables, schedule, size)
}

func (d *Designer) AvailableSizes(schedule string) ([]string, error) {
	return pipe.AvailableSizes(d.tables, schedule)
}

func (d *Designer) StressLimits(material string, welded bool) (*lookup.StressTable, error) {
	return d.tables.StressLimits(material, welded)
}

// DynamicLoadFactor uses the configured band.
func (d *Designer) DynamicLoadFactor(material, schedule, size string, cjSpeed quantity.Quantity) (float64, error) {
	return dlf.Factor(d.tables, material, schedule, size, cjSpeed, d.cfg.DLF.Band)
}

// TubeRating uses the configured safety factor.
func (d *Designer) TubeRating(material, schedule, size string, welded bool, temperature quantity.Quantity) (pipe.Rating, error) {
	return pipe.MaxPressure(d.tables, pipe.RatingInput{
		Material:     material,
		Schedule:     schedule,
		Size:         size,
		Welded:       welded,
		Temperature:  temperature,
		SafetyFactor: d.cfg.Tube.SafetyFactor,
	})
}

// MaxInitialPressure fills unset search settings from the configuration.
func (d *Designer) MaxInitialPressure(in pressure.Input) (pressure.Result, error) {
	if d.solver == nil {
		return pressure.Result{}, &errs.Error{Kind: errs.ErrInvalidInput, Msg: "no thermochemistry solver configured"}
	}
	if in.SafetyFactor == 0 {
		in.SafetyFactor = d.cfg.Tube.SafetyFactor
	}
	if in.PlusOrMinus == 0 {
		in.PlusOrMinus = d.cfg.DLF.Band
	}
	if in.ErrorTol == 0 {
		in.ErrorTol = d.cfg.Search.ErrorTol
	}
	if in.MaxIterations == 0 {
		in.MaxIterations = d.cfg.Search.MaxIterations
	}
	return pressure.MaxInitialPressure(d.tables, d.solver, in)
}

func (d *Designer) RunUp(in ddt.Input) (ddt.Result, error) {
	if d.flames == nil {
		return ddt.Result{}, &errs.Error{Kind: errs.ErrInvalidInput, Msg: "no flame solver configured"}
	}
	return ddt.RunUp(d.flames, in)
}

func (d *Designer) SpiralDiameter(tube quantity.Quantity, blockageRatio float64) (quantity.Quantity, error) {
	return spiral.Diameter(tube, blockageRatio)
}

func (d *Designer) BlockageRatio(tube, spiralDiameter quantity.Quantity) (float64, error) {
	return spiral.BlockageRatio(tube, spiralDiameter)
}

func (d *Designer) WindowSafetyFactor(length, width, thickness, pressure, ruptureModulus quantity.Quantity) (float64, error) {
	return window.SafetyFactor(length, width, thickness, pressure, ruptureModulus)
}

func (d *Designer) WindowThickness(length, width quantity.Quantity, safetyFactor float64, pressure, ruptureModulus quantity.Quantity) (quantity.Quantity, error) {
	return window.Thickness(length, width, safetyFactor, pressure, ruptureModulus)
}

func (d *Designer) BoltStressAreas(in bolt.Input) (bolt.Result, error) {
	return bolt.StressAreas(d.tables, in)
}

func (d *Designer) WindowBoltSafetyFactors(in window.BoltInput) (window.BoltResult, error) {
	return window.BoltSafetyFactors(d.tables, in)
}

// WriteReport renders a design summary PDF.
func (d *Designer) WriteReport(w io.Writer, r report.Report) error {
	return report.Write(w, r)
}
