// Package thermo defines the thermochemistry collaborator the design
// calculators depend on: something that can report the CJ and reflected
// shock states of a detonation and the laminar flame properties of a
// mixture. An equilibrium solver binding satisfies these interfaces; Scaling
// is a reference-state model for offline use.
package thermo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

// Mixture is a species composition (mole fractions or relative amounts) and
// the reaction mechanism it should be evaluated with.
type Mixture struct {
	Species   map[string]float64 `json:"species" yaml:"species"`
	Mechanism string             `json:"mechanism" yaml:"mechanism"`
}

// String renders the composition as "H2:2 O2:1" with species sorted.
func (m Mixture) String() string {
	names := make([]string, 0, len(m.Species))
	for s := range m.Species {
		names = append(names, s)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, s := range names {
		parts = append(parts, fmt.Sprintf("%s:%g", s, m.Species[s]))
	}
	return strings.Join(parts, " ")
}

// Validate requires at least one species with a positive amount and no
// negative amounts.
func (m Mixture) Validate() error {
	total := 0.0
	for s, x := range m.Species {
		if x < 0 {
			return &errs.Error{Kind: errs.ErrInvalidInput, Subject: s, Msg: "negative amount of " + s}
		}
		total += x
	}
	if total <= 0 {
		return &errs.Error{Kind: errs.ErrInvalidInput, Subject: m.String(), Msg: "mixture has no species"}
	}
	return nil
}

// State is the gas state behind a wave.
type State struct {
	Pressure    quantity.Quantity
	Temperature quantity.Quantity
	Speed       quantity.Quantity
}

// Detonation holds the Chapman-Jouguet state and the state behind the shock
// reflected from a closed end.
type Detonation struct {
	CJ        State
	Reflected State
}

// State returns a state by name: "cj" or "reflected".
func (d Detonation) State(name string) (State, error) {
	switch strings.ToLower(name) {
	case "cj":
		return d.CJ, nil
	case "reflected":
		return d.Reflected, nil
	}
	return State{}, &errs.Error{Kind: errs.ErrInvalidInput, Subject: name, Msg: "unknown state " + name}
}

// Flame holds the laminar deflagration properties used by run-up
// correlations.
type Flame struct {
	LaminarSpeed       quantity.Quantity
	KinematicViscosity quantity.Quantity
	ProductSoundSpeed  quantity.Quantity
	// ratio of unburned to burned gas density
	ExpansionRatio float64
}

// Solver computes detonation states.
type Solver interface {
	Detonation(mix Mixture, temperature, pressure quantity.Quantity) (Detonation, error)
}

// FlameSolver computes laminar flame properties.
type FlameSolver interface {
	Flame(mix Mixture, temperature, pressure quantity.Quantity) (Flame, error)
}
