// Package batch runs dynamic load factor checks over many tube
// configurations: cases listed in a YAML file, rows of a workbook, or every
// size of one schedule.
package batch

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/SoftwareDevEngResearch/BeaverDet/calc/dlf"
	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/lookup"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

// Case is one tube configuration. CJSpeed is a quantity string such as
// "1500 m/s". An omitted PlusOrMinus means dlf.DefaultBand.
type Case struct {
	Name        string              `yaml:"name" json:"name"`
	Material    lookup.MaterialName `yaml:"material" json:"material"`
	Schedule    string              `yaml:"schedule" json:"schedule"`
	Size        string              `yaml:"size" json:"size"`
	CJSpeed     string              `yaml:"cj_speed" json:"cj_speed"`
	PlusOrMinus float64             `yaml:"plus_or_minus" json:"plus_or_minus"`
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

// LoadCases decodes a case file of the form
//
//	cases:
//	  - name: main tube
//	    material: "316L"
//	    schedule: "80"
//	    size: "6"
//	    cj_speed: 1500 m/s
func LoadCases(r io.Reader) ([]Case, error) {
	var f caseFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode cases: %w", err)
	}
	return f.Cases, nil
}

type Result struct {
	Case Case       `json:"case"`
	DLF  dlf.Result `json:"dlf"`
}

// Run evaluates every case and stops at the first failure.
func Run(tables *lookup.Tables, cases []Case) ([]Result, error) {
	if len(cases) == 0 {
		return nil, &errs.Error{Kind: errs.ErrInvalidInput, Msg: "no cases"}
	}
	out := make([]Result, 0, len(cases))
	for i, c := range cases {
		res, err := runCase(tables, c)
		if err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", i+1, c.Name, err)
		}
		out = append(out, res)
	}
	return out, nil
}

func runCase(tables *lookup.Tables, c Case) (Result, error) {
	speed, err := quantity.Parse(c.CJSpeed)
	if err != nil {
		return Result{}, err
	}
	res, err := dlf.Calculate(tables, dlf.Input{
		Material:    string(c.Material),
		Schedule:    c.Schedule,
		Size:        c.Size,
		CJSpeed:     speed,
		PlusOrMinus: band(c.PlusOrMinus),
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Case: c, DLF: res}, nil
}

func band(pm float64) float64 {
	if pm == 0 {
		return dlf.DefaultBand
	}
	return pm
}
