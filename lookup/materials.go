package lookup

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

// Material is one row of the materials list.
type Material struct {
	Grade          string            `json:"grade"`
	Group          string            `json:"group"`
	ElasticModulus quantity.Quantity `json:"-"`
	Density        quantity.Quantity `json:"-"`
	Poisson        float64           `json:"poisson"`
}

// Materials loads the materials list. Elastic modulus is tabulated in GPa
// and density in g/cm**3.
func (t *Tables) Materials() ([]Material, error) {
	tb, err := t.load(MaterialsTable)
	if err != nil {
		return nil, err
	}
	cols := map[string]int{}
	for _, name := range []string{"Grade", "Group", "ElasticModulus", "Density", "Poisson"} {
		i, err := tb.column(name)
		if err != nil {
			return nil, err
		}
		cols[name] = i
	}

	out := make([]Material, 0, len(tb.rows))
	for _, row := range tb.rows {
		out = append(out, Material{
			Grade:          cell(row, cols["Grade"]),
			Group:          cell(row, cols["Group"]),
			ElasticModulus: quantity.New(t.number(tb.file, cell(row, cols["ElasticModulus"])), quantity.Gigapascal),
			Density:        quantity.New(t.number(tb.file, cell(row, cols["Density"])), quantity.GramPerCubicCentimeter),
			Poisson:        t.number(tb.file, cell(row, cols["Poisson"])),
		})
	}
	return out, nil
}

// Material returns the properties of one grade.
func (t *Tables) Material(grade string) (Material, error) {
	all, err := t.Materials()
	if err != nil {
		return Material{}, err
	}
	for _, m := range all {
		if m.Grade == grade {
			return m, nil
		}
	}
	return Material{}, &errs.Error{
		Kind:    errs.ErrMaterialNotFound,
		Subject: grade,
		Msg:     fmt.Sprintf("material %s not found", grade),
	}
}

// MaterialGroups maps each grade to its flange material group.
func (t *Tables) MaterialGroups() (map[string]string, error) {
	all, err := t.Materials()
	if err != nil {
		return nil, err
	}
	groups := make(map[string]string, len(all))
	for _, m := range all {
		groups[m.Grade] = m.Group
	}
	return groups, nil
}

// Grades lists the tabulated material grades in sorted order.
func (t *Tables) Grades() ([]string, error) {
	groups, err := t.MaterialGroups()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(groups))
	for g := range groups {
		out = append(out, g)
	}
	sort.Strings(out)
	return out, nil
}

// MaterialName is a material grade decoded from a case file. Grades look
// numeric ("316") so decoding rejects anything that was not written as a
// string.
type MaterialName string

func (m *MaterialName) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return nonString(node.Value, node.ShortTag())
	}
	*m = MaterialName(node.Value)
	return nil
}

func (m *MaterialName) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nonString(string(b), "json")
	}
	*m = MaterialName(s)
	return nil
}

// MaterialID accepts a material identifier of unknown type and returns it
// as a grade string. Only string kinds are grades.
func MaterialID(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case MaterialName:
		return string(t), nil
	default:
		return "", nonString(fmt.Sprint(v), fmt.Sprintf("%T", v))
	}
}

func nonString(value, kind string) error {
	return &errs.Error{
		Kind:    errs.ErrNonStringMaterial,
		Subject: value,
		Actual:  kind,
		Msg:     fmt.Sprintf("material %s must be a string, got %s", value, kind),
	}
}
