package quantity

import (
	"fmt"
	"strings"
)

// Dimension is a vector of exponents over the base dimensions the library
// needs. Two quantities are compatible when their dimensions are equal.
type Dimension struct {
	Mass        int
	Length      int
	Time        int
	Temperature int
}

var (
	Dimensionless = Dimension{}
	Length        = Dimension{Length: 1}
	Area          = Dimension{Length: 2}
	Volume        = Dimension{Length: 3}
	Temperature   = Dimension{Temperature: 1}
	Pressure      = Dimension{Mass: 1, Length: -1, Time: -2}
	Velocity      = Dimension{Length: 1, Time: -1}
	Mass          = Dimension{Mass: 1}
	Time          = Dimension{Time: 1}
	Force         = Dimension{Mass: 1, Length: 1, Time: -2}
	Density       = Dimension{Mass: 1, Length: -3}
	Diffusivity   = Dimension{Length: 2, Time: -1}
)

// supported lists the dimension names accepted by Validate.
var supported = map[string]Dimension{
	"length":      Length,
	"area":        Area,
	"volume":      Volume,
	"temperature": Temperature,
	"pressure":    Pressure,
	"velocity":    Velocity,
}

// Named returns the dimension registered under name.
func Named(name string) (Dimension, bool) {
	d, ok := supported[name]
	return d, ok
}

func (d Dimension) mul(o Dimension) Dimension {
	return Dimension{
		Mass:        d.Mass + o.Mass,
		Length:      d.Length + o.Length,
		Time:        d.Time + o.Time,
		Temperature: d.Temperature + o.Temperature,
	}
}

func (d Dimension) div(o Dimension) Dimension {
	return Dimension{
		Mass:        d.Mass - o.Mass,
		Length:      d.Length - o.Length,
		Time:        d.Time - o.Time,
		Temperature: d.Temperature - o.Temperature,
	}
}

func (d Dimension) even() bool {
	return d.Mass%2 == 0 && d.Length%2 == 0 && d.Time%2 == 0 && d.Temperature%2 == 0
}

func (d Dimension) half() Dimension {
	return Dimension{Mass: d.Mass / 2, Length: d.Length / 2, Time: d.Time / 2, Temperature: d.Temperature / 2}
}

// String renders the dimension the way unit libraries print dimensionality,
// e.g. "[mass] / [length] / [time] ** 2".
func (d Dimension) String() string {
	if d == Dimensionless {
		return "dimensionless"
	}
	// alphabetical, as printed by pint
	terms := []struct {
		name string
		exp  int
	}{
		{"length", d.Length},
		{"mass", d.Mass},
		{"temperature", d.Temperature},
		{"time", d.Time},
	}
	var num, den []string
	for _, t := range terms {
		switch {
		case t.exp > 0:
			num = append(num, term(t.name, t.exp))
		case t.exp < 0:
			den = append(den, term(t.name, -t.exp))
		}
	}
	s := strings.Join(num, " * ")
	if s == "" {
		s = "1"
	}
	for _, t := range den {
		s += " / " + t
	}
	return s
}

func term(name string, exp int) string {
	if exp == 1 {
		return "[" + name + "]"
	}
	return fmt.Sprintf("[%s] ** %d", name, exp)
}
