package quantity

// Unit converts magnitudes to SI base units: base = magnitude*factor + offset.
// Only the temperature scales carry an offset.
type Unit struct {
	Symbol string
	factor float64
	offset float64
	dim    Dimension
}

// Dimension reports the physical dimension measured by u.
func (u Unit) Dimension() Dimension { return u.dim }

func (u Unit) toBase(m float64) float64   { return m*u.factor + u.offset }
func (u Unit) fromBase(b float64) float64 { return (b - u.offset) / u.factor }

const (
	psiInPascal = 6894.757293168361
	inchInMeter = 0.0254
)

var (
	One = Unit{"", 1, 0, Dimensionless}

	Meter      = Unit{"m", 1, 0, Length}
	Centimeter = Unit{"cm", 1e-2, 0, Length}
	Millimeter = Unit{"mm", 1e-3, 0, Length}
	Inch       = Unit{"in", inchInMeter, 0, Length}
	Foot       = Unit{"ft", 0.3048, 0, Length}

	SquareMeter      = Unit{"m**2", 1, 0, Area}
	SquareMillimeter = Unit{"mm**2", 1e-6, 0, Area}
	SquareInch       = Unit{"in**2", inchInMeter * inchInMeter, 0, Area}

	CubicMeter = Unit{"m**3", 1, 0, Volume}
	Liter      = Unit{"L", 1e-3, 0, Volume}

	Kelvin     = Unit{"K", 1, 0, Temperature}
	Celsius    = Unit{"degC", 1, 273.15, Temperature}
	Fahrenheit = Unit{"degF", 5.0 / 9.0, 459.67 * 5.0 / 9.0, Temperature}

	Pascal     = Unit{"Pa", 1, 0, Pressure}
	Kilopascal = Unit{"kPa", 1e3, 0, Pressure}
	Megapascal = Unit{"MPa", 1e6, 0, Pressure}
	Gigapascal = Unit{"GPa", 1e9, 0, Pressure}
	Bar        = Unit{"bar", 1e5, 0, Pressure}
	Atmosphere = Unit{"atm", 101325, 0, Pressure}
	Psi        = Unit{"psi", psiInPascal, 0, Pressure}
	Ksi        = Unit{"ksi", psiInPascal * 1e3, 0, Pressure}

	MeterPerSecond = Unit{"m/s", 1, 0, Velocity}
	FootPerSecond  = Unit{"ft/s", 0.3048, 0, Velocity}

	Kilogram = Unit{"kg", 1, 0, Mass}
	Gram     = Unit{"g", 1e-3, 0, Mass}
	Second   = Unit{"s", 1, 0, Time}

	Newton     = Unit{"N", 1, 0, Force}
	PoundForce = Unit{"lbf", 4.4482216152605, 0, Force}

	KilogramPerCubicMeter  = Unit{"kg/m**3", 1, 0, Density}
	GramPerCubicCentimeter = Unit{"g/cm**3", 1e3, 0, Density}

	SquareMeterPerSecond = Unit{"m**2/s", 1, 0, Diffusivity}
)

// symbols maps the spellings accepted by Parse and by table headers.
var symbols = map[string]Unit{
	"":        One,
	"m":       Meter,
	"meter":   Meter,
	"cm":      Centimeter,
	"mm":      Millimeter,
	"in":      Inch,
	"inch":    Inch,
	"ft":      Foot,
	"foot":    Foot,
	"m**2":    SquareMeter,
	"mm**2":   SquareMillimeter,
	"in**2":   SquareInch,
	"m**3":    CubicMeter,
	"L":       Liter,
	"K":       Kelvin,
	"kelvin":  Kelvin,
	"degC":    Celsius,
	"°C":      Celsius,
	"degF":    Fahrenheit,
	"°F":      Fahrenheit,
	"Pa":      Pascal,
	"kPa":     Kilopascal,
	"MPa":     Megapascal,
	"GPa":     Gigapascal,
	"bar":     Bar,
	"atm":     Atmosphere,
	"psi":     Psi,
	"ksi":     Ksi,
	"m/s":     MeterPerSecond,
	"ft/s":    FootPerSecond,
	"kg":      Kilogram,
	"g":       Gram,
	"s":       Second,
	"N":       Newton,
	"lbf":     PoundForce,
	"kg/m**3": KilogramPerCubicMeter,
	"g/cm**3": GramPerCubicCentimeter,
	"m**2/s":  SquareMeterPerSecond,
}

// LookupUnit resolves a unit symbol such as "psi" or "degC".
func LookupUnit(symbol string) (Unit, bool) {
	u, ok := symbols[symbol]
	return u, ok
}
