package navigation

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Units selects metric or imperial distances.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

const (
	metersPerMile = 1609.344
	feetPerMeter  = 3.28084
)

// DistanceFormatter renders distances the way a navigation banner reads them:
// short distances are rounded coarsely, long ones keep one decimal below ten units.
type DistanceFormatter struct {
	Units   Units
	printer *message.Printer
}

// NewDistanceFormatter builds a formatter for a BCP 47 locale. Unknown locales fall
// back to American English.
func NewDistanceFormatter(units Units, locale string) DistanceFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	if units != UnitsImperial {
		units = UnitsMetric
	}
	return DistanceFormatter{Units: units, printer: message.NewPrinter(tag)}
}

// FormatDistance is a one-shot helper around DistanceFormatter.
func FormatDistance(meters float64, units Units, locale string) string {
	return NewDistanceFormatter(units, locale).Format(meters)
}

func (f DistanceFormatter) Format(meters float64) string {
	if f.printer == nil {
		f = NewDistanceFormatter(f.Units, "en-US")
	}
	if meters < 0 || math.IsNaN(meters) {
		meters = 0
	}
	if f.Units == UnitsImperial {
		return f.imperial(meters)
	}
	return f.metric(meters)
}

func (f DistanceFormatter) metric(meters float64) string {
	rounded := roundShort(meters)
	if rounded < 1000 {
		return f.printer.Sprintf("%d m", int(rounded))
	}
	km := meters / 1000
	if km < 10 {
		return f.printer.Sprintf("%.1f km", km)
	}
	return f.printer.Sprintf("%d km", int(math.Round(km)))
}

func (f DistanceFormatter) imperial(meters float64) string {
	miles := meters / metersPerMile
	if miles < 0.1 {
		return f.printer.Sprintf("%d ft", int(roundShort(meters*feetPerMeter)))
	}
	if miles < 10 {
		return f.printer.Sprintf("%.1f mi", miles)
	}
	return f.printer.Sprintf("%d mi", int(math.Round(miles)))
}

// roundShort rounds to 10 below 100 and to 50 above.
func roundShort(v float64) float64 {
	if v < 100 {
		return math.Round(v/10) * 10
	}
	return math.Round(v/50) * 50
}
