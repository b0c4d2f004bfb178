package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name   string
		meters float64
		units  Units
		locale string
		want   string
	}{
		{"zero", 0, UnitsMetric, "en-US", "0 m"},
		{"negative clamps", -20, UnitsMetric, "en-US", "0 m"},
		{"short rounds to ten", 44, UnitsMetric, "en-US", "40 m"},
		{"medium rounds to fifty", 437, UnitsMetric, "en-US", "450 m"},
		{"kilometers with decimal", 1500, UnitsMetric, "en-US", "1.5 km"},
		{"long kilometers", 12400, UnitsMetric, "en-US", "12 km"},
		{"feet", 120, UnitsImperial, "en-US", "400 ft"},
		{"miles with decimal", 2414, UnitsImperial, "en-US", "1.5 mi"},
		{"long miles", 32187, UnitsImperial, "en-US", "20 mi"},
		{"german decimal separator", 1500, UnitsMetric, "de-DE", "1,5 km"},
		{"unknown locale falls back", 1500, UnitsMetric, "not a locale!", "1.5 km"},
		{"unknown units fall back to metric", 437, Units("furlongs"), "en-US", "450 m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDistance(tt.meters, tt.units, tt.locale))
		})
	}
}

func TestDistanceFormatter_ZeroValue(t *testing.T) {
	var f DistanceFormatter
	assert.Equal(t, "40 m", f.Format(44))
}
