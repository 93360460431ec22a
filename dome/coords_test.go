package dome

import (
	"math"
	"testing"
)

func TestWrapAzimuth(t *testing.T) {
	testCases := map[string]struct {
		input    float64
		expected float64
	}{
		"Zero":         {input: 0, expected: 0},
		"InRange":      {input: 123.4, expected: 123.4},
		"FullTurn":     {input: 360, expected: 0},
		"OverTurn":     {input: 365, expected: 5},
		"Negative":     {input: -30, expected: 330},
		"NegativeTurn": {input: -390, expected: 330},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if got := WrapAzimuth(tt.input); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected: %f, got: %f", tt.expected, got)
			}
		})
	}
}

func TestClampElevation(t *testing.T) {
	testCases := map[string]struct {
		input    float64
		expected float64
	}{
		"InRange":  {input: 45, expected: 45},
		"TooHigh":  {input: 120, expected: 90},
		"TooLow":   {input: -300, expected: -90},
		"Boundary": {input: 90, expected: 90},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if got := ClampElevation(tt.input); got != tt.expected {
				t.Errorf("Expected: %f, got: %f", tt.expected, got)
			}
		})
	}
}

func TestGeographicRoundTrip(t *testing.T) {
	testCases := map[string]struct {
		lat, lng float64
	}{
		"Austin":    {lat: 30.5, lng: -97.7},
		"Greenwich": {lat: 51.5, lng: 0},
		"Sydney":    {lat: -33.9, lng: 151.2},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := GeographicToDome(tt.lat, tt.lng)
			if c.Azimuth < 0 || c.Azimuth >= 360 {
				t.Errorf("Azimuth out of range: %f", c.Azimuth)
			}
			if c.Distance != geographicDistance {
				t.Errorf("Expected distance: %f, got: %f", geographicDistance, c.Distance)
			}
			lat, lng := DomeToGeographic(c)
			if math.Abs(lat-tt.lat) > 1e-9 || math.Abs(lng-tt.lng) > 1e-9 {
				t.Errorf("Expected: (%f, %f), got: (%f, %f)", tt.lat, tt.lng, lat, lng)
			}
		})
	}
}
