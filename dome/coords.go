// Package dome bridges the panorama viewer to an external dome
// controller: the shared coordinate wire format, the interaction event
// bus, the navigation state machine and the asynchronous command bridge.
package dome

import (
	"math"
)

// Coordinates is the view orientation wire format shared with the dome
// hardware layer. Azimuth is in [0, 360) degrees, elevation in [-90, 90]
// degrees. Distance (0..1) is carried for the controller but unused by
// rendering.
type Coordinates struct {
	Azimuth   float64 `json:"azimuth"`
	Elevation float64 `json:"elevation"`
	Distance  float64 `json:"distance"`
}

// WrapAzimuth wraps an angle in degrees to [0, 360).
func WrapAzimuth(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// ClampElevation clamps an angle in degrees to [-90, 90].
func ClampElevation(e float64) float64 {
	if e < -90 {
		return -90
	}
	if e > 90 {
		return 90
	}
	return e
}

// geographicDistance is the default viewing distance for positions derived
// from map coordinates.
const geographicDistance = 0.8

// GeographicToDome maps a geographic position onto dome coordinates:
// longitude becomes azimuth, latitude becomes elevation.
func GeographicToDome(lat, lng float64) Coordinates {
	return Coordinates{
		Azimuth:   WrapAzimuth(lng),
		Elevation: ClampElevation(lat),
		Distance:  geographicDistance,
	}
}

// DomeToGeographic is the inverse of GeographicToDome. Longitude is
// reported in [-180, 180), so the round trip is exact modulo the ±180°
// seam.
func DomeToGeographic(c Coordinates) (lat, lng float64) {
	lng = WrapAzimuth(c.Azimuth)
	if lng >= 180 {
		lng -= 360
	}
	return c.Elevation, lng
}
