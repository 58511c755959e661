package meteo

import "math"

// mmHgPerHPa converts hectopascals to millimeters of mercury.
const mmHgPerHPa = 1.333

// CompassDirection buckets wind direction degrees into a four-point compass.
// North covers (315, 360] and [0, 45], then East, South and West follow in
// 90 degree arcs.
func CompassDirection(degrees float64) string {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}

	switch {
	case d > 315 || d <= 45:
		return "North"
	case d <= 135:
		return "East"
	case d <= 225:
		return "South"
	default:
		return "West"
	}
}

// PressureToMmHg converts surface pressure from hPa to whole mmHg
func PressureToMmHg(hPa float64) float64 {
	return math.Floor(hPa / mmHgPerHPa)
}
