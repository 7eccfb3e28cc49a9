package geo

import (
	"math"
)

// EarthRadius is the mean sphere radius used for great-circle distance, in meters.
const EarthRadius = 6371000.0

// Distance returns the great-circle distance in meters between two
// (latitude, longitude) pairs in degrees, using the haversine formula.
// Callers must reject NaN or out-of-range coordinates before invoking.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)

	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	// rounding can push h just outside [0,1] near antipodal points
	if h > 1 {
		h = 1
	}
	if h < 0 {
		h = 0
	}

	return 2 * EarthRadius * math.Asin(math.Sqrt(h))
}

// ValidCoordinates reports whether a coordinate pair is inside the valid
// latitude/longitude ranges and free of NaN.
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
