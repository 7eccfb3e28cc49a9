package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceZero(t *testing.T) {
	assert.Equal(t, 0.0, Distance(25.0330, 121.5654, 25.0330, 121.5654))
	assert.Equal(t, 0.0, Distance(0, 0, 0, 0))
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{25.0330, 121.5654, 24.1477, 120.6736},
		{40.7128, -74.0060, 34.0522, -118.2437},
		{-33.8688, 151.2093, 51.5074, -0.1278},
	}
	for _, p := range pairs {
		assert.Equal(t, Distance(p[0], p[1], p[2], p[3]), Distance(p[2], p[3], p[0], p[1]))
	}
}

func TestDistanceKnownValues(t *testing.T) {
	// one degree of latitude on the reference sphere
	oneDegree := EarthRadius * math.Pi / 180
	assert.InDelta(t, oneDegree, Distance(0, 0, 1, 0), oneDegree*0.001)

	// Taipei 101 to Taipei Main Station, roughly 5.2 km
	d := Distance(25.0330, 121.5654, 25.0478, 121.5170)
	assert.InDelta(t, 5160, d, 100)
}

func TestDistanceAntipodalStable(t *testing.T) {
	// half the sphere circumference; the clamped asin argument must not
	// produce NaN here
	d := Distance(90, 0, -90, 0)
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*EarthRadius, d, 1)

	d = Distance(0, 0, 0, 180)
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*EarthRadius, d, 1)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(0, 0))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(0, -180.1))
	assert.False(t, ValidCoordinates(math.NaN(), 0))
	assert.False(t, ValidCoordinates(0, math.NaN()))
}
