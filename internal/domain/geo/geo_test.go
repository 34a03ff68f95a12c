package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	origin := Coordinate{Lat: 0, Lng: 0}

	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, DistanceMeters(origin, origin))
	})

	t.Run("one millidegree of longitude at the equator", func(t *testing.T) {
		p := Coordinate{Lat: 0, Lng: 0.001}
		assert.InDelta(t, 111.0, DistanceMeters(origin, p), 0.001)
	})

	t.Run("longitude shrinks with latitude", func(t *testing.T) {
		atEquator := DistanceMeters(Coordinate{Lat: 0, Lng: 10}, Coordinate{Lat: 0, Lng: 10.001})
		atSixty := DistanceMeters(Coordinate{Lat: 60, Lng: 10}, Coordinate{Lat: 60, Lng: 10.001})
		assert.Less(t, atSixty, atEquator)
		// cos(60 deg) = 0.5
		assert.InDelta(t, atEquator/2, atSixty, 0.01)
	})

	t.Run("deterministic", func(t *testing.T) {
		a := Coordinate{Lat: 28.6139, Lng: 77.2090}
		b := Coordinate{Lat: 28.6200, Lng: 77.2150}
		assert.Equal(t, DistanceMeters(a, b), DistanceMeters(a, b))
	})
}

func TestMidpoint(t *testing.T) {
	a := Coordinate{Lat: 10, Lng: 20}
	b := Coordinate{Lat: 20, Lng: 40}
	mid := Midpoint(a, b)
	assert.Equal(t, Coordinate{Lat: 15, Lng: 30}, mid)
}
