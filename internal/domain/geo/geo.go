package geo

import "math"

// metersPerDegree is the approximate length of one degree of latitude.
const metersPerDegree = 111000.0

// Coordinate is an immutable geographic point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceMeters returns the approximate distance between two coordinates
// using an equirectangular projection with the longitude axis scaled by
// cos(a.Lat). The error is acceptable for pedestrian ranges (under ~10 km).
func DistanceMeters(a, b Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * metersPerDegree
	dLng := (b.Lng - a.Lng) * metersPerDegree * math.Cos(a.Lat*math.Pi/180)
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// Midpoint returns the coordinate halfway between a and b.
func Midpoint(a, b Coordinate) Coordinate {
	return Coordinate{
		Lat: (a.Lat + b.Lat) / 2,
		Lng: (a.Lng + b.Lng) / 2,
	}
}
