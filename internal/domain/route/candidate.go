package route

import (
	"github.com/safestride/service-navigation/internal/domain/geo"
)

// Kind tags a recommended route with the criterion that selected it.
type Kind string

const (
	KindSafest   Kind = "safest"
	KindShortest Kind = "shortest"
)

// Candidate is one route alternative as supplied by the routing collaborator:
// an ordered waypoint sequence plus raw distance and duration.
type Candidate struct {
	Waypoints       []geo.Coordinate `json:"waypoints"`
	DistanceMeters  float64          `json:"distance_meters"`
	DurationSeconds float64          `json:"duration_seconds"`
}

// Info is a Candidate enriched with its safety assessment and selection tag.
type Info struct {
	Kind            Kind             `json:"kind"`
	Waypoints       []geo.Coordinate `json:"waypoints"`
	DistanceMeters  float64          `json:"distance_meters"`
	DurationSeconds float64          `json:"duration_seconds"`
	SafetyScore     int              `json:"safety_score"`
	RiskFactors     []string         `json:"risk_factors"`
}
