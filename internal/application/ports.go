package application

import (
	"context"

	"github.com/safestride/service-navigation/internal/domain/geo"
	"github.com/safestride/service-navigation/internal/domain/route"
)

// Place is a geocoding candidate: a display name with resolved coordinates.
type Place struct {
	DisplayName string         `json:"display_name"`
	Location    geo.Coordinate `json:"location"`
}

// Geocoder resolves free-text destinations to coordinates, biased toward the
// area around near. Implementations return zero or more candidates; the
// pipeline picks the one closest to the origin.
type Geocoder interface {
	Search(ctx context.Context, query string, near geo.Coordinate) ([]Place, error)
}

// RouteProvider returns pedestrian route alternatives between two points.
type RouteProvider interface {
	WalkingRoutes(ctx context.Context, origin, destination geo.Coordinate) ([]route.Candidate, error)
}
