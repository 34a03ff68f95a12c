package safety

import (
	"github.com/safestride/service-navigation/internal/domain/geo"
)

// neutralThreshold separates penalizing zones from neutral-to-positive ones.
// A zone at or above it never contributes a penalty.
const neutralThreshold = 50

// ZoneType represents the provenance of a safety zone, not a safety judgment.
type ZoneType string

const (
	ZoneTypeCrime      ZoneType = "crime"
	ZoneTypeLighting   ZoneType = "lighting"
	ZoneTypeUserReport ZoneType = "user_report"
	ZoneTypeSafeZone   ZoneType = "safe_zone"
)

// Severity weights the penalty magnitude of a zone, independent of its score.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// IsValid returns true if the severity is recognized.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Zone is a circular geographic area with an associated safety rating.
type Zone struct {
	ID       string         `json:"id"`
	Center   geo.Coordinate `json:"center"`
	Radius   float64        `json:"radius"` // meters, always > 0
	Score    int            `json:"score"`  // 0 = most dangerous, 100 = safest
	Type     ZoneType       `json:"type"`
	Label    string         `json:"label"`
	Details  string         `json:"details"`
	Severity Severity       `json:"severity"`
}

// NewZone constructs a Zone, clamping the score into [0,100]. A non-positive
// radius is coerced to 1 meter so the zone invariant holds.
func NewZone(id string, center geo.Coordinate, radius float64, score int, zoneType ZoneType, label, details string, severity Severity) Zone {
	if radius <= 0 {
		radius = 1
	}
	return Zone{
		ID:       id,
		Center:   center,
		Radius:   radius,
		Score:    clampScore(score),
		Type:     zoneType,
		Label:    label,
		Details:  details,
		Severity: severity,
	}
}

// Contains reports whether the point lies strictly inside the zone. A point
// exactly on the boundary is not inside.
func (z Zone) Contains(p geo.Coordinate) bool {
	return geo.DistanceMeters(p, z.Center) < z.Radius
}

// Penalizes reports whether the zone can degrade a route's score.
func (z Zone) Penalizes() bool {
	return z.Score < neutralThreshold
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
