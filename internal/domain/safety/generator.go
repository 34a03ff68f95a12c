package safety

import (
	"github.com/safestride/service-navigation/internal/domain/geo"
)

// zoneTemplate is one entry in the fixed zone catalogue. The catalogue models
// the risk picture of a typical urban area; each template is translated by its
// offset relative to the anchor point at generation time.
type zoneTemplate struct {
	id       string
	offset   geo.Coordinate // degrees relative to the anchor
	radius   float64
	score    int
	zoneType ZoneType
	label    string
	details  string
	severity Severity
}

var zoneCatalogue = []zoneTemplate{
	{
		id:       "c1",
		offset:   geo.Coordinate{Lat: 0.008, Lng: 0.005},
		radius:   400,
		score:    25,
		zoneType: ZoneTypeCrime,
		label:    "High Crime Area",
		details:  "Multiple incidents reported in last 30 days",
		severity: SeverityHigh,
	},
	{
		id:       "c2",
		offset:   geo.Coordinate{Lat: -0.006, Lng: 0.009},
		radius:   300,
		score:    40,
		zoneType: ZoneTypeCrime,
		label:    "Theft Prone Zone",
		details:  "Pickpocketing and snatching incidents",
		severity: SeverityMedium,
	},
	{
		id:       "c3",
		offset:   geo.Coordinate{Lat: 0.003, Lng: -0.007},
		radius:   200,
		score:    15,
		zoneType: ZoneTypeCrime,
		label:    "Critical Zone",
		details:  "Assault cases reported at night",
		severity: SeverityCritical,
	},
	{
		id:       "l1",
		offset:   geo.Coordinate{Lat: -0.009, Lng: -0.004},
		radius:   350,
		score:    30,
		zoneType: ZoneTypeLighting,
		label:    "Poor Lighting Zone",
		details:  "Street lights non-functional after 8 PM",
		severity: SeverityHigh,
	},
	{
		id:       "l2",
		offset:   geo.Coordinate{Lat: 0.011, Lng: 0.002},
		radius:   250,
		score:    45,
		zoneType: ZoneTypeLighting,
		label:    "Dim Lighting Area",
		details:  "Inadequate street illumination",
		severity: SeverityMedium,
	},
	{
		id:       "s1",
		offset:   geo.Coordinate{Lat: 0.004, Lng: 0.012},
		radius:   300,
		score:    90,
		zoneType: ZoneTypeSafeZone,
		label:    "Police Patrolled Zone",
		details:  "Regular police patrol with high security",
		severity: SeverityLow,
	},
	{
		id:       "s2",
		offset:   geo.Coordinate{Lat: -0.003, Lng: 0.006},
		radius:   200,
		score:    85,
		zoneType: ZoneTypeSafeZone,
		label:    "CCTV Covered Area",
		details:  "24/7 CCTV surveillance active",
		severity: SeverityLow,
	},
}

// GenerateZones produces the catalogue zones translated around the anchor
// coordinate, one per template, in catalogue order. The function is pure:
// identical anchors yield identical zones. Overlapping zones are expected and
// are never merged; each contributes penalties independently during scoring.
func GenerateZones(anchor geo.Coordinate) []Zone {
	zones := make([]Zone, len(zoneCatalogue))
	for i, t := range zoneCatalogue {
		center := geo.Coordinate{
			Lat: anchor.Lat + t.offset.Lat,
			Lng: anchor.Lng + t.offset.Lng,
		}
		zones[i] = NewZone(t.id, center, t.radius, t.score, t.zoneType, t.label, t.details, t.severity)
	}
	return zones
}
