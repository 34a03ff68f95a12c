package report

import (
	"github.com/safestride/service-navigation/internal/domain/safety"
)

// Type categorizes a user-submitted safety report.
type Type string

const (
	TypeHarassment         Type = "harassment"
	TypeTheft              Type = "theft"
	TypeAssault            Type = "assault"
	TypePoorLighting       Type = "poor_lighting"
	TypeUnsafeArea         Type = "unsafe_area"
	TypeSuspiciousActivity Type = "suspicious_activity"
	TypeSafeZone           Type = "safe_zone"
)

// IsValid returns true if the report type is recognized.
func (t Type) IsValid() bool {
	_, ok := zoneDefaults[t]
	return ok
}

// zoneProjection holds the per-type defaults used when a report is folded
// into the active zone set.
type zoneProjection struct {
	radius   float64
	score    int
	severity safety.Severity
	label    string
}

// zoneDefaults maps each report type to the zone it projects to. Positive
// report types carry a score of 50 or more and are therefore excluded from
// penalty by construction.
var zoneDefaults = map[Type]zoneProjection{
	TypeHarassment:         {radius: 200, score: 30, severity: safety.SeverityHigh, label: "Reported Harassment"},
	TypeTheft:              {radius: 250, score: 35, severity: safety.SeverityHigh, label: "Reported Theft"},
	TypeAssault:            {radius: 200, score: 15, severity: safety.SeverityCritical, label: "Reported Assault"},
	TypePoorLighting:       {radius: 300, score: 40, severity: safety.SeverityMedium, label: "Reported Poor Lighting"},
	TypeUnsafeArea:         {radius: 250, score: 35, severity: safety.SeverityMedium, label: "Reported Unsafe Area"},
	TypeSuspiciousActivity: {radius: 200, score: 45, severity: safety.SeverityLow, label: "Suspicious Activity"},
	TypeSafeZone:           {radius: 300, score: 85, severity: safety.SeverityLow, label: "Community Safe Zone"},
}
