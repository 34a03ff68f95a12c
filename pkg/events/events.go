package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/safestride/service-navigation/internal/domain/geo"
)

// Topics this service produces to or consumes from.
const (
	TopicSafetyEvents   = "safety.events"
	TopicIncidentEvents = "incident.events"
)

// Event types carried in the CloudEvent envelope.
const (
	SafetyReportSubmitted = "safety.report.submitted"
	IncidentReported      = "incident.reported"
)

// ReportSubmittedEvent is published when a safety report is accepted, so
// sibling services (alerts, admin dashboards) can react.
type ReportSubmittedEvent struct {
	ReportID    uuid.UUID      `json:"report_id"`
	ReportType  string         `json:"report_type"`
	Severity    string         `json:"severity"`
	Location    geo.Coordinate `json:"location"`
	IsAnonymous bool           `json:"is_anonymous"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

// IncidentReportedEvent arrives from the SOS/incident services when a user
// logs an incident; it is folded into the report store so subsequent route
// queries account for it.
type IncidentReportedEvent struct {
	IncidentID  uuid.UUID      `json:"incident_id"`
	UserID      *uuid.UUID     `json:"user_id,omitempty"`
	Category    string         `json:"category"`
	Severity    string         `json:"severity"`
	Description string         `json:"description"`
	Location    geo.Coordinate `json:"location"`
	OccurredAt  time.Time      `json:"occurred_at"`
}
