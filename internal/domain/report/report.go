package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/safestride/service-navigation/internal/domain/geo"
	"github.com/safestride/service-navigation/internal/domain/safety"
	"github.com/safestride/service-navigation/pkg/domain"
)

// DefaultTTL is how long a report contributes to zone generation before it
// expires out of the active set.
const DefaultTTL = 7 * 24 * time.Hour

// Report is the aggregate root for a user-submitted safety report.
type Report struct {
	id          uuid.UUID
	userID      *uuid.UUID // nil for anonymous reports
	location    geo.Coordinate
	reportType  Type
	severity    safety.Severity
	description string
	mediaURL    string
	isAnonymous bool
	upvotes     int
	expiresAt   time.Time
	createdAt   time.Time
}

// New creates a validated report. A zero location or an unrecognized type is
// rejected as an invalid report before anything reaches the report store.
func New(
	userID *uuid.UUID,
	location geo.Coordinate,
	reportType Type,
	severity safety.Severity,
	description, mediaURL string,
	isAnonymous bool,
	ttl time.Duration,
) (*Report, error) {
	if location.Lat == 0 && location.Lng == 0 {
		return nil, domain.NewInvalidReportError("report location is required")
	}
	if !reportType.IsValid() {
		return nil, domain.NewInvalidReportError("unknown report type: " + string(reportType))
	}
	if severity == "" {
		severity = safety.SeverityMedium
	}
	if !severity.IsValid() {
		return nil, domain.NewInvalidReportError("unknown severity: " + string(severity))
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if isAnonymous {
		userID = nil
	}

	now := time.Now().UTC()
	return &Report{
		id:          uuid.New(),
		userID:      userID,
		location:    location,
		reportType:  reportType,
		severity:    severity,
		description: description,
		mediaURL:    mediaURL,
		isAnonymous: isAnonymous,
		expiresAt:   now.Add(ttl),
		createdAt:   now,
	}, nil
}

// Reconstruct rebuilds a Report from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	userID *uuid.UUID,
	location geo.Coordinate,
	reportType Type,
	severity safety.Severity,
	description, mediaURL string,
	isAnonymous bool,
	upvotes int,
	expiresAt, createdAt time.Time,
) *Report {
	return &Report{
		id:          id,
		userID:      userID,
		location:    location,
		reportType:  reportType,
		severity:    severity,
		description: description,
		mediaURL:    mediaURL,
		isAnonymous: isAnonymous,
		upvotes:     upvotes,
		expiresAt:   expiresAt,
		createdAt:   createdAt,
	}
}

// --- Getters ---

func (r *Report) ID() uuid.UUID            { return r.id }
func (r *Report) UserID() *uuid.UUID       { return r.userID }
func (r *Report) Location() geo.Coordinate { return r.location }
func (r *Report) ReportType() Type         { return r.reportType }
func (r *Report) Severity() safety.Severity { return r.severity }
func (r *Report) Description() string      { return r.description }
func (r *Report) MediaURL() string         { return r.mediaURL }
func (r *Report) IsAnonymous() bool        { return r.isAnonymous }
func (r *Report) Upvotes() int             { return r.upvotes }
func (r *Report) ExpiresAt() time.Time     { return r.expiresAt }
func (r *Report) CreatedAt() time.Time     { return r.createdAt }

// --- Behavior ---

// IsExpired reports whether the report has aged out of the active set.
func (r *Report) IsExpired(now time.Time) bool {
	return now.After(r.expiresAt)
}

// Upvote increments the community confirmation counter.
func (r *Report) Upvote() {
	r.upvotes++
}

// ToZone projects the report into a user_report safety zone using the
// table-driven per-type defaults. The reporter's severity takes precedence
// over the table default for penalty weighting.
func (r *Report) ToZone() safety.Zone {
	defaults := zoneDefaults[r.reportType]

	details := r.description
	if details == "" {
		details = "Community-submitted report"
	}

	return safety.NewZone(
		"r-"+r.id.String(),
		r.location,
		defaults.radius,
		defaults.score,
		safety.ZoneTypeUserReport,
		defaults.label,
		details,
		r.severity,
	)
}
