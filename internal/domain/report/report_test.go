package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safestride/service-navigation/internal/domain/geo"
	"github.com/safestride/service-navigation/internal/domain/safety"
	"github.com/safestride/service-navigation/pkg/domain"
)

var testLocation = geo.Coordinate{Lat: 28.6139, Lng: 77.2090}

func TestNew_Valid(t *testing.T) {
	userID := uuid.New()

	r, err := New(&userID, testLocation, TypeTheft, safety.SeverityHigh, "phone snatched", "", false, 0)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, r.ID())
	require.NotNil(t, r.UserID())
	assert.Equal(t, userID, *r.UserID())
	assert.Equal(t, TypeTheft, r.ReportType())
	assert.Equal(t, safety.SeverityHigh, r.Severity())
	assert.Equal(t, 0, r.Upvotes())
	assert.WithinDuration(t, time.Now().UTC().Add(DefaultTTL), r.ExpiresAt(), 5*time.Second)
}

func TestNew_Invalid(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		location geo.Coordinate
		rType    Type
		severity safety.Severity
	}{
		{"zero location", geo.Coordinate{}, TypeTheft, safety.SeverityHigh},
		{"unknown type", testLocation, Type("road_rage"), safety.SeverityHigh},
		{"unknown severity", testLocation, TypeTheft, safety.Severity("apocalyptic")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(&userID, tt.location, tt.rType, tt.severity, "", "", false, 0)
			assert.Nil(t, r)
			assert.Equal(t, domain.KindInvalidReport, domain.KindOf(err))
		})
	}
}

func TestNew_DefaultsEmptySeverityToMedium(t *testing.T) {
	r, err := New(nil, testLocation, TypeUnsafeArea, "", "", "", true, 0)

	require.NoError(t, err)
	assert.Equal(t, safety.SeverityMedium, r.Severity())
}

func TestNew_AnonymousStripsUserID(t *testing.T) {
	userID := uuid.New()

	r, err := New(&userID, testLocation, TypeHarassment, safety.SeverityHigh, "", "", true, 0)

	require.NoError(t, err)
	assert.Nil(t, r.UserID())
	assert.True(t, r.IsAnonymous())
}

func TestNew_CustomTTL(t *testing.T) {
	r, err := New(nil, testLocation, TypeTheft, safety.SeverityHigh, "", "", true, time.Hour)

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), r.ExpiresAt(), 5*time.Second)
}

func TestReport_IsExpired(t *testing.T) {
	r, err := New(nil, testLocation, TypeTheft, safety.SeverityHigh, "", "", true, time.Hour)
	require.NoError(t, err)

	assert.False(t, r.IsExpired(time.Now().UTC()))
	assert.True(t, r.IsExpired(time.Now().UTC().Add(2*time.Hour)))
}

func TestReport_Upvote(t *testing.T) {
	r, err := New(nil, testLocation, TypeTheft, safety.SeverityHigh, "", "", true, 0)
	require.NoError(t, err)

	r.Upvote()
	r.Upvote()

	assert.Equal(t, 2, r.Upvotes())
}

func TestReport_ToZone_ProjectsTypeDefaults(t *testing.T) {
	tests := []struct {
		rType      Type
		wantRadius float64
		wantScore  int
		wantLabel  string
	}{
		{TypeHarassment, 200, 30, "Reported Harassment"},
		{TypeTheft, 250, 35, "Reported Theft"},
		{TypeAssault, 200, 15, "Reported Assault"},
		{TypePoorLighting, 300, 40, "Reported Poor Lighting"},
		{TypeUnsafeArea, 250, 35, "Reported Unsafe Area"},
		{TypeSuspiciousActivity, 200, 45, "Suspicious Activity"},
		{TypeSafeZone, 300, 85, "Community Safe Zone"},
	}

	for _, tt := range tests {
		t.Run(string(tt.rType), func(t *testing.T) {
			r, err := New(nil, testLocation, tt.rType, safety.SeverityMedium, "", "", true, 0)
			require.NoError(t, err)

			zone := r.ToZone()

			assert.Equal(t, "r-"+r.ID().String(), zone.ID)
			assert.Equal(t, testLocation, zone.Center)
			assert.Equal(t, tt.wantRadius, zone.Radius)
			assert.Equal(t, tt.wantScore, zone.Score)
			assert.Equal(t, tt.wantLabel, zone.Label)
			assert.Equal(t, safety.ZoneTypeUserReport, zone.Type)
		})
	}
}

func TestReport_ToZone_ReporterSeverityWins(t *testing.T) {
	// Poor lighting defaults to medium severity; the reporter said critical.
	r, err := New(nil, testLocation, TypePoorLighting, safety.SeverityCritical, "", "", true, 0)
	require.NoError(t, err)

	assert.Equal(t, safety.SeverityCritical, r.ToZone().Severity)
}

func TestReport_ToZone_DescriptionFallback(t *testing.T) {
	withDesc, err := New(nil, testLocation, TypeTheft, safety.SeverityHigh, "bag snatching at corner", "", true, 0)
	require.NoError(t, err)
	assert.Equal(t, "bag snatching at corner", withDesc.ToZone().Details)

	withoutDesc, err := New(nil, testLocation, TypeTheft, safety.SeverityHigh, "", "", true, 0)
	require.NoError(t, err)
	assert.Equal(t, "Community-submitted report", withoutDesc.ToZone().Details)
}

func TestReconstruct(t *testing.T) {
	id := uuid.New()
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expires := created.Add(DefaultTTL)

	r := Reconstruct(id, nil, testLocation, TypeAssault, safety.SeverityCritical, "desc", "http://m", true, 3, expires, created)

	assert.Equal(t, id, r.ID())
	assert.Equal(t, 3, r.Upvotes())
	assert.Equal(t, expires, r.ExpiresAt())
	assert.Equal(t, created, r.CreatedAt())
}
