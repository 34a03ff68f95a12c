package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/safestride/service-navigation/internal/domain/geo"
	reportDomain "github.com/safestride/service-navigation/internal/domain/report"
	"github.com/safestride/service-navigation/internal/domain/safety"
	"github.com/safestride/service-navigation/pkg/events"
	"github.com/safestride/service-navigation/pkg/kafka"
)

// SubmitReportRequest holds the data needed to submit a safety report.
type SubmitReportRequest struct {
	Location    geo.Coordinate `json:"location" binding:"required"`
	ReportType  string         `json:"report_type" binding:"required"`
	Severity    string         `json:"severity"`
	Description string         `json:"description"`
	MediaURL    string         `json:"media_url"`
	IsAnonymous bool           `json:"is_anonymous"`
}

// ReportDTO is the response representation of a safety report.
type ReportDTO struct {
	ID          uuid.UUID      `json:"id"`
	UserID      *uuid.UUID     `json:"user_id,omitempty"`
	Location    geo.Coordinate `json:"location"`
	ReportType  string         `json:"report_type"`
	Severity    string         `json:"severity"`
	Description string         `json:"description,omitempty"`
	MediaURL    string         `json:"media_url,omitempty"`
	IsAnonymous bool           `json:"is_anonymous"`
	Upvotes     int            `json:"upvotes"`
	ExpiresAt   time.Time      `json:"expires_at"`
	CreatedAt   time.Time      `json:"created_at"`
}

// ReportStatsDTO holds report statistics for the admin dashboard.
type ReportStatsDTO struct {
	TotalReports int64            `json:"total_reports"`
	ByType       map[string]int64 `json:"by_type"`
}

// ReportService is the application service for safety report use cases.
type ReportService struct {
	repo      reportDomain.Repository
	producer  *kafka.Producer
	logger    *zap.Logger
	reportTTL time.Duration
}

// NewReportService creates a ReportService. A non-positive reportTTL falls
// back to the domain default of 7 days.
func NewReportService(
	repo reportDomain.Repository,
	producer *kafka.Producer,
	logger *zap.Logger,
	reportTTL time.Duration,
) *ReportService {
	if reportTTL <= 0 {
		reportTTL = reportDomain.DefaultTTL
	}
	return &ReportService{
		repo:      repo,
		producer:  producer,
		logger:    logger,
		reportTTL: reportTTL,
	}
}

// SubmitReport validates and persists a safety report, then announces it.
// Invalid reports are rejected locally and never reach the report store.
func (s *ReportService) SubmitReport(ctx context.Context, userID *uuid.UUID, req SubmitReportRequest) (*ReportDTO, error) {
	r, err := reportDomain.New(
		userID,
		req.Location,
		reportDomain.Type(req.ReportType),
		safety.Severity(req.Severity),
		req.Description,
		req.MediaURL,
		req.IsAnonymous,
		s.reportTTL,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	s.publishReportSubmitted(ctx, r)

	dto := toReportDTO(r)
	return &dto, nil
}

// GetActiveReports retrieves unexpired reports near a point, newest first.
func (s *ReportService) GetActiveReports(ctx context.Context, center geo.Coordinate, radiusMeters float64, limit int) ([]ReportDTO, error) {
	if radiusMeters <= 0 {
		radiusMeters = reportSearchRadiusMeters
	}
	if limit <= 0 || limit > reportQueryLimit {
		limit = reportQueryLimit
	}

	reports, err := s.repo.FindActiveNear(ctx, center, radiusMeters, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}

	dtos := make([]ReportDTO, len(reports))
	for i, r := range reports {
		dtos[i] = toReportDTO(r)
	}
	return dtos, nil
}

// UpvoteReport increments a report's community confirmation counter.
func (s *ReportService) UpvoteReport(ctx context.Context, reportID uuid.UUID) (*ReportDTO, error) {
	r, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	r.Upvote()
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}

	dto := toReportDTO(r)
	return &dto, nil
}

// --- Admin methods ---

// ListAllReports returns a paginated list of all reports (admin).
func (s *ReportService) ListAllReports(ctx context.Context, page, limit int) ([]ReportDTO, int64, error) {
	reports, total, err := s.repo.ListAll(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}

	dtos := make([]ReportDTO, len(reports))
	for i, r := range reports {
		dtos[i] = toReportDTO(r)
	}
	return dtos, total, nil
}

// GetReportStats returns aggregate report statistics (admin).
func (s *ReportService) GetReportStats(ctx context.Context) (*ReportStatsDTO, error) {
	counts, err := s.repo.CountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get report stats: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return &ReportStatsDTO{
		TotalReports: total,
		ByType:       counts,
	}, nil
}

// --- Helpers ---

func toReportDTO(r *reportDomain.Report) ReportDTO {
	return ReportDTO{
		ID:          r.ID(),
		UserID:      r.UserID(),
		Location:    r.Location(),
		ReportType:  string(r.ReportType()),
		Severity:    string(r.Severity()),
		Description: r.Description(),
		MediaURL:    r.MediaURL(),
		IsAnonymous: r.IsAnonymous(),
		Upvotes:     r.Upvotes(),
		ExpiresAt:   r.ExpiresAt(),
		CreatedAt:   r.CreatedAt(),
	}
}

func (s *ReportService) publishReportSubmitted(ctx context.Context, r *reportDomain.Report) {
	if s.producer == nil {
		return
	}
	evt := events.ReportSubmittedEvent{
		ReportID:    r.ID(),
		ReportType:  string(r.ReportType()),
		Severity:    string(r.Severity()),
		Location:    r.Location(),
		IsAnonymous: r.IsAnonymous(),
		OccurredAt:  time.Now().UTC(),
	}

	cloudEvent, err := kafka.NewCloudEvent("service-navigation", events.SafetyReportSubmitted, evt)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", events.SafetyReportSubmitted),
			zap.Error(err),
		)
		return
	}

	if err := s.producer.PublishEvent(ctx, events.TopicSafetyEvents, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", events.TopicSafetyEvents),
			zap.String("event_type", events.SafetyReportSubmitted),
			zap.Error(err),
		)
	}
}
