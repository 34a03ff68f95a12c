package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safestride/service-navigation/internal/domain/geo"
	reportDomain "github.com/safestride/service-navigation/internal/domain/report"
	"github.com/safestride/service-navigation/internal/domain/safety"
	"github.com/safestride/service-navigation/pkg/domain"
)

// metersPerDegree converts the bounding-box radius to degrees for the
// latitude/longitude range query.
const metersPerDegree = 111000.0

// ReportModel is the GORM model for the safety_reports table.
type ReportModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	Lat         float64    `gorm:"not null;index"`
	Lng         float64    `gorm:"not null;index"`
	ReportType  string     `gorm:"not null;size:30;index"`
	Severity    string     `gorm:"not null;size:10"`
	Description string     `gorm:"size:1000"`
	MediaURL    string     `gorm:"size:500"`
	IsAnonymous bool       `gorm:"not null;default:false"`
	Upvotes     int        `gorm:"not null;default:0"`
	ExpiresAt   time.Time  `gorm:"not null;index"`
	CreatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ReportModel) TableName() string {
	return "safety_reports"
}

// GormReportRepository is the GORM-based implementation of report.Repository.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository.
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// Save persists a new report.
func (r *GormReportRepository) Save(ctx context.Context, rep *reportDomain.Report) error {
	model := toReportModel(rep)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// FindByID retrieves a report by its unique identifier.
func (r *GormReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*reportDomain.Report, error) {
	var model ReportModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Report", id.String())
		}
		return nil, fmt.Errorf("failed to find report by ID: %w", err)
	}
	return toDomainReport(&model), nil
}

// FindActiveNear retrieves unexpired reports within radiusMeters of the
// center using a bounding-box query, newest first.
func (r *GormReportRepository) FindActiveNear(ctx context.Context, center geo.Coordinate, radiusMeters float64, limit int) ([]*reportDomain.Report, error) {
	radiusDeg := radiusMeters / metersPerDegree

	var models []ReportModel
	err := r.db.WithContext(ctx).
		Where("lat BETWEEN ? AND ?", center.Lat-radiusDeg, center.Lat+radiusDeg).
		Where("lng BETWEEN ? AND ?", center.Lng-radiusDeg, center.Lng+radiusDeg).
		Where("expires_at > ?", time.Now().UTC()).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find active reports: %w", err)
	}

	reports := make([]*reportDomain.Report, len(models))
	for i, m := range models {
		reports[i] = toDomainReport(&m)
	}
	return reports, nil
}

// Update persists changes to an existing report.
func (r *GormReportRepository) Update(ctx context.Context, rep *reportDomain.Report) error {
	model := toReportModel(rep)
	result := r.db.WithContext(ctx).Model(&ReportModel{}).Where("id = ?", model.ID).Updates(map[string]any{
		"severity":    model.Severity,
		"description": model.Description,
		"media_url":   model.MediaURL,
		"upvotes":     model.Upvotes,
		"expires_at":  model.ExpiresAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Report", model.ID.String())
	}
	return nil
}

// ListAll retrieves all reports with pagination (admin).
func (r *GormReportRepository) ListAll(ctx context.Context, page, limit int) ([]*reportDomain.Report, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&ReportModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	var models []ReportModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]*reportDomain.Report, len(models))
	for i, m := range models {
		reports[i] = toDomainReport(&m)
	}
	return reports, total, nil
}

// CountByType returns report counts grouped by report type (admin).
func (r *GormReportRepository) CountByType(ctx context.Context) (map[string]int64, error) {
	type row struct {
		ReportType string
		Count      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&ReportModel{}).
		Select("report_type, count(*) as count").
		Group("report_type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count reports by type: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.ReportType] = r.Count
	}
	return counts, nil
}

// --- Mapping helpers ---

func toReportModel(rep *reportDomain.Report) ReportModel {
	loc := rep.Location()
	return ReportModel{
		ID:          rep.ID(),
		UserID:      rep.UserID(),
		Lat:         loc.Lat,
		Lng:         loc.Lng,
		ReportType:  string(rep.ReportType()),
		Severity:    string(rep.Severity()),
		Description: rep.Description(),
		MediaURL:    rep.MediaURL(),
		IsAnonymous: rep.IsAnonymous(),
		Upvotes:     rep.Upvotes(),
		ExpiresAt:   rep.ExpiresAt(),
		CreatedAt:   rep.CreatedAt(),
	}
}

func toDomainReport(m *ReportModel) *reportDomain.Report {
	return reportDomain.Reconstruct(
		m.ID,
		m.UserID,
		geo.Coordinate{Lat: m.Lat, Lng: m.Lng},
		reportDomain.Type(m.ReportType),
		safety.Severity(m.Severity),
		m.Description,
		m.MediaURL,
		m.IsAnonymous,
		m.Upvotes,
		m.ExpiresAt,
		m.CreatedAt,
	)
}
