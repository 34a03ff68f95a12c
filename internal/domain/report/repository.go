package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/safestride/service-navigation/internal/domain/geo"
)

// Repository defines the persistence contract for safety reports.
type Repository interface {
	// Save persists a new report.
	Save(ctx context.Context, r *Report) error

	// FindByID retrieves a report by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Report, error)

	// FindActiveNear retrieves unexpired reports within radiusMeters of the
	// center, newest first, capped at limit.
	FindActiveNear(ctx context.Context, center geo.Coordinate, radiusMeters float64, limit int) ([]*Report, error)

	// Update persists changes to an existing report.
	Update(ctx context.Context, r *Report) error

	// ListAll retrieves all reports with pagination (admin).
	ListAll(ctx context.Context, page, limit int) ([]*Report, int64, error)

	// CountByType returns report counts grouped by report type (admin).
	CountByType(ctx context.Context) (map[string]int64, error)
}
