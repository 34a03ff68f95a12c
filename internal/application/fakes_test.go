package application

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/safestride/service-navigation/internal/domain/geo"
	reportDomain "github.com/safestride/service-navigation/internal/domain/report"
	"github.com/safestride/service-navigation/internal/domain/route"
	"github.com/safestride/service-navigation/pkg/domain"
)

type fakeGeocoder struct {
	places []Place
	err    error
	calls  int
}

func (g *fakeGeocoder) Search(_ context.Context, _ string, _ geo.Coordinate) ([]Place, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.places, nil
}

type fakeRouteProvider struct {
	candidates []route.Candidate
	err        error
	calls      int

	// hook runs before returning, letting a test interleave a concurrent
	// query mid-pipeline.
	hook func()
}

func (p *fakeRouteProvider) WalkingRoutes(_ context.Context, _, _ geo.Coordinate) ([]route.Candidate, error) {
	p.calls++
	if p.hook != nil {
		h := p.hook
		p.hook = nil
		h()
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.candidates, nil
}

// memReportRepository is an in-memory report.Repository for service tests.
type memReportRepository struct {
	mu      sync.Mutex
	reports map[uuid.UUID]*reportDomain.Report

	saveErr error
	findErr error
}

func newMemReportRepository() *memReportRepository {
	return &memReportRepository{reports: make(map[uuid.UUID]*reportDomain.Report)}
}

func (m *memReportRepository) Save(_ context.Context, r *reportDomain.Report) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[r.ID()] = r
	return nil
}

func (m *memReportRepository) FindByID(_ context.Context, id uuid.UUID) (*reportDomain.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reports[id]
	if !ok {
		return nil, domain.NewNotFoundError("Report", id.String())
	}
	return r, nil
}

func (m *memReportRepository) FindActiveNear(_ context.Context, _ geo.Coordinate, _ float64, limit int) ([]*reportDomain.Report, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*reportDomain.Report, 0, len(m.reports))
	for _, r := range m.reports {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memReportRepository) Update(_ context.Context, r *reportDomain.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reports[r.ID()]; !ok {
		return domain.NewNotFoundError("Report", r.ID().String())
	}
	m.reports[r.ID()] = r
	return nil
}

func (m *memReportRepository) ListAll(_ context.Context, page, limit int) ([]*reportDomain.Report, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*reportDomain.Report, 0, len(m.reports))
	for _, r := range m.reports {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })

	total := int64(len(out))
	start := (page - 1) * limit
	if start >= len(out) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (m *memReportRepository) CountByType(_ context.Context) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[string]int64)
	for _, r := range m.reports {
		counts[string(r.ReportType())]++
	}
	return counts, nil
}

var errBoom = errors.New("boom")
