package application

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/safestride/service-navigation/internal/domain/geo"
	"github.com/safestride/service-navigation/internal/domain/report"
	"github.com/safestride/service-navigation/internal/domain/route"
	"github.com/safestride/service-navigation/internal/domain/safety"
	"github.com/safestride/service-navigation/pkg/domain"
)

// reportSearchRadiusMeters bounds the report-store query around the zone anchor.
const reportSearchRadiusMeters = 5000

// reportQueryLimit caps how many reports are folded into one zone set.
const reportQueryLimit = 200

// PlanRouteRequest holds the inputs for a route query.
type PlanRouteRequest struct {
	Origin      geo.Coordinate `json:"origin" binding:"required"`
	Destination string         `json:"destination" binding:"required"`
}

// RoutePlanDTO is the response representation of a completed route query.
type RoutePlanDTO struct {
	Origin      geo.Coordinate `json:"origin"`
	Destination Place          `json:"destination"`
	Safest      route.Info     `json:"safest"`
	Shortest    route.Info     `json:"shortest"`
	Zones       []safety.Zone  `json:"zones"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// NavigationService orchestrates the route query pipeline: geocode the
// destination, refresh the active zone set, fetch route alternatives, then
// score and select. The three external stages run strictly in sequence
// because each stage's output feeds the next.
type NavigationService struct {
	geocoder  Geocoder
	routes    RouteProvider
	reports   report.Repository
	evaluator *route.Evaluator
	logger    *zap.Logger

	// Per-caller query sequence numbers implementing last-query-wins: a
	// result whose query has been superseded is discarded, never surfaced.
	// Entries are evicted once a caller has no queries in flight.
	mu      sync.Mutex
	queries map[uuid.UUID]*callerQueries
}

// callerQueries tracks one caller's query sequence. The inflight count keeps
// the entry alive while any query for the caller is still running, so a
// finished newer query cannot reset the sequence under an older one.
type callerQueries struct {
	latest   uint64
	inflight int
}

// NewNavigationService creates a NavigationService.
func NewNavigationService(
	geocoder Geocoder,
	routes RouteProvider,
	reports report.Repository,
	evaluator *route.Evaluator,
	logger *zap.Logger,
) *NavigationService {
	return &NavigationService{
		geocoder:  geocoder,
		routes:    routes,
		reports:   reports,
		evaluator: evaluator,
		logger:    logger,
		queries:   make(map[uuid.UUID]*callerQueries),
	}
}

// PlanRoute runs the full pipeline for one route query. All collaborator
// failures are mapped to the pipeline error taxonomy here; the scoring engine
// and evaluator below this boundary never fail on well-formed input.
func (s *NavigationService) PlanRoute(ctx context.Context, callerID uuid.UUID, req PlanRouteRequest) (*RoutePlanDTO, error) {
	seq := s.beginQuery(callerID)
	defer s.finishQuery(callerID)

	// Stage 1: geocode the destination with a proximity bias.
	places, err := s.geocoder.Search(ctx, req.Destination, req.Origin)
	if err != nil {
		return nil, domain.NewServiceUnavailableError("geocoding service", err)
	}
	if len(places) == 0 {
		return nil, domain.NewLocationNotFoundError(req.Destination)
	}
	destination := closestPlace(places, req.Origin)

	// Stage 2: refresh the active zone set around the route midpoint. The
	// zone set is owned by this query alone and replaced wholesale; nothing
	// persists across unrelated queries.
	anchor := geo.Midpoint(req.Origin, destination.Location)
	zones := s.ActiveZones(ctx, anchor)

	// Stage 3: fetch route alternatives for a pedestrian profile.
	candidates, err := s.routes.WalkingRoutes(ctx, req.Origin, destination.Location)
	if err != nil {
		return nil, domain.NewServiceUnavailableError("routing service", err)
	}

	// Stage 4: score and select.
	rec, err := s.evaluator.Evaluate(candidates, zones)
	if err != nil {
		return nil, err
	}

	if s.isSuperseded(callerID, seq) {
		return nil, domain.NewConflictError("route query superseded by a newer request")
	}

	return &RoutePlanDTO{
		Origin:      req.Origin,
		Destination: destination,
		Safest:      rec.Safest,
		Shortest:    rec.Shortest,
		Zones:       zones,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// ActiveZones assembles the zone set for an area: the deterministic generated
// catalogue anchored at the point, plus zones projected from unexpired user
// reports nearby. A report-store failure degrades to generated zones only;
// it never fails the route query.
func (s *NavigationService) ActiveZones(ctx context.Context, anchor geo.Coordinate) []safety.Zone {
	zones := safety.GenerateZones(anchor)

	reports, err := s.reports.FindActiveNear(ctx, anchor, reportSearchRadiusMeters, reportQueryLimit)
	if err != nil {
		s.logger.Warn("report store query failed, scoring with generated zones only",
			zap.Error(err),
		)
		return zones
	}

	for _, r := range reports {
		zones = append(zones, r.ToZone())
	}
	return zones
}

func (s *NavigationService) beginQuery(callerID uuid.UUID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.queries[callerID]
	if q == nil {
		q = &callerQueries{}
		s.queries[callerID] = q
	}
	q.latest++
	q.inflight++
	return q.latest
}

func (s *NavigationService) finishQuery(callerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.queries[callerID]
	if q == nil {
		return
	}
	q.inflight--
	if q.inflight <= 0 {
		delete(s.queries, callerID)
	}
}

func (s *NavigationService) isSuperseded(callerID uuid.UUID, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.queries[callerID]
	return q == nil || q.latest != seq
}

// closestPlace picks the geocoding candidate nearest the origin.
func closestPlace(places []Place, origin geo.Coordinate) Place {
	best := places[0]
	bestDist := geo.DistanceMeters(origin, best.Location)
	for _, p := range places[1:] {
		if d := geo.DistanceMeters(origin, p.Location); d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}
