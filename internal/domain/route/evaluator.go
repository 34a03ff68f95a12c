package route

import (
	"github.com/safestride/service-navigation/internal/domain/safety"
	"github.com/safestride/service-navigation/pkg/domain"
)

// Recommendation pairs the two routes surfaced to the user. Safest and
// Shortest may describe the same candidate when the shortest path also has
// the best score; that is a valid outcome, not an error.
type Recommendation struct {
	Safest   Info `json:"safest"`
	Shortest Info `json:"shortest"`
}

// Evaluator scores route candidates and selects the safest and shortest.
// It is a pure function of (candidates, zones) with no retained state.
type Evaluator struct {
	engine *safety.Engine
}

// NewEvaluator creates an evaluator backed by the given scoring engine.
func NewEvaluator(engine *safety.Engine) *Evaluator {
	return &Evaluator{engine: engine}
}

// Evaluate scores every candidate against the zone set and returns the safest
// (maximum safety score) and shortest (minimum distance) recommendations.
// Ties are broken by input order for both criteria; in particular a safety tie
// does not fall back to distance. An empty candidate list is a NoRouteFound
// error; an empty zone set is fine and yields neutral scores.
func (e *Evaluator) Evaluate(candidates []Candidate, zones []safety.Zone) (*Recommendation, error) {
	if len(candidates) == 0 {
		return nil, domain.NewNoRouteFoundError()
	}

	scored := make([]Info, len(candidates))
	for i, c := range candidates {
		assessment := e.engine.Score(c.Waypoints, zones)
		scored[i] = Info{
			Waypoints:       c.Waypoints,
			DistanceMeters:  c.DistanceMeters,
			DurationSeconds: c.DurationSeconds,
			SafetyScore:     assessment.Score,
			RiskFactors:     assessment.RiskFactors,
		}
	}

	safestIdx, shortestIdx := 0, 0
	for i := 1; i < len(scored); i++ {
		if scored[i].SafetyScore > scored[safestIdx].SafetyScore {
			safestIdx = i
		}
		if scored[i].DistanceMeters < scored[shortestIdx].DistanceMeters {
			shortestIdx = i
		}
	}

	safest := scored[safestIdx]
	safest.Kind = KindSafest
	shortest := scored[shortestIdx]
	shortest.Kind = KindShortest

	return &Recommendation{Safest: safest, Shortest: shortest}, nil
}
