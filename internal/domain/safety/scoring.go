package safety

import (
	"math"

	"github.com/safestride/service-navigation/internal/domain/geo"
)

// ScoringConfig holds the calibration constants of the scoring engine. The
// defaults are empirically chosen; treat them as product-tunable configuration
// rather than fixed law.
type ScoringConfig struct {
	// NeutralScore is returned when there is no information to score against
	// (empty waypoints or empty zone set).
	NeutralScore int `mapstructure:"neutral_score"`

	// PenaltyWeight controls how aggressively accumulated exposure degrades
	// the score: score = 100 - totalPenalty*PenaltyWeight.
	PenaltyWeight float64 `mapstructure:"penalty_weight"`

	// CriticalMultiplier and HighMultiplier weight the per-intersection
	// penalty by zone severity. Medium and low severities weigh 1.0.
	CriticalMultiplier float64 `mapstructure:"critical_multiplier"`
	HighMultiplier     float64 `mapstructure:"high_multiplier"`
}

// DefaultScoringConfig returns the calibration used in production.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		NeutralScore:       75,
		PenaltyWeight:      15,
		CriticalMultiplier: 2.0,
		HighMultiplier:     1.5,
	}
}

// Assessment is the outcome of scoring one route against a zone set.
type Assessment struct {
	// Score is the route's overall safety score in [0,100].
	Score int `json:"score"`

	// RiskFactors lists the labels of penalizing zones the route passes
	// through, deduplicated by zone ID, in first-encounter order.
	RiskFactors []string `json:"risk_factors"`
}

// Engine scores waypoint sequences against zone sets. It is stateless and
// safe for concurrent use.
type Engine struct {
	cfg ScoringConfig
}

// NewEngine creates a scoring engine with the given calibration.
func NewEngine(cfg ScoringConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Score computes a safety assessment for the waypoint sequence against the
// zone set. Penalty accumulates per waypoint-zone intersection, so a route
// that dwells inside a dangerous zone is penalized more than one that clips
// its edge. With no waypoints or no zones the neutral score is returned.
func (e *Engine) Score(waypoints []geo.Coordinate, zones []Zone) Assessment {
	if len(waypoints) == 0 || len(zones) == 0 {
		return Assessment{Score: e.cfg.NeutralScore, RiskFactors: []string{}}
	}

	totalPenalty := 0.0
	riskFactors := []string{}
	seen := make(map[string]struct{})

	for _, wp := range waypoints {
		for _, z := range zones {
			if !z.Contains(wp) {
				continue
			}
			if !z.Penalizes() {
				continue
			}

			basePenalty := float64(100-z.Score) / 100
			totalPenalty += basePenalty * e.severityMultiplier(z.Severity)

			if _, ok := seen[z.ID]; !ok {
				seen[z.ID] = struct{}{}
				riskFactors = append(riskFactors, z.Label)
			}
		}
	}

	score := int(math.Round(100 - totalPenalty*e.cfg.PenaltyWeight))
	return Assessment{Score: clampScore(score), RiskFactors: riskFactors}
}

func (e *Engine) severityMultiplier(s Severity) float64 {
	switch s {
	case SeverityCritical:
		return e.cfg.CriticalMultiplier
	case SeverityHigh:
		return e.cfg.HighMultiplier
	default:
		return 1.0
	}
}
