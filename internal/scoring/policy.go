// Package scoring maps raw market and socio-demographic indicators to
// normalized investment sub-scores and a weighted composite.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/raphaelrousselle-droid/radar-immo76/internal/config"
)

// PolicyVersion labels the active scoring policy. The weighting has drifted
// across revisions of the methodology; v1 is the 50/25/25 split shown on the
// dashboard weight badges.
const PolicyVersion = "v1"

// Score bounds. Every sub-score and the composite are clamped to this range.
const (
	MinScore = 1.0
	MaxScore = 10.0
)

// MidScore is the neutral default used when an indicator is unknown.
const MidScore = 5.0

// Policy holds the composite weights.
type Policy struct {
	PoidsRendement   float64
	PoidsDemographie float64
	PoidsSocioEco    float64
}

// DefaultPolicy returns the v1 weighting: rendement 50%, démographie 25%,
// socio-éco 25%.
func DefaultPolicy() Policy {
	return Policy{
		PoidsRendement:   0.5,
		PoidsDemographie: 0.25,
		PoidsSocioEco:    0.25,
	}
}

// PolicyFromConfig builds a Policy from configuration.
func PolicyFromConfig(cfg config.ScoringConfig) Policy {
	return Policy{
		PoidsRendement:   cfg.PoidsRendement,
		PoidsDemographie: cfg.PoidsDemographie,
		PoidsSocioEco:    cfg.PoidsSocioEco,
	}
}

// Validate checks that a Policy is internally consistent.
func (p Policy) Validate() error {
	var errs []string

	weights := map[string]float64{
		"poids_rendement":   p.PoidsRendement,
		"poids_demographie": p.PoidsDemographie,
		"poids_socio_eco":   p.PoidsSocioEco,
	}
	for name, w := range weights {
		if w < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", name))
		}
	}

	sum := p.PoidsRendement + p.PoidsDemographie + p.PoidsSocioEco
	if math.Abs(sum-1.0) > 0.001 {
		errs = append(errs, fmt.Sprintf("weights must sum to 1.0, got %.3f", sum))
	}

	if len(errs) > 0 {
		return eris.Errorf("scoring: invalid policy: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Composite combines the three sub-scores per the policy weights, rounded to
// 2 decimals.
func (p Policy) Composite(rendement, demographie, socioEco float64) float64 {
	g := rendement*p.PoidsRendement + demographie*p.PoidsDemographie + socioEco*p.PoidsSocioEco
	return round2(g)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v float64) float64 {
	return math.Min(MaxScore, math.Max(MinScore, v))
}
