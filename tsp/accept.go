package tsp

import (
	"math"
	"math/rand"
)

// Criterion decides whether a priced move is committed at a temperature.
// delta follows the Move convention: positive shortens the tour.
type Criterion interface {
	Accept(temperature, delta float64) bool
}

// CriterionFunc adapts a plain function to Criterion.
type CriterionFunc func(temperature, delta float64) bool

// Accept calls f(temperature, delta).
func (f CriterionFunc) Accept(temperature, delta float64) bool { return f(temperature, delta) }

// Metropolis is the classic annealing rule.
//
//   - temperature < Frozen: accept iff delta > 0, no random draw.
//   - otherwise: draw u in [0,1) and accept iff u < exp(delta/temperature),
//     i.e. with probability min(1, exp(delta/temperature)). Improving and
//     neutral moves always pass; worsening ones pass less often as the
//     temperature falls. Exactly one draw per call.
type Metropolis struct {
	Rand   *rand.Rand
	Frozen float64
}

// NewMetropolis returns the rule drawing from rng with the given frozen
// threshold. A nil rng selects the fixed default seed, as Seed 0 does.
func NewMetropolis(rng *rand.Rand, frozen float64) *Metropolis {
	if rng == nil {
		rng = rngFromSeed(0)
	}
	return &Metropolis{Rand: rng, Frozen: frozen}
}

// Accept implements Criterion.
func (m *Metropolis) Accept(temperature, delta float64) bool {
	if temperature < m.Frozen {
		return delta > 0
	}
	// exp may overflow to +Inf for large improvements; u < +Inf still holds.
	return m.Rand.Float64() < math.Exp(delta/temperature)
}
