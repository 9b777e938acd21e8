package engine

import (
	"math/rand"

	model "procurv/internal/models"
)

// Strategy decides one vendor's move for the current round. It returns the
// proposed new bid and whether the vendor wants to move at all; the engine
// still rejects proposals that are not a real improvement over the vendor's
// previous bid. Strategies must be pure apart from draws on rng, so a seeded
// source makes rounds fully deterministic.
type Strategy func(v *model.Vendor, currentLowest float64, rng *rand.Rand) (float64, bool)

// Default bidding shape: vendors usually participate, and nudge toward the
// market floor scaled by their own aggressiveness.
const (
	participationChance = 0.8
	decayFactor         = 0.02
)

// DefaultStrategy is the floor-clamped random decay used by the demo: with
// 80% probability the vendor targets currentLowest*(1-U*0.02*aggressiveness)
// and never goes below its minimum acceptable price.
func DefaultStrategy(v *model.Vendor, currentLowest float64, rng *rand.Rand) (float64, bool) {
	if rng.Float64() >= participationChance {
		return 0, false
	}
	target := currentLowest * (1 - rng.Float64()*decayFactor*v.Aggressiveness)
	if target < v.MinAcceptable {
		target = v.MinAcceptable
	}
	return target, true
}
