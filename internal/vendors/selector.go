package vendors

import (
	"math/rand"

	model "procurv/internal/models"
)

// Eligibility tolerances: a candidate stays in the pool when priced up to
// 20% over budget and delivering up to 50% past the requested window.
const (
	budgetTolerance   = 1.2
	deliveryTolerance = 1.5
)

// Select filters the built-in catalog for rough eligibility against the
// buyer's requirements, then randomly samples down to count. When fewer than
// count candidates survive filtering, the whole catalog is sampled instead,
// so Select always returns at least one candidate.
func Select(req model.Requirements, count int, rng *rand.Rand) []model.VendorCandidate {
	if count < 1 {
		count = 1
	}

	catalog := Catalog()
	eligible := make([]model.VendorCandidate, 0, len(catalog))
	budget := req.BudgetCeiling()
	for _, c := range catalog {
		budgetOK := budget <= 0 || c.BasePrice <= budget*budgetTolerance
		deliveryOK := c.MaxDeliveryDays <= int(float64(req.DeliveryDays)*deliveryTolerance)
		if budgetOK && deliveryOK {
			eligible = append(eligible, c)
		}
	}

	pool := eligible
	if len(pool) < count {
		pool = catalog
	}

	shuffled := append([]model.VendorCandidate(nil), pool...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
