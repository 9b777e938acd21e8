package engine

import model "procurv/internal/models"

// Compliance score weights. The score never gates participation on its own;
// it only weights selection when no vendor is fully compliant.
const (
	warrantyPoints = 10
	deliveryPoints = 8
)

// CheckCompliance reports whether a candidate satisfies the buyer's stated
// constraints: the warranty condition (vacuously true when the buyer asked
// for none) and the delivery window. Computed once at auction start and
// never revisited mid-auction.
func CheckCompliance(c model.VendorCandidate, req model.Requirements) bool {
	warrantyOK := req.WarrantyMonths == 0 || c.WarrantyMonths >= req.WarrantyMonths
	deliveryOK := c.MaxDeliveryDays <= req.DeliveryDays
	return warrantyOK && deliveryOK
}

// ComplianceScore computes the additive rubric: +10 when the warranty
// condition holds, +8 when the delivery condition holds.
func ComplianceScore(c model.VendorCandidate, req model.Requirements) int {
	score := 0
	if req.WarrantyMonths == 0 || c.WarrantyMonths >= req.WarrantyMonths {
		score += warrantyPoints
	}
	if c.MaxDeliveryDays <= req.DeliveryDays {
		score += deliveryPoints
	}
	return score
}
