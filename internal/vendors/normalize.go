package vendors

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"procurv/internal/auctionerrors"
	model "procurv/internal/models"
	"procurv/utils"
)

// Default values applied to upload rows that omit optional fields
const (
	defaultAggressiveness = 1.0
	floorRatioMin         = 0.8
	floorRatioMax         = 0.9
)

// Upload rows arrive as loose JSON with several aliases per field, so each
// canonical field lists the accepted keys in priority order.
var (
	nameAliases       = []string{"name", "supplier_name", "vendor", "vendor_name", "supplier"}
	priceAliases      = []string{"base_price", "basePrice", "price", "amount", "unit_price"}
	floorAliases      = []string{"min_acceptable", "minAcceptable", "floor", "min_price"}
	aggressionAliases = []string{"aggressiveness", "aggression"}
	warrantyAliases   = []string{"warranty_months", "warrantyMonths", "warranty"}
	deliveryAliases   = []string{"max_delivery_days", "maxDeliveryDays", "delivery_days", "deliveryDays", "delivery"}
	idAliases         = []string{"id", "vendor_id", "supplier_id"}
)

// Normalize converts caller-supplied vendor rows into canonical candidates.
// A row needs at least a name and a positive base price; every optional field
// gets a defined default. The bidding floor, when absent, is derived as
// 80-90% of the base price, which keeps minAcceptable < basePrice.
func Normalize(rows []map[string]any, req model.Requirements, rng *rand.Rand) ([]model.VendorCandidate, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("normalize vendor rows: %w", auctionerrors.ErrNoVendors)
	}

	out := make([]model.VendorCandidate, 0, len(rows))
	for i, row := range rows {
		name := stringField(row, nameAliases...)
		price, priceOK := floatField(row, priceAliases...)
		if name == "" || !priceOK || price <= 0 {
			return nil, fmt.Errorf("normalize vendor row %d: missing name or positive price: %w", i, auctionerrors.ErrInvalidVendorRow)
		}

		c := model.VendorCandidate{
			Name:      strings.TrimSpace(name),
			BasePrice: price,
		}

		if id := stringField(row, idAliases...); id != "" {
			c.ID = id
		} else {
			c.ID = utils.GenerateID()
		}

		if floor, ok := floatField(row, floorAliases...); ok && floor > 0 && floor < price {
			c.MinAcceptable = floor
		} else {
			ratio := floorRatioMin + rng.Float64()*(floorRatioMax-floorRatioMin)
			c.MinAcceptable = price * ratio
		}

		if agg, ok := floatField(row, aggressionAliases...); ok && agg > 0 {
			c.Aggressiveness = agg
		} else {
			c.Aggressiveness = defaultAggressiveness
		}

		if warranty, ok := intField(row, warrantyAliases...); ok && warranty >= 0 {
			c.WarrantyMonths = warranty
		}

		if delivery, ok := intField(row, deliveryAliases...); ok && delivery > 0 {
			c.MaxDeliveryDays = delivery
		} else {
			// assume the vendor can meet the buyer's window when unstated
			c.MaxDeliveryDays = req.DeliveryDays
		}

		out = append(out, c)
	}
	return out, nil
}

func stringField(row map[string]any, aliases ...string) string {
	for _, key := range aliases {
		if v, ok := row[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return ""
}

func floatField(row map[string]any, aliases ...string) (float64, bool) {
	for _, key := range aliases {
		v, ok := row[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, true
		case int:
			return float64(n), true
		case string:
			cleaned := strings.TrimSpace(strings.TrimPrefix(n, "$"))
			cleaned = strings.ReplaceAll(cleaned, ",", "")
			if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

func intField(row map[string]any, aliases ...string) (int, bool) {
	f, ok := floatField(row, aliases...)
	if !ok {
		return 0, false
	}
	return int(f), true
}
