package vendors

import model "procurv/internal/models"

// Catalog returns the built-in synthetic supplier pool used when the caller
// does not upload a vendor list. Prices are per-unit.
func Catalog() []model.VendorCandidate {
	return []model.VendorCandidate{
		{ID: "v-apex", Name: "Apex Office Supply", BasePrice: 118, MinAcceptable: 96, Aggressiveness: 1.4, WarrantyMonths: 12, MaxDeliveryDays: 21},
		{ID: "v-borealis", Name: "Borealis Trading Co", BasePrice: 112, MinAcceptable: 99, Aggressiveness: 0.9, WarrantyMonths: 24, MaxDeliveryDays: 30},
		{ID: "v-cascade", Name: "Cascade Industrial", BasePrice: 125, MinAcceptable: 101, Aggressiveness: 1.1, WarrantyMonths: 18, MaxDeliveryDays: 14},
		{ID: "v-delta", Name: "Delta Procurement Partners", BasePrice: 109, MinAcceptable: 92, Aggressiveness: 1.6, WarrantyMonths: 6, MaxDeliveryDays: 25},
		{ID: "v-everline", Name: "Everline Wholesale", BasePrice: 131, MinAcceptable: 104, Aggressiveness: 0.7, WarrantyMonths: 36, MaxDeliveryDays: 40},
		{ID: "v-fulcrum", Name: "Fulcrum Supplies", BasePrice: 115, MinAcceptable: 97, Aggressiveness: 1.2, WarrantyMonths: 12, MaxDeliveryDays: 18},
		{ID: "v-granite", Name: "Granite Peak Logistics", BasePrice: 122, MinAcceptable: 100, Aggressiveness: 1.0, WarrantyMonths: 12, MaxDeliveryDays: 35},
		{ID: "v-horizon", Name: "Horizon Commercial Group", BasePrice: 120, MinAcceptable: 95, Aggressiveness: 1.3, WarrantyMonths: 24, MaxDeliveryDays: 28},
	}
}
