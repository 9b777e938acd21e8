package helpers

// Request DTOs
type CreateAuctionRequest struct {
	Item           string  `json:"item" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required,gt=0"`
	Budget         float64 `json:"budget"`
	MaxBudget      float64 `json:"max_budget"`
	DeliveryDays   int     `json:"delivery_days" binding:"required,gt=0"`
	WarrantyMonths int     `json:"warranty_months"`
}

type StartAuctionRequest struct {
	// Vendors carries caller-supplied rows (loose JSON, aliased fields);
	// when empty the catalog is sampled instead.
	Vendors     []map[string]any `json:"vendors"`
	VendorCount int              `json:"vendor_count"`
}

type CreateAuctionResponse struct {
	AuctionID string               `json:"auction_id"`
	Summary   CreateAuctionSummary `json:"summary"`
}

type CreateAuctionSummary struct {
	Item           string  `json:"item"`
	Quantity       int     `json:"quantity"`
	Budget         float64 `json:"budget"`
	DeliveryDays   int     `json:"delivery_days"`
	WarrantyMonths int     `json:"warranty_months,omitempty"`
}
