package auction

import (
	"time"

	model "procurv/internal/models"
	"procurv/internal/purchaseorder"
)

// Read-only projections of auction state for external consumption. These are
// derived fresh on every call and never cached.

type VendorSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type StartView struct {
	AuctionID   string          `json:"auction_id"`
	VendorCount int             `json:"vendor_count"`
	Vendors     []VendorSummary `json:"vendors"`
}

type LeaderView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Bid         float64 `json:"bid"`
	IsCompliant bool    `json:"is_compliant"`
}

type VendorStatusView struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CurrentBid      float64   `json:"current_bid"`
	IsCompliant     bool      `json:"is_compliant"`
	ComplianceScore int       `json:"compliance_score"`
	BidHistory      []float64 `json:"bid_history"` // last 5, for sparkline display
}

type StatusView struct {
	AuctionID string               `json:"auction_id"`
	Status    model.AuctionStatus  `json:"status"`
	Round     int                  `json:"round"`
	Leader    *LeaderView          `json:"leader"`
	Vendors   []VendorStatusView   `json:"vendors"`
	Events    []model.AuctionEvent `json:"events"` // last 10
	TotalBids int                  `json:"total_bids"`
	StartedAt *time.Time           `json:"started_at,omitempty"`
	EndsAt    *time.Time           `json:"ends_at,omitempty"`
}

type WinnerView struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	FinalBid        float64 `json:"final_bid"`
	IsCompliant     bool    `json:"is_compliant"`
	WarrantyMonths  int     `json:"warranty_months"`
	MaxDeliveryDays int     `json:"max_delivery_days"`
}

type ResultsSummary struct {
	TotalRounds int           `json:"total_rounds"`
	TotalBids   int           `json:"total_bids"`
	Duration    time.Duration `json:"duration"`
}

type ResultsView struct {
	Winner    WinnerView              `json:"winner"`
	Rationale string                  `json:"rationale"`
	Summary   ResultsSummary          `json:"auction_summary"`
	PO        purchaseorder.PODetails `json:"po_details"`
}
