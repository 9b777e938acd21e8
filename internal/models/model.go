package models

import "time"

// AuctionStatus is the lifecycle state of an auction
type AuctionStatus string

const (
	StatusDraft AuctionStatus = "draft"
	StatusLive  AuctionStatus = "live"
	StatusEnded AuctionStatus = "ended"
)

// EventType categorizes feed events emitted during an auction
type EventType string

const (
	EventVendorJoined     EventType = "vendor_joined"
	EventBidSubmitted     EventType = "bid_submitted"
	EventLeaderChanged    EventType = "leader_changed"
	EventRoundStarted     EventType = "round_started"
	EventRoundEnded       EventType = "round_ended"
	EventAuctionFinalized EventType = "auction_finalized"
)

// Requirements holds the buyer's structured procurement request
type Requirements struct {
	Item           string  `json:"item"`
	Quantity       int     `json:"quantity"`
	Budget         float64 `json:"budget,omitempty"`
	MaxBudget      float64 `json:"max_budget,omitempty"`
	DeliveryDays   int     `json:"delivery_days"`
	WarrantyMonths int     `json:"warranty_months,omitempty"`
}

// BudgetCeiling returns the effective budget (budget, falling back to max budget)
func (r Requirements) BudgetCeiling() float64 {
	if r.Budget > 0 {
		return r.Budget
	}
	return r.MaxBudget
}

// Vendor is one bidder participating in a single auction
type Vendor struct {
	VendorID        string    `json:"vendor_id"`
	Name            string    `json:"name"`
	BasePrice       float64   `json:"base_price"`
	MinAcceptable   float64   `json:"min_acceptable"`
	Aggressiveness  float64   `json:"aggressiveness"`
	WarrantyMonths  int       `json:"warranty_months"`
	MaxDeliveryDays int       `json:"max_delivery_days"`
	CurrentBid      float64   `json:"current_bid"`
	BidHistory      []float64 `json:"bid_history"`
	IsCompliant     bool      `json:"is_compliant"`
	ComplianceScore int       `json:"compliance_score"`
}

// Bid is one immutable entry in an auction's bid log
type Bid struct {
	VendorID    string    `json:"vendor_id"`
	Amount      float64   `json:"amount"`
	Round       int       `json:"round"`
	Timestamp   time.Time `json:"timestamp"`
	IsCompliant bool      `json:"is_compliant"`
}

// AuctionEvent is one immutable entry in an auction's narration feed
type AuctionEvent struct {
	Type      EventType `json:"type"`
	VendorID  string    `json:"vendor_id,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
	Round     int       `json:"round,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Auction is one procurement event and all of its runtime state
type Auction struct {
	AuctionID     string         `json:"auction_id"`
	Requirements  Requirements   `json:"requirements"`
	Status        AuctionStatus  `json:"status"`
	Round         int            `json:"round"`
	RoundInterval time.Duration  `json:"round_interval"`
	MaxRounds     int            `json:"max_rounds"`
	CreatedAt     time.Time      `json:"created_at"`
	StartedAt     *time.Time     `json:"started_at,omitempty"`
	EndsAt        *time.Time     `json:"ends_at,omitempty"`
	Vendors       []*Vendor      `json:"vendors"`
	Bids          []Bid          `json:"bids"`
	Events        []AuctionEvent `json:"events"`
}

// VendorCandidate is a normalized vendor row before auction-start materialization
type VendorCandidate struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	BasePrice       float64 `json:"base_price"`
	MinAcceptable   float64 `json:"min_acceptable"`
	Aggressiveness  float64 `json:"aggressiveness"`
	WarrantyMonths  int     `json:"warranty_months"`
	MaxDeliveryDays int     `json:"max_delivery_days"`
}
