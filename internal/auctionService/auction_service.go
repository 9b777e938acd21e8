package auction

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"procurv/internal/auctionerrors"
	"procurv/internal/config"
	"procurv/internal/engine"
	model "procurv/internal/models"
	"procurv/internal/purchaseorder"
	"procurv/internal/store"
	"procurv/internal/vendors"
)

// AuctionService defines the business logic around auction lifecycle
type AuctionService struct {
	store  store.AuctionStore
	engine *engine.Engine
	cfg    config.AuctionConfig

	rngMu sync.Mutex
	rng   *rand.Rand // vendor selection and floor derivation draws
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(st store.AuctionStore, eng *engine.Engine, cfg config.AuctionConfig) *AuctionService {
	return NewSeededAuctionService(st, eng, cfg, time.Now().UnixNano())
}

// NewSeededAuctionService creates a service with a deterministic random
// source for vendor sampling
func NewSeededAuctionService(st store.AuctionStore, eng *engine.Engine, cfg config.AuctionConfig, seed int64) *AuctionService {
	return &AuctionService{
		store:  st,
		engine: eng,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// CreateAuction validates buyer requirements and allocates a draft auction
func (s *AuctionService) CreateAuction(req model.Requirements) (string, error) {
	if err := validateRequirements(req); err != nil {
		return "", err
	}
	id := s.store.Create(req, s.cfg.RoundInterval, s.cfg.MaxRounds)
	return id, nil
}

// validateRequirements checks the minimum fields an auction needs
func validateRequirements(req model.Requirements) error {
	if strings.TrimSpace(req.Item) == "" {
		return fmt.Errorf("service: %w - missing item", auctionerrors.ErrInvalidRequirements)
	}
	if req.Quantity <= 0 {
		return fmt.Errorf("service: %w - non-positive quantity", auctionerrors.ErrInvalidRequirements)
	}
	if req.BudgetCeiling() <= 0 {
		return fmt.Errorf("service: %w - missing budget", auctionerrors.ErrInvalidRequirements)
	}
	if req.DeliveryDays <= 0 {
		return fmt.Errorf("service: %w - missing delivery window", auctionerrors.ErrInvalidRequirements)
	}
	return nil
}

// StartAuction resolves a vendor pool (uploaded rows when supplied, catalog
// sample otherwise) and starts the round loop
func (s *AuctionService) StartAuction(auctionID string, rows []map[string]any, vendorCount int) (StartView, error) {
	if auctionID == "" {
		return StartView{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidRequirements)
	}
	if vendorCount <= 0 {
		vendorCount = s.cfg.DefaultVendorCount
	}

	var req model.Requirements
	if err := s.store.View(auctionID, func(a *model.Auction) error {
		req = a.Requirements
		return nil
	}); err != nil {
		return StartView{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	var candidates []model.VendorCandidate
	var err error
	s.rngMu.Lock()
	if len(rows) > 0 {
		candidates, err = vendors.Normalize(rows, req, s.rng)
	} else {
		candidates = vendors.Select(req, vendorCount, s.rng)
	}
	s.rngMu.Unlock()
	if err != nil {
		return StartView{}, fmt.Errorf("service: failed to resolve vendors for auction %s: %w", auctionID, err)
	}

	if err := s.engine.Start(auctionID, candidates); err != nil {
		return StartView{}, fmt.Errorf("service: failed to start auction %s: %w", auctionID, err)
	}

	view := StartView{AuctionID: auctionID, VendorCount: len(candidates)}
	for _, c := range candidates {
		view.Vendors = append(view.Vendors, VendorSummary{ID: c.ID, Name: c.Name})
	}
	return view, nil
}

// GetStatus projects the live view of an auction: current leader recomputed
// fresh, per-vendor trimmed bid history, and the most recent feed events
func (s *AuctionService) GetStatus(auctionID string) (StatusView, error) {
	if auctionID == "" {
		return StatusView{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidRequirements)
	}

	var view StatusView
	err := s.store.View(auctionID, func(a *model.Auction) error {
		view = StatusView{
			AuctionID: a.AuctionID,
			Status:    a.Status,
			Round:     a.Round,
			TotalBids: len(a.Bids),
			StartedAt: a.StartedAt,
			EndsAt:    a.EndsAt,
			Vendors:   make([]VendorStatusView, 0, len(a.Vendors)),
			Events:    lastEvents(a.Events, recentEventCount),
		}

		if leader := engine.CurrentLeader(a); leader != nil {
			view.Leader = &LeaderView{
				ID:          leader.VendorID,
				Name:        leader.Name,
				Bid:         leader.CurrentBid,
				IsCompliant: leader.IsCompliant,
			}
		}

		for _, v := range a.Vendors {
			view.Vendors = append(view.Vendors, VendorStatusView{
				ID:              v.VendorID,
				Name:            v.Name,
				CurrentBid:      v.CurrentBid,
				IsCompliant:     v.IsCompliant,
				ComplianceScore: v.ComplianceScore,
				BidHistory:      lastBids(v.BidHistory, sparklineBidCount),
			})
		}
		return nil
	})
	if err != nil {
		return StatusView{}, fmt.Errorf("service: failed to get status for auction %s: %w", auctionID, err)
	}
	return view, nil
}

// GetResults projects the terminal view of an ended auction, including the
// selection rationale and a synthesized purchase-order record
func (s *AuctionService) GetResults(auctionID string) (ResultsView, error) {
	if auctionID == "" {
		return ResultsView{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidRequirements)
	}

	var view ResultsView
	err := s.store.View(auctionID, func(a *model.Auction) error {
		if a.Status != model.StatusEnded {
			return fmt.Errorf("auction %s status is %s: %w", auctionID, a.Status, auctionerrors.ErrAuctionNotEnded)
		}

		winner := engine.SelectWinner(a.Vendors)
		if winner == nil {
			return fmt.Errorf("auction %s has no vendors: %w", auctionID, auctionerrors.ErrNoVendors)
		}

		view = ResultsView{
			Winner: WinnerView{
				ID:              winner.VendorID,
				Name:            winner.Name,
				FinalBid:        winner.CurrentBid,
				IsCompliant:     winner.IsCompliant,
				WarrantyMonths:  winner.WarrantyMonths,
				MaxDeliveryDays: winner.MaxDeliveryDays,
			},
			Rationale: rationale(winner, a),
			Summary: ResultsSummary{
				TotalRounds: a.Round,
				TotalBids:   len(a.Bids),
			},
			PO: buildPO(winner, a),
		}
		if a.StartedAt != nil && a.EndsAt != nil {
			view.Summary.Duration = a.EndsAt.Sub(*a.StartedAt)
		}
		return nil
	})
	if err != nil {
		return ResultsView{}, fmt.Errorf("service: failed to get results for auction %s: %w", auctionID, err)
	}
	return view, nil
}

// GetPurchaseOrderHTML renders the downloadable purchase-order document for
// an ended auction
func (s *AuctionService) GetPurchaseOrderHTML(auctionID string) (string, error) {
	results, err := s.GetResults(auctionID)
	if err != nil {
		return "", err
	}
	doc, err := purchaseorder.RenderHTML(results.PO)
	if err != nil {
		return "", fmt.Errorf("service: failed to render purchase order for auction %s: %w", auctionID, err)
	}
	return doc, nil
}

// rationale explains the winner selection in buyer-facing prose
func rationale(winner *model.Vendor, a *model.Auction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s won the auction with a final bid of $%.2f. ", winner.Name, winner.CurrentBid)
	if winner.IsCompliant {
		fmt.Fprintf(&b, "The vendor meets all compliance requirements including warranty (%d months) and delivery (%d days). ",
			winner.WarrantyMonths, winner.MaxDeliveryDays)
	} else {
		b.WriteString("Note: This vendor has some compliance issues but was selected based on price and overall score. ")
	}
	fmt.Fprintf(&b, "The auction completed in %d rounds with %d total bids, demonstrating competitive market dynamics.",
		a.Round, len(a.Bids))
	return b.String()
}

func buildPO(winner *model.Vendor, a *model.Auction) purchaseorder.PODetails {
	now := time.Now().UTC()
	return purchaseorder.PODetails{
		PONumber:       purchaseorder.GeneratePONumber(),
		BuyerName:      "Demo Company",
		BuyerEmail:     "procurement@democompany.com",
		VendorName:     winner.Name,
		VendorEmail:    fmt.Sprintf("%s@vendor.com", strings.ToLower(strings.ReplaceAll(winner.Name, " ", ""))),
		Item:           a.Requirements.Item,
		Quantity:       a.Requirements.Quantity,
		UnitPrice:      winner.CurrentBid,
		TotalPrice:     winner.CurrentBid * float64(a.Requirements.Quantity),
		DeliveryDays:   winner.MaxDeliveryDays,
		WarrantyMonths: winner.WarrantyMonths,
		OrderDate:      now,
		DeliveryDate:   now.AddDate(0, 0, winner.MaxDeliveryDays),
	}
}

// Projection trimming limits for the polling UI
const (
	recentEventCount  = 10
	sparklineBidCount = 5
)

func lastEvents(events []model.AuctionEvent, n int) []model.AuctionEvent {
	if len(events) <= n {
		return append([]model.AuctionEvent{}, events...)
	}
	return append([]model.AuctionEvent{}, events[len(events)-n:]...)
}

func lastBids(history []float64, n int) []float64 {
	if len(history) <= n {
		return append([]float64{}, history...)
	}
	return append([]float64{}, history[len(history)-n:]...)
}
