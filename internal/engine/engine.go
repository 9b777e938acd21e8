package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"procurv/internal/auctionerrors"
	model "procurv/internal/models"
	"procurv/internal/store"
	"procurv/utils"
)

// monetaryPrecision rounds bid comparisons to whole cents
const monetaryPrecision int32 = 2

// Engine drives live auctions: it materializes vendor state on start, runs
// one cancellable round ticker per auction, and finalizes the winner once
// the round limit is reached. All auction mutation happens inside
// store.Update callbacks, so ticks and reads never interleave.
type Engine struct {
	store    store.AuctionStore
	strategy Strategy

	mu     sync.Mutex
	seeds  *rand.Rand               // source for per-auction rngs
	timers map[string]chan struct{} // auctionID -> cancel signal
}

// NewEngine creates an engine with the default bidding strategy and a
// time-seeded random source
func NewEngine(st store.AuctionStore) *Engine {
	return NewDeterministicEngine(st, DefaultStrategy, time.Now().UnixNano())
}

// NewDeterministicEngine creates an engine with an explicit strategy and
// seed, for reproducible simulations
func NewDeterministicEngine(st store.AuctionStore, strategy Strategy, seed int64) *Engine {
	return &Engine{
		store:    st,
		strategy: strategy,
		seeds:    rand.New(rand.NewSource(seed)),
		timers:   make(map[string]chan struct{}),
	}
}

// Start transitions a draft auction to live: vendor candidates become runtime
// bidders opening at their base price, compliance is computed once from the
// buyer's requirements, a round-zero bid is logged per vendor, and the round
// ticker begins. Starting a non-draft auction is rejected.
func (e *Engine) Start(auctionID string, candidates []model.VendorCandidate) error {
	if len(candidates) == 0 {
		return fmt.Errorf("engine: start auction %s: %w", auctionID, auctionerrors.ErrNoVendors)
	}

	var interval time.Duration
	err := e.store.Update(auctionID, func(a *model.Auction) error {
		if a.Status != model.StatusDraft {
			return fmt.Errorf("engine: start auction %s in status %s: %w", auctionID, a.Status, auctionerrors.ErrAlreadyStarted)
		}

		now := time.Now().UTC()
		endsAt := now.Add(time.Duration(a.MaxRounds) * a.RoundInterval)
		a.Status = model.StatusLive
		a.StartedAt = &now
		a.EndsAt = &endsAt
		interval = a.RoundInterval

		a.Vendors = make([]*model.Vendor, 0, len(candidates))
		for _, c := range candidates {
			v := &model.Vendor{
				VendorID:        c.ID,
				Name:            c.Name,
				BasePrice:       c.BasePrice,
				MinAcceptable:   c.MinAcceptable,
				Aggressiveness:  c.Aggressiveness,
				WarrantyMonths:  c.WarrantyMonths,
				MaxDeliveryDays: c.MaxDeliveryDays,
				CurrentBid:      c.BasePrice,
				BidHistory:      []float64{c.BasePrice},
				IsCompliant:     CheckCompliance(c, a.Requirements),
				ComplianceScore: ComplianceScore(c, a.Requirements),
			}
			a.Vendors = append(a.Vendors, v)

			a.Bids = append(a.Bids, model.Bid{
				VendorID:    v.VendorID,
				Amount:      v.CurrentBid,
				Round:       0,
				Timestamp:   now,
				IsCompliant: v.IsCompliant,
			})
			a.Events = append(a.Events, model.AuctionEvent{
				Type:      model.EventVendorJoined,
				VendorID:  v.VendorID,
				Amount:    v.CurrentBid,
				Timestamp: now,
				Message:   fmt.Sprintf("%s joined at $%.2f", v.Name, v.CurrentBid),
			})
		}
		return nil
	})
	if err != nil {
		return err
	}

	e.mu.Lock()
	done := make(chan struct{})
	e.timers[auctionID] = done
	rng := rand.New(rand.NewSource(e.seeds.Int63()))
	e.mu.Unlock()

	go e.run(auctionID, interval, rng, done)

	utils.Info("auction started", map[string]any{
		"auction_id":   auctionID,
		"vendor_count": len(candidates),
	})
	return nil
}

// run is the per-auction round loop; it exits on completion or cancellation
func (e *Engine) run(auctionID string, interval time.Duration, rng *rand.Rand, done chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer e.clearTimer(auctionID)

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			finished, err := e.Tick(auctionID, rng)
			if err != nil {
				utils.Error("engine: round tick failed", map[string]any{
					"auction_id": auctionID,
					"error":      err.Error(),
				})
				return
			}
			if finished {
				return
			}
		}
	}
}

// Tick advances an auction by exactly one round and reports whether the
// auction finished. A tick on a non-live auction is a no-op that reports
// finished, which also cancels the timer.
func (e *Engine) Tick(auctionID string, rng *rand.Rand) (bool, error) {
	finished := false
	err := e.store.Update(auctionID, func(a *model.Auction) error {
		if a.Status != model.StatusLive {
			finished = true
			return nil
		}

		e.runRound(a, rng)

		if a.Round >= a.MaxRounds {
			e.finalize(a)
			finished = true
		}
		return nil
	})
	return finished, err
}

// runRound executes the per-tick algorithm: every vendor independently gets
// one chance to lower its bid toward the market floor
func (e *Engine) runRound(a *model.Auction, rng *rand.Rand) {
	a.Round++
	now := time.Now().UTC()
	a.Events = append(a.Events, model.AuctionEvent{
		Type:      model.EventRoundStarted,
		Round:     a.Round,
		Timestamp: now,
		Message:   fmt.Sprintf("Round %d started", a.Round),
	})

	currentLowest := a.Vendors[0].CurrentBid
	for _, v := range a.Vendors[1:] {
		if v.CurrentBid < currentLowest {
			currentLowest = v.CurrentBid
		}
	}

	previousLeader := CurrentLeader(a)

	for _, v := range a.Vendors {
		newBid, ok := e.strategy(v, currentLowest, rng)
		if !ok {
			continue
		}
		// only a real improvement is recorded: at least one cent below
		// the vendor's own previous bid
		if !improvesByCent(newBid, v.CurrentBid) {
			continue
		}

		v.CurrentBid = newBid
		v.BidHistory = append(v.BidHistory, newBid)

		ts := time.Now().UTC()
		a.Bids = append(a.Bids, model.Bid{
			VendorID:    v.VendorID,
			Amount:      newBid,
			Round:       a.Round,
			Timestamp:   ts,
			IsCompliant: v.IsCompliant,
		})
		a.Events = append(a.Events, model.AuctionEvent{
			Type:      model.EventBidSubmitted,
			VendorID:  v.VendorID,
			Amount:    newBid,
			Round:     a.Round,
			Timestamp: ts,
			Message:   fmt.Sprintf("%s bid $%.2f", v.Name, newBid),
		})
	}

	newLeader := CurrentLeader(a)
	if newLeader != nil && (previousLeader == nil || newLeader.VendorID != previousLeader.VendorID) {
		a.Events = append(a.Events, model.AuctionEvent{
			Type:      model.EventLeaderChanged,
			VendorID:  newLeader.VendorID,
			Round:     a.Round,
			Timestamp: time.Now().UTC(),
			Message:   fmt.Sprintf("%s is now leading", newLeader.Name),
		})
	}

	a.Events = append(a.Events, model.AuctionEvent{
		Type:      model.EventRoundEnded,
		Round:     a.Round,
		Timestamp: time.Now().UTC(),
		Message:   fmt.Sprintf("Round %d completed", a.Round),
	})
}

// finalize closes the auction under the compliance-first selection rule
func (e *Engine) finalize(a *model.Auction) {
	a.Status = model.StatusEnded

	winner := SelectWinner(a.Vendors)
	if winner == nil {
		return
	}

	a.Events = append(a.Events, model.AuctionEvent{
		Type:      model.EventAuctionFinalized,
		VendorID:  winner.VendorID,
		Amount:    winner.CurrentBid,
		Round:     a.Round,
		Timestamp: time.Now().UTC(),
		Message:   fmt.Sprintf("Auction ended. Winner: %s at $%.2f", winner.Name, winner.CurrentBid),
	})

	utils.Info("auction finalized", map[string]any{
		"auction_id": a.AuctionID,
		"winner_id":  winner.VendorID,
		"amount":     winner.CurrentBid,
	})
}

// Stop cancels a single auction's round timer, if one is running
func (e *Engine) Stop(auctionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if done, ok := e.timers[auctionID]; ok {
		close(done)
		delete(e.timers, auctionID)
	}
}

// Close cancels every running round timer; used on server shutdown
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for id, done := range e.timers {
		close(done)
		delete(e.timers, id)
	}
}

func (e *Engine) clearTimer(auctionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.timers, auctionID)
}

// CurrentLeader returns the vendor with the lowest current bid, ties broken
// by vendor order (first encountered wins). Nil when no vendors exist.
func CurrentLeader(a *model.Auction) *model.Vendor {
	if len(a.Vendors) == 0 {
		return nil
	}
	leader := a.Vendors[0]
	for _, v := range a.Vendors[1:] {
		if v.CurrentBid < leader.CurrentBid {
			leader = v
		}
	}
	return leader
}

// SelectWinner applies the compliance-first rule: the cheapest fully
// compliant vendor wins; with no compliant vendor, the one maximizing
// complianceScore*1000 - currentBid wins, so compliance dominates price.
// This is the single authoritative rule, used by both finalization and the
// results projection.
func SelectWinner(vendors []*model.Vendor) *model.Vendor {
	if len(vendors) == 0 {
		return nil
	}

	var winner *model.Vendor
	for _, v := range vendors {
		if !v.IsCompliant {
			continue
		}
		if winner == nil || v.CurrentBid < winner.CurrentBid {
			winner = v
		}
	}
	if winner != nil {
		return winner
	}

	winner = vendors[0]
	bestScore := weightedScore(winner)
	for _, v := range vendors[1:] {
		if s := weightedScore(v); s > bestScore {
			winner = v
			bestScore = s
		}
	}
	return winner
}

func weightedScore(v *model.Vendor) float64 {
	return float64(v.ComplianceScore)*1000 - v.CurrentBid
}

// improvesByCent reports whether newBid is at least one cent below
// currentBid, compared in decimal to avoid float noise at the boundary
func improvesByCent(newBid, currentBid float64) bool {
	next := decimal.NewFromFloat(newBid).Round(monetaryPrecision)
	cur := decimal.NewFromFloat(currentBid).Round(monetaryPrecision)
	cent := decimal.New(1, -monetaryPrecision)
	return next.LessThanOrEqual(cur.Sub(cent))
}
