package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"procurv/internal/auctionerrors"
	model "procurv/internal/models"
	"procurv/utils"
)

// AuctionStore defines keyed access to auction records. View and Update run
// the supplied function while holding the store lock, so callbacks see a
// consistent record and round ticks never interleave with reads.
type AuctionStore interface {
	Create(req model.Requirements, interval time.Duration, maxRounds int) string
	View(auctionID string, fn func(*model.Auction) error) error
	Update(auctionID string, fn func(*model.Auction) error) error
	Delete(auctionID string)
	Len() int
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore.
// Retention is bounded: once capacity is reached the oldest ended auction is
// evicted (oldest draft if none has ended), and a janitor drops ended
// auctions older than the TTL.
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[string]*model.Auction // key: auctionID
	capacity int
	ttl      time.Duration
	done     chan struct{}
	closeOne sync.Once
}

// NewMemoryStore creates a new in-memory store and starts its TTL janitor
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		auctions: make(map[string]*model.Auction),
		capacity: capacity,
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	if ttl > 0 {
		go s.janitor()
	}
	return s
}

// Create allocates a new draft auction and returns its id
func (s *MemoryStore) Create(req model.Requirements, interval time.Duration, maxRounds int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.auctions) >= s.capacity {
		s.evictLocked()
	}

	a := &model.Auction{
		AuctionID:     utils.GenerateID(),
		Requirements:  req,
		Status:        model.StatusDraft,
		Round:         0,
		RoundInterval: interval,
		MaxRounds:     maxRounds,
		CreatedAt:     time.Now().UTC(),
		Vendors:       []*model.Vendor{},
		Bids:          []model.Bid{},
		Events:        []model.AuctionEvent{},
	}
	s.auctions[a.AuctionID] = a
	return a.AuctionID
}

// View runs fn against the auction under a read lock
func (s *MemoryStore) View(auctionID string, fn func(*model.Auction) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("view auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return fn(a)
}

// Update runs fn against the auction under the write lock
func (s *MemoryStore) Update(auctionID string, fn func(*model.Auction) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("update auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return fn(a)
}

// Delete removes an auction; unknown ids are ignored
func (s *MemoryStore) Delete(auctionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.auctions, auctionID)
}

// Len returns the number of retained auctions
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.auctions)
}

// Close stops the TTL janitor
func (s *MemoryStore) Close() {
	s.closeOne.Do(func() { close(s.done) })
}

// evictLocked drops one auction to make room: the oldest ended one, or the
// oldest draft if nothing has ended yet. Live auctions are never evicted.
func (s *MemoryStore) evictLocked() {
	candidates := make([]*model.Auction, 0, len(s.auctions))
	for _, a := range s.auctions {
		if a.Status == model.StatusEnded || a.Status == model.StatusDraft {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return
	}
	sort.Slice(candidates, func(i, j int) bool {
		// ended before draft, then oldest first
		if candidates[i].Status != candidates[j].Status {
			return candidates[i].Status == model.StatusEnded
		}
		return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
	})
	victim := candidates[0]
	delete(s.auctions, victim.AuctionID)
	utils.Warn("store: capacity reached, auction evicted", map[string]any{
		"auction_id": victim.AuctionID,
		"status":     string(victim.Status),
	})
}

// janitor periodically drops ended auctions older than the TTL
func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(s.ttl / 4)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep(time.Now().UTC())
		}
	}
}

func (s *MemoryStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, a := range s.auctions {
		if a.Status != model.StatusEnded || a.EndsAt == nil {
			continue
		}
		if now.Sub(*a.EndsAt) > s.ttl {
			delete(s.auctions, id)
		}
	}
}
