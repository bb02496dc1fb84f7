package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"agentvault/internal/auctionerrors"
	model "agentvault/internal/models"
)

// AuctionStore defines the storage interface for the auction engine.
// The in-memory implementation below is the reference; any durable
// transactional store can sit behind the same interface.
type AuctionStore interface {
	AddSeason(season model.Season) error
	GetSeason(seasonID string) (model.Season, error)
	UpdateSeason(season model.Season) error
	CurrentSeason() (model.Season, error)

	AddItem(item model.AuctionItem) error
	GetItem(itemID string) (model.AuctionItem, error)
	ListItems(seasonID string, tier model.Tier) ([]model.AuctionItem, error)

	// LockItem serializes bid writes per item. The returned unlock func
	// must be called exactly once. Fails with ErrContention when the lock
	// cannot be acquired within timeout.
	LockItem(itemID string, timeout time.Duration) (func(), error)

	UpsertBid(bid model.Bid) (model.Bid, bool, error)
	GetBid(itemID, teamID string) (model.Bid, error)
	GetTopBids(itemID string, n int) ([]model.Bid, error)
	GetBidsByItem(itemID string) ([]model.Bid, error)
	GetBidsByTeam(teamID string) ([]model.Bid, error)
	UpdateBidStatus(bidID string, status model.BidStatus) error
	MarkItemSettled(itemID, winningBidID string) (bool, error)

	UpsertTeam(team model.Team) error
	GetTeam(teamID string) (model.Team, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore
type MemoryStore struct {
	mu              sync.RWMutex
	seasons         map[string]model.Season          // key: seasonID
	currentSeasonID string                           // latest scheduled season
	items           map[string]model.AuctionItem     // key: itemID
	bids            map[string]map[string]*model.Bid // key: itemID -> teamID -> bid
	bidsByID        map[string]*model.Bid            // key: bidID
	teams           map[string]model.Team            // key: teamID

	lockMu    sync.Mutex
	itemLocks map[string]chan struct{} // per-item semaphore, capacity 1
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		seasons:   make(map[string]model.Season),
		items:     make(map[string]model.AuctionItem),
		bids:      make(map[string]map[string]*model.Bid),
		bidsByID:  make(map[string]*model.Bid),
		teams:     make(map[string]model.Team),
		itemLocks: make(map[string]chan struct{}),
	}
}

// AddSeason stores a new season and makes it the current one
func (s *MemoryStore) AddSeason(season model.Season) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seasons[season.SeasonID] = season
	s.currentSeasonID = season.SeasonID
	return nil
}

// GetSeason returns a season by ID
func (s *MemoryStore) GetSeason(seasonID string) (model.Season, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	season, ok := s.seasons[seasonID]
	if !ok {
		return model.Season{}, fmt.Errorf("get season %s: %w", seasonID, auctionerrors.ErrSeasonNotFound)
	}
	return season, nil
}

// UpdateSeason overwrites an existing season row
func (s *MemoryStore) UpdateSeason(season model.Season) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seasons[season.SeasonID]; !ok {
		return fmt.Errorf("update season %s: %w", season.SeasonID, auctionerrors.ErrSeasonNotFound)
	}
	s.seasons[season.SeasonID] = season
	return nil
}

// CurrentSeason returns the most recently scheduled season
func (s *MemoryStore) CurrentSeason() (model.Season, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentSeasonID == "" {
		return model.Season{}, fmt.Errorf("no current season: %w", auctionerrors.ErrSeasonNotFound)
	}
	return s.seasons[s.currentSeasonID], nil
}

// AddItem stores an auction item for its season. The rotation is frozen
// once the season leaves Dormant.
func (s *MemoryStore) AddItem(item model.AuctionItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	season, ok := s.seasons[item.SeasonID]
	if !ok {
		return fmt.Errorf("add item %s: %w", item.ItemID, auctionerrors.ErrSeasonNotFound)
	}
	if season.Phase != model.PhaseDormant {
		return fmt.Errorf("add item %s to %s season %s: %w",
			item.ItemID, season.Phase, season.SeasonID, auctionerrors.ErrItemsImmutableWhenLive)
	}
	s.items[item.ItemID] = item
	return nil
}

// GetItem returns an item by ID
func (s *MemoryStore) GetItem(itemID string) (model.AuctionItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return item, nil
}

// ListItems returns a season's items ordered by rotation position,
// optionally filtered by tier. Tier "" means no filter.
func (s *MemoryStore) ListItems(seasonID string, tier model.Tier) ([]model.AuctionItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.seasons[seasonID]; !ok {
		return nil, fmt.Errorf("list items for season %s: %w", seasonID, auctionerrors.ErrSeasonNotFound)
	}

	items := make([]model.AuctionItem, 0, len(s.items))
	for _, item := range s.items {
		if item.SeasonID != seasonID {
			continue
		}
		if tier != "" && item.Tier != tier {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].PositionInRotation < items[j].PositionInRotation
	})
	return items, nil
}

// LockItem acquires the per-item write lock with a bounded wait.
func (s *MemoryStore) LockItem(itemID string, timeout time.Duration) (func(), error) {
	s.lockMu.Lock()
	sem, ok := s.itemLocks[itemID]
	if !ok {
		sem = make(chan struct{}, 1)
		s.itemLocks[itemID] = sem
	}
	s.lockMu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case sem <- struct{}{}:
		return func() { <-sem }, nil
	case <-timer.C:
		return nil, fmt.Errorf("lock item %s: %w", itemID, auctionerrors.ErrContention)
	}
}

// UpsertBid inserts a new bid or edits the existing (item, team) bid in
// place. Returns the stored bid and whether a new row was created. The
// item's computed fields (top bid, top team, bid count) are updated in the
// same critical section.
func (s *MemoryStore) UpsertBid(bid model.Bid) (model.Bid, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[bid.ItemID]
	if !ok {
		return model.Bid{}, false, fmt.Errorf("upsert bid for item %s: %w", bid.ItemID, auctionerrors.ErrItemNotFound)
	}
	if item.Settled {
		// A settled item is frozen; a late write here would carry a
		// reservation settlement can no longer resolve.
		return model.Bid{}, false, fmt.Errorf("upsert bid for settled item %s: %w", bid.ItemID, auctionerrors.ErrAuctionNotLive)
	}

	itemBids, ok := s.bids[bid.ItemID]
	if !ok {
		itemBids = make(map[string]*model.Bid)
		s.bids[bid.ItemID] = itemBids
	}

	existing, edit := itemBids[bid.TeamID]
	if edit {
		// Edit in place: identity, PlacedAt and bid count are unchanged.
		existing.Amount = bid.Amount
		existing.Message = bid.Message
		existing.UpdatedAt = bid.UpdatedAt
		bid = *existing
	} else {
		stored := bid
		itemBids[bid.TeamID] = &stored
		s.bidsByID[bid.BidID] = &stored
		item.BidCount++
	}

	if bid.Amount > item.CurrentTopBid {
		item.CurrentTopBid = bid.Amount
		item.TopTeamID = bid.TeamID
	}
	s.items[item.ItemID] = item

	return bid, !edit, nil
}

// GetBid returns the bid a team holds on an item, if any
func (s *MemoryStore) GetBid(itemID, teamID string) (model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if bid, ok := s.bids[itemID][teamID]; ok {
		return *bid, nil
	}
	return model.Bid{}, fmt.Errorf("get bid for item %s team %s: %w", itemID, teamID, auctionerrors.ErrNoBids)
}

// GetTopBids returns up to n bids for an item ordered by amount desc,
// placed_at asc. n <= 0 returns all bids.
func (s *MemoryStore) GetTopBids(itemID string, n int) ([]model.Bid, error) {
	bids, err := s.GetBidsByItem(itemID)
	if err != nil {
		return nil, err
	}
	if n > 0 && len(bids) > n {
		bids = bids[:n]
	}
	return bids, nil
}

// GetBidsByItem returns all bids for an item ordered by amount desc,
// placed_at asc, team asc.
func (s *MemoryStore) GetBidsByItem(itemID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	itemBids, ok := s.bids[itemID]
	if !ok || len(itemBids) == 0 {
		return nil, fmt.Errorf("get bids for item %s: %w", itemID, auctionerrors.ErrNoBids)
	}

	bids := make([]model.Bid, 0, len(itemBids))
	for _, b := range itemBids {
		bids = append(bids, *b)
	}
	sortBids(bids)
	return bids, nil
}

// GetBidsByTeam returns all bids a team holds across items
func (s *MemoryStore) GetBidsByTeam(teamID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bids []model.Bid
	for _, itemBids := range s.bids {
		if b, ok := itemBids[teamID]; ok {
			bids = append(bids, *b)
		}
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].PlacedAt.Before(bids[j].PlacedAt) })
	return bids, nil
}

// UpdateBidStatus marks a bid won or lost during settlement
func (s *MemoryStore) UpdateBidStatus(bidID string, status model.BidStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bid, ok := s.bidsByID[bidID]
	if !ok {
		return fmt.Errorf("update status of bid %s: %w", bidID, auctionerrors.ErrNoBids)
	}
	bid.Status = status
	return nil
}

// MarkItemSettled sets the per-item settlement flag. Returns false when the
// item was already settled, which makes settlement re-runs no-ops per item.
func (s *MemoryStore) MarkItemSettled(itemID, winningBidID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return false, fmt.Errorf("mark item %s settled: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if item.Settled {
		return false, nil
	}
	item.Settled = true
	item.WinningBidID = winningBidID
	s.items[itemID] = item
	return true, nil
}

// UpsertTeam creates or replaces a team snapshot
func (s *MemoryStore) UpsertTeam(team model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.TeamID] = team
	return nil
}

// GetTeam returns a team by ID
func (s *MemoryStore) GetTeam(teamID string) (model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teams[teamID]
	if !ok {
		return model.Team{}, fmt.Errorf("get team %s: %w", teamID, auctionerrors.ErrTeamNotFound)
	}
	return team, nil
}

// sortBids orders by amount desc, placed_at asc, team asc. The team key
// makes the order total so settlement stays deterministic even on data
// that somehow carries equal amounts and timestamps.
func sortBids(bids []model.Bid) {
	sort.Slice(bids, func(i, j int) bool {
		if bids[i].Amount != bids[j].Amount {
			return bids[i].Amount > bids[j].Amount
		}
		if !bids[i].PlacedAt.Equal(bids[j].PlacedAt) {
			return bids[i].PlacedAt.Before(bids[j].PlacedAt)
		}
		return bids[i].TeamID < bids[j].TeamID
	})
}
