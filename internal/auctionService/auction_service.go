package auction

import (
	"fmt"
	"time"

	"agentvault/internal/auctionerrors"
	"agentvault/internal/events"
	"agentvault/internal/lifecycle"
	model "agentvault/internal/models"
	"agentvault/internal/qualification"
	"agentvault/internal/repository"
	"agentvault/utils"
)

// DefaultLockTimeout bounds how long a bid request waits on a hot item
// before failing with the retryable Contention error.
const DefaultLockTimeout = 2 * time.Second

// Coins is the slice of the coin ledger the bid path uses.
type Coins interface {
	Credit(teamID string, amount int64, reason string) error
	Reserve(teamID, itemID string, amount int64) (string, error)
	ConfirmReservation(reservationID string) error
	ReleaseReservation(reservationID string) error
	Balance(teamID string) (model.CoinBalance, error)
	AvailableBalance(teamID string) (int64, error)
}

// Phases is the lifecycle controller surface the service depends on.
type Phases interface {
	Status() (lifecycle.Status, error)
	RequireLive() error
	AdvancePhase() error
	CloseEarly() error
}

// TeamBalance is the balance view returned to collaborators.
type TeamBalance struct {
	model.CoinBalance
	Available   int64 `json:"available"`
	IsQualified bool  `json:"is_qualified"`
}

// AuctionStats summarizes the current season for the status endpoint.
type AuctionStats struct {
	Items        int `json:"items"`
	TotalBids    int `json:"total_bids"`
	SettledItems int `json:"settled_items"`
}

// StatusView is the public auction status.
type StatusView struct {
	lifecycle.Status
	Stats AuctionStats `json:"stats"`
}

// AuctionService defines the business logic for the bidding engine
type AuctionService struct {
	store       repository.AuctionStore
	coins       Coins
	phases      Phases
	qualifier   *qualification.Evaluator
	bus         events.Publisher
	lockTimeout time.Duration
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store repository.AuctionStore, coins Coins, phases Phases, qualifier *qualification.Evaluator, bus events.Publisher, lockTimeout time.Duration) *AuctionService {
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	return &AuctionService{
		store:       store,
		coins:       coins,
		phases:      phases,
		qualifier:   qualifier,
		bus:         bus,
		lockTimeout: lockTimeout,
	}
}

// PlaceBid validates and records a team's bid on an item, creating it on
// first bid and editing it in place on subsequent ones. Returns the stored
// bid and the minimum amount the next bid on this item must reach.
func (s *AuctionService) PlaceBid(itemID, teamID string, amount int64, message string) (model.Bid, int64, error) {
	if itemID == "" || teamID == "" {
		return model.Bid{}, 0, fmt.Errorf("service: %w - missing itemID or teamID", auctionerrors.ErrInvalidAmount)
	}
	if amount <= 0 {
		return model.Bid{}, 0, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidAmount)
	}

	if err := s.phases.RequireLive(); err != nil {
		return model.Bid{}, 0, fmt.Errorf("service: bid rejected: %w", err)
	}

	team, err := s.store.GetTeam(teamID)
	if err != nil {
		return model.Bid{}, 0, fmt.Errorf("service: failed to load team %s: %w", teamID, err)
	}
	if err := s.qualifier.RequireQualified(team); err != nil {
		return model.Bid{}, 0, fmt.Errorf("service: bid rejected: %w", err)
	}

	// Steps below are one atomic unit per item: two racing bids must not
	// both pass the strictly-higher check against the same stale top.
	unlock, err := s.store.LockItem(itemID, s.lockTimeout)
	if err != nil {
		return model.Bid{}, 0, fmt.Errorf("service: bid rejected: %w", err)
	}
	defer unlock()

	item, err := s.store.GetItem(itemID)
	if err != nil {
		return model.Bid{}, 0, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	// Re-check under the item lock: the phase gate above raced against the
	// scheduler, and settlement may have frozen this item since.
	if item.Settled {
		return model.Bid{}, 0, fmt.Errorf("service: bid rejected: item %s already settled: %w", itemID, auctionerrors.ErrAuctionNotLive)
	}

	minimum := item.CurrentTopBid + 1
	if amount < minimum {
		return model.Bid{}, minimum, fmt.Errorf("service: bid rejected: %w",
			&auctionerrors.BidTooLowError{CurrentTop: item.CurrentTopBid, MinimumNextBid: minimum})
	}

	// An edit holds old and new amounts side by side until the upsert
	// lands; ConfirmReservation then retires the old hold, so a failed
	// upsert leaves the standing bid funded.
	reservationID, err := s.coins.Reserve(teamID, itemID, amount)
	if err != nil {
		return model.Bid{}, minimum, fmt.Errorf("service: bid rejected: %w", err)
	}

	now := time.Now().UTC()
	bid, created, err := s.store.UpsertBid(model.Bid{
		BidID:     utils.GenerateID(),
		ItemID:    itemID,
		TeamID:    teamID,
		Amount:    amount,
		Message:   message,
		Status:    model.BidStatusActive,
		PlacedAt:  now,
		UpdatedAt: now,
	})
	if err != nil {
		if relErr := s.coins.ReleaseReservation(reservationID); relErr != nil {
			utils.Error("service: failed to release reservation after bid failure", map[string]any{
				"reservation_id": reservationID,
				"error":          relErr.Error(),
			})
		}
		return model.Bid{}, minimum, fmt.Errorf("service: failed to record bid for item %s by team %s: %w", itemID, teamID, err)
	}

	if err := s.coins.ConfirmReservation(reservationID); err != nil {
		utils.Error("service: failed to confirm reservation", map[string]any{
			"reservation_id": reservationID,
			"error":          err.Error(),
		})
	}

	topic := events.TopicBidUpdated
	if created {
		topic = events.TopicBidPlaced
	}
	s.bus.Publish(events.Event{
		Topic: topic,
		Payload: map[string]any{
			"item_id": itemID,
			"team_id": teamID,
			"bid_id":  bid.BidID,
			"amount":  amount,
		},
	})

	return bid, bid.Amount + 1, nil
}

// GetTopBids returns bids for an item ordered by amount desc, placed_at asc
func (s *AuctionService) GetTopBids(itemID string, limit int) ([]model.Bid, error) {
	if itemID == "" {
		return nil, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidAmount)
	}

	bids, err := s.store.GetTopBids(itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %s: %w", itemID, err)
	}
	return bids, nil
}

// ListItems returns the current season's rotation with computed top-bid
// fields, optionally filtered by tier.
func (s *AuctionService) ListItems(tierFilter string) ([]model.AuctionItem, error) {
	tier := model.Tier(tierFilter)
	switch tier {
	case "", model.TierCommon, model.TierUncommon, model.TierRare:
	default:
		return nil, fmt.Errorf("service: %w - unknown tier %q", auctionerrors.ErrInvalidAmount, tierFilter)
	}

	season, err := s.store.CurrentSeason()
	if err != nil {
		return nil, fmt.Errorf("service: failed to load current season: %w", err)
	}
	items, err := s.store.ListItems(season.SeasonID, tier)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items: %w", err)
	}
	return items, nil
}

// GetTeamBalance returns the team's coin balance plus its qualification
func (s *AuctionService) GetTeamBalance(teamID string) (TeamBalance, error) {
	if teamID == "" {
		return TeamBalance{}, fmt.Errorf("service: %w - empty team ID", auctionerrors.ErrInvalidAmount)
	}

	team, err := s.store.GetTeam(teamID)
	if err != nil {
		return TeamBalance{}, fmt.Errorf("service: failed to load team %s: %w", teamID, err)
	}
	balance, err := s.coins.Balance(teamID)
	if err != nil {
		return TeamBalance{}, fmt.Errorf("service: failed to load balance for team %s: %w", teamID, err)
	}
	available, err := s.coins.AvailableBalance(teamID)
	if err != nil {
		return TeamBalance{}, fmt.Errorf("service: failed to compute available balance for team %s: %w", teamID, err)
	}

	return TeamBalance{
		CoinBalance: balance,
		Available:   available,
		IsQualified: s.qualifier.IsQualified(team),
	}, nil
}

// GetTeamBids returns all bids a team currently holds across items
func (s *AuctionService) GetTeamBids(teamID string) ([]model.Bid, error) {
	if teamID == "" {
		return nil, fmt.Errorf("service: %w - empty team ID", auctionerrors.ErrInvalidAmount)
	}

	bids, err := s.store.GetBidsByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for team %s: %w", teamID, err)
	}
	return bids, nil
}

// GetAuctionStatus returns phase, time remaining and season stats
func (s *AuctionService) GetAuctionStatus() (StatusView, error) {
	status, err := s.phases.Status()
	if err != nil {
		return StatusView{}, fmt.Errorf("service: failed to get auction status: %w", err)
	}

	items, err := s.store.ListItems(status.SeasonID, "")
	if err != nil {
		return StatusView{}, fmt.Errorf("service: failed to list items for stats: %w", err)
	}

	stats := AuctionStats{Items: len(items)}
	for _, item := range items {
		stats.TotalBids += item.BidCount
		if item.Settled {
			stats.SettledItems++
		}
	}
	return StatusView{Status: status, Stats: stats}, nil
}

// CreditCoins records an earn event from the external XP/economy ledger
func (s *AuctionService) CreditCoins(teamID string, amount int64, reason string) error {
	if teamID == "" {
		return fmt.Errorf("service: %w - empty team ID", auctionerrors.ErrInvalidAmount)
	}

	if err := s.coins.Credit(teamID, amount, reason); err != nil {
		return fmt.Errorf("service: failed to credit team %s: %w", teamID, err)
	}
	return nil
}

// UpdateTeamProgress refreshes the qualification inputs for a team when
// the external ledger reports XP or event changes.
func (s *AuctionService) UpdateTeamProgress(teamID, name string, minXPMet bool, eventCount int) error {
	if teamID == "" {
		return fmt.Errorf("service: %w - empty team ID", auctionerrors.ErrInvalidAmount)
	}

	team := model.Team{
		TeamID:                  teamID,
		Name:                    name,
		MinXPMet:                minXPMet,
		EventParticipationCount: eventCount,
	}
	if existing, err := s.store.GetTeam(teamID); err == nil && name == "" {
		team.Name = existing.Name
	}
	if err := s.store.UpsertTeam(team); err != nil {
		return fmt.Errorf("service: failed to update team %s: %w", teamID, err)
	}
	return nil
}

// AdvancePhase fires the due phase transition, called by an external scheduler
func (s *AuctionService) AdvancePhase() error {
	if err := s.phases.AdvancePhase(); err != nil {
		return fmt.Errorf("service: failed to advance phase: %w", err)
	}
	return nil
}

// CloseEarly closes a live auction ahead of schedule (admin action)
func (s *AuctionService) CloseEarly() error {
	if err := s.phases.CloseEarly(); err != nil {
		return fmt.Errorf("service: failed to close auction early: %w", err)
	}
	return nil
}
