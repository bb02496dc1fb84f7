package settlement

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"agentvault/internal/auctionerrors"
	"agentvault/internal/events"
	model "agentvault/internal/models"
	"agentvault/internal/repository"
	"agentvault/utils"
)

// DefaultLockTimeout bounds how long settlement waits on an item whose
// lock is held by an in-flight bid.
const DefaultLockTimeout = 2 * time.Second

// CoinLedger is the slice of the coin ledger settlement needs: commit the
// winner's hold into spent funds, release everyone else's.
type CoinLedger interface {
	CommitReservationFor(teamID, itemID, reason string) (int64, error)
	ReleaseReservationFor(teamID, itemID string) error
}

// Runner finalizes a season: per item it freezes the top bid as the
// winner, commits the winning team's reservation, releases the rest, and
// emits reward-grant requests for the external fulfillment collaborator.
// Safe to re-run: the per-item settled flag is checked before acting.
type Runner struct {
	store       repository.AuctionStore
	coins       CoinLedger
	bus         events.Publisher
	lockTimeout time.Duration
	running     atomic.Bool
}

// NewRunner creates a settlement runner
func NewRunner(store repository.AuctionStore, coins CoinLedger, bus events.Publisher) *Runner {
	return &Runner{store: store, coins: coins, bus: bus, lockTimeout: DefaultLockTimeout}
}

// SetLockTimeout overrides the per-item lock wait. Intended for tests.
func (r *Runner) SetLockTimeout(timeout time.Duration) {
	r.lockTimeout = timeout
}

// Settle runs settlement over every unsettled item of the season.
func (r *Runner) Settle(seasonID string) (model.SettlementResult, error) {
	if !r.running.CompareAndSwap(false, true) {
		return model.SettlementResult{}, fmt.Errorf("settle season %s: %w", seasonID, auctionerrors.ErrSettlementInProgress)
	}
	defer r.running.Store(false)

	items, err := r.store.ListItems(seasonID, "")
	if err != nil {
		return model.SettlementResult{}, fmt.Errorf("settlement: failed to list items for season %s: %w", seasonID, err)
	}

	result := model.SettlementResult{SeasonID: seasonID}
	for _, item := range items {
		if item.Settled {
			result.ItemsSkipped++
			continue
		}
		itemResult, err := r.settleItem(item)
		if err != nil {
			return result, fmt.Errorf("settlement: item %s: %w", item.ItemID, err)
		}
		result.Items = append(result.Items, itemResult)
		result.ItemsSettled++
	}

	r.bus.Publish(events.Event{
		Topic: events.TopicSettlementCompleted,
		Payload: map[string]any{
			"season_id":     seasonID,
			"items_settled": result.ItemsSettled,
			"items_skipped": result.ItemsSkipped,
		},
	})
	return result, nil
}

// settleItem resolves one item: winner by amount desc, placed_at asc.
// The per-item lock serializes the freeze against in-flight bids: any bid
// that held the lock first lands before the freeze, any bid after it sees
// the settled flag and is rejected.
func (r *Runner) settleItem(item model.AuctionItem) (model.ItemResult, error) {
	unlock, err := r.store.LockItem(item.ItemID, r.lockTimeout)
	if err != nil {
		return model.ItemResult{}, err
	}
	defer unlock()

	bids, err := r.store.GetBidsByItem(item.ItemID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			// Nothing to resolve; flag the item so re-runs skip it.
			if _, err := r.store.MarkItemSettled(item.ItemID, ""); err != nil {
				return model.ItemResult{}, err
			}
			return model.ItemResult{ItemID: item.ItemID}, nil
		}
		return model.ItemResult{}, err
	}

	winner := bids[0]
	if err := r.store.UpdateBidStatus(winner.BidID, model.BidStatusWon); err != nil {
		return model.ItemResult{}, err
	}

	amount, err := r.coins.CommitReservationFor(winner.TeamID, item.ItemID, fmt.Sprintf("won item %s", item.ItemID))
	if err != nil && !errors.Is(err, auctionerrors.ErrReservationNotFound) {
		// NotFound means a prior partial run already committed this hold.
		return model.ItemResult{}, err
	}
	if amount == 0 {
		amount = winner.Amount
	}

	for _, bid := range bids[1:] {
		if err := r.store.UpdateBidStatus(bid.BidID, model.BidStatusLost); err != nil {
			return model.ItemResult{}, err
		}
		if err := r.coins.ReleaseReservationFor(bid.TeamID, item.ItemID); err != nil {
			return model.ItemResult{}, err
		}
	}

	if _, err := r.store.MarkItemSettled(item.ItemID, winner.BidID); err != nil {
		return model.ItemResult{}, err
	}

	utils.Info("settlement: item settled", map[string]any{
		"item_id":     item.ItemID,
		"winner_team": winner.TeamID,
		"winning_bid": winner.Amount,
		"losing_bids": len(bids) - 1,
	})
	r.bus.Publish(events.Event{
		Topic: events.TopicRewardGrantRequested,
		Payload: map[string]any{
			"item_id":     item.ItemID,
			"season_id":   item.SeasonID,
			"team_id":     winner.TeamID,
			"bid_id":      winner.BidID,
			"amount_paid": amount,
		},
	})

	return model.ItemResult{
		ItemID:       item.ItemID,
		WinningBidID: winner.BidID,
		WinnerTeamID: winner.TeamID,
		WinningBid:   winner.Amount,
	}, nil
}
