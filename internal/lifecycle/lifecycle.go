package lifecycle

import (
	"fmt"
	"sync"
	"time"

	"agentvault/internal/auctionerrors"
	"agentvault/internal/events"
	model "agentvault/internal/models"
	"agentvault/internal/repository"
	"agentvault/utils"
)

// Settler runs settlement for a season. Implemented by settlement.Runner.
type Settler interface {
	Settle(seasonID string) (model.SettlementResult, error)
}

// Status is the public view of the season state machine.
type Status struct {
	SeasonID      string        `json:"season_id"`
	Phase         model.Phase   `json:"phase"`
	TimeRemaining time.Duration `json:"time_remaining"`
}

// Controller drives the season phase machine:
// dormant -> live -> closing -> settled -> cooldown -> dormant.
// Transitions are time-driven (AdvancePhase from a scheduler tick) or
// admin-triggered (CloseEarly). No transition moves a phase backward.
type Controller struct {
	mu      sync.Mutex
	store   repository.AuctionStore
	settler Settler
	bus     events.Publisher
	now     func() time.Time
}

// NewController creates a lifecycle controller
func NewController(store repository.AuctionStore, settler Settler, bus events.Publisher) *Controller {
	return &Controller{
		store:   store,
		settler: settler,
		bus:     bus,
		now:     time.Now,
	}
}

// SetClock overrides the time source. Intended for tests.
func (c *Controller) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Status returns the current phase, season and time remaining in it
func (c *Controller) Status() (Status, error) {
	season, err := c.store.CurrentSeason()
	if err != nil {
		return Status{}, fmt.Errorf("lifecycle: failed to load current season: %w", err)
	}

	c.mu.Lock()
	now := c.now()
	c.mu.Unlock()

	var remaining time.Duration
	switch season.Phase {
	case model.PhaseDormant:
		remaining = season.StartAt.Sub(now)
	case model.PhaseLive:
		remaining = closeAt(season).Sub(now)
	case model.PhaseCooldown:
		remaining = cycleEnd(season).Sub(now)
	}
	if remaining < 0 {
		remaining = 0
	}

	return Status{
		SeasonID:      season.SeasonID,
		Phase:         season.Phase,
		TimeRemaining: remaining,
	}, nil
}

// RequireLive is the write gate for the bid ledger
func (c *Controller) RequireLive() error {
	season, err := c.store.CurrentSeason()
	if err != nil {
		return fmt.Errorf("lifecycle: failed to load current season: %w", err)
	}
	if season.Phase != model.PhaseLive {
		return fmt.Errorf("lifecycle: phase is %s: %w", season.Phase, auctionerrors.ErrAuctionNotLive)
	}
	return nil
}

// AdvancePhase fires the single due transition, if any. Idempotent and
// safe to call repeatedly from a scheduler tick: the phase-version check
// turns concurrent callers into no-ops, and settlement failure leaves the
// season in Closing to be retried on the next tick.
func (c *Controller) AdvancePhase() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	season, err := c.store.CurrentSeason()
	if err != nil {
		return fmt.Errorf("lifecycle: failed to load current season: %w", err)
	}
	now := c.now()

	switch season.Phase {
	case model.PhaseDormant:
		if !now.Before(season.StartAt) {
			_, err = c.transitionLocked(season, model.PhaseLive)
			return err
		}
	case model.PhaseLive:
		if !now.Before(closeAt(season)) {
			season, err = c.transitionLocked(season, model.PhaseClosing)
			if err != nil {
				return err
			}
			c.trySettleLocked(season)
		}
	case model.PhaseClosing:
		// Retryable state: a failed settlement left the season here.
		c.trySettleLocked(season)
	case model.PhaseSettled:
		_, err = c.transitionLocked(season, model.PhaseCooldown)
		return err
	case model.PhaseCooldown:
		if !now.Before(cycleEnd(season)) {
			_, err = c.transitionLocked(season, model.PhaseDormant)
			return err
		}
	}
	return nil
}

// CloseEarly is the admin-triggered early close of a live auction.
func (c *Controller) CloseEarly() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	season, err := c.store.CurrentSeason()
	if err != nil {
		return fmt.Errorf("lifecycle: failed to load current season: %w", err)
	}
	if season.Phase != model.PhaseLive {
		return fmt.Errorf("lifecycle: cannot close early from %s: %w", season.Phase, auctionerrors.ErrAuctionNotLive)
	}

	season, err = c.transitionLocked(season, model.PhaseClosing)
	if err != nil {
		return err
	}
	c.trySettleLocked(season)
	return nil
}

// transitionLocked commits a phase change guarded by the version the
// caller observed. A stale version means another worker already fired the
// transition; that caller degrades to a no-op.
func (c *Controller) transitionLocked(observed model.Season, to model.Phase) (model.Season, error) {
	season, err := c.store.GetSeason(observed.SeasonID)
	if err != nil {
		return model.Season{}, fmt.Errorf("lifecycle: failed to reload season: %w", err)
	}
	if season.PhaseVersion != observed.PhaseVersion {
		return season, nil
	}

	from := season.Phase
	season.Phase = to
	season.PhaseVersion++
	if to == model.PhaseSettled {
		t := c.now()
		season.SettledAt = &t
	}
	if err := c.store.UpdateSeason(season); err != nil {
		return model.Season{}, fmt.Errorf("lifecycle: failed to persist phase %s: %w", to, err)
	}

	utils.Info("lifecycle: phase changed", map[string]any{
		"season_id": season.SeasonID,
		"from":      string(from),
		"to":        string(to),
		"version":   season.PhaseVersion,
	})
	c.bus.Publish(events.Event{
		Topic: events.TopicPhaseChanged,
		Payload: map[string]any{
			"season_id": season.SeasonID,
			"from":      string(from),
			"to":        string(to),
		},
	})
	return season, nil
}

// trySettleLocked runs settlement exactly once per close; on failure the
// season stays in Closing and the next tick retries.
func (c *Controller) trySettleLocked(season model.Season) {
	result, err := c.settler.Settle(season.SeasonID)
	if err != nil {
		utils.Error("lifecycle: settlement failed, will retry", map[string]any{
			"season_id": season.SeasonID,
			"error":     err.Error(),
		})
		return
	}

	if _, err := c.transitionLocked(season, model.PhaseSettled); err != nil {
		utils.Error("lifecycle: failed to mark season settled", map[string]any{
			"season_id": season.SeasonID,
			"error":     err.Error(),
		})
		return
	}
	utils.Info("lifecycle: season settled", map[string]any{
		"season_id":     season.SeasonID,
		"items_settled": result.ItemsSettled,
		"items_skipped": result.ItemsSkipped,
	})
}

func closeAt(season model.Season) time.Time {
	return season.StartAt.AddDate(0, 0, season.LiveWindowDays)
}

func cycleEnd(season model.Season) time.Time {
	return season.StartAt.AddDate(0, 0, season.LiveWindowDays+season.CooldownDays)
}
