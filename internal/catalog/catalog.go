package catalog

import (
	"fmt"
	"time"

	"agentvault/internal/auctionerrors"
	model "agentvault/internal/models"
	"agentvault/internal/repository"
	"agentvault/utils"
)

// Rotation policy: every season carries exactly RotationSize items with a
// fixed tier distribution.
const RotationSize = 15

var tierPolicy = map[model.Tier]int{
	model.TierCommon:   8,
	model.TierUncommon: 5,
	model.TierRare:     2,
}

// ItemSpec describes one reward slot at season scheduling time.
type ItemSpec struct {
	Title              string
	Tier               model.Tier
	StartingBid        int64
	PositionInRotation int
}

// Manager schedules seasons and serves the item rotation.
type Manager struct {
	store repository.AuctionStore
}

// NewManager creates a catalog manager over the given store
func NewManager(store repository.AuctionStore) *Manager {
	return &Manager{store: store}
}

// ScheduleSeason validates the rotation against policy and creates the
// season with its items in Dormant phase. Items are immutable once the
// season goes live.
func (m *Manager) ScheduleSeason(startAt time.Time, liveWindowDays, cooldownDays int, specs []ItemSpec) (model.Season, error) {
	if err := validateRotation(specs); err != nil {
		return model.Season{}, err
	}

	season := model.Season{
		SeasonID:       utils.GenerateID(),
		StartAt:        startAt,
		LiveWindowDays: liveWindowDays,
		CooldownDays:   cooldownDays,
		Phase:          model.PhaseDormant,
	}
	if err := m.store.AddSeason(season); err != nil {
		return model.Season{}, fmt.Errorf("catalog: failed to add season: %w", err)
	}

	for _, spec := range specs {
		item := model.AuctionItem{
			ItemID:             utils.GenerateID(),
			SeasonID:           season.SeasonID,
			Title:              spec.Title,
			Tier:               spec.Tier,
			StartingBid:        spec.StartingBid,
			PositionInRotation: spec.PositionInRotation,
			CurrentTopBid:      spec.StartingBid,
		}
		if err := m.store.AddItem(item); err != nil {
			return model.Season{}, fmt.Errorf("catalog: failed to add item %q: %w", spec.Title, err)
		}
	}

	utils.Info("catalog: season scheduled", map[string]any{
		"season_id": season.SeasonID,
		"start_at":  startAt.UTC().Format(time.RFC3339),
		"items":     len(specs),
	})
	return season, nil
}

// ListItems returns the season's rotation, optionally filtered by tier
func (m *Manager) ListItems(seasonID string, tier model.Tier) ([]model.AuctionItem, error) {
	items, err := m.store.ListItems(seasonID, tier)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to list items for season %s: %w", seasonID, err)
	}
	return items, nil
}

// validateRotation enforces the fixed rotation size, unique positions
// 1..15, the tier distribution, and non-negative starting bids.
func validateRotation(specs []ItemSpec) error {
	if len(specs) != RotationSize {
		return fmt.Errorf("%w: expected %d items, got %d", auctionerrors.ErrInvalidSeasonSchedule, RotationSize, len(specs))
	}

	positions := make(map[int]bool, len(specs))
	tierCounts := make(map[model.Tier]int)
	for _, spec := range specs {
		if spec.PositionInRotation < 1 || spec.PositionInRotation > RotationSize {
			return fmt.Errorf("%w: position %d out of range for %q", auctionerrors.ErrInvalidSeasonSchedule, spec.PositionInRotation, spec.Title)
		}
		if positions[spec.PositionInRotation] {
			return fmt.Errorf("%w: duplicate position %d", auctionerrors.ErrInvalidSeasonSchedule, spec.PositionInRotation)
		}
		positions[spec.PositionInRotation] = true

		if spec.StartingBid < 0 {
			return fmt.Errorf("%w: negative starting bid for %q", auctionerrors.ErrInvalidSeasonSchedule, spec.Title)
		}
		tierCounts[spec.Tier]++
	}

	for tier, want := range tierPolicy {
		if tierCounts[tier] != want {
			return fmt.Errorf("%w: tier %s has %d items, policy requires %d", auctionerrors.ErrInvalidSeasonSchedule, tier, tierCounts[tier], want)
		}
	}
	return nil
}
