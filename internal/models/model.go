package models

import "time"

// Phase is the lifecycle state of a season's auction.
type Phase string

const (
	PhaseDormant  Phase = "dormant"
	PhaseLive     Phase = "live"
	PhaseClosing  Phase = "closing"
	PhaseSettled  Phase = "settled"
	PhaseCooldown Phase = "cooldown"
)

// Tier is the rarity classification of an auction item.
type Tier string

const (
	TierCommon   Tier = "common"
	TierUncommon Tier = "uncommon"
	TierRare     Tier = "rare"
)

// BidStatus tracks a bid through settlement.
type BidStatus string

const (
	BidStatusActive BidStatus = "active"
	BidStatusWon    BidStatus = "won"
	BidStatusLost   BidStatus = "lost"
)

// ReservationStatus tracks a coin hold through its lifecycle.
type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCommitted ReservationStatus = "committed"
	ReservationReleased  ReservationStatus = "released"
)

// TransactionType is the business reason for a coin ledger entry.
type TransactionType string

const (
	TransactionEarn  TransactionType = "earn"
	TransactionSpend TransactionType = "spend"
)

// Season represents one scheduled 28-day auction cycle
type Season struct {
	SeasonID       string    `json:"season_id"`
	StartAt        time.Time `json:"start_at"`
	LiveWindowDays int       `json:"live_window_days"`
	CooldownDays   int       `json:"cooldown_days"`
	Phase          Phase     `json:"phase"`
	// PhaseVersion increments on every transition; concurrent advance
	// calls that observe a stale version degrade to no-ops.
	PhaseVersion int64      `json:"phase_version"`
	SettledAt    *time.Time `json:"settled_at,omitempty"`
}

// AuctionItem represents a reward slot within a season's rotation
type AuctionItem struct {
	ItemID             string `json:"item_id"`
	SeasonID           string `json:"season_id"`
	Title              string `json:"title"`
	Tier               Tier   `json:"tier"`
	StartingBid        int64  `json:"starting_bid"`
	PositionInRotation int    `json:"position_in_rotation"`

	// Computed fields, maintained by the bid ledger.
	CurrentTopBid int64  `json:"current_top_bid"`
	TopTeamID     string `json:"top_team_id,omitempty"`
	BidCount      int    `json:"bid_count"`

	// Settlement bookkeeping.
	Settled      bool   `json:"settled"`
	WinningBidID string `json:"winning_bid_id,omitempty"`
}

// Team represents a bidding group and its qualification inputs
type Team struct {
	TeamID                  string `json:"team_id"`
	Name                    string `json:"name"`
	MinXPMet                bool   `json:"min_xp_met"`
	EventParticipationCount int    `json:"event_participation_count"`
}

// CoinBalance is a team's VibeCoin account. Balance = TotalEarned - TotalSpent.
type CoinBalance struct {
	TeamID      string `json:"team_id"`
	Balance     int64  `json:"balance"`
	TotalEarned int64  `json:"total_earned"`
	TotalSpent  int64  `json:"total_spent"`
}

// Bid is a team's current standing offer on one item, unique per (item, team)
type Bid struct {
	BidID     string    `json:"bid_id"`
	ItemID    string    `json:"item_id"`
	TeamID    string    `json:"team_id"`
	Amount    int64     `json:"amount"`
	Message   string    `json:"message,omitempty"`
	Status    BidStatus `json:"status"`
	PlacedAt  time.Time `json:"placed_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reservation is a temporary coin hold created at bid time and resolved
// (released or committed) at settlement or on bid failure.
type Reservation struct {
	ReservationID string            `json:"reservation_id"`
	TeamID        string            `json:"team_id"`
	ItemID        string            `json:"item_id"`
	Amount        int64             `json:"amount"`
	Status        ReservationStatus `json:"status"`
	ExpiresAt     time.Time         `json:"expires_at"`
	CreatedAt     time.Time         `json:"created_at"`
}

// CoinTransaction is one row in a team's earn/spend log
type CoinTransaction struct {
	TxID      string          `json:"tx_id"`
	TeamID    string          `json:"team_id"`
	Type      TransactionType `json:"type"`
	Amount    int64           `json:"amount"`
	Reason    string          `json:"reason"`
	CreatedAt time.Time       `json:"created_at"`
}

// ItemResult is the per-item outcome of settlement.
type ItemResult struct {
	ItemID       string `json:"item_id"`
	WinningBidID string `json:"winning_bid_id,omitempty"`
	WinnerTeamID string `json:"winner_team_id,omitempty"`
	WinningBid   int64  `json:"winning_bid,omitempty"`
}

// SettlementResult summarizes one settlement run over a season.
type SettlementResult struct {
	SeasonID     string       `json:"season_id"`
	Items        []ItemResult `json:"items"`
	ItemsSettled int          `json:"items_settled"`
	ItemsSkipped int          `json:"items_skipped"` // already settled on a prior run
}
