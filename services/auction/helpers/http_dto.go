package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	ItemID  string `json:"item_id" binding:"required"`
	TeamID  string `json:"team_id" binding:"required"`
	Amount  int64  `json:"amount" binding:"required,gt=0"`
	Message string `json:"message" binding:"max=280"`
}

type BidResponse struct {
	BidID          string `json:"bid_id"`
	ItemID         string `json:"item_id"`
	TeamID         string `json:"team_id"`
	Amount         int64  `json:"amount"`
	Message        string `json:"message,omitempty"`
	Status         string `json:"status"`
	Accepted       bool   `json:"accepted"`
	MinimumNextBid int64  `json:"minimum_next_bid"`
	PlacedAt       string `json:"placed_at"`
	UpdatedAt      string `json:"updated_at"`
}

type CreditCoinsRequest struct {
	// Pointer so a zero-amount earn event still binds.
	Amount *int64 `json:"amount" binding:"required,gte=0"`
	Reason string `json:"reason"`
}

type TeamProgressRequest struct {
	Name       string `json:"name"`
	MinXPMet   bool   `json:"min_xp_met"`
	EventCount int    `json:"event_participation_count" binding:"gte=0"`
}

type StatusResponse struct {
	SeasonID             string `json:"season_id"`
	Phase                string `json:"phase"`
	TimeRemainingSeconds int64  `json:"time_remaining_seconds"`
	Stats                any    `json:"stats"`
}
