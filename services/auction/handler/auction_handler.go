package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"agentvault/internal/auctionerrors"
	auction "agentvault/internal/auctionService"
	model "agentvault/internal/models"
	"agentvault/services/auction/helpers"
	"agentvault/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	PlaceBid(itemID, teamID string, amount int64, message string) (model.Bid, int64, error)
	GetTopBids(itemID string, limit int) ([]model.Bid, error)
	ListItems(tierFilter string) ([]model.AuctionItem, error)
	GetTeamBalance(teamID string) (auction.TeamBalance, error)
	GetTeamBids(teamID string) ([]model.Bid, error)
	GetAuctionStatus() (auction.StatusView, error)
	CreditCoins(teamID string, amount int64, reason string) error
	UpdateTeamProgress(teamID, name string, minXPMet bool, eventCount int) error
	AdvancePhase() error
	CloseEarly() error
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, minimumNext, err := h.service.PlaceBid(req.ItemID, req.TeamID, req.Amount, req.Message)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)

		// BidTooLow carries the minimum acceptable amount for the caller.
		var tooLow *auctionerrors.BidTooLowError
		if errors.As(err, &tooLow) {
			utils.JSONResponse(c, status, gin.H{
				"accepted":         false,
				"current_top_bid":  tooLow.CurrentTop,
				"minimum_next_bid": tooLow.MinimumNextBid,
			}, message)
			utils.Info("PlaceBidHandler: bid below minimum", map[string]any{
				"item_id":          req.ItemID,
				"team_id":          req.TeamID,
				"amount":           req.Amount,
				"minimum_next_bid": tooLow.MinimumNextBid,
			})
			return
		}

		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler": "PlaceBidHandler",
			"item_id": req.ItemID,
			"team_id": req.TeamID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:          bid.BidID,
		ItemID:         bid.ItemID,
		TeamID:         bid.TeamID,
		Amount:         bid.Amount,
		Message:        bid.Message,
		Status:         string(bid.Status),
		Accepted:       true,
		MinimumNextBid: minimumNext,
		PlacedAt:       bid.PlacedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      bid.UpdatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":  bid.BidID,
		"item_id": bid.ItemID,
		"team_id": bid.TeamID,
		"amount":  bid.Amount,
	})
}

// GetTopBidsHandler handles GET /items/:item_id/bids
func (h *AuctionHandler) GetTopBidsHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw), "invalid limit")
			return
		}
		limit = parsed
	}

	bids, err := h.service.GetTopBids(itemID, limit)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetTopBidsHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetTopBidsHandler", "bids retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(bids),
	})
}

// ListItemsHandler handles GET /auction/items
func (h *AuctionHandler) ListItemsHandler(c *gin.Context) {
	tier := c.Query("tier")

	items, err := h.service.ListItems(tier)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListItemsHandler: error listing items", map[string]any{"tier": tier, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
	helpers.LogSuccess("ListItemsHandler", "items retrieved successfully", map[string]any{
		"tier":  tier,
		"count": len(items),
	})
}

// GetStatusHandler handles GET /auction/status
func (h *AuctionHandler) GetStatusHandler(c *gin.Context) {
	status, err := h.service.GetAuctionStatus()
	if err != nil {
		httpStatus, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, httpStatus, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetStatusHandler: error retrieving status", map[string]any{"error": err.Error()})
		return
	}

	resp := helpers.StatusResponse{
		SeasonID:             status.SeasonID,
		Phase:                string(status.Phase),
		TimeRemainingSeconds: int64(status.TimeRemaining.Seconds()),
		Stats:                status.Stats,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auction status retrieved successfully")
}

// GetTeamBalanceHandler handles GET /teams/:team_id/balance
func (h *AuctionHandler) GetTeamBalanceHandler(c *gin.Context) {
	teamID := c.Param("team_id")
	balance, err := h.service.GetTeamBalance(teamID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetTeamBalanceHandler: error retrieving balance", map[string]any{"team_id": teamID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, balance, "team balance retrieved successfully")
}

// GetTeamBidsHandler handles GET /teams/:team_id/bids
func (h *AuctionHandler) GetTeamBidsHandler(c *gin.Context) {
	teamID := c.Param("team_id")
	bids, err := h.service.GetTeamBids(teamID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetTeamBidsHandler: error retrieving bids", map[string]any{"team_id": teamID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "team bids retrieved successfully")
}

// CreditCoinsHandler handles POST /teams/:team_id/credits, called by the
// external XP/economy ledger when a team earns coins.
func (h *AuctionHandler) CreditCoinsHandler(c *gin.Context) {
	teamID := c.Param("team_id")

	var req helpers.CreditCoinsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreditCoinsHandler", err)
		return
	}

	if err := h.service.CreditCoins(teamID, *req.Amount, req.Reason); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreditCoinsHandler: failed to credit coins", map[string]any{
			"team_id": teamID,
			"amount":  *req.Amount,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "coins credited successfully")
	helpers.LogSuccess("CreditCoinsHandler", "coins credited successfully", map[string]any{
		"team_id": teamID,
		"amount":  *req.Amount,
		"reason":  req.Reason,
	})
}

// UpdateTeamProgressHandler handles PUT /teams/:team_id/progress, called
// when the external ledger reports XP or event-participation changes.
func (h *AuctionHandler) UpdateTeamProgressHandler(c *gin.Context) {
	teamID := c.Param("team_id")

	var req helpers.TeamProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateTeamProgressHandler", err)
		return
	}

	if err := h.service.UpdateTeamProgress(teamID, req.Name, req.MinXPMet, req.EventCount); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UpdateTeamProgressHandler: failed to update team", map[string]any{
			"team_id": teamID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "team progress updated successfully")
}

// AdvancePhaseHandler handles POST /auction/advance, called by an
// external scheduler tick. Safe to call repeatedly.
func (h *AuctionHandler) AdvancePhaseHandler(c *gin.Context) {
	if err := h.service.AdvancePhase(); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AdvancePhaseHandler: failed to advance phase", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "phase advanced")
}

// CloseEarlyHandler handles POST /auction/close (admin early close)
func (h *AuctionHandler) CloseEarlyHandler(c *gin.Context) {
	if err := h.service.CloseEarly(); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CloseEarlyHandler: failed to close auction", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction closed")
}
