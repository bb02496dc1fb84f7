package integrationtests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"agentvault/services/auction/helpers"

	"github.com/stretchr/testify/require"
)

// A full bidding round on one item: first bid, rejected underbid with the
// advertised minimum, outbid, edit-in-place, early close and settlement.
func TestBiddingRoundAndSettlement(t *testing.T) {
	env := setupLiveAuction(t)
	itemID := env.items[0].ItemID // common item, starting bid 100

	// Alpha opens at 105.
	data, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
		ItemID: itemID, TeamID: "team-alpha", Amount: 105,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, true, data["accepted"])
	require.Equal(t, float64(106), data["minimum_next_bid"])
	_, err := time.Parse(time.RFC3339, data["placed_at"].(string))
	require.NoError(t, err)

	// Beta matches 105: rejected, response carries the required minimum.
	data, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
		ItemID: itemID, TeamID: "team-beta", Amount: 105,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, false, data["accepted"])
	require.Equal(t, float64(105), data["current_top_bid"])
	require.Equal(t, float64(106), data["minimum_next_bid"])

	// Beta clears the bar at 110.
	_, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
		ItemID: itemID, TeamID: "team-beta", Amount: 110,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Alpha raises its own bid to 120: an edit, not a new bid.
	data, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
		ItemID: itemID, TeamID: "team-alpha", Amount: 120,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, float64(121), data["minimum_next_bid"])

	// Still two bids on the item, and alpha holds exactly one.
	item, err := env.store.GetItem(itemID)
	require.NoError(t, err)
	require.Equal(t, 2, item.BidCount)
	require.Equal(t, int64(120), item.CurrentTopBid)
	require.Equal(t, "team-alpha", item.TopTeamID)

	// Reservations net to the latest amount per team.
	available, err := env.ledger.AvailableBalance("team-alpha")
	require.NoError(t, err)
	require.Equal(t, int64(880), available)

	// Admin closes early; settlement runs inline.
	w = ExecuteRequest(t, env.router, http.MethodPost, "/auction/close", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Alpha paid 120, beta's hold came back in full.
	balAlpha, err := env.ledger.Balance("team-alpha")
	require.NoError(t, err)
	require.Equal(t, int64(880), balAlpha.Balance)
	require.Equal(t, int64(120), balAlpha.TotalSpent)

	availableBeta, err := env.ledger.AvailableBalance("team-beta")
	require.NoError(t, err)
	require.Equal(t, int64(1000), availableBeta)

	item, err = env.store.GetItem(itemID)
	require.NoError(t, err)
	require.True(t, item.Settled)

	// Bids on a settled season are refused.
	_, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
		ItemID: itemID, TeamID: "team-beta", Amount: 200,
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

// Two teams racing the same amount on one item: exactly one wins the
// strictly-higher check, the other gets the too-low rejection.
func TestConcurrentEqualBids(t *testing.T) {
	env := setupLiveAuction(t)
	itemID := env.items[0].ItemID

	codes := make([]int, 2)
	var wg sync.WaitGroup
	for i, teamID := range []string{"team-alpha", "team-beta"} {
		wg.Add(1)
		go func(i int, teamID string) {
			defer wg.Done()
			w := ExecuteRequest(t, env.router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
				ItemID: itemID, TeamID: teamID, Amount: 150,
			})
			codes[i] = w.Code
		}(i, teamID)
	}
	wg.Wait()

	created, conflicted := 0, 0
	for _, code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicted++
		}
	}
	require.Equal(t, 1, created)
	require.Equal(t, 1, conflicted)

	item, err := env.store.GetItem(itemID)
	require.NoError(t, err)
	require.Equal(t, int64(150), item.CurrentTopBid)
	require.Equal(t, 1, item.BidCount)
}

// Bids outside the Live phase are refused.
func TestBidOutsideLivePhase(t *testing.T) {
	env := setupAuction(t)

	_, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
		ItemID: env.items[0].ItemID, TeamID: "team-alpha", Amount: 105,
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

// An unqualified team cannot bid no matter its funds.
func TestUnqualifiedTeamRejected(t *testing.T) {
	env := setupLiveAuction(t)

	_, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
		ItemID: env.items[0].ItemID, TeamID: "team-rookie", Amount: 105,
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

// Holds across several items count against available funds together.
func TestInsufficientFundsAcrossItems(t *testing.T) {
	env := setupLiveAuction(t)

	// Rare items start at 500; two winning-level holds exhaust 1000.
	var rareIDs []string
	for _, item := range env.items {
		if item.Tier == "rare" {
			rareIDs = append(rareIDs, item.ItemID)
		}
	}
	require.Len(t, rareIDs, 2)

	_, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
		ItemID: rareIDs[0], TeamID: "team-alpha", Amount: 600,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	_, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
		ItemID: rareIDs[1], TeamID: "team-alpha", Amount: 600,
	})
	require.Equal(t, http.StatusConflict, w.Code)

	balance, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/teams/team-alpha/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1000), balance["balance"])
	require.Equal(t, float64(400), balance["available"])
}

// Rotation listing and the tier filter.
func TestListItemsByTier(t *testing.T) {
	env := setupLiveAuction(t)

	for tier, want := range map[string]int{"": 15, "common": 8, "uncommon": 5, "rare": 2} {
		url := "/auction/items"
		if tier != "" {
			url += "?tier=" + tier
		}
		w := ExecuteRequest(t, env.router, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, w.Code, "tier %q", tier)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp["data"].([]any), want, "tier %q", tier)
	}

	w := ExecuteRequest(t, env.router, http.MethodGet, "/auction/items?tier=legendary", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// Coin credits and team progress flow through the external-ledger endpoints.
func TestCreditAndProgressEndpoints(t *testing.T) {
	env := setupLiveAuction(t)

	amount := int64(250)
	w := ExecuteRequest(t, env.router, http.MethodPost, "/teams/team-rookie/credits",
		helpers.CreditCoinsRequest{Amount: &amount, Reason: "demo day"})
	require.Equal(t, http.StatusOK, w.Code)

	balance, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/teams/team-rookie/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1250), balance["balance"])
	require.Equal(t, false, balance["is_qualified"])

	// Three recorded events qualify the team.
	w = ExecuteRequest(t, env.router, http.MethodPut, "/teams/team-rookie/progress",
		helpers.TeamProgressRequest{EventCount: 3})
	require.Equal(t, http.StatusOK, w.Code)

	balance, w = ExecuteRequestAndParse(t, env.router, http.MethodGet, "/teams/team-rookie/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, balance["is_qualified"])
}

// Status endpoint reflects phase and bid activity.
func TestStatusEndpoint(t *testing.T) {
	env := setupLiveAuction(t)

	for i := 0; i < 3; i++ {
		_, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
			ItemID: env.items[i].ItemID, TeamID: "team-alpha", Amount: env.items[i].StartingBid + 5,
		})
		require.Equal(t, http.StatusCreated, w.Code, fmt.Sprintf("item %d", i))
	}

	status, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auction/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "live", status["phase"])

	stats := status["stats"].(map[string]any)
	require.Equal(t, float64(15), stats["items"])
	require.Equal(t, float64(3), stats["total_bids"])
	require.Equal(t, float64(0), stats["settled_items"])
}

// Re-running a settled close changes nothing.
func TestSettlementIdempotentOverHTTP(t *testing.T) {
	env := setupLiveAuction(t)
	itemID := env.items[0].ItemID

	_, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
		ItemID: itemID, TeamID: "team-alpha", Amount: 120,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = ExecuteRequest(t, env.router, http.MethodPost, "/auction/close", nil)
	require.Equal(t, http.StatusOK, w.Code)

	balBefore, err := env.ledger.Balance("team-alpha")
	require.NoError(t, err)

	// A scheduler tick after settlement moves settled -> cooldown and must
	// not re-run settlement against the ledger.
	w = ExecuteRequest(t, env.router, http.MethodPost, "/auction/advance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	balAfter, err := env.ledger.Balance("team-alpha")
	require.NoError(t, err)
	require.Equal(t, balBefore, balAfter)

	status, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auction/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "cooldown", status["phase"])
}
