package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	auction "agentvault/internal/auctionService"
	"agentvault/internal/catalog"
	"agentvault/internal/coinledger"
	"agentvault/internal/events"
	"agentvault/internal/lifecycle"
	model "agentvault/internal/models"
	"agentvault/internal/qualification"
	"agentvault/internal/repository"
	"agentvault/internal/server"
	"agentvault/internal/settlement"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testEnv wires the full engine behind a real router, with direct handles
// for assertions that go past the HTTP surface.
type testEnv struct {
	router     *gin.Engine
	store      *repository.MemoryStore
	ledger     *coinledger.Ledger
	controller *lifecycle.Controller
	season     model.Season
	items      []model.AuctionItem
}

// defaultRotation returns a policy-conforming fifteen item rotation.
func defaultRotation() []catalog.ItemSpec {
	specs := make([]catalog.ItemSpec, 0, catalog.RotationSize)
	position := 1
	add := func(count int, tier model.Tier, startingBid int64) {
		for i := 0; i < count; i++ {
			specs = append(specs, catalog.ItemSpec{
				Title:              fmt.Sprintf("%s reward %d", tier, i+1),
				Tier:               tier,
				StartingBid:        startingBid,
				PositionInRotation: position,
			})
			position++
		}
	}
	add(8, model.TierCommon, 100)
	add(5, model.TierUncommon, 250)
	add(2, model.TierRare, 500)
	return specs
}

// setupAuction builds the whole stack with a season scheduled in the past.
// It stays Dormant until the test advances it.
func setupAuction(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	ledger := coinledger.NewLedger(0)
	qualifier := qualification.NewEvaluator(3)
	bus := events.NopPublisher{}
	settler := settlement.NewRunner(store, ledger, bus)
	controller := lifecycle.NewController(store, settler, bus)

	season, err := catalog.NewManager(store).ScheduleSeason(
		time.Now().UTC().Add(-time.Hour), 7, 21, defaultRotation())
	require.NoError(t, err)

	service := auction.NewAuctionService(store, ledger, controller, qualifier, bus, time.Second)
	router := server.SetupRouter(service)

	// Two qualified teams with funds, one rookie without qualification.
	require.NoError(t, store.UpsertTeam(model.Team{TeamID: "team-alpha", Name: "Alpha", MinXPMet: true}))
	require.NoError(t, store.UpsertTeam(model.Team{TeamID: "team-beta", Name: "Beta", EventParticipationCount: 5}))
	require.NoError(t, store.UpsertTeam(model.Team{TeamID: "team-rookie", Name: "Rookie", EventParticipationCount: 1}))
	require.NoError(t, ledger.Credit("team-alpha", 1000, "seed"))
	require.NoError(t, ledger.Credit("team-beta", 1000, "seed"))
	require.NoError(t, ledger.Credit("team-rookie", 1000, "seed"))

	items, err := store.ListItems(season.SeasonID, "")
	require.NoError(t, err)

	return &testEnv{
		router:     router,
		store:      store,
		ledger:     ledger,
		controller: controller,
		season:     season,
		items:      items,
	}
}

// setupLiveAuction is setupAuction advanced into the Live phase.
func setupLiveAuction(t *testing.T) *testEnv {
	t.Helper()
	env := setupAuction(t)
	require.NoError(t, env.controller.AdvancePhase())
	return env
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes a request and parses the data envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, body)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		if data, ok := resp["data"].(map[string]any); ok {
			return data, w
		}
	}
	return resp, w
}
