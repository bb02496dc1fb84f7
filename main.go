package main

import (
	"fmt"
	"os"
	"time"

	auction "agentvault/internal/auctionService"
	"agentvault/internal/catalog"
	"agentvault/internal/coinledger"
	"agentvault/internal/config"
	"agentvault/internal/events"
	"agentvault/internal/lifecycle"
	model "agentvault/internal/models"
	"agentvault/internal/qualification"
	"agentvault/internal/repository"
	"agentvault/internal/server"
	"agentvault/internal/settlement"
	"agentvault/utils"
)

func main() {
	cfg := config.Load()

	store := repository.NewMemoryStore()
	ledger := coinledger.NewLedger(cfg.ReservationTTL)
	qualifier := qualification.NewEvaluator(cfg.EventThreshold)
	bus := events.NewBus()

	settler := settlement.NewRunner(store, ledger, bus)
	controller := lifecycle.NewController(store, settler, bus)

	catalogMgr := catalog.NewManager(store)
	if err := seedDemoSeason(catalogMgr, store, ledger, cfg); err != nil {
		utils.Fatal("failed to seed demo season", map[string]any{"error": err.Error()})
	}

	auctionSvc := auction.NewAuctionService(store, ledger, controller, qualifier, bus, cfg.BidLockTimeout)

	// Drive the phase machine from an in-process tick as well; an external
	// scheduler hitting POST /auction/advance does the same thing.
	go runScheduler(auctionSvc)

	router := server.SetupRouter(auctionSvc)

	fmt.Printf("Starting auction server on %s...\n", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// runScheduler ticks AdvancePhase; the call is idempotent so overlap with
// external scheduler calls is harmless.
func runScheduler(svc *auction.AuctionService) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := svc.AdvancePhase(); err != nil {
			utils.Warn("scheduler: advance phase failed", map[string]any{"error": err.Error()})
		}
	}
}

// seedDemoSeason schedules a season starting now and seeds sample teams
func seedDemoSeason(catalogMgr *catalog.Manager, store *repository.MemoryStore, ledger *coinledger.Ledger, cfg config.Config) error {
	specs := make([]catalog.ItemSpec, 0, catalog.RotationSize)
	tiers := []struct {
		tier        model.Tier
		count       int
		startingBid int64
	}{
		{model.TierCommon, 8, 100},
		{model.TierUncommon, 5, 250},
		{model.TierRare, 2, 500},
	}

	position := 1
	for _, t := range tiers {
		for i := 0; i < t.count; i++ {
			specs = append(specs, catalog.ItemSpec{
				Title:              fmt.Sprintf("%s reward %d", t.tier, i+1),
				Tier:               t.tier,
				StartingBid:        t.startingBid,
				PositionInRotation: position,
			})
			position++
		}
	}

	if _, err := catalogMgr.ScheduleSeason(time.Now().UTC(), cfg.LiveWindowDays, cfg.CooldownDays, specs); err != nil {
		return err
	}

	teams := []model.Team{
		{TeamID: "team-alpha", Name: "Alpha", MinXPMet: true},
		{TeamID: "team-beta", Name: "Beta", EventParticipationCount: 5},
	}
	for _, team := range teams {
		if err := store.UpsertTeam(team); err != nil {
			return err
		}
		if err := ledger.Credit(team.TeamID, 1000, "season seed"); err != nil {
			return err
		}
	}
	return nil
}
