package coinledger

import (
	"errors"
	"sync"
	"testing"
	"time"

	"agentvault/internal/auctionerrors"
	model "agentvault/internal/models"

	"github.com/stretchr/testify/require"
)

func TestLedger_Credit(t *testing.T) {
	tests := []struct {
		name        string
		amount      int64
		expectError bool
	}{
		{name: "positive_amount", amount: 500, expectError: false},
		{name: "zero_amount", amount: 0, expectError: false},
		{name: "negative_amount", amount: -10, expectError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ledger := NewLedger(0)

			err := ledger.Credit("teamA", tc.amount, "gameplay")
			if tc.expectError {
				require.Error(t, err)
				require.True(t, errors.Is(err, auctionerrors.ErrInvalidAmount))
				return
			}
			require.NoError(t, err)

			balance, err := ledger.Balance("teamA")
			require.NoError(t, err)
			require.Equal(t, tc.amount, balance.Balance)
			require.Equal(t, tc.amount, balance.TotalEarned)
			require.Equal(t, int64(0), balance.TotalSpent)
		})
	}
}

func TestLedger_Reserve_InsufficientFunds(t *testing.T) {
	ledger := NewLedger(0)
	require.NoError(t, ledger.Credit("teamA", 100, "seed"))

	_, err := ledger.Reserve("teamA", "item1", 150)
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrInsufficientFunds))

	var insufficient *auctionerrors.InsufficientFundsError
	require.True(t, errors.As(err, &insufficient))
	require.Equal(t, int64(100), insufficient.Available)
	require.Equal(t, int64(150), insufficient.Requested)
}

func TestLedger_Reserve_AcrossItems(t *testing.T) {
	ledger := NewLedger(0)
	require.NoError(t, ledger.Credit("teamA", 100, "seed"))

	_, err := ledger.Reserve("teamA", "item1", 60)
	require.NoError(t, err)

	available, err := ledger.AvailableBalance("teamA")
	require.NoError(t, err)
	require.Equal(t, int64(40), available)

	// Second hold on a different item may only use what is left.
	_, err = ledger.Reserve("teamA", "item2", 60)
	require.True(t, errors.Is(err, auctionerrors.ErrInsufficientFunds))

	_, err = ledger.Reserve("teamA", "item2", 40)
	require.NoError(t, err)
}

func TestLedger_Reserve_SameItemHoldsNet(t *testing.T) {
	ledger := NewLedger(0)
	require.NoError(t, ledger.Credit("teamA", 100, "seed"))

	oldID, err := ledger.Reserve("teamA", "item1", 80)
	require.NoError(t, err)
	require.NoError(t, ledger.ConfirmReservation(oldID))

	// Editing a bid nets to the new amount: 90 on top of 80 needs 90 of
	// headroom, not 170.
	newID, err := ledger.Reserve("teamA", "item1", 90)
	require.NoError(t, err)
	require.NotEmpty(t, newID)

	available, err := ledger.AvailableBalance("teamA")
	require.NoError(t, err)
	require.Equal(t, int64(10), available)

	// Confirming the new hold retires the old one.
	require.NoError(t, ledger.ConfirmReservation(newID))
	require.True(t, errors.Is(ledger.ReleaseReservation(oldID), auctionerrors.ErrReservationNotFound))

	amount, err := ledger.CommitReservationFor("teamA", "item1", "won item1")
	require.NoError(t, err)
	require.Equal(t, int64(90), amount)
}

// An edit whose bid write fails releases only its own hold: the standing
// bid keeps its funds reserved for settlement.
func TestLedger_FailedEditKeepsStandingHold(t *testing.T) {
	ledger := NewLedger(0)
	require.NoError(t, ledger.Credit("teamA", 100, "seed"))

	standingID, err := ledger.Reserve("teamA", "item1", 80)
	require.NoError(t, err)
	require.NoError(t, ledger.ConfirmReservation(standingID))

	editID, err := ledger.Reserve("teamA", "item1", 90)
	require.NoError(t, err)
	require.NoError(t, ledger.ReleaseReservation(editID))

	available, err := ledger.AvailableBalance("teamA")
	require.NoError(t, err)
	require.Equal(t, int64(20), available)

	// Settlement still finds the standing bid's hold.
	amount, err := ledger.CommitReservationFor("teamA", "item1", "won item1")
	require.NoError(t, err)
	require.Equal(t, int64(80), amount)
}

func TestLedger_CommitReservation(t *testing.T) {
	ledger := NewLedger(0)
	require.NoError(t, ledger.Credit("teamA", 200, "seed"))

	resID, err := ledger.Reserve("teamA", "item1", 120)
	require.NoError(t, err)

	require.NoError(t, ledger.CommitReservation(resID, "won item1"))

	balance, err := ledger.Balance("teamA")
	require.NoError(t, err)
	require.Equal(t, int64(80), balance.Balance)
	require.Equal(t, int64(200), balance.TotalEarned)
	require.Equal(t, int64(120), balance.TotalSpent)
	require.Equal(t, balance.Balance, balance.TotalEarned-balance.TotalSpent)

	// A committed hold cannot be committed or released again.
	require.True(t, errors.Is(ledger.CommitReservation(resID, "again"), auctionerrors.ErrReservationNotFound))
	require.True(t, errors.Is(ledger.ReleaseReservation(resID), auctionerrors.ErrReservationNotFound))

	txns := ledger.Transactions("teamA")
	require.Len(t, txns, 2)
	require.Equal(t, model.TransactionEarn, txns[0].Type)
	require.Equal(t, model.TransactionSpend, txns[1].Type)
	require.Equal(t, int64(120), txns[1].Amount)
}

func TestLedger_ReleaseReservation_FreesFunds(t *testing.T) {
	ledger := NewLedger(0)
	require.NoError(t, ledger.Credit("teamA", 100, "seed"))

	resID, err := ledger.Reserve("teamA", "item1", 100)
	require.NoError(t, err)

	available, err := ledger.AvailableBalance("teamA")
	require.NoError(t, err)
	require.Equal(t, int64(0), available)

	require.NoError(t, ledger.ReleaseReservation(resID))

	available, err = ledger.AvailableBalance("teamA")
	require.NoError(t, err)
	require.Equal(t, int64(100), available)

	balance, err := ledger.Balance("teamA")
	require.NoError(t, err)
	require.Equal(t, int64(0), balance.TotalSpent, "released holds never become spend")
}

func TestLedger_CommitReservationFor(t *testing.T) {
	ledger := NewLedger(0)
	require.NoError(t, ledger.Credit("teamA", 300, "seed"))

	_, err := ledger.Reserve("teamA", "item1", 150)
	require.NoError(t, err)

	amount, err := ledger.CommitReservationFor("teamA", "item1", "won item1")
	require.NoError(t, err)
	require.Equal(t, int64(150), amount)

	// Second commit for the same pair finds nothing.
	_, err = ledger.CommitReservationFor("teamA", "item1", "again")
	require.True(t, errors.Is(err, auctionerrors.ErrReservationNotFound))

	// ReleaseFor on a missing hold is a no-op, not an error.
	require.NoError(t, ledger.ReleaseReservationFor("teamA", "item1"))
}

func TestLedger_ReservationTTL(t *testing.T) {
	ledger := NewLedger(time.Minute)

	now := time.Now().UTC()
	ledger.SetClock(func() time.Time { return now })

	require.NoError(t, ledger.Credit("teamA", 100, "seed"))
	resID, err := ledger.Reserve("teamA", "item1", 100)
	require.NoError(t, err)

	available, err := ledger.AvailableBalance("teamA")
	require.NoError(t, err)
	require.Equal(t, int64(0), available)

	// Past the TTL the hold stops counting: a crashed request cannot
	// permanently lock funds.
	now = now.Add(2 * time.Minute)
	available, err = ledger.AvailableBalance("teamA")
	require.NoError(t, err)
	require.Equal(t, int64(100), available)

	_, err = ledger.Reserve("teamA", "item2", 100)
	require.NoError(t, err)

	// The expired hold can no longer be committed.
	require.True(t, errors.Is(ledger.CommitReservation(resID, "late"), auctionerrors.ErrReservationNotFound))
}

func TestLedger_ConfirmReservation_PinsPastTTL(t *testing.T) {
	ledger := NewLedger(time.Minute)

	now := time.Now().UTC()
	ledger.SetClock(func() time.Time { return now })

	require.NoError(t, ledger.Credit("teamA", 100, "seed"))
	resID, err := ledger.Reserve("teamA", "item1", 100)
	require.NoError(t, err)
	require.NoError(t, ledger.ConfirmReservation(resID))

	// Days later (settlement time) the confirmed hold still stands.
	now = now.Add(7 * 24 * time.Hour)
	available, err := ledger.AvailableBalance("teamA")
	require.NoError(t, err)
	require.Equal(t, int64(0), available)

	amount, err := ledger.CommitReservationFor("teamA", "item1", "won")
	require.NoError(t, err)
	require.Equal(t, int64(100), amount)
}

// Concurrent reserves across items must never over-commit a team's
// balance: sum of granted holds stays within funds.
func TestLedger_NoDoubleSpendUnderConcurrency(t *testing.T) {
	ledger := NewLedger(0)
	require.NoError(t, ledger.Credit("teamA", 100, "seed"))

	const workers = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	var granted int64

	for i := 0; i < workers; i++ {
		itemID := string(rune('a' + i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ledger.Reserve("teamA", "item-"+itemID, 30); err == nil {
				mu.Lock()
				granted += 30
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.LessOrEqual(t, granted, int64(100), "reserved total must never exceed the balance")
	require.Greater(t, granted, int64(0), "at least one reserve must succeed")

	available, err := ledger.AvailableBalance("teamA")
	require.NoError(t, err)
	require.Equal(t, int64(100)-granted, available)
}
