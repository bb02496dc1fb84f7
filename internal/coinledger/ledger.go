package coinledger

import (
	"fmt"
	"sync"
	"time"

	"agentvault/internal/auctionerrors"
	model "agentvault/internal/models"
	"agentvault/utils"
)

// DefaultReservationTTL bounds how long a crashed bid request can hold
// funds before the reservation stops counting against the balance.
const DefaultReservationTTL = 5 * time.Minute

// Ledger holds per-team VibeCoin balances with an earn/spend transaction
// log and two-phase coin reservations. Bid placement reserves; actual
// spend happens at settlement for the winning bid only.
type Ledger struct {
	mu           sync.Mutex
	balances     map[string]*model.CoinBalance
	reservations map[string]*model.Reservation // key: reservationID
	transactions []model.CoinTransaction
	ttl          time.Duration
	now          func() time.Time
}

// NewLedger creates a ledger with the given reservation TTL.
// A non-positive ttl falls back to DefaultReservationTTL.
func NewLedger(ttl time.Duration) *Ledger {
	if ttl <= 0 {
		ttl = DefaultReservationTTL
	}
	return &Ledger{
		balances:     make(map[string]*model.CoinBalance),
		reservations: make(map[string]*model.Reservation),
		ttl:          ttl,
		now:          time.Now,
	}
}

// SetClock overrides the time source. Intended for tests.
func (l *Ledger) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// Credit appends an earn transaction and increases the team's balance.
// Fails with ErrInvalidAmount for negative amounts.
func (l *Ledger) Credit(teamID string, amount int64, reason string) error {
	if amount < 0 {
		return fmt.Errorf("credit team %s: %w - negative amount %d", teamID, auctionerrors.ErrInvalidAmount, amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.balanceLocked(teamID)
	balance.TotalEarned += amount
	balance.Balance += amount

	l.transactions = append(l.transactions, model.CoinTransaction{
		TxID:      utils.GenerateID(),
		TeamID:    teamID,
		Type:      model.TransactionEarn,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: l.now(),
	})
	return nil
}

// Reserve places a hold of amount coins for a team's bid on an item.
// A prior hold by the same team on the same item stays in place until
// ConfirmReservation supersedes it, so a bid edit whose write fails
// leaves the standing bid funded; until then only the larger of the two
// holds counts against the balance. Fails with InsufficientFundsError
// when balance minus other active reservations cannot cover the amount.
func (l *Ledger) Reserve(teamID, itemID string, amount int64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("reserve for team %s: %w - non-positive amount %d", teamID, auctionerrors.ErrInvalidAmount, amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweepExpiredLocked()

	balance := l.balanceLocked(teamID)
	available := balance.Balance - l.reservedLocked(teamID, itemID)
	if available < amount {
		return "", fmt.Errorf("reserve %d for team %s on item %s: %w",
			amount, teamID, itemID, &auctionerrors.InsufficientFundsError{Requested: amount, Available: available})
	}

	res := &model.Reservation{
		ReservationID: utils.GenerateID(),
		TeamID:        teamID,
		ItemID:        itemID,
		Amount:        amount,
		Status:        model.ReservationActive,
		ExpiresAt:     l.now().Add(l.ttl),
		CreatedAt:     l.now(),
	}
	l.reservations[res.ReservationID] = res
	return res.ReservationID, nil
}

// ConfirmReservation pins a hold to a recorded bid by clearing its TTL
// and releases any prior hold the team had on the same item. Called after
// the bid upsert succeeds; confirming only then means a failed upsert
// leaves the standing bid's hold untouched. From confirmation on, the
// reservation lives until settlement resolves it; the TTL only has to
// cover the window in which a crashed request could leave an orphaned
// hold.
func (l *Ledger) ConfirmReservation(reservationID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	res, ok := l.reservations[reservationID]
	if !ok || res.Status != model.ReservationActive {
		return fmt.Errorf("confirm reservation %s: %w", reservationID, auctionerrors.ErrReservationNotFound)
	}

	now := l.now()
	for _, prior := range l.reservations {
		if prior == res {
			continue
		}
		if prior.TeamID == res.TeamID && prior.ItemID == res.ItemID &&
			prior.Status == model.ReservationActive && !expired(prior, now) {
			prior.Status = model.ReservationReleased
		}
	}
	res.ExpiresAt = time.Time{}
	return nil
}

// ReleaseReservation returns held funds for a failed or superseded bid.
func (l *Ledger) ReleaseReservation(reservationID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	res, ok := l.reservations[reservationID]
	if !ok || res.Status != model.ReservationActive {
		return fmt.Errorf("release reservation %s: %w", reservationID, auctionerrors.ErrReservationNotFound)
	}
	res.Status = model.ReservationReleased
	return nil
}

// CommitReservation moves a hold into spent funds and records a spend
// transaction. Called by settlement for winning bids only.
func (l *Ledger) CommitReservation(reservationID, reason string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	res, ok := l.reservations[reservationID]
	if !ok || res.Status != model.ReservationActive {
		return fmt.Errorf("commit reservation %s: %w", reservationID, auctionerrors.ErrReservationNotFound)
	}
	return l.commitLocked(res, reason)
}

// CommitReservationFor commits the active reservation a team holds on an
// item, returning the committed amount.
func (l *Ledger) CommitReservationFor(teamID, itemID, reason string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	res := l.activeReservationLocked(teamID, itemID)
	if res == nil {
		return 0, fmt.Errorf("commit reservation for team %s item %s: %w", teamID, itemID, auctionerrors.ErrReservationNotFound)
	}
	if err := l.commitLocked(res, reason); err != nil {
		return 0, err
	}
	return res.Amount, nil
}

// ReleaseReservationFor releases the active reservation a team holds on an
// item. Missing reservations are not an error: settlement re-runs and TTL
// expiry both leave nothing to release.
func (l *Ledger) ReleaseReservationFor(teamID, itemID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if res := l.activeReservationLocked(teamID, itemID); res != nil {
		res.Status = model.ReservationReleased
	}
	return nil
}

// Balance returns a copy of the team's balance row
func (l *Ledger) Balance(teamID string) (model.CoinBalance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return *l.balanceLocked(teamID), nil
}

// AvailableBalance returns balance minus all unexpired active reservations
func (l *Ledger) AvailableBalance(teamID string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweepExpiredLocked()
	return l.balanceLocked(teamID).Balance - l.reservedLocked(teamID, ""), nil
}

// Transactions returns the team's earn/spend log in append order
func (l *Ledger) Transactions(teamID string) []model.CoinTransaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	var txns []model.CoinTransaction
	for _, tx := range l.transactions {
		if tx.TeamID == teamID {
			txns = append(txns, tx)
		}
	}
	return txns
}

func (l *Ledger) commitLocked(res *model.Reservation, reason string) error {
	balance := l.balanceLocked(res.TeamID)
	if balance.Balance < res.Amount {
		// Should be unreachable: the reserve check ran against this balance.
		return fmt.Errorf("commit reservation %s: %w",
			res.ReservationID, &auctionerrors.InsufficientFundsError{Requested: res.Amount, Available: balance.Balance})
	}

	res.Status = model.ReservationCommitted
	balance.Balance -= res.Amount
	balance.TotalSpent += res.Amount

	l.transactions = append(l.transactions, model.CoinTransaction{
		TxID:      utils.GenerateID(),
		TeamID:    res.TeamID,
		Type:      model.TransactionSpend,
		Amount:    res.Amount,
		Reason:    reason,
		CreatedAt: l.now(),
	})
	return nil
}

// expired reports whether a hold is past its TTL. Confirmed reservations
// have a zero ExpiresAt and never expire.
func expired(res *model.Reservation, now time.Time) bool {
	return !res.ExpiresAt.IsZero() && res.ExpiresAt.Before(now)
}

// balanceLocked returns the team's balance row, creating a zero row on
// first touch. Caller must hold l.mu.
func (l *Ledger) balanceLocked(teamID string) *model.CoinBalance {
	if b, ok := l.balances[teamID]; ok {
		return b
	}
	b := &model.CoinBalance{TeamID: teamID}
	l.balances[teamID] = b
	return b
}

// reservedLocked totals the team's unexpired active holds, excluding the
// item exceptItem ("" excludes nothing). Only the largest hold per item
// counts: between Reserve and ConfirmReservation a bid edit briefly holds
// old and new amounts for one item, and the edit nets to the new amount
// rather than stacking both. Caller must hold l.mu.
func (l *Ledger) reservedLocked(teamID, exceptItem string) int64 {
	now := l.now()
	perItem := make(map[string]int64)
	for _, res := range l.reservations {
		if res.TeamID != teamID || res.Status != model.ReservationActive {
			continue
		}
		if expired(res, now) {
			continue
		}
		if exceptItem != "" && res.ItemID == exceptItem {
			continue
		}
		if res.Amount > perItem[res.ItemID] {
			perItem[res.ItemID] = res.Amount
		}
	}
	var total int64
	for _, amount := range perItem {
		total += amount
	}
	return total
}

// activeReservationLocked picks the hold settlement should resolve for a
// (team, item) pair: the confirmed one when present, otherwise the most
// recently created. Caller must hold l.mu.
func (l *Ledger) activeReservationLocked(teamID, itemID string) *model.Reservation {
	now := l.now()
	var best *model.Reservation
	for _, res := range l.reservations {
		if res.TeamID != teamID || res.ItemID != itemID ||
			res.Status != model.ReservationActive || expired(res, now) {
			continue
		}
		if res.ExpiresAt.IsZero() {
			return res
		}
		if best == nil || res.CreatedAt.After(best.CreatedAt) {
			best = res
		}
	}
	return best
}

// sweepExpiredLocked releases reservations past their TTL. Caller must
// hold l.mu.
func (l *Ledger) sweepExpiredLocked() {
	now := l.now()
	for _, res := range l.reservations {
		if res.Status == model.ReservationActive && expired(res, now) {
			res.Status = model.ReservationReleased
			utils.Warn("coinledger: reservation expired", map[string]any{
				"reservation_id": res.ReservationID,
				"team_id":        res.TeamID,
				"item_id":        res.ItemID,
				"amount":         res.Amount,
			})
		}
	}
}
