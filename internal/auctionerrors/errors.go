package auctionerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrItemNotFound        = errors.New("item not found")
	ErrSeasonNotFound      = errors.New("season not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrNoBids              = errors.New("no bids found for item")
	ErrReservationNotFound = errors.New("reservation not found")
)

// business logic errors
var (
	ErrAuctionNotLive         = errors.New("auction is not live")
	ErrNotQualified           = errors.New("team is not qualified to bid")
	ErrBidTooLow              = errors.New("bid amount too low")
	ErrInsufficientFunds      = errors.New("insufficient coin balance")
	ErrContention             = errors.New("could not acquire item lock, retry")
	ErrSettlementInProgress   = errors.New("settlement already in progress")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidSeasonSchedule  = errors.New("invalid season schedule")
	ErrItemsImmutableWhenLive = errors.New("items are immutable once the season is live")
)

// BidTooLowError carries the minimum acceptable amount so the caller can
// retry without another round trip.
type BidTooLowError struct {
	CurrentTop     int64
	MinimumNextBid int64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid amount too low: current top is %d, minimum next bid is %d", e.CurrentTop, e.MinimumNextBid)
}

func (e *BidTooLowError) Unwrap() error { return ErrBidTooLow }

// InsufficientFundsError carries the available balance for the same reason.
type InsufficientFundsError struct {
	Requested int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient coin balance: requested %d, available %d", e.Requested, e.Available)
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }
