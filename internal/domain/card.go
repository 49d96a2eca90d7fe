package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Card state machine. Status is authoritative; BlockRequested is an auxiliary
// flag that is only meaningful while the card is ACTIVE. Who may drive a
// transition is decided by the services, not here.

// IsExpired reports whether the card is past its validity date. The card
// counts as expired on the validity date itself.
func (c *Card) IsExpired(now time.Time) bool {
	return !toDate(now).Before(toDate(c.ValidityPeriod))
}

// IsActive reports whether the card can participate in operations:
// status ACTIVE and not past validity.
func (c *Card) IsActive(now time.Time) bool {
	return c.Status == CardStatusActive && !c.IsExpired(now)
}

func (c *Card) IsBlocked() bool {
	return c.Status == CardStatusBlocked
}

// ReconcileExpiry folds the validity date into the stored status. It returns
// true when the status changed and must be written back.
func (c *Card) ReconcileExpiry(now time.Time) bool {
	if !c.IsExpired(now) || c.Status == CardStatusExpired {
		return false
	}
	c.Status = CardStatusExpired
	c.BlockRequested = false
	c.BlockRequestReason = nil
	c.UpdatedAt = now
	return true
}

func (c *Card) RequestBlock(reason string, now time.Time) error {
	if !c.IsActive(now) {
		return fmt.Errorf("%w: only active cards can request block", ErrCardOperation)
	}
	if c.BlockRequested {
		return fmt.Errorf("%w: block already requested", ErrCardOperation)
	}
	c.BlockRequested = true
	c.BlockRequestReason = &reason
	c.UpdatedAt = now
	return nil
}

func (c *Card) CancelBlockRequest(now time.Time) error {
	if !c.BlockRequested {
		return fmt.Errorf("%w: no block request pending", ErrCardOperation)
	}
	c.BlockRequested = false
	c.BlockRequestReason = nil
	c.UpdatedAt = now
	return nil
}

// ApproveBlockRequest blocks the card. The block reason is the admin-supplied
// one when present, otherwise the reason the owner gave when requesting.
func (c *Card) ApproveBlockRequest(adminReason *string, now time.Time) error {
	if !c.BlockRequested {
		return fmt.Errorf("%w: no block request pending", ErrCardOperation)
	}
	reason := c.BlockRequestReason
	if adminReason != nil && *adminReason != "" {
		reason = adminReason
	}
	c.Status = CardStatusBlocked
	c.BlockReason = reason
	c.BlockRequested = false
	c.BlockRequestReason = nil
	c.UpdatedAt = now
	return nil
}

func (c *Card) RejectBlockRequest(now time.Time) error {
	if !c.BlockRequested {
		return fmt.Errorf("%w: no block request pending", ErrCardOperation)
	}
	c.BlockRequested = false
	c.BlockRequestReason = nil
	c.UpdatedAt = now
	return nil
}

// Block is the administrative block, with or without a pending request.
func (c *Card) Block(reason string, now time.Time) error {
	if c.IsBlocked() {
		return fmt.Errorf("%w: card is already blocked", ErrCardOperation)
	}
	if c.IsExpired(now) {
		return fmt.Errorf("%w: expired card cannot be blocked", ErrCardOperation)
	}
	c.Status = CardStatusBlocked
	c.BlockReason = &reason
	c.BlockRequested = false
	c.BlockRequestReason = nil
	c.UpdatedAt = now
	return nil
}

func (c *Card) Activate(now time.Time) error {
	if c.IsExpired(now) {
		return fmt.Errorf("%w: expired card cannot be activated", ErrCardOperation)
	}
	c.Status = CardStatusActive
	c.BlockReason = nil
	c.BlockRequested = false
	c.BlockRequestReason = nil
	c.UpdatedAt = now
	return nil
}

func (c *Card) Withdraw(amount decimal.Decimal, now time.Time) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: withdrawal amount must be positive", ErrCardOperation)
	}
	if !c.IsActive(now) {
		return fmt.Errorf("%w: card is not active", ErrCardOperation)
	}
	if c.Balance.LessThan(amount) {
		return fmt.Errorf("%w: available %s", ErrInsufficientFunds, c.Balance.StringFixed(2))
	}
	c.Balance = c.Balance.Sub(amount)
	c.UpdatedAt = now
	return nil
}

func (c *Card) Deposit(amount decimal.Decimal, now time.Time) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: deposit amount must be positive", ErrCardOperation)
	}
	c.Balance = c.Balance.Add(amount)
	c.UpdatedAt = now
	return nil
}

func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
