// Package branch holds the branch entity, its per-currency balances, and
// the immutable fund-history audit records written for every balance
// mutation.
package branch

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/qasioun/remit/pkg/currency"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a branch id does not exist.
	ErrNotFound = errors.New("branch not found")
	// ErrInsufficientBalance is returned when a deduction exceeds the
	// branch's available balance for that currency.
	ErrInsufficientBalance = errors.New("insufficient branch balance")
	// ErrNothingToDeduct is returned when a full deduction finds the
	// balance already at zero.
	ErrNothingToDeduct = errors.New("balance is already zero")
	// ErrAmountMustBePositive is returned for non-positive ledger amounts.
	ErrAmountMustBePositive = errors.New("amount must be positive")
)

// Branch is an operating location of the remittance network. Its two
// allocated balances are mutated only through the ledger service, never by
// direct edit.
type Branch struct {
	ID           int64           `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Governorate  string          `json:"governorate"`
	Location     string          `json:"location"`
	Phone        string          `json:"phone"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	AllocatedSYP decimal.Decimal `json:"allocated_amount_syp"`
	AllocatedUSD decimal.Decimal `json:"allocated_amount_usd"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Balance returns the branch's available balance for the given currency.
func (b *Branch) Balance(code currency.Code) (decimal.Decimal, error) {
	switch code {
	case currency.SYP:
		return b.AllocatedSYP, nil
	case currency.USD:
		return b.AllocatedUSD, nil
	}
	return decimal.Zero, fmt.Errorf("no balance held in currency %q", code)
}

// SetBalance replaces the branch's balance for the given currency. Only the
// ledger may call this; the balance must never become negative.
func (b *Branch) SetBalance(code currency.Code, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInsufficientBalance
	}
	switch code {
	case currency.SYP:
		b.AllocatedSYP = amount
	case currency.USD:
		b.AllocatedUSD = amount
	default:
		return fmt.Errorf("no balance held in currency %q", code)
	}
	return nil
}

// Operation is the kind of balance mutation a fund-history entry records.
type Operation string

const (
	// OpAllocation credits a branch balance.
	OpAllocation Operation = "allocation"
	// OpDeduction debits a branch balance.
	OpDeduction Operation = "deduction"
)

// FundHistory is the append-only audit record of one balance mutation.
// For every branch and currency, the sum of allocations minus deductions
// must equal the current balance.
type FundHistory struct {
	ID          uuid.UUID       `json:"id"`
	BranchID    int64           `json:"branch_id"`
	Operation   Operation       `json:"operation"`
	Currency    currency.Code   `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewFundHistory builds an audit entry for one balance mutation.
func NewFundHistory(branchID int64, op Operation, code currency.Code, amount decimal.Decimal, description string) *FundHistory {
	return &FundHistory{
		ID:          uuid.New(),
		BranchID:    branchID,
		Operation:   op,
		Currency:    code,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now(),
	}
}
