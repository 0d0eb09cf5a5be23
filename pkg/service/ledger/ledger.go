// Package ledger owns the per-branch, per-currency balances. Every balance
// mutation goes through Apply under the balance lock from LockBalance,
// which serializes writers on the same branch+currency pair across the
// whole unit of work, and appends one immutable fund-history entry inside
// the same transaction boundary as the balance change.
package ledger

import (
	"context"
	"log/slog"
	"sync"

	"github.com/qasioun/remit/pkg/currency"
	"github.com/qasioun/remit/pkg/domain/branch"
	"github.com/qasioun/remit/pkg/repository"
	"github.com/shopspring/decimal"
)

// balanceKey identifies one serialized balance. Operations on different
// branches, or different currencies of the same branch, proceed in
// parallel.
type balanceKey struct {
	branchID int64
	code     currency.Code
}

// Service exposes the ledger operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger

	mu    sync.Mutex
	locks map[balanceKey]*sync.Mutex
}

// New creates a ledger service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
		locks:  make(map[balanceKey]*sync.Mutex),
	}
}

// LockBalance acquires the single-writer lock for one branch+currency pair
// and returns the unlock function. The lock must be held across the entire
// unit of work that mutates the balance, not just the read-modify-write:
// releasing it before the transaction commits would let the next writer
// read the stale committed balance. Callers that run Apply inside their
// own unit of work take this lock before opening it.
func (s *Service) LockBalance(branchID int64, code currency.Code) func() {
	s.mu.Lock()
	key := balanceKey{branchID: branchID, code: code}
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Allocate increases a branch's balance for the given currency and appends
// an allocation audit entry.
func (s *Service) Allocate(
	ctx context.Context,
	branchID int64,
	code currency.Code,
	amount decimal.Decimal,
	description string,
) (entry *branch.FundHistory, err error) {
	unlock := s.LockBalance(branchID, code)
	defer unlock()

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		entry, err = s.Apply(ctx, uow, branch.OpAllocation, branchID, code, amount, description)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Deduct decreases a branch's balance for the given currency, failing with
// branch.ErrInsufficientBalance when the amount exceeds the balance. There
// is no partial deduction.
func (s *Service) Deduct(
	ctx context.Context,
	branchID int64,
	code currency.Code,
	amount decimal.Decimal,
	description string,
) (entry *branch.FundHistory, err error) {
	unlock := s.LockBalance(branchID, code)
	defer unlock()

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		entry, err = s.Apply(ctx, uow, branch.OpDeduction, branchID, code, amount, description)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// FullDeduct empties a branch's balance for the given currency. Fails with
// branch.ErrNothingToDeduct when the balance is already zero.
func (s *Service) FullDeduct(
	ctx context.Context,
	branchID int64,
	code currency.Code,
	description string,
) (entry *branch.FundHistory, err error) {
	unlock := s.LockBalance(branchID, code)
	defer unlock()

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		branches, err := uow.Branches()
		if err != nil {
			return err
		}
		b, err := branches.Get(ctx, branchID)
		if err != nil {
			return err
		}
		balance, err := b.Balance(code)
		if err != nil {
			return err
		}
		if balance.IsZero() {
			return branch.ErrNothingToDeduct
		}
		entry, err = s.apply(ctx, uow, b, branch.OpDeduction, code, balance, description)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// GetHistory returns a branch's fund-history entries in append order.
// limit <= 0 means no limit.
func (s *Service) GetHistory(
	ctx context.Context,
	branchID int64,
	limit, offset int,
) (entries []*branch.FundHistory, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		histories, err := uow.FundHistories()
		if err != nil {
			return err
		}
		entries, err = histories.ListByBranch(ctx, branchID, limit, offset)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Apply performs one balance mutation inside the caller's unit of work.
// This is the entry point for services that must combine a ledger movement
// with their own writes in a single transaction boundary, such as transfer
// creation. The caller holds the LockBalance lock for the branch+currency
// pair from before the unit of work opens until after it commits.
func (s *Service) Apply(
	ctx context.Context,
	uow repository.UnitOfWork,
	op branch.Operation,
	branchID int64,
	code currency.Code,
	amount decimal.Decimal,
	description string,
) (*branch.FundHistory, error) {
	if !amount.IsPositive() {
		return nil, branch.ErrAmountMustBePositive
	}
	branches, err := uow.Branches()
	if err != nil {
		return nil, err
	}
	b, err := branches.Get(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, uow, b, op, code, amount, description)
}

// apply mutates the balance and appends the audit entry. The caller holds
// the balance lock and supplies the loaded branch.
func (s *Service) apply(
	ctx context.Context,
	uow repository.UnitOfWork,
	b *branch.Branch,
	op branch.Operation,
	code currency.Code,
	amount decimal.Decimal,
	description string,
) (*branch.FundHistory, error) {
	balance, err := b.Balance(code)
	if err != nil {
		return nil, err
	}

	var next decimal.Decimal
	switch op {
	case branch.OpAllocation:
		next = balance.Add(amount)
	case branch.OpDeduction:
		if amount.GreaterThan(balance) {
			return nil, branch.ErrInsufficientBalance
		}
		next = balance.Sub(amount)
	}

	branches, err := uow.Branches()
	if err != nil {
		return nil, err
	}
	if err := branches.UpdateBalance(ctx, b.ID, code, next); err != nil {
		return nil, err
	}

	entry := branch.NewFundHistory(b.ID, op, code, amount, description)
	histories, err := uow.FundHistories()
	if err != nil {
		return nil, err
	}
	if err := histories.Append(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("balance updated",
		"branch_id", b.ID,
		"operation", op,
		"currency", code,
		"amount", amount.String(),
		"balance", next.String(),
	)
	return entry, nil
}
