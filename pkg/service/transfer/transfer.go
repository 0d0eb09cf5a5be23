// Package transfer provides the transaction lifecycle service: creation
// with derived tax fields, status transitions, receipt confirmation, and
// receipt composition.
//
// Balance policy: creating a transfer deducts the principal from the
// originating branch's balance in the same transaction boundary. A later
// cancellation or rejection refunds it. Completion moves no funds; the
// destination branch pays out from its own allocated float.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/qasioun/remit/pkg/currency"
	"github.com/qasioun/remit/pkg/domain/branch"
	"github.com/qasioun/remit/pkg/domain/transfer"
	"github.com/qasioun/remit/pkg/receipt"
	"github.com/qasioun/remit/pkg/repository"
	"github.com/qasioun/remit/pkg/service/ledger"
)

// Service provides business logic for transfer transactions.
type Service struct {
	uow    repository.UnitOfWork
	ledger *ledger.Service
	logger *slog.Logger

	mu    sync.Mutex
	locks map[uuid.UUID]*txLock
}

// txLock is a per-transaction mutex with a waiter count so the entry can
// be evicted from the lock map once the last holder releases it. Without
// the count the map would grow by one entry per transaction ever mutated.
type txLock struct {
	mu   sync.Mutex
	refs int
}

// New creates a transfer service.
func New(uow repository.UnitOfWork, ledgerSvc *ledger.Service, logger *slog.Logger) *Service {
	return &Service{
		uow:    uow,
		ledger: ledgerSvc,
		logger: logger,
		locks:  make(map[uuid.UUID]*txLock),
	}
}

// lockTransaction serializes mutations of a single transaction so a second
// writer always observes the first writer's resulting status.
func (s *Service) lockTransaction(id uuid.UUID) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &txLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

// Create validates the teller's input, stamps the originating branch's tax
// rate onto the new transaction, persists it in pending, and deducts the
// principal from the originating branch's balance. The record and the
// deduction commit atomically; on any failure nothing is persisted.
func (s *Service) Create(ctx context.Context, input transfer.CreateInput) (tx *transfer.Transaction, err error) {
	logger := s.logger.With(
		"branch_id", input.BranchID,
		"destination_branch_id", input.DestinationBranchID,
		"currency", input.Currency,
	)

	// The origin balance lock spans the whole unit of work so the deduction
	// commits before any concurrent writer reads the balance. Unsupported
	// currencies skip the lock and fail validation inside.
	if currency.IsSupported(input.Currency) {
		unlock := s.ledger.LockBalance(input.BranchID, input.Currency)
		defer unlock()
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		branches, err := uow.Branches()
		if err != nil {
			return err
		}
		origin, err := branches.Get(ctx, input.BranchID)
		if err != nil {
			return err
		}

		tx, err = transfer.New(input, origin.TaxRate)
		if err != nil {
			return err
		}

		transfers, err := uow.Transfers()
		if err != nil {
			return err
		}
		if err := transfers.Create(ctx, tx); err != nil {
			return err
		}

		_, err = s.ledger.Apply(ctx, uow, branch.OpDeduction,
			tx.BranchID, tx.Currency, tx.Amount,
			fmt.Sprintf("transfer %s created", tx.ID))
		return err
	})
	if err != nil {
		logger.Error("transfer creation failed", "error", err)
		return nil, err
	}

	logger.Info("transfer created",
		"transfer_id", tx.ID,
		"amount", tx.Amount.String(),
		"tax_amount", tx.TaxAmount.String(),
	)
	return tx, nil
}

// Get returns a transaction by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (tx *transfer.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		transfers, err := uow.Transfers()
		if err != nil {
			return err
		}
		tx, err = transfers.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// ListByBranch returns transactions originated at a branch, newest first.
func (s *Service) ListByBranch(ctx context.Context, branchID int64, limit, offset int) (txs []*transfer.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		transfers, err := uow.Transfers()
		if err != nil {
			return err
		}
		txs, err = transfers.ListByBranch(ctx, branchID, limit, offset)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// TransitionStatus moves a transaction to the requested status. A move
// into cancelled or rejected refunds the principal to the originating
// branch within the same transaction boundary.
func (s *Service) TransitionStatus(ctx context.Context, id uuid.UUID, next transfer.Status) (tx *transfer.Transaction, err error) {
	unlock := s.lockTransaction(id)
	defer unlock()

	// A refunding transition also needs the origin balance lock, taken
	// before the unit of work opens. Branch and currency are immutable, so
	// reading them outside the transaction is safe; the transaction lock
	// already excludes concurrent mutators of this transfer.
	if next == transfer.StatusCancelled || next == transfer.StatusRejected {
		prior, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		unlockBalance := s.ledger.LockBalance(prior.BranchID, prior.Currency)
		defer unlockBalance()
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		transfers, err := uow.Transfers()
		if err != nil {
			return err
		}
		tx, err = transfers.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.TransitionTo(next); err != nil {
			return err
		}
		if err := transfers.Update(ctx, tx); err != nil {
			return err
		}

		if next == transfer.StatusCancelled || next == transfer.StatusRejected {
			_, err = s.ledger.Apply(ctx, uow, branch.OpAllocation,
				tx.BranchID, tx.Currency, tx.Amount,
				fmt.Sprintf("transfer %s %s, principal refunded", tx.ID, next))
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, transfer.ErrInvalidTransition) {
			s.logger.Error("status transition failed", "transfer_id", id, "error", err)
		}
		return nil, err
	}

	s.logger.Info("transfer status changed", "transfer_id", id, "status", next)
	return tx, nil
}

// MarkReceived records the receiver confirmation taken at hand-off.
func (s *Service) MarkReceived(ctx context.Context, id uuid.UUID, conf transfer.ReceiverConfirmation) (tx *transfer.Transaction, err error) {
	unlock := s.lockTransaction(id)
	defer unlock()

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		transfers, err := uow.Transfers()
		if err != nil {
			return err
		}
		tx, err = transfers.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.MarkReceived(conf); err != nil {
			return err
		}
		return transfers.Update(ctx, tx)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("transfer receipt confirmed", "transfer_id", id)
	return tx, nil
}

// Receipt composes the settlement receipt document for a transaction.
func (s *Service) Receipt(ctx context.Context, id uuid.UUID) (doc *receipt.Receipt, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		transfers, err := uow.Transfers()
		if err != nil {
			return err
		}
		tx, err := transfers.Get(ctx, id)
		if err != nil {
			return err
		}

		branches, err := uow.Branches()
		if err != nil {
			return err
		}
		origin, err := branches.Get(ctx, tx.BranchID)
		if err != nil {
			return err
		}
		destination, err := branches.Get(ctx, tx.DestinationBranchID)
		if err != nil {
			return err
		}

		doc, err = receipt.Compose(tx, origin, destination)
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
