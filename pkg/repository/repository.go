// Package repository defines the persistence contracts the services depend
// on. Implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/qasioun/remit/pkg/currency"
	"github.com/qasioun/remit/pkg/domain/branch"
	"github.com/qasioun/remit/pkg/domain/transfer"
	"github.com/shopspring/decimal"
)

// Transfers stores transfer transactions. Records are never deleted;
// terminal statuses are the only form of retirement.
type Transfers interface {
	Create(ctx context.Context, tx *transfer.Transaction) error
	Get(ctx context.Context, id uuid.UUID) (*transfer.Transaction, error)
	Update(ctx context.Context, tx *transfer.Transaction) error
	ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]*transfer.Transaction, error)
}

// Branches stores branches and their per-currency balances.
type Branches interface {
	Create(ctx context.Context, b *branch.Branch) error
	Get(ctx context.Context, id int64) (*branch.Branch, error)
	List(ctx context.Context) ([]*branch.Branch, error)
	// UpdateBalance replaces one currency balance of a branch.
	UpdateBalance(ctx context.Context, branchID int64, code currency.Code, balance decimal.Decimal) error
}

// FundHistories stores the append-only audit trail of balance mutations.
type FundHistories interface {
	Append(ctx context.Context, entry *branch.FundHistory) error
	ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]*branch.FundHistory, error)
}

// UnitOfWork provides a transaction boundary and repository access in one
// abstraction, so every repository used inside Do shares the same
// database transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
	Transfers() (Transfers, error)
	Branches() (Branches, error)
	FundHistories() (FundHistories, error)
}
