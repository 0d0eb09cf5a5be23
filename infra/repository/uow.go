// Package repository provides the gorm-backed unit of work. The typed
// accessors hand out repositories bound to the active transaction session,
// so everything done inside Do commits or rolls back as one.
package repository

import (
	"context"
	"errors"

	branchrepo "github.com/qasioun/remit/infra/repository/branch"
	fundhistoryrepo "github.com/qasioun/remit/infra/repository/fundhistory"
	transferrepo "github.com/qasioun/remit/infra/repository/transfer"
	"github.com/qasioun/remit/pkg/repository"
	"gorm.io/gorm"
)

// ErrNoTransaction is returned when a repository accessor is used outside
// a Do boundary.
var ErrNoTransaction = errors.New("repository access outside a unit of work")

// UoW is the gorm implementation of repository.UnitOfWork.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a unit of work on the given database handle.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside one database transaction. Nested calls join the
// enclosing transaction instead of opening a new one.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// Transfers implements repository.UnitOfWork.
func (u *UoW) Transfers() (repository.Transfers, error) {
	if u.tx == nil {
		return nil, ErrNoTransaction
	}
	return transferrepo.New(u.tx), nil
}

// Branches implements repository.UnitOfWork.
func (u *UoW) Branches() (repository.Branches, error) {
	if u.tx == nil {
		return nil, ErrNoTransaction
	}
	return branchrepo.New(u.tx), nil
}

// FundHistories implements repository.UnitOfWork.
func (u *UoW) FundHistories() (repository.FundHistories, error) {
	if u.tx == nil {
		return nil, ErrNoTransaction
	}
	return fundhistoryrepo.New(u.tx), nil
}
