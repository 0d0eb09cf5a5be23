// Package memory provides an in-memory UnitOfWork implementation. It backs
// the service and handler tests; production uses the gorm implementation
// in infra/repository.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/qasioun/remit/pkg/currency"
	"github.com/qasioun/remit/pkg/domain/branch"
	"github.com/qasioun/remit/pkg/domain/transfer"
	"github.com/qasioun/remit/pkg/repository"
	"github.com/shopspring/decimal"
)

// store holds all state behind a single mutex. Do serializes callers and
// restores a snapshot when the unit of work fails, so a failed operation
// has no observable effect.
type store struct {
	mu           sync.Mutex
	transfers    map[uuid.UUID]*transfer.Transaction
	branches     map[int64]*branch.Branch
	histories    []*branch.FundHistory
	nextBranchID int64
}

type snapshot struct {
	transfers    map[uuid.UUID]*transfer.Transaction
	branches     map[int64]*branch.Branch
	histories    []*branch.FundHistory
	nextBranchID int64
}

// UoW is an in-memory repository.UnitOfWork.
type UoW struct {
	store *store
}

// NewUoW creates an empty in-memory unit of work.
func NewUoW() *UoW {
	return &UoW{store: &store{
		transfers:    make(map[uuid.UUID]*transfer.Transaction),
		branches:     make(map[int64]*branch.Branch),
		nextBranchID: 1,
	}}
}

// Do runs fn with exclusive access to the store. On error every change fn
// made is rolled back.
func (u *UoW) Do(_ context.Context, fn func(uow repository.UnitOfWork) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	snap := u.store.take()
	if err := fn(u); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

// Transfers implements repository.UnitOfWork.
func (u *UoW) Transfers() (repository.Transfers, error) { return &transfers{u.store}, nil }

// Branches implements repository.UnitOfWork.
func (u *UoW) Branches() (repository.Branches, error) { return &branches{u.store}, nil }

// FundHistories implements repository.UnitOfWork.
func (u *UoW) FundHistories() (repository.FundHistories, error) { return &histories{u.store}, nil }

func (s *store) take() snapshot {
	snap := snapshot{
		transfers:    make(map[uuid.UUID]*transfer.Transaction, len(s.transfers)),
		branches:     make(map[int64]*branch.Branch, len(s.branches)),
		histories:    append([]*branch.FundHistory(nil), s.histories...),
		nextBranchID: s.nextBranchID,
	}
	for id, tx := range s.transfers {
		snap.transfers[id] = cloneTransfer(tx)
	}
	for id, b := range s.branches {
		snap.branches[id] = cloneBranch(b)
	}
	return snap
}

func (s *store) restore(snap snapshot) {
	s.transfers = snap.transfers
	s.branches = snap.branches
	s.histories = snap.histories
	s.nextBranchID = snap.nextBranchID
}

func cloneTransfer(tx *transfer.Transaction) *transfer.Transaction {
	c := *tx
	if tx.Confirmation != nil {
		conf := *tx.Confirmation
		c.Confirmation = &conf
	}
	return &c
}

func cloneBranch(b *branch.Branch) *branch.Branch {
	c := *b
	return &c
}

type transfers struct{ s *store }

func (r *transfers) Create(_ context.Context, tx *transfer.Transaction) error {
	r.s.transfers[tx.ID] = cloneTransfer(tx)
	return nil
}

func (r *transfers) Get(_ context.Context, id uuid.UUID) (*transfer.Transaction, error) {
	tx, ok := r.s.transfers[id]
	if !ok {
		return nil, transfer.ErrNotFound
	}
	return cloneTransfer(tx), nil
}

func (r *transfers) Update(_ context.Context, tx *transfer.Transaction) error {
	if _, ok := r.s.transfers[tx.ID]; !ok {
		return transfer.ErrNotFound
	}
	r.s.transfers[tx.ID] = cloneTransfer(tx)
	return nil
}

func (r *transfers) ListByBranch(_ context.Context, branchID int64, limit, offset int) ([]*transfer.Transaction, error) {
	var out []*transfer.Transaction
	for _, tx := range r.s.transfers {
		if tx.BranchID == branchID {
			out = append(out, cloneTransfer(tx))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return page(out, limit, offset), nil
}

type branches struct{ s *store }

func (r *branches) Create(_ context.Context, b *branch.Branch) error {
	if b.ID == 0 {
		b.ID = r.s.nextBranchID
		r.s.nextBranchID++
	} else if b.ID >= r.s.nextBranchID {
		r.s.nextBranchID = b.ID + 1
	}
	r.s.branches[b.ID] = cloneBranch(b)
	return nil
}

func (r *branches) Get(_ context.Context, id int64) (*branch.Branch, error) {
	b, ok := r.s.branches[id]
	if !ok {
		return nil, branch.ErrNotFound
	}
	return cloneBranch(b), nil
}

func (r *branches) List(_ context.Context) ([]*branch.Branch, error) {
	out := make([]*branch.Branch, 0, len(r.s.branches))
	for _, b := range r.s.branches {
		out = append(out, cloneBranch(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *branches) UpdateBalance(_ context.Context, branchID int64, code currency.Code, balance decimal.Decimal) error {
	b, ok := r.s.branches[branchID]
	if !ok {
		return branch.ErrNotFound
	}
	return b.SetBalance(code, balance)
}

type histories struct{ s *store }

func (r *histories) Append(_ context.Context, entry *branch.FundHistory) error {
	e := *entry
	r.s.histories = append(r.s.histories, &e)
	return nil
}

func (r *histories) ListByBranch(_ context.Context, branchID int64, limit, offset int) ([]*branch.FundHistory, error) {
	var out []*branch.FundHistory
	for _, entry := range r.s.histories {
		if entry.BranchID == branchID {
			e := *entry
			out = append(out, &e)
		}
	}
	return page(out, limit, offset), nil
}

// page applies limit/offset windowing. Negative values come straight off
// the query string and are treated as absent.
func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
