// Package branch provides director-level branch administration: creating
// operating locations and reading them back with their live balances.
package branch

import (
	"context"
	"log/slog"

	"github.com/qasioun/remit/pkg/domain/branch"
	"github.com/qasioun/remit/pkg/domain/transfer"
	"github.com/qasioun/remit/pkg/repository"
	"github.com/shopspring/decimal"
)

// Service provides branch administration operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a branch service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateInput carries the director's input for a new branch.
type CreateInput struct {
	Code        string
	Name        string
	Governorate string
	Location    string
	Phone       string
	TaxRate     decimal.Decimal
}

// Create validates and persists a new branch with zero balances. The tax
// rate set here is stamped onto every transfer the branch originates.
func (s *Service) Create(ctx context.Context, input CreateInput) (b *branch.Branch, err error) {
	verr := &transfer.ValidationError{}
	if input.Code == "" {
		verr.Add("code", "branch code is required")
	}
	if input.Name == "" {
		verr.Add("name", "branch name is required")
	}
	if input.TaxRate.IsNegative() || input.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		verr.Add("tax_rate", "tax rate must be between 0 and 1")
	}
	if len(verr.Violations) > 0 {
		return nil, verr
	}

	b = &branch.Branch{
		Code:         input.Code,
		Name:         input.Name,
		Governorate:  input.Governorate,
		Location:     input.Location,
		Phone:        input.Phone,
		TaxRate:      input.TaxRate,
		AllocatedSYP: decimal.Zero,
		AllocatedUSD: decimal.Zero,
		IsActive:     true,
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		branches, err := uow.Branches()
		if err != nil {
			return err
		}
		return branches.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("branch created", "branch_id", b.ID, "code", b.Code)
	return b, nil
}

// Get returns a branch by id, including its live balances.
func (s *Service) Get(ctx context.Context, id int64) (b *branch.Branch, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		branches, err := uow.Branches()
		if err != nil {
			return err
		}
		b, err = branches.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List returns all branches.
func (s *Service) List(ctx context.Context) (bs []*branch.Branch, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		branches, err := uow.Branches()
		if err != nil {
			return err
		}
		bs, err = branches.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return bs, nil
}
