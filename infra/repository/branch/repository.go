// Package branch implements the branches repository on gorm.
package branch

import (
	"context"
	"errors"
	"fmt"

	"github.com/qasioun/remit/infra/repository/model"
	"github.com/qasioun/remit/pkg/currency"
	domain "github.com/qasioun/remit/pkg/domain/branch"
	repo "github.com/qasioun/remit/pkg/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a branches repository on the given session.
func New(db *gorm.DB) repo.Branches {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *domain.Branch) error {
	rec := model.FromBranch(b)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return err
	}
	// The database assigns the id and creation time.
	b.ID = rec.ID
	b.CreatedAt = rec.CreatedAt
	return nil
}

func (r *repository) Get(ctx context.Context, id int64) (*domain.Branch, error) {
	var rec model.Branch
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return model.ToBranch(&rec), nil
}

func (r *repository) List(ctx context.Context) ([]*domain.Branch, error) {
	var recs []model.Branch
	if err := r.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Branch, 0, len(recs))
	for i := range recs {
		out = append(out, model.ToBranch(&recs[i]))
	}
	return out, nil
}

func (r *repository) UpdateBalance(ctx context.Context, branchID int64, code currency.Code, balance decimal.Decimal) error {
	var column string
	switch code {
	case currency.SYP:
		column = "allocated_syp"
	case currency.USD:
		column = "allocated_usd"
	default:
		return fmt.Errorf("no balance held in currency %q", code)
	}
	result := r.db.WithContext(ctx).Model(&model.Branch{}).
		Where("id = ?", branchID).Update(column, balance)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
