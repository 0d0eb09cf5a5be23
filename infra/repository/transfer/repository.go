// Package transfer implements the transfers repository on gorm.
package transfer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/qasioun/remit/infra/repository/model"
	domain "github.com/qasioun/remit/pkg/domain/transfer"
	repo "github.com/qasioun/remit/pkg/repository"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a transfers repository on the given session.
func New(db *gorm.DB) repo.Transfers {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tx *domain.Transaction) error {
	rec := model.FromTransfer(tx)
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	var rec model.Transfer
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return model.ToTransfer(&rec)
}

func (r *repository) Update(ctx context.Context, tx *domain.Transaction) error {
	rec := model.FromTransfer(tx)
	result := r.db.WithContext(ctx).Model(&model.Transfer{}).Where("id = ?", tx.ID).
		Select("*").Omit("id", "date").Updates(rec)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repository) ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]*domain.Transaction, error) {
	q := r.db.WithContext(ctx).Where("branch_id = ?", branchID).Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	var recs []model.Transfer
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Transaction, 0, len(recs))
	for i := range recs {
		tx, err := model.ToTransfer(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}
