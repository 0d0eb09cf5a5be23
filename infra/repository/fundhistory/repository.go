// Package fundhistory implements the append-only fund-history repository
// on gorm.
package fundhistory

import (
	"context"

	"github.com/qasioun/remit/infra/repository/model"
	domain "github.com/qasioun/remit/pkg/domain/branch"
	repo "github.com/qasioun/remit/pkg/repository"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a fund-history repository on the given session.
func New(db *gorm.DB) repo.FundHistories {
	return &repository{db: db}
}

func (r *repository) Append(ctx context.Context, entry *domain.FundHistory) error {
	rec := model.FromFundHistory(entry)
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]*domain.FundHistory, error) {
	q := r.db.WithContext(ctx).Where("branch_id = ?", branchID).Order("created_at")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	var recs []model.FundHistory
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.FundHistory, 0, len(recs))
	for i := range recs {
		out = append(out, model.ToFundHistory(&recs[i]))
	}
	return out, nil
}
