package memory_test

import (
	"context"
	"testing"

	"github.com/qasioun/remit/infra/repository/memory"
	"github.com/qasioun/remit/pkg/currency"
	"github.com/qasioun/remit/pkg/domain/branch"
	"github.com/qasioun/remit/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHistories(t *testing.T, uow repository.UnitOfWork, n int) int64 {
	t.Helper()
	b := &branch.Branch{Code: "DMS-01", Name: "فرع دمشق"}
	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		branches, err := txUow.Branches()
		require.NoError(t, err)
		if err := branches.Create(context.Background(), b); err != nil {
			return err
		}
		histories, err := txUow.FundHistories()
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			entry := branch.NewFundHistory(b.ID, branch.OpAllocation,
				currency.SYP, decimal.NewFromInt(int64(i+1)), "batch")
			if err := histories.Append(context.Background(), entry); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	return b.ID
}

func listHistories(t *testing.T, uow repository.UnitOfWork, branchID int64, limit, offset int) []*branch.FundHistory {
	t.Helper()
	var entries []*branch.FundHistory
	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		histories, err := txUow.FundHistories()
		require.NoError(t, err)
		entries, err = histories.ListByBranch(context.Background(), branchID, limit, offset)
		return err
	})
	require.NoError(t, err)
	return entries
}

func TestListByBranch_Paging(t *testing.T) {
	uow := memory.NewUoW()
	id := seedHistories(t, uow, 5)

	testCases := []struct {
		desc          string
		limit, offset int
		want          int
	}{
		{desc: "window", limit: 2, offset: 1, want: 2},
		{desc: "no paging", limit: 0, offset: 0, want: 5},
		{desc: "offset past end", limit: 0, offset: 9, want: 0},
		{desc: "negative offset", limit: 0, offset: -1, want: 5},
		{desc: "negative limit", limit: -3, offset: 0, want: 5},
		{desc: "both negative", limit: -1, offset: -1, want: 5},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			entries := listHistories(t, uow, id, tc.limit, tc.offset)
			assert.Len(t, entries, tc.want)
		})
	}
}
