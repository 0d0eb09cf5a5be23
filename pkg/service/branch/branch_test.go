package branch_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/qasioun/remit/infra/repository/memory"
	domain "github.com/qasioun/remit/pkg/domain/branch"
	"github.com/qasioun/remit/pkg/domain/transfer"
	"github.com/qasioun/remit/pkg/service/branch"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *branch.Service {
	return branch.New(memory.NewUoW(), slog.Default())
}

func validInput() branch.CreateInput {
	return branch.CreateInput{
		Code:        "DMS-01",
		Name:        "فرع دمشق",
		Governorate: "دمشق",
		Location:    "ساحة المرجة",
		Phone:       "0112233445",
		TaxRate:     decimal.RequireFromString("0.10"),
	}
}

func TestCreate(t *testing.T) {
	svc := newService()

	b, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.True(t, b.IsActive)
	assert.True(t, b.AllocatedSYP.IsZero())
	assert.True(t, b.AllocatedUSD.IsZero())
}

func TestCreate_Validation(t *testing.T) {
	svc := newService()

	input := validInput()
	input.Code = ""
	input.TaxRate = decimal.RequireFromString("1.5")

	_, err := svc.Create(context.Background(), input)
	require.ErrorIs(t, err, transfer.ErrValidation)

	var verr *transfer.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, fields, []string{"code", "tax_rate"})
}

func TestGetAndList(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Code, got.Code)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	second := validInput()
	second.Code = "ALP-01"
	second.Name = "فرع حلب"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	bs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bs, 2)
}
