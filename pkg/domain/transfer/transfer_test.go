package transfer_test

import (
	"testing"

	"github.com/qasioun/remit/pkg/domain/transfer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() transfer.CreateInput {
	return transfer.CreateInput{
		Sender:              transfer.Party{Name: "Samir Haddad", Mobile: "0991234567", Governorate: "Damascus"},
		Receiver:            transfer.Party{Name: "Rana Khoury", Mobile: "0937654321", Governorate: "Aleppo"},
		Amount:              decimal.NewFromInt(100000),
		Currency:            "SYP",
		BranchID:            1,
		DestinationBranchID: 2,
		EmployeeName:        "teller-01",
	}
}

func TestNew(t *testing.T) {
	rate := decimal.RequireFromString("0.10")

	tx, err := transfer.New(validInput(), rate)
	require.NoError(t, err)

	assert.Equal(t, transfer.StatusPending, tx.Status)
	assert.False(t, tx.IsReceived)
	assert.True(t, tx.TaxAmount.Equal(decimal.NewFromInt(10000)), "tax: %s", tx.TaxAmount)
	assert.True(t, tx.BranchProfit.Equal(decimal.NewFromInt(90000)), "profit: %s", tx.BranchProfit)
	assert.True(t, tx.BaseAmount.Equal(tx.Amount))
	assert.True(t, tx.BenefitedAmount.Equal(tx.Amount), "benefited defaults to amount")
	assert.NotZero(t, tx.ID)
	assert.False(t, tx.Date.IsZero())
}

func TestNew_ExplicitBenefitedAmount(t *testing.T) {
	input := validInput()
	benefited := decimal.NewFromInt(20000)
	input.BenefitedAmount = &benefited

	tx, err := transfer.New(input, decimal.RequireFromString("0.10"))
	require.NoError(t, err)
	assert.True(t, tx.TaxAmount.Equal(decimal.NewFromInt(2000)))
	assert.True(t, tx.BranchProfit.Equal(decimal.NewFromInt(18000)))
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(100000)), "principal unchanged")
}

func TestNew_ReportsEveryViolation(t *testing.T) {
	input := transfer.CreateInput{
		Sender:              transfer.Party{Mobile: "12"},
		Receiver:            transfer.Party{},
		Amount:              decimal.Zero,
		Currency:            "EUR",
		BranchID:            3,
		DestinationBranchID: 3,
	}

	_, err := transfer.New(input, decimal.RequireFromString("0.05"))
	require.Error(t, err)
	assert.ErrorIs(t, err, transfer.ErrValidation)

	var verr *transfer.ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{
		"sender.name", "sender.governorate", "sender.mobile", "receiver.name",
		"amount", "currency", "destination_branch_id",
	}, fields)
}

func TestTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		path    []transfer.Status
		wantErr bool
	}{
		{"pending to processing to completed", []transfer.Status{transfer.StatusProcessing, transfer.StatusCompleted}, false},
		{"pending directly to completed", []transfer.Status{transfer.StatusCompleted}, false},
		{"pending directly to cancelled", []transfer.Status{transfer.StatusCancelled}, false},
		{"pending directly to rejected", []transfer.Status{transfer.StatusRejected}, false},
		{"processing to rejected", []transfer.Status{transfer.StatusProcessing, transfer.StatusRejected}, false},
		{"completed is terminal", []transfer.Status{transfer.StatusCompleted, transfer.StatusPending}, true},
		{"cancelled is terminal", []transfer.Status{transfer.StatusCancelled, transfer.StatusProcessing}, true},
		{"rejected is terminal", []transfer.Status{transfer.StatusRejected, transfer.StatusCompleted}, true},
		{"no going back to pending", []transfer.Status{transfer.StatusProcessing, transfer.StatusPending}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := transfer.New(validInput(), decimal.Zero)
			require.NoError(t, err)

			var last error
			for _, next := range tt.path {
				last = tx.TransitionTo(next)
			}
			if tt.wantErr {
				assert.ErrorIs(t, last, transfer.ErrInvalidTransition)
			} else {
				assert.NoError(t, last)
			}
		})
	}
}

func TestTransitionTo_CompletedSetsReceived(t *testing.T) {
	tx, err := transfer.New(validInput(), decimal.Zero)
	require.NoError(t, err)

	require.NoError(t, tx.TransitionTo(transfer.StatusCompleted))
	assert.True(t, tx.IsReceived)

	err = tx.TransitionTo(transfer.StatusPending)
	assert.ErrorIs(t, err, transfer.ErrInvalidTransition)
	assert.True(t, tx.IsReceived, "failed transition must not unset the flag")
}

func TestMarkReceived(t *testing.T) {
	conf := transfer.ReceiverConfirmation{
		Name:       "Rana Khoury",
		Mobile:     "0937654321",
		IDDocument: "01020031337",
	}

	t.Run("requires completed status", func(t *testing.T) {
		tx, err := transfer.New(validInput(), decimal.Zero)
		require.NoError(t, err)
		assert.ErrorIs(t, tx.MarkReceived(conf), transfer.ErrInvalidTransition)
	})

	t.Run("records confirmation and amends receiver", func(t *testing.T) {
		tx, err := transfer.New(validInput(), decimal.Zero)
		require.NoError(t, err)
		require.NoError(t, tx.TransitionTo(transfer.StatusCompleted))

		amount := tx.Amount
		taxAmount := tx.TaxAmount
		corrected := conf
		corrected.Name = "Rana G. Khoury"
		require.NoError(t, tx.MarkReceived(corrected))

		assert.Equal(t, "Rana G. Khoury", tx.Receiver.Name)
		assert.Equal(t, "01020031337", tx.Receiver.IDDocument)
		assert.True(t, tx.Amount.Equal(amount), "amount must not change at hand-off")
		assert.True(t, tx.TaxAmount.Equal(taxAmount))
	})

	t.Run("idempotent for identical data", func(t *testing.T) {
		tx, err := transfer.New(validInput(), decimal.Zero)
		require.NoError(t, err)
		require.NoError(t, tx.TransitionTo(transfer.StatusCompleted))

		require.NoError(t, tx.MarkReceived(conf))
		require.NoError(t, tx.MarkReceived(conf))
		assert.Equal(t, conf, *tx.Confirmation)
	})

	t.Run("conflicting data fails", func(t *testing.T) {
		tx, err := transfer.New(validInput(), decimal.Zero)
		require.NoError(t, err)
		require.NoError(t, tx.TransitionTo(transfer.StatusCompleted))

		require.NoError(t, tx.MarkReceived(conf))
		other := conf
		other.IDDocument = "09990010001"
		assert.ErrorIs(t, tx.MarkReceived(other), transfer.ErrAlreadyReceived)
		assert.Equal(t, conf, *tx.Confirmation, "first confirmation stands")
	})
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "processing", "completed", "cancelled", "rejected"} {
		got, err := transfer.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}

	_, err := transfer.ParseStatus("shipped")
	assert.ErrorIs(t, err, transfer.ErrUnknownStatus)
}
