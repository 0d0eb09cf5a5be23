// Package transfer holds the transfer transaction aggregate and its
// lifecycle state machine. A transaction is created once, mutated only
// through status transitions and the one-time receipt confirmation, and
// never deleted: cancellation and rejection are terminal statuses.
package transfer

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/qasioun/remit/pkg/currency"
	"github.com/qasioun/remit/pkg/domain/tax"
	"github.com/shopspring/decimal"
)

// mobilePattern matches the network's local mobile numbers.
var mobilePattern = regexp.MustCompile(`^[0-9]{9,10}$`)

// Party identifies the sending or receiving person of a transfer. All
// fields are free text; only the mobile number has a format constraint.
type Party struct {
	Name        string `json:"name"`
	Mobile      string `json:"mobile,omitempty"`
	Governorate string `json:"governorate,omitempty"`
	Location    string `json:"location,omitempty"`
	IDDocument  string `json:"id_document,omitempty"`
	Address     string `json:"address,omitempty"`
}

// ReceiverConfirmation records the receiver details verified at hand-off.
// The confirming teller may correct the receiver's personal details, but
// never the amounts.
type ReceiverConfirmation struct {
	Name        string `json:"name"`
	Mobile      string `json:"mobile,omitempty"`
	IDDocument  string `json:"id_document,omitempty"`
	Address     string `json:"address,omitempty"`
	Governorate string `json:"governorate,omitempty"`
}

// Transaction is a single transfer instruction between two branches.
//
// Invariants:
//   - TaxAmount = BenefitedAmount * TaxRate, with the rate frozen at
//     creation time.
//   - IsReceived is true iff Status is completed.
//   - DestinationBranchID differs from BranchID.
type Transaction struct {
	ID                  uuid.UUID             `json:"id"`
	Sender              Party                 `json:"sender"`
	Receiver            Party                 `json:"receiver"`
	Amount              decimal.Decimal       `json:"amount"`
	BaseAmount          decimal.Decimal       `json:"base_amount"`
	BenefitedAmount     decimal.Decimal       `json:"benefited_amount"`
	Currency            currency.Code         `json:"currency"`
	TaxRate             decimal.Decimal       `json:"tax_rate"`
	TaxAmount           decimal.Decimal       `json:"tax_amount"`
	BranchProfit        decimal.Decimal       `json:"branch_profit"`
	BranchID            int64                 `json:"branch_id"`
	DestinationBranchID int64                 `json:"destination_branch_id"`
	Status              Status                `json:"status"`
	IsReceived          bool                  `json:"is_received"`
	Confirmation        *ReceiverConfirmation `json:"confirmation,omitempty"`
	EmployeeName        string                `json:"employee_name"`
	Message             string                `json:"message,omitempty"`
	Date                time.Time             `json:"date"`
}

// CreateInput carries the teller's input for a new transfer. The tax rate
// is not part of the input; it is stamped on from the originating branch.
type CreateInput struct {
	Sender              Party
	Receiver            Party
	Amount              decimal.Decimal
	BenefitedAmount     *decimal.Decimal
	Currency            currency.Code
	BranchID            int64
	DestinationBranchID int64
	EmployeeName        string
	Message             string
}

// New validates the input against every creation rule and, if all pass,
// returns a pending transaction with its derived tax fields computed at
// the given branch rate. On failure it returns a ValidationError listing
// every violated rule and no partial transaction.
func New(input CreateInput, taxRate decimal.Decimal) (*Transaction, error) {
	verr := &ValidationError{}

	if input.Sender.Name == "" {
		verr.Add("sender.name", "sender name is required")
	}
	if input.Sender.Governorate == "" {
		verr.Add("sender.governorate", "sender governorate is required")
	}
	if input.Receiver.Name == "" {
		verr.Add("receiver.name", "receiver name is required")
	}
	if input.Sender.Mobile != "" && !mobilePattern.MatchString(input.Sender.Mobile) {
		verr.Add("sender.mobile", "mobile must be 9 to 10 digits")
	}
	if input.Receiver.Mobile != "" && !mobilePattern.MatchString(input.Receiver.Mobile) {
		verr.Add("receiver.mobile", "mobile must be 9 to 10 digits")
	}
	if !input.Amount.IsPositive() {
		verr.Add("amount", "amount must be a positive number")
	}
	if !currency.IsSupported(input.Currency) {
		verr.Add("currency", fmt.Sprintf("unrecognized currency %q", input.Currency))
	}
	if input.BranchID == 0 {
		verr.Add("branch_id", "originating branch is required")
	}
	if input.DestinationBranchID == 0 {
		verr.Add("destination_branch_id", "destination branch is required")
	} else if input.DestinationBranchID == input.BranchID {
		verr.Add("destination_branch_id", "destination branch must differ from originating branch")
	}

	benefited := input.Amount
	if input.BenefitedAmount != nil {
		benefited = *input.BenefitedAmount
		if benefited.IsNegative() {
			verr.Add("benefited_amount", "benefited amount must not be negative")
		}
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		verr.Add("tax_rate", "branch tax rate must be between 0 and 1")
	}

	if len(verr.Violations) > 0 {
		return nil, verr
	}

	taxAmount, profit, err := tax.Compute(benefited, taxRate)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		ID:                  uuid.New(),
		Sender:              input.Sender,
		Receiver:            input.Receiver,
		Amount:              input.Amount,
		BaseAmount:          input.Amount,
		BenefitedAmount:     benefited,
		Currency:            input.Currency,
		TaxRate:             taxRate,
		TaxAmount:           taxAmount,
		BranchProfit:        profit,
		BranchID:            input.BranchID,
		DestinationBranchID: input.DestinationBranchID,
		Status:              StatusPending,
		IsReceived:          false,
		EmployeeName:        input.EmployeeName,
		Message:             input.Message,
		Date:                time.Now(),
	}, nil
}

// TransitionTo moves the transaction to next, enforcing the state machine.
// A transition into completed also flips IsReceived, idempotently.
func (t *Transaction) TransitionTo(next Status) error {
	if t.Status.IsTerminal() {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, t.Status)
	}
	if !t.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, next)
	}
	t.Status = next
	if next == StatusCompleted && !t.IsReceived {
		t.IsReceived = true
	}
	return nil
}

// MarkReceived records the receiver confirmation taken at hand-off. It is
// only callable on a completed transaction. Resubmitting an identical
// confirmation is idempotent; a conflicting confirmation after the first
// fails with ErrAlreadyReceived. Amount and tax fields are never touched.
func (t *Transaction) MarkReceived(conf ReceiverConfirmation) error {
	if t.Status != StatusCompleted {
		return fmt.Errorf("%w: cannot confirm receipt in status %s", ErrInvalidTransition, t.Status)
	}
	if conf.Mobile != "" && !mobilePattern.MatchString(conf.Mobile) {
		verr := &ValidationError{}
		verr.Add("receiver.mobile", "mobile must be 9 to 10 digits")
		return verr
	}
	if t.Confirmation != nil {
		if *t.Confirmation == conf {
			return nil
		}
		return ErrAlreadyReceived
	}
	t.Confirmation = &conf
	t.Receiver.Name = conf.Name
	if conf.Mobile != "" {
		t.Receiver.Mobile = conf.Mobile
	}
	if conf.IDDocument != "" {
		t.Receiver.IDDocument = conf.IDDocument
	}
	if conf.Address != "" {
		t.Receiver.Address = conf.Address
	}
	if conf.Governorate != "" {
		t.Receiver.Governorate = conf.Governorate
	}
	t.IsReceived = true
	return nil
}
