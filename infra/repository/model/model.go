// Package model holds the database records and their mappings to and from
// the domain types. The records flatten the nested domain structures into
// columns; no domain type crosses the database boundary directly.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/qasioun/remit/pkg/currency"
	"github.com/qasioun/remit/pkg/domain/branch"
	"github.com/qasioun/remit/pkg/domain/transfer"
	"github.com/shopspring/decimal"
)

// Transfer is the database record of a transfer transaction.
type Transfer struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key"`
	SenderName          string
	SenderMobile        string
	SenderGovernorate   string
	SenderLocation      string
	SenderIDDocument    string
	SenderAddress       string
	ReceiverName        string
	ReceiverMobile      string
	ReceiverGovernorate string
	ReceiverLocation    string
	ReceiverIDDocument  string
	ReceiverAddress     string
	Amount              decimal.Decimal `gorm:"type:numeric(20,2)"`
	BaseAmount          decimal.Decimal `gorm:"type:numeric(20,2)"`
	BenefitedAmount     decimal.Decimal `gorm:"type:numeric(20,2)"`
	Currency            string          `gorm:"type:varchar(3);not null"`
	TaxRate             decimal.Decimal `gorm:"type:numeric(8,6)"`
	TaxAmount           decimal.Decimal `gorm:"type:numeric(20,2)"`
	BranchProfit        decimal.Decimal `gorm:"type:numeric(20,2)"`
	BranchID            int64           `gorm:"index"`
	DestinationBranchID int64           `gorm:"index"`
	Status              string          `gorm:"type:varchar(16);not null"`
	IsReceived          bool
	Confirmed           bool
	ConfName            string
	ConfMobile          string
	ConfIDDocument      string
	ConfAddress         string
	ConfGovernorate     string
	EmployeeName        string
	Message             string
	Date                time.Time
	UpdatedAt           time.Time
}

// TableName specifies the table name for the Transfer record.
func (Transfer) TableName() string {
	return "transfers"
}

// Branch is the database record of an operating branch.
type Branch struct {
	ID           int64  `gorm:"primary_key;autoIncrement"`
	Code         string `gorm:"type:varchar(16);uniqueIndex;not null"`
	Name         string
	Governorate  string
	Location     string
	Phone        string
	TaxRate      decimal.Decimal `gorm:"type:numeric(8,6)"`
	AllocatedSYP decimal.Decimal `gorm:"type:numeric(20,2);column:allocated_syp"`
	AllocatedUSD decimal.Decimal `gorm:"type:numeric(20,2);column:allocated_usd"`
	IsActive     bool
	CreatedAt    time.Time
}

// TableName specifies the table name for the Branch record.
func (Branch) TableName() string {
	return "branches"
}

// FundHistory is the database record of one balance mutation. Rows are
// append-only; there is no update or delete path.
type FundHistory struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	BranchID    int64           `gorm:"index"`
	Operation   string          `gorm:"type:varchar(16);not null"`
	Currency    string          `gorm:"type:varchar(3);not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,2)"`
	Description string
	CreatedAt   time.Time
}

// TableName specifies the table name for the FundHistory record.
func (FundHistory) TableName() string {
	return "fund_histories"
}

// FromTransfer maps a domain transaction to its database record.
func FromTransfer(tx *transfer.Transaction) *Transfer {
	rec := &Transfer{
		ID:                  tx.ID,
		SenderName:          tx.Sender.Name,
		SenderMobile:        tx.Sender.Mobile,
		SenderGovernorate:   tx.Sender.Governorate,
		SenderLocation:      tx.Sender.Location,
		SenderIDDocument:    tx.Sender.IDDocument,
		SenderAddress:       tx.Sender.Address,
		ReceiverName:        tx.Receiver.Name,
		ReceiverMobile:      tx.Receiver.Mobile,
		ReceiverGovernorate: tx.Receiver.Governorate,
		ReceiverLocation:    tx.Receiver.Location,
		ReceiverIDDocument:  tx.Receiver.IDDocument,
		ReceiverAddress:     tx.Receiver.Address,
		Amount:              tx.Amount,
		BaseAmount:          tx.BaseAmount,
		BenefitedAmount:     tx.BenefitedAmount,
		Currency:            string(tx.Currency),
		TaxRate:             tx.TaxRate,
		TaxAmount:           tx.TaxAmount,
		BranchProfit:        tx.BranchProfit,
		BranchID:            tx.BranchID,
		DestinationBranchID: tx.DestinationBranchID,
		Status:              string(tx.Status),
		IsReceived:          tx.IsReceived,
		EmployeeName:        tx.EmployeeName,
		Message:             tx.Message,
		Date:                tx.Date,
	}
	if tx.Confirmation != nil {
		rec.Confirmed = true
		rec.ConfName = tx.Confirmation.Name
		rec.ConfMobile = tx.Confirmation.Mobile
		rec.ConfIDDocument = tx.Confirmation.IDDocument
		rec.ConfAddress = tx.Confirmation.Address
		rec.ConfGovernorate = tx.Confirmation.Governorate
	}
	return rec
}

// ToTransfer maps a database record back to the domain transaction.
func ToTransfer(rec *Transfer) (*transfer.Transaction, error) {
	status, err := transfer.ParseStatus(rec.Status)
	if err != nil {
		return nil, err
	}
	tx := &transfer.Transaction{
		ID: rec.ID,
		Sender: transfer.Party{
			Name:        rec.SenderName,
			Mobile:      rec.SenderMobile,
			Governorate: rec.SenderGovernorate,
			Location:    rec.SenderLocation,
			IDDocument:  rec.SenderIDDocument,
			Address:     rec.SenderAddress,
		},
		Receiver: transfer.Party{
			Name:        rec.ReceiverName,
			Mobile:      rec.ReceiverMobile,
			Governorate: rec.ReceiverGovernorate,
			Location:    rec.ReceiverLocation,
			IDDocument:  rec.ReceiverIDDocument,
			Address:     rec.ReceiverAddress,
		},
		Amount:              rec.Amount,
		BaseAmount:          rec.BaseAmount,
		BenefitedAmount:     rec.BenefitedAmount,
		Currency:            currency.Code(rec.Currency),
		TaxRate:             rec.TaxRate,
		TaxAmount:           rec.TaxAmount,
		BranchProfit:        rec.BranchProfit,
		BranchID:            rec.BranchID,
		DestinationBranchID: rec.DestinationBranchID,
		Status:              status,
		IsReceived:          rec.IsReceived,
		EmployeeName:        rec.EmployeeName,
		Message:             rec.Message,
		Date:                rec.Date,
	}
	if rec.Confirmed {
		tx.Confirmation = &transfer.ReceiverConfirmation{
			Name:        rec.ConfName,
			Mobile:      rec.ConfMobile,
			IDDocument:  rec.ConfIDDocument,
			Address:     rec.ConfAddress,
			Governorate: rec.ConfGovernorate,
		}
	}
	return tx, nil
}

// FromBranch maps a domain branch to its database record.
func FromBranch(b *branch.Branch) *Branch {
	return &Branch{
		ID:           b.ID,
		Code:         b.Code,
		Name:         b.Name,
		Governorate:  b.Governorate,
		Location:     b.Location,
		Phone:        b.Phone,
		TaxRate:      b.TaxRate,
		AllocatedSYP: b.AllocatedSYP,
		AllocatedUSD: b.AllocatedUSD,
		IsActive:     b.IsActive,
		CreatedAt:    b.CreatedAt,
	}
}

// ToBranch maps a database record back to the domain branch.
func ToBranch(rec *Branch) *branch.Branch {
	return &branch.Branch{
		ID:           rec.ID,
		Code:         rec.Code,
		Name:         rec.Name,
		Governorate:  rec.Governorate,
		Location:     rec.Location,
		Phone:        rec.Phone,
		TaxRate:      rec.TaxRate,
		AllocatedSYP: rec.AllocatedSYP,
		AllocatedUSD: rec.AllocatedUSD,
		IsActive:     rec.IsActive,
		CreatedAt:    rec.CreatedAt,
	}
}

// FromFundHistory maps a domain audit entry to its database record.
func FromFundHistory(entry *branch.FundHistory) *FundHistory {
	return &FundHistory{
		ID:          entry.ID,
		BranchID:    entry.BranchID,
		Operation:   string(entry.Operation),
		Currency:    string(entry.Currency),
		Amount:      entry.Amount,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
}

// ToFundHistory maps a database record back to the domain audit entry.
func ToFundHistory(rec *FundHistory) *branch.FundHistory {
	return &branch.FundHistory{
		ID:          rec.ID,
		BranchID:    rec.BranchID,
		Operation:   branch.Operation(rec.Operation),
		Currency:    currency.Code(rec.Currency),
		Amount:      rec.Amount,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt,
	}
}
