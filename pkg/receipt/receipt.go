// Package receipt composes the canonical settlement document for a
// transfer. The composed document is a read-only projection handed to an
// external rendering pipeline; this package guarantees the data is
// complete and stable, not how it is drawn.
package receipt

import (
	"fmt"
	"time"

	"github.com/qasioun/remit/pkg/currency"
	"github.com/qasioun/remit/pkg/domain/branch"
	"github.com/qasioun/remit/pkg/domain/transfer"
	"github.com/qasioun/remit/pkg/numwords"
)

// Version identifies the receipt document layout. Bump when fields are
// added or renamed so downstream renderers can dispatch.
const Version = "1"

// Notice is the fixed cautionary text printed on every settlement receipt.
const Notice = "يرجى التأكد من هوية المستلم قبل التسليم. هذا الإيصال غير قابل للتداول ولا يعتبر سند قبض إلا بعد ختم الفرع."

// Receipt is the composed settlement document. All fields except
// RenderedAt are a pure function of the transaction and branch inputs:
// regenerating a receipt from the same state is byte-identical apart from
// the render timestamp.
type Receipt struct {
	Version               string    `json:"version"`
	TransactionID         string    `json:"transaction_id"`
	OriginBranchName      string    `json:"origin_branch_name"`
	OriginBranchCode      string    `json:"origin_branch_code"`
	DestinationBranchName string    `json:"destination_branch_name"`
	DestinationBranchCode string    `json:"destination_branch_code"`
	Date                  string    `json:"date"`
	Time                  string    `json:"time"`
	SenderName            string    `json:"sender_name,omitempty"`
	ReceiverName          string    `json:"receiver_name"`
	ReceiverMobile        string    `json:"receiver_mobile,omitempty"`
	Amount                string    `json:"amount"`
	CurrencyLabel         string    `json:"currency_label"`
	AmountInWords         string    `json:"amount_in_words"`
	DeliveryAddress       string    `json:"delivery_address"`
	Notice                string    `json:"notice"`
	RenderedAt            time.Time `json:"rendered_at"`
}

// Compose assembles the settlement receipt for a transaction. It reads its
// inputs only; it never touches the ledger or mutates the transaction.
func Compose(tx *transfer.Transaction, origin, destination *branch.Branch) (*Receipt, error) {
	meta, err := currency.Get(tx.Currency)
	if err != nil {
		return nil, err
	}

	words, err := numwords.ToWords(tx.Amount, numwords.Arabic)
	if err != nil {
		return nil, fmt.Errorf("rendering amount in words: %w", err)
	}

	return &Receipt{
		Version:               Version,
		TransactionID:         tx.ID.String(),
		OriginBranchName:      origin.Name,
		OriginBranchCode:      origin.Code,
		DestinationBranchName: destination.Name,
		DestinationBranchCode: destination.Code,
		Date:                  tx.Date.Format("2006-01-02"),
		Time:                  tx.Date.Format("15:04"),
		SenderName:            tx.Sender.Name,
		ReceiverName:          tx.Receiver.Name,
		ReceiverMobile:        tx.Receiver.Mobile,
		Amount:                tx.Amount.StringFixedBank(int32(meta.Decimals)),
		CurrencyLabel:         meta.ArabicName,
		AmountInWords:         words + " " + meta.ArabicName,
		DeliveryAddress:       deliveryAddress(destination),
		Notice:                Notice,
		RenderedAt:            time.Now(),
	}, nil
}

// deliveryAddress builds the destination branch's hand-off address block.
func deliveryAddress(b *branch.Branch) string {
	addr := b.Governorate
	if b.Location != "" {
		addr += " - " + b.Location
	}
	if b.Phone != "" {
		addr += " - هاتف: " + b.Phone
	}
	return addr
}
