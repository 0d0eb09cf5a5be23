package transfer

// Monetary amounts cross the wire as decimal strings; they are never
// parsed through binary floating point.

// PartyRequest carries one party of a transfer.
type PartyRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=128"`
	Mobile      string `json:"mobile" validate:"omitempty,numeric"`
	Governorate string `json:"governorate" validate:"omitempty,max=64"`
	Location    string `json:"location" validate:"omitempty,max=128"`
	IDDocument  string `json:"id_document" validate:"omitempty,max=64"`
	Address     string `json:"address" validate:"omitempty,max=256"`
}

// CreateTransferRequest represents the request body for creating a transfer.
type CreateTransferRequest struct {
	Sender              PartyRequest `json:"sender" validate:"required"`
	Receiver            PartyRequest `json:"receiver" validate:"required"`
	Amount              string       `json:"amount" validate:"required"`
	BenefitedAmount     string       `json:"benefited_amount" validate:"omitempty"`
	Currency            string       `json:"currency" validate:"required,len=3,uppercase,alpha"`
	BranchID            int64        `json:"branch_id" validate:"required"`
	DestinationBranchID int64        `json:"destination_branch_id" validate:"required"`
	EmployeeName        string       `json:"employee_name" validate:"omitempty,max=128"`
	Message             string       `json:"message" validate:"omitempty,max=512"`
}

// UpdateStatusRequest represents the request body for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ReceiveRequest represents the request body for confirming hand-off to
// the receiver.
type ReceiveRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=128"`
	Mobile      string `json:"mobile" validate:"omitempty,numeric"`
	IDDocument  string `json:"id_document" validate:"omitempty,max=64"`
	Address     string `json:"address" validate:"omitempty,max=256"`
	Governorate string `json:"governorate" validate:"omitempty,max=64"`
}
