package branch

// CreateBranchRequest represents the request body for creating a branch.
// The tax rate is a decimal string between 0 and 1.
type CreateBranchRequest struct {
	Code        string `json:"code" validate:"required,min=2,max=16"`
	Name        string `json:"name" validate:"required,min=2,max=128"`
	Governorate string `json:"governorate" validate:"omitempty,max=64"`
	Location    string `json:"location" validate:"omitempty,max=128"`
	Phone       string `json:"phone" validate:"omitempty,numeric"`
	TaxRate     string `json:"tax_rate" validate:"required"`
}

// FundsRequest represents the request body for a balance operation.
type FundsRequest struct {
	Operation   string `json:"operation" validate:"required,oneof=allocation deduction"`
	Amount      string `json:"amount" validate:"required"`
	Currency    string `json:"currency" validate:"required,len=3,uppercase,alpha"`
	Description string `json:"description" validate:"omitempty,max=256"`
}

// FullDeductRequest represents the request body for emptying one currency
// balance.
type FullDeductRequest struct {
	Currency    string `json:"currency" validate:"required,len=3,uppercase,alpha"`
	Description string `json:"description" validate:"omitempty,max=256"`
}
