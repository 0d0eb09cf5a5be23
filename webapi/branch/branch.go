// Package branch exposes branch administration and the balance ledger
// over HTTP.
package branch

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/qasioun/remit/pkg/currency"
	domain "github.com/qasioun/remit/pkg/domain/branch"
	branchsvc "github.com/qasioun/remit/pkg/service/branch"
	ledgersvc "github.com/qasioun/remit/pkg/service/ledger"
	"github.com/qasioun/remit/webapi/common"
	"github.com/shopspring/decimal"
)

// Routes registers HTTP routes for branch administration and the ledger.
//
// Routes:
//   - POST /branches                        : Create a branch.
//   - GET  /branches                        : List branches.
//   - GET  /branches/:id                    : Retrieve a branch with live balances.
//   - POST /branches/:id/funds              : Allocate to or deduct from a balance.
//   - POST /branches/:id/funds/deduct-all   : Empty one currency balance.
//   - GET  /branches/:id/funds              : Paged fund history.
func Routes(app *fiber.App, branchSvc *branchsvc.Service, ledgerSvc *ledgersvc.Service) {
	app.Post("/branches", Create(branchSvc))
	app.Get("/branches", List(branchSvc))
	app.Get("/branches/:id", Get(branchSvc))
	app.Post("/branches/:id/funds", ApplyFunds(ledgerSvc))
	app.Post("/branches/:id/funds/deduct-all", DeductAll(ledgerSvc))
	app.Get("/branches/:id/funds", GetHistory(ledgerSvc))
}

// Create returns a Fiber handler that creates a new branch with zero
// balances.
func Create(svc *branchsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateBranchRequest](c)
		if input == nil {
			return err // error response already written
		}
		rate, err := decimal.NewFromString(input.TaxRate)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid tax rate", "tax_rate must be a decimal number")
		}
		b, err := svc.Create(c.Context(), branchsvc.CreateInput{
			Code:        input.Code,
			Name:        input.Name,
			Governorate: input.Governorate,
			Location:    input.Location,
			Phone:       input.Phone,
			TaxRate:     rate,
		})
		if err != nil {
			log.Errorf("Failed to create branch: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create branch", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Branch created", b)
	}
}

// List returns a Fiber handler that lists all branches.
func List(svc *branchsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bs, err := svc.List(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list branches", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Branches", bs)
	}
}

// Get returns a Fiber handler that retrieves a branch by id, including
// its live balances.
func Get(svc *branchsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseBranchID(c)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid branch ID", "branch ID must be an integer")
		}
		b, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get branch", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Branch found", b)
	}
}

// ApplyFunds returns a Fiber handler that allocates to or deducts from
// one currency balance of a branch.
func ApplyFunds(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseBranchID(c)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid branch ID", "branch ID must be an integer")
		}
		input, err := common.BindAndValidate[FundsRequest](c)
		if input == nil {
			return err
		}
		amount, err := decimal.NewFromString(input.Amount)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid amount", "amount must be a decimal number")
		}

		var entry *domain.FundHistory
		switch domain.Operation(input.Operation) {
		case domain.OpAllocation:
			entry, err = svc.Allocate(c.Context(), id, currency.Code(input.Currency), amount, input.Description)
		case domain.OpDeduction:
			entry, err = svc.Deduct(c.Context(), id, currency.Code(input.Currency), amount, input.Description)
		}
		if err != nil {
			log.Errorf("Failed to apply funds: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to apply funds", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Funds applied", entry)
	}
}

// DeductAll returns a Fiber handler that empties one currency balance of
// a branch.
func DeductAll(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseBranchID(c)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid branch ID", "branch ID must be an integer")
		}
		input, err := common.BindAndValidate[FullDeductRequest](c)
		if input == nil {
			return err
		}
		entry, err := svc.FullDeduct(c.Context(), id, currency.Code(input.Currency), input.Description)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to deduct funds", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance emptied", entry)
	}
}

// GetHistory returns a Fiber handler that lists a branch's fund history
// in append order. Supports limit and offset query parameters.
func GetHistory(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseBranchID(c)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid branch ID", "branch ID must be an integer")
		}
		limit := c.QueryInt("limit", 0)
		offset := c.QueryInt("offset", 0)
		entries, err := svc.GetHistory(c.Context(), id, limit, offset)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list fund history", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Fund history", entries)
	}
}

func parseBranchID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
