// Package transfer exposes the transfer lifecycle over HTTP.
package transfer

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/qasioun/remit/pkg/currency"
	domain "github.com/qasioun/remit/pkg/domain/transfer"
	transfersvc "github.com/qasioun/remit/pkg/service/transfer"
	"github.com/qasioun/remit/webapi/common"
	"github.com/shopspring/decimal"
)

// Routes registers HTTP routes for transfer operations.
//
// Routes:
//   - POST   /transfers               : Create a new transfer at the originating branch.
//   - GET    /transfers/:id           : Retrieve a transfer.
//   - PATCH  /transfers/:id/status    : Move a transfer through its lifecycle.
//   - POST   /transfers/:id/receive   : Confirm hand-off to the receiver.
//   - GET    /transfers/:id/receipt   : Compose the settlement receipt document.
func Routes(app *fiber.App, svc *transfersvc.Service) {
	app.Post("/transfers", Create(svc))
	app.Get("/transfers/:id", Get(svc))
	app.Patch("/transfers/:id/status", UpdateStatus(svc))
	app.Post("/transfers/:id/receive", Receive(svc))
	app.Get("/transfers/:id/receipt", GetReceipt(svc))
}

// Create returns a Fiber handler that creates a new pending transfer and
// deducts the principal from the originating branch.
func Create(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateTransferRequest](c)
		if input == nil {
			return err // error response already written
		}

		amount, err := decimal.NewFromString(input.Amount)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid amount", "amount must be a decimal number")
		}
		createInput := domain.CreateInput{
			Sender:              toParty(input.Sender),
			Receiver:            toParty(input.Receiver),
			Amount:              amount,
			Currency:            currency.Code(input.Currency),
			BranchID:            input.BranchID,
			DestinationBranchID: input.DestinationBranchID,
			EmployeeName:        input.EmployeeName,
			Message:             input.Message,
		}
		if input.BenefitedAmount != "" {
			benefited, err := decimal.NewFromString(input.BenefitedAmount)
			if err != nil {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
					"Invalid benefited amount", "benefited_amount must be a decimal number")
			}
			createInput.BenefitedAmount = &benefited
		}

		tx, err := svc.Create(c.Context(), createInput)
		if err != nil {
			log.Errorf("Failed to create transfer: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transfer created", tx)
	}
}

// Get returns a Fiber handler that retrieves a transfer by id.
func Get(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid transfer ID", "transfer ID must be a valid UUID")
		}
		tx, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer found", tx)
	}
}

// UpdateStatus returns a Fiber handler that moves a transfer to the
// requested status. Cancelling or rejecting refunds the principal.
func UpdateStatus(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid transfer ID", "transfer ID must be a valid UUID")
		}
		input, err := common.BindAndValidate[UpdateStatusRequest](c)
		if input == nil {
			return err
		}
		status, err := domain.ParseStatus(input.Status)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unknown status", err)
		}
		tx, err := svc.TransitionStatus(c.Context(), id, status)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to change status", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Status changed", tx)
	}
}

// Receive returns a Fiber handler that records the receiver confirmation
// taken at hand-off.
func Receive(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid transfer ID", "transfer ID must be a valid UUID")
		}
		input, err := common.BindAndValidate[ReceiveRequest](c)
		if input == nil {
			return err
		}
		conf := domain.ReceiverConfirmation{
			Name:        input.Name,
			Mobile:      input.Mobile,
			IDDocument:  input.IDDocument,
			Address:     input.Address,
			Governorate: input.Governorate,
		}
		tx, err := svc.MarkReceived(c.Context(), id, conf)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to confirm receipt", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Receipt confirmed", tx)
	}
}

// GetReceipt returns a Fiber handler that composes the settlement receipt
// document for a transfer.
func GetReceipt(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid transfer ID", "transfer ID must be a valid UUID")
		}
		doc, err := svc.Receipt(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to compose receipt", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Receipt composed", doc)
	}
}

func toParty(p PartyRequest) domain.Party {
	return domain.Party{
		Name:        p.Name,
		Mobile:      p.Mobile,
		Governorate: p.Governorate,
		Location:    p.Location,
		IDDocument:  p.IDDocument,
		Address:     p.Address,
	}
}
