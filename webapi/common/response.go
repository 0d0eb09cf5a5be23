// Package common holds the shared HTTP response envelope, the RFC 9457
// problem-details error shape, and request binding helpers.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/qasioun/remit/pkg/domain/branch"
	"github.com/qasioun/remit/pkg/domain/transfer"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseJSON writes a problem-details response with an explicit
// status. detail may be a string or any serializable error payload.
func ErrorResponseJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()

	return c.Status(status).JSON(pd, "application/problem+json")
}

// ProblemDetailsJSON maps a domain error to its status code and writes the
// problem-details response. Validation errors carry the full violation
// list in the errors field.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error) error {
	status := ErrorToStatusCode(err)
	var verr *transfer.ValidationError
	if errors.As(err, &verr) {
		pd := ProblemDetails{
			Type:     "about:blank",
			Title:    title,
			Status:   status,
			Detail:   "one or more fields failed validation",
			Instance: c.OriginalURL(),
			Errors:   verr.Violations,
		}
		return c.Status(status).JSON(pd, "application/problem+json")
	}
	return ErrorResponseJSON(c, status, title, err.Error())
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, transfer.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, transfer.ErrUnknownStatus):
		return fiber.StatusBadRequest
	case errors.Is(err, branch.ErrAmountMustBePositive):
		return fiber.StatusBadRequest
	case errors.Is(err, transfer.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, branch.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, transfer.ErrInvalidTransition):
		return fiber.StatusConflict
	case errors.Is(err, transfer.ErrAlreadyReceived):
		return fiber.StatusConflict
	case errors.Is(err, branch.ErrInsufficientBalance):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, branch.ErrNothingToDeduct):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. Returns the populated struct, or writes a 400
// response and returns nil; the second return value is the write result,
// so handlers can return it directly.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return &input, nil
}
