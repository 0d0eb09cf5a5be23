// Package webapi assembles the HTTP application.
package webapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/qasioun/remit/pkg/config"
	branchsvc "github.com/qasioun/remit/pkg/service/branch"
	ledgersvc "github.com/qasioun/remit/pkg/service/ledger"
	transfersvc "github.com/qasioun/remit/pkg/service/transfer"
	"github.com/qasioun/remit/webapi/branch"
	"github.com/qasioun/remit/webapi/common"
	"github.com/qasioun/remit/webapi/transfer"
)

// Deps carries the services the HTTP layer exposes.
type Deps struct {
	Transfer *transfersvc.Service
	Branch   *branchsvc.Service
	Ledger   *ledgersvc.Service
	Config   *config.AppConfig
}

// NewApp builds the fiber application with all routes registered.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default to 500 if status code cannot be determined
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Qasioun remit core is up")
	})

	transfer.Routes(app, deps.Transfer)
	branch.Routes(app, deps.Branch, deps.Ledger)

	return app
}
