// Package testutils provides the shared suite for HTTP handler tests. It
// wires the services onto the in-memory unit of work, so handler tests
// exercise the full stack below the socket without a database.
package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/qasioun/remit/infra/repository/memory"
	"github.com/qasioun/remit/pkg/config"
	branchsvc "github.com/qasioun/remit/pkg/service/branch"
	ledgersvc "github.com/qasioun/remit/pkg/service/ledger"
	transfersvc "github.com/qasioun/remit/pkg/service/transfer"
	"github.com/qasioun/remit/webapi"
	"github.com/stretchr/testify/suite"
)

// Suite hosts the fiber app over in-memory storage.
type Suite struct {
	suite.Suite
	App      *fiber.App
	UoW      *memory.UoW
	Transfer *transfersvc.Service
	Branch   *branchsvc.Service
	Ledger   *ledgersvc.Service
}

// SetupTest rebuilds the app on a fresh store before every test.
func (s *Suite) SetupTest() {
	logger := slog.Default()
	s.UoW = memory.NewUoW()
	s.Ledger = ledgersvc.New(s.UoW, logger)
	s.Transfer = transfersvc.New(s.UoW, s.Ledger, logger)
	s.Branch = branchsvc.New(s.UoW, logger)
	s.App = webapi.NewApp(webapi.Deps{
		Transfer: s.Transfer,
		Branch:   s.Branch,
		Ledger:   s.Ledger,
		Config: &config.AppConfig{
			Env:       "test",
			RateLimit: config.RateLimitConfig{MaxRequests: 1000},
		},
	})
}

// MakeRequest performs an HTTP request against the app and returns the
// response.
func (s *Suite) MakeRequest(method, target, body string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}
