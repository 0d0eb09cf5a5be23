package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"
	"github.com/qasioun/remit/infra"
	infrarepo "github.com/qasioun/remit/infra/repository"
	"github.com/qasioun/remit/pkg/config"
	branchsvc "github.com/qasioun/remit/pkg/service/branch"
	ledgersvc "github.com/qasioun/remit/pkg/service/ledger"
	transfersvc "github.com/qasioun/remit/pkg/service/transfer"
	"github.com/qasioun/remit/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()
	cfg, err := config.Load(logger, ".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	uow := infrarepo.NewUoW(db)
	ledgerSvc := ledgersvc.New(uow, logger)
	app := webapi.NewApp(webapi.Deps{
		Transfer: transfersvc.New(uow, ledgerSvc, logger),
		Branch:   branchsvc.New(uow, logger),
		Ledger:   ledgerSvc,
		Config:   cfg,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)

	return app.Listen(addr)
}
