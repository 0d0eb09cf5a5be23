// Command cli is the branch back-office tool: it renders settlement
// receipts and branch ledger summaries to the terminal against the same
// services the HTTP server uses.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/qasioun/remit/infra"
	infrarepo "github.com/qasioun/remit/infra/repository"
	"github.com/qasioun/remit/pkg/config"
	"github.com/qasioun/remit/pkg/currency"
	"github.com/qasioun/remit/pkg/domain/branch"
	branchsvc "github.com/qasioun/remit/pkg/service/branch"
	ledgersvc "github.com/qasioun/remit/pkg/service/ledger"
	transfersvc "github.com/qasioun/remit/pkg/service/transfer"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands: receipt <transfer_id>, history <branch_id>, balance <branch_id>")
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cfg, err := config.Load(logger, ".env")
	if err != nil {
		fmt.Println("Failed to load configuration:", err)
		return
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		fmt.Println("Failed to connect to database:", err)
		return
	}

	uow := infrarepo.NewUoW(db)
	ledgerSvc := ledgersvc.New(uow, logger)
	transferSvc := transfersvc.New(uow, ledgerSvc, logger)
	branchSvc := branchsvc.New(uow, logger)

	ctx := context.Background()
	switch cmd := os.Args[1]; cmd {
	case "receipt":
		if len(os.Args) < 3 {
			fmt.Println("Usage: receipt <transfer_id>")
			return
		}
		id, err := uuid.Parse(os.Args[2])
		if err != nil {
			fmt.Println("Invalid transfer id:", err)
			return
		}
		printReceipt(ctx, transferSvc, id)
	case "history":
		if len(os.Args) < 3 {
			fmt.Println("Usage: history <branch_id>")
			return
		}
		id, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Println("Invalid branch id:", err)
			return
		}
		printHistory(ctx, ledgerSvc, id)
	case "balance":
		if len(os.Args) < 3 {
			fmt.Println("Usage: balance <branch_id>")
			return
		}
		id, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Println("Invalid branch id:", err)
			return
		}
		printBalance(ctx, branchSvc, id)
	default:
		fmt.Println("Unknown command:", cmd)
	}
}

func printReceipt(ctx context.Context, svc *transfersvc.Service, id uuid.UUID) {
	doc, err := svc.Receipt(ctx, id)
	if err != nil {
		color.Red("Failed to compose receipt: %v", err)
		return
	}

	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgYellow)

	title.Printf("=== إيصال حوالة (v%s) ===\n", doc.Version)
	label.Print("Transaction:   ")
	fmt.Println(doc.TransactionID)
	label.Print("From:          ")
	fmt.Printf("%s (%s)\n", doc.OriginBranchName, doc.OriginBranchCode)
	label.Print("To:            ")
	fmt.Printf("%s (%s)\n", doc.DestinationBranchName, doc.DestinationBranchCode)
	label.Print("Date:          ")
	fmt.Printf("%s %s\n", doc.Date, doc.Time)
	label.Print("Sender:        ")
	fmt.Println(doc.SenderName)
	label.Print("Receiver:      ")
	fmt.Printf("%s %s\n", doc.ReceiverName, doc.ReceiverMobile)
	label.Print("Amount:        ")
	color.New(color.FgGreen, color.Bold).Printf("%s %s\n", doc.Amount, doc.CurrencyLabel)
	label.Print("In words:      ")
	fmt.Println(doc.AmountInWords)
	label.Print("Delivery:      ")
	fmt.Println(doc.DeliveryAddress)
	fmt.Println()
	color.New(color.Faint).Println(doc.Notice)
}

func printHistory(ctx context.Context, svc *ledgersvc.Service, branchID int64) {
	entries, err := svc.GetHistory(ctx, branchID, 0, 0)
	if err != nil {
		color.Red("Failed to list fund history: %v", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No fund history for branch", branchID)
		return
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	for _, e := range entries {
		line := fmt.Sprintf("%s  %-10s  %3s %14s  %s",
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Operation, e.Currency, e.Amount.StringFixedBank(2), e.Description)
		if e.Operation == branch.OpAllocation {
			green.Println(line)
		} else {
			red.Println(line)
		}
	}
}

func printBalance(ctx context.Context, svc *branchsvc.Service, branchID int64) {
	b, err := svc.Get(ctx, branchID)
	if err != nil {
		color.Red("Failed to get branch: %v", err)
		return
	}

	color.New(color.FgCyan, color.Bold).Printf("%s (%s)\n", b.Name, b.Code)
	fmt.Printf("  %s: %s\n", currency.SYP, b.AllocatedSYP.StringFixedBank(2))
	fmt.Printf("  %s: %s\n", currency.USD, b.AllocatedUSD.StringFixedBank(2))
}
