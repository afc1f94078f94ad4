package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/service"
)

type verifyCmd struct {
	app   *app
	plain bool
}

func (*verifyCmd) Name() string     { return "verify" }
func (*verifyCmd) Synopsis() string { return "compare stored ledger balances with their transactions" }
func (*verifyCmd) Usage() string {
	return `ledgerctl verify [-plain] [<ledger-id>...]

  Recomputes each ledger's balance from its transactions and reports any
  ledger whose stored balance differs. Without ids every ledger is checked.
  Exits non-zero when a mismatch is found.
`
}

func (c *verifyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of rendering it.")
}

func (c *verifyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.app.open(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var ledgers []*models.Ledger
	if f.NArg() == 0 {
		all, err := c.app.store.ListLedgers(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		ledgers = all
	} else {
		for _, id := range f.Args() {
			ledger, err := c.app.store.GetLedger(ctx, id)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
			ledgers = append(ledgers, ledger)
		}
	}

	status := subcommands.ExitSuccess
	checks := make([]ledgerCheck, 0, len(ledgers))
	for _, ledger := range ledgers {
		v, err := service.VerifyLedger(ctx, c.app.store, ledger.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify %s: %v\n", ledger.ID, err)
			return subcommands.ExitFailure
		}
		if !v.OK() {
			status = subcommands.ExitFailure
		}
		checks = append(checks, ledgerCheck{Ledger: ledger, Result: v})
	}

	printMarkdown(os.Stdout, verifyMarkdown(checks, c.app.currency), c.plain)
	return status
}

type statementCmd struct {
	app   *app
	plain bool
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "print a ledger's balance and transactions" }
func (*statementCmd) Usage() string {
	return `ledgerctl statement [-plain] <ledger-id>

  Prints the ledger balance followed by its transactions, newest first.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of rendering it.")
}

func (c *statementCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	if err := c.app.open(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ledger, err := c.app.store.GetLedger(ctx, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	txs, err := c.app.store.ListTransactions(ctx, ledger.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(os.Stdout, statementMarkdown(ledger, txs, c.app.currency), c.plain)
	return subcommands.ExitSuccess
}

type payoutPreviewCmd struct {
	app   *app
	plain bool
}

func (*payoutPreviewCmd) Name() string     { return "payout-preview" }
func (*payoutPreviewCmd) Synopsis() string { return "show the suggested payout for a project" }
func (*payoutPreviewCmd) Usage() string {
	return `ledgerctl payout-preview [-plain] <project-id>

  Lists the participants who paid and were not refunded, and the payout
  amount they add up to. Nothing is written.
`
}

func (c *payoutPreviewCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of rendering it.")
}

func (c *payoutPreviewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	if err := c.app.open(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	project, err := c.app.store.GetProject(ctx, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	suggestion, err := service.SuggestProjectPayout(ctx, c.app.store, project.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(os.Stdout, payoutMarkdown(project, suggestion, c.app.currency), c.plain)
	return subcommands.ExitSuccess
}
