// Command ledgerctl runs maintenance reports against the ledger database:
// balance verification, ledger statements and payout previews.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/mmynk/splitledger/internal/config"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/internal/storage/sqlstore"
	"github.com/mmynk/splitledger/pkg/logging"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	a := &app{}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&verifyCmd{app: a}, "")
	commander.Register(&statementCmd{app: a}, "")
	commander.Register(&payoutPreviewCmd{app: a}, "")

	flag.Parse()
	status := commander.Execute(context.Background())
	a.close()
	os.Exit(int(status))
}

// app opens the store from the environment on first use.
type app struct {
	store    storage.Store
	currency money.Currency
}

func (a *app) open(ctx context.Context) error {
	if a.store != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel)

	var store *sqlstore.Store
	if cfg.DBDriver == "postgres" {
		store, err = sqlstore.NewPostgres(ctx, cfg.DatabaseURL)
	} else {
		store, err = sqlstore.NewSQLite(cfg.DBPath)
	}
	if err != nil {
		return err
	}
	a.store = store
	a.currency = cfg.MustCurrency()
	return nil
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
}
