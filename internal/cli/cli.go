// Package cli implements treasuryctl, the offline operator tool that reads
// the same storage as the API server.
package cli

import (
	"io"

	"github.com/google/subcommands"

	"treasury/internal/kvstore"
	"treasury/internal/services"
)

// App carries what every subcommand needs. As a CLI it lives for a single
// command, so the store is opened on demand and closed after it.
type App struct {
	Out      io.Writer
	Err      io.Writer
	Currency string
	Calendar services.Calendar

	// Open returns the store and a function releasing it.
	Open func() (*kvstore.Store, func() error, error)
}

// Register adds the subcommands to c.
func Register(c *subcommands.Commander, app *App) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&balanceCmd{app: app}, "ledger")
	c.Register(&reportCmd{app: app}, "ledger")
	c.Register(&usersCmd{app: app}, "admin")
	c.Register(&kvCmd{app: app}, "admin")
}

// withServices opens the store, mounts the domain data on it and runs fn.
func (a *App) withServices(fn func(svc appServices) error) error {
	kv, closeFn, err := a.Open()
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()

	data := services.NewDataService(kv)
	return fn(appServices{
		kv:             kv,
		ledger:         services.NewLedgerService(data, a.Currency, a.Calendar),
		reconciliation: services.NewReconciliationService(data, a.Calendar),
		users:          services.NewUserService(data),
	})
}

type appServices struct {
	kv             *kvstore.Store
	ledger         services.LedgerServicer
	reconciliation services.ReconciliationServicer
	users          services.UserServicer
}
