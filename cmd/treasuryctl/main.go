package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"treasury/internal/cli"
	"treasury/internal/config"
	"treasury/internal/kvstore"
	"treasury/internal/logger"
	"treasury/internal/services"
	"treasury/internal/storage"
)

// completion describes the command line for shell completion, enabled with
// COMP_INSTALL=1 treasuryctl.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"balance": {},
		"users":   {},
		"report": {
			Flags: map[string]complete.Predictor{
				"raw":   predict.Nothing,
				"html":  predict.Nothing,
				"width": predict.Something,
			},
		},
		"kv": {
			Flags: map[string]complete.Predictor{
				"key": predict.Set{
					services.KeyUsers,
					services.KeyTransactions,
					services.KeyDailyLogs,
					services.KeyCurrentUserID,
				},
				"path": predict.Something,
			},
		},
	},
}

func main() {
	completion.Complete(path.Base(os.Args[0]))

	// Logs go to stderr and stay quiet unless ENV asks otherwise
	env := os.Getenv("ENV")
	if env == "" {
		env = "test"
	}
	logger.Init(env)
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("failed to load configuration: %v", err)
	}

	app := &cli.App{
		Out:      os.Stdout,
		Err:      os.Stderr,
		Currency: cfg.Currency,
		Calendar: services.NewCalendar(cfg.Location),
		Open: func() (*kvstore.Store, func() error, error) {
			handle, err := storage.Open(cfg)
			if err != nil {
				return nil, nil, err
			}
			return handle.Store, handle.Close, nil
		},
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cli.Register(commander, app)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
