package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"treasury/internal/models"
	"treasury/internal/report"
)

type balanceCmd struct {
	app *App
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "print the current system balance and totals" }
func (*balanceCmd) Usage() string {
	return `treasuryctl balance

  Prints the balance, all-time totals and today's net movement.
`
}

func (*balanceCmd) SetFlags(*flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := c.app.withServices(func(svc appServices) error {
		d := svc.ledger.Dashboard()
		w := tabwriter.NewWriter(c.app.Out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Date\t%s\n", d.Date)
		fmt.Fprintf(w, "Balance\t%s\n", d.CurrentBalance.Display)
		fmt.Fprintf(w, "Income\t%s\n", d.TotalIncome.Display)
		fmt.Fprintf(w, "Expense\t%s\n", d.TotalExpense.Display)
		fmt.Fprintf(w, "Today\t%s\n", d.TodayNet.Display)
		return w.Flush()
	})
	return c.app.exit(err)
}

type reportCmd struct {
	app   *App
	raw   bool
	html  bool
	width int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the treasury report" }
func (*reportCmd) Usage() string {
	return `treasuryctl report [-raw | -html] [-width n]

  Displays balances, recent transactions, daily totals and the
  reconciliation history. -raw prints the markdown source.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print markdown instead of rendering it")
	f.BoolVar(&c.html, "html", false, "print the report as HTML")
	f.IntVar(&c.width, "width", 100, "word wrap width of the rendered report")
}

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.raw && c.html {
		fmt.Fprintln(c.app.Err, "Error: -raw and -html are exclusive")
		return subcommands.ExitUsageError
	}

	err := c.app.withServices(func(svc appServices) error {
		md := report.Markdown(report.Input{
			Currency:  c.app.Currency,
			Dashboard: svc.ledger.Dashboard(),
			Days:      svc.ledger.DailyReport(),
			Logs:      svc.reconciliation.History(),
		})

		switch {
		case c.raw:
			_, err := fmt.Fprint(c.app.Out, md)
			return err
		case c.html:
			html, err := report.HTML(md)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(c.app.Out, html)
			return err
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(c.width),
		)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		out, err := r.Render(md)
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		_, err = fmt.Fprint(c.app.Out, out)
		return err
	})
	return c.app.exit(err)
}

type usersCmd struct {
	app *App
}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "list users and their permissions" }
func (*usersCmd) Usage() string {
	return `treasuryctl users

  Lists every user with their permissions. Passwords are never printed.
`
}

func (*usersCmd) SetFlags(*flag.FlagSet) {}

func (c *usersCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := c.app.withServices(func(svc appServices) error {
		w := tabwriter.NewWriter(c.app.Out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tACCESS\tPERMISSIONS")
		for _, u := range svc.users.ListUsers() {
			perms := "-"
			if len(u.Permissions) > 0 && !u.HasAllPermissions() {
				perms = joinPermissions(u.Permissions)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Username, u.PermissionSummary(), perms)
		}
		return w.Flush()
	})
	return c.app.exit(err)
}

func joinPermissions(perms []models.Permission) string {
	names := make([]string, len(perms))
	for i, p := range perms {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

type kvCmd struct {
	app  *App
	key  string
	path string
}

func (*kvCmd) Name() string     { return "kv" }
func (*kvCmd) Synopsis() string { return "print a stored value, optionally narrowed by a JSONPath" }
func (*kvCmd) Usage() string {
	return `treasuryctl kv -key <key> [-path <jsonpath>]

  Prints the JSON stored under key. With -path only the matching part is
  printed, e.g. -key treasury_users -path '$[*].username'.
`
}

func (c *kvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "key", "", "storage key to read")
	f.StringVar(&c.path, "path", "", "JSONPath expression applied to the stored value")
}

var errKeyNotFound = errors.New("key not found")

func (c *kvCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.key == "" {
		fmt.Fprintln(c.app.Err, "Error: -key is required")
		return subcommands.ExitUsageError
	}

	err := c.app.withServices(func(svc appServices) error {
		raw, ok := svc.kv.Raw(c.key)
		if !ok {
			return fmt.Errorf("%w: %s", errKeyNotFound, c.key)
		}

		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			return fmt.Errorf("stored value of %s is not JSON: %w", c.key, err)
		}
		if c.path != "" {
			selected, err := jsonpath.Get(c.path, value)
			if err != nil {
				return fmt.Errorf("error evaluating %q: %w", c.path, err)
			}
			value = selected
		}

		out, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.app.Out, string(out))
		return err
	})
	return c.app.exit(err)
}

func (a *App) exit(err error) subcommands.ExitStatus {
	if err != nil {
		fmt.Fprintf(a.Err, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
