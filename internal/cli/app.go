// Package cli wires the commands of the storemate binary: session
// management, catalog and customer upkeep, the purchase flow, and
// report export.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/storemate/storemate-cli/internal/api"
	"github.com/storemate/storemate-cli/internal/catalog"
	"github.com/storemate/storemate-cli/internal/customers"
	"github.com/storemate/storemate-cli/internal/reports"
	"github.com/storemate/storemate-cli/internal/sales"
	"github.com/storemate/storemate-cli/internal/session"
	"github.com/storemate/storemate-cli/pkg/config"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
	"github.com/storemate/storemate-cli/pkg/logger"
)

// version is stamped at build time.
var version = "dev"

// App owns the command tree and the services behind it.
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	out    io.Writer
	errOut io.Writer

	client    *api.Client
	session   *session.Service
	catalog   *catalog.Service
	customers *customers.Service
	sales     *sales.Service
	reports   *reports.Service
}

// NewApp wires the services over the configured remote API. The saved
// session cookie, if any, is installed on the client so commands stay
// signed in across runs.
func NewApp(cfg *config.Config, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "app requires config")
	}

	store, err := session.NewFileStore(cfg.App.SessionFile)
	if err != nil {
		return nil, err
	}
	state, err := store.Load()
	if err != nil {
		return nil, err
	}
	var cookie string
	if state != nil {
		cookie = state.Token
	}

	app := &App{cfg: cfg, log: log, out: os.Stdout, errOut: os.Stderr}

	client, err := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(log),
		api.WithSessionCookie(cookie),
		api.WithAuthExpiredHook(func() {
			if app.session != nil {
				app.session.Expire()
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	app.client = client

	if app.session, err = session.NewService(store, client, log); err != nil {
		return nil, err
	}
	if app.catalog, err = catalog.NewService(client); err != nil {
		return nil, err
	}
	if app.customers, err = customers.NewService(client); err != nil {
		return nil, err
	}
	if app.sales, err = sales.NewService(client); err != nil {
		return nil, err
	}
	if app.reports, err = reports.NewService(client); err != nil {
		return nil, err
	}
	return app, nil
}

// SetOutput redirects command output, used by tests.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.out = out
	a.errOut = errOut
}

// Execute runs the command tree. Errors are printed as user notices;
// the raw error still propagates for the exit code.
func (a *App) Execute(ctx context.Context) error {
	root := a.rootCommand()
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(a.errOut, "Error: %s\n", pkgerrors.Notice(err))
	}
	return err
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "storemate",
		Short:         "Inventory and sales client for the store service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if a.log != nil {
		root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
			cmd.SetContext(a.log.WithCommand(cmd.Context(), cmd.Name()))
		}
	}

	root.AddCommand(
		a.loginCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.itemsCommand(),
		a.customersCommand(),
		a.salesCommand(),
		a.purchaseCommand(),
		a.reportCommand(),
		a.versionCommand(),
	)
	return root
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.out, "storemate", version)
		},
	}
}
