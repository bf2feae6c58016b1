package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/pass-the-pages/internal/adapter"
	"github.com/MKhiriev/pass-the-pages/internal/config"
	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/spf13/cobra"
)

var _ Client = (*App)(nil)

// App is the command tree of the client. The marketplace adapter is created
// after flags are parsed, so --server and --timeout apply to it.
type App struct {
	cfg       config.ClientConfig
	tokens    TokenStore
	passwords PasswordReader
	out       io.Writer
	logger    *logger.Logger

	adapter adapter.MarketplaceAdapter
	root    *cobra.Command
}

// NewApp builds the command tree. cfg provides the defaults of the
// persistent flags.
func NewApp(cfg config.ClientConfig, tokens TokenStore, passwords PasswordReader, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		cfg:       cfg,
		tokens:    tokens,
		passwords: passwords,
		out:       out,
		logger:    logger,
	}
	a.root = a.newRootCommand()
	return a
}

// Run executes the subcommand named by args.
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pass-the-pages",
		Short:         "Command-line client for the campus textbook marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.out)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfg.HTTPAddress, "server", "s", a.cfg.HTTPAddress, "marketplace API address (PTP_ADDRESS)")
	flags.DurationVar(&a.cfg.RequestTimeout, "timeout", a.cfg.RequestTimeout, "request timeout (PTP_REQUEST_TIMEOUT)")
	flags.StringVar(&a.cfg.Token, "token", a.cfg.Token, "bearer token, overrides the saved one (PTP_TOKEN)")

	root.AddCommand(
		a.newRegisterCommand(),
		a.newLoginCommand(),
		a.newLogoutCommand(),
		a.newProfileCommand(),
		a.newUsersCommand(),
		a.newBooksCommand(),
		a.newMessagesCommand(),
		a.newTransactionsCommand(),
		a.newVersionCommand(),
	)

	return root
}

func (a *App) connect() error {
	marketplace, err := adapter.NewHTTPMarketplaceAdapter(a.cfg.HTTPAddress, a.cfg.RequestTimeout, a.logger)
	if err != nil {
		return err
	}

	token := a.cfg.Token
	if token == "" {
		if token, err = a.tokens.Load(); err != nil {
			return err
		}
	}
	marketplace.SetToken(token)

	a.adapter = marketplace
	return nil
}

// requireLogin fails fast on protected commands when no token is held.
func (a *App) requireLogin() error {
	if a.adapter.Token() == "" {
		return fmt.Errorf("%w: run `login` first", adapter.ErrNotLoggedIn)
	}
	return nil
}

// saveToken persists the token held by the adapter after register or login.
func (a *App) saveToken() error {
	if err := a.tokens.Save(a.adapter.Token()); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (a *App) password(value string) (string, error) {
	if value != "" {
		return value, nil
	}
	return a.passwords.ReadPassword("Password: ")
}

func requireFlags(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		_ = cmd.MarkFlagRequired(name)
	}
}
