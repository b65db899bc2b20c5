// Package cli implements the betfair command line tool.
package cli

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"betfair/internal/config"
	"betfair/pkg/exchange"
)

const tokenEnv = "BETFAIR_SESSION_TOKEN"

type app struct {
	cfgFile  string
	envFiles []string
	token    string

	cfg     *config.Config
	logger  zerolog.Logger
	logFile io.Closer
	ex      *exchange.Exchange
}

// NewRootCommand builds the betfair command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "betfair",
		Short: "Command line client for the Betfair Exchange API",
		Long: `betfair logs in to the Betfair Exchange with a client certificate and
calls the Accounts and Betting APIs. Results are printed as JSON.`,
		Version:            version,
		SilenceUsage:       true,
		PersistentPreRunE:  a.initialize,
		PersistentPostRunE: a.shutdown,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml or ~/.betfair/config.yaml)")
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load (default is .env)")
	flags.StringVar(&a.token, "token", os.Getenv(tokenEnv), "session token; logs in when empty (env "+tokenEnv+")")

	root.AddCommand(
		a.loginCmd(),
		a.keepAliveCmd(),
		a.logoutCmd(),
		a.fundsCmd(),
		a.appsCmd(),
		a.accountCmd(),
		a.eventTypesCmd(),
		a.marketsCmd(),
		a.bookCmd(),
		a.ordersCmd(),
		a.clearedCmd(),
		a.placeCmd(),
		a.cancelCmd(),
	)
	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}

func (a *app) initialize(cmd *cobra.Command, _ []string) error {
	var err error
	a.cfg, err = config.Load(a.cfgFile, a.envFiles...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	a.logger, a.logFile = setupLogger(a.cfg.Logging, cmd.ErrOrStderr())

	opts := []exchange.Option{
		exchange.WithLogger(a.logger),
		exchange.WithUserAgent("betfair-cli/" + cmd.Root().Version),
	}
	creds := a.cfg.CoreCredentials()
	if !creds.HasCertificate() {
		// Commands given a --token still work; login is rejected by Betfair.
		a.logger.Warn().Msg("no client certificate configured")
		opts = append(opts, exchange.WithTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12}))
	}

	a.ex, err = exchange.New(a.cfg.Core(), creds, opts...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (a *app) shutdown(_ *cobra.Command, _ []string) error {
	var errs []error
	if a.ex != nil {
		errs = append(errs, a.ex.Close())
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
	}
	return errors.Join(errs...)
}

// sessionToken returns the --token value, or logs in with the configured credentials.
func (a *app) sessionToken(ctx context.Context) (string, error) {
	if a.token != "" {
		return a.token, nil
	}
	s, err := a.ex.Login(ctx)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	a.token = s.Token
	return s.Token, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
