// Package accounts implements the Betfair Accounts API operations.
package accounts

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"betfair/internal/transport"
	"betfair/pkg/core"
)

// Client issues Accounts API operations. It is safe for concurrent use.
type Client struct {
	config   *core.Config
	executor core.Executor
	logger   zerolog.Logger
}

func New(config *core.Config, executor core.Executor, logger zerolog.Logger) *Client {
	return &Client{
		config:   config,
		executor: executor,
		logger:   logger,
	}
}

// GetAccountFunds returns the funds of wallet. An empty wallet means the UK wallet.
func (c *Client) GetAccountFunds(ctx context.Context, token string, wallet Wallet) (*AccountFunds, error) {
	params := core.NewParams().SetOptional("wallet", string(wallet))
	return call[*AccountFunds](ctx, c, core.OpGetAccountFunds, token, params)
}

// GetDeveloperAppKeys returns the applications registered to the account.
func (c *Client) GetDeveloperAppKeys(ctx context.Context, token string) ([]DeveloperApp, error) {
	return call[[]DeveloperApp](ctx, c, core.OpGetDeveloperAppKeys, token, nil)
}

// GetAccountDetails returns the account holder's settings.
func (c *Client) GetAccountDetails(ctx context.Context, token string) (*AccountDetails, error) {
	return call[*AccountDetails](ctx, c, core.OpGetAccountDetails, token, nil)
}

func call[T any](ctx context.Context, c *Client, op core.Operation, token string, params *core.Params) (T, error) {
	req, err := core.BuildRequest(c.config.AccountURL, op, token, c.config.ApplicationKey, params)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("build request: %w", err)
	}
	out, err := transport.Call[T](ctx, c.executor, req)
	if err != nil {
		c.logger.Debug().Err(err).Str("operation", op.String()).Msg("accounts operation failed")
	}
	return out, err
}
