// Package exchange wires the Betfair identity, Accounts and Betting clients from a
// single configuration.
package exchange

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	httpclient "betfair/internal/http"
	"betfair/internal/transport"
	"betfair/pkg/accounts"
	"betfair/pkg/betting"
	"betfair/pkg/core"
	"betfair/pkg/session"
)

// Exchange bundles the clients of one Betfair account. The certificate is only
// presented to the identity service; Accounts and Betting calls use a plain
// client. It is safe for concurrent use.
type Exchange struct {
	config      *core.Config
	credentials *core.Credentials
	identity    *transport.Client
	api         *transport.Client
	logger      zerolog.Logger

	Session  *session.Authenticator
	Accounts *accounts.Client
	Betting  *betting.Client
}

// New builds an Exchange. creds may be nil when WithTLSConfig supplies the client
// certificate, in which case Login needs explicit credentials through LoginAs.
func New(config *core.Config, creds *core.Credentials, opts ...Option) (*Exchange, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := ApplyOptions(opts...)

	tlsConfig := options.TLS
	if tlsConfig == nil {
		if creds == nil {
			return nil, core.ErrNoCredentials
		}
		if err := creds.Validate(); err != nil {
			return nil, fmt.Errorf("validate credentials: %w", err)
		}
		var err error
		tlsConfig, err = httpclient.LoadClientTLS(creds)
		if err != nil {
			return nil, fmt.Errorf("load client certificate: %w", err)
		}
	}

	headers := map[string]string{}
	if options.UserAgent != "" {
		headers["User-Agent"] = options.UserAgent
	}

	identityHTTP, err := httpclient.NewClient(&httpclient.Config{
		Timeout: config.Timeout,
		TLS:     tlsConfig,
		Headers: headers,
	}, options.Logger)
	if err != nil {
		return nil, fmt.Errorf("create identity client: %w", err)
	}

	apiHTTP, err := httpclient.NewClient(&httpclient.Config{
		Timeout: config.Timeout,
		Headers: headers,
	}, options.Logger)
	if err != nil {
		_ = identityHTTP.Close()
		return nil, fmt.Errorf("create api client: %w", err)
	}

	identity := transport.NewClient(identityHTTP, options.Logger)
	api := transport.NewClient(apiHTTP, options.Logger)

	auth, err := session.New(config, identity,
		session.WithSessionExecutor(api),
		session.WithLogger(options.Logger),
	)
	if err != nil {
		_ = identity.Close()
		_ = api.Close()
		return nil, fmt.Errorf("create authenticator: %w", err)
	}

	return &Exchange{
		config:      config,
		credentials: creds,
		identity:    identity,
		api:         api,
		logger:      options.Logger,
		Session:     auth,
		Accounts:    accounts.New(config, api, options.Logger),
		Betting:     betting.New(config, api, options.Logger),
	}, nil
}

// Config returns the configuration the Exchange was built with.
func (e *Exchange) Config() *core.Config {
	return e.config
}

// Login performs certificate login with the credentials given to New.
func (e *Exchange) Login(ctx context.Context) (*session.Session, error) {
	if e.credentials == nil {
		return nil, core.ErrNoCredentials
	}
	return e.LoginAs(ctx, e.credentials.Identity, e.credentials.Secret)
}

// LoginAs performs certificate login for identity.
func (e *Exchange) LoginAs(ctx context.Context, identity, secret string) (*session.Session, error) {
	s, err := e.Session.Login(ctx, identity, secret)
	if err != nil {
		return nil, err
	}
	e.logger.Info().Str("status", s.Status).Msg("logged in")
	return s, nil
}

// Close releases the connections of both transports.
func (e *Exchange) Close() error {
	return errors.Join(e.identity.Close(), e.api.Close())
}
