// Package session establishes and maintains Betfair sessions through the identity
// service's certificate login.
package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"betfair/internal/transport"
	"betfair/pkg/core"
)

const statusSuccess = "SUCCESS"

// Session is an established Betfair session. The caller holds it and passes Token
// to every operation; it is never cached here.
type Session struct {
	Token  string `json:"sessionToken"`
	Status string `json:"loginStatus"`
}

type loginResponse struct {
	SessionToken string `json:"sessionToken"`
	LoginStatus  string `json:"loginStatus"`
}

type keepAliveResponse struct {
	Token   string `json:"token"`
	Product string `json:"product"`
	Status  string `json:"status"`
	Error   string `json:"error"`
}

// Authenticator performs certificate login, keep-alive and logout.
// It is safe for concurrent use.
type Authenticator struct {
	config *core.Config
	// identity must be configured with the account's client certificate.
	identity core.Executor
	// session talks to the non-certificate identity endpoints.
	session core.Executor
	logger  zerolog.Logger
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Authenticator) {
		a.logger = logger
	}
}

// WithSessionExecutor sets the executor used for keep-alive and logout. It defaults
// to the identity executor.
func WithSessionExecutor(ex core.Executor) Option {
	return func(a *Authenticator) {
		a.session = ex
	}
}

// New creates an Authenticator. identity must present the client certificate.
func New(config *core.Config, identity core.Executor, opts ...Option) (*Authenticator, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	if identity == nil {
		return nil, fmt.Errorf("identity executor is required")
	}

	a := &Authenticator{
		config:   config,
		identity: identity,
		session:  identity,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Login exchanges identity and secret for a session token in one round trip.
// A rejected login is returned as a *core.APIError of type ErrorTypeAuthFailure whose
// Code is the reported loginStatus; check it with core.IsAuthFailure.
func (a *Authenticator) Login(ctx context.Context, identity, secret string) (*Session, error) {
	if identity == "" || secret == "" {
		return nil, core.ErrNoCredentials
	}

	req := core.NewRequest(core.OpLogin, a.config.IdentityURL).
		SetHeader(core.HeaderApplication, a.config.ApplicationKey).
		SetHeader(core.HeaderAccept, core.ContentTypeJSON).
		SetForm(map[string]string{
			"username": identity,
			"password": secret,
		})

	resp, err := transport.Call[loginResponse](ctx, a.identity, req)
	if err != nil {
		return nil, err
	}

	if !a.config.IsLoginSuccess(resp.LoginStatus) || resp.SessionToken == "" {
		a.logger.Warn().
			Str("status", resp.LoginStatus).
			Msg("login rejected")
		return nil, core.NewAuthFailure(core.OpLogin.String(), resp.LoginStatus)
	}

	a.logger.Info().Str("status", resp.LoginStatus).Msg("logged in")
	return &Session{Token: resp.SessionToken, Status: resp.LoginStatus}, nil
}

// KeepAlive extends the lifetime of token. The returned Session carries the token
// reported by Betfair, which is normally the same.
func (a *Authenticator) KeepAlive(ctx context.Context, token string) (*Session, error) {
	resp, err := a.sessionCall(ctx, core.OpKeepAlive, token)
	if err != nil {
		return nil, err
	}

	sessionToken := resp.Token
	if sessionToken == "" {
		sessionToken = token
	}
	a.logger.Debug().Msg("session kept alive")
	return &Session{Token: sessionToken, Status: resp.Status}, nil
}

// Logout invalidates token.
func (a *Authenticator) Logout(ctx context.Context, token string) error {
	if _, err := a.sessionCall(ctx, core.OpLogout, token); err != nil {
		return err
	}
	a.logger.Info().Msg("logged out")
	return nil
}

func (a *Authenticator) sessionCall(ctx context.Context, op core.Operation, token string) (*keepAliveResponse, error) {
	if token == "" {
		return nil, core.ErrMissingSessionToken
	}

	req := core.NewRequest(op, a.config.SessionURL+op.String()).
		SetHeader(core.HeaderAuthentication, token).
		SetHeader(core.HeaderApplication, a.config.ApplicationKey).
		SetHeader(core.HeaderAccept, core.ContentTypeJSON)

	resp, err := transport.Call[*keepAliveResponse](ctx, a.session, req)
	if err != nil {
		return nil, err
	}
	if resp.Status != statusSuccess {
		a.logger.Warn().
			Str("operation", op.String()).
			Str("status", resp.Status).
			Str("error", resp.Error).
			Msg("session call rejected")
		code := resp.Error
		if code == "" {
			code = resp.Status
		}
		return nil, core.NewAuthFailure(op.String(), code)
	}
	return resp, nil
}
