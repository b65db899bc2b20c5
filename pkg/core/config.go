package core

import (
	"errors"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
)

// Default Betfair endpoints.
const (
	DefaultIdentityURL = "https://identitysso-cert.betfair.com/api/certlogin"
	DefaultSessionURL  = "https://identitysso.betfair.com/api/"
	DefaultAccountURL  = "https://api.betfair.com/exchange/account/rest/v1.0/"
	DefaultBettingURL  = "https://api.betfair.com/exchange/betting/rest/v1.0/"
)

// Credentials holds the account login and the client certificate material used for
// certificate login. Either CertFile and KeyFile (PEM) or KeyStoreFile (PKCS#12) must be set.
type Credentials struct {
	// Identity is the account username (usually an email address).
	Identity string `json:"identity" validate:"required"`
	// Secret is the account password.
	Secret string `json:"-" validate:"required"`

	CertFile string `json:"cert_file,omitempty" validate:"required_with=KeyFile"`
	KeyFile  string `json:"key_file,omitempty" validate:"required_with=CertFile"`

	// KeyStoreFile is a PKCS#12 bundle holding the client certificate and its key.
	// Both legacy and OpenSSL 3 (AES) encrypted bundles are accepted.
	KeyStoreFile       string `json:"key_store_file,omitempty"`
	KeyStorePassphrase string `json:"-"`
}

// Validate checks that the credentials carry a login and usable certificate material.
func (c *Credentials) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.CertFile == "" && c.KeyStoreFile == "" {
		return errors.New("either CertFile/KeyFile or KeyStoreFile must be set")
	}
	return nil
}

// HasCertificate reports whether any client certificate material is configured.
func (c *Credentials) HasCertificate() bool {
	return c != nil && (c.CertFile != "" || c.KeyStoreFile != "")
}

// Config contains the immutable settings shared by every component of the client.
type Config struct {
	// ApplicationKey is sent as X-Application on every call.
	ApplicationKey string `json:"application_key" validate:"required"`

	IdentityURL string `json:"identity_url" validate:"required,url"`
	SessionURL  string `json:"session_url" validate:"required,url,endswith=/"`
	AccountURL  string `json:"account_url" validate:"required,url,endswith=/"`
	BettingURL  string `json:"betting_url" validate:"required,url,endswith=/"`

	// Timeout is the maximum duration for a single HTTP round trip.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`

	// LoginSuccessStatuses lists the loginStatus values treated as a successful login.
	LoginSuccessStatuses []string `json:"login_success_statuses" validate:"min=1,dive,required"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
}

// DefaultConfig returns a Config pointing at the production endpoints.
// Default values: 10s timeout, SUCCESS/SUCCEEDED login statuses, info logging.
func DefaultConfig(applicationKey string) *Config {
	return &Config{
		ApplicationKey:       applicationKey,
		IdentityURL:          DefaultIdentityURL,
		SessionURL:           DefaultSessionURL,
		AccountURL:           DefaultAccountURL,
		BettingURL:           DefaultBettingURL,
		Timeout:              10 * time.Second,
		LoginSuccessStatuses: []string{"SUCCESS", "SUCCEEDED"},
		LogLevel:             "info",
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}

// IsLoginSuccess reports whether status is one of the configured success statuses.
func (c *Config) IsLoginSuccess(status string) bool {
	return slices.Contains(c.LoginSuccessStatuses, status)
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithIdentityURL sets the certificate login endpoint and returns the config for chaining.
func (c *Config) WithIdentityURL(url string) *Config {
	c.IdentityURL = url
	return c
}

// WithSessionURL sets the keep-alive/logout base URL and returns the config for chaining.
func (c *Config) WithSessionURL(url string) *Config {
	c.SessionURL = url
	return c
}

// WithAccountURL sets the Accounts API base URL and returns the config for chaining.
func (c *Config) WithAccountURL(url string) *Config {
	c.AccountURL = url
	return c
}

// WithBettingURL sets the Betting API base URL and returns the config for chaining.
func (c *Config) WithBettingURL(url string) *Config {
	c.BettingURL = url
	return c
}

// WithLoginSuccessStatuses replaces the set of loginStatus values accepted as success.
func (c *Config) WithLoginSuccessStatuses(statuses ...string) *Config {
	c.LoginSuccessStatuses = statuses
	return c
}

// WithLogLevel sets the log level and returns the config for chaining.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}
