// Package config loads client settings and credentials from a YAML file, .env files
// and BETFAIR_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"betfair/pkg/core"
)

const envPrefix = "BETFAIR"

var validate = validator.New()

type Config struct {
	ApplicationKey       string            `mapstructure:"application_key"`
	IdentityURL          string            `mapstructure:"identity_url"`
	SessionURL           string            `mapstructure:"session_url"`
	AccountURL           string            `mapstructure:"account_url"`
	BettingURL           string            `mapstructure:"betting_url"`
	Timeout              time.Duration     `mapstructure:"timeout"`
	LoginSuccessStatuses []string          `mapstructure:"login_success_statuses"`
	Credentials          CredentialsConfig `mapstructure:"credentials"`
	Logging              LoggingConfig     `mapstructure:"logging"`
}

// CredentialsConfig holds the account login and certificate locations. Secrets are
// best supplied through BETFAIR_CREDENTIALS_PASSWORD or a .env file.
type CredentialsConfig struct {
	Username           string `mapstructure:"username"`
	Password           string `mapstructure:"password"`
	CertFile           string `mapstructure:"cert_file"`
	KeyFile            string `mapstructure:"key_file"`
	KeyStore           string `mapstructure:"key_store"`
	KeyStorePassphrase string `mapstructure:"key_store_passphrase"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
	Color  bool   `mapstructure:"color"`
	// File, when set, receives the log output with size based rotation.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"min=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"min=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"min=0"`
}

// Load reads configPath, or config.yaml from the usual locations when configPath is
// empty. A missing default file is not an error; settings then come from the
// defaults and the environment. envFiles are loaded first without overriding
// variables that are already set; ".env" is tried when none are given.
func Load(configPath string, envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".betfair"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Every key needs a default so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("application_key", "")
	v.SetDefault("identity_url", core.DefaultIdentityURL)
	v.SetDefault("session_url", core.DefaultSessionURL)
	v.SetDefault("account_url", core.DefaultAccountURL)
	v.SetDefault("betting_url", core.DefaultBettingURL)
	v.SetDefault("timeout", 10*time.Second)
	v.SetDefault("login_success_statuses", []string{"SUCCESS", "SUCCEEDED"})

	v.SetDefault("credentials.username", "")
	v.SetDefault("credentials.password", "")
	v.SetDefault("credentials.cert_file", "")
	v.SetDefault("credentials.key_file", "")
	v.SetDefault("credentials.key_store", "")
	v.SetDefault("credentials.key_store_passphrase", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 100)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 28)
}

// Validate checks the client settings and the logging section. Credentials are
// checked separately by the commands that log in.
func (c *Config) Validate() error {
	if err := c.Core().Validate(); err != nil {
		return err
	}
	return validate.Struct(&c.Logging)
}

// Core returns the client configuration.
func (c *Config) Core() *core.Config {
	return core.DefaultConfig(c.ApplicationKey).
		WithIdentityURL(c.IdentityURL).
		WithSessionURL(c.SessionURL).
		WithAccountURL(c.AccountURL).
		WithBettingURL(c.BettingURL).
		WithTimeout(c.Timeout).
		WithLoginSuccessStatuses(c.LoginSuccessStatuses...).
		WithLogLevel(c.Logging.Level)
}

// CoreCredentials returns the login credentials and certificate material.
func (c *Config) CoreCredentials() *core.Credentials {
	return &core.Credentials{
		Identity:           c.Credentials.Username,
		Secret:             c.Credentials.Password,
		CertFile:           c.Credentials.CertFile,
		KeyFile:            c.Credentials.KeyFile,
		KeyStoreFile:       c.Credentials.KeyStore,
		KeyStorePassphrase: c.Credentials.KeyStorePassphrase,
	}
}
