package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jmswll/yoauth/constants"
	"gopkg.in/yaml.v3"
)

// Client-credential scheme used against the token endpoint. Yahoo accepts
// both; which one a given OAuth provider expects is provider-specific.
const (
	AuthSchemeBody  = "body"
	AuthSchemeBasic = "basic"
)

type Config struct {
	ClientID     string `env:"CLIENT_ID" yaml:"client_id"`
	ClientSecret string `env:"CLIENT_SECRET" yaml:"client_secret"`
	RedirectURI  string `env:"REDIRECT_URI" yaml:"redirect_uri"`
	APIBaseURL   string `env:"API_BASE_URL" yaml:"api_base_url"`
	Scope        string `env:"SCOPE" yaml:"scope"`
	// Optional language/locale hint forwarded to the authorization endpoint.
	Language string `env:"LANGUAGE" yaml:"language"`
	// AuthSchemeBody or AuthSchemeBasic.
	AuthScheme string `env:"AUTH_SCHEME" yaml:"auth_scheme"`
	TokenFile  string `env:"TOKEN_FILE" yaml:"token_file"`
	InfoFile   string `env:"INFO_FILE" yaml:"info_file"`
	// Fixed timeout applied to every request. Environment-only.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" yaml:"-"`
}

// MissingFieldError reports a required config value that was not provided by
// either the environment or the config file.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required config value %q (set the %s environment variable)", e.Field, strings.ToUpper(e.Field))
}

// Load builds the effective config: environment variables first, then the
// optional YAML config file for anything the environment left unset, then
// built-in defaults. Returns a MissingFieldError when a required value is
// absent from all three.
func Load() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := applyConfigFile(&config); err != nil {
		return Config{}, err
	}
	setDefaults(&config)

	if err := config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Returns the path to the optional config file.
func configFilePath() string {
	if path := os.Getenv(constants.ConfigFileEnvVar); path != "" {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, constants.ConfigFileName)
}

// Fill in values the environment left unset from the config file, if one
// exists. Environment always wins over file contents.
func applyConfigFile(config *Config) error {
	path := configFilePath()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("invalid config file %s: %w", path, err)
	}

	if config.ClientID == "" {
		config.ClientID = file.ClientID
	}
	if config.ClientSecret == "" {
		config.ClientSecret = file.ClientSecret
	}
	if config.RedirectURI == "" {
		config.RedirectURI = file.RedirectURI
	}
	if config.APIBaseURL == "" {
		config.APIBaseURL = file.APIBaseURL
	}
	if config.Scope == "" {
		config.Scope = file.Scope
	}
	if config.Language == "" {
		config.Language = file.Language
	}
	if config.AuthScheme == "" {
		config.AuthScheme = file.AuthScheme
	}
	if config.TokenFile == "" {
		config.TokenFile = file.TokenFile
	}
	if config.InfoFile == "" {
		config.InfoFile = file.InfoFile
	}

	return nil
}

// Set defaults for values missing from both the environment and the config
// file.
func setDefaults(config *Config) {
	if config.APIBaseURL == "" {
		config.APIBaseURL = constants.DefaultAPIBaseURL
	}
	if config.Scope == "" {
		config.Scope = constants.DefaultScope
	}
	if config.AuthScheme == "" {
		config.AuthScheme = AuthSchemeBody
	}
	if config.TokenFile == "" {
		config.TokenFile = constants.DefaultTokenFileName
	}
	if config.InfoFile == "" {
		config.InfoFile = constants.DefaultInfoFileName
	}
	if config.HTTPTimeout == 0 {
		config.HTTPTimeout = 30 * time.Second
	}
}

func (c Config) validate() error {
	if c.ClientID == "" {
		return &MissingFieldError{Field: "client_id"}
	}
	if c.ClientSecret == "" {
		return &MissingFieldError{Field: "client_secret"}
	}
	if c.RedirectURI == "" {
		return &MissingFieldError{Field: "redirect_uri"}
	}
	if c.AuthScheme != AuthSchemeBody && c.AuthScheme != AuthSchemeBasic {
		return fmt.Errorf("invalid AUTH_SCHEME %q (must be %q or %q)", c.AuthScheme, AuthSchemeBody, AuthSchemeBasic)
	}
	return nil
}
