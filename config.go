package ncmb

import (
	"fmt"
	rawslog "log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/ncmb/ncmb.go/pkg/connection"
	"github.com/ncmb/ncmb.go/pkg/constants"
	"github.com/ncmb/ncmb.go/pkg/logger"
	"github.com/ncmb/ncmb.go/pkg/logger/slog"
	"github.com/ncmb/ncmb.go/pkg/request"
)

// Config holds everything a Client needs. Create it with NewConfig,
// ConfigFromEnv or LoadConfigFile so that the defaults are filled in.
type Config struct {
	ApplicationKey string
	ClientKey      string
	// DomainURL is the scheme and host of the API, optionally with a path
	// prefix. Defaults to constants.DefaultDomainURL.
	DomainURL  string
	APIVersion string
	SDKVersion string
	OSVersion  string

	// Timeout applies to each request unless the request sets its own.
	Timeout time.Duration
	// HTTPClient is the transport. A plain http.Client with
	// constants.DefaultHTTPTimeout is used when nil.
	HTTPClient connection.Doer
	Logger     logger.Logger
}

// NewConfig returns a Config for the production endpoint.
func NewConfig(applicationKey, clientKey string) *Config {
	return &Config{
		ApplicationKey: applicationKey,
		ClientKey:      clientKey,
		DomainURL:      constants.DefaultDomainURL,
		APIVersion:     constants.DefaultAPIVersion,
		SDKVersion:     constants.SDKVersion,
		OSVersion:      request.DefaultOSVersion(),
		Timeout:        constants.DefaultHTTPTimeout,
		Logger:         slog.New(rawslog.NewTextHandler(os.Stderr, nil)),
	}
}

// ConfigFromEnv reads NCMB_APPLICATION_KEY, NCMB_CLIENT_KEY,
// NCMB_DOMAIN_URL and NCMB_API_VERSION.
func ConfigFromEnv() (*Config, error) {
	c := NewConfig(
		os.Getenv(constants.EnvApplicationKey),
		os.Getenv(constants.EnvClientKey),
	)
	c.DomainURL = GetEnvOrDefault(constants.EnvDomainURL, c.DomainURL)
	c.APIVersion = GetEnvOrDefault(constants.EnvAPIVersion, c.APIVersion)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// fileConfig is the on-disk form shared by every supported format.
type fileConfig struct {
	ApplicationKey string `json:"application_key" yaml:"application_key" toml:"application_key"`
	ClientKey      string `json:"client_key" yaml:"client_key" toml:"client_key"`
	DomainURL      string `json:"domain_url" yaml:"domain_url" toml:"domain_url"`
	APIVersion     string `json:"api_version" yaml:"api_version" toml:"api_version"`
	Timeout        string `json:"timeout" yaml:"timeout" toml:"timeout"`
}

// LoadConfigFile reads a config file. The format follows the extension:
// .json and .jsonc (comments and trailing commas allowed), .yaml and .yml,
// or .toml. Keys missing from the file keep their NewConfig defaults.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		_, err = toml.Decode(string(data), &fc)
	default:
		return nil, fmt.Errorf("%s: unsupported config format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	c := NewConfig(fc.ApplicationKey, fc.ClientKey)
	if fc.DomainURL != "" {
		c.DomainURL = fc.DomainURL
	}
	if fc.APIVersion != "" {
		c.APIVersion = fc.APIVersion
	}
	if fc.Timeout != "" {
		c.Timeout, err = time.ParseDuration(fc.Timeout)
		if err != nil {
			return nil, fmt.Errorf("%s: timeout: %w", path, err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first configuration error.
func (c *Config) Validate() error {
	if c.ApplicationKey == "" {
		return constants.ErrEmptyApplicationKey
	}
	if c.ClientKey == "" {
		return constants.ErrEmptyClientKey
	}
	u, err := url.Parse(c.DomainURL)
	if err != nil {
		return fmt.Errorf("%w: %w", constants.ErrInvalidDomainURL, err)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q", constants.ErrInvalidDomainURL, c.DomainURL)
	}
	return nil
}

func (c *Config) credentials() request.Credentials {
	return request.Credentials{
		ApplicationKey: c.ApplicationKey,
		ClientKey:      c.ClientKey,
		DomainURL:      c.DomainURL,
		APIVersion:     c.APIVersion,
		SDKVersion:     c.SDKVersion,
		OSVersion:      c.OSVersion,
	}
}
