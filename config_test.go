package ncmb

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncmb/ncmb.go/pkg/constants"
)

func TestNewConfig_defaults(t *testing.T) {
	c := NewConfig(testAppKey, testClientKey)
	assert.Equal(t, constants.DefaultDomainURL, c.DomainURL)
	assert.Equal(t, constants.DefaultAPIVersion, c.APIVersion)
	assert.Equal(t, constants.SDKVersion, c.SDKVersion)
	assert.NotEmpty(t, c.OSVersion)
	assert.Equal(t, constants.DefaultHTTPTimeout, c.Timeout)
	assert.NotNil(t, c.Logger)
	assert.NoError(t, c.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"empty application key", func(c *Config) { c.ApplicationKey = "" }, constants.ErrEmptyApplicationKey},
		{"empty client key", func(c *Config) { c.ClientKey = "" }, constants.ErrEmptyClientKey},
		{"no host", func(c *Config) { c.DomainURL = "/just/a/path" }, constants.ErrInvalidDomainURL},
		{"bad url", func(c *Config) { c.DomainURL = "http://[::1" }, constants.ErrInvalidDomainURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig(testAppKey, testClientKey)
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), tt.wantErr)
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(constants.EnvApplicationKey, "env-app")
	t.Setenv(constants.EnvClientKey, "env-client")
	t.Setenv(constants.EnvDomainURL, "http://localhost:3000")
	t.Setenv(constants.EnvAPIVersion, "")

	c, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "env-app", c.ApplicationKey)
	assert.Equal(t, "env-client", c.ClientKey)
	assert.Equal(t, "http://localhost:3000", c.DomainURL)
	assert.Equal(t, constants.DefaultAPIVersion, c.APIVersion)

	t.Setenv(constants.EnvClientKey, "")
	_, err = ConfigFromEnv()
	assert.ErrorIs(t, err, constants.ErrEmptyClientKey)
}

func TestLoadConfigFile(t *testing.T) {
	files := map[string]string{
		"ncmb.jsonc": `{
			// keys from the dashboard
			"application_key": "file-app",
			"client_key": "file-client",
			"domain_url": "http://localhost:3000",
			"timeout": "3s", // trailing comma below
		}`,
		"ncmb.yaml": "application_key: file-app\n" +
			"client_key: file-client\n" +
			"domain_url: http://localhost:3000\n" +
			"timeout: 3s\n",
		"ncmb.toml": "application_key = \"file-app\"\n" +
			"client_key = \"file-client\"\n" +
			"domain_url = \"http://localhost:3000\"\n" +
			"timeout = \"3s\"\n",
	}

	dir := t.TempDir()
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			c, err := LoadConfigFile(path)
			require.NoError(t, err)
			assert.Equal(t, "file-app", c.ApplicationKey)
			assert.Equal(t, "file-client", c.ClientKey)
			assert.Equal(t, "http://localhost:3000", c.DomainURL)
			assert.Equal(t, constants.DefaultAPIVersion, c.APIVersion)
			assert.Equal(t, 3*time.Second, c.Timeout)
		})
	}
}

func TestLoadConfigFile_errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	_, err := LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfigFile(write("ncmb.ini", "x=1"))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = LoadConfigFile(write("nokey.yml", "client_key: c\n"))
	assert.ErrorIs(t, err, constants.ErrEmptyApplicationKey)

	_, err = LoadConfigFile(write("badtimeout.toml", "application_key = \"a\"\nclient_key = \"c\"\ntimeout = \"soon\"\n"))
	assert.ErrorContains(t, err, "timeout")

	_, err = LoadConfigFile(write("broken.json", "{"))
	assert.ErrorContains(t, err, "parsing")
}
