package evergreen

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIServer is the hosted Evergreen instance.
	DefaultAPIServer = "https://evergreen.mongodb.com"

	// DefaultTimeout bounds each individual API call when the caller does
	// not set one. A zero Config.Timeout means wait indefinitely.
	DefaultTimeout = 5 * time.Minute

	// ConfigFileName is the per-user configuration file read from the
	// home directory.
	ConfigFileName = ".evergreen.yml"
)

// Auth holds the static credentials Evergreen expects on every request.
type Auth struct {
	Username string
	APIKey   string
}

// Config controls how a client is constructed.
type Config struct {
	// APIServer is the base URL of the Evergreen deployment. A bare host
	// is normalized to https:// and trailing slashes are stripped.
	APIServer string

	// Auth is optional; unauthenticated clients can still read public
	// endpoints.
	Auth *Auth

	// Timeout bounds each API call. Zero means no timeout.
	Timeout time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Logger receives request logs. Nil disables logging.
	Logger *zerolog.Logger

	// Debug enables request/response logging at debug level.
	Debug bool
}

// FileConfig is the on-disk shape of ~/.evergreen.yml, shared with the
// Evergreen command line tool. The server override lives under a nested
// "evergreen" key.
type FileConfig struct {
	User      string `yaml:"user"`
	APIKey    string `yaml:"api_key"`
	Evergreen struct {
		APIServerHost string `yaml:"api_server_host"`
	} `yaml:"evergreen"`
}

// LoadConfigFile reads an Evergreen configuration file.
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &fc, nil
}

// DefaultConfigPath returns the expected location of the per-user
// configuration file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ConfigFileName), nil
}

// ClientConfig converts a file configuration into a client Config. The
// hosted instance is used when the file names no server.
func (fc *FileConfig) ClientConfig() *Config {
	cfg := &Config{APIServer: fc.Evergreen.APIServerHost}
	if cfg.APIServer == "" {
		cfg.APIServer = DefaultAPIServer
	}
	if fc.User != "" || fc.APIKey != "" {
		cfg.Auth = &Auth{Username: fc.User, APIKey: fc.APIKey}
	}
	return cfg
}
