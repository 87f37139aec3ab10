package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/muhammadmuzzammil1998/jsonc"

	"birchwood/internal/content"
	"birchwood/internal/debuglog"
)

// Environment variables read by LoadConfig.
const (
	EnvBackendURL = "BIRCHWOOD_BACKEND_URL"
	// EnvLegacyBackendURL is the variable the mobile build used for the same setting.
	EnvLegacyBackendURL = "EXPO_PUBLIC_BACKEND_URL"
	EnvTimeout          = "BIRCHWOOD_TIMEOUT"
)

// Config holds runtime wiring options for building the app. It is resolved
// once at start-up and never changed afterwards.
type Config struct {
	BaseURL  string        // content service root, e.g. https://birchwood.example.org
	Timeout  time.Duration // per-fetch bound
	LogLevel string        // off|error|warn|info|debug|trace; "" reads BIRCHWOOD_DEBUG
	MaxBody  int64         // response body cap in bytes; 0 keeps the client default
	HTTP     *http.Client  // optional; defaults to a tuned client
}

// LoadOptions controls where LoadConfig looks. Overrides win over every
// other source and normally come from command-line flags.
type LoadOptions struct {
	ConfigPath string   // JSON-with-comments file; "" tries DefaultConfigPath
	EnvFiles   []string // dotenv files; missing files are ignored
	Overrides  Config
}

type fileConfig struct {
	BackendURL string `json:"backendUrl"`
	Timeout    string `json:"timeout"`
	LogLevel   string `json:"logLevel"`
	MaxBody    int64  `json:"maxBodyBytes"`
}

// DefaultConfigPath returns ~/.birchwood/config.jsonc, or "" without a home dir.
func DefaultConfigPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ".birchwood", "config.jsonc")
}

// LoadConfig resolves the configuration. Precedence, lowest first: config
// file, dotenv files, process environment, overrides.
func LoadConfig(opts LoadOptions) (Config, error) {
	cfg := Config{Timeout: content.DefaultTimeout, LogLevel: "warn"}

	explicit := opts.ConfigPath != ""
	path := opts.ConfigPath
	if !explicit {
		path = DefaultConfigPath()
	}
	if path != "" {
		if err := applyFile(&cfg, path, explicit); err != nil {
			return Config{}, err
		}
	}

	envFiles := opts.EnvFiles
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	o := opts.Overrides
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	if o.Timeout > 0 {
		cfg.Timeout = o.Timeout
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.MaxBody > 0 {
		cfg.MaxBody = o.MaxBody
	}
	if o.HTTP != nil {
		cfg.HTTP = o.HTTP
	}

	return cfg, cfg.Validate()
}

func applyFile(cfg *Config, path string, required bool) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(jsonc.ToJSON(b), &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.BackendURL != "" {
		cfg.BaseURL = fc.BackendURL
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("config %s: timeout: %w", path, err)
		}
		cfg.Timeout = d
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.MaxBody != 0 {
		cfg.MaxBody = fc.MaxBody
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvBackendURL)); v != "" {
		cfg.BaseURL = v
	} else if v := strings.TrimSpace(os.Getenv(EnvLegacyBackendURL)); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	if v := strings.TrimSpace(os.Getenv(debuglog.EnvKey)); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

// Validate checks that cfg can build a client.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("no content service configured: set %s or use --backend", EnvBackendURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxBody < 0 {
		return fmt.Errorf("max body size must not be negative, got %d", c.MaxBody)
	}
	if _, ok := debuglog.ParseLevel(c.LogLevel); !ok && c.LogLevel != "" {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
