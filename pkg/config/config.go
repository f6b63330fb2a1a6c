package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "storemate"

type Config struct {
	App    AppConfig
	API    APIConfig
	List   ListConfig
	Export ExportConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	if err := cfg.App.ensureSessionFile(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	LogLevel    string `envconfig:"STOREMATE_LOG_LEVEL" default:"warn"`
	LogFormat   string `envconfig:"STOREMATE_LOG_FORMAT" default:"console"`
	SessionFile string `envconfig:"STOREMATE_SESSION_FILE"`
}

// ensureSessionFile resolves the default session path under the user home
// directory when no explicit file is configured.
func (a *AppConfig) ensureSessionFile() error {
	if strings.TrimSpace(a.SessionFile) != "" {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	a.SessionFile = filepath.Join(home, ".storemate", "session.json")
	return nil
}

type APIConfig struct {
	BaseURL string        `envconfig:"STOREMATE_API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"STOREMATE_API_TIMEOUT" default:"15s"`
}

func (a APIConfig) validate() error {
	parsed, err := url.Parse(strings.TrimSpace(a.BaseURL))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("STOREMATE_API_BASE_URL must be an absolute URL, got %q", a.BaseURL)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("STOREMATE_API_TIMEOUT must be positive, got %s", a.Timeout)
	}
	return nil
}

type ListConfig struct {
	PageSize int `envconfig:"STOREMATE_LIST_PAGE_SIZE" default:"10"`
}

type ExportConfig struct {
	OutputDir string `envconfig:"STOREMATE_EXPORT_DIR" default:"."`
}
