package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/matheuskafuri/aidash/internal/article"
	"gopkg.in/yaml.v3"
)

// MaxFeaturedLimit keeps every slide reachable from the 1-9 indicator keys.
const MaxFeaturedLimit = 9

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type Config struct {
	// Source is where the aggregated feed lives: an http(s) URL or a local
	// path.
	Source           string `yaml:"source"`
	AutoplayInterval string `yaml:"autoplay_interval"`
	FeaturedLimit    int    `yaml:"featured_limit"`
	RequestTimeout   string `yaml:"request_timeout"`
	DefaultFilter    string `yaml:"default_filter,omitempty"`
	Watch            bool   `yaml:"watch"`
	LogLevel         string `yaml:"log_level,omitempty"`
	// Sources maps aggregator source ids to the names shown in the UI.
	Sources map[string]string `yaml:"sources,omitempty"`
}

func (c *Config) AutoplayDuration() time.Duration {
	d, err := time.ParseDuration(c.AutoplayInterval)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

func (c *Config) RequestTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// GetFeaturedLimit returns how many articles the carousel rotates, default 5.
func (c *Config) GetFeaturedLimit() int {
	if c.FeaturedLimit <= 0 {
		return 5
	}
	return c.FeaturedLimit
}

// SourceNames returns the configured display-name overrides.
func (c *Config) SourceNames() article.Names {
	if len(c.Sources) == 0 {
		return nil
	}
	names := make(article.Names, len(c.Sources))
	for id, name := range c.Sources {
		names[article.Source(id)] = name
	}
	return names
}

// SetSource replaces Source, rejecting locations Load would refuse.
func (c *Config) SetSource(location string) error {
	if err := validateSource(location); err != nil {
		return err
	}
	c.Source = location
	return nil
}

// IsRemote reports whether Source is fetched over HTTP.
func (c *Config) IsRemote() bool {
	u, err := url.Parse(c.Source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "aidash", "config.yaml")
}

// StoragePath is the sqlite file holding saved articles.
func StoragePath() string {
	return filepath.Join(xdg.DataHome, "aidash", "aidash.db")
}

func LogDir() string {
	return filepath.Join(xdg.StateHome, "aidash")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: embedded defaults still work if this fails.
			_ = writeDefaults(path)
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	mergeDefaults(&cfg, defaults)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeDefaults fills every field the user left unset.
func mergeDefaults(cfg, defaults *Config) {
	if cfg.Source == "" {
		cfg.Source = defaults.Source
	}
	if cfg.AutoplayInterval == "" {
		cfg.AutoplayInterval = defaults.AutoplayInterval
	}
	if cfg.FeaturedLimit == 0 {
		cfg.FeaturedLimit = defaults.FeaturedLimit
	}
	if cfg.RequestTimeout == "" {
		cfg.RequestTimeout = defaults.RequestTimeout
	}
	if cfg.DefaultFilter == "" {
		cfg.DefaultFilter = defaults.DefaultFilter
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validateSource(location string) error {
	if location == "" {
		return fmt.Errorf("source is required")
	}
	u, err := url.Parse(location)
	if err != nil {
		return fmt.Errorf("source: invalid location: %w", err)
	}
	switch u.Scheme {
	case "", "http", "https", "file":
	default:
		return fmt.Errorf("source scheme must be http, https or a file path, got %q", u.Scheme)
	}
	return nil
}

func validate(cfg *Config) error {
	if err := validateSource(cfg.Source); err != nil {
		return err
	}
	if cfg.FeaturedLimit < 0 || cfg.FeaturedLimit > MaxFeaturedLimit {
		return fmt.Errorf("featured_limit must be between 1 and %d, got %d", MaxFeaturedLimit, cfg.FeaturedLimit)
	}
	if cfg.AutoplayInterval != "" {
		if d, err := time.ParseDuration(cfg.AutoplayInterval); err != nil || d < time.Second {
			return fmt.Errorf("autoplay_interval must be a duration of at least 1s, got %q", cfg.AutoplayInterval)
		}
	}
	switch cfg.DefaultFilter {
	case "", "all", "saved":
	default:
		return fmt.Errorf("default_filter must be all or saved, got %q", cfg.DefaultFilter)
	}
	for id := range cfg.Sources {
		if !article.Source(id).Known() {
			return fmt.Errorf("sources: unknown source id %q", id)
		}
	}
	return nil
}
