package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AccessKeyEnv overrides the access_key setting when set.
const AccessKeyEnv = "PICSEARCH_ACCESS_KEY"

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	AccessKey    string `koanf:"access_key"`    // Unsplash client_id
	InitialQuery string `koanf:"initial_query"` // query searched on startup
	Icons        string `koanf:"icons"`         // "nerd", "unicode", or "none"

	Search        SearchConfig        `koanf:"search"`
	Display       DisplayConfig       `koanf:"display"`
	Notifications NotificationsConfig `koanf:"notifications"`
}

// SearchConfig controls the remote search and the gallery window.
type SearchConfig struct {
	BaseURL    string `koanf:"base_url"`    // e.g., "https://api.unsplash.com"
	PerPage    int    `koanf:"per_page"`    // results requested per page (1-30, default: 10)
	ResultCap  int    `koanf:"result_cap"`  // max records kept across pages (default: 55)
	WindowSize int    `koanf:"window_size"` // tiles shown per gallery page (default: 10)
	DebounceMS int    `koanf:"debounce_ms"` // quiet period before a typed query is searched (default: 1200)
}

// DisplayConfig holds terminal rendering settings.
type DisplayConfig struct {
	ImageProtocol string `koanf:"image_protocol"` // "", "kitty", "sixel", "halfblock", "none"
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Desktop bool `koanf:"desktop"` // also send fetch failures over D-Bus
}

const (
	defaultBaseURL      = "https://api.unsplash.com"
	defaultInitialQuery = "Dog"
	defaultPerPage      = 10
	defaultResultCap    = 55
	defaultWindowSize   = 10
	defaultDebounceMS   = 1200
	maxPerPage          = 30
)

var validProtocols = []string{"", "kitty", "sixel", "halfblock", "none"}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths())
}

// LoadFrom loads configuration from the given files, skipping missing ones.
// Later files override earlier ones.
func LoadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		InitialQuery: defaultInitialQuery,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if key := os.Getenv(AccessKeyEnv); key != "" {
		cfg.AccessKey = key
	}

	// Normalize base URL (remove trailing slash)
	cfg.Search.BaseURL = strings.TrimSuffix(cfg.Search.BaseURL, "/")
	cfg.Display.ImageProtocol = strings.ToLower(strings.TrimSpace(cfg.Display.ImageProtocol))

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	s := c.Search
	if s.PerPage < 0 || s.PerPage > maxPerPage {
		return fmt.Errorf("%w: search.per_page must be between 1 and %d, got %d", ErrInvalidConfig, maxPerPage, s.PerPage)
	}
	if s.ResultCap < 0 {
		return fmt.Errorf("%w: search.result_cap must not be negative, got %d", ErrInvalidConfig, s.ResultCap)
	}
	if s.WindowSize < 0 {
		return fmt.Errorf("%w: search.window_size must not be negative, got %d", ErrInvalidConfig, s.WindowSize)
	}
	if s.DebounceMS < 0 {
		return fmt.Errorf("%w: search.debounce_ms must not be negative, got %d", ErrInvalidConfig, s.DebounceMS)
	}
	for _, p := range validProtocols {
		if c.Display.ImageProtocol == p {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown display.image_protocol %q", ErrInvalidConfig, c.Display.ImageProtocol)
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/picsearch/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "picsearch", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// HasAccessKey returns true if an API credential is configured.
func (c *Config) HasAccessKey() bool {
	return strings.TrimSpace(c.AccessKey) != ""
}

// GetSearchConfig returns the search configuration with defaults applied.
func (c *Config) GetSearchConfig() SearchConfig {
	cfg := c.Search

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = defaultPerPage
	}
	if cfg.ResultCap <= 0 {
		cfg.ResultCap = defaultResultCap
	}
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = defaultWindowSize
	}
	if cfg.DebounceMS <= 0 {
		cfg.DebounceMS = defaultDebounceMS
	}

	return cfg
}

// Debounce returns the quiet period as a duration.
func (s SearchConfig) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}
