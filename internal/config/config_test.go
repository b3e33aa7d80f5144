//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "picsearch", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestLoadFrom_MissingFilesUseDefaults(t *testing.T) {
	t.Setenv(AccessKeyEnv, "")

	cfg, err := LoadFrom([]string{filepath.Join(t.TempDir(), "nope.toml")})
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.InitialQuery != "Dog" {
		t.Errorf("InitialQuery = %q, want %q", cfg.InitialQuery, "Dog")
	}
	if cfg.HasAccessKey() {
		t.Error("HasAccessKey() = true, want false")
	}

	s := cfg.GetSearchConfig()
	if s.BaseURL != "https://api.unsplash.com" {
		t.Errorf("BaseURL = %q", s.BaseURL)
	}
	if s.ResultCap != 55 {
		t.Errorf("ResultCap = %d, want 55", s.ResultCap)
	}
	if s.WindowSize != 10 {
		t.Errorf("WindowSize = %d, want 10", s.WindowSize)
	}
	if s.PerPage != 10 {
		t.Errorf("PerPage = %d, want 10", s.PerPage)
	}
	if s.Debounce() != 1200*time.Millisecond {
		t.Errorf("Debounce() = %v, want 1.2s", s.Debounce())
	}
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	t.Setenv(AccessKeyEnv, "")
	dir := t.TempDir()

	first := writeConfig(t, dir, "a.toml", `
access_key = "first"
initial_query = "cats"

[search]
result_cap = 30
`)
	second := writeConfig(t, dir, "b.toml", `
access_key = "second"

[search]
base_url = "http://localhost:9000/"
window_size = 6
`)

	cfg, err := LoadFrom([]string{first, second})
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.AccessKey != "second" {
		t.Errorf("AccessKey = %q, want %q", cfg.AccessKey, "second")
	}
	if cfg.InitialQuery != "cats" {
		t.Errorf("InitialQuery = %q, want %q", cfg.InitialQuery, "cats")
	}
	if cfg.Search.BaseURL != "http://localhost:9000" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.Search.BaseURL)
	}

	s := cfg.GetSearchConfig()
	if s.ResultCap != 30 {
		t.Errorf("ResultCap = %d, want 30", s.ResultCap)
	}
	if s.WindowSize != 6 {
		t.Errorf("WindowSize = %d, want 6", s.WindowSize)
	}
}

func TestLoadFrom_EnvOverridesAccessKey(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "c.toml", `access_key = "from-file"`)

	t.Setenv(AccessKeyEnv, "from-env")

	cfg, err := LoadFrom([]string{path})
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.AccessKey != "from-env" {
		t.Errorf("AccessKey = %q, want %q", cfg.AccessKey, "from-env")
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Setenv(AccessKeyEnv, "")

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"per_page too large", "[search]\nper_page = 100", "per_page"},
		{"negative cap", "[search]\nresult_cap = -1", "result_cap must not be negative"},
		{"negative window", "[search]\nwindow_size = -3", "window_size must not be negative"},
		{"negative debounce", "[search]\ndebounce_ms = -10", "debounce_ms must not be negative"},
		{"unknown protocol", "[display]\nimage_protocol = \"ascii\"", "ascii"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "bad.toml", tt.content)
			_, err := LoadFrom([]string{path})
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("LoadFrom() error = %v, want ErrInvalidConfig", err)
			}
			if err != nil && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("LoadFrom() error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadFrom_ZeroMeansDefault(t *testing.T) {
	t.Setenv(AccessKeyEnv, "")
	path := writeConfig(t, t.TempDir(), "zero.toml", "[search]\nresult_cap = 0\nwindow_size = 0")

	cfg, err := LoadFrom([]string{path})
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	s := cfg.GetSearchConfig()
	if s.ResultCap != 55 {
		t.Errorf("ResultCap = %d, want 55", s.ResultCap)
	}
	if s.WindowSize != 10 {
		t.Errorf("WindowSize = %d, want 10", s.WindowSize)
	}
}

func TestLoadFrom_MalformedTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "broken.toml", "access_key = ")
	if _, err := LoadFrom([]string{path}); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFrom_ProtocolNormalized(t *testing.T) {
	t.Setenv(AccessKeyEnv, "")
	path := writeConfig(t, t.TempDir(), "p.toml", "[display]\nimage_protocol = \" Kitty \"")

	cfg, err := LoadFrom([]string{path})
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Display.ImageProtocol != "kitty" {
		t.Errorf("ImageProtocol = %q, want %q", cfg.Display.ImageProtocol, "kitty")
	}
}

func TestHasAccessKey(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected bool
	}{
		{"set", Config{AccessKey: "abc"}, true},
		{"empty", Config{}, false},
		{"whitespace", Config{AccessKey: "   "}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.HasAccessKey(); got != tt.expected {
				t.Errorf("HasAccessKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}
