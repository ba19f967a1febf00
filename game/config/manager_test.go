package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Lobbies) != 2 {
		t.Errorf("Expected 2 default lobbies, got %d", len(cfg.Lobbies))
	}
	if cfg.Lobbies[0] != "lobby-1" || cfg.Lobbies[1] != "lobby-2" {
		t.Errorf("Unexpected default lobby ids: %v", cfg.Lobbies)
	}
	if cfg.Messages.LobbyFull != "Lobby full." {
		t.Errorf("Unexpected lobby-full message: %q", cfg.Messages.LobbyFull)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"nil config", nil, true},
		{"missing name", &Config{Lobbies: []string{"a"}}, true},
		{"no lobbies", &Config{Name: "x"}, true},
		{"blank lobby id", &Config{Name: "x", Lobbies: []string{"a", "  "}}, true},
		{"duplicate lobby id", &Config{Name: "x", Lobbies: []string{"a", "a"}}, true},
		{"valid", &Config{Name: "x", Lobbies: []string{"a", "b"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
			if tt.wantErr && err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewManagerWithoutConfigDir(t *testing.T) {
	m, err := NewManager("")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	cfg := m.Current()
	if cfg.Name != "default" {
		t.Errorf("Expected built-in default, got %q", cfg.Name)
	}
}

func TestNewManagerMissingServerConfig(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if m.Current().Name != "default" {
		t.Errorf("Expected fallback to default, got %q", m.Current().Name)
	}
}

func TestNewManagerLoadsServerConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "server.json", `{
		"name": "custom",
		"description": "three lobbies",
		"lobbies": ["red", "green", "blue"],
		"messages": {"lobby_full": "No room."}
	}`)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	cfg := m.Current()
	if cfg.Name != "custom" {
		t.Errorf("Expected custom config, got %q", cfg.Name)
	}
	if len(cfg.Lobbies) != 3 {
		t.Errorf("Expected 3 lobbies, got %d", len(cfg.Lobbies))
	}
	if cfg.Messages.LobbyFull != "No room." {
		t.Errorf("Override not applied: %q", cfg.Messages.LobbyFull)
	}
	// Blank messages are filled from the defaults.
	if cfg.Messages.EmptyWord != "Word cannot be empty." {
		t.Errorf("Default message not filled: %q", cfg.Messages.EmptyWord)
	}
}

func TestNewManagerInvalidServerConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "server.json", `{"name": "bad", "lobbies": []}`)

	if _, err := NewManager(dir); err == nil {
		t.Error("Expected error for invalid server config")
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	_, err = m.LoadConfig("missing")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}
}

func TestLoadConfigCaches(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "extra.json", `{"name": "extra", "lobbies": ["solo"]}`)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	first, err := m.LoadConfig("extra")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// Remove the file; the cached copy must still be served.
	os.Remove(filepath.Join(dir, "extra.json"))

	second, err := m.LoadConfig("extra")
	if err != nil {
		t.Fatalf("Cached LoadConfig failed: %v", err)
	}
	if first != second {
		t.Error("Expected cached config instance to be reused")
	}
}
