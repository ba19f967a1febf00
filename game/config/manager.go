package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// serverConfigName is the file (without extension) holding the active
// server configuration inside the config directory.
const serverConfigName = "server"

// Messages holds the human-readable strings surfaced to clients via
// error-message events.
type Messages struct {
	LobbyNotFound  string `json:"lobby_not_found"`
	LobbyFull      string `json:"lobby_full"`
	NeedTwoPlayers string `json:"need_two_players"`
	EmptyWord      string `json:"empty_word"`
	OpponentLeft   string `json:"opponent_left"`
	AlreadyInLobby string `json:"already_in_lobby"`
}

// Config defines a server configuration: the lobby pool provisioned at
// startup and the client-facing message strings.
type Config struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Lobbies     []string `json:"lobbies"`
	Messages    Messages `json:"messages"`
}

// Default returns the built-in configuration: two lobbies with the stock
// message wording.
func Default() *Config {
	return &Config{
		Name:        "default",
		Description: "Two pre-provisioned lobbies",
		Lobbies:     []string{"lobby-1", "lobby-2"},
		Messages: Messages{
			LobbyNotFound:  "Lobby does not exist.",
			LobbyFull:      "Lobby full.",
			NeedTwoPlayers: "Need two players to start.",
			EmptyWord:      "Word cannot be empty.",
			OpponentLeft:   "Opponent left the game.",
			AlreadyInLobby: "Already in a lobby.",
		},
	}
}

// Validate checks a configuration for structural problems: a missing
// name, an empty lobby pool, or blank/duplicate lobby identifiers.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if cfg.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if len(cfg.Lobbies) == 0 {
		return fmt.Errorf("%w: at least one lobby is required", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(cfg.Lobbies))
	for i, id := range cfg.Lobbies {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: lobby %d has a blank identifier", ErrInvalidConfig, i+1)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate lobby identifier %q", ErrInvalidConfig, id)
		}
		seen[id] = true
	}

	return nil
}

// Manager handles server configuration loading and caching.
type Manager struct {
	configDir string
	current   *Config
	configs   map[string]*Config
	mu        sync.RWMutex
}

// NewManager creates a configuration manager rooted at configDir. When
// the directory or the server config file is absent the built-in default
// is used, so a fresh checkout runs without any configuration on disk.
func NewManager(configDir string) (*Manager, error) {
	m := &Manager{
		configDir: configDir,
		configs:   make(map[string]*Config),
	}

	if configDir == "" {
		m.current = Default()
		return m, nil
	}

	cfg, err := m.LoadConfig(serverConfigName)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			m.current = Default()
			return m, nil
		}
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}

	m.current = cfg
	return m, nil
}

// Current returns the active server configuration.
func (m *Manager) Current() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// GetDefault returns the built-in default configuration.
func (m *Manager) GetDefault() *Config {
	return Default()
}

// LoadConfig loads a configuration by name from the config directory.
func (m *Manager) LoadConfig(name string) (*Config, error) {
	m.mu.RLock()
	if cfg, exists := m.configs[name]; exists {
		m.mu.RUnlock()
		return cfg, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring the write lock.
	if cfg, exists := m.configs[name]; exists {
		return cfg, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	data, err := os.ReadFile(filepath.Join(m.configDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	fillDefaultMessages(&cfg)

	m.configs[name] = &cfg
	return &cfg, nil
}

// fillDefaultMessages replaces blank message strings with the stock
// wording so loaded configs only need to override what they change.
func fillDefaultMessages(cfg *Config) {
	def := Default().Messages

	if cfg.Messages.LobbyNotFound == "" {
		cfg.Messages.LobbyNotFound = def.LobbyNotFound
	}
	if cfg.Messages.LobbyFull == "" {
		cfg.Messages.LobbyFull = def.LobbyFull
	}
	if cfg.Messages.NeedTwoPlayers == "" {
		cfg.Messages.NeedTwoPlayers = def.NeedTwoPlayers
	}
	if cfg.Messages.EmptyWord == "" {
		cfg.Messages.EmptyWord = def.EmptyWord
	}
	if cfg.Messages.OpponentLeft == "" {
		cfg.Messages.OpponentLeft = def.OpponentLeft
	}
	if cfg.Messages.AlreadyInLobby == "" {
		cfg.Messages.AlreadyInLobby = def.AlreadyInLobby
	}
}
