package service

import (
	"context"

	"github.com/wordduel/server/game/config"
	"github.com/wordduel/server/game/lobby"
)

// GameService defines all game-related operations.
type GameService interface {
	// Game commands, each one atomic step of the lobby state machine.
	JoinLobby(ctx context.Context, connID, lobbyID, name string) (*LobbySnapshot, error)
	StartGame(ctx context.Context, connID string) (string, error)
	SubmitWord(ctx context.Context, connID, word string) (*SubmitResult, error)
	RestartGame(ctx context.Context, connID string) (*RestartResult, error)
	Disconnect(ctx context.Context, connID string) (*DisconnectResult, error)

	// Read side, used by the HTTP API and the MCP tools.
	GetLobby(ctx context.Context, lobbyID string) (*LobbyInfo, error)
	ListLobbies(ctx context.Context) ([]*LobbyInfo, error)
	CheckWords(ctx context.Context, word1, word2 string) (*MatchReport, error)

	// ErrorMessage maps a command error to the configured client-facing
	// string.
	ErrorMessage(err error) string
}

// LobbyRegistry defines the lobby pool operations the coordinator needs.
type LobbyRegistry interface {
	Get(id string) (*lobby.Lobby, error)
	List() []*lobby.Lobby
	LobbyFor(connID string) (*lobby.Lobby, error)
	Bind(connID, lobbyID string) error
	Unbind(connID string)
}

// ConfigManager exposes the active server configuration.
type ConfigManager interface {
	Current() *config.Config
}
