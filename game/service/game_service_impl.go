package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/wordduel/server/game/lobby"
	"github.com/wordduel/server/game/match"
	"github.com/wordduel/server/game/session"
)

// gameServiceImpl implements the GameService interface.
type gameServiceImpl struct {
	lobbies LobbyRegistry
	configs ConfigManager

	// mu serializes all game commands: every command is one atomic step
	// relative to every other command.
	mu sync.Mutex
}

// NewGameService creates a new game service instance.
func NewGameService(lobbies LobbyRegistry, configs ConfigManager) GameService {
	return &gameServiceImpl{
		lobbies: lobbies,
		configs: configs,
	}
}

// JoinLobby adds a connection to a lobby and returns the updated
// membership snapshot for broadcasting.
func (s *gameServiceImpl) JoinLobby(ctx context.Context, connID, lobbyID, name string) (*LobbySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.lobbies.Get(lobbyID)
	if err != nil {
		return nil, err
	}

	if err := s.lobbies.Bind(connID, lobbyID); err != nil {
		return nil, err
	}

	if err := l.AddPlayer(connID, name); err != nil {
		s.lobbies.Unbind(connID)
		return nil, err
	}

	return snapshotOf(l), nil
}

// StartGame begins a game in the connection's lobby and returns the
// lobby ID for the game-started broadcast.
func (s *gameServiceImpl) StartGame(ctx context.Context, connID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.lobbies.LobbyFor(connID)
	if err != nil {
		return "", err
	}

	if err := l.Start(); err != nil {
		return "", err
	}

	return l.ID, nil
}

// SubmitWord records a word for the current round and resolves the round
// when both submissions are in.
func (s *gameServiceImpl) SubmitWord(ctx context.Context, connID, word string) (*SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.lobbies.LobbyFor(connID)
	if err != nil {
		return nil, err
	}

	res, err := l.Submit(connID, word)
	if err != nil {
		return nil, err
	}

	result := &SubmitResult{LobbyID: l.ID}

	switch {
	case res.Waiting:
		result.Outcome = OutcomeWaiting

	case res.Finished:
		result.Outcome = OutcomeFinished
		result.Rounds = copyRounds(res.Rounds)
		result.TotalRounds = res.RoundNumber
		result.FinalWord = res.FinalWord

	default:
		result.Outcome = OutcomeRound
		pair := res.Pair
		result.LatestPair = &pair
		result.Rounds = copyRounds(res.Rounds)
		result.RoundNumber = res.RoundNumber
	}

	return result, nil
}

// RestartGame returns the connection's lobby to waiting, keeping its
// players, and returns the snapshot for broadcasting.
func (s *gameServiceImpl) RestartGame(ctx context.Context, connID string) (*RestartResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.lobbies.LobbyFor(connID)
	if err != nil {
		return nil, err
	}

	l.Restart()

	return &RestartResult{LobbyID: l.ID, Snapshot: snapshotOf(l)}, nil
}

// Disconnect removes the connection from its lobby. Any departure ends
// the current match and resets the lobby for whoever remains.
func (s *gameServiceImpl) Disconnect(ctx context.Context, connID string) (*DisconnectResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.lobbies.LobbyFor(connID)
	if err != nil {
		return nil, err
	}

	l.RemovePlayer(connID)
	s.lobbies.Unbind(connID)

	return &DisconnectResult{LobbyID: l.ID, Snapshot: snapshotOf(l)}, nil
}

// GetLobby returns the read-side view of one lobby.
func (s *gameServiceImpl) GetLobby(ctx context.Context, lobbyID string) (*LobbyInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.lobbies.Get(lobbyID)
	if err != nil {
		return nil, fmt.Errorf("lobby %q: %w", lobbyID, err)
	}

	return infoOf(l), nil
}

// ListLobbies returns the read-side view of the whole pool.
func (s *gameServiceImpl) ListLobbies(ctx context.Context) ([]*LobbyInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lobbies := s.lobbies.List()
	result := make([]*LobbyInfo, 0, len(lobbies))
	for _, l := range lobbies {
		result = append(result, infoOf(l))
	}
	return result, nil
}

// CheckWords runs the stateless comparator and reports the verdict.
func (s *gameServiceImpl) CheckWords(ctx context.Context, word1, word2 string) (*MatchReport, error) {
	n1 := match.Normalize(word1)
	n2 := match.Normalize(word2)

	return &MatchReport{
		Word1:       word1,
		Word2:       word2,
		Normalized1: n1,
		Normalized2: n2,
		Distance:    match.Distance(n1, n2),
		Match:       match.Match(word1, word2),
	}, nil
}

// ErrorMessage maps a command error to the configured human-readable
// string surfaced to the originating connection.
func (s *gameServiceImpl) ErrorMessage(err error) string {
	msgs := s.configs.Current().Messages

	switch {
	case errors.Is(err, session.ErrLobbyNotFound):
		return msgs.LobbyNotFound
	case errors.Is(err, session.ErrAlreadyInLobby):
		return msgs.AlreadyInLobby
	case errors.Is(err, lobby.ErrLobbyFull):
		return msgs.LobbyFull
	case errors.Is(err, lobby.ErrNotEnoughPlayers):
		return msgs.NeedTwoPlayers
	case errors.Is(err, lobby.ErrEmptyWord):
		return msgs.EmptyWord
	case errors.Is(err, lobby.ErrOpponentMissing):
		return msgs.OpponentLeft
	default:
		return "Something went wrong."
	}
}

// snapshotOf copies a lobby's membership and status for broadcasting.
func snapshotOf(l *lobby.Lobby) *LobbySnapshot {
	players := make([]lobby.Player, len(l.Players))
	copy(players, l.Players)

	return &LobbySnapshot{
		ID:      l.ID,
		Players: players,
		Status:  l.Status,
	}
}

// infoOf copies a lobby's full read-side view.
func infoOf(l *lobby.Lobby) *LobbyInfo {
	players := make([]lobby.Player, len(l.Players))
	copy(players, l.Players)

	return &LobbyInfo{
		ID:          l.ID,
		Players:     players,
		Status:      l.Status,
		Rounds:      copyRounds(l.Rounds),
		TotalRounds: len(l.Rounds),
	}
}

func copyRounds(rounds []lobby.Round) []lobby.Round {
	out := make([]lobby.Round, len(rounds))
	copy(out, rounds)
	return out
}
