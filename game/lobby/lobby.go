package lobby

import (
	"errors"
	"strings"

	"github.com/wordduel/server/game/match"
)

var (
	ErrLobbyFull        = errors.New("lobby is full")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrEmptyWord        = errors.New("word is empty")
	ErrOpponentMissing  = errors.New("opponent missing")
	ErrNotInGame        = errors.New("lobby is not in game")
)

const (
	// MaxPlayers is the fixed lobby capacity.
	MaxPlayers = 2

	// DefaultPlayerName replaces a blank display name on join.
	DefaultPlayerName = "Player"
)

// Lobby is a named two-player game session container. Methods are not
// synchronized; the caller serializes access.
type Lobby struct {
	ID      string   `json:"id"`
	Players []Player `json:"players"`
	Status  Status   `json:"status"`
	Rounds  []Round  `json:"rounds"`

	// pending maps connection identity to the word submitted in the
	// current, not-yet-resolved round.
	pending map[string]string
}

// New creates an empty waiting lobby with the given identifier.
func New(id string) *Lobby {
	return &Lobby{
		ID:      id,
		Players: []Player{},
		Status:  StatusWaiting,
		Rounds:  []Round{},
		pending: make(map[string]string),
	}
}

// AddPlayer appends a player to the lobby. The name is trimmed and
// defaulted when blank. Insertion order determines player 1 and player 2
// for the lifetime of the lobby membership.
func (l *Lobby) AddPlayer(connID, name string) error {
	if len(l.Players) >= MaxPlayers {
		return ErrLobbyFull
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultPlayerName
	}

	l.Players = append(l.Players, Player{Connection: connID, Name: name})
	return nil
}

// HasPlayer reports whether the connection is a member of this lobby.
func (l *Lobby) HasPlayer(connID string) bool {
	for _, p := range l.Players {
		if p.Connection == connID {
			return true
		}
	}
	return false
}

// RemovePlayer removes the connection's player entry and collapses the
// lobby back to waiting: any departure ends the current match for the
// remaining player. Returns true when an entry was removed.
func (l *Lobby) RemovePlayer(connID string) bool {
	removed := false
	players := l.Players[:0]
	for _, p := range l.Players {
		if p.Connection == connID {
			removed = true
			continue
		}
		players = append(players, p)
	}
	l.Players = players

	l.reset()
	return removed
}

// Start begins a new game. It requires a full lobby and clears any
// leftover history from a previous game.
func (l *Lobby) Start() error {
	if len(l.Players) < MaxPlayers {
		return ErrNotEnoughPlayers
	}

	l.Status = StatusInGame
	l.Rounds = []Round{}
	l.pending = make(map[string]string)
	return nil
}

// Submit records a word for the current round and resolves the round once
// both submissions are present. The resolved pair is read in player
// order, not submission order. On ErrOpponentMissing the pending state is
// left unresolved.
func (l *Lobby) Submit(connID, word string) (*SubmitResult, error) {
	if l.Status != StatusInGame {
		return nil, ErrNotInGame
	}

	clean := strings.TrimSpace(word)
	if clean == "" {
		return nil, ErrEmptyWord
	}

	l.pending[connID] = clean

	if len(l.pending) < MaxPlayers {
		return &SubmitResult{Waiting: true}, nil
	}

	if len(l.Players) < MaxPlayers {
		return nil, ErrOpponentMissing
	}

	w1, ok1 := l.pending[l.Players[0].Connection]
	w2, ok2 := l.pending[l.Players[1].Connection]
	if !ok1 || !ok2 {
		return nil, ErrOpponentMissing
	}

	pair := Round{Word1: w1, Word2: w2}
	l.Rounds = append(l.Rounds, pair)
	l.pending = make(map[string]string)

	result := &SubmitResult{
		Pair:        pair,
		Rounds:      l.Rounds,
		RoundNumber: len(l.Rounds),
	}

	if match.Match(w1, w2) {
		l.Status = StatusFinished
		result.Finished = true
		result.FinalWord = w1
	}

	return result, nil
}

// Restart returns the lobby to waiting with cleared history, keeping the
// current players. It does not require a full lobby.
func (l *Lobby) Restart() {
	l.reset()
}

// PendingCount returns the number of unresolved submissions in the
// current round.
func (l *Lobby) PendingCount() int {
	return len(l.pending)
}

// reset clears game progress and returns the lobby to waiting.
func (l *Lobby) reset() {
	l.Status = StatusWaiting
	l.Rounds = []Round{}
	l.pending = make(map[string]string)
}
