package lobby

import (
	"errors"
	"testing"
)

func newFullLobby(t *testing.T) *Lobby {
	t.Helper()

	l := New("lobby-1")
	if err := l.AddPlayer("conn-1", "Alice"); err != nil {
		t.Fatalf("AddPlayer(conn-1) failed: %v", err)
	}
	if err := l.AddPlayer("conn-2", "Bob"); err != nil {
		t.Fatalf("AddPlayer(conn-2) failed: %v", err)
	}
	return l
}

func TestNew(t *testing.T) {
	l := New("lobby-1")

	if l.ID != "lobby-1" {
		t.Errorf("Expected id lobby-1, got %s", l.ID)
	}
	if l.Status != StatusWaiting {
		t.Errorf("Expected status waiting, got %s", l.Status)
	}
	if len(l.Players) != 0 {
		t.Errorf("Expected no players, got %d", len(l.Players))
	}
	if len(l.Rounds) != 0 {
		t.Errorf("Expected no rounds, got %d", len(l.Rounds))
	}
}

func TestAddPlayer(t *testing.T) {
	l := New("lobby-1")

	if err := l.AddPlayer("conn-1", " Alice "); err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}
	if l.Players[0].Name != "Alice" {
		t.Errorf("Expected trimmed name Alice, got %q", l.Players[0].Name)
	}

	if err := l.AddPlayer("conn-2", "   "); err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}
	if l.Players[1].Name != DefaultPlayerName {
		t.Errorf("Expected default name %q, got %q", DefaultPlayerName, l.Players[1].Name)
	}
}

func TestAddPlayerFull(t *testing.T) {
	l := newFullLobby(t)

	err := l.AddPlayer("conn-3", "Carol")
	if !errors.Is(err, ErrLobbyFull) {
		t.Errorf("Expected ErrLobbyFull, got %v", err)
	}
	if len(l.Players) != 2 {
		t.Errorf("Player list mutated on failed join: %d players", len(l.Players))
	}
}

func TestStartNotEnoughPlayers(t *testing.T) {
	l := New("lobby-1")
	l.AddPlayer("conn-1", "Alice")

	err := l.Start()
	if !errors.Is(err, ErrNotEnoughPlayers) {
		t.Errorf("Expected ErrNotEnoughPlayers, got %v", err)
	}
	if l.Status != StatusWaiting {
		t.Errorf("Status changed on failed start: %s", l.Status)
	}
}

func TestStartClearsHistory(t *testing.T) {
	l := newFullLobby(t)
	l.Rounds = []Round{{Word1: "old", Word2: "stale"}}
	l.pending["conn-1"] = "leftover"

	if err := l.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if l.Status != StatusInGame {
		t.Errorf("Expected status in-game, got %s", l.Status)
	}
	if len(l.Rounds) != 0 {
		t.Errorf("Expected rounds cleared, got %d", len(l.Rounds))
	}
	if l.PendingCount() != 0 {
		t.Errorf("Expected pending cleared, got %d", l.PendingCount())
	}
}

func TestSubmitNotInGame(t *testing.T) {
	l := newFullLobby(t)

	_, err := l.Submit("conn-1", "word")
	if !errors.Is(err, ErrNotInGame) {
		t.Errorf("Expected ErrNotInGame, got %v", err)
	}
}

func TestSubmitEmptyWord(t *testing.T) {
	l := newFullLobby(t)
	l.Start()

	_, err := l.Submit("conn-1", "   ")
	if !errors.Is(err, ErrEmptyWord) {
		t.Errorf("Expected ErrEmptyWord, got %v", err)
	}
	if l.PendingCount() != 0 {
		t.Errorf("Empty submission recorded: pending=%d", l.PendingCount())
	}
}

func TestSubmitWaitingForOpponent(t *testing.T) {
	l := newFullLobby(t)
	l.Start()

	result, err := l.Submit("conn-1", "sun")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !result.Waiting {
		t.Error("Expected waiting outcome for first submission")
	}
	if l.PendingCount() != 1 {
		t.Errorf("Expected 1 pending word, got %d", l.PendingCount())
	}
}

func TestSubmitRoundNoMatch(t *testing.T) {
	l := newFullLobby(t)
	l.Start()

	l.Submit("conn-1", "sun")
	result, err := l.Submit("conn-2", "moon")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if result.Waiting || result.Finished {
		t.Errorf("Expected unresolved-game round outcome, got %+v", result)
	}
	if result.RoundNumber != 1 {
		t.Errorf("Expected round number 1, got %d", result.RoundNumber)
	}
	if result.Pair.Word1 != "sun" || result.Pair.Word2 != "moon" {
		t.Errorf("Unexpected pair %+v", result.Pair)
	}
	if l.Status != StatusInGame {
		t.Errorf("Expected status in-game after miss, got %s", l.Status)
	}
	if l.PendingCount() != 0 {
		t.Errorf("Expected pending cleared after resolution, got %d", l.PendingCount())
	}
}

func TestSubmitPairFollowsPlayerOrder(t *testing.T) {
	l := newFullLobby(t)
	l.Start()

	// Player 2 submits first; the pair must still read player 1 first.
	l.Submit("conn-2", "moon")
	result, err := l.Submit("conn-1", "sun")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if result.Pair.Word1 != "sun" {
		t.Errorf("Expected word1 from player 1, got %q", result.Pair.Word1)
	}
	if result.Pair.Word2 != "moon" {
		t.Errorf("Expected word2 from player 2, got %q", result.Pair.Word2)
	}
}

func TestSubmitMatchFinishesGame(t *testing.T) {
	l := newFullLobby(t)
	l.Start()

	l.Submit("conn-1", "color")
	result, err := l.Submit("conn-2", "colour")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if !result.Finished {
		t.Fatal("Expected finished outcome for single-typo match")
	}
	if result.FinalWord != "color" {
		t.Errorf("Expected final word from player 1, got %q", result.FinalWord)
	}
	if result.RoundNumber != 1 {
		t.Errorf("Expected 1 total round, got %d", result.RoundNumber)
	}
	if l.Status != StatusFinished {
		t.Errorf("Expected status finished, got %s", l.Status)
	}
}

func TestSubmitSecondRoundFinishes(t *testing.T) {
	l := newFullLobby(t)
	l.Start()

	l.Submit("conn-1", "sun")
	l.Submit("conn-2", "moon")
	l.Submit("conn-1", "sun")
	result, err := l.Submit("conn-2", "sun")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if !result.Finished {
		t.Fatal("Expected finished outcome")
	}
	if result.RoundNumber != 2 {
		t.Errorf("Expected 2 total rounds, got %d", result.RoundNumber)
	}
	if len(result.Rounds) != 2 {
		t.Errorf("Expected full history of 2 rounds, got %d", len(result.Rounds))
	}
}

func TestSubmitOpponentMissing(t *testing.T) {
	l := newFullLobby(t)
	l.Start()

	// Manufacture two pendings with only one registered player.
	l.pending["conn-2"] = "ghost"
	l.Players = l.Players[:1]

	_, err := l.Submit("conn-1", "word")
	if !errors.Is(err, ErrOpponentMissing) {
		t.Errorf("Expected ErrOpponentMissing, got %v", err)
	}
	if len(l.Rounds) != 0 {
		t.Errorf("Round appended despite missing opponent: %d", len(l.Rounds))
	}
}

func TestRemovePlayerResetsLobby(t *testing.T) {
	l := newFullLobby(t)
	l.Start()
	l.Submit("conn-1", "sun")

	removed := l.RemovePlayer("conn-2")
	if !removed {
		t.Fatal("Expected player to be removed")
	}
	if len(l.Players) != 1 {
		t.Errorf("Expected 1 remaining player, got %d", len(l.Players))
	}
	if l.Players[0].Connection != "conn-1" {
		t.Errorf("Wrong player removed: remaining %s", l.Players[0].Connection)
	}
	if l.Status != StatusWaiting {
		t.Errorf("Expected status waiting after departure, got %s", l.Status)
	}
	if len(l.Rounds) != 0 || l.PendingCount() != 0 {
		t.Error("Expected rounds and pending cleared after departure")
	}
}

func TestRemovePlayerUnknownConnection(t *testing.T) {
	l := newFullLobby(t)

	if l.RemovePlayer("conn-404") {
		t.Error("Expected no removal for unknown connection")
	}
	if len(l.Players) != 2 {
		t.Errorf("Expected players untouched, got %d", len(l.Players))
	}
}

func TestRestartKeepsPlayers(t *testing.T) {
	l := newFullLobby(t)
	l.Start()
	l.Submit("conn-1", "color")
	l.Submit("conn-2", "colour")

	if l.Status != StatusFinished {
		t.Fatalf("Setup failed: status %s", l.Status)
	}

	l.Restart()

	if l.Status != StatusWaiting {
		t.Errorf("Expected status waiting after restart, got %s", l.Status)
	}
	if len(l.Players) != 2 {
		t.Errorf("Restart removed players: %d remain", len(l.Players))
	}
	if len(l.Rounds) != 0 || l.PendingCount() != 0 {
		t.Error("Expected rounds and pending cleared after restart")
	}
}

func TestHasPlayer(t *testing.T) {
	l := newFullLobby(t)

	if !l.HasPlayer("conn-1") || !l.HasPlayer("conn-2") {
		t.Error("Expected both members to be reported")
	}
	if l.HasPlayer("conn-3") {
		t.Error("Expected non-member to be rejected")
	}
}
