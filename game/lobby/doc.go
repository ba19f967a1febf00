// Package lobby implements the per-lobby game state machine for Word Duel.
//
// The lobby package holds the core game rules:
//   - Lobby membership (up to two players, insertion order preserved)
//   - Game status transitions (waiting -> in-game -> finished)
//   - Per-round word submission and resolution
//   - Round history accumulation across a single game
//
// Core Types:
//
// Lobby is a named container for one match. Player identifies a member by
// its opaque connection identity and display name. Round records one
// completed pair of simultaneous submissions.
//
// State Machine:
//
// A lobby starts waiting. Start moves it in-game when two players are
// present. Each resolved round either finishes the game (words match) or
// loops back in-game with the round appended. Restart and any player
// departure return the lobby to waiting with history cleared; finished is
// always recoverable, there is no terminal state.
//
// Concurrency:
//
// Lobby methods are not synchronized. Callers must serialize access; the
// service layer runs every command as one atomic step under a single lock.
package lobby
