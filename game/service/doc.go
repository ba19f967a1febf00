// Package service provides the session coordinator for the Word Duel server.
//
// The service package implements:
//   - The GameService interface consumed by every transport
//   - Command validation and dispatch against the lobby state machine
//   - The error taxonomy to client-message mapping
//
// Architecture:
//
// The service layer sits between the transports (WebSocket, HTTP, MCP)
// and the lobby state machine, resolving a connection's lobby through
// the registry, applying exactly one state transition per command, and
// returning result values the transport turns into outbound events.
//
// Atomicity:
//
// A single mutex serializes all game commands, so every command executes
// as one uninterruptible step relative to other commands. At the scale of
// a fixed handful of lobbies this is simpler than per-lobby locking and
// preserves the same contract. Broadcasting happens after the command
// returns, in the transport, so no I/O is performed under the lock.
//
// Silent Commands:
//
// Commands from a connection with no resolvable lobby return
// session.ErrNotInLobby, and submissions outside an active game return
// lobby.ErrNotInGame. Transports drop both silently; stray or late
// messages are tolerated rather than treated as protocol errors.
//
// Usage:
//
//	registry := session.NewManager(cfg.Lobbies)
//	svc := service.NewGameService(registry, configManager)
//
//	snapshot, err := svc.JoinLobby(ctx, connID, "lobby-1", "Alice")
package service
