// Package session provides the lobby registry for the Word Duel server.
//
// The session package implements:
//   - A fixed pool of lobbies provisioned once at startup
//   - Lookup of a connection's current lobby via a reverse index
//   - Enforcement of the one-lobby-per-connection invariant
//
// Lobby Pool:
//
// Lobbies are created from the configured identifier list when the
// registry is constructed and live for the process lifetime; there is no
// creation or deletion at runtime. The registry is an explicitly owned
// object passed to the coordinator, not a package-level singleton.
//
// Reverse Index:
//
// The registry maintains a connection-identity to lobby-id index updated
// alongside player-list mutations, so resolving "which lobby is this
// connection in" is a map lookup rather than a scan, and a connection
// bound to one lobby cannot join a second.
//
// Concurrency:
//
// Registry methods are safe for concurrent use. Lobby state itself is
// not locked here; the service layer serializes all game commands.
package session
