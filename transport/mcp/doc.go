// Package mcp provides the Model Context Protocol interface of the
// game server.
//
// The MCP surface is a thin client that proxies every request to the
// REST API, so AI agents observe the same lobby state the HTTP and
// WebSocket clients see. Gameplay itself stays on the WebSocket
// transport; the MCP tools are read-only plus the stateless word
// comparison.
//
// MCP Tools:
//   - list_lobbies: List all lobbies with status and player counts
//   - get_lobby: Get one lobby with its round history
//   - check_words: Compare two words the way the game does
//   - game_instructions: Get the game rules and event protocol
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: Streamable HTTP endpoint mounted on the API server
package mcp
