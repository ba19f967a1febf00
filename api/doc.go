// Package api provides the HTTP surface of the game server.
//
// The WebSocket endpoint at /ws carries the real-time game protocol;
// the REST endpoints under /api expose read-only views of the lobby
// pool plus a stateless word comparison, which also back the MCP
// tools. The root path answers with a plain "OK" for liveness probes.
//
// Endpoints:
//
//	GET  /                 - liveness probe
//	GET  /api/health       - health status
//	GET  /api/lobbies      - list all lobbies
//	GET  /api/lobbies/{id} - get one lobby with round history
//	GET  /api/config       - active server configuration
//	POST /api/words/check  - compare two words
//	GET  /ws               - WebSocket upgrade
package api
