// Package websocket provides the WebSocket transport for the Word Duel server.
//
// The package uses a hub-and-spoke model: a central Hub tracks every
// connected client and the per-lobby broadcast groups, while each
// connection runs dedicated read and write goroutines.
//
// Message Protocol:
//
// Messages are JSON envelopes in both directions:
//
//	{"event": "join-lobby", "data": {"lobbyId": "lobby-1", "name": "Alice"}}
//	{"event": "submit-word", "data": "color"}
//
// Inbound events are join-lobby, start-game, submit-word, and
// restart-game; closing the connection is the disconnect command.
// Outbound events are lobby-state, game-started, waiting-for-opponent,
// round-updated, game-ended, game-restarted, and error-message.
// Acknowledgements and errors go to the originating connection only;
// everything else is broadcast to the connection's lobby group.
//
// Connection Identity:
//
// Each connection is assigned an opaque identifier at upgrade time,
// stable for the connection's lifetime. It keys player membership and
// pending submissions throughout the game packages.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	handler := websocket.NewHandler(hub, gameService)
//	http.HandleFunc("/ws", handler.HandleWebSocket)
//
// Connection Lifecycle:
//
//  1. Client connects; a connection identity is assigned
//  2. Connection registered with the hub
//  3. join-lobby subscribes the connection to a lobby's broadcast group
//  4. Game commands are dispatched to the coordinator; results are
//     emitted as outbound events
//  5. Disconnection removes the player and notifies whoever remains
package websocket
