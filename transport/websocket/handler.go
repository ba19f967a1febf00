package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/wordduel/server/game/lobby"
	"github.com/wordduel/server/game/service"
	"github.com/wordduel/server/game/session"
)

// Inbound event names.
const (
	EventJoinLobby   = "join-lobby"
	EventStartGame   = "start-game"
	EventSubmitWord  = "submit-word"
	EventRestartGame = "restart-game"
)

// Outbound event names.
const (
	EventLobbyState         = "lobby-state"
	EventGameStarted        = "game-started"
	EventWaitingForOpponent = "waiting-for-opponent"
	EventRoundUpdated       = "round-updated"
	EventGameEnded          = "game-ended"
	EventGameRestarted      = "game-restarted"
	EventErrorMessage       = "error-message"
)

type joinLobbyPayload struct {
	LobbyID string `json:"lobbyId"`
	Name    string `json:"name"`
}

type gameStartedPayload struct {
	LobbyID string `json:"lobbyId"`
}

type roundUpdatedPayload struct {
	LatestPair  lobby.Round   `json:"latestPair"`
	Rounds      []lobby.Round `json:"rounds"`
	RoundNumber int           `json:"roundNumber"`
}

type gameEndedPayload struct {
	Rounds      []lobby.Round `json:"rounds"`
	TotalRounds int           `json:"totalRounds"`
	FinalWord   string        `json:"finalWord"`
}

// Handler dispatches inbound WebSocket events to the game service and
// maps command results to outbound events.
type Handler struct {
	hub     *Hub
	service service.GameService
}

// NewHandler creates a WebSocket message handler.
func NewHandler(hub *Hub, gameService service.GameService) *Handler {
	return &Handler{
		hub:     hub,
		service: gameService,
	}
}

// HandleWebSocket upgrades an HTTP request to a game connection.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	h.hub.ServeWS(w, r, h)
}

// HandleMessage routes one inbound event to its command. Commands from
// connections with no resolvable lobby are dropped silently.
func (h *Handler) HandleMessage(connID string, env Envelope) {
	ctx := context.Background()

	switch env.Event {
	case EventJoinLobby:
		h.handleJoinLobby(ctx, connID, env.Data)

	case EventStartGame:
		h.handleStartGame(ctx, connID)

	case EventSubmitWord:
		h.handleSubmitWord(ctx, connID, env.Data)

	case EventRestartGame:
		h.handleRestartGame(ctx, connID)

	default:
		log.Printf("Client %s sent unknown event %q", connID, env.Event)
	}
}

// HandleDisconnect removes the connection's player and notifies the
// remaining lobby members.
func (h *Handler) HandleDisconnect(connID string) {
	result, err := h.service.Disconnect(context.Background(), connID)
	if err != nil {
		// Not in any lobby; nothing to announce.
		return
	}

	h.hub.BroadcastEvent(result.LobbyID, EventLobbyState, result.Snapshot)
}

func (h *Handler) handleJoinLobby(ctx context.Context, connID string, data json.RawMessage) {
	var payload joinLobbyPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Printf("Client %s sent malformed join-lobby payload: %v", connID, err)
		return
	}

	snapshot, err := h.service.JoinLobby(ctx, connID, payload.LobbyID, payload.Name)
	if err != nil {
		h.sendError(connID, err)
		return
	}

	h.hub.Subscribe(connID, snapshot.ID)
	h.hub.BroadcastEvent(snapshot.ID, EventLobbyState, snapshot)
}

func (h *Handler) handleStartGame(ctx context.Context, connID string) {
	lobbyID, err := h.service.StartGame(ctx, connID)
	if err != nil {
		if errors.Is(err, session.ErrNotInLobby) {
			return
		}
		h.sendError(connID, err)
		return
	}

	h.hub.BroadcastEvent(lobbyID, EventGameStarted, gameStartedPayload{LobbyID: lobbyID})
}

func (h *Handler) handleSubmitWord(ctx context.Context, connID string, data json.RawMessage) {
	var word string
	if err := json.Unmarshal(data, &word); err != nil {
		log.Printf("Client %s sent malformed submit-word payload: %v", connID, err)
		return
	}

	result, err := h.service.SubmitWord(ctx, connID, word)
	if err != nil {
		if errors.Is(err, session.ErrNotInLobby) || errors.Is(err, lobby.ErrNotInGame) {
			return
		}
		h.sendError(connID, err)
		return
	}

	switch result.Outcome {
	case service.OutcomeWaiting:
		h.hub.SendEvent(connID, EventWaitingForOpponent, nil)

	case service.OutcomeRound:
		h.hub.BroadcastEvent(result.LobbyID, EventRoundUpdated, roundUpdatedPayload{
			LatestPair:  *result.LatestPair,
			Rounds:      result.Rounds,
			RoundNumber: result.RoundNumber,
		})

	case service.OutcomeFinished:
		h.hub.BroadcastEvent(result.LobbyID, EventGameEnded, gameEndedPayload{
			Rounds:      result.Rounds,
			TotalRounds: result.TotalRounds,
			FinalWord:   result.FinalWord,
		})
	}
}

func (h *Handler) handleRestartGame(ctx context.Context, connID string) {
	result, err := h.service.RestartGame(ctx, connID)
	if err != nil {
		// Restart from outside a lobby is silently ignored.
		return
	}

	h.hub.BroadcastEvent(result.LobbyID, EventLobbyState, result.Snapshot)
	h.hub.BroadcastEvent(result.LobbyID, EventGameRestarted, nil)
}

func (h *Handler) sendError(connID string, err error) {
	h.hub.SendEvent(connID, EventErrorMessage, h.service.ErrorMessage(err))
}
