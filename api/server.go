package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/wordduel/server/game/service"
	"github.com/wordduel/server/transport/websocket"
)

// Server represents the HTTP API server
type Server struct {
	service   service.GameService
	configs   service.ConfigManager
	wsHandler *websocket.Handler
	router    *mux.Router
}

// NewServer creates a new API server
func NewServer(gameService service.GameService, configs service.ConfigManager, wsHandler *websocket.Handler) *Server {
	s := &Server{
		service:   gameService,
		configs:   configs,
		wsHandler: wsHandler,
		router:    mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// Read-only lobby views
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/lobbies", s.handleListLobbies).Methods("GET")
	api.HandleFunc("/lobbies/{id}", s.handleGetLobby).Methods("GET")

	// Configuration
	api.HandleFunc("/config", s.handleGetConfig).Methods("GET")

	// Word comparison
	api.HandleFunc("/words/check", s.handleCheckWords).Methods("POST")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)

	// Liveness probe
	s.router.HandleFunc("/", s.handleRoot).Methods("GET")
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	lobbies, err := s.service.ListLobbies(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"lobbies": len(lobbies),
	})
}

func (s *Server) handleListLobbies(w http.ResponseWriter, r *http.Request) {
	lobbies, err := s.service.ListLobbies(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(lobbies),
		"lobbies": lobbies,
	})
}

func (s *Server) handleGetLobby(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lobbyID := vars["id"]

	info, err := s.service.GetLobby(r.Context(), lobbyID)
	if err != nil {
		respondError(w, http.StatusNotFound, s.service.ErrorMessage(err))
		return
	}

	respondJSON(w, http.StatusOK, info)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.configs.Current())
}

func (s *Server) handleCheckWords(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Word1 string `json:"word1"`
		Word2 string `json:"word2"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	report, err := s.service.CheckWords(r.Context(), req.Word1, req.Word2)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.wsHandler == nil {
		respondError(w, http.StatusServiceUnavailable, "WebSocket transport not enabled")
		return
	}

	s.wsHandler.HandleWebSocket(w, r)
}
