package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/wordduel/server/game/lobby"
	"github.com/wordduel/server/game/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"id":     "lobby-1",
		"status": "waiting",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var result map[string]interface{}
	err := client.apiCall("GET", "/api/lobbies/lobby-1", nil, &result)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if result["id"] != "lobby-1" {
		t.Errorf("Expected lobby-1, got %v", result["id"])
	}
}

func TestClient_apiCallError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Lobby does not exist."})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/lobbies/lobby-404", nil, nil)
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}
	if err.Error() != "Lobby does not exist." {
		t.Errorf("Expected API error message, got %q", err.Error())
	}
}

func toolRequest(args map[string]interface{}) mcp.CallToolRequest {
	var request mcp.CallToolRequest
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("Tool result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestHandleListLobbies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/lobbies" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"count": 2,
			"lobbies": []*service.LobbyInfo{
				{ID: "lobby-1", Status: lobby.StatusInGame, Players: []lobby.Player{
					{Connection: "conn-1", Name: "Alice"},
					{Connection: "conn-2", Name: "Bob"},
				}},
				{ID: "lobby-2", Status: lobby.StatusWaiting},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	result, err := client.handleListLobbies(context.Background(), toolRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handleListLobbies failed: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "lobby-1 [in-game] 2/2 players") {
		t.Errorf("Missing lobby-1 line in:\n%s", text)
	}
	if !strings.Contains(text, "lobby-2 [waiting] 0/2 players") {
		t.Errorf("Missing lobby-2 line in:\n%s", text)
	}
}

func TestHandleGetLobby(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/lobbies/lobby-1" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(&service.LobbyInfo{
			ID:     "lobby-1",
			Status: lobby.StatusFinished,
			Players: []lobby.Player{
				{Connection: "conn-1", Name: "Alice"},
				{Connection: "conn-2", Name: "Bob"},
			},
			Rounds:      []lobby.Round{{Word1: "sun", Word2: "moon"}, {Word1: "sun", Word2: "sun"}},
			TotalRounds: 2,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	result, err := client.handleGetLobby(context.Background(), toolRequest(map[string]interface{}{
		"lobby_id": "lobby-1",
	}))
	if err != nil {
		t.Fatalf("handleGetLobby failed: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Lobby: lobby-1") {
		t.Errorf("Missing lobby header in:\n%s", text)
	}
	if !strings.Contains(text, "Rounds (2):") {
		t.Errorf("Missing round history in:\n%s", text)
	}
	if !strings.Contains(text, `"sun" vs "moon"`) {
		t.Errorf("Missing round line in:\n%s", text)
	}
}

func TestHandleCheckWords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/words/check" || r.Method != "POST" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}

		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["word1"] != "color" || req["word2"] != "colour" {
			t.Errorf("Unexpected body: %v", req)
		}

		json.NewEncoder(w).Encode(&service.MatchReport{
			Word1:       "color",
			Word2:       "colour",
			Normalized1: "color",
			Normalized2: "colour",
			Distance:    1,
			Match:       true,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	result, err := client.handleCheckWords(context.Background(), toolRequest(map[string]interface{}{
		"word1": "color",
		"word2": "colour",
	}))
	if err != nil {
		t.Fatalf("handleCheckWords failed: %v", err)
	}

	text := resultText(t, result)
	if !strings.HasPrefix(text, "MATCH") {
		t.Errorf("Expected MATCH verdict in:\n%s", text)
	}
	if !strings.Contains(text, "Edit distance: 1") {
		t.Errorf("Missing distance in:\n%s", text)
	}
}

func TestHandleGameInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")

	result, err := client.handleGameInstructions(context.Background(), toolRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handleGameInstructions failed: %v", err)
	}

	text := resultText(t, result)
	for _, fragment := range []string{"MATCHING RULES", "join-lobby", "game-ended"} {
		if !strings.Contains(text, fragment) {
			t.Errorf("Instructions missing %q", fragment)
		}
	}
}
