package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wordduel/server/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Word Duel Game Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Word Duel - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Two players in a lobby submit one word per round. The game ends when
both words match (identical after normalization, or one typo apart).

AVAILABLE TOOLS:
- list_lobbies: List all lobbies with status and player counts
- get_lobby: Get one lobby's details including round history
- check_words: Compare two words with the game's fuzzy matcher
- game_instructions: Get the full game rules and event protocol

NOTE: Gameplay happens over the WebSocket transport at /ws. The MCP
tools give you a spectator view plus the word comparator.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_lobbies",
		Description: "List all lobbies with their status and player counts",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListLobbies)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_lobby",
		Description: "Get details of a specific lobby, including its round history",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"lobby_id": map[string]interface{}{
					"type":        "string",
					"description": "Lobby ID to retrieve (e.g. lobby-1)",
				},
			},
			Required: []string{"lobby_id"},
		},
	}, c.handleGetLobby)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "check_words",
		Description: "Compare two words with the game's matcher: normalization, edit distance, and whether they would end a game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"word1": map[string]interface{}{
					"type":        "string",
					"description": "First word",
				},
				"word2": map[string]interface{}{
					"type":        "string",
					"description": "Second word",
				},
			},
			Required: []string{"word1", "word2"},
		},
	}, c.handleCheckWords)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the game rules and the WebSocket event protocol",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleListLobbies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count   int                  `json:"count"`
		Lobbies []*service.LobbyInfo `json:"lobbies"`
	}

	err := c.apiCall("GET", "/api/lobbies", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Lobbies (%d):\n\n", response.Count)
	for _, info := range response.Lobbies {
		result += fmt.Sprintf("- %s [%s] %d/2 players\n", info.ID, info.Status, len(info.Players))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetLobby(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	lobbyID, _ := args["lobby_id"].(string)

	var info service.LobbyInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/lobbies/%s", lobbyID), nil, &info)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatLobbyInfo(&info)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleCheckWords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	word1, _ := args["word1"].(string)
	word2, _ := args["word2"].(string)

	body := map[string]string{
		"word1": word1,
		"word2": word2,
	}

	var report service.MatchReport
	err := c.apiCall("POST", "/api/words/check", body, &report)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatMatchReport(&report)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Word Duel - Complete Instructions

GAME OBJECTIVE:
Two players join the same lobby and try to converge on the same word.
Each round, both players submit one word without seeing the other's
submission. If the two words match, the game ends; otherwise the pair
is revealed and the next round begins.

MATCHING RULES:
- Words are normalized before comparison: trimmed and lowercased.
- Two words match when they are identical after normalization, or
  differ by a single typo (one insertion, deletion, or substitution).
- Examples: "color"/"colour" match, "Cat "/"cat" match, "cat"/"dog"
  do not.

LOBBY LIFECYCLE:
- A lobby holds at most 2 players and starts in "waiting" status.
- Any member can start the game once both seats are filled.
- When a player disconnects, the lobby resets to "waiting" and the
  round history is cleared.
- After a game ends, any member can restart the lobby for a rematch.

WEBSOCKET PROTOCOL (at /ws, JSON envelopes {"event": ..., "data": ...}):
Client to server:
- join-lobby {"lobbyId": "lobby-1", "name": "Alice"}
- start-game
- submit-word "color"
- restart-game
Server to client:
- lobby-state: lobby membership and status
- game-started: the game began
- waiting-for-opponent: your word was recorded, opponent pending
- round-updated: both words revealed, no match
- game-ended: match found, includes finalWord and totalRounds
- game-restarted: the lobby was reset for a rematch
- error-message: a command was rejected

MCP TOOLS:
Use list_lobbies and get_lobby to observe games, and check_words to
test whether two words would end a game.`

	return mcp.NewToolResultText(instructions), nil
}

// Formatters

func formatLobbyInfo(info *service.LobbyInfo) string {
	result := fmt.Sprintf("Lobby: %s\nStatus: %s\nPlayers: %d/2\n", info.ID, info.Status, len(info.Players))
	for _, p := range info.Players {
		result += fmt.Sprintf("- %s\n", p.Name)
	}

	if len(info.Rounds) > 0 {
		result += fmt.Sprintf("\nRounds (%d):\n", info.TotalRounds)
		for i, round := range info.Rounds {
			result += fmt.Sprintf("%d. %q vs %q\n", i+1, round.Word1, round.Word2)
		}
	}

	return result
}

func formatMatchReport(report *service.MatchReport) string {
	verdict := "NO MATCH"
	if report.Match {
		verdict = "MATCH"
	}

	return fmt.Sprintf("%s\n%q vs %q\nNormalized: %q vs %q\nEdit distance: %d\n",
		verdict, report.Word1, report.Word2,
		report.Normalized1, report.Normalized2, report.Distance)
}
