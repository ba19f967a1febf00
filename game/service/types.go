package service

import "github.com/wordduel/server/game/lobby"

// LobbySnapshot is the lobby-state payload broadcast to a lobby's
// members: membership and status, without round history.
type LobbySnapshot struct {
	ID      string         `json:"id"`
	Players []lobby.Player `json:"players"`
	Status  lobby.Status   `json:"status"`
}

// LobbyInfo is the richer read-side view served over HTTP and MCP,
// including the accumulated round history.
type LobbyInfo struct {
	ID          string         `json:"id"`
	Players     []lobby.Player `json:"players"`
	Status      lobby.Status   `json:"status"`
	Rounds      []lobby.Round  `json:"rounds"`
	TotalRounds int            `json:"total_rounds"`
}

// SubmitOutcome distinguishes the three results of a word submission.
type SubmitOutcome string

const (
	// OutcomeWaiting: the submission was recorded, the opponent has not
	// submitted yet. Acknowledged privately to the submitter.
	OutcomeWaiting SubmitOutcome = "waiting"

	// OutcomeRound: the round resolved without a match; the game
	// continues.
	OutcomeRound SubmitOutcome = "round"

	// OutcomeFinished: the round resolved with a match; the game ended.
	OutcomeFinished SubmitOutcome = "finished"
)

// SubmitResult contains the result of a submit-word command.
type SubmitResult struct {
	LobbyID     string        `json:"lobby_id"`
	Outcome     SubmitOutcome `json:"outcome"`
	LatestPair  *lobby.Round  `json:"latest_pair,omitempty"`
	Rounds      []lobby.Round `json:"rounds,omitempty"`
	RoundNumber int           `json:"round_number,omitempty"`
	TotalRounds int           `json:"total_rounds,omitempty"`
	FinalWord   string        `json:"final_word,omitempty"`
}

// RestartResult contains the result of a restart-game command.
type RestartResult struct {
	LobbyID  string         `json:"lobby_id"`
	Snapshot *LobbySnapshot `json:"snapshot"`
}

// DisconnectResult contains the lobby state left behind by a departure.
type DisconnectResult struct {
	LobbyID  string         `json:"lobby_id"`
	Snapshot *LobbySnapshot `json:"snapshot"`
}

// MatchReport is the stateless comparator output served by the word
// check endpoint and MCP tool.
type MatchReport struct {
	Word1       string `json:"word1"`
	Word2       string `json:"word2"`
	Normalized1 string `json:"normalized1"`
	Normalized2 string `json:"normalized2"`
	Distance    int    `json:"distance"`
	Match       bool   `json:"match"`
}
