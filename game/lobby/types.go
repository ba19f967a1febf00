package lobby

// Status represents the lifecycle phase of a lobby.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusInGame   Status = "in-game"
	StatusFinished Status = "finished"
)

// Player is a lobby member. Connection is the opaque identity assigned to
// the member's socket, stable for the lifetime of that connection.
type Player struct {
	Connection string `json:"connection"`
	Name       string `json:"name"`
}

// Round records one completed pair of simultaneous submissions. Word1 and
// Word2 follow the lobby's player order, not submission order.
type Round struct {
	Word1 string `json:"word1"`
	Word2 string `json:"word2"`
}

// SubmitResult describes the outcome of a word submission that was
// accepted by the lobby.
type SubmitResult struct {
	// Waiting is true when the submission was recorded but the round is
	// not yet resolved (the opponent has not submitted).
	Waiting bool

	// Finished is true when the resolved round matched and the game ended.
	Finished bool

	// Pair is the resolved round, in player order. Zero when Waiting.
	Pair Round

	// Rounds is the full history including the resolved round.
	Rounds []Round

	// RoundNumber is the 1-based number of the resolved round.
	RoundNumber int

	// FinalWord is player 1's submission when the game finished.
	FinalWord string
}
