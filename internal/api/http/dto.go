package http

// CreateSessionRequest starts a new game.
type CreateSessionRequest struct {
	Color      string `json:"color"`      // "red" or "blue"; default red
	Difficulty string `json:"difficulty"` // easy/medium/hard/expert; unknown -> easy
	Level      int    `json:"level"`      // catalog ID; default 1
}

// MoveRequest is one human placement.
type MoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
