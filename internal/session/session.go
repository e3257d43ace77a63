package session

import (
	"time"

	"chain-reaction/internal/game"
)

// Session is one human-vs-bot game across the level catalog. It owns the
// live board and the undo history; all access is strictly sequential per
// session (human move, settle, win check, switch turn, bot move, ...).
type Session struct {
	ID           string          `json:"id"`
	Level        int             `json:"level"`
	Board        game.Board      `json:"board"`
	Current      game.Color      `json:"currentPlayer"`
	Human        game.Color      `json:"humanPlayer"`
	Computer     game.Color      `json:"computerPlayer"`
	Difficulty   game.Difficulty `json:"-"`
	LevelOver    bool            `json:"levelOver"`
	GameOver     bool            `json:"gameOver"`
	LevelWinners []game.Color    `json:"levelWinners"`
	Winner       string          `json:"winner,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`

	history *game.History
}

// DifficultyName is what the JSON surface exposes for Difficulty.
func (s *Session) DifficultyName() string {
	return s.Difficulty.String()
}

// CanUndo reports whether the session has a snapshot to roll back to.
func (s *Session) CanUndo() bool {
	return s.history != nil && s.history.CanUndo()
}

// HistoryLen reports how many snapshots the session currently holds.
func (s *Session) HistoryLen() int {
	if s.history == nil {
		return 0
	}
	return s.history.Len()
}

// SwitchTurn hands the move to the other player.
func (s *Session) SwitchTurn() {
	s.Current = s.Current.Opponent()
}

// Store persists whole sessions by ID. Implementations guard their own
// state; the manager never assumes more than get/save/remove semantics.
type Store interface {
	GetSession(id string) (*Session, bool)
	SaveSession(s *Session)
	DeleteSession(id string)
}

// Broadcaster pushes session events to any listening clients. The ws hub
// implements it; the manager stays ignorant of the transport.
type Broadcaster interface {
	Broadcast(sessionID string, event string, data interface{})
}

// NopBroadcaster satisfies Broadcaster for drivers with no live listeners,
// such as the terminal client.
type NopBroadcaster struct{}

func (NopBroadcaster) Broadcast(string, string, interface{}) {}
