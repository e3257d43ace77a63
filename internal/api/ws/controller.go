package ws

import (
	"chain-reaction/internal/game"
	"chain-reaction/internal/session"
)

// SessionController is the slice of the session manager the hub needs to
// service client-initiated actions.
type SessionController interface {
	Get(id string) (*session.Session, bool)
	ApplyMove(s *session.Session, player game.Color, mv game.Move) error
	BotMove(s *session.Session) (game.Move, error)
}
