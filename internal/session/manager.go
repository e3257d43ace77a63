package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"chain-reaction/internal/config"
	"chain-reaction/internal/game"
	"chain-reaction/internal/levels"
)

var (
	ErrUnknownLevel = errors.New("unknown level")
	ErrNotYourTurn  = errors.New("not this player's turn")
	ErrInvalidMove  = errors.New("illegal move")
	ErrLevelOver    = errors.New("level is already decided")
	ErrLevelRunning = errors.New("level still in progress")
	ErrGameOver     = errors.New("game is over")
)

// Manager drives session state through its legal transitions: place, settle,
// win check, turn switch, undo, level advance. It persists through Store and
// reports through Broadcaster, never touching ambient globals.
type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(store Store, cfg config.Config, hub Broadcaster) *Manager {
	if hub == nil {
		hub = NopBroadcaster{}
	}
	return &Manager{store: store, cfg: cfg, hub: hub}
}

// NewSession starts a fresh game at the given level. The human picks a
// color; the bot takes the other. Red always moves first.
func (m *Manager) NewSession(human game.Color, difficulty game.Difficulty, levelID int) (*Session, error) {
	lvl, ok := levels.Get(levelID)
	if !ok {
		return nil, ErrUnknownLevel
	}
	if human != game.Blue {
		human = game.Red
	}
	s := &Session{
		ID:         uuid.NewString(),
		Level:      lvl.ID,
		Board:      lvl.NewBoard(),
		Current:    game.Red,
		Human:      human,
		Computer:   human.Opponent(),
		Difficulty: difficulty,
		CreatedAt:  time.Now(),
		history:    game.NewHistory(m.cfg.HistoryLimit),
	}
	m.store.SaveSession(s)
	log.Info().Str("session", s.ID).Int("level", s.Level).
		Str("human", s.Human.String()).Str("difficulty", difficulty.String()).
		Msg("session created")
	return s, nil
}

func (m *Manager) Get(id string) (*Session, bool) {
	return m.store.GetSession(id)
}

// Delete discards a session entirely; abandoning a game is just this.
func (m *Manager) Delete(id string) {
	m.store.DeleteSession(id)
}

// ApplyMove commits one placement for player: turn check, legality check,
// history snapshot, place, settle, outcome bookkeeping, turn switch. A
// rejected move leaves no trace on the session.
func (m *Manager) ApplyMove(s *Session, player game.Color, mv game.Move) error {
	if s.GameOver {
		return ErrGameOver
	}
	if s.LevelOver {
		return ErrLevelOver
	}
	if player != s.Current {
		return ErrNotYourTurn
	}
	if !game.IsValidMove(&s.Board, mv.Row, mv.Col, player) {
		return ErrInvalidMove
	}

	s.history.Save(s.Board, s.Current)
	s.Board.PlaceDot(mv.Row, mv.Col, player)
	winner, waves := game.Settle(&s.Board)

	log.Debug().Str("session", s.ID).Str("player", player.String()).
		Int("row", mv.Row).Int("col", mv.Col).Int("waves", waves).
		Msg("move applied")

	if winner != game.None {
		m.finishLevel(s, winner)
	} else {
		s.SwitchTurn()
	}

	m.store.SaveSession(s)
	m.hub.Broadcast(s.ID, "move", map[string]interface{}{
		"player":  player.String(),
		"row":     mv.Row,
		"col":     mv.Col,
		"waves":   waves,
		"session": s,
	})
	return nil
}

// BotMove picks and commits the computer's move at the session difficulty.
// game.ErrNoValidMoves propagates when the bot is locked out entirely; the
// caller decides whether that ends the game.
func (m *Manager) BotMove(s *Session) (game.Move, error) {
	if s.GameOver {
		return game.Move{}, ErrGameOver
	}
	if s.LevelOver {
		return game.Move{}, ErrLevelOver
	}
	if s.Current != s.Computer {
		return game.Move{}, ErrNotYourTurn
	}
	mv, err := game.FindMove(&s.Board, s.Computer, s.Difficulty)
	if err != nil {
		return game.Move{}, err
	}
	if err := m.ApplyMove(s, s.Computer, mv); err != nil {
		return game.Move{}, err
	}
	return mv, nil
}

// Undo rolls the session back to the most recent snapshot. Returns false
// when there is no history, which is a normal "nothing to do" outcome.
func (m *Manager) Undo(s *Session) bool {
	entry, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.Board = entry.Board
	s.Current = entry.Player
	// Snapshots never cross a level boundary (history clears on level
	// start), so undoing a decided level retracts its verdict.
	if s.LevelOver {
		s.LevelWinners = s.LevelWinners[:len(s.LevelWinners)-1]
	}
	s.LevelOver = false
	s.GameOver = false
	s.Winner = ""
	m.store.SaveSession(s)
	m.hub.Broadcast(s.ID, "undo", map[string]interface{}{"session": s})
	return true
}

// NextLevel moves a finished level to the next one in the catalog, with a
// fresh board and cleared history. On the last level it closes the game
// instead.
func (m *Manager) NextLevel(s *Session) error {
	if !s.LevelOver {
		return ErrLevelRunning
	}
	if s.GameOver {
		return ErrGameOver
	}
	lvl, ok := levels.Get(s.Level + 1)
	if !ok {
		m.finishGame(s)
		m.store.SaveSession(s)
		return nil
	}
	s.Level = lvl.ID
	s.Board = lvl.NewBoard()
	s.Current = game.Red
	s.LevelOver = false
	s.history.Clear()
	m.store.SaveSession(s)
	m.hub.Broadcast(s.ID, "level-started", map[string]interface{}{"session": s})
	return nil
}

func (m *Manager) finishLevel(s *Session, winner game.Color) {
	s.LevelOver = true
	s.LevelWinners = append(s.LevelWinners, winner)
	log.Info().Str("session", s.ID).Int("level", s.Level).
		Str("winner", winner.String()).Msg("level decided")
	if s.Level >= levels.Count() {
		m.finishGame(s)
	}
	m.hub.Broadcast(s.ID, "level-over", map[string]interface{}{
		"winner":  winner.String(),
		"session": s,
	})
}

func (m *Manager) finishGame(s *Session) {
	s.GameOver = true
	red, blue := 0, 0
	for _, w := range s.LevelWinners {
		switch w {
		case game.Red:
			red++
		case game.Blue:
			blue++
		}
	}
	switch {
	case red > blue:
		s.Winner = fmt.Sprintf("%s wins %d levels to %d", game.Red, red, blue)
	case blue > red:
		s.Winner = fmt.Sprintf("%s wins %d levels to %d", game.Blue, blue, red)
	default:
		s.Winner = fmt.Sprintf("draw, %d levels each", red)
	}
	log.Info().Str("session", s.ID).Str("result", s.Winner).Msg("game over")
}
