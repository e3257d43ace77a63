package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chain-reaction/internal/game"
	"chain-reaction/internal/levels"
	"chain-reaction/internal/session"
)

// @Summary Create a new game session
// @Description Starts a human-vs-bot game on the requested level
// @Tags Session
// @Accept json
// @Produce json
// @Param request body http.CreateSessionRequest true "Session options"
// @Success 200 {object} map[string]interface{}
// @Router /sessions [post]
func CreateSessionHandler(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSessionRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if req.Level == 0 {
			req.Level = 1
		}
		human := game.Red
		if req.Color == game.Blue.String() {
			human = game.Blue
		}
		s, err := sm.NewSession(human, game.ParseDifficulty(req.Difficulty), req.Level)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": s, "difficulty": s.DifficultyName()})
	}
}

// @Summary Get session state
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id} [get]
func GetSessionHandler(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sm.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": s, "canUndo": s.CanUndo()})
	}
}

// @Summary Play the human move
// @Description Places a dot for the human player and settles the board
// @Tags Game
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body http.MoveRequest true "Move coordinates"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/moves [post]
func MoveHandler(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		s, ok := sm.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		if err := sm.ApplyMove(s, s.Human, game.Move{Row: req.Row, Col: req.Col}); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": s})
	}
}

// @Summary Play the bot move
// @Description Lets the bot pick and commit its move at the session difficulty
// @Tags Game
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/bot-move [post]
func BotMoveHandler(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sm.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		mv, err := sm.BotMove(s)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, game.ErrNoValidMoves) {
				// The bot is locked out; the client decides how to end it.
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"move": mv, "session": s})
	}
}

// @Summary Undo the last move
// @Description Restores the board and turn from the most recent snapshot
// @Tags Game
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/undo [post]
func UndoHandler(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sm.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		undone := sm.Undo(s)
		c.JSON(http.StatusOK, gin.H{"undone": undone, "session": s})
	}
}

// @Summary Advance to the next level
// @Tags Game
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/next-level [post]
func NextLevelHandler(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sm.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		if err := sm.NextLevel(s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": s})
	}
}

// @Summary List legal moves
// @Description Returns every cell the given player may place on
// @Tags Game
// @Produce json
// @Param id path string true "Session ID"
// @Param player query string false "red or blue; defaults to the player to move"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/valid-moves [get]
func ValidMovesHandler(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sm.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		player := s.Current
		switch c.Query("player") {
		case game.Red.String():
			player = game.Red
		case game.Blue.String():
			player = game.Blue
		}
		moves := game.ValidMoves(&s.Board, player)
		c.JSON(http.StatusOK, gin.H{"player": player.String(), "moves": moves})
	}
}

// @Summary List the level catalog
// @Tags Levels
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /levels [get]
func LevelsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"levels": levels.All()})
	}
}
