package http

import (
	"github.com/gin-gonic/gin"

	"chain-reaction/internal/api/ws"
	"chain-reaction/internal/session"
)

func NewRouter(sm *session.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket for live session updates
	r.GET("/ws", hub.HandleWS)

	// --- SESSION ENDPOINTS ---
	r.POST("/sessions", CreateSessionHandler(sm))
	r.GET("/sessions/:id", GetSessionHandler(sm))

	// --- GAME ENDPOINTS ---
	r.POST("/sessions/:id/moves", MoveHandler(sm))
	r.POST("/sessions/:id/bot-move", BotMoveHandler(sm))
	r.POST("/sessions/:id/undo", UndoHandler(sm))
	r.POST("/sessions/:id/next-level", NextLevelHandler(sm))
	r.GET("/sessions/:id/valid-moves", ValidMovesHandler(sm))

	// --- LEVEL ENDPOINTS ---
	r.GET("/levels", LevelsHandler())

	return r
}
