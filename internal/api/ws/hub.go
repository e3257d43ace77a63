package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"chain-reaction/internal/game"
)

// Hub fans session events out to websocket clients and accepts move actions
// back from them. Connections are grouped per session ID.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*websocket.Conn]struct{}
	ctrl     SessionController
}

func NewHub(ctrl SessionController) *Hub {
	return &Hub{
		sessions: make(map[string]map[*websocket.Conn]struct{}),
		ctrl:     ctrl,
	}
}

// SetController wires the session manager after construction, breaking the
// hub <-> manager construction cycle in main.
func (h *Hub) SetController(ctrl SessionController) {
	h.ctrl = ctrl
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session_id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.mu.Lock()
	if _, ok := h.sessions[sessionID]; !ok {
		h.sessions[sessionID] = make(map[*websocket.Conn]struct{})
	}
	h.sessions[sessionID][conn] = struct{}{}
	h.mu.Unlock()

	log.Debug().Str("session", sessionID).Msg("websocket client joined")

	defer func() {
		h.mu.Lock()
		delete(h.sessions[sessionID], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg struct {
			Action string          `json:"action"`
			Data   json.RawMessage `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Debug().Err(err).Str("session", sessionID).Msg("websocket read ended")
			break
		}

		switch msg.Action {
		case "move":
			h.handleMove(sessionID, msg.Data)
		case "bot-move":
			h.handleBotMove(sessionID)
		default:
			log.Warn().Str("action", msg.Action).Msg("unknown websocket action")
		}
	}
}

// Broadcast sends an event to every client watching the session. Dead
// connections are dropped on write failure.
func (h *Hub) Broadcast(sessionID string, event string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.sessions[sessionID]
	if !ok {
		return
	}
	message := map[string]interface{}{
		"event": event,
		"data":  data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Debug().Err(err).Msg("dropping websocket client")
			_ = conn.Close()
			delete(clients, conn)
		}
	}
}

func (h *Hub) handleMove(sessionID string, raw json.RawMessage) {
	var mv struct {
		Player string `json:"player"`
		Row    int    `json:"row"`
		Col    int    `json:"col"`
	}
	if err := json.Unmarshal(raw, &mv); err != nil {
		log.Warn().Err(err).Msg("bad move payload")
		return
	}
	s, ok := h.ctrl.Get(sessionID)
	if !ok {
		log.Warn().Str("session", sessionID).Msg("session not found")
		return
	}
	player := game.Red
	if mv.Player == game.Blue.String() {
		player = game.Blue
	}
	if err := h.ctrl.ApplyMove(s, player, game.Move{Row: mv.Row, Col: mv.Col}); err != nil {
		h.Broadcast(sessionID, "error", gin.H{"error": err.Error()})
	}
}

func (h *Hub) handleBotMove(sessionID string) {
	s, ok := h.ctrl.Get(sessionID)
	if !ok {
		log.Warn().Str("session", sessionID).Msg("session not found")
		return
	}
	if _, err := h.ctrl.BotMove(s); err != nil {
		h.Broadcast(sessionID, "error", gin.H{"error": err.Error()})
	}
}
