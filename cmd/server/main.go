package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	httpapi "chain-reaction/internal/api/http"
	"chain-reaction/internal/api/ws"
	"chain-reaction/internal/config"
	"chain-reaction/internal/session"
	"chain-reaction/internal/store"
)

// @title Chain Reaction API
// @version 1.0
// @description REST API for the chain-reaction dots game (board engine + tiered bot)
// @BasePath /
func main() {
	cfg := config.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	mem := store.NewMemoryStore()
	hub := ws.NewHub(nil)
	sm := session.NewManager(mem, cfg, hub)
	hub.SetController(sm)

	r := httpapi.NewRouter(sm, hub)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
