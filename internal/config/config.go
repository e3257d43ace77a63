package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr string

	// DefaultDifficulty is the bot tier used when a session does not name
	// one. Parsed case-insensitively; unknown values mean easy.
	DefaultDifficulty string

	// HistoryLimit bounds the undo stack per session.
	HistoryLimit int

	// BotDelayMs is how long the terminal driver pauses before the bot
	// moves. Purely presentation; the core never waits.
	BotDelayMs int

	LogLevel string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:          getenv("HTTP_ADDR", ":8080"),
		DefaultDifficulty: getenv("BOT_DIFFICULTY", "medium"),
		HistoryLimit:      getenvInt("HISTORY_LIMIT", 50),
		BotDelayMs:        getenvInt("BOT_DELAY_MS", 400),
		LogLevel:          getenv("LOG_LEVEL", "info"),
	}
}
