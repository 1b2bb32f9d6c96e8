package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the arena backend
type Config struct {
	Port              string
	AllowedOrigins    []string
	HeartbeatInterval time.Duration
	SendBuffer        int // per-client outbound queue size
	LogFile           string
	Development       bool
}

// Load reads .env (if present) and environment variables, falling back to defaults
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	cfg := Config{
		Port:              getEnv("PORT", "4000"),
		AllowedOrigins:    splitAndTrim(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		HeartbeatInterval: time.Duration(getEnvInt("HEARTBEAT_MS", 1000)) * time.Millisecond,
		SendBuffer:        getEnvInt("SEND_BUFFER", 32),
		LogFile:           os.Getenv("LOG_FILE"),
		Development:       os.Getenv("GIN_MODE") != "release",
	}

	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = time.Second
	}
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = 32
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitAndTrim(input string) []string {
	raw := strings.Split(input, ",")
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
