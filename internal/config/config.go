package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        int
	LogLevel    string
	APIToken    string
	NatsURL     string
	NatsToken   string
	LexiconPath string
}

func Load() Config {
	return Config{
		Port:        envInt("INSIGHT_PORT", 8760),
		LogLevel:    envStr("LOG_LEVEL", "info"),
		APIToken:    envStr("INSIGHT_API_TOKEN", ""),
		NatsURL:     envStr("NATS_URL", ""),
		NatsToken:   envStr("NATS_TOKEN", ""),
		LexiconPath: envStr("INSIGHT_LEXICON_PATH", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
