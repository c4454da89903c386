package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Port          int    `validate:"min=1,max=65535"`
	NatsURL       string `validate:"omitempty,url"`
	NatsToken     string
	DatabaseURL   string
	LogLevel      string `validate:"oneof=debug info warn error"`
	Variant       string `validate:"oneof=basic enhanced"`
	APIToken      string
	KnowledgeBase string
}

func Load() Config {
	return Config{
		Port:          envInt("DECKHAND_PORT", 8760),
		NatsURL:       envStr("NATS_URL", "nats://hermes:4222"),
		NatsToken:     envStr("NATS_TOKEN", ""),
		DatabaseURL:   envStr("DATABASE_URL", ""),
		LogLevel:      envStr("LOG_LEVEL", "info"),
		Variant:       envStr("DECKHAND_VARIANT", "enhanced"),
		APIToken:      envStr("DECKHAND_API_TOKEN", ""),
		KnowledgeBase: envStr("DECKHAND_KNOWLEDGE_BASE", ""),
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
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
