package config

import (
	"os"
	"strings"
)

// Server captures process-level configuration.
type Server struct {
	Addr string
	// Admin is the bootstrap admin identity; the initialize operation only
	// accepts this caller.
	Admin         string
	JWTSigningKey string
	// RedisURL selects the Redis substrate when set; empty means in-memory.
	RedisURL string
	// KafkaBrokers enables the Kafka event sink when non-empty.
	KafkaBrokers []string
	KafkaTopic   string
	// EventsDSN enables the Postgres event log when set.
	EventsDSN string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("LIFEBANK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "lifebank.events"
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return Server{
		Addr:          addr,
		Admin:         os.Getenv("LIFEBANK_ADMIN"),
		JWTSigningKey: jwtSigningKey,
		RedisURL:      os.Getenv("REDIS_URL"),
		KafkaBrokers:  brokers,
		KafkaTopic:    topic,
		EventsDSN:     os.Getenv("EVENTS_DSN"),
	}
}
