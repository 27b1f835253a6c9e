package repositories

import (
	"context"
	"log"
	"time"

	"hawamoni/internal/config"

	"github.com/redis/go-redis/v9"
)

// Sessions is the process-wide session store, set by InitSessions.
var Sessions SessionStore

// InitSessions wires the session store. With REDIS_ADDR unset the store
// falls back to process memory, which is enough for local development.
func InitSessions() {
	addr := config.GetEnv("REDIS_ADDR", "")
	if addr == "" {
		log.Println("REDIS_ADDR not set, using in-memory session store")
		Sessions = NewMemorySessionStore()
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis at %s: %v", addr, err)
	}

	ttl := config.GetDurationEnv("SESSION_TTL", DefaultSessionTTL)
	Sessions = NewRedisSessionStore(client, ttl)
	log.Println("Connected to Redis session store")
}
