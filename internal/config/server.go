package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// NodeID is the snowflake node used to mint game ids (0-1023)
	NodeID int64

	// UseRedis selects the redis store instead of process memory
	UseRedis bool

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":8080",
		NodeID:          1,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("server address is empty: %w", errors.ErrInvalidConfig)
	}
	if s.NodeID < 0 || s.NodeID > 1023 {
		return fmt.Errorf("node id %d outside [0, 1023]: %w", s.NodeID, errors.ErrInvalidConfig)
	}
	if s.ShutdownTimeout < 0 {
		return fmt.Errorf("negative shutdown timeout %v: %w", s.ShutdownTimeout, errors.ErrInvalidConfig)
	}
	return nil
}

// RedisConfig holds settings for the redis game store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// TTL is how long an idle game is kept
	TTL time.Duration
}

// NewRedisConfig creates a RedisConfig with default values.
func NewRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr: "localhost:6379",
		TTL:  24 * time.Hour,
	}
}

// Validate checks that the redis configuration is valid.
func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return fmt.Errorf("redis address is empty: %w", errors.ErrInvalidConfig)
	}
	if r.DB < 0 {
		return fmt.Errorf("redis db %d is negative: %w", r.DB, errors.ErrInvalidConfig)
	}
	if r.TTL <= 0 {
		return fmt.Errorf("redis ttl %v must be positive: %w", r.TTL, errors.ErrInvalidConfig)
	}
	return nil
}
