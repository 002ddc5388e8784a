package config

import (
	"fmt"
	"net/url"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RelayConfig holds settings for two-player games over a websocket link.
type RelayConfig struct {
	// ListenAddr is where the host waits for its opponent
	ListenAddr string

	// URL is the host the guest dials, e.g. "ws://localhost:9000"
	URL string
}

// NewRelayConfig creates a RelayConfig with default values.
func NewRelayConfig() *RelayConfig {
	return &RelayConfig{
		ListenAddr: ":9000",
		URL:        "ws://localhost:9000",
	}
}

// Validate checks that the relay configuration is valid.
func (r *RelayConfig) Validate() error {
	if r.ListenAddr == "" {
		return fmt.Errorf("relay listen address is empty: %w", errors.ErrInvalidConfig)
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return fmt.Errorf("relay url %q: %v: %w", r.URL, err, errors.ErrInvalidConfig)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("relay url %q must use ws or wss: %w", r.URL, errors.ErrInvalidConfig)
	}
	return nil
}

// ReplayConfig holds settings for batch replay.
type ReplayConfig struct {
	// Workers is the number of replay goroutines
	Workers int

	// BufferSize is the capacity of the work and result channels
	BufferSize int

	// StopOnError stops at the first game that fails to replay
	StopOnError bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 64,
	}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 1 {
		return fmt.Errorf("replay workers %d must be at least 1: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.BufferSize < 1 {
		return fmt.Errorf("replay buffer size %d must be at least 1: %w", r.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}

// RenderConfig holds settings for console board output.
type RenderConfig struct {
	// Colour styles piece letters with terminal colours
	Colour bool

	// Flip draws the board from Black's side
	Flip bool
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{Colour: true}
}
