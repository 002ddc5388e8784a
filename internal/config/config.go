// Package config provides configuration for the chess-rules-go commands.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration, grouped by the component that
// consumes it.
type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Relay  RelayConfig
	Replay ReplayConfig
	Render RenderConfig

	// Verbosity: 0=nothing, 1=summary, 2=running commentary
	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Server:     *NewServerConfig(),
		Redis:      *NewRedisConfig(),
		Relay:      *NewRelayConfig(),
		Replay:     *NewReplayConfig(),
		Render:     *NewRenderConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer command output goes to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	validators := []interface{ Validate() error }{
		&c.Server, &c.Redis, &c.Relay, &c.Replay,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
