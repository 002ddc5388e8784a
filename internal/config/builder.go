package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithServerAddr sets the HTTP listen address.
func (b *ConfigBuilder) WithServerAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithNodeID sets the snowflake node id.
func (b *ConfigBuilder) WithNodeID(id int64) *ConfigBuilder {
	b.cfg.Server.NodeID = id
	return b
}

// WithRedis enables the redis store at addr.
func (b *ConfigBuilder) WithRedis(addr string, ttl time.Duration) *ConfigBuilder {
	b.cfg.Server.UseRedis = true
	b.cfg.Redis.Addr = addr
	b.cfg.Redis.TTL = ttl
	return b
}

// WithRelay sets the host listen address and the guest dial URL.
func (b *ConfigBuilder) WithRelay(listenAddr, url string) *ConfigBuilder {
	b.cfg.Relay.ListenAddr = listenAddr
	b.cfg.Relay.URL = url
	return b
}

// WithWorkers sets the number of replay workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithBufferSize sets the replay channel capacity.
func (b *ConfigBuilder) WithBufferSize(n int) *ConfigBuilder {
	b.cfg.Replay.BufferSize = n
	return b
}

// WithColour controls coloured board output.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Render.Colour = enabled
	return b
}

// WithFlip controls drawing the board from Black's side.
func (b *ConfigBuilder) WithFlip(enabled bool) *ConfigBuilder {
	b.cfg.Render.Flip = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
