package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// EnvPrefix starts every environment variable the commands read.
const EnvPrefix = "CHESS_"

// LoadEnv applies CHESS_* settings to cfg. Values come from the process
// environment first, then from the given .env files in order. Files that do
// not exist are skipped.
func LoadEnv(cfg *Config, files ...string) error {
	fileVars := make(map[string]string)
	for _, name := range files {
		vars, err := godotenv.Read(name)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		for k, v := range vars {
			if _, seen := fileVars[k]; !seen {
				fileVars[k] = v
			}
		}
	}

	return ApplyEnv(cfg, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	})
}

// ApplyEnv applies the settings lookup finds to cfg.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	e := envReader{lookup: lookup}

	e.setString("ADDR", &cfg.Server.Addr)
	e.setInt64("NODE_ID", &cfg.Server.NodeID)
	e.setBool("USE_REDIS", &cfg.Server.UseRedis)
	e.setDuration("SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout)

	e.setString("REDIS_ADDR", &cfg.Redis.Addr)
	e.setString("REDIS_PASSWORD", &cfg.Redis.Password)
	e.setInt("REDIS_DB", &cfg.Redis.DB)
	e.setDuration("REDIS_TTL", &cfg.Redis.TTL)

	e.setString("RELAY_LISTEN", &cfg.Relay.ListenAddr)
	e.setString("RELAY_URL", &cfg.Relay.URL)

	e.setInt("WORKERS", &cfg.Replay.Workers)
	e.setInt("BUFFER_SIZE", &cfg.Replay.BufferSize)
	e.setBool("STOP_ON_ERROR", &cfg.Replay.StopOnError)

	e.setBool("COLOUR", &cfg.Render.Colour)
	e.setBool("FLIP", &cfg.Render.Flip)

	e.setInt("VERBOSITY", &cfg.Verbosity)

	return e.err
}

// envReader records the first malformed value and ignores the rest.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (e *envReader) get(name string) (string, bool) {
	if e.err != nil {
		return "", false
	}
	v, ok := e.lookup(EnvPrefix + name)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (e *envReader) fail(name, value, kind string) {
	e.err = fmt.Errorf("%s%s=%q is not a valid %s: %w", EnvPrefix, name, value, kind, errors.ErrInvalidConfig)
}

func (e *envReader) setString(name string, dst *string) {
	if v, ok := e.get(name); ok {
		*dst = v
	}
}

func (e *envReader) setInt(name string, dst *int) {
	v, ok := e.get(name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(name, v, "integer")
		return
	}
	*dst = n
}

func (e *envReader) setInt64(name string, dst *int64) {
	v, ok := e.get(name)
	if !ok {
		return
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		e.fail(name, v, "integer")
		return
	}
	*dst = n
}

func (e *envReader) setBool(name string, dst *bool) {
	v, ok := e.get(name)
	if !ok {
		return
	}
	switch strings.ToLower(v) {
	case "1", "true", "t", "yes", "y", "on":
		*dst = true
	case "0", "false", "f", "no", "n", "off":
		*dst = false
	default:
		e.fail(name, v, "boolean")
	}
}

func (e *envReader) setDuration(name string, dst *time.Duration) {
	v, ok := e.get(name)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(name, v, "duration")
		return
	}
	*dst = d
}
