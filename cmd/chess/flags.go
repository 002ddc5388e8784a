// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Configuration sources
	envFile = flag.String("env", ".env", "Read CHESS_* settings from this file if it exists")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	noColour     = flag.Bool("nocolour", false, "Don't colour piece letters")
	flipBoard    = flag.Bool("flip", false, "Draw the board from Black's side")

	// HTTP API (serve)
	addr       = flag.String("addr", "", "HTTP listen address (default :8080)")
	nodeID     = flag.Int64("node", 1, "Snowflake node id for new game ids (0-1023)")
	useRedis   = flag.Bool("redis", false, "Keep games in redis instead of memory")
	redisAddr  = flag.String("redis-addr", "", "Redis address (default localhost:6379)")
	redisPass  = flag.String("redis-password", "", "Redis password")
	redisDB    = flag.Int("redis-db", 0, "Redis database number")
	redisTTL   = flag.Duration("redis-ttl", 0, "How long idle games are kept in redis (default 24h)")
	shutdownIn = flag.Duration("shutdown-timeout", 0, "Graceful shutdown limit (default 5s)")

	// Relay (host, join)
	listenAddr = flag.String("listen", "", "Address the host waits on (default :9000)")
	relayURL   = flag.String("url", "", "Host URL the guest dials (default ws://localhost:9000)")

	// Replay
	workers     = flag.Int("workers", 0, "Number of replay workers (0 = auto-detect based on CPU cores)")
	bufferSize  = flag.Int("buffer", 0, "Replay channel capacity")
	stopOnError = flag.Bool("stoponerror", false, "Stop reporting at the first game that fails to replay")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	verbose = flag.Bool("v", false, "Running commentary, including HTTP request logs")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flags given on the command line into cfg. Flags left at
// their defaults do not override environment settings.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nocolour":
			cfg.Render.Colour = !*noColour
		case "flip":
			cfg.Render.Flip = *flipBoard
		case "addr":
			cfg.Server.Addr = *addr
		case "node":
			cfg.Server.NodeID = *nodeID
		case "redis":
			cfg.Server.UseRedis = *useRedis
		case "redis-addr":
			cfg.Redis.Addr = *redisAddr
		case "redis-password":
			cfg.Redis.Password = *redisPass
		case "redis-db":
			cfg.Redis.DB = *redisDB
		case "redis-ttl":
			cfg.Redis.TTL = *redisTTL
		case "shutdown-timeout":
			cfg.Server.ShutdownTimeout = *shutdownIn
		case "listen":
			cfg.Relay.ListenAddr = *listenAddr
		case "url":
			cfg.Relay.URL = *relayURL
		case "workers":
			if *workers > 0 {
				cfg.Replay.Workers = *workers
			}
		case "buffer":
			cfg.Replay.BufferSize = *bufferSize
		case "stoponerror":
			cfg.Replay.StopOnError = *stopOnError
		}
	})

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}
