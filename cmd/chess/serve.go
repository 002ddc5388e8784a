package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/server"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// runServe serves the HTTP API until ctx is done.
func runServe(ctx context.Context, cfg *config.Config) error {
	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore() //nolint:errcheck // nothing to do on shutdown

	manager, err := session.NewManager(store, cfg.Server.NodeID)
	if err != nil {
		return err
	}

	if cfg.Verbosity < 2 {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = cfg.LogFile
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.NewRouter(manager),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("HTTP listening on %s", cfg.Server.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newStore opens the configured game store and returns its release.
func newStore(ctx context.Context, cfg *config.Config) (session.Store, func() error, error) {
	if !cfg.Server.UseRedis {
		log.Printf("keeping games in memory")
		return session.NewMemoryStore(), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close() //nolint:errcheck,gosec // G104: cleanup on failure
		return nil, nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
	}
	log.Printf("keeping games in redis at %s for %v", cfg.Redis.Addr, cfg.Redis.TTL)
	return session.NewRedisStore(client, cfg.Redis.TTL), client.Close, nil
}
