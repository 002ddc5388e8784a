package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/relay"
)

// runHost waits for a guest and plays White.
func runHost(ctx context.Context, cfg *config.Config, in io.Reader) error {
	fmt.Fprintf(cfg.OutputFile, "Waiting for an opponent on %s...\n", cfg.Relay.ListenAddr)
	peer, err := relay.Listen(ctx, cfg.Relay.ListenAddr)
	if err != nil {
		return err
	}
	return playMatch(ctx, cfg, relay.NewMatch(peer), in)
}

// runJoin connects to a host and plays Black.
func runJoin(ctx context.Context, cfg *config.Config, in io.Reader) error {
	peer, err := relay.Dial(ctx, cfg.Relay.URL)
	if err != nil {
		return err
	}
	return playMatch(ctx, cfg, relay.NewMatch(peer), in)
}

// playMatch alternates local prompts with remote moves until the game ends,
// input ends or ctx is done.
func playMatch(ctx context.Context, cfg *config.Config, m *relay.Match, in io.Reader) error {
	defer m.Close()
	stop := context.AfterFunc(ctx, func() { m.Close() })
	defer stop()

	c := newConsole(cfg, in, m.Colour() == chess.Black)
	fmt.Fprintf(c.out, "Connected. You play %v.\n", m.Colour())
	if cfg.Verbosity > 1 {
		log.Printf("relay match started as %v", m.Colour())
	}

	for {
		b := m.Board()
		if c.announce(b) {
			return nil
		}
		if err := c.r.Board(c.out, b); err != nil {
			return err
		}

		if !m.MyTurn() {
			fmt.Fprintln(c.out, "Waiting for the opponent's move...")
			move, err := m.AwaitMove()
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return err
			}
			fmt.Fprintf(c.out, "Opponent played %s.\n", move)
			continue
		}

		move, _, ok := c.pickMove(b, false)
		if !ok {
			return nil
		}
		if _, err := m.Play(move.Algebraic); err != nil {
			return err
		}
	}
}
