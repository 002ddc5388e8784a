package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// runReplay replays every game in files (stdin when none) on the worker pool
// and prints one line per game.
func runReplay(ctx context.Context, cfg *config.Config, files []string) error {
	items, err := readInputs(files, os.Stdin)
	if err != nil {
		return err
	}

	pool := worker.NewPool(nil,
		worker.WithWorkers(cfg.Replay.Workers),
		worker.WithBufferSize(cfg.Replay.BufferSize))
	results, err := pool.Run(ctx, items)
	if err != nil {
		return err
	}

	failed := reportResults(cfg.OutputFile, results, cfg.Replay.StopOnError)
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d game(s) replayed, %d failed.\n", len(results), failed)
	}
	if failed > 0 {
		return fmt.Errorf("%d game(s) failed to replay", failed)
	}
	return nil
}

// readInputs reads games from each file in turn, numbering them across files.
func readInputs(files []string, stdin io.Reader) ([]worker.WorkItem, error) {
	if len(files) == 0 {
		return worker.ReadGames(stdin, "stdin", 0)
	}

	var items []worker.WorkItem
	for _, name := range files {
		f, err := os.Open(name) //nolint:gosec // G304: user-specified input file
		if err != nil {
			return nil, err
		}
		more, err := worker.ReadGames(f, name, len(items))
		f.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return nil, err
		}
		items = append(items, more...)
	}
	return items, nil
}

// reportResults writes one line per result and returns the number of
// failures reported.
func reportResults(w io.Writer, results []worker.ProcessResult, stopOnError bool) int {
	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(w, "%s: stopped after %d plies: %v\n", r.Source, r.Board.Ply(), r.Error)
			if stopOnError {
				break
			}
			continue
		}
		fmt.Fprintf(w, "%s: %d plies, %v to move, %s\n", r.Source, r.Board.Ply(), r.Board.Turn(), r.Status)
	}
	return failed
}
