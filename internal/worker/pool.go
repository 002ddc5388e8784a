// Package worker provides a worker pool for replaying move lists in parallel.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// WorkItem is one game to replay.
type WorkItem struct {
	Index  int      // Original index for tracking
	Source string   // Where the game came from, e.g. "games.txt:3"
	Moves  []string // Long algebraic moves from the starting position
}

// ProcessResult is the outcome of replaying a game.
type ProcessResult struct {
	Index  int
	Source string
	Board  *engine.Board // Board after the last move that could be played
	Status engine.GameStatus
	Error  error
}

// ProcessFunc is the function signature for processing a work item.
// Each call owns the board it builds; boards are never shared between items.
type ProcessFunc func(item WorkItem) ProcessResult

// ReplayGame is the default ProcessFunc. It replays the moves with turn order
// and legality enforced and classifies the final position for the side to
// move.
func ReplayGame(item WorkItem) ProcessResult {
	board, err := engine.Replay(item.Moves)
	result := ProcessResult{Index: item.Index, Source: item.Source, Board: board, Error: err}
	if err == nil {
		_, result.Status = board.Result()
	}
	return result
}

// Pool manages a pool of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. A nil processFunc replays games with ReplayGame.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	if processFunc == nil {
		processFunc = ReplayGame
	}
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item, blocking while the buffer is full or until ctx
// is done.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, submits items and returns the results ordered by
// Index. It stops early when ctx is done.
func (p *Pool) Run(ctx context.Context, items []WorkItem) ([]ProcessResult, error) {
	p.Start()

	var submitErr error
	go func() {
		defer p.Close()
		for _, item := range items {
			if err := p.Submit(ctx, item); err != nil {
				submitErr = err
				p.Stop()
				return
			}
		}
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results, submitErr
}
