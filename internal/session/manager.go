package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game is a snapshot of a stored game with its rebuilt board.
type Game struct {
	ID        snowflake.ID
	Board     *engine.Board
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Moves returns the moves played so far.
func (g *Game) Moves() []string {
	return engine.MoveStrings(g.Board.History())
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.Board.Turn()
}

// Status classifies the position for the side to move.
func (g *Game) Status() engine.GameStatus {
	return g.Board.Status(g.Board.Turn())
}

// Manager creates games and applies moves to them. Mutations of one game are
// serialised; different games proceed independently.
type Manager struct {
	node  *snowflake.Node
	store Store
	now   func() time.Time

	mu    sync.Mutex
	locks map[int64]*gameLock
}

// gameLock is dropped from Manager.locks once no caller holds or waits on it.
type gameLock struct {
	sync.Mutex
	refs int
}

// NewManager returns a manager issuing ids from snowflake node nodeID.
func NewManager(store Store, nodeID int64) (*Manager, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	return &Manager{
		node:  node,
		store: store,
		now:   time.Now,
		locks: make(map[int64]*gameLock),
	}, nil
}

// Create starts a new game from the standard position.
func (m *Manager) Create(ctx context.Context) (*Game, error) {
	now := m.now()
	rec := &Record{ID: m.node.Generate().Int64(), Moves: []string{}, CreatedAt: now, UpdatedAt: now}
	if err := m.store.Save(ctx, rec); err != nil {
		return nil, err
	}
	return &Game{ID: snowflake.ID(rec.ID), Board: engine.NewBoard(), CreatedAt: now, UpdatedAt: now}, nil
}

// State loads a game.
func (m *Manager) State(ctx context.Context, id string) (*Game, error) {
	gid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	_, g, err := m.load(ctx, gid)
	return g, err
}

// LegalMoves returns the legal moves of the piece on square, in generation
// order.
func (m *Manager) LegalMoves(ctx context.Context, id, square string) ([]string, error) {
	g, err := m.State(ctx, id)
	if err != nil {
		return nil, err
	}
	sq, err := chess.AlgebraicToSquare(square)
	if err != nil {
		return nil, err
	}
	moves, err := g.Board.LegalMoves(sq)
	if err != nil {
		return nil, err
	}
	return engine.MoveStrings(moves), nil
}

// Move plays text for the side to move. Only moves the generator offers are
// accepted.
func (m *Manager) Move(ctx context.Context, id, text string) (*Game, error) {
	return m.mutate(ctx, id, func(g *Game) error {
		if _, err := g.Board.PlayMove(text); err != nil {
			return &errors.MoveError{Err: err, GameID: g.ID.String(), PlyNum: g.Board.Ply() + 1, MoveText: text}
		}
		return nil
	})
}

// Undo takes back the last n moves.
func (m *Manager) Undo(ctx context.Context, id string, n int) (*Game, error) {
	return m.mutate(ctx, id, func(g *Game) error {
		return g.Board.UndoMove(n)
	})
}

// Delete removes a game.
func (m *Manager) Delete(ctx context.Context, id string) error {
	gid, err := parseID(id)
	if err != nil {
		return err
	}
	unlock := m.lock(gid)
	defer unlock()
	if _, err := m.store.Load(ctx, gid); err != nil {
		return err
	}
	return m.store.Delete(ctx, gid)
}

func (m *Manager) mutate(ctx context.Context, id string, fn func(*Game) error) (*Game, error) {
	gid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	unlock := m.lock(gid)
	defer unlock()

	rec, g, err := m.load(ctx, gid)
	if err != nil {
		return nil, err
	}
	if err := fn(g); err != nil {
		return nil, err
	}

	g.UpdatedAt = m.now()
	rec.Moves = g.Moves()
	rec.UpdatedAt = g.UpdatedAt
	if err := m.store.Save(ctx, rec); err != nil {
		return nil, err
	}
	return g, nil
}

func (m *Manager) load(ctx context.Context, id int64) (*Record, *Game, error) {
	rec, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	board, err := engine.Replay(rec.Moves)
	if err != nil {
		return nil, nil, fmt.Errorf("game %d is corrupt: %w", id, err)
	}
	return rec, &Game{ID: snowflake.ID(rec.ID), Board: board, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt}, nil
}

// lock takes the per-game mutex and returns its release.
func (m *Manager) lock(id int64) func() {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &gameLock{}
		m.locks[id] = l
	}
	l.refs++
	m.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, id)
		}
		m.mu.Unlock()
	}
}

func (m *Manager) lockCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}

func parseID(id string) (int64, error) {
	sid, err := snowflake.ParseString(id)
	if err != nil {
		return 0, fmt.Errorf("game %q: %w", id, errors.ErrGameNotFound)
	}
	return sid.Int64(), nil
}
