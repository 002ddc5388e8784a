package relay

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Match is a game played over a Peer. Each side keeps its own board and
// only applies remote moves its own generator accepts.
type Match struct {
	peer  *Peer
	board *engine.Board
}

// NewMatch starts a game from the standard position.
func NewMatch(p *Peer) *Match {
	return &Match{peer: p, board: engine.NewBoard()}
}

// Board returns the match board. Callers must not mutate it.
func (m *Match) Board() *engine.Board {
	return m.board
}

// Colour returns the local side's colour.
func (m *Match) Colour() chess.Colour {
	return m.peer.Colour()
}

// MyTurn reports whether the local side is to move.
func (m *Match) MyTurn() bool {
	return m.board.Turn() == m.peer.Colour()
}

// Play executes a local move and sends it to the remote side.
func (m *Match) Play(text string) (engine.MoveData, error) {
	if !m.MyTurn() {
		return engine.MoveData{}, errors.ErrNotYourTurn
	}
	move, err := m.board.PlayMove(text)
	if err != nil {
		return engine.MoveData{}, err
	}
	if err := m.peer.SendMove(move); err != nil {
		return move, fmt.Errorf("send %s: %w", move, err)
	}
	return move, nil
}

// AwaitMove blocks for the remote side's move, validates it against the
// local board and applies it.
func (m *Match) AwaitMove() (engine.MoveData, error) {
	if m.MyTurn() {
		return engine.MoveData{}, errors.ErrNotYourTurn
	}
	remote, err := m.peer.ReceiveMove()
	if err != nil {
		return engine.MoveData{}, err
	}
	move, err := m.board.PlayMove(remote.Algebraic)
	if err != nil {
		return engine.MoveData{}, &errors.MoveError{Err: err, PlyNum: m.board.Ply() + 1, MoveText: remote.Algebraic}
	}
	return move, nil
}

// Close ends the link.
func (m *Match) Close() error {
	return m.peer.Close()
}
