package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// UndoMove takes back the last n moves by replaying the rest of the history
// from the starting position. n must be between 0 and the number of moves
// made.
func (b *Board) UndoMove(n int) error {
	if n < 0 || n > len(b.history) {
		return fmt.Errorf("undo %d of %d moves: %w", n, len(b.history), errors.ErrInvalidOperation)
	}
	replayed, err := NewBoardFromHistory(b.history[:len(b.history)-n])
	if err != nil {
		return err
	}
	b.squares = replayed.squares
	b.history = replayed.history
	return nil
}

// PlayMove executes text as a move by the side to move, provided the
// generator offers it. The executed move is the generated one.
func (b *Board) PlayMove(text string) (MoveData, error) {
	want, err := ParseMoveData(text)
	if err != nil {
		return MoveData{}, err
	}
	p := b.piece(want.From)
	if p.IsEmpty() {
		return MoveData{}, fmt.Errorf("no piece on %v: %w", want.From, errors.ErrIllegalMove)
	}
	if p.Colour != b.Turn() {
		return MoveData{}, fmt.Errorf("%v to move: %w", b.Turn(), errors.ErrNotYourTurn)
	}
	move, err := b.FindLegalMove(want.Algebraic)
	if err != nil {
		return MoveData{}, err
	}
	if err := b.MakeMove(move); err != nil {
		return MoveData{}, err
	}
	return move, nil
}

// Replay plays a sequence of algebraic moves from the starting position,
// enforcing turn order and legality. The error names the failing ply.
func Replay(moves []string) (*Board, error) {
	b := NewBoard()
	for i, text := range moves {
		if _, err := b.PlayMove(text); err != nil {
			return b, &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: text}
		}
	}
	return b, nil
}

// Result describes the end state of the side to move.
func (b *Board) Result() (chess.Colour, GameStatus) {
	turn := b.Turn()
	return turn, b.Status(turn)
}
