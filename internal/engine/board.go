// Package engine implements the chess rules: move generation, check
// detection, move execution and undo on a Board.
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// backRank is the piece order of the home rank, file a to h.
var backRank = [chess.BoardSize]chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// Board is an 8x8 grid of pieces plus the ordered history of the moves that
// produced it. The grid is always the result of replaying the history from
// the standard starting position.
//
// A Board is not safe for concurrent use.
type Board struct {
	squares [chess.BoardSize][chess.BoardSize]chess.Piece // [x][y]
	history []MoveData
}

// NewBoard returns a board in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	for x := 0; x < chess.BoardSize; x++ {
		for _, c := range []chess.Colour{chess.White, chess.Black} {
			b.squares[x][chess.HomeRank(c)] = chess.NewPiece(backRank[x], c)
			b.squares[x][chess.PawnRank(c)] = chess.NewPiece(chess.Pawn, c)
		}
	}
	return b
}

// NewBoardFromHistory replays moves from the standard starting position.
func NewBoardFromHistory(moves []MoveData) (*Board, error) {
	b := NewBoard()
	for i, m := range moves {
		if err := b.MakeMove(m); err != nil {
			return nil, &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: m.Algebraic}
		}
	}
	return b, nil
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	c := &Board{squares: b.squares}
	if len(b.history) > 0 {
		c.history = make([]MoveData, len(b.history))
		copy(c.history, b.history)
	}
	return c
}

// PieceAt returns the piece on sq, or chess.NoPiece for an empty square.
func (b *Board) PieceAt(sq chess.Square) (chess.Piece, error) {
	if !sq.Valid() {
		return chess.NoPiece, fmt.Errorf("square (%d, %d): %w", sq.X, sq.Y, errors.ErrInvalidPlace)
	}
	return b.squares[sq.X][sq.Y], nil
}

// piece is PieceAt without bounds checking.
func (b *Board) piece(sq chess.Square) chess.Piece {
	return b.squares[sq.X][sq.Y]
}

func (b *Board) set(sq chess.Square, p chess.Piece) {
	b.squares[sq.X][sq.Y] = p
}

// History returns a copy of the moves made so far.
func (b *Board) History() []MoveData {
	out := make([]MoveData, len(b.history))
	copy(out, b.history)
	return out
}

// Ply returns the number of moves made.
func (b *Board) Ply() int {
	return len(b.history)
}

// LastMove returns the most recent move, if any.
func (b *Board) LastMove() (MoveData, bool) {
	if len(b.history) == 0 {
		return MoveData{}, false
	}
	return b.history[len(b.history)-1], true
}

// Turn returns the side to move. White moves on even plies.
func (b *Board) Turn() chess.Colour {
	if len(b.history)%2 == 0 {
		return chess.White
	}
	return chess.Black
}

// PieceFilter selects pieces during board enumeration.
type PieceFilter func(chess.Piece) bool

// AnyPiece matches every occupied square.
func AnyPiece(chess.Piece) bool { return true }

// OfColour matches the pieces of one colour.
func OfColour(c chess.Colour) PieceFilter {
	return func(p chess.Piece) bool { return p.Colour == c }
}

// OfKind matches the pieces of one kind and colour.
func OfKind(kind chess.Kind, c chess.Colour) PieceFilter {
	return func(p chess.Piece) bool { return p.Kind == kind && p.Colour == c }
}

// AllPieces returns the non-empty pieces matching filter, scanning files a-h
// and ranks 1-8 within each file.
func (b *Board) AllPieces(filter PieceFilter) []chess.Piece {
	var out []chess.Piece
	b.scan(filter, func(sq chess.Square, p chess.Piece) {
		out = append(out, p)
	})
	return out
}

// AllPieceSquares returns the squares of the pieces matching filter, in the
// same order as AllPieces.
func (b *Board) AllPieceSquares(filter PieceFilter) []chess.Square {
	var out []chess.Square
	b.scan(filter, func(sq chess.Square, p chess.Piece) {
		out = append(out, sq)
	})
	return out
}

func (b *Board) scan(filter PieceFilter, fn func(chess.Square, chess.Piece)) {
	if filter == nil {
		filter = AnyPiece
	}
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			p := b.squares[x][y]
			if !p.IsEmpty() && filter(p) {
				fn(chess.Sq(x, y), p)
			}
		}
	}
}
