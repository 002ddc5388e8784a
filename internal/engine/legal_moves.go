package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// KillMode selects which destinations move generation produces.
type KillMode int

const (
	// QuietOnly produces moves onto empty squares only (castles included).
	QuietOnly KillMode = -1
	// AllMoves produces both captures and quiet moves.
	AllMoves KillMode = 0
	// CapturesOnly produces captures only (en passant included).
	CapturesOnly KillMode = 1
)

// PossibleMoves returns the moves of the piece on origin. An empty origin
// yields no moves. With checkFilter set, moves that leave the mover's king in
// check are dropped and the survivors are trusted.
//
// Check detection calls this with checkFilter off; the filter in turn calls
// check detection, so the recursion stops after one level.
func (b *Board) PossibleMoves(origin chess.Square, mode KillMode, checkFilter bool) ([]MoveData, error) {
	if !origin.Valid() {
		return nil, fmt.Errorf("origin (%d, %d): %w", origin.X, origin.Y, errors.ErrInvalidPlace)
	}
	p := b.piece(origin)
	if p.IsEmpty() {
		return nil, nil
	}

	candidates := b.pieceMoves(origin, mode)
	if !checkFilter {
		return candidates, nil
	}

	legal := candidates[:0]
	for _, m := range candidates {
		if b.InCheckAfterMove(m, p.Colour) {
			continue
		}
		m.trusted = true
		legal = append(legal, m)
	}
	return legal, nil
}

// LegalMoves returns all legal moves of the piece on origin.
func (b *Board) LegalMoves(origin chess.Square) ([]MoveData, error) {
	return b.PossibleMoves(origin, AllMoves, true)
}

// AllLegalMoves returns the legal moves of every piece of colour c.
func (b *Board) AllLegalMoves(c chess.Colour) []MoveData {
	var moves []MoveData
	for _, sq := range b.AllPieceSquares(OfColour(c)) {
		m, _ := b.LegalMoves(sq)
		moves = append(moves, m...)
	}
	return moves
}

// HasLegalMoves reports whether colour c has at least one legal move.
func (b *Board) HasLegalMoves(c chess.Colour) bool {
	for _, sq := range b.AllPieceSquares(OfColour(c)) {
		if m, _ := b.LegalMoves(sq); len(m) > 0 {
			return true
		}
	}
	return false
}

// FindLegalMove returns the legal move with the given algebraic text.
func (b *Board) FindLegalMove(text string) (MoveData, error) {
	want, err := ParseMoveData(text)
	if err != nil {
		return MoveData{}, err
	}
	moves, err := b.LegalMoves(want.From)
	if err != nil {
		return MoveData{}, err
	}
	for _, m := range moves {
		if m.Equal(want) {
			return m, nil
		}
	}
	return MoveData{}, fmt.Errorf("%s: %w", want.Algebraic, errors.ErrIllegalMove)
}
