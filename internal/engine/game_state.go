package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// GameStatus summarises the position for the side to move.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
)

func (s GameStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// Over reports whether the game has ended.
func (s GameStatus) Over() bool {
	return s == Checkmate || s == Stalemate
}

// IsInStalemate reports whether colour c has no legal move. It is also true
// when c is checkmated; combine with IsInCheck to tell the two apart.
func (b *Board) IsInStalemate(c chess.Colour) bool {
	return !b.HasLegalMoves(c)
}

// IsInCheckmate reports whether colour c is in check with no legal move.
func (b *Board) IsInCheckmate(c chess.Colour) bool {
	return b.IsInCheck(c) && b.IsInStalemate(c)
}

// Status classifies the position for colour c.
func (b *Board) Status(c chess.Colour) GameStatus {
	check := b.IsInCheck(c)
	stuck := b.IsInStalemate(c)
	switch {
	case check && stuck:
		return Checkmate
	case check:
		return Check
	case stuck:
		return Stalemate
	}
	return Ongoing
}
