package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck reports whether any king of colour c is attacked. A colour with
// no king on the board is never in check.
func (b *Board) IsInCheck(c chess.Colour) bool {
	kings := b.AllPieceSquares(OfKind(chess.King, c))
	if len(kings) == 0 {
		return false
	}
	for _, sq := range b.AllPieceSquares(OfColour(c.Opposite())) {
		// Captures only, no filter: attacks do not depend on the attacker's
		// own king safety.
		attacks, _ := b.PossibleMoves(sq, CapturesOnly, false)
		for _, m := range attacks {
			for _, k := range kings {
				if m.To == k {
					return true
				}
			}
		}
	}
	return false
}

// InCheckAfterMove executes move on a copy of the board through the trusted
// path and reports whether colour c is then in check.
func (b *Board) InCheckAfterMove(move MoveData, c chess.Colour) bool {
	clone := b.Copy()
	clone.applyTrusted(move)
	return clone.IsInCheck(c)
}
