package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// kingFile is the home file of the king; rooks start on files 0 and 7.
const kingFile = 4

func castleSquares(c chess.Colour, kingside bool) (king, rook chess.Square) {
	rank := chess.HomeRank(c)
	king = chess.Sq(kingFile, rank)
	if kingside {
		return king, chess.Sq(chess.BoardSize-1, rank)
	}
	return king, chess.Sq(0, rank)
}

// CanCastle reports whether colour may castle on the given side now: king and
// rook stand unmoved on their home squares, the squares between them are
// empty, the king is not in check and does not pass through an attacked
// square. The landing square is left to the check filter.
func (b *Board) CanCastle(c chess.Colour, kingside bool) bool {
	kingSq, rookSq := castleSquares(c, kingside)
	if b.piece(kingSq) != chess.NewPiece(chess.King, c) || b.piece(rookSq) != chess.NewPiece(chess.Rook, c) {
		return false
	}
	for _, m := range b.history {
		if m.From == kingSq || m.From == rookSq {
			return false
		}
	}
	if !isPathClear(b, kingSq, rookSq) {
		return false
	}
	if b.IsInCheck(c) {
		return false
	}
	transit := kingSq.Add(sign(rookSq.X-kingSq.X), 0)
	return !b.InCheckAfterMove(newGenerated(kingSq, transit, chess.None, nil), c)
}

// castleMoves returns the castles available to the king on origin. Each move
// lands the king two files toward the rook and records the rook's square.
func (b *Board) castleMoves(origin chess.Square) []MoveData {
	c := b.piece(origin).Colour
	var moves []MoveData
	for _, kingside := range []bool{true, false} {
		kingSq, rookSq := castleSquares(c, kingside)
		if origin != kingSq || !b.CanCastle(c, kingside) {
			continue
		}
		to := kingSq.Add(2*sign(rookSq.X-kingSq.X), 0)
		moves = append(moves, newGenerated(kingSq, to, chess.None, &rookSq))
	}
	return moves
}

// applyCastle moves the king and puts the rook on the square the king
// crossed.
func (b *Board) applyCastle(from, to, rookSq chess.Square) {
	dir := sign(to.X - from.X)
	rook := b.piece(rookSq)
	b.set(rookSq, chess.NoPiece)
	b.set(from.Add(dir, 0), rook)
}
