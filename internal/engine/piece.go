package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pieceMoves returns the pseudo-legal moves of the piece on origin.
func (b *Board) pieceMoves(origin chess.Square, mode KillMode) []MoveData {
	p := b.piece(origin)
	switch p.Kind {
	case chess.Pawn:
		return b.pawnMoves(origin, mode)
	case chess.Rook:
		return b.sliderMoves(origin, straightDirs, mode)
	case chess.Bishop:
		return b.sliderMoves(origin, diagonalDirs, mode)
	case chess.Queen:
		return b.sliderMoves(origin, royalDirs, mode)
	case chess.Knight:
		return b.stepperMoves(origin, knightJumps, mode)
	case chess.King:
		moves := b.stepperMoves(origin, royalDirs, mode)
		if mode <= 0 {
			moves = append(moves, b.castleMoves(origin)...)
		}
		return moves
	}
	return nil
}

func (b *Board) sliderMoves(origin chess.Square, dirs []offset, mode KillMode) []MoveData {
	var moves []MoveData
	for _, dir := range dirs {
		for _, to := range slide(b, origin, dir, mode) {
			moves = append(moves, newGenerated(origin, to, chess.None, nil))
		}
	}
	return moves
}

func (b *Board) stepperMoves(origin chess.Square, offsets []offset, mode KillMode) []MoveData {
	var moves []MoveData
	for _, off := range offsets {
		if to, ok := step(b, origin, off, mode); ok {
			moves = append(moves, newGenerated(origin, to, chess.None, nil))
		}
	}
	return moves
}
