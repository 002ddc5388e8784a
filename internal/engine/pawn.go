package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// pawnMoves generates pushes, captures and en passant for the pawn on origin.
// Moves reaching the promotion rank are expanded into one move per
// promotion kind.
func (b *Board) pawnMoves(origin chess.Square, mode KillMode) []MoveData {
	c := b.piece(origin).Colour
	fwd := c.Forward()
	var moves []MoveData

	add := func(to chess.Square, special *chess.Square) {
		if to.Y == chess.PromotionRank(c) {
			for _, k := range chess.PromotionKinds {
				moves = append(moves, newGenerated(origin, to, k, special))
			}
			return
		}
		moves = append(moves, newGenerated(origin, to, chess.None, special))
	}

	if mode <= 0 {
		one := origin.Add(0, fwd)
		if one.Valid() && b.piece(one).IsEmpty() {
			add(one, nil)
			two := one.Add(0, fwd)
			if origin.Y == chess.PawnRank(c) && two.Valid() && b.piece(two).IsEmpty() {
				add(two, nil)
			}
		}
	}

	if mode >= 0 {
		for _, dx := range []int{-1, 1} {
			to := origin.Add(dx, fwd)
			if !to.Valid() {
				continue
			}
			if b.piece(to).IsEnemyOf(c) {
				add(to, nil)
				continue
			}
			if b.canEnPassant(origin, to) {
				side := chess.Sq(to.X, origin.Y)
				add(to, &side)
			}
		}
	}
	return moves
}

// CanEnPassant reports whether the pawn on pawn may capture en passant by
// moving to target.
func (b *Board) CanEnPassant(pawn, target chess.Square) (bool, error) {
	if !pawn.Valid() || !target.Valid() {
		return false, fmt.Errorf("en passant %v-%v: %w", pawn, target, errors.ErrInvalidPlace)
	}
	p := b.piece(pawn)
	if p.Kind != chess.Pawn || target.Y != pawn.Y+p.Colour.Forward() || abs(target.X-pawn.X) != 1 {
		return false, nil
	}
	return b.canEnPassant(pawn, target), nil
}

// canEnPassant requires an empty diagonal target, an enemy pawn beside the
// capturing pawn, and that this enemy pawn's double step was the last move.
// A double step lands next to the capturer only on its fifth rank.
func (b *Board) canEnPassant(pawn, target chess.Square) bool {
	last, ok := b.LastMove()
	if !ok || !b.piece(target).IsEmpty() {
		return false
	}
	c := b.piece(pawn).Colour
	side := chess.Sq(target.X, pawn.Y)
	victim := b.piece(side)
	if victim.Kind != chess.Pawn || !victim.IsEnemyOf(c) {
		return false
	}
	from := chess.Sq(side.X, chess.PawnRank(c.Opposite()))
	return last.To == side && last.From == from && abs(last.To.Y-last.From.Y) == 2
}
