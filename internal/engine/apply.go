package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MakeMove executes move and appends it to the history.
//
// Trusted moves (returned by PossibleMoves with the check filter) are applied
// directly. Other moves are validated: both squares must be on the board, the
// origin must hold a piece, and the destination must not hold a king or a
// piece of the mover's colour. En passant and castling are re-derived from
// the position. Untrusted moves are not otherwise checked for legality.
//
// On error the board is unchanged.
func (b *Board) MakeMove(move MoveData) error {
	if move.trusted {
		b.applyTrusted(move)
		return nil
	}
	return b.applyUntrusted(move)
}

// MakeMoveString parses long algebraic text and executes it as an untrusted
// move.
func (b *Board) MakeMoveString(text string) error {
	move, err := ParseMoveData(text)
	if err != nil {
		return err
	}
	return b.MakeMove(move)
}

// applyTrusted executes a move whose special target, if any, was set by the
// generator: a pawn with a target captures en passant, a king with a target
// castles.
func (b *Board) applyTrusted(move MoveData) {
	p := b.piece(move.From)
	if move.SpecialTarget != nil {
		switch p.Kind {
		case chess.Pawn:
			b.set(*move.SpecialTarget, chess.NoPiece)
		case chess.King:
			b.applyCastle(move.From, move.To, *move.SpecialTarget)
		}
	}
	b.relocate(move.From, move.To, move.Promotion)

	move.trusted = true
	b.history = append(b.history, move)
}

func (b *Board) applyUntrusted(move MoveData) error {
	if !move.From.Valid() || !move.To.Valid() {
		return fmt.Errorf("move %v-%v: %w", move.From, move.To, errors.ErrInvalidPlace)
	}
	p := b.piece(move.From)
	if p.IsEmpty() {
		return fmt.Errorf("no piece on %v: %w", move.From, errors.ErrInvalidMove)
	}
	target := b.piece(move.To)
	if target.Kind == chess.King {
		return fmt.Errorf("%v cannot capture a king: %w", move.From, errors.ErrInvalidMove)
	}
	if !target.IsEmpty() && target.Colour == p.Colour {
		return fmt.Errorf("%v cannot capture its own %v: %w", move.From, target.Kind, errors.ErrInvalidMove)
	}

	move.SpecialTarget = nil
	dx := move.To.X - move.From.X
	switch {
	case p.Kind == chess.Pawn && abs(dx) == 1 && move.To.Y-move.From.Y == p.Colour.Forward():
		if b.canEnPassant(move.From, move.To) {
			side := chess.Sq(move.To.X, move.From.Y)
			move.SpecialTarget = &side
		}
	case p.Kind == chess.King && abs(dx) == 2 && move.To.Y == move.From.Y:
		rookSq := chess.Sq(0, move.From.Y)
		if dx > 0 {
			rookSq = chess.Sq(chess.BoardSize-1, move.From.Y)
		}
		if b.piece(rookSq) == chess.NewPiece(chess.Rook, p.Colour) {
			move.SpecialTarget = &rookSq
		}
	}

	move.Algebraic = chess.FormatMove(move.From, move.To, move.Promotion)
	b.applyTrusted(move)
	return nil
}

// relocate moves the piece on from to to, promoting it when promotion is set.
func (b *Board) relocate(from, to chess.Square, promotion chess.Kind) {
	p := b.piece(from)
	if promotion != chess.None {
		p.Kind = promotion
	}
	b.set(from, chess.NoPiece)
	b.set(to, p)
}
