package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// castlingBoard has both white rooks and the king on their home squares.
func castlingBoard(t *testing.T) *Board {
	t.Helper()
	b := emptyBoard()
	place(t, b, "e1", chess.W(chess.King))
	place(t, b, "a1", chess.W(chess.Rook))
	place(t, b, "h1", chess.W(chess.Rook))
	place(t, b, "e8", chess.B(chess.King))
	return b
}

func TestCastling_Offered(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T, b *Board)
		kingside  bool
		queenside bool
	}{
		{
			name:      "both sides free",
			setup:     func(t *testing.T, b *Board) {},
			kingside:  true,
			queenside: true,
		},
		{
			name: "piece between king and rook",
			setup: func(t *testing.T, b *Board) {
				place(t, b, "b1", chess.W(chess.Knight))
			},
			kingside:  true,
			queenside: false,
		},
		{
			name: "king in check",
			setup: func(t *testing.T, b *Board) {
				place(t, b, "e5", chess.B(chess.Rook))
			},
			kingside:  false,
			queenside: false,
		},
		{
			name: "transit square attacked",
			setup: func(t *testing.T, b *Board) {
				place(t, b, "f5", chess.B(chess.Rook))
			},
			kingside:  false,
			queenside: true,
		},
		{
			name: "landing square attacked",
			setup: func(t *testing.T, b *Board) {
				place(t, b, "c5", chess.B(chess.Rook))
			},
			kingside:  true,
			queenside: false,
		},
		{
			name: "rook square attacked only",
			setup: func(t *testing.T, b *Board) {
				place(t, b, "b5", chess.B(chess.Rook))
			},
			kingside:  true,
			queenside: true,
		},
		{
			name: "rook missing",
			setup: func(t *testing.T, b *Board) {
				b.set(sq(t, "h1"), chess.NoPiece)
			},
			kingside:  false,
			queenside: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := castlingBoard(t)
			tt.setup(t, b)
			got := legal(t, b, "e1")
			if contains(got, "e1g1") != tt.kingside {
				t.Errorf("kingside castle offered = %v, want %v (moves %v)", !tt.kingside, tt.kingside, got)
			}
			if contains(got, "e1c1") != tt.queenside {
				t.Errorf("queenside castle offered = %v, want %v (moves %v)", !tt.queenside, tt.queenside, got)
			}
		})
	}
}

func TestCastling_LostByHistory(t *testing.T) {
	tests := []struct {
		name      string
		moves     []string
		kingside  bool
		queenside bool
	}{
		{"king moved and returned", []string{"e1e2", "e8e7", "e2e1", "e7e8"}, false, false},
		{"kingside rook moved and returned", []string{"h1h2", "e8e7", "h2h1", "e7e8"}, false, true},
		{"queenside rook moved", []string{"a1a2", "e8e7"}, true, false},
		{"other pieces moved", []string{"e8d8", "d8e8"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := castlingBoard(t)
			play(t, b, tt.moves...)
			testutil.AssertEqual(t, b.CanCastle(chess.White, true), tt.kingside)
			testutil.AssertEqual(t, b.CanCastle(chess.White, false), tt.queenside)
		})
	}
}

func TestCastling_Execution(t *testing.T) {
	tests := []struct {
		move     string
		king     string
		rook     string
		rookFrom string
	}{
		{"e1g1", "g1", "f1", "h1"},
		{"e1c1", "c1", "d1", "a1"},
	}

	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			b := castlingBoard(t)
			move, err := b.FindLegalMove(tt.move)
			testutil.AssertNoError(t, err)
			testutil.AssertNotNil(t, move.SpecialTarget)
			testutil.AssertEqual(t, *move.SpecialTarget, sq(t, tt.rookFrom))

			testutil.AssertNoError(t, b.MakeMove(move))
			testutil.AssertEqual(t, b.piece(sq(t, tt.king)), chess.W(chess.King))
			testutil.AssertEqual(t, b.piece(sq(t, tt.rook)), chess.W(chess.Rook))
			testutil.AssertTrue(t, b.piece(sq(t, "e1")).IsEmpty())
			testutil.AssertTrue(t, b.piece(sq(t, tt.rookFrom)).IsEmpty())
		})
	}
}

func TestCastling_UntrustedRederived(t *testing.T) {
	b := castlingBoard(t)
	play(t, b, "e1c1")

	testutil.AssertEqual(t, b.piece(sq(t, "c1")), chess.W(chess.King))
	testutil.AssertEqual(t, b.piece(sq(t, "d1")), chess.W(chess.Rook))
	testutil.AssertTrue(t, b.piece(sq(t, "a1")).IsEmpty())

	last, _ := b.LastMove()
	testutil.AssertNotNil(t, last.SpecialTarget)
	testutil.AssertEqual(t, *last.SpecialTarget, sq(t, "a1"))
	testutil.AssertTrue(t, last.Trusted(), "recorded moves replay on the fast path")
}

func TestCastling_BlackFromStart(t *testing.T) {
	b := NewBoard()
	play(t, b, "e2e4", "e7e5", "g1f3", "g8f6", "f1c4", "f8c5")

	testutil.AssertTrue(t, contains(legal(t, b, "e1"), "e1g1"))
	play(t, b, "e1g1")
	testutil.AssertTrue(t, contains(legal(t, b, "e8"), "e8g8"))
	play(t, b, "e8g8")

	testutil.AssertEqual(t, b.piece(sq(t, "f8")), chess.B(chess.Rook))
	testutil.AssertEqual(t, b.piece(sq(t, "g8")), chess.B(chess.King))
	testutil.AssertFalse(t, b.CanCastle(chess.Black, false))
}
