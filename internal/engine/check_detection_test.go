package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]chess.Piece
		colour chess.Colour
		want   bool
	}{
		{
			name: "rook on the open file",
			pieces: map[string]chess.Piece{
				"e1": chess.W(chess.King),
				"e8": chess.B(chess.Rook),
			},
			colour: chess.White,
			want:   true,
		},
		{
			name: "rook blocked",
			pieces: map[string]chess.Piece{
				"e1": chess.W(chess.King),
				"e4": chess.W(chess.Pawn),
				"e8": chess.B(chess.Rook),
			},
			colour: chess.White,
			want:   false,
		},
		{
			name: "pawn attacks diagonally",
			pieces: map[string]chess.Piece{
				"e1": chess.W(chess.King),
				"d2": chess.B(chess.Pawn),
			},
			colour: chess.White,
			want:   true,
		},
		{
			name: "pawn does not attack straight ahead",
			pieces: map[string]chess.Piece{
				"e8": chess.B(chess.King),
				"e7": chess.W(chess.Pawn),
			},
			colour: chess.Black,
			want:   false,
		},
		{
			name: "knight",
			pieces: map[string]chess.Piece{
				"e8": chess.B(chess.King),
				"f6": chess.W(chess.Knight),
			},
			colour: chess.Black,
			want:   true,
		},
		{
			name: "no king",
			pieces: map[string]chess.Piece{
				"e8": chess.B(chess.Rook),
				"e1": chess.W(chess.Rook),
			},
			colour: chess.White,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := emptyBoard()
			for alg, p := range tt.pieces {
				place(t, b, alg, p)
			}
			if got := b.IsInCheck(tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestInCheckAfterMove(t *testing.T) {
	b := emptyBoard()
	place(t, b, "e1", chess.W(chess.King))
	place(t, b, "e2", chess.W(chess.Bishop))
	place(t, b, "e8", chess.B(chess.Rook))

	exposing := NewMove(sq(t, "e2"), sq(t, "d3"))
	testutil.AssertTrue(t, b.InCheckAfterMove(exposing, chess.White))

	stepping := NewMove(sq(t, "e1"), sq(t, "d1"))
	testutil.AssertFalse(t, b.InCheckAfterMove(stepping, chess.White))

	// The look-ahead never touches the live board.
	testutil.AssertEqual(t, b.piece(sq(t, "e2")), chess.W(chess.Bishop))
	testutil.AssertEqual(t, b.Ply(), 0)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]chess.Piece
		colour chess.Colour
		want   GameStatus
	}{
		{
			name: "back rank mate",
			pieces: map[string]chess.Piece{
				"g8": chess.B(chess.King),
				"f7": chess.B(chess.Pawn),
				"g7": chess.B(chess.Pawn),
				"h7": chess.B(chess.Pawn),
				"a8": chess.W(chess.Rook),
				"g1": chess.W(chess.King),
			},
			colour: chess.Black,
			want:   Checkmate,
		},
		{
			name: "king in the corner stalemated by a queen",
			pieces: map[string]chess.Piece{
				"a8": chess.B(chess.King),
				"b6": chess.W(chess.Queen),
				"h1": chess.W(chess.King),
			},
			colour: chess.Black,
			want:   Stalemate,
		},
		{
			name: "check with an escape",
			pieces: map[string]chess.Piece{
				"e8": chess.B(chess.King),
				"e1": chess.W(chess.Rook),
				"a1": chess.W(chess.King),
			},
			colour: chess.Black,
			want:   Check,
		},
		{
			name: "quiet position",
			pieces: map[string]chess.Piece{
				"e8": chess.B(chess.King),
				"e1": chess.W(chess.King),
			},
			colour: chess.White,
			want:   Ongoing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := emptyBoard()
			for alg, p := range tt.pieces {
				place(t, b, alg, p)
			}
			got := b.Status(tt.colour)
			if got != tt.want {
				t.Errorf("Status(%v) = %v, want %v", tt.colour, got, tt.want)
			}
			testutil.AssertEqual(t, b.IsInCheckmate(tt.colour), tt.want == Checkmate)
			testutil.AssertEqual(t, b.IsInStalemate(tt.colour), tt.want.Over())
		})
	}
}

func TestScholarsMate(t *testing.T) {
	b := NewBoard()
	play(t, b, "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")

	testutil.AssertTrue(t, b.IsInCheck(chess.Black))
	testutil.AssertTrue(t, b.IsInCheckmate(chess.Black))
	testutil.AssertFalse(t, b.IsInCheckmate(chess.White))
	for _, origin := range b.AllPieceSquares(OfColour(chess.Black)) {
		moves, _ := b.LegalMoves(origin)
		testutil.AssertEqual(t, len(moves), 0, "moves from %v", origin)
	}

	colour, status := b.Result()
	testutil.AssertEqual(t, colour, chess.Black)
	testutil.AssertEqual(t, status, Checkmate)
}
