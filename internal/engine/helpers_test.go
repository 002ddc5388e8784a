package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// emptyBoard returns a board with no pieces and no history.
func emptyBoard() *Board {
	return &Board{}
}

func sq(t *testing.T, alg string) chess.Square {
	t.Helper()
	s, err := chess.AlgebraicToSquare(alg)
	if err != nil {
		t.Fatalf("AlgebraicToSquare(%q): %v", alg, err)
	}
	return s
}

// place puts pieces on the board, e.g. place(t, b, "e1", chess.W(chess.King)).
func place(t *testing.T, b *Board, alg string, p chess.Piece) {
	t.Helper()
	b.set(sq(t, alg), p)
}

// play executes untrusted moves, failing the test on the first error.
func play(t *testing.T, b *Board, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if err := b.MakeMoveString(m); err != nil {
			t.Fatalf("MakeMoveString(%q): %v", m, err)
		}
	}
}

// legal returns the sorted algebraic moves of the piece on alg.
func legal(t *testing.T, b *Board, alg string) []string {
	t.Helper()
	moves, err := b.LegalMoves(sq(t, alg))
	if err != nil {
		t.Fatalf("LegalMoves(%q): %v", alg, err)
	}
	return testutil.SortedStrings(MoveStrings(moves))
}

func contains(moves []string, want string) bool {
	for _, m := range moves {
		if m == want {
			return true
		}
	}
	return false
}
