package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestMakeMove_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) *Board
		move    MoveData
		wantErr error
	}{
		{
			name:    "origin off the board",
			setup:   func(t *testing.T) *Board { return NewBoard() },
			move:    NewMove(chess.Sq(-1, 0), chess.Sq(0, 2)),
			wantErr: errors.ErrInvalidPlace,
		},
		{
			name:    "destination off the board",
			setup:   func(t *testing.T) *Board { return NewBoard() },
			move:    NewMove(chess.Sq(0, 1), chess.Sq(0, 8)),
			wantErr: errors.ErrInvalidPlace,
		},
		{
			name:    "empty origin",
			setup:   func(t *testing.T) *Board { return NewBoard() },
			move:    NewMove(chess.Sq(4, 3), chess.Sq(4, 4)),
			wantErr: errors.ErrInvalidMove,
		},
		{
			name:    "self capture",
			setup:   func(t *testing.T) *Board { return NewBoard() },
			move:    NewMove(chess.Sq(0, 0), chess.Sq(0, 1)),
			wantErr: errors.ErrInvalidMove,
		},
		{
			name: "king capture",
			setup: func(t *testing.T) *Board {
				b := emptyBoard()
				place(t, b, "e1", chess.W(chess.King))
				place(t, b, "e8", chess.B(chess.King))
				place(t, b, "e4", chess.W(chess.Rook))
				return b
			},
			move:    NewMove(chess.Sq(4, 3), chess.Sq(4, 7)),
			wantErr: errors.ErrInvalidMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.setup(t)
			before := b.Copy()

			err := b.MakeMove(tt.move)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("MakeMove(%v) err = %v, want %v", tt.move, err, tt.wantErr)
			}
			testutil.AssertTrue(t, b.squares == before.squares, "grid changed on error")
			testutil.AssertEqual(t, b.Ply(), before.Ply())
		})
	}
}

func TestMakeMoveString(t *testing.T) {
	tests := []struct {
		text    string
		wantErr error
	}{
		{"e2e4", nil},
		{"E2E4", nil},
		{"g1f3", nil},
		{"e2", errors.ErrInvalidNotation},
		{"e2e4e5", errors.ErrInvalidNotation},
		{"i2i4", errors.ErrInvalidNotation},
		{"e2e4k", errors.ErrInvalidNotation},
		{"e4e5", errors.ErrInvalidMove},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			b := NewBoard()
			err := b.MakeMoveString(tt.text)
			if tt.wantErr == nil {
				testutil.AssertNoError(t, err)
				testutil.AssertEqual(t, b.Ply(), 1)
				return
			}
			testutil.AssertErrorIs(t, err, tt.wantErr, "MakeMoveString(%q)", tt.text)
			testutil.AssertEqual(t, b.Ply(), 0)
		})
	}
}

func TestMakeMove_Promotion(t *testing.T) {
	tests := []struct {
		text string
		want chess.Kind
	}{
		{"b7b8q", chess.Queen},
		{"b7b8r", chess.Rook},
		{"b7b8b", chess.Bishop},
		{"b7b8n", chess.Knight},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			b := emptyBoard()
			place(t, b, "b7", chess.W(chess.Pawn))
			place(t, b, "h1", chess.W(chess.King))
			place(t, b, "h8", chess.B(chess.King))

			move, err := b.FindLegalMove(tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertNoError(t, b.MakeMove(move))
			testutil.AssertEqual(t, b.piece(sq(t, "b8")), chess.W(tt.want))
			testutil.AssertTrue(t, b.piece(sq(t, "b7")).IsEmpty())

			last, _ := b.LastMove()
			testutil.AssertEqual(t, last.Algebraic, tt.text)
		})
	}
}

func TestMakeMove_UntrustedIsNotLegalityChecked(t *testing.T) {
	b := NewBoard()

	// A knight cannot move like this, but untrusted execution only guards
	// captures.
	testutil.AssertNoError(t, b.MakeMoveString("b1b5"))
	testutil.AssertEqual(t, b.piece(sq(t, "b5")), chess.W(chess.Knight))
}

func TestMakeMove_HistoryAppendOnly(t *testing.T) {
	b := NewBoard()
	play(t, b, "e2e4", "e7e5")
	first := MoveStrings(b.History())

	play(t, b, "g1f3")
	testutil.AssertEqual(t, MoveStrings(b.History())[:2], first)
	testutil.AssertEqual(t, b.Ply(), 3)
}

func TestMoveData(t *testing.T) {
	m, err := ParseMoveData("A7A8Q")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.From, chess.Sq(0, 6))
	testutil.AssertEqual(t, m.To, chess.Sq(0, 7))
	testutil.AssertEqual(t, m.Promotion, chess.Queen)
	testutil.AssertEqual(t, m.String(), "a7a8q")
	testutil.AssertFalse(t, m.Trusted())

	testutil.AssertTrue(t, m.Equal(NewPromotion(chess.Sq(0, 6), chess.Sq(0, 7), chess.Queen)))
	testutil.AssertFalse(t, m.Equal(NewMove(chess.Sq(0, 6), chess.Sq(0, 7))))
}
