package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// MoveData describes one ply.
//
// SpecialTarget is set on castles (the rook's origin square) and on
// en passant captures (the captured pawn's square). Moves produced by the
// generator are trusted and execute without re-deriving special semantics;
// moves built from coordinates or text never are.
type MoveData struct {
	From          chess.Square
	To            chess.Square
	Promotion     chess.Kind
	SpecialTarget *chess.Square
	Algebraic     string

	trusted bool
}

// NewMove creates an untrusted move between two squares.
func NewMove(from, to chess.Square) MoveData {
	return NewPromotion(from, to, chess.None)
}

// NewPromotion creates an untrusted move that promotes to kind.
func NewPromotion(from, to chess.Square, kind chess.Kind) MoveData {
	return MoveData{
		From:      from,
		To:        to,
		Promotion: kind,
		Algebraic: chess.FormatMove(from, to, kind),
	}
}

// ParseMoveData parses long algebraic text into an untrusted move.
func ParseMoveData(text string) (MoveData, error) {
	from, to, promo, err := chess.ParseMove(text)
	if err != nil {
		return MoveData{}, err
	}
	return NewPromotion(from, to, promo), nil
}

// newGenerated builds a candidate move for the generator.
func newGenerated(from, to chess.Square, promo chess.Kind, special *chess.Square) MoveData {
	m := NewPromotion(from, to, promo)
	if special != nil {
		target := *special
		m.SpecialTarget = &target
	}
	return m
}

// Trusted reports whether the move came from the generator.
func (m MoveData) Trusted() bool {
	return m.trusted
}

// Equal compares moves by their algebraic text.
func (m MoveData) Equal(other MoveData) bool {
	return m.Algebraic == other.Algebraic
}

func (m MoveData) String() string {
	return m.Algebraic
}

// MoveStrings returns the algebraic text of each move.
func MoveStrings(moves []MoveData) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Algebraic
	}
	return out
}
