package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Characters used by the long algebraic codec.
const (
	FileChars = "abcdefgh"
	RankChars = "12345678"

	// MinMoveLen and MaxMoveLen bound a move string: origin + destination (+ promotion).
	MinMoveLen = 4
	MaxMoveLen = 5
)

// Kind letters, lowercase. None has no letter.
var kindLetters = map[Kind]byte{
	Pawn:   'p',
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
	King:   'k',
}

// SquareToAlgebraic converts a square to its algebraic name (e.g. "e4").
func SquareToAlgebraic(s Square) (string, error) {
	if !s.Valid() {
		return "", fmt.Errorf("square (%d, %d): %w", s.X, s.Y, errors.ErrInvalidPlace)
	}
	return string([]byte{FileChars[s.X], RankChars[s.Y]}), nil
}

// AlgebraicToSquare converts a two-character algebraic name to a square.
// Upper-case files are accepted.
func AlgebraicToSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return Square{}, fmt.Errorf("square %q must have 2 characters: %w", alg, errors.ErrInvalidNotation)
	}
	alg = strings.ToLower(alg)
	x := strings.IndexByte(FileChars, alg[0])
	y := strings.IndexByte(RankChars, alg[1])
	if x < 0 || y < 0 {
		return Square{}, fmt.Errorf("invalid square %q: %w", alg, errors.ErrInvalidNotation)
	}
	return Square{X: x, Y: y}, nil
}

// KindToLetter returns the lowercase letter of a kind, or ' ' for None.
func KindToLetter(k Kind) byte {
	if c, ok := kindLetters[k]; ok {
		return c
	}
	return ' '
}

// LetterToKind parses a kind letter (either case).
func LetterToKind(c byte) (Kind, error) {
	lower := c
	if c >= 'A' && c <= 'Z' {
		lower = c + ('a' - 'A')
	}
	for k, letter := range kindLetters {
		if letter == lower {
			return k, nil
		}
	}
	return None, fmt.Errorf("invalid piece letter %q: %w", c, errors.ErrInvalidNotation)
}

// IsPromotionKind reports whether a pawn may promote to k.
func IsPromotionKind(k Kind) bool {
	for _, p := range PromotionKinds {
		if p == k {
			return true
		}
	}
	return false
}

// FormatMove builds the long algebraic string of a move: origin, destination
// and, when promotion is not None, the promotion letter.
// Out-of-range squares render as "??".
func FormatMove(from, to Square, promotion Kind) string {
	var sb strings.Builder
	sb.Grow(MaxMoveLen)
	sb.WriteString(from.String())
	sb.WriteString(to.String())
	if promotion != None {
		sb.WriteByte(KindToLetter(promotion))
	}
	return sb.String()
}

// ParseMove parses a 4 or 5 character long algebraic move such as "e2e4" or "e7e8q".
// Parsing is case-insensitive.
func ParseMove(text string) (from, to Square, promotion Kind, err error) {
	if len(text) < MinMoveLen || len(text) > MaxMoveLen {
		return Square{}, Square{}, None,
			fmt.Errorf("move %q must have %d or %d characters: %w", text, MinMoveLen, MaxMoveLen, errors.ErrInvalidNotation)
	}
	text = strings.ToLower(text)

	if from, err = AlgebraicToSquare(text[0:2]); err != nil {
		return Square{}, Square{}, None, errors.Wrapf(err, "move %q", text)
	}
	if to, err = AlgebraicToSquare(text[2:4]); err != nil {
		return Square{}, Square{}, None, errors.Wrapf(err, "move %q", text)
	}

	promotion = None
	if len(text) == MaxMoveLen {
		promotion, err = LetterToKind(text[4])
		if err != nil {
			return Square{}, Square{}, None, errors.Wrapf(err, "move %q", text)
		}
		if !IsPromotionKind(promotion) {
			return Square{}, Square{}, None,
				fmt.Errorf("move %q: cannot promote to %v: %w", text, promotion, errors.ErrInvalidNotation)
		}
	}
	return from, to, promotion, nil
}
