// Package chess provides core chess types and the algebraic notation codec.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (pawn direction along ranks).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind represents the kind of a chess piece.
type Kind int

const (
	None Kind = iota // Empty square
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// String returns the name of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [...]Kind{Queen, Rook, Bishop, Knight}

// Piece is the occupant of a square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the empty-square sentinel. Its colour carries no meaning.
var NoPiece = Piece{Kind: None}

// NewPiece creates a piece of the given kind and colour.
func NewPiece(kind Kind, colour Colour) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(kind, White)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(kind, Black)
}

// IsEmpty reports whether the piece is the empty sentinel.
func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// IsEnemyOf reports whether p is a piece of the opposite colour.
// Empty squares are never enemies.
func (p Piece) IsEnemyOf(c Colour) bool {
	return p.Kind != None && p.Colour != c
}

// String returns e.g. "White Knight", or "None" for an empty square.
func (p Piece) String() string {
	if p.Kind == None {
		return "None"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square is a board coordinate: X is the file (a-h as 0-7), Y the rank (1-8 as 0-7).
type Square struct {
	X int
	Y int
}

// Sq is shorthand for Square{X: x, Y: y}.
func Sq(x, y int) Square {
	return Square{X: x, Y: y}
}

// Valid reports whether both coordinates are in [0,7].
func (s Square) Valid() bool {
	return s.X >= 0 && s.X < BoardSize && s.Y >= 0 && s.Y < BoardSize
}

// Add returns the square offset by (dx, dy). The result may be invalid.
func (s Square) Add(dx, dy int) Square {
	return Square{X: s.X + dx, Y: s.Y + dy}
}

// String returns the algebraic name of the square, or "??" when out of range.
func (s Square) String() string {
	alg, err := SquareToAlgebraic(s)
	if err != nil {
		return "??"
	}
	return alg
}

// HomeRank returns the back rank index of a colour.
func HomeRank(c Colour) int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the starting rank index of a colour's pawns.
func PawnRank(c Colour) int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the farthest rank index for a colour's pawns.
func PromotionRank(c Colour) int {
	return HomeRank(c.Opposite())
}
