package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// offset is a (file, rank) displacement.
type offset struct{ dx, dy int }

var (
	straightDirs = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	royalDirs    = append(append([]offset{}, straightDirs...), diagonalDirs...)
	knightJumps  = []offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// wants reports whether a destination holding target is produced under mode
// for a piece of colour c. Own pieces are never destinations.
func wants(target chess.Piece, c chess.Colour, mode KillMode) bool {
	switch {
	case target.IsEmpty():
		return mode <= 0
	case target.IsEnemyOf(c):
		return mode >= 0
	}
	return false
}

// slide walks from origin along dir until it leaves the board or meets a
// piece. An enemy piece ends the walk and is included as a capture.
func slide(b *Board, origin chess.Square, dir offset, mode KillMode) []chess.Square {
	c := b.piece(origin).Colour
	var out []chess.Square
	for sq := origin.Add(dir.dx, dir.dy); sq.Valid(); sq = sq.Add(dir.dx, dir.dy) {
		target := b.piece(sq)
		if wants(target, c, mode) {
			out = append(out, sq)
		}
		if !target.IsEmpty() {
			break
		}
	}
	return out
}

// step tests a single displacement from origin.
func step(b *Board, origin chess.Square, off offset, mode KillMode) (chess.Square, bool) {
	sq := origin.Add(off.dx, off.dy)
	if !sq.Valid() {
		return sq, false
	}
	return sq, wants(b.piece(sq), b.piece(origin).Colour, mode)
}

// isPathClear reports whether every square strictly between from and to on
// a shared rank is empty.
func isPathClear(b *Board, from, to chess.Square) bool {
	dir := sign(to.X - from.X)
	for x := from.X + dir; x != to.X; x += dir {
		if !b.squares[x][from.Y].IsEmpty() {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
