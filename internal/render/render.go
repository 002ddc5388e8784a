// Package render draws boards and move lists as text for the console.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const (
	header    = "    A   B   C   D   E   F   G   H"
	topEdge   = "  ┏━━━┳━━━┳━━━┳━━━┳━━━┳━━━┳━━━┳━━━┓"
	separator = "  ┣━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━┫"
	bottom    = "  ┗━━━┻━━━┻━━━┻━━━┻━━━┻━━━┻━━━┻━━━┛"
)

// Renderer writes boards as a boxed grid with rank labels on both sides.
type Renderer struct {
	// Colour styles white pieces bright white and black pieces dark gray.
	Colour bool
	// Flip draws the board from Black's side.
	Flip bool

	white color.Style
	black color.Style
}

// New returns a renderer.
func New(colour, flip bool) *Renderer {
	return &Renderer{
		Colour: colour,
		Flip:   flip,
		white:  color.New(color.FgLightWhite, color.OpBold),
		black:  color.New(color.FgDarkGray),
	}
}

// Board writes the grid of b to w.
func (r *Renderer) Board(w io.Writer, b *engine.Board) error {
	bw := bufio.NewWriter(w)

	files := header
	if r.Flip {
		files = reverseFiles(header)
	}
	fmt.Fprintln(bw, files)
	fmt.Fprintln(bw, topEdge)

	for row := 0; row < chess.BoardSize; row++ {
		y := chess.BoardSize - 1 - row
		if r.Flip {
			y = row
		}
		if row != 0 {
			fmt.Fprintln(bw, separator)
		}
		fmt.Fprintf(bw, "%d ┃", y+1)
		for col := 0; col < chess.BoardSize; col++ {
			x := col
			if r.Flip {
				x = chess.BoardSize - 1 - col
			}
			p, _ := b.PieceAt(chess.Sq(x, y))
			fmt.Fprintf(bw, " %s ┃", r.piece(p))
		}
		fmt.Fprintf(bw, " %d\n", y+1)
	}

	fmt.Fprintln(bw, bottom)
	fmt.Fprintln(bw, files)
	return bw.Flush()
}

// String returns the rendered board.
func (r *Renderer) String(b *engine.Board) string {
	var sb strings.Builder
	_ = r.Board(&sb, b)
	return sb.String()
}

func (r *Renderer) piece(p chess.Piece) string {
	letter := strings.ToUpper(string(chess.KindToLetter(p.Kind)))
	if !r.Colour || p.IsEmpty() {
		return letter
	}
	if p.Colour == chess.White {
		return r.white.Sprint(letter)
	}
	return r.black.Sprint(letter)
}

// MoveList writes moves numbered from 0, followed by the option to go back,
// numbered len(moves).
func (r *Renderer) MoveList(w io.Writer, moves []engine.MoveData) error {
	bw := bufio.NewWriter(w)
	for i, m := range moves {
		fmt.Fprintf(bw, "%d - %s\n", i, m.Algebraic)
	}
	fmt.Fprintf(bw, "%d - Select another piece.\n", len(moves))
	return bw.Flush()
}

// Status returns the announcement for status, or "" while the game is quiet.
// mover is the side whose position was classified.
func Status(status engine.GameStatus, mover chess.Colour) string {
	switch status {
	case engine.Checkmate:
		return fmt.Sprintf("Checkmate! %v wins!", mover.Opposite())
	case engine.Check:
		return "Check!"
	case engine.Stalemate:
		return "Stalemate! It's a draw!"
	}
	return ""
}

func reverseFiles(line string) string {
	return strings.Replace(line, "A   B   C   D   E   F   G   H", "H   G   F   E   D   C   B   A", 1)
}
