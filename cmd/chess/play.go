package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

// console runs the interactive prompts over a line-oriented reader.
type console struct {
	in  *bufio.Scanner
	out io.Writer
	r   *render.Renderer
}

func newConsole(cfg *config.Config, in io.Reader, flip bool) *console {
	return &console{
		in:  bufio.NewScanner(in),
		out: cfg.OutputFile,
		r:   render.New(cfg.Render.Colour, cfg.Render.Flip != flip),
	}
}

// runPlay is the two-players-one-console game. It returns when input ends or
// a finished game is not restarted.
func runPlay(cfg *config.Config, in io.Reader) error {
	c := newConsole(cfg, in, false)
	for {
		again, err := c.playGame()
		if err != nil || !again {
			return err
		}
	}
}

func (c *console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(c.in.Text())), true
}

// announce prints the state of the side to move and reports whether the
// game is over.
func (c *console) announce(b *engine.Board) bool {
	turn, status := b.Result()
	if msg := render.Status(status, turn); msg != "" {
		fmt.Fprintln(c.out, msg)
	}
	return status.Over()
}

// playGame plays one game and reports whether another was requested.
func (c *console) playGame() (bool, error) {
	b := engine.NewBoard()
	for {
		if c.announce(b) {
			fmt.Fprintln(c.out, "Press P to play again!")
			line, ok := c.readLine()
			return ok && line == "p", nil
		}
		if err := c.r.Board(c.out, b); err != nil {
			return false, err
		}

		move, undo, ok := c.pickMove(b, true)
		switch {
		case !ok:
			return false, nil
		case undo:
			if err := b.UndoMove(1); err != nil {
				fmt.Fprintln(c.out, "There is nothing to undo.")
			}
		default:
			if err := b.MakeMove(move); err != nil {
				return false, err
			}
		}
	}
}

// pickMove prompts until the side to move picks one of its legal moves, or
// asks for an undo when allowUndo is set. ok is false when input ends.
func (c *console) pickMove(b *engine.Board, allowUndo bool) (move engine.MoveData, undo, ok bool) {
	turn := b.Turn()
	for {
		fmt.Fprintln(c.out)
		if allowUndo {
			fmt.Fprintf(c.out, "%v Turn. Enter piece to move (ex. e4) or write \"UNDO\" to undo:\n> ", turn)
		} else {
			fmt.Fprintf(c.out, "%v Turn. Enter piece to move (ex. e4):\n> ", turn)
		}

		line, ok := c.readLine()
		if !ok {
			return engine.MoveData{}, false, false
		}
		if allowUndo && line == "undo" {
			return engine.MoveData{}, true, true
		}

		moves, msg := selectPiece(b, line, turn)
		if msg != "" {
			fmt.Fprintln(c.out, msg)
			continue
		}

		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "Select move to make:")
		if err := c.r.MoveList(c.out, moves); err != nil {
			return engine.MoveData{}, false, false
		}
		fmt.Fprint(c.out, "> ")

		line, ok = c.readLine()
		if !ok {
			return engine.MoveData{}, false, false
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n >= len(moves) {
			continue
		}
		return moves[n], false, true
	}
}

// selectPiece returns the legal moves from square, or the reason the square
// cannot be played from.
func selectPiece(b *engine.Board, square string, turn chess.Colour) ([]engine.MoveData, string) {
	sq, err := chess.AlgebraicToSquare(square)
	if err != nil {
		return nil, "That is not a square on the board."
	}
	p, err := b.PieceAt(sq)
	if err != nil {
		return nil, "That is not a square on the board."
	}
	if p.IsEmpty() {
		return nil, "There is no piece in that spot."
	}
	if p.Colour != turn {
		return nil, "You can't move that piece!"
	}
	moves, err := b.LegalMoves(sq)
	if err != nil || len(moves) == 0 {
		return nil, "That piece can't move!"
	}
	return moves, ""
}
