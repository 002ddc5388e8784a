// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the engine's error taxonomy and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the engine's failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPlace indicates a square with a coordinate outside [0,7].
	ErrInvalidPlace = errors.New("invalid place")

	// ErrInvalidMove indicates an execution attempt that captures a king,
	// captures a piece of its own colour, or moves from an empty square.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidNotation indicates a malformed algebraic square or move string.
	ErrInvalidNotation = errors.New("invalid algebraic expression")

	// ErrInvalidOperation indicates an operation the board state cannot satisfy,
	// such as undoing more moves than have been made.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrIllegalMove indicates a well-formed move the generator does not offer.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNotYourTurn indicates a move by the side that is not to move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidPacket indicates a malformed relay packet.
	ErrInvalidPacket = errors.New("invalid packet")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the game, the ply at which the
// move was attempted and the move text. It supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	GameID   string // Game identifier (if known)
	PlyNum   int    // 1-based ply number of the attempted move (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports whether err matches target. It re-exports the standard library
// function so callers importing this package under the name errors keep it.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As re-exports the standard library errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
