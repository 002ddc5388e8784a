// Package relay exchanges moves between two peers over a websocket link.
//
// A packet is a short byte sequence whose first byte is an opcode:
//
//	[OpWelcome, guestColour]                   host -> guest, after connecting
//	[OpWelcomeReceived]                        guest -> host
//	[OpMakeMove, fromX, fromY, toX, toY(, k)]  either way; k is the promotion kind
package relay

import (
	"fmt"

	"github.com/valyala/bytebufferpool"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Opcodes. The host's welcome and the guest's acknowledgement share a code;
// the direction tells them apart.
const (
	OpWelcome         byte = 0
	OpWelcomeReceived byte = 0
	OpMakeMove        byte = 1
)

const (
	movePacketLen          = 5
	promotionMovePacketLen = 6
)

// bufPool holds the outgoing move packets of SendMove.
var bufPool bytebufferpool.Pool

// EncodeMove builds the packet of a move.
func EncodeMove(m engine.MoveData) ([]byte, error) {
	return AppendMove(nil, m)
}

// AppendMove appends the packet of a move to dst. On error dst is returned
// unchanged.
func AppendMove(dst []byte, m engine.MoveData) ([]byte, error) {
	if !m.From.Valid() || !m.To.Valid() {
		return dst, fmt.Errorf("encode %s: %w", m, errors.ErrInvalidPlace)
	}
	dst = append(dst, OpMakeMove,
		byte(m.From.X), byte(m.From.Y),
		byte(m.To.X), byte(m.To.Y))
	if m.Promotion != chess.None {
		dst = append(dst, byte(m.Promotion))
	}
	return dst, nil
}

// DecodeMove parses a move packet. The result is an untrusted move.
func DecodeMove(p []byte) (engine.MoveData, error) {
	if len(p) != movePacketLen && len(p) != promotionMovePacketLen {
		return engine.MoveData{}, fmt.Errorf("move packet of %d bytes: %w", len(p), errors.ErrInvalidPacket)
	}
	if p[0] != OpMakeMove {
		return engine.MoveData{}, fmt.Errorf("opcode %d is not a move: %w", p[0], errors.ErrInvalidPacket)
	}

	from := chess.Sq(int(p[1]), int(p[2]))
	to := chess.Sq(int(p[3]), int(p[4]))
	if !from.Valid() || !to.Valid() {
		return engine.MoveData{}, fmt.Errorf("move packet %v: %w", p, errors.ErrInvalidPacket)
	}

	promotion := chess.None
	if len(p) == promotionMovePacketLen {
		promotion = chess.Kind(p[5])
		if !chess.IsPromotionKind(promotion) {
			return engine.MoveData{}, fmt.Errorf("promotion kind %d: %w", p[5], errors.ErrInvalidPacket)
		}
	}
	return engine.NewPromotion(from, to, promotion), nil
}

// EncodeWelcome builds the host's greeting, telling the guest its colour.
func EncodeWelcome(guest chess.Colour) []byte {
	return []byte{OpWelcome, byte(guest)}
}

// DecodeWelcome parses the host's greeting.
func DecodeWelcome(p []byte) (chess.Colour, error) {
	if len(p) != 2 || p[0] != OpWelcome || p[1] > byte(chess.White) {
		return chess.Black, fmt.Errorf("welcome packet %v: %w", p, errors.ErrInvalidPacket)
	}
	return chess.Colour(p[1]), nil
}

// EncodeWelcomeReceived builds the guest's acknowledgement.
func EncodeWelcomeReceived() []byte {
	return []byte{OpWelcomeReceived}
}

// DecodeWelcomeReceived checks the guest's acknowledgement.
func DecodeWelcomeReceived(p []byte) error {
	if len(p) != 1 || p[0] != OpWelcomeReceived {
		return fmt.Errorf("acknowledgement %v: %w", p, errors.ErrInvalidPacket)
	}
	return nil
}
