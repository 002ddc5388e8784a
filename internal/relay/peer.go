package relay

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"net/url"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Peer is one end of a websocket link carrying binary packets.
// Sends may be called concurrently with receives.
type Peer struct {
	conn   net.Conn
	rw     io.ReadWriter
	state  ws.State
	colour chess.Colour

	writeMu sync.Mutex
}

type readWriter struct {
	io.Reader
	io.Writer
}

func newPeer(conn net.Conn, br *bufio.Reader, state ws.State) *Peer {
	p := &Peer{conn: conn, rw: conn, state: state}
	if br != nil {
		// The dialer may have buffered frames sent right after the handshake.
		p.rw = readWriter{Reader: br, Writer: conn}
	}
	return p
}

// Host upgrades an accepted connection and greets the guest. The host plays
// White.
func Host(conn net.Conn) (*Peer, error) {
	if _, err := ws.Upgrade(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("upgrade: %w", err)
	}
	p := newPeer(conn, nil, ws.StateServerSide)
	p.colour = chess.White

	if err := p.send(EncodeWelcome(chess.Black)); err != nil {
		p.Close()
		return nil, err
	}
	reply, err := p.receive()
	if err == nil {
		err = DecodeWelcomeReceived(reply)
	}
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("handshake: %w", err)
	}
	return p, nil
}

// Guest performs the client side of the websocket handshake on conn and
// waits for the host's greeting.
func Guest(conn net.Conn, u *url.URL) (*Peer, error) {
	br, _, err := ws.Dialer{}.Upgrade(conn, u)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("upgrade: %w", err)
	}
	return greet(newPeer(conn, br, ws.StateClientSide))
}

func greet(p *Peer) (*Peer, error) {
	welcome, err := p.receive()
	if err == nil {
		p.colour, err = DecodeWelcome(welcome)
	}
	if err == nil {
		err = p.send(EncodeWelcomeReceived())
	}
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("handshake: %w", err)
	}
	return p, nil
}

// Listen waits on addr for one guest and returns the hosting peer.
// Cancelling ctx stops the wait.
func Listen(ctx context.Context, addr string) (*Peer, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	defer ln.Close()

	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()

	conn, err := ln.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return Host(conn)
}

// Dial connects to a host at a ws:// URL.
func Dial(ctx context.Context, rawURL string) (*Peer, error) {
	conn, br, _, err := ws.Dial(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", rawURL, err)
	}
	return greet(newPeer(conn, br, ws.StateClientSide))
}

// Colour returns the colour this peer plays.
func (p *Peer) Colour() chess.Colour {
	return p.colour
}

// SendMove sends a move packet, built in a pooled buffer.
func (p *Peer) SendMove(m engine.MoveData) error {
	buf := bufPool.Get()
	defer bufPool.Put(buf)

	var err error
	if buf.B, err = AppendMove(buf.B[:0], m); err != nil {
		return err
	}
	return p.send(buf.B)
}

// ReceiveMove blocks until a move packet arrives. The move is untrusted.
func (p *Peer) ReceiveMove() (engine.MoveData, error) {
	packet, err := p.receive()
	if err != nil {
		return engine.MoveData{}, err
	}
	return DecodeMove(packet)
}

// Close closes the underlying connection.
func (p *Peer) Close() error {
	return p.conn.Close()
}

func (p *Peer) send(packet []byte) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	return wsutil.WriteMessage(p.rw, p.state, ws.OpBinary, packet)
}

func (p *Peer) receive() ([]byte, error) {
	data, op, err := wsutil.ReadData(p.rw, p.state)
	if err != nil {
		return nil, err
	}
	if op != ws.OpBinary {
		return nil, fmt.Errorf("frame opcode %d: %w", op, errors.ErrInvalidPacket)
	}
	return data, nil
}
