package relay

import (
	"net"
	"net/url"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// pipePeers connects a host and a guest over an in-memory connection.
func pipePeers(t *testing.T) (host, guest *Peer) {
	t.Helper()
	server, client := net.Pipe()

	type result struct {
		peer *Peer
		err  error
	}
	hosted := make(chan result, 1)
	go func() {
		p, err := Host(server)
		hosted <- result{p, err}
	}()

	u, err := url.Parse("ws://relay.test/")
	if err != nil {
		t.Fatal(err)
	}
	guest, err = Guest(client, u)
	if err != nil {
		t.Fatalf("Guest: %v", err)
	}
	r := <-hosted
	if r.err != nil {
		t.Fatalf("Host: %v", r.err)
	}

	t.Cleanup(func() {
		r.peer.Close()
		guest.Close()
	})
	return r.peer, guest
}

func TestHandshake_AssignsColours(t *testing.T) {
	host, guest := pipePeers(t)
	testutil.AssertEqual(t, host.Colour(), chess.White)
	testutil.AssertEqual(t, guest.Colour(), chess.Black)
}

func TestPeer_MoveRoundTrip(t *testing.T) {
	host, guest := pipePeers(t)
	sent := engine.NewPromotion(chess.Sq(1, 6), chess.Sq(0, 7), chess.Queen)

	errc := make(chan error, 1)
	go func() { errc <- host.SendMove(sent) }()

	got, err := guest.ReceiveMove()
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, <-errc)
	testutil.AssertEqual(t, got.Algebraic, "b7a8q")
}

func TestPeer_SendMoveSequence(t *testing.T) {
	host, guest := pipePeers(t)
	sent := []engine.MoveData{
		engine.NewPromotion(chess.Sq(1, 6), chess.Sq(0, 7), chess.Queen),
		engine.NewMove(chess.Sq(4, 1), chess.Sq(4, 3)),
		engine.NewPromotion(chess.Sq(7, 1), chess.Sq(7, 0), chess.Rook),
	}

	errc := make(chan error, 1)
	go func() {
		for _, m := range sent {
			if err := host.SendMove(m); err != nil {
				errc <- err
				return
			}
		}
		errc <- nil
	}()

	// Pooled buffers are reused between sends; each packet must stand alone.
	for _, want := range []string{"b7a8q", "e2e4", "h2h1r"} {
		got, err := guest.ReceiveMove()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got.Algebraic, want)
	}
	testutil.AssertNoError(t, <-errc)
	testutil.AssertErrorIs(t, host.SendMove(engine.NewMove(chess.Sq(9, 0), chess.Sq(0, 0))), errors.ErrInvalidPlace)
}

func TestMatch_Exchange(t *testing.T) {
	host, guest := pipePeers(t)
	white, black := NewMatch(host), NewMatch(guest)

	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6"}
	for i, text := range moves {
		mover, waiter := white, black
		if i%2 == 1 {
			mover, waiter = black, white
		}

		errc := make(chan error, 1)
		go func() {
			_, err := mover.Play(text)
			errc <- err
		}()

		got, err := waiter.AwaitMove()
		testutil.AssertNoError(t, err, "await %s", text)
		testutil.AssertNoError(t, <-errc, "play %s", text)
		testutil.AssertEqual(t, got.Algebraic, text)
	}

	testutil.AssertEqual(t, engine.MoveStrings(white.Board().History()), moves)
	testutil.AssertEqual(t, engine.MoveStrings(black.Board().History()), moves)
	testutil.AssertTrue(t, white.MyTurn())
	testutil.AssertFalse(t, black.MyTurn())
}

func TestMatch_RejectsIllegalRemoteMove(t *testing.T) {
	host, guest := pipePeers(t)
	black := NewMatch(guest)

	errc := make(chan error, 1)
	go func() { errc <- host.SendMove(engine.NewMove(chess.Sq(4, 1), chess.Sq(4, 4))) }()

	_, err := black.AwaitMove()
	testutil.AssertNoError(t, <-errc)
	if !errors.Is(err, errors.ErrIllegalMove) {
		t.Fatalf("AwaitMove err = %v, want ErrIllegalMove", err)
	}
	testutil.AssertEqual(t, black.Board().Ply(), 0)
}

func TestMatch_TurnOrder(t *testing.T) {
	host, guest := pipePeers(t)
	white, black := NewMatch(host), NewMatch(guest)

	_, err := black.Play("e7e5")
	testutil.AssertErrorIs(t, err, errors.ErrNotYourTurn, "black Play")
	_, err = white.AwaitMove()
	testutil.AssertErrorIs(t, err, errors.ErrNotYourTurn, "white AwaitMove")
	_, err = white.Play("e2e5")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove, "white Play")
}
