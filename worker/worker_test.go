package worker

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/kiidax/mvt/console"
	"github.com/kiidax/mvt/keys"
	"github.com/kiidax/mvt/session"
	"github.com/kiidax/mvt/terminal"
)

// memSession is an in-memory session.Session backed by a pair of pipes,
// used to drive the worker's background tasks in tests without a real
// socket or PTY.
type memSession struct {
	inR  *io.PipeReader
	inW  *io.PipeWriter
	outR *io.PipeReader
	outW *io.PipeWriter

	resizes chan [2]int
}

func newMemSession() *memSession {
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()
	return &memSession{inR: inR, inW: inW, outR: outR, outW: outW, resizes: make(chan [2]int, 4)}
}

func (s *memSession) Connect(ctx context.Context) (session.ConnectResult, error) {
	return session.Connected, nil
}
func (s *memSession) Read(ctx context.Context, buf []byte) (int, error)  { return s.inR.Read(buf) }
func (s *memSession) Write(ctx context.Context, buf []byte) (int, error) { return s.outW.Write(buf) }
func (s *memSession) Shutdown() error {
	s.inW.Close()
	s.outR.Close()
	return nil
}
func (s *memSession) Close() error { return nil }
func (s *memSession) Resize(width, height int) error {
	select {
	case s.resizes <- [2]int{width, height}:
	default:
	}
	return nil
}

func drainUntil(t *testing.T, w *Worker, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w.Drain()
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestInboundBytesReachConsole(t *testing.T) {
	c := console.New(10, 2, 0)
	term := terminal.New(c)
	w := New(term, c, 0)
	sess := newMemSession()

	if _, err := w.PushSession(context.Background(), sess); err != nil {
		t.Fatalf("PushSession: %v", err)
	}

	go sess.inW.Write([]byte("hi"))

	drainUntil(t, w, func() bool {
		return c.GetCell(0, 0).Char == 'h' && c.GetCell(1, 0).Char == 'i'
	})
}

func TestOutboundKeystrokesReachSession(t *testing.T) {
	c := console.New(10, 2, 0)
	term := terminal.New(c)
	w := New(term, c, 0)
	sess := newMemSession()

	if _, err := w.PushSession(context.Background(), sess); err != nil {
		t.Fatalf("PushSession: %v", err)
	}

	term.KeyDown(false, keys.Code('q'))
	w.NotifyInputReady()

	buf := make([]byte, 1)
	done := make(chan struct{})
	var got byte
	go func() {
		sess.outR.Read(buf)
		got = buf[0]
		close(done)
	}()

	drainUntil(t, w, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	})
	if got != 'q' {
		t.Errorf("session received %q, want 'q'", got)
	}
}

func TestDispatchResizeWakesPendingReadAndPropagates(t *testing.T) {
	c := console.New(10, 2, 0)
	term := terminal.New(c)
	w := New(term, c, 0)
	sess := newMemSession()
	if _, err := w.PushSession(context.Background(), sess); err != nil {
		t.Fatalf("PushSession: %v", err)
	}

	// let the output task park its READ request
	drainUntil(t, w, func() bool {
		w.mu.Lock()
		defer w.mu.Unlock()
		return w.pending != nil
	})

	if err := w.DispatchResize(20, 5); err != nil {
		t.Fatalf("DispatchResize: %v", err)
	}

	select {
	case dims := <-sess.resizes:
		if dims[0] != 20 || dims[1] != 5 {
			t.Errorf("session resized to %v, want [20 5]", dims)
		}
	case <-time.After(time.Second):
		t.Fatal("session was not resized")
	}

	gotW, gotH := c.GetSize()
	if gotW != 20 || gotH != 5 {
		t.Errorf("console size = %dx%d, want 20x5", gotW, gotH)
	}
}

func TestShutdownClosesSessionStack(t *testing.T) {
	c := console.New(10, 2, 0)
	term := terminal.New(c)
	w := New(term, c, 0)
	sess := newMemSession()
	if _, err := w.PushSession(context.Background(), sess); err != nil {
		t.Fatalf("PushSession: %v", err)
	}

	done := make(chan struct{})
	go func() {
		w.Shutdown()
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w.Drain()
		select {
		case <-done:
			return
		default:
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("Shutdown did not complete")
}

func TestPushSessionRejectsFourthLayer(t *testing.T) {
	c := console.New(10, 2, 0)
	term := terminal.New(c)
	w := New(term, c, 0)
	for i := 0; i < maxSessions; i++ {
		if _, err := w.PushSession(context.Background(), newMemSession()); err != nil {
			t.Fatalf("PushSession %d: %v", i, err)
		}
	}
	if _, err := w.PushSession(context.Background(), newMemSession()); err == nil {
		t.Error("expected error pushing a fourth session layer")
	}
}
