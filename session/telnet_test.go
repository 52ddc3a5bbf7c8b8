package session

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"
)

// fakeInner is a minimal Session double that lets a test feed inbound
// bytes and observe outbound bytes independently.
type fakeInner struct {
	inR *io.PipeReader
	inW *io.PipeWriter

	mu  sync.Mutex
	out bytes.Buffer
}

func newFakeInner() *fakeInner {
	r, w := io.Pipe()
	return &fakeInner{inR: r, inW: w}
}

func (f *fakeInner) Connect(ctx context.Context) (ConnectResult, error) { return Connected, nil }
func (f *fakeInner) Read(ctx context.Context, buf []byte) (int, error) { return f.inR.Read(buf) }
func (f *fakeInner) Write(ctx context.Context, buf []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.out.Write(buf)
	return len(buf), nil
}
func (f *fakeInner) Shutdown() error       { f.inW.Close(); return nil }
func (f *fakeInner) Close() error          { return nil }
func (f *fakeInner) Resize(w, h int) error { return nil }

func (f *fakeInner) outBytes() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]byte(nil), f.out.Bytes()...)
}

func (f *fakeInner) outLen() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.Len()
}

func (f *fakeInner) outReset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.out.Reset()
}

func TestTelnetStripsIACSequences(t *testing.T) {
	inner := newFakeInner()
	tn := &Telnet{Inner: inner}

	go inner.inW.Write([]byte{'h', 'i', cmdIAC, cmdWill, optEcho, '!'})

	buf := make([]byte, 16)
	n, err := tn.Read(context.Background(), buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf[:n]) != "hi" {
		t.Errorf("first Read = %q, want %q", buf[:n], "hi")
	}

	n, err = tn.Read(context.Background(), buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf[:n]) != "!" {
		t.Errorf("second Read = %q, want %q", buf[:n], "!")
	}
}

func TestTelnetReplyToWillEcho(t *testing.T) {
	inner := newFakeInner()
	tn := &Telnet{Inner: inner}

	go inner.inW.Write([]byte{cmdIAC, cmdWill, optEcho})

	buf := make([]byte, 16)
	go tn.Read(context.Background(), buf)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if inner.outLen() >= 3 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	want := []byte{cmdIAC, cmdDo, optEcho}
	if !bytes.Equal(inner.outBytes(), want) {
		t.Errorf("reply = %v, want %v", inner.outBytes(), want)
	}
}

func TestTelnetEscapesOutboundIAC(t *testing.T) {
	inner := newFakeInner()
	tn := &Telnet{Inner: inner}
	tn.Write(context.Background(), []byte{'a', cmdIAC, 'b'})
	want := []byte{'a', cmdIAC, cmdIAC, 'b'}
	if !bytes.Equal(inner.outBytes(), want) {
		t.Errorf("outbound = %v, want %v", inner.outBytes(), want)
	}
}

func TestTelnetSendsNAWSAfterResize(t *testing.T) {
	inner := newFakeInner()
	tn := &Telnet{Inner: inner}

	go inner.inW.Write([]byte{cmdIAC, cmdDo, optNAWS})
	buf := make([]byte, 16)
	go tn.Read(context.Background(), buf)
	time.Sleep(10 * time.Millisecond)

	inner.outReset()
	tn.Resize(80, 24)

	want := []byte{cmdIAC, cmdSB, optNAWS, 0, 80, 0, 24, cmdIAC, cmdSE}
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if bytes.Equal(inner.outBytes(), want) {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Errorf("NAWS bytes = %v, want %v", inner.outBytes(), want)
}
