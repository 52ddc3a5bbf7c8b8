package session

import (
	"context"
	"testing"
	"time"
)

func TestPipeFeedThenRead(t *testing.T) {
	p := NewPipe()
	if _, err := p.Feed([]byte("hello")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	buf := make([]byte, 16)
	n, err := p.Read(context.Background(), buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf[:n]) != "hello" {
		t.Errorf("Read = %q, want %q", buf[:n], "hello")
	}
}

func TestPipeReadBlocksUntilFed(t *testing.T) {
	p := NewPipe()
	done := make(chan string, 1)
	go func() {
		buf := make([]byte, 16)
		n, err := p.Read(context.Background(), buf)
		if err != nil {
			done <- "error: " + err.Error()
			return
		}
		done <- string(buf[:n])
	}()

	time.Sleep(10 * time.Millisecond)
	select {
	case <-done:
		t.Fatal("Read returned before data was fed")
	default:
	}

	p.Feed([]byte("ok"))
	select {
	case got := <-done:
		if got != "ok" {
			t.Errorf("Read = %q, want %q", got, "ok")
		}
	case <-time.After(time.Second):
		t.Fatal("Read never returned after Feed")
	}
}

func TestPipeReadAfterShutdownReturnsError(t *testing.T) {
	p := NewPipe()
	p.Shutdown()
	buf := make([]byte, 4)
	_, err := p.Read(context.Background(), buf)
	if err == nil {
		t.Error("expected error reading from a shut-down pipe")
	}
}

func TestPipeWriteIsLoopback(t *testing.T) {
	p := NewPipe()
	p.Write(context.Background(), []byte("echo"))
	buf := make([]byte, 8)
	n, _ := p.Read(context.Background(), buf)
	if string(buf[:n]) != "echo" {
		t.Errorf("Read = %q, want %q", buf[:n], "echo")
	}
}
