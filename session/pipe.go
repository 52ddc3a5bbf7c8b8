package session

import (
	"context"
	"sync"
)

const pipeBufferSize = 1024

// Pipe is an in-memory, loopback-style Session with no backing process
// or socket: bytes written to it are queued and handed back out again.
// It is primarily useful for tests and for embedding mvt as a scrollback
// pager over data the host already has in memory.
type Pipe struct {
	mu      sync.Mutex
	cond    *sync.Cond
	buf     []byte
	closed  bool
}

// NewPipe creates an empty, unconnected Pipe.
func NewPipe() *Pipe {
	p := &Pipe{}
	p.cond = sync.NewCond(&p.mu)
	return p
}

func (p *Pipe) Connect(ctx context.Context) (ConnectResult, error) {
	return Connected, nil
}

// Read blocks until data has been queued with Write/Feed, the pipe is
// closed, or ctx is cancelled.
func (p *Pipe) Read(ctx context.Context, buf []byte) (int, error) {
	stop := context.AfterFunc(ctx, func() {
		p.mu.Lock()
		p.cond.Broadcast()
		p.mu.Unlock()
	})
	defer stop()
	p.mu.Lock()
	for len(p.buf) == 0 && !p.closed {
		if ctx.Err() != nil {
			p.mu.Unlock()
			return 0, ctx.Err()
		}
		p.cond.Wait()
	}
	n := copy(buf, p.buf)
	p.buf = p.buf[n:]
	closed := p.closed && len(p.buf) == 0
	p.mu.Unlock()
	if n == 0 && closed {
		return 0, errClosed
	}
	return n, nil
}

// Write queues bytes for the other end to Feed into the Console; in a
// Pipe both directions share the same queue, making this a loopback.
func (p *Pipe) Write(ctx context.Context, buf []byte) (int, error) {
	return p.Feed(buf)
}

// Feed queues data as if it arrived from the far end, waking any
// blocked Read.
func (p *Pipe) Feed(buf []byte) (int, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return 0, errClosed
	}
	if len(p.buf)+len(buf) > pipeBufferSize {
		buf = buf[:pipeBufferSize-len(p.buf)]
	}
	p.buf = append(p.buf, buf...)
	p.mu.Unlock()
	p.cond.Broadcast()
	return len(buf), nil
}

func (p *Pipe) Shutdown() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()
	return nil
}

func (p *Pipe) Close() error { return p.Shutdown() }

func (p *Pipe) Resize(width, height int) error { return nil }
