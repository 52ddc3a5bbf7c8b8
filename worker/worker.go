// Package worker bridges a single-threaded Console/Terminal pair to
// background session I/O. A host event loop (the rendering surface's
// main loop) calls Drain on every pump to service requests queued by
// the per-session input and output goroutines; no Console or Terminal
// method is ever called from those goroutines directly.
package worker

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/kiidax/mvt/console"
	"github.com/kiidax/mvt/session"
	"github.com/kiidax/mvt/terminal"
)

const maxSessions = 3
const readChunkSize = 512

// EventType classifies an asynchronous notification raised by the
// worker's background tasks for the host to act on (repaint, close the
// window, surface an error).
type EventType int

const (
	EventData EventType = iota
	EventClose
	EventError
)

// Event is delivered on Worker.Events. Err is set only for EventError.
type Event struct {
	Type EventType
	Err  error
}

// Worker owns the background input/output tasks that move bytes
// between a stack of Sessions and a Terminal, transcoding UTF-8 on the
// wire to the Terminal's code-point interface.
type Worker struct {
	mu sync.Mutex

	term      *terminal.Terminal
	cons      *console.Console
	saveLines int

	sessions []session.Session

	reqCh   chan *request
	pending *request // parked READ request awaiting input or resize

	resized      bool
	active       bool
	shuttingDown bool

	cancel context.CancelFunc
	wg     sync.WaitGroup

	Events chan Event
	Logger *log.Logger
}

// New creates a worker driving term/cons. saveLines is remembered so a
// later DispatchResize can preserve the scrollback depth.
func New(term *terminal.Terminal, cons *console.Console, saveLines int) *Worker {
	return &Worker{
		term:      term,
		cons:      cons,
		saveLines: saveLines,
		reqCh:     make(chan *request, 64),
		Events:    make(chan Event, 16),
	}
}

func (w *Worker) logf(format string, args ...interface{}) {
	if w.Logger != nil {
		w.Logger.Printf(format, args...)
	}
}

// PushSession connects s and makes it the active (topmost) transport.
// Up to three layers may be stacked (e.g. a TELNET session over a raw
// socket). The first successful push starts the background transcoding
// tasks; later pushes simply redirect them, since the tasks always
// resolve the current top session lazily.
func (w *Worker) PushSession(ctx context.Context, s session.Session) (session.ConnectResult, error) {
	res, err := s.Connect(ctx)
	if err != nil {
		return res, err
	}

	w.mu.Lock()
	if len(w.sessions) >= maxSessions {
		w.mu.Unlock()
		return session.Failed, fmt.Errorf("worker: session stack full (max %d)", maxSessions)
	}
	w.sessions = append(w.sessions, s)
	first := len(w.sessions) == 1
	w.mu.Unlock()

	if first {
		w.startTasks()
	}
	return res, nil
}

func (w *Worker) topSession() session.Session {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.sessions) == 0 {
		return nil
	}
	return w.sessions[len(w.sessions)-1]
}

func (w *Worker) startTasks() {
	ctx, cancel := context.WithCancel(context.Background())
	w.mu.Lock()
	w.cancel = cancel
	w.active = true
	w.mu.Unlock()

	w.wg.Add(2)
	go w.inputTask(ctx)
	go w.outputTask(ctx)
}

// submit hands req to the Console's owner thread and blocks until it is
// serviced by Drain, or the worker shuts down first.
func (w *Worker) submit(ctx context.Context, req *request) {
	w.mu.Lock()
	if w.shuttingDown {
		w.mu.Unlock()
		close(req.done)
		return
	}
	w.mu.Unlock()

	select {
	case w.reqCh <- req:
	case <-ctx.Done():
		close(req.done)
		return
	}
	select {
	case <-req.done:
	case <-ctx.Done():
	}
}

// Drain makes one opportunistic attempt to satisfy a parked READ, then
// services every request currently queued. The host calls this once per
// iteration of its own event loop; it never blocks.
func (w *Worker) Drain() {
	w.tryFulfillPendingRead()
	for {
		select {
		case req := <-w.reqCh:
			w.handle(req)
		default:
			return
		}
	}
}

func (w *Worker) handle(req *request) {
	switch req.typ {
	case reqWrite:
		w.term.Write(req.data)
		req.n = len(req.data)
		close(req.done)
	case reqRead:
		w.respondRead(req)
	case reqClose:
		w.respondClose(req)
	}
}

func (w *Worker) respondRead(req *request) {
	w.mu.Lock()
	if w.resized {
		w.resized = false
		w.mu.Unlock()
		req.n = 0
		req.resized = true
		close(req.done)
		return
	}
	w.mu.Unlock()

	data := w.cons.ReadInput(req.cap)
	if len(data) > 0 {
		req.data = data
		req.n = len(data)
		req.resized = false
		close(req.done)
		return
	}

	// No data yet: park the request. NotifyInputReady or the next
	// Drain call will complete it once data or a resize arrives.
	w.mu.Lock()
	w.pending = req
	w.mu.Unlock()
}

func (w *Worker) respondClose(req *request) {
	close(req.done)
	w.beginShutdown()
}

// tryFulfillPendingRead completes a parked READ if the console now has
// input, or if a resize landed since it was parked.
func (w *Worker) tryFulfillPendingRead() {
	w.mu.Lock()
	req := w.pending
	if req == nil {
		w.mu.Unlock()
		return
	}
	if w.resized {
		w.resized = false
		w.pending = nil
		w.mu.Unlock()
		req.n = 0
		req.resized = true
		close(req.done)
		return
	}
	w.mu.Unlock()

	if !w.cons.HasInput() {
		return
	}
	w.mu.Lock()
	if w.pending != req {
		w.mu.Unlock()
		return
	}
	w.pending = nil
	w.mu.Unlock()

	data := w.cons.ReadInput(req.cap)
	req.data = data
	req.n = len(data)
	req.resized = false
	close(req.done)
}

// NotifyInputReady wakes a parked READ immediately, rather than waiting
// for the next Drain call. Call this right after AppendInput (e.g. from
// a key-down handler) for low-latency echo-to-session turnaround.
func (w *Worker) NotifyInputReady() {
	w.tryFulfillPendingRead()
}

// DispatchResize reallocates the console for a new viewport size,
// forwards it to the active session, and wakes any parked READ so the
// output task observes the resize rather than stale data.
func (w *Worker) DispatchResize(width, height int) error {
	if err := w.cons.Resize(width, height, w.saveLines); err != nil {
		return err
	}
	w.mu.Lock()
	w.resized = true
	w.mu.Unlock()
	w.tryFulfillPendingRead()
	if sess := w.topSession(); sess != nil {
		return sess.Resize(width, height)
	}
	return nil
}

func (w *Worker) beginShutdown() {
	w.mu.Lock()
	if w.shuttingDown {
		w.mu.Unlock()
		return
	}
	w.shuttingDown = true
	pending := w.pending
	w.pending = nil
	cancel := w.cancel
	w.mu.Unlock()

	if pending != nil {
		pending.n = 0
		close(pending.done)
	}
	if cancel != nil {
		cancel()
	}
	if sess := w.topSession(); sess != nil {
		sess.Shutdown()
	}

	select {
	case w.Events <- Event{Type: EventClose}:
	default:
	}
}

// Shutdown stops the background tasks, shuts down and closes every
// layer of the session stack (topmost first), and waits for both tasks
// to exit.
func (w *Worker) Shutdown() {
	w.beginShutdown()
	w.wg.Wait()

	w.mu.Lock()
	stack := w.sessions
	w.sessions = nil
	w.mu.Unlock()

	for i := len(stack) - 1; i >= 0; i-- {
		if err := stack[i].Close(); err != nil {
			w.logf("worker: close session layer %d: %v", i, err)
		}
	}
}
