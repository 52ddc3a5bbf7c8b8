package worker

import (
	"context"
	"unicode/utf8"
)

const ioBufferSize = 4096

// inputTask reads raw bytes from the active session, decodes UTF-8 into
// code points, and submits them as WRITE requests for the Terminal to
// interpret. Incomplete trailing multi-byte sequences are carried over
// to the next read.
func (w *Worker) inputTask(ctx context.Context) {
	defer w.wg.Done()

	buf := make([]byte, ioBufferSize)
	var pending []byte

	for {
		sess := w.topSession()
		if sess == nil {
			return
		}
		n, err := sess.Read(ctx, buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			var runes []rune
			runes, pending = decodeUTF8(pending)
			if len(runes) > 0 {
				req := newRequest(reqWrite)
				req.data = runes
				w.submit(ctx, req)
			}
		}
		if err != nil {
			w.handleIOError(err)
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// outputTask repeatedly asks for whatever is in the console's
// type-ahead queue, encodes it as UTF-8, and writes it to the active
// session. A resize observed mid-wait is swallowed and the loop simply
// re-issues the request.
func (w *Worker) outputTask(ctx context.Context) {
	defer w.wg.Done()

	for {
		req := newRequest(reqRead)
		req.cap = readChunkSize
		w.submit(ctx, req)

		if ctx.Err() != nil {
			return
		}
		if req.resized {
			continue
		}
		if req.n == 0 {
			continue
		}

		sess := w.topSession()
		if sess == nil {
			return
		}
		encoded := encodeUTF8(req.data)
		if _, err := sess.Write(ctx, encoded); err != nil {
			w.handleIOError(err)
			return
		}
	}
}

func (w *Worker) handleIOError(err error) {
	w.logf("worker: session i/o: %v", err)
	select {
	case w.Events <- Event{Type: EventError, Err: err}:
	default:
	}
	w.beginShutdown()
}

// decodeUTF8 decodes every complete rune at the front of buf, returning
// the decoded runes and the undecoded (possibly incomplete) remainder.
func decodeUTF8(buf []byte) (runes []rune, rest []byte) {
	for len(buf) > 0 {
		if !utf8.FullRune(buf) {
			break
		}
		r, size := utf8.DecodeRune(buf)
		runes = append(runes, r)
		buf = buf[size:]
	}
	return runes, buf
}

func encodeUTF8(runes []rune) []byte {
	out := make([]byte, 0, len(runes)*utf8.UTFMax)
	var tmp [utf8.UTFMax]byte
	for _, r := range runes {
		n := utf8.EncodeRune(tmp[:], r)
		out = append(out, tmp[:n]...)
	}
	return out
}
