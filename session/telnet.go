package session

import (
	"bytes"
	"context"
	"sync"
)

// Telnet command and option bytes, named after RFC 854/855/1073 and the
// constants the reference driver's telnet.c layer defines.
const (
	cmdSE   = 240
	cmdSB   = 250
	cmdWill = 251
	cmdWont = 252
	cmdDo   = 253
	cmdDont = 254
	cmdIAC  = 255
)

const (
	optEcho            = 1
	optSuppressGoAhead = 3
	optTerminalType    = 24
	optNAWS            = 31
)

const (
	sbSend = 1
	sbIs   = 0
)

type telnetState int

const (
	tnNormal telnetState = iota
	tnIAC
	tnNegotiate // byte after WILL/WONT/DO/DONT
	tnSB
	tnSBData
	tnSBIAC
)

// Telnet layers RFC 854 option negotiation and NAWS window-size
// notification over an inner byte-stream Session (typically a Socket).
// It is meant to be pushed onto a Worker's session stack on top of the
// transport it negotiates over.
type Telnet struct {
	Inner        Session
	TerminalType string // default "xterm" if empty

	mu          sync.Mutex
	state       telnetState
	negCmd      byte
	sbBuf       []byte
	nawsEnabled bool
	width       int
	height      int
}

func (t *Telnet) Connect(ctx context.Context) (ConnectResult, error) {
	return t.Inner.Connect(ctx)
}

// Read strips negotiation sequences from the inner stream, replying to
// them inline, and returns only the plain data bytes.
func (t *Telnet) Read(ctx context.Context, buf []byte) (int, error) {
	raw := make([]byte, len(buf))
	for {
		n, err := t.Inner.Read(ctx, raw)
		if n > 0 {
			out := t.filter(raw[:n])
			if len(out) > 0 {
				m := copy(buf, out)
				return m, nil
			}
		}
		if err != nil {
			return 0, err
		}
	}
}

func (t *Telnet) filter(data []byte) []byte {
	var out bytes.Buffer
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, b := range data {
		switch t.state {
		case tnNormal:
			if b == cmdIAC {
				t.state = tnIAC
			} else {
				out.WriteByte(b)
			}
		case tnIAC:
			switch b {
			case cmdWill, cmdWont, cmdDo, cmdDont:
				t.negCmd = b
				t.state = tnNegotiate
			case cmdSB:
				t.sbBuf = t.sbBuf[:0]
				t.state = tnSB
			case cmdIAC:
				out.WriteByte(cmdIAC)
				t.state = tnNormal
			default:
				t.state = tnNormal
			}
		case tnNegotiate:
			t.respondLocked(t.negCmd, b)
			t.state = tnNormal
		case tnSB:
			if b == cmdIAC {
				t.state = tnSBIAC
			} else {
				t.sbBuf = append(t.sbBuf, b)
			}
		case tnSBIAC:
			if b == cmdSE {
				t.handleSubnegotiationLocked()
				t.state = tnNormal
			} else if b == cmdIAC {
				t.sbBuf = append(t.sbBuf, cmdIAC)
				t.state = tnSB
			} else {
				t.state = tnSB
			}
		}
	}
	return out.Bytes()
}

func (t *Telnet) respondLocked(cmd byte, opt byte) {
	var reply [3]byte
	reply[0] = cmdIAC
	switch cmd {
	case cmdWill:
		if opt == optEcho || opt == optSuppressGoAhead {
			reply[1] = cmdDo
		} else {
			reply[1] = cmdDont
		}
	case cmdDo:
		switch opt {
		case optNAWS:
			reply[1] = cmdWill
			t.nawsEnabled = true
		case optTerminalType:
			reply[1] = cmdWill
		default:
			reply[1] = cmdWont
		}
	case cmdDont:
		reply[1] = cmdWont
	case cmdWont:
		reply[1] = cmdDont
	}
	reply[2] = opt
	go t.Inner.Write(context.Background(), reply[:])
	if cmd == cmdDo && opt == optNAWS && t.width > 0 {
		go t.sendNAWS()
	}
}

func (t *Telnet) handleSubnegotiationLocked() {
	if len(t.sbBuf) >= 2 && t.sbBuf[0] == optTerminalType && t.sbBuf[1] == sbSend {
		name := t.TerminalType
		if name == "" {
			name = "xterm"
		}
		msg := append([]byte{cmdIAC, cmdSB, optTerminalType, sbIs}, []byte(name)...)
		msg = append(msg, cmdIAC, cmdSE)
		go t.Inner.Write(context.Background(), msg)
	}
}

func (t *Telnet) sendNAWS() {
	w, h := t.width, t.height
	msg := []byte{
		cmdIAC, cmdSB, optNAWS,
		byte(w >> 8), byte(w),
		byte(h >> 8), byte(h),
		cmdIAC, cmdSE,
	}
	t.Inner.Write(context.Background(), msg)
}

// Write escapes any literal 0xFF bytes (IAC) in outbound data, per RFC
// 854, and forwards the result unchanged otherwise.
func (t *Telnet) Write(ctx context.Context, buf []byte) (int, error) {
	if bytes.IndexByte(buf, cmdIAC) < 0 {
		return t.Inner.Write(ctx, buf)
	}
	escaped := make([]byte, 0, len(buf)+4)
	for _, b := range buf {
		escaped = append(escaped, b)
		if b == cmdIAC {
			escaped = append(escaped, cmdIAC)
		}
	}
	n, err := t.Inner.Write(ctx, escaped)
	if n >= len(buf) {
		n = len(buf)
	}
	return n, err
}

func (t *Telnet) Resize(width, height int) error {
	t.mu.Lock()
	t.width, t.height = width, height
	enabled := t.nawsEnabled
	t.mu.Unlock()
	if enabled {
		t.sendNAWS()
	}
	return t.Inner.Resize(width, height)
}

func (t *Telnet) Shutdown() error { return t.Inner.Shutdown() }
func (t *Telnet) Close() error    { return t.Inner.Close() }
