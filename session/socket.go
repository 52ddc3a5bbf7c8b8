package session

import (
	"context"
	"fmt"
	"net"
	"sync"
)

// Socket is a TCP transport, e.g. for driving mvt as a raw terminal
// client against a remote host. Resize is a no-op: plain TCP carries no
// notion of window geometry (see Telnet, which layers NAWS on top).
type Socket struct {
	Hostname string
	Port     int

	mu   sync.Mutex
	conn net.Conn
}

func (s *Socket) Connect(ctx context.Context) (ConnectResult, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", fmt.Sprintf("%s:%d", s.Hostname, s.Port))
	if err != nil {
		return Failed, fmt.Errorf("session: socket: dial %s:%d: %w", s.Hostname, s.Port, err)
	}
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	return Connected, nil
}

func (s *Socket) Read(ctx context.Context, buf []byte) (int, error) {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if dl, ok := ctx.Deadline(); ok {
		conn.SetReadDeadline(dl)
	}
	return conn.Read(buf)
}

func (s *Socket) Write(ctx context.Context, buf []byte) (int, error) {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	return conn.Write(buf)
}

func (s *Socket) Resize(width, height int) error { return nil }

func (s *Socket) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	if tc, ok := s.conn.(*net.TCPConn); ok {
		tc.CloseRead()
	}
	return nil
}

func (s *Socket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
