package session

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"strings"
	"sync"

	"github.com/creack/pty"
)

// PTY spawns a login shell behind a pseudo-terminal. Width/height are
// the initial window size; Connect starts the child process.
type PTY struct {
	Shell  string // empty selects the user's login shell
	Width  int
	Height int

	mu  sync.Mutex
	cmd *exec.Cmd
	f   *os.File

	exitedMu sync.Mutex
	exited   bool
}

func (p *PTY) Connect(ctx context.Context) (ConnectResult, error) {
	shell := p.Shell
	if shell == "" {
		shell = findShell()
	}

	u, err := user.Current()
	if err != nil {
		return Failed, fmt.Errorf("session: pty: lookup current user: %w", err)
	}

	cmd := exec.CommandContext(ctx, shell, "-i")
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"COLORTERM=truecolor",
		"HOME="+u.HomeDir,
		"USER="+u.Username,
		"SHELL="+shell,
	)
	cmd.Dir = u.HomeDir

	width, height := p.Width, p.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: uint16(width), Rows: uint16(height)})
	if err != nil {
		return Failed, fmt.Errorf("session: pty: start %s: %w", shell, err)
	}

	p.mu.Lock()
	p.cmd = cmd
	p.f = f
	p.mu.Unlock()

	go func() {
		cmd.Wait()
		p.exitedMu.Lock()
		p.exited = true
		p.exitedMu.Unlock()
	}()

	return Connected, nil
}

func findShell() string {
	if u, err := user.Current(); err == nil {
		if data, err := os.ReadFile("/etc/passwd"); err == nil {
			for _, line := range strings.Split(string(data), "\n") {
				fields := strings.Split(line, ":")
				if len(fields) >= 7 && fields[0] == u.Username {
					if _, err := os.Stat(fields[6]); err == nil {
						return fields[6]
					}
				}
			}
		}
	}
	for _, candidate := range []string{"/bin/bash", "/usr/bin/bash", "/bin/zsh", "/bin/sh"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "/bin/sh"
}

// Read and Write ignore ctx: the underlying os.File has no cancellation
// hook, so a caller that needs to unblock a pending Read must call
// Shutdown, which closes the descriptor.
func (p *PTY) Read(ctx context.Context, buf []byte) (int, error) {
	p.mu.Lock()
	f := p.f
	p.mu.Unlock()
	return f.Read(buf)
}

func (p *PTY) Write(ctx context.Context, buf []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.f.Write(buf)
}

func (p *PTY) Resize(width, height int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return pty.Setsize(p.f, &pty.Winsize{Cols: uint16(width), Rows: uint16(height)})
}

// HasExited reports whether the child shell has terminated.
func (p *PTY) HasExited() bool {
	p.exitedMu.Lock()
	defer p.exitedMu.Unlock()
	return p.exited
}

func (p *PTY) Shutdown() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cmd != nil && p.cmd.Process != nil {
		p.cmd.Process.Kill()
	}
	if p.f != nil {
		return p.f.Close()
	}
	return nil
}

func (p *PTY) Close() error { return p.Shutdown() }
