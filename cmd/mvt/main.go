// Command mvt opens a single terminal window backed by a PTY, TELNET,
// or raw-socket session, depending on the flags given.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/kiidax/mvt/config"
	"github.com/kiidax/mvt/console"
	"github.com/kiidax/mvt/glsurface"
	"github.com/kiidax/mvt/session"
	"github.com/kiidax/mvt/terminal"
	"github.com/kiidax/mvt/worker"
)

func main() {
	cfgPath := flag.String("config", config.Path(), "path to mvt.toml")
	hostname := flag.String("host", "", "connect to host:port via TELNET instead of a local shell")
	port := flag.Int("port", 23, "TELNET port when -host is given")
	raw := flag.Bool("raw", false, "use a raw socket instead of TELNET negotiation when -host is given")
	flag.Parse()

	cfg, err := config.LoadFile(*cfgPath)
	if err != nil {
		log.Fatalf("mvt: load config: %v", err)
	}
	if *hostname != "" {
		cfg.Hostname = *hostname
		cfg.Port = *port
	}

	cons := console.New(cfg.Width, cfg.Height, cfg.SaveLines)
	term := terminal.New(cons)
	w := worker.New(term, cons, cfg.SaveLines)
	w.Logger = log.New(os.Stderr, "mvt: ", log.LstdFlags)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := connectSession(ctx, w, cfg, *raw); err != nil {
		log.Fatalf("mvt: connect: %v", err)
	}

	surfaceCfg := glsurface.DefaultConfig()
	surfaceCfg.Width = cfg.Width
	surfaceCfg.Height = cfg.Height
	surfaceCfg.Title = "mvt"
	surfaceCfg.FontPath = cfg.FontName
	surfaceCfg.FontSize = cfg.FontSize
	surf, err := glsurface.New(surfaceCfg)
	if err != nil {
		log.Fatalf("mvt: open surface: %v", err)
	}
	defer surf.Destroy()

	surf.Attach(term, cons, w)

	runLoop(surf, w)
}

// connectSession builds and pushes the session stack for cfg: a PTY
// running a login shell when no hostname is set, otherwise a TCP
// connection wrapped in TELNET negotiation unless raw is requested.
func connectSession(ctx context.Context, w *worker.Worker, cfg *config.Config, raw bool) error {
	if cfg.Hostname == "" {
		pty := &session.PTY{Width: cfg.Width, Height: cfg.Height}
		_, err := w.PushSession(ctx, pty)
		return err
	}

	sock := &session.Socket{Hostname: cfg.Hostname, Port: cfg.Port}
	if raw {
		_, err := w.PushSession(ctx, sock)
		return err
	}
	if _, err := w.PushSession(ctx, sock); err != nil {
		return err
	}
	tn := &session.Telnet{Inner: sock, TerminalType: cfg.TerminalType}
	_, err := w.PushSession(ctx, tn)
	return err
}

// runLoop pumps GLFW events, drains worker requests, and redraws until
// the window closes or the session reports EventClose.
func runLoop(surf *glsurface.Surface, w *worker.Worker) {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	defer w.Shutdown()

	for !surf.ShouldClose() {
		glsurface.PollEvents()
		w.Drain()

		select {
		case ev := <-w.Events:
			switch ev.Type {
			case worker.EventClose:
				return
			case worker.EventError:
				log.Printf("mvt: session error: %v", ev.Err)
				return
			}
		default:
		}

		surf.Render()
		<-ticker.C
	}
}
