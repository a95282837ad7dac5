package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	wishlog "github.com/charmbracelet/wish/logging"
	"go.uber.org/zap"

	"github.com/tomz197/asteroids-ufo/internal/audio"
	"github.com/tomz197/asteroids-ufo/internal/config"
	"github.com/tomz197/asteroids-ufo/internal/draw"
	"github.com/tomz197/asteroids-ufo/internal/logging"
	"github.com/tomz197/asteroids-ufo/internal/loop"
	"github.com/tomz197/asteroids-ufo/internal/score"
)

// Sessions with no key press for this long are disconnected.
const idleTimeout = 5 * time.Minute

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "asteroids-ssh: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.PathFromEnv("asteroids.toml"))
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	scorePath := cfg.Storage.Path
	if scorePath == "" {
		if scorePath, err = score.DefaultPath(cfg.Storage.Vendor, cfg.Storage.App); err != nil {
			return err
		}
	}
	store := score.NewFileStore(scorePath)

	workingDir, _ := os.Getwd()
	log.Info("ssh config",
		zap.String("host", cfg.SSH.Host),
		zap.String("port", cfg.SSH.Port),
		zap.String("host_key", cfg.SSH.HostKeyPath),
		zap.String("high_score_file", store.Path()),
		zap.String("working_dir", workingDir))

	arcade := &arcade{
		game:     cfg.Game,
		store:    store,
		log:      log,
		shutdown: make(chan struct{}),
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSH.Host, cfg.SSH.Port)),
		wish.WithMiddleware(
			arcade.middleware,
			activeterm.Middleware(),
			wishlog.Middleware(),
		),
		// TCP_NODELAY keeps key presses from being batched
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.SSH.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSH.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	log.Info("starting ssh server", zap.String("addr", s.Addr))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-done:
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	}
	log.Info("shutting down")

	// End every running game so it saves its high score.
	close(arcade.shutdown)
	arcade.wait(15 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// arcade runs one independent game per SSH session. The high score file
// is the only thing sessions share.
type arcade struct {
	game     config.GameConfig
	store    score.Store
	log      *zap.Logger
	shutdown chan struct{}
	sessions sync.WaitGroup
}

func (a *arcade) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}
		a.sessions.Add(1)
		defer a.sessions.Done()

		log := a.log.With(zap.String("user", sess.User()), zap.String("remote", sess.RemoteAddr().String()))
		log.Info("session started",
			zap.String("term", pty.Term),
			zap.Int("width", pty.Window.Width),
			zap.Int("height", pty.Window.Height))

		size := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				size.update(win.Width, win.Height)
			}
		}()

		game := loop.NewGame(loop.Options{
			Config: a.game,
			Store:  a.store,
			Audio:  audio.Nop{},
			Logger: log,
		})
		err := loop.Run(bufio.NewReader(sess), sess, game, loop.RunOptions{
			TermSize:    size.getSize,
			IdleTimeout: idleTimeout,
			Done:        a.shutdown,
		})
		switch {
		case errors.Is(err, loop.ErrIdle):
			fmt.Fprintln(sess, "Disconnected for inactivity.")
			log.Info("session idle")
		case err != nil:
			log.Warn("game error", zap.Error(err))
		}

		log.Info("session ended", zap.Uint32("high_score", game.HighScore()))
		next(sess)
	}
}

// wait blocks until every session has ended or timeout passes.
func (a *arcade) wait(timeout time.Duration) {
	finished := make(chan struct{})
	go func() {
		a.sessions.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(timeout):
		a.log.Warn("sessions still running at shutdown")
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
