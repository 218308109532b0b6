package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"
)

const shutdownGrace = 10 * time.Second

type sessionIDKey struct{}

// SSHServerConfig configures the rps SSH server.
type SSHServerConfig struct {
	Address string

	// HostKeyPath defaults to ~/.rps/host_key; wish generates the key
	// on first start.
	HostKeyPath string

	IdleTimeout time.Duration

	// Session is the template for every connection. Width, Height and
	// Logger are filled per session.
	Session Settings
}

// DefaultSSHServerConfig returns the listen address and idle timeout used
// when no flags are given.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the setup and match screens over SSH. Each connection
// runs its own matches.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer builds the wish server. A nil logger logs to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "rps-ssh",
		})
	}

	hostKey, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{config: cfg, logger: logger}

	// Middlewares run last to first: tracking wraps the program.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKey),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.programFor),
			s.trackSession,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create ssh server: %w", err)
	}
	s.server = server
	return s, nil
}

func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".rps", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("create host key directory: %w", err)
	}
	return path, nil
}

// trackSession tags the connection with an ID and logs its lifetime.
func (s *SSHServer) trackSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.NewString()
		sess.Context().SetValue(sessionIDKey{}, id)

		l := s.logger.With("session", id, "user", sess.User())
		l.Info("session started", "remote", sess.RemoteAddr().String())
		start := time.Now()
		next(sess)
		l.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

func (s *SSHServer) programFor(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "rps needs an interactive terminal, try: ssh -t")
		return nil, nil
	}

	id, _ := sess.Context().Value(sessionIDKey{}).(string)
	if id == "" {
		id = uuid.NewString()
	}

	settings := s.config.Session
	settings.Width = pty.Window.Width
	settings.Height = pty.Window.Height
	settings.Logger = s.logger.With("session", id, "user", sess.User())

	return NewSessionModel(settings), []tea.ProgramOption{tea.WithAltScreen()}
}

// ListenAndServe blocks until ctx is done or the listener fails, then
// shuts the server down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("listening", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve ssh: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
