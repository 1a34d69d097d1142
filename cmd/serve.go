package cmd

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	xssh "golang.org/x/crypto/ssh"

	"termrpg/assets"
	"termrpg/internal/config"
	"termrpg/internal/game"
	internalssh "termrpg/internal/ssh"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host games over SSH, one per connection",
	Long: `serve starts an SSH server. Every connection gets its own world and
character, named after the SSH user:

	ssh -t -p 2222 alice@localhost`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 2222, "SSH server port")
	serveCmd.Flags().String("key", "server_host_key", "path to the PEM-encoded host key (generated if absent)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, cat, err := loadSettings()
	if err != nil {
		return err
	}
	port, _ := cmd.Flags().GetInt("port")
	keyFile, _ := cmd.Flags().GetString("key")
	logger := newLogger(os.Stderr, cfg.LogLevel)

	signer, err := loadOrCreateHostKey(keyFile, logger)
	if err != nil {
		return err
	}

	h := &host{cfg: cfg, catalog: cat, log: logger, runLog: openRunLog(logger)}
	// Any PTY request and any authentication is accepted. Add
	// gossh.PublicKeyAuth or gossh.PasswordAuth options for real auth.
	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", port),
		Handler:     h.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	go func() {
		<-cmd.Context().Done()
		_ = srv.Close()
	}()

	logger.Info("ssh server listening", "port", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return err
	}
	return nil
}

// host runs one game per SSH connection. Only the catalog and the
// combat history file are shared.
type host struct {
	cfg      config.Config
	catalog  *assets.Catalog
	log      *slog.Logger
	runLog   *game.RunLog
	sessions atomic.Int64
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	name := sanitizeName(s.User())
	if name == "" {
		name = "Adventurer"
	}
	n := h.sessions.Add(1)
	logger := h.log.With("session", uuid.NewString(), "user", name, "remote", s.RemoteAddr().String())

	tty := internalssh.NewSessionTty(s, pty, winCh)
	screen, err := newSessionScreen(tty, sessionTerm(s.Environ()))
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	cfg := h.cfg
	cfg.PlayerName = name
	cfg.Seed += n // every connection gets its own world
	g, err := game.New(screen, game.Options{
		Config:  cfg,
		Catalog: h.catalog,
		Logger:  logger,
		RunLog:  h.runLog,
	})
	if err != nil {
		logger.Error("game setup failed", "error", err)
		return
	}

	logger.Info("player connected")
	if err := g.Run(s.Context()); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("game ended with error", "error", err)
	}
	logger.Info("player disconnected")
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// newSessionScreen creates a tcell screen backed by the SSH session.
// TERM must be set in the process environment before NewTerminfoScreenFromTty.
func newSessionScreen(tty tcell.Tty, term string) (tcell.Screen, error) {
	termMu.Lock()
	defer termMu.Unlock()
	_ = os.Setenv("TERM", term)
	return tcell.NewTerminfoScreenFromTty(tty)
}

// allowedTerms are the TERM values a client may select. Anything else
// falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// sessionTerm picks the terminal type from the session environment.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok {
			if allowedTerms[term] {
				return term
			}
			break
		}
	}
	return defaultTerm
}

// maxNameBytes bounds player names taken from the SSH user.
const maxNameBytes = 16

// sanitizeName strips control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == utf8.RuneError || unicode.IsControl(r) {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	pemBlock, err := xssh.MarshalPrivateKey(key, "termrpg server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		logger.Warn("could not save host key", "path", path, "error", err)
	}
	return signer, nil
}
