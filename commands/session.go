package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskdeck/llm"
	"taskdeck/storage"
	"taskdeck/tasks"
)

// Session is everything a command handler may touch. It is owned by the
// REPL loop, which runs one command at a time.
type Session struct {
	Store    *tasks.Store
	Out      io.Writer
	Logger   *slog.Logger
	Exporter storage.Exporter
	LLM      llm.Client

	// Confirm asks a yes/no question. Nil answers no.
	Confirm func(prompt string) bool

	// Pick chooses a quote index in [0, n). Nil always picks the first.
	Pick func(n int) int

	// LogLevel, when set, lets /debug switch debug logging at runtime
	LogLevel  *slog.LevelVar
	baseLevel slog.Level

	ctx    context.Context
	styles *styles
	usage  usageTotals
}

// NewSession creates a session writing to out. Logging is discarded until
// SetLogger is called.
func NewSession(store *tasks.Store, out io.Writer) *Session {
	return &Session{
		Store:  store,
		Out:    out,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ctx:    context.Background(),
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// SetLogger installs a logger whose level is controlled by level
func (s *Session) SetLogger(logger *slog.Logger, level *slog.LevelVar) {
	s.Logger = logger
	s.LogLevel = level
	if level != nil {
		s.baseLevel = level.Level()
	}
}

// SetRenderer replaces the renderer used for styled output. Terminals
// pass a renderer bound to the real stdout so color detection works.
func (s *Session) SetRenderer(r *lipgloss.Renderer) {
	s.styles = newStyles(r)
}

// SetContext sets the context long-running commands derive from
func (s *Session) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// Context returns the session context
func (s *Session) Context() context.Context {
	return s.ctx
}

// Printf writes formatted output
func (s *Session) Printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

// Println writes a line of output
func (s *Session) Println(args ...any) {
	fmt.Fprintln(s.Out, args...)
}

func (s *Session) confirm(prompt string) bool {
	if s.Confirm == nil {
		return false
	}
	return s.Confirm(prompt)
}

// IsYes reports whether a confirmation answer means yes
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
