// Package console prints leveled, optionally colored progress messages.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Logger writes one line per message to w. The zero value discards output.
type Logger struct {
	w      io.Writer
	styles styles
}

type styles struct {
	info    lipgloss.Style
	step    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
}

// New returns a Logger writing to w. Colors are only emitted when w is a
// terminal that supports them.
func New(w io.Writer) Logger {
	if w == nil {
		return Logger{}
	}
	r := lipgloss.NewRenderer(w)
	return Logger{
		w: w,
		styles: styles{
			info:    r.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
			step:    r.NewStyle().Foreground(lipgloss.Color("#888888")),
			success: r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
			warn:    r.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true),
			err:     r.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
		},
	}
}

// Discard returns a Logger that drops everything.
func Discard() Logger { return Logger{} }

// Info prints an informational message.
func (l Logger) Info(format string, args ...any) { l.write(l.styles.info, "info", format, args...) }

// Step reports a single filesystem action as an indented "  + path" line.
func (l Logger) Step(format string, args ...any) {
	if l.w == nil {
		return
	}
	_, _ = fmt.Fprintf(l.w, "  %s %s\n", l.styles.step.Render("+"), fmt.Sprintf(format, args...))
}

// Success prints a completion message.
func (l Logger) Success(format string, args ...any) { l.write(l.styles.success, "done", format, args...) }

// Warn prints a warning that does not stop the command.
func (l Logger) Warn(format string, args ...any) { l.write(l.styles.warn, "warn", format, args...) }

// Error prints a failure message.
func (l Logger) Error(format string, args ...any) { l.write(l.styles.err, "error", format, args...) }

func (l Logger) write(style lipgloss.Style, prefix, format string, args ...any) {
	if l.w == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(l.w, "%s %s\n", style.Render("["+prefix+"]"), msg)
}
