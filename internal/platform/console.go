package platform

import (
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"
)

var successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))

// Console writes user-facing messages, styling them only on a color terminal.
type Console struct {
	w     io.Writer
	color bool
}

// NewConsole returns a Console writing to w.
// It respects NO_COLOR (https://no-color.org/), TERM=dumb, and non-TTY writers.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, color: colorEnabled(w)}
}

func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Success prints msg on its own line.
func (c *Console) Success(msg string) error {
	if c.color {
		msg = successStyle.Render(msg)
	}
	_, err := fmt.Fprintln(c.w, msg)
	return err
}
