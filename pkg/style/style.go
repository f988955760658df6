// Package style provides semantic terminal styling for help output using lipgloss.
//
// Styling is applied only when the destination is a terminal and the NO_COLOR environment
// variable is unset. Otherwise every helper returns its input unchanged.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Styler renders text for a single output stream.
type Styler struct {
	enabled bool

	header lipgloss.Style
	info   lipgloss.Style
	muted  lipgloss.Style
}

// New returns a Styler for w. Styling is enabled only if w is a terminal and NO_COLOR is unset.
func New(w io.Writer) *Styler {
	return NewWithEnabled(w, isTerminal(w) && os.Getenv("NO_COLOR") == "")
}

// NewWithEnabled returns a Styler for w with styling forced on or off.
func NewWithEnabled(w io.Writer, enabled bool) *Styler {
	s := &Styler{enabled: enabled}
	if !enabled {
		return s
	}
	r := lipgloss.NewRenderer(w)
	// Use the ANSI 256-color palette regardless of what the renderer detects.
	r.SetColorProfile(termenv.ANSI256)
	s.header = r.NewStyle().Bold(true)
	s.info = r.NewStyle().Foreground(lipgloss.Color("6"))
	s.muted = r.NewStyle().Foreground(lipgloss.Color("245"))
	return s
}

// Enabled returns whether styling is applied.
func (s *Styler) Enabled() bool {
	return s != nil && s.enabled
}

// Header styles section headers.
func (s *Styler) Header(text string) string {
	if !s.Enabled() {
		return text
	}
	return s.header.Render(text)
}

// Info styles names the user can type, such as commands and flags.
func (s *Styler) Info(text string) string {
	if !s.Enabled() {
		return text
	}
	return s.info.Render(text)
}

// Muted styles secondary information.
func (s *Styler) Muted(text string) string {
	if !s.Enabled() {
		return text
	}
	return s.muted.Render(text)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
