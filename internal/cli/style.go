package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorResult = lipgloss.Color("#2CD7C7")
	colorError  = lipgloss.Color("#E4572E")
	colorMuted  = lipgloss.Color("#6C7A89")
)

// styles holds renderers bound to the session writer; a writer that is not a
// terminal gets plain text.
type styles struct {
	header lipgloss.Style
	prompt lipgloss.Style
	step   lipgloss.Style
	result lipgloss.Style
	err    lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)

	return styles{
		header: r.NewStyle().Bold(true).Foreground(colorAccent),
		prompt: r.NewStyle().Foreground(colorAccent),
		step:   r.NewStyle(),
		result: r.NewStyle().Bold(true).Foreground(colorResult),
		err:    r.NewStyle().Foreground(colorError),
		muted:  r.NewStyle().Foreground(colorMuted),
	}
}
