package formatter

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styler colours text with lipgloss. The renderer is pinned to a true-colour
// profile: whether colours are wanted at all is decided by Config.Colors,
// not by sniffing the process's stdout.
type styler struct {
	r *lipgloss.Renderer
}

func newStyler() *styler {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return &styler{r: r}
}

func (s *styler) render(color, text string) string {
	return s.r.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}
