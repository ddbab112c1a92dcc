package tui

import "github.com/charmbracelet/glamour"

// renderMarkdown renders plan markdown for the terminal. On any renderer
// failure the raw text is returned unchanged, so a plan is never hidden
// behind a styling problem.
func renderMarkdown(text string, width int) string {
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}

	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}
