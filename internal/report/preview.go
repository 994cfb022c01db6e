package report

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Preview renders markdown for the terminal using a glamour style. "auto"
// picks a dark or light style from the terminal background.
func Preview(markdown, style string, width int) (string, error) {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
