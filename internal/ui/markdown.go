package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWrapWidth is the word wrap width used when the terminal width is
// unknown.
const DefaultWrapWidth = 80

// noMarginStyle removes document margins.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer renders markdown for the terminal.
type Renderer struct {
	renderer *glamour.TermRenderer
}

// NewRenderer creates a markdown renderer with the given wrap width and
// style ("dark" or "light", default "dark"). A fixed style avoids the
// terminal background query that auto style performs.
func NewRenderer(width int, style string) (*Renderer, error) {
	if style == "" {
		style = "dark"
	}
	if width <= 0 {
		width = DefaultWrapWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Renderer{renderer: r}, nil
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
