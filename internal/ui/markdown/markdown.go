// Package markdown renders task notes for the terminal.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
)

// Renderer turns markdown into styled terminal text. Renderers are cached per
// wrap width; plain text is returned if glamour fails.
type Renderer struct {
	byWidth map[int]*glamour.TermRenderer
}

// NewRenderer creates a Renderer
func NewRenderer() *Renderer {
	return &Renderer{byWidth: make(map[int]*glamour.TermRenderer)}
}

// Render renders md wrapped to width
func (r *Renderer) Render(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	tr, err := r.renderer(width)
	if err != nil {
		return md
	}
	out, err := tr.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func (r *Renderer) renderer(width int) (*glamour.TermRenderer, error) {
	if tr, ok := r.byWidth[width]; ok {
		return tr, nil
	}

	s := glamourstyles.DarkStyleConfig
	s.Document.Margin = uintPtr(0)
	s.H1.Prefix = ""
	s.H2.Prefix = ""
	s.H3.Prefix = ""
	s.H4.Prefix = ""
	s.H5.Prefix = ""
	s.H6.Prefix = ""

	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(s),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.byWidth[width] = tr
	return tr, nil
}

func uintPtr(u uint) *uint { return &u }
