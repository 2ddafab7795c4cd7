// Package markup converts the lightweight Markdown used in battle transcripts
// into HTML for the web views.
package markup

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
)

type Renderer struct {
	md goldmark.Markdown
}

// New returns a renderer with goldmark's CommonMark defaults. Raw HTML in the
// source is omitted from the output.
func New() *Renderer {
	return &Renderer{md: goldmark.New()}
}

func (r *Renderer) HTML(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
