package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts content markdown into HTML for templates. Raw HTML in
// the source is dropped and replaced with an HTML comment.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
		),
	}
}

// Render converts src to HTML.
func (r *Renderer) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// MustRender is Render for template funcs; conversion errors fall back to
// the escaped source.
func (r *Renderer) MustRender(src string) template.HTML {
	out, err := r.Render(src)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return out
}
