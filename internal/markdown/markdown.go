// Package markdown converts post sources into HTML.
//
// The renderer is configured once: GitHub-flavored extensions (tables,
// strikethrough, autolinks, task lists), single newlines rendered as hard
// line breaks, raw HTML passed through, and no generated heading IDs.
// Output is deterministic for a given input.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

// Renderer turns Markdown text into an HTML fragment. It holds no per-call
// state and may be reused for every post in a build.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer returns a Renderer with the blog's fixed goldmark configuration.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				html.WithUnsafe(),
			),
		),
	}
}

// Render converts source to HTML.
func (r *Renderer) Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to render markdown").Build()
	}
	return buf.Bytes(), nil
}
