// Package site composes the generated pages: one page per post, the index
// page and the shared stylesheet. Every function here is a pure mapping from
// its arguments to markup.
package site

import (
	"html/template"
	"net/url"
	"strings"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

// IndexFileName is the name of the generated index page.
const IndexFileName = "index.html"

// Composer renders pages for one site. It carries only configuration, so a
// single value can be shared by every call in a build.
type Composer struct {
	SiteTitle  string
	Lang       string
	Stylesheet string
	Mode       config.IndexMode
}

// NewComposer builds a Composer from the site and index configuration.
func NewComposer(cfg *config.Config) Composer {
	return Composer{
		SiteTitle:  cfg.Site.Title,
		Lang:       cfg.Site.Lang,
		Stylesheet: cfg.Site.Stylesheet,
		Mode:       cfg.Index.Mode,
	}
}

// PostPage is the input for a standalone post page. Summary and Content are
// rendered HTML and are embedded as is; Title is escaped.
type PostPage struct {
	Title   string
	Summary string
	Content string
}

// Entry is one post's item in the index list.
type Entry struct {
	Title      string
	Summary    string
	OutputName string
	Content    string // Embedded only in inline mode
}

type headData struct {
	Lang       string
	Title      string
	Stylesheet string
	SiteTitle  string
}

type postData struct {
	headData
	Summary template.HTML
	Content template.HTML
}

type entryData struct {
	Title   string
	Summary template.HTML
	Href    string
	Content template.HTML
}

type indexData struct {
	headData
	Entries template.HTML
	Inline  bool
}

// RenderPostPage produces a complete HTML document for one post, with a link
// back to the index page.
func (c Composer) RenderPostPage(p PostPage) (string, error) {
	return execute("post", postData{
		headData: c.head(p.Title),
		// #nosec G203 -- post HTML is rendered from the author's own Markdown.
		Summary: template.HTML(p.Summary),
		Content: template.HTML(withTrailingNewline(p.Content)),
	})
}

// RenderIndexEntry produces the index list item for a post. In link mode the
// title navigates to the post's page; in inline mode the title toggles the
// embedded content.
func (c Composer) RenderIndexEntry(e Entry) (string, error) {
	name := "entry-link"
	if c.Mode == config.IndexModeInline {
		name = "entry-inline"
	}
	return execute(name, entryData{
		Title: e.Title,
		// #nosec G203 -- post HTML is rendered from the author's own Markdown.
		Summary: template.HTML(e.Summary),
		Href:    pageHref(e.OutputName),
		Content: template.HTML(withTrailingNewline(e.Content)),
	})
}

// RenderIndexPage wraps the concatenated index entries in a complete document.
func (c Composer) RenderIndexPage(entries string) (string, error) {
	return execute("index", indexData{
		headData: c.head(c.SiteTitle),
		// #nosec G203 -- entries were produced by RenderIndexEntry.
		Entries: template.HTML(entries),
		Inline:  c.Mode == config.IndexModeInline,
	})
}

// RenderStylesheet returns the fixed stylesheet shared by every page.
func RenderStylesheet() string {
	return stylesheet
}

func (c Composer) head(title string) headData {
	return headData{
		Lang:       c.Lang,
		Title:      title,
		Stylesheet: c.Stylesheet,
		SiteTitle:  c.SiteTitle,
	}
}

func execute(name string, data any) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", errors.WrapError(err, errors.CategoryInternal, "failed to render page template").
			WithContext("template", name).
			Build()
	}
	return b.String(), nil
}

// pageHref turns an output file name into a relative URL. Characters that
// would otherwise start a query or fragment are escaped, and a name whose
// first segment holds a colon is prefixed with "./" so it is not read as a
// scheme.
func pageHref(name string) string {
	return (&url.URL{Path: name}).String()
}

func withTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
