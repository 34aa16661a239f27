package posts

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// NoSummary is used when the rendered post contains no paragraph.
const NoSummary = "No summary available"

var headingMarker = regexp.MustCompile(`^#+(?:\s+|$)`)

// Metadata is what the index page shows for a post.
type Metadata struct {
	Title   string
	Summary string
}

// Extract derives a post's title from its Markdown source and its summary
// from the rendered HTML. It never fails; degenerate inputs fall back to an
// empty title or NoSummary.
func Extract(source, rendered []byte) Metadata {
	return Metadata{
		Title:   ExtractTitle(source),
		Summary: ExtractSummary(rendered),
	}
}

// ExtractTitle returns the first line of source with any leading run of '#'
// heading markers (and the whitespace after them) removed. A line without
// markers is used as is.
func ExtractTitle(source []byte) string {
	text := strings.TrimPrefix(string(source), "\ufeff")
	line, _, _ := strings.Cut(text, "\n")
	line = strings.TrimRight(line, " \t\r")
	return headingMarker.ReplaceAllString(line, "")
}

// ExtractSummary returns the inner HTML of the first <p> element in rendered,
// byte for byte, or NoSummary when there is none. The document is tokenized
// rather than split on tag text, so "<p>" appearing escaped inside code or
// attribute values is never mistaken for a paragraph.
func ExtractSummary(rendered []byte) string {
	z := html.NewTokenizer(bytes.NewReader(rendered))
	depth := 0
	var inner bytes.Buffer

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if depth > 0 {
				// Unterminated paragraph: everything up to the end of input.
				return inner.String()
			}
			return NoSummary
		}

		isParagraph := false
		if tt == html.StartTagToken || tt == html.EndTagToken {
			name, _ := z.TagName()
			isParagraph = string(name) == "p"
		}

		switch {
		case tt == html.StartTagToken && isParagraph:
			depth++
			if depth == 1 {
				continue
			}
		case tt == html.EndTagToken && isParagraph && depth > 0:
			depth--
			if depth == 0 {
				return inner.String()
			}
		}

		if depth > 0 {
			inner.Write(z.Raw())
		}
	}
}
