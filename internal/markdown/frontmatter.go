package markdown

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
)

// FrontMatter holds the optional metadata block at the top of a post.
// Empty fields mean "derive from content".
type FrontMatter struct {
	Title   string `yaml:"title" toml:"title" json:"title"`
	Summary string `yaml:"summary" toml:"summary" json:"summary"`
}

// SplitFrontMatter separates a leading front matter block from the Markdown
// body. Sources without a block, or whose leading block does not parse, are
// returned unchanged with ok set to false so that a post opening with a
// thematic break still renders as written.
func SplitFrontMatter(source []byte) (fm FrontMatter, body []byte, ok bool) {
	if !hasFrontMatterBlock(source) {
		return FrontMatter{}, source, false
	}

	var meta FrontMatter
	rest, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, source, false
	}
	return meta, bytes.TrimLeft(rest, "\r\n"), true
}

// hasFrontMatterBlock reports whether source opens with a delimiter line
// that is closed by the same delimiter on a later line.
func hasFrontMatterBlock(source []byte) bool {
	for _, delim := range []string{"---", "+++"} {
		lines := strings.Split(string(source), "\n")
		if len(lines) < 2 || !isDelimiterLine(lines[0], delim) {
			continue
		}
		for _, line := range lines[1:] {
			if isDelimiterLine(line, delim) {
				return true
			}
		}
	}
	return false
}

func isDelimiterLine(line, delim string) bool {
	return strings.TrimRight(line, " \t\r") == delim
}
