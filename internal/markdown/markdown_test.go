package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name     string
		source   string
		contains []string
		excludes []string
	}{
		{
			name:     "emphasis round trip",
			source:   "Some *quiet* words\n",
			contains: []string{"<em>quiet</em>"},
		},
		{
			name:     "heading without generated id",
			source:   "# Hello World\n",
			contains: []string{"<h1>Hello World</h1>"},
			excludes: []string{"id="},
		},
		{
			name:     "single newline is a hard break",
			source:   "first line\nsecond line\n",
			contains: []string{"first line<br>", "second line"},
		},
		{
			name:     "gfm table",
			source:   "| a | b |\n|---|---|\n| 1 | 2 |\n",
			contains: []string{"<table>", "<th>a</th>", "<td>2</td>"},
			excludes: []string{"<p>"},
		},
		{
			name:     "gfm strikethrough",
			source:   "~~gone~~\n",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:     "raw html passes through",
			source:   "<div class=\"note\">hi</div>\n",
			contains: []string{"<div class=\"note\">hi</div>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render([]byte(tt.source))
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, string(out), want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, string(out), unwanted)
			}
		})
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	r := NewRenderer()
	source := []byte("# Title\n\nA paragraph with **bold** and a [link](https://example.com).\n\n- one\n- two\n")

	first, err := r.Render(source)
	require.NoError(t, err)
	second, err := NewRenderer().Render(source)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSplitFrontMatter(t *testing.T) {
	t.Run("yaml block", func(t *testing.T) {
		src := "---\ntitle: Custom Title\nsummary: Short blurb\n---\n# Heading\n\nBody text.\n"
		fm, body, ok := SplitFrontMatter([]byte(src))
		require.True(t, ok)
		assert.Equal(t, "Custom Title", fm.Title)
		assert.Equal(t, "Short blurb", fm.Summary)
		assert.Equal(t, "# Heading\n\nBody text.\n", string(body))
	})

	t.Run("no block", func(t *testing.T) {
		src := "# Heading\n\nBody.\n"
		fm, body, ok := SplitFrontMatter([]byte(src))
		assert.False(t, ok)
		assert.Equal(t, FrontMatter{}, fm)
		assert.Equal(t, src, string(body))
	})

	t.Run("leading thematic break without closing delimiter", func(t *testing.T) {
		src := "---\n\nJust prose after a rule.\n"
		_, body, ok := SplitFrontMatter([]byte(src))
		assert.False(t, ok)
		assert.Equal(t, src, string(body))
	})

	t.Run("block that is not metadata", func(t *testing.T) {
		src := "---\nplain sentence\n---\nMore prose.\n"
		_, body, ok := SplitFrontMatter([]byte(src))
		assert.False(t, ok)
		assert.Equal(t, src, string(body))
	})
}
