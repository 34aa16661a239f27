package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultPath))
	require.NoError(t, err)

	assert.Equal(t, DefaultInputDir, cfg.InputDir)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultExtension, cfg.Extension)
	assert.Equal(t, DefaultSiteTitle, cfg.Site.Title)
	assert.Equal(t, DefaultLang, cfg.Site.Lang)
	assert.Equal(t, DefaultStylesheet, cfg.Site.Stylesheet)
	assert.Equal(t, IndexModeLink, cfg.Index.Mode)
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	content := `input_dir: content/posts
output_dir: dist
site:
  title: Field Notes
index:
  mode: " Inline "
log_level: DEBUG
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "content/posts", cfg.InputDir)
	assert.Equal(t, "dist", cfg.OutputDir)
	assert.Equal(t, "Field Notes", cfg.Site.Title)
	assert.Equal(t, DefaultLang, cfg.Site.Lang)
	assert.Equal(t, IndexModeInline, cfg.Index.Mode)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel.SlogLevel())
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := Parse([]byte(""), "inline")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		category ferrors.ErrorCategory
	}{
		{"malformed yaml", "input_dir: [unclosed", ferrors.CategoryConfig},
		{"unknown field", "inptu_dir: posts\n", ferrors.CategoryConfig},
		{"same input and output", "input_dir: site\noutput_dir: ./site/\n", ferrors.CategoryValidation},
		{"extension without dot", "extension: md\n", ferrors.CategoryValidation},
		{"html extension", "extension: .html\n", ferrors.CategoryValidation},
		{"stylesheet with separator", "site:\n  stylesheet: css/site.css\n", ferrors.CategoryValidation},
		{"stylesheet collides with index", "site:\n  stylesheet: index.html\n", ferrors.CategoryValidation},
		{"unknown index mode", "index:\n  mode: expand\n", ferrors.CategoryValidation},
		{"unknown log level", "log_level: loud\n", ferrors.CategoryValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), "test.yaml")
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, tt.category), "got %v", err)
		})
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)

	require.NoError(t, Init(path, false))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	err = Init(path, false)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))

	require.NoError(t, Init(path, true))
}

func TestLogLevel_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, LogLevel("").SlogLevel())
	assert.Equal(t, slog.LevelWarn, LogLevelWarn.SlogLevel())
	assert.Equal(t, slog.LevelError, LogLevelError.SlogLevel())
}
