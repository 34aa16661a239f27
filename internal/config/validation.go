package config

import (
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

// Validate checks the configuration after defaults have been applied.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InputDir) == "" {
		return validationError("input_dir", "must not be empty")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return validationError("output_dir", "must not be empty")
	}
	if filepath.Clean(c.InputDir) == filepath.Clean(c.OutputDir) {
		return validationError("output_dir", "must differ from input_dir")
	}
	if len(c.Extension) < 2 || !strings.HasPrefix(c.Extension, ".") || strings.ContainsAny(c.Extension, `/\`) {
		return validationError("extension", `must start with a dot, e.g. ".md"`)
	}
	if c.Extension == ".html" {
		return validationError("extension", "must not be .html")
	}
	if reason := checkFileName(c.Site.Stylesheet); reason != "" {
		return validationError("site.stylesheet", reason)
	}
	if c.Site.Stylesheet == "index.html" {
		return validationError("site.stylesheet", "must not collide with index.html")
	}
	if _, err := indexModeNormalizer.NormalizeWithError(string(c.Index.Mode)); err != nil {
		return validationError("index.mode", err.Error())
	}
	if _, err := logLevelNormalizer.NormalizeWithError(string(c.LogLevel)); err != nil {
		return validationError("log_level", err.Error())
	}
	return nil
}

func checkFileName(name string) string {
	switch {
	case name == "" || name == "." || name == "..":
		return "must be a file name"
	case strings.ContainsAny(name, `/\`):
		return "must not contain path separators"
	}
	return ""
}

func validationError(field, reason string) error {
	return ferrors.ValidationError("invalid configuration: "+field+" "+reason).
		WithContext("field", field).
		Build()
}
