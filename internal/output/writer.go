// Package output writes generated artifacts into the site directory.
//
// Writes are not transactional: an interrupted build can leave a mix of old
// and new files, which the next full build replaces.
package output

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
)

// Kind distinguishes the three artifact types a build produces.
type Kind string

const (
	KindPost       Kind = "post"
	KindIndex      Kind = "index"
	KindStylesheet Kind = "stylesheet"
)

// Artifact is one generated file. Name is a plain file name relative to the
// output directory.
type Artifact struct {
	Name    string
	Kind    Kind
	Content string
}

// EnsureDirectory creates dir and any missing parents. It is a no-op when
// dir already exists.
func EnsureDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			Fatal().
			WithContext("path", dir).
			Build()
	}
	return nil
}

// Write stores the artifact under dir, creating the file or truncating an
// existing one. The write happens even when the content is unchanged.
func Write(dir string, a Artifact) error {
	if err := validateName(a.Name); err != nil {
		return err
	}

	fullPath := filepath.Join(dir, a.Name)
	if err := os.WriteFile(fullPath, []byte(a.Content), 0o644); err != nil { // #nosec G306 -- site files are meant to be world readable
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write artifact").
			Fatal().
			WithContext("path", fullPath).
			WithContext("kind", string(a.Kind)).
			Build()
	}

	slog.Debug("Wrote artifact", logfields.Path(fullPath), slog.String("kind", string(a.Kind)), slog.Int("bytes", len(a.Content)))
	return nil
}

// WriteAll writes artifacts in order, stopping at the first failure.
func WriteAll(dir string, artifacts []Artifact) error {
	for _, a := range artifacts {
		if err := Write(dir, a); err != nil {
			return err
		}
	}
	return nil
}

func validateName(name string) error {
	clean := filepath.Clean(name)
	if name == "" || clean != name || clean == "." || clean == ".." ||
		filepath.IsAbs(name) || strings.ContainsAny(name, `/\`) {
		return errors.ValidationError("artifact name must be a plain file name").
			WithContext("path", name).
			Build()
	}
	return nil
}
