package posts

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
)

// Source identifies one post file in the input directory.
type Source struct {
	Name string // File name, unique within the input directory
	Path string // Path used to read the file
}

// OutputName derives the page file name for the post: the source name with
// its Markdown extension replaced by ".html".
func (s Source) OutputName(ext string) string {
	return strings.TrimSuffix(s.Name, ext) + ".html"
}

// Read loads the post's Markdown text.
func (s Source) Read() ([]byte, error) {
	// #nosec G304 -- path comes from enumerating the configured posts directory.
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read post").
			Fatal().
			WithContext("path", s.Path).
			Build()
	}
	return data, nil
}

// Discover lists the posts in dir: regular, non-hidden files whose name ends
// in ext, sorted lexicographically by file name. Subdirectories are not
// descended into. A missing or unreadable directory is a fatal error.
func Discover(dir, ext string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		category := ferrors.CategoryFileSystem
		if errors.Is(err, fs.ErrNotExist) {
			category = ferrors.CategoryNotFound
		}
		return nil, ferrors.WrapError(err, category, "posts directory not readable").
			Fatal().
			WithContext("path", dir).
			Build()
	}

	sources := make([]Source, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isPostFile(name, ext) {
			continue
		}
		sources = append(sources, Source{
			Name: name,
			Path: filepath.Join(dir, name),
		})
		slog.Debug("Discovered post", logfields.File(name))
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Name < sources[j].Name
	})

	slog.Info("Posts discovered", logfields.Path(dir), logfields.Count(len(sources)))
	return sources, nil
}

func isPostFile(name, ext string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return len(name) > len(ext) && strings.HasSuffix(name, ext)
}
