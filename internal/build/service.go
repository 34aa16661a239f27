package build

import (
	"html/template"
	"log/slog"
	"strings"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/markdown"
	"git.home.luguber.info/inful/blogbuilder/internal/output"
	"git.home.luguber.info/inful/blogbuilder/internal/posts"
	"git.home.luguber.info/inful/blogbuilder/internal/site"
)

// Renderer converts Markdown to HTML. *markdown.Renderer is the production
// implementation.
type Renderer interface {
	Render(source []byte) ([]byte, error)
}

// Status indicates overall build outcome.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Post is one rendered post as it flows from extraction to composition.
type Post struct {
	Source     string
	Title      string
	Summary    string
	HTML       string
	OutputName string
}

// Result describes a finished build.
type Result struct {
	Status     Status
	OutputPath string
	Posts      []Post
	Artifacts  []output.Artifact
	Digest     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// Service executes builds. The zero value is not usable; use NewService.
type Service struct {
	renderer Renderer
}

// NewService creates a Service that renders with the standard Markdown renderer.
func NewService() *Service {
	return &Service{renderer: markdown.NewRenderer()}
}

// WithRenderer replaces the Markdown renderer (for testing).
func (s *Service) WithRenderer(r Renderer) *Service {
	s.renderer = r
	return s
}

// Run executes one complete build for cfg.
func (s *Service) Run(cfg *config.Config) (*Result, error) {
	start := time.Now()
	result := &Result{StartTime: start, Status: StatusFailed}
	finish := func(err error) (*Result, error) {
		result.EndTime = time.Now()
		result.Duration = result.EndTime.Sub(start)
		if err == nil {
			result.Status = StatusSuccess
		}
		return result, err
	}

	if cfg == nil {
		return finish(errors.ConfigError("config required").Build())
	}
	result.OutputPath = cfg.OutputDir

	slog.Info("Starting blog build",
		slog.String("input", cfg.InputDir),
		logfields.Output(cfg.OutputDir),
		logfields.Mode(string(cfg.Index.Mode)))

	var sources []posts.Source
	err := stage("discover", func() error {
		var err error
		sources, err = posts.Discover(cfg.InputDir, cfg.Extension)
		return err
	})
	if err != nil {
		return finish(err)
	}

	err = stage("render", func() error {
		for _, src := range sources {
			post, err := s.renderPost(src, cfg.Extension)
			if err != nil {
				return err
			}
			result.Posts = append(result.Posts, post)
		}
		return checkReservedNames(result.Posts, cfg.Site.Stylesheet)
	})
	if err != nil {
		return finish(err)
	}

	err = stage("compose", func() error {
		var err error
		result.Artifacts, err = compose(site.NewComposer(cfg), result.Posts)
		return err
	})
	if err != nil {
		return finish(err)
	}

	err = stage("write", func() error {
		if err := output.EnsureDirectory(cfg.OutputDir); err != nil {
			return err
		}
		return output.WriteAll(cfg.OutputDir, result.Artifacts)
	})
	if err != nil {
		return finish(err)
	}

	result.Digest = ComputeDigest(result.Artifacts)
	res, _ := finish(nil)
	slog.Info("Blog build completed",
		logfields.Output(cfg.OutputDir),
		logfields.Count(len(result.Posts)),
		logfields.Digest(result.Digest),
		logfields.DurationMS(float64(res.Duration.Microseconds())/1000))
	return res, nil
}

// renderPost reads, renders and extracts one source.
func (s *Service) renderPost(src posts.Source, ext string) (Post, error) {
	raw, err := src.Read()
	if err != nil {
		return Post{}, err
	}

	fm, body, _ := markdown.SplitFrontMatter(raw)
	rendered, err := s.renderer.Render(body)
	if err != nil {
		return Post{}, errors.WrapError(err, errors.CategoryRender, "failed to render post").
			Fatal().
			WithContext("path", src.Path).
			Build()
	}

	meta := posts.Extract(body, rendered)
	if fm.Title != "" {
		meta.Title = fm.Title
	}
	if fm.Summary != "" {
		// Front matter values are plain text; derived summaries are already HTML.
		meta.Summary = template.HTMLEscapeString(fm.Summary)
	}
	if meta.Title == "" {
		slog.Warn("Post has no title", logfields.File(src.Name))
	}

	slog.Debug("Rendered post", logfields.File(src.Name), logfields.Title(meta.Title))
	return Post{
		Source:     src.Name,
		Title:      meta.Title,
		Summary:    meta.Summary,
		HTML:       string(rendered),
		OutputName: src.OutputName(ext),
	}, nil
}

// compose produces the artifacts in write order: post pages in enumeration
// order, then the index (which needs every entry), then the stylesheet.
func compose(c site.Composer, rendered []Post) ([]output.Artifact, error) {
	artifacts := make([]output.Artifact, 0, len(rendered)+2)
	var entries strings.Builder

	for _, p := range rendered {
		page, err := c.RenderPostPage(site.PostPage{Title: p.Title, Summary: p.Summary, Content: p.HTML})
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, output.Artifact{Name: p.OutputName, Kind: output.KindPost, Content: page})

		entry, err := c.RenderIndexEntry(site.Entry{
			Title:      p.Title,
			Summary:    p.Summary,
			OutputName: p.OutputName,
			Content:    p.HTML,
		})
		if err != nil {
			return nil, err
		}
		entries.WriteString(entry)
	}

	index, err := c.RenderIndexPage(entries.String())
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts,
		output.Artifact{Name: site.IndexFileName, Kind: output.KindIndex, Content: index},
		output.Artifact{Name: c.Stylesheet, Kind: output.KindStylesheet, Content: site.RenderStylesheet()},
	)
	return artifacts, nil
}

// checkReservedNames rejects posts whose page would overwrite the index or
// the stylesheet.
func checkReservedNames(rendered []Post, stylesheet string) error {
	for _, p := range rendered {
		if p.OutputName == site.IndexFileName || p.OutputName == stylesheet {
			return errors.ValidationError("post output name collides with a generated file").
				WithContext("path", p.Source).
				WithContext("output", p.OutputName).
				Build()
		}
	}
	return nil
}

// stage runs fn and logs its timing. Failures are logged at debug level only;
// the caller reports the returned error.
func stage(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	attrs := []any{logfields.Stage(name), logfields.DurationMS(float64(time.Since(start).Microseconds()) / 1000)}
	if err != nil {
		slog.Debug("Build stage failed", append(attrs, logfields.Error(err))...)
		return err
	}
	slog.Debug("Build stage completed", attrs...)
	return nil
}
