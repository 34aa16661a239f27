package config

import (
	"log/slog"

	"git.home.luguber.info/inful/blogbuilder/internal/foundation/normalization"
)

// IndexMode selects how the index page presents posts.
type IndexMode string

const (
	// IndexModeLink lists each post as a link to its own page.
	IndexModeLink IndexMode = "link"
	// IndexModeInline embeds each post's content on the index behind a
	// click-to-expand title. Post pages are still generated.
	IndexModeInline IndexMode = "inline"
)

var indexModeNormalizer = normalization.NewNormalizer("index mode", map[string]IndexMode{
	"link":   IndexModeLink,
	"inline": IndexModeInline,
}, IndexModeLink)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer("log level", map[string]LogLevel{
	"debug": LogLevelDebug,
	"info":  LogLevelInfo,
	"warn":  LogLevelWarn,
	"error": LogLevelError,
}, LogLevelInfo)

// SlogLevel maps the configured level onto slog.
func (l LogLevel) SlogLevel() slog.Level {
	switch logLevelNormalizer.Normalize(string(l)) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
