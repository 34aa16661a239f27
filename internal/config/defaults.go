package config

const (
	DefaultInputDir   = "posts"
	DefaultOutputDir  = "public"
	DefaultExtension  = ".md"
	DefaultSiteTitle  = "Blog Index"
	DefaultLang       = "en"
	DefaultStylesheet = "styles.css"
)

// applyDefaults fills every unset field. Enum fields are normalized here;
// unrecognized values are left untouched for Validate to reject.
func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = DefaultInputDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	if cfg.Site.Title == "" {
		cfg.Site.Title = DefaultSiteTitle
	}
	if cfg.Site.Lang == "" {
		cfg.Site.Lang = DefaultLang
	}
	if cfg.Site.Stylesheet == "" {
		cfg.Site.Stylesheet = DefaultStylesheet
	}
	if mode, err := indexModeNormalizer.NormalizeWithError(string(cfg.Index.Mode)); err == nil {
		cfg.Index.Mode = mode
	}
	if level, err := logLevelNormalizer.NormalizeWithError(string(cfg.LogLevel)); err == nil {
		cfg.LogLevel = level
	}
}
