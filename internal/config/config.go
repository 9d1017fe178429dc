package config

import (
	"time"

	"github.com/polarlab/reddit-data/internal/model"
)

// Config is the root configuration for a scraper run.
type Config struct {
	API     APIConfig      `yaml:"api"`
	Sources []SourceConfig `yaml:"sources"`
	Windows []WindowConfig `yaml:"windows"`
	Collect CollectConfig  `yaml:"collect"`
	Output  OutputConfig   `yaml:"output"`
}

// APIConfig holds Reddit API settings.
// Credentials are not configured here; they come from the environment
// (REDDIT_CLIENT_ID, REDDIT_CLIENT_SECRET, REDDIT_USER_AGENT).
type APIConfig struct {
	BaseURL    string        `yaml:"base_url"`
	TokenURL   string        `yaml:"token_url"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// SourceConfig defines one subreddit and its keyword list.
type SourceConfig struct {
	Name      string   `yaml:"name"`
	Subreddit string   `yaml:"subreddit"`
	Keywords  []string `yaml:"keywords"`
}

// WindowConfig defines a named collection window. Bounds are inclusive UTC.
type WindowConfig struct {
	Name  string    `yaml:"name"`
	Start time.Time `yaml:"start"`
	End   time.Time `yaml:"end"`
}

// CollectConfig bounds retrieval effort and request pacing.
type CollectConfig struct {
	MaxPosts        int           `yaml:"max_posts"`        // cap for search and recency scans
	TopLimit        int           `yaml:"top_limit"`        // per-horizon cap for ranked scans
	PageSize        int           `yaml:"page_size"`        // listing page size (Reddit max: 100)
	RecencyCutoff   time.Duration `yaml:"recency_cutoff"`   // how far back /new still reaches
	RequestInterval time.Duration `yaml:"request_interval"` // pacing between API requests
	RunPause        time.Duration `yaml:"run_pause"`        // pause between source/window runs
}

// OutputConfig holds CSV output locations.
type OutputConfig struct {
	RawDir   string `yaml:"raw_dir"`
	CleanDir string `yaml:"clean_dir"`
}

// ToModel converts a SourceConfig to model.Source.
func (s SourceConfig) ToModel() model.Source {
	return model.Source{
		Name:      s.Name,
		Subreddit: s.Subreddit,
		Keywords:  s.Keywords,
	}
}

// ToModel converts a WindowConfig to model.Window. Bounds are normalized to UTC.
func (w WindowConfig) ToModel() model.Window {
	return model.Window{
		Name:  w.Name,
		Start: w.Start.UTC(),
		End:   w.End.UTC(),
	}
}
