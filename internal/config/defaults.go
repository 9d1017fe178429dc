package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL         = "https://oauth.reddit.com"
	DefaultTokenURL        = "https://www.reddit.com/api/v1/access_token"
	DefaultAPITimeout      = 30 * time.Second
	DefaultMaxRetries      = 3
	DefaultMaxPosts        = 1000
	DefaultTopLimit        = 500
	DefaultPageSize        = 100
	DefaultRecencyCutoff   = 30 * 24 * time.Hour
	DefaultRequestInterval = 100 * time.Millisecond
	DefaultRunPause        = 2 * time.Second
	DefaultRawDir          = "data/raw"
	DefaultCleanDir        = "data/clean"
)

// DefaultSources returns the built-in study subreddits with their political
// keyword lists. Lists carry spelling variants (umlauts, accents) so matching
// needs no diacritic normalization.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		{
			Name:      "germany",
			Subreddit: "de",
			Keywords: []string{
				"afd", "cdu", "spd", "csu", "gruene", "grüne", "linke",
				"merz", "scholz", "habeck", "migration", "flüchtlinge",
				"asyl", "klima", "heizungsgesetz", "bundestag", "ampel",
			},
		},
		{
			Name:      "netherlands",
			Subreddit: "thenetherlands",
			Keywords: []string{
				"vvd", "d66", "pvv", "wilders", "rutte", "klimaat",
				"immigratie", "verkiezingen", "kabinet",
			},
		},
		{
			Name:      "france",
			Subreddit: "france",
			Keywords: []string{
				"macron", "rn", "mélenchon", "melenchon", "immigration",
				"climat", "gouvernement", "élection", "election",
				"assemblée", "assemblee",
			},
		},
	}
}

// DefaultWindows returns the built-in EURO 2024 study phases.
func DefaultWindows() []WindowConfig {
	return []WindowConfig{
		{
			Name:  "pre_euro",
			Start: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 6, 13, 23, 59, 59, 0, time.UTC),
		},
		{
			Name:  "during_euro",
			Start: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 7, 14, 23, 59, 59, 0, time.UTC),
		},
		{
			Name:  "post_euro",
			Start: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 8, 15, 23, 59, 59, 0, time.UTC),
		},
	}
}

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.TokenURL == "" {
		c.API.TokenURL = DefaultTokenURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}

	// Study defaults
	if len(c.Sources) == 0 {
		c.Sources = DefaultSources()
	}
	if len(c.Windows) == 0 {
		c.Windows = DefaultWindows()
	}

	// Collect defaults
	if c.Collect.MaxPosts == 0 {
		c.Collect.MaxPosts = DefaultMaxPosts
	}
	if c.Collect.TopLimit == 0 {
		c.Collect.TopLimit = DefaultTopLimit
	}
	if c.Collect.PageSize == 0 {
		c.Collect.PageSize = DefaultPageSize
	}
	if c.Collect.RecencyCutoff == 0 {
		c.Collect.RecencyCutoff = DefaultRecencyCutoff
	}
	if c.Collect.RequestInterval == 0 {
		c.Collect.RequestInterval = DefaultRequestInterval
	}
	if c.Collect.RunPause == 0 {
		c.Collect.RunPause = DefaultRunPause
	}

	// Output defaults
	if c.Output.RawDir == "" {
		c.Output.RawDir = DefaultRawDir
	}
	if c.Output.CleanDir == "" {
		c.Output.CleanDir = DefaultCleanDir
	}
}
