package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.TokenURL == "" {
		return errors.New("api.token_url is required")
	}

	if len(c.Sources) == 0 {
		return errors.New("at least one source is required")
	}
	for i, s := range c.Sources {
		if err := s.validate(fmt.Sprintf("sources[%d]", i)); err != nil {
			return err
		}
	}

	if len(c.Windows) == 0 {
		return errors.New("at least one window is required")
	}
	for i, w := range c.Windows {
		if err := w.validate(fmt.Sprintf("windows[%d]", i)); err != nil {
			return err
		}
	}

	if c.Collect.MaxPosts < 1 {
		return errors.New("collect.max_posts must be >= 1")
	}
	if c.Collect.TopLimit < 1 {
		return errors.New("collect.top_limit must be >= 1")
	}
	if c.Collect.PageSize < 1 || c.Collect.PageSize > 100 {
		return fmt.Errorf("collect.page_size must be between 1 and 100, got %d", c.Collect.PageSize)
	}
	if c.Collect.RecencyCutoff <= 0 {
		return errors.New("collect.recency_cutoff must be positive")
	}
	if c.Collect.RequestInterval < 0 {
		return errors.New("collect.request_interval cannot be negative")
	}

	if c.Output.RawDir == "" {
		return errors.New("output.raw_dir is required")
	}
	if c.Output.CleanDir == "" {
		return errors.New("output.clean_dir is required")
	}

	return nil
}

func (s SourceConfig) validate(prefix string) error {
	if s.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if s.Subreddit == "" {
		return fmt.Errorf("%s.subreddit is required", prefix)
	}
	if len(s.Keywords) == 0 {
		return fmt.Errorf("%s.keywords must not be empty", prefix)
	}
	return nil
}

func (w WindowConfig) validate(prefix string) error {
	if w.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if w.Start.IsZero() {
		return fmt.Errorf("%s.start is required", prefix)
	}
	if w.End.IsZero() {
		return fmt.Errorf("%s.end is required", prefix)
	}
	if w.End.Before(w.Start) {
		return fmt.Errorf("%s.end (%s) is before start (%s)", prefix, w.End.Format("2006-01-02"), w.Start.Format("2006-01-02"))
	}
	return nil
}
