package collect

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/polarlab/reddit-data/internal/api"
	"github.com/polarlab/reddit-data/internal/model"
)

// maxListingDepth is how far Reddit serves into any single listing.
const maxListingDepth = 1000

// Config bounds retrieval effort for one Collect call.
type Config struct {
	MaxPosts      int           // Cap on candidates scanned by the range search and recency scan
	TopLimit      int           // Cap on candidates scanned per ranked horizon
	PageSize      int           // Listing page size (Reddit caps at 100)
	RecencyCutoff time.Duration // Skip the recency scan when the window end is older than this
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxPosts:      1000,
		TopLimit:      500,
		PageSize:      100,
		RecencyCutoff: 30 * 24 * time.Hour,
	}
}

// Stats summarizes one Collect call.
type Stats struct {
	Search  int // Posts contributed by the range search
	Recency int // Posts contributed by the recency scan
	Ranked  int // Posts contributed by the ranked scan
	Kept    int // Unique in-window posts in total
	Errors  int // Strategy attempts that failed
}

// Collector gathers a subreddit's posts for a time window by layering
// three retrieval strategies.
type Collector struct {
	cfg     Config
	client  *api.Client
	limiter Limiter
	logger  *slog.Logger
}

// New creates a Collector. A nil limiter disables throttling and a nil
// logger falls back to slog.Default.
func New(cfg Config, client *api.Client, limiter Limiter, logger *slog.Logger) *Collector {
	if limiter == nil {
		limiter = NopLimiter{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		cfg:     cfg,
		client:  client,
		limiter: limiter,
		logger:  logger,
	}
}

// run accumulates one Collect call's results. The first sighting of an ID
// wins; everything outside the window is dropped.
type run struct {
	window model.Window
	seen   map[string]bool
	posts  []model.Post
}

// add accepts a candidate if it is unseen and inside the window.
func (r *run) add(p api.APIPost) {
	if r.seen[p.ID] {
		return
	}
	if !r.window.Contains(p.CreatedTime()) {
		return
	}
	r.seen[p.ID] = true
	r.posts = append(r.posts, p.ToModel())
}

// Collect fetches the source's posts whose creation time falls inside the
// window, in first-seen order. It never fails: each strategy is attempted
// exactly once, errors are logged and counted, and a source unreachable by
// every strategy yields an empty result. The caller decides whether empty
// is acceptable.
func (c *Collector) Collect(ctx context.Context, source model.Source, window model.Window) ([]model.Post, Stats) {
	start := time.Now()
	r := &run{window: window, seen: make(map[string]bool)}
	var stats Stats

	if err := c.searchByRange(ctx, source.Subreddit, r); err != nil {
		c.logger.Warn("range search failed",
			"subreddit", source.Subreddit,
			"err", err,
		)
		stats.Errors++
	}
	stats.Search = len(r.posts)

	if time.Since(window.End) <= c.cfg.RecencyCutoff {
		if err := c.scanRecent(ctx, source.Subreddit, r); err != nil {
			c.logger.Warn("recency scan failed",
				"subreddit", source.Subreddit,
				"err", err,
			)
			stats.Errors++
		}
	} else {
		c.logger.Debug("skipping recency scan for old window",
			"subreddit", source.Subreddit,
			"window_end", window.End,
		)
	}
	stats.Recency = len(r.posts) - stats.Search

	for _, horizon := range api.Horizons {
		if ctx.Err() != nil {
			break
		}
		if err := c.scanTop(ctx, source.Subreddit, horizon, r); err != nil {
			c.logger.Warn("ranked scan failed",
				"subreddit", source.Subreddit,
				"horizon", horizon,
				"err", err,
			)
			stats.Errors++
		}
	}
	stats.Ranked = len(r.posts) - stats.Search - stats.Recency
	stats.Kept = len(r.posts)

	c.logger.Info("collection complete",
		"source", source.Name,
		"subreddit", source.Subreddit,
		"window", window.Name,
		"kept", stats.Kept,
		"errors", stats.Errors,
		"duration", time.Since(start),
	)

	return r.posts, stats
}

// searchByRange queries the search listing with a cloudsearch timestamp
// clause. The server-side range is approximate, so every candidate is
// still checked against the window.
func (c *Collector) searchByRange(ctx context.Context, subreddit string, r *run) error {
	query := fmt.Sprintf("timestamp:%d..%d", r.window.Start.Unix(), r.window.End.Unix())

	after := ""
	scanned := 0
	for scanned < c.cfg.MaxPosts {
		opts := api.ListOptions{
			Limit: min(c.cfg.PageSize, c.cfg.MaxPosts-scanned),
			After: after,
		}
		listing, err := c.client.SearchPosts(ctx, subreddit, query, api.SortNew, opts)
		if err != nil {
			return err
		}

		posts := listing.Posts()
		if len(posts) == 0 {
			return nil
		}
		for _, p := range posts {
			if err := c.limiter.Acquire(ctx); err != nil {
				return err
			}
			scanned++
			r.add(p)
		}

		after = listing.Data.After
		if after == "" {
			return nil
		}
	}

	return nil
}

// scanRecent walks the newest-first listing. Ordering guarantees nothing
// useful remains once a candidate predates the window start, so the scan
// stops there. Known limitation: a subreddit busier than maxListingDepth
// posts since the window start under-collects, since the listing never
// reaches back that far.
func (c *Collector) scanRecent(ctx context.Context, subreddit string, r *run) error {
	after := ""
	scanned := 0
	depth := min(c.cfg.MaxPosts, maxListingDepth)
	for scanned < depth {
		opts := api.ListOptions{
			Limit: min(c.cfg.PageSize, depth-scanned),
			After: after,
		}
		listing, err := c.client.NewPosts(ctx, subreddit, opts)
		if err != nil {
			return err
		}

		posts := listing.Posts()
		if len(posts) == 0 {
			return nil
		}
		for _, p := range posts {
			if err := c.limiter.Acquire(ctx); err != nil {
				return err
			}
			scanned++
			if r.seen[p.ID] {
				continue
			}
			if p.CreatedTime().Before(r.window.Start) {
				return nil
			}
			r.add(p)
		}

		after = listing.Data.After
		if after == "" {
			return nil
		}
	}

	return nil
}

// scanTop walks one horizon of the ranked listing.
func (c *Collector) scanTop(ctx context.Context, subreddit string, horizon api.Horizon, r *run) error {
	after := ""
	scanned := 0
	for scanned < c.cfg.TopLimit {
		opts := api.ListOptions{
			Limit: min(c.cfg.PageSize, c.cfg.TopLimit-scanned),
			After: after,
		}
		listing, err := c.client.TopPosts(ctx, subreddit, horizon, opts)
		if err != nil {
			return err
		}

		posts := listing.Posts()
		if len(posts) == 0 {
			return nil
		}
		for _, p := range posts {
			if err := c.limiter.Acquire(ctx); err != nil {
				return err
			}
			scanned++
			r.add(p)
		}

		after = listing.Data.After
		if after == "" {
			return nil
		}
	}

	return nil
}
