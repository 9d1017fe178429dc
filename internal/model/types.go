package model

import "time"

// DeletedAuthor is the sentinel recorded when a post's author account is gone.
const DeletedAuthor = "[deleted]"

// Post represents a single subreddit submission.
type Post struct {
	ID          string    // Reddit base-36 ID (e.g., "1cu9x2f")
	Title       string    // Submission title
	SelfText    string    // Body text, empty for link posts
	Author      string    // Account name, DeletedAuthor when removed
	CreatedUTC  time.Time // Creation time (UTC)
	Score       int       // Net vote score at fetch time
	UpvoteRatio float64   // Fraction of votes that are upvotes (0.0-1.0)
	NumComments int       // Comment count at fetch time
	URL         string    // Destination URL (self posts point at themselves)
	Permalink   string    // Absolute permalink on reddit.com
	Subreddit   string    // Subreddit name without the r/ prefix
	IsSelf      bool      // true = text post, false = link post
	Over18      bool      // NSFW flag
}

// Window is a closed UTC interval defining one collection phase.
type Window struct {
	Name  string    // Phase label (e.g., "during_euro")
	Start time.Time // Inclusive lower bound (UTC)
	End   time.Time // Inclusive upper bound (UTC)
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Source is one subreddit under study together with its topic keywords.
type Source struct {
	Name      string   // Study label (e.g., "germany")
	Subreddit string   // Subreddit name without the r/ prefix
	Keywords  []string // Lowercase topic keywords
}
