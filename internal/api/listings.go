package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SearchPosts queries a subreddit's search listing. The query uses Reddit's
// cloudsearch syntax, which supports timestamp range clauses.
func (c *Client) SearchPosts(ctx context.Context, subreddit, query, sort string, opts ListOptions) (*Listing, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("restrict_sr", "1")
	q.Set("syntax", "cloudsearch")
	if sort != "" {
		q.Set("sort", sort)
	}
	applyListOptions(q, opts)

	var resp Listing
	if err := c.get(ctx, "/r/"+subreddit+"/search", q, &resp); err != nil {
		return nil, fmt.Errorf("search r/%s: %w", subreddit, err)
	}

	return &resp, nil
}

// NewPosts fetches a page of the subreddit's newest submissions.
func (c *Client) NewPosts(ctx context.Context, subreddit string, opts ListOptions) (*Listing, error) {
	q := url.Values{}
	applyListOptions(q, opts)

	var resp Listing
	if err := c.get(ctx, "/r/"+subreddit+"/new", q, &resp); err != nil {
		return nil, fmt.Errorf("new r/%s: %w", subreddit, err)
	}

	return &resp, nil
}

// TopPosts fetches a page of the subreddit's top submissions for a horizon.
func (c *Client) TopPosts(ctx context.Context, subreddit string, horizon Horizon, opts ListOptions) (*Listing, error) {
	q := url.Values{}
	q.Set("t", string(horizon))
	applyListOptions(q, opts)

	var resp Listing
	if err := c.get(ctx, "/r/"+subreddit+"/top", q, &resp); err != nil {
		return nil, fmt.Errorf("top r/%s (%s): %w", subreddit, horizon, err)
	}

	return &resp, nil
}

// Me fetches the identity behind the current token. Application-only tokens
// carry no user, so a failure here means the session is read-only.
func (c *Client) Me(ctx context.Context) (*Identity, error) {
	var resp Identity
	if err := c.get(ctx, "/api/v1/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("get identity: %w", err)
	}

	return &resp, nil
}

// Posts returns the submission children of a listing page.
func (l *Listing) Posts() []APIPost {
	posts := make([]APIPost, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		if child.Kind != KindPost {
			continue
		}
		posts = append(posts, child.Data)
	}
	return posts
}

func applyListOptions(q url.Values, opts ListOptions) {
	q.Set("raw_json", "1")
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.After != "" {
		q.Set("after", opts.After)
	}
}
