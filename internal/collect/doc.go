// Package collect implements the multi-strategy post collector.
//
// One Collect call runs three retrieval strategies in order against a
// single subreddit and time window:
//   - Range search: server-side timestamp query, post-filtered by window
//   - Recency scan: newest-first listing, only for windows ending recently
//   - Ranked scan: top listings over decreasing lookback horizons
//
// Candidates merge into a shared accumulator that keeps the first sighting
// of each post ID and drops everything outside the window. Any strategy may
// fail without aborting the others; a failure contributes zero posts.
package collect
