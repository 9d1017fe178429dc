// Package filter classifies posts as politics-related by keyword matching.
//
// Matching is case-insensitive substring containment over the concatenated
// title and body text. Keywords are compiled into a single Aho-Corasick
// automaton so every post is scanned in one pass regardless of how many
// keywords a source defines.
package filter

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/polarlab/reddit-data/internal/model"
)

// Matcher reports whether a post's text contains any of a source's keywords.
type Matcher struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

// New compiles the keyword list into a Matcher. Keywords are lowercased and
// deduplicated; blank entries are dropped. A Matcher with no keywords
// matches nothing.
func New(keywords []string) *Matcher {
	seen := make(map[string]bool, len(keywords))
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		cleaned = append(cleaned, kw)
	}

	m := &Matcher{keywords: cleaned}
	if len(cleaned) > 0 {
		m.matcher = ahocorasick.NewStringMatcher(cleaned)
	}
	return m
}

// Keywords returns the compiled keyword list.
func (m *Matcher) Keywords() []string {
	return m.keywords
}

// Match reports whether the post's title or body contains any keyword.
func (m *Matcher) Match(p model.Post) bool {
	return m.MatchText(p.Title + " " + p.SelfText)
}

// MatchText reports whether text contains any keyword, ignoring case.
func (m *Matcher) MatchText(text string) bool {
	if m.matcher == nil {
		return false
	}
	return len(m.matcher.Match([]byte(strings.ToLower(text)))) > 0
}

// Filter returns the posts that match, preserving input order.
func (m *Matcher) Filter(posts []model.Post) []model.Post {
	matched := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if m.Match(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
