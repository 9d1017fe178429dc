package api

import (
	"time"

	"github.com/polarlab/reddit-data/internal/model"
)

// PermalinkBase prefixes the relative permalink Reddit returns.
const PermalinkBase = "https://reddit.com"

// CreatedTime converts the epoch-seconds creation stamp to UTC time.
func (p *APIPost) CreatedTime() time.Time {
	return time.Unix(int64(p.CreatedUTC), 0).UTC()
}

// ToModel converts an APIPost to model.Post.
func (p *APIPost) ToModel() model.Post {
	author := p.Author
	if author == "" {
		author = model.DeletedAuthor
	}

	return model.Post{
		ID:          p.ID,
		Title:       p.Title,
		SelfText:    p.SelfText,
		Author:      author,
		CreatedUTC:  p.CreatedTime(),
		Score:       p.Score,
		UpvoteRatio: p.UpvoteRatio,
		NumComments: p.NumComments,
		URL:         p.URL,
		Permalink:   PermalinkBase + p.Permalink,
		Subreddit:   p.Subreddit,
		IsSelf:      p.IsSelf,
		Over18:      p.Over18,
	}
}
