package api

// Listing is Reddit's paginated response envelope.
type Listing struct {
	Kind string      `json:"kind"`
	Data ListingData `json:"data"`
}

// ListingData carries one page of children plus continuation cursors.
type ListingData struct {
	Children []ListingChild `json:"children"`
	After    string         `json:"after"`
	Before   string         `json:"before"`
	Dist     int            `json:"dist"`
}

// ListingChild wraps a single thing; submissions have kind "t3".
type ListingChild struct {
	Kind string  `json:"kind"`
	Data APIPost `json:"data"`
}

// KindPost is the listing kind for submissions.
const KindPost = "t3"

// APIPost is a submission as returned by the listing endpoints.
type APIPost struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"` // Fullname ("t3_" + ID), used as a pagination cursor
	Subreddit   string  `json:"subreddit"`
	Title       string  `json:"title"`
	SelfText    string  `json:"selftext"`
	Author      string  `json:"author"`
	URL         string  `json:"url"`
	Permalink   string  `json:"permalink"`
	Score       int     `json:"score"`
	UpvoteRatio float64 `json:"upvote_ratio"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"` // Epoch seconds
	IsSelf      bool    `json:"is_self"`
	Over18      bool    `json:"over_18"`
}

// Identity is the authenticated account from GET /api/v1/me.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListOptions configures a single listing page request.
type ListOptions struct {
	Limit int    // Page size (Reddit caps at 100)
	After string // Fullname cursor from the previous page
}

// SortNew orders search results newest first.
const SortNew = "new"

// Horizon is the lookback window for ranked (top) listings.
type Horizon string

// Lookback horizons accepted by the top listing's t parameter.
const (
	HorizonAll   Horizon = "all"
	HorizonYear  Horizon = "year"
	HorizonMonth Horizon = "month"
	HorizonWeek  Horizon = "week"
	HorizonDay   Horizon = "day"
)

// Horizons lists every lookback horizon, widest first.
var Horizons = []Horizon{HorizonAll, HorizonYear, HorizonMonth, HorizonWeek, HorizonDay}
