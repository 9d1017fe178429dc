// Package api provides the Reddit listing API client.
//
// Endpoints:
//   - OAuth listings: https://oauth.reddit.com
//   - Token grants: https://www.reddit.com/api/v1/access_token
//
// Key listings: /r/{subreddit}/search, /r/{subreddit}/new, /r/{subreddit}/top
package api
