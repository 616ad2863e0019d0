// Package catalog is a client for the remote video catalog (YouTube Data API v3).
//
// It exposes the three operations the sync needs:
//
//   - Search: up to K videos of one channel matching a title, in the API's relevance order.
//   - ListPage / ListAll: cursor-paginated listing of every channel video, newest first.
//   - ResolveChannel: channel id lookup from a handle.
//
// Requests are throttled with a token-bucket limiter. The client never retries; callers
// decide what a failed lookup means for them. Non-2xx responses are returned as *APIError.
//
// # Usage
//
//	client, err := catalog.NewClient(cfg.Catalog)
//	videos, err := client.Search(ctx, channelID, "The Five Pillars of Stoicism", 10)
package catalog
