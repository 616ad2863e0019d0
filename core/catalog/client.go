package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Searcher returns up to limit videos of a channel matching a query, in relevance order.
type Searcher interface {
	Search(ctx context.Context, channelID, query string, limit int) ([]Video, error)
}

// Lister returns every video of a channel.
type Lister interface {
	ListAll(ctx context.Context, channelID string) ([]Video, error)
}

// ChannelResolver maps a channel handle to a channel id.
type ChannelResolver interface {
	ResolveChannel(ctx context.Context, handle string) (string, error)
}

// Client is a rate-limited YouTube Data API client.
type Client struct {
	apiKey     string
	baseURL    string
	pageSize   int
	httpClient *http.Client
	limiter    *rate.Limiter
}

var (
	_ Searcher        = (*Client)(nil)
	_ Lister          = (*Client)(nil)
	_ ChannelResolver = (*Client)(nil)
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLimiter overrides the request limiter.
func WithLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		if limiter != nil {
			c.limiter = limiter
		}
	}
}

// NewClient creates a catalog client from configuration.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("catalog api key required")
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errors.New("catalog base url required")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		limiter:    rate.NewLimiter(limit, 1),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Search queries the channel for videos matching query, keeping the API's relevance order.
func (c *Client) Search(ctx context.Context, channelID, query string, limit int) ([]Video, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("channelId", channelID)
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(limit))

	var payload searchResponse
	if err := c.get(ctx, "/search", params, &payload); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	videos := payload.videos()
	if len(videos) > limit {
		videos = videos[:limit]
	}
	return videos, nil
}

// ListPage fetches one page of the channel's videos, newest first.
// An empty pageToken requests the first page.
func (c *Client) ListPage(ctx context.Context, channelID, pageToken string) (*Page, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("order", "date")
	params.Set("channelId", channelID)
	params.Set("maxResults", strconv.Itoa(c.pageSize))
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var payload searchResponse
	if err := c.get(ctx, "/search", params, &payload); err != nil {
		return nil, fmt.Errorf("list channel %s: %w", channelID, err)
	}

	return &Page{Videos: payload.videos(), NextPageToken: payload.NextPageToken}, nil
}

// ListAll follows page tokens until the listing is exhausted.
func (c *Client) ListAll(ctx context.Context, channelID string) ([]Video, error) {
	var (
		videos []Video
		token  string
		seen   = make(map[string]struct{})
	)

	for {
		page, err := c.ListPage(ctx, channelID, token)
		if err != nil {
			return nil, err
		}
		videos = append(videos, page.Videos...)

		if page.NextPageToken == "" {
			return videos, nil
		}
		if _, loop := seen[page.NextPageToken]; loop {
			return nil, fmt.Errorf("list channel %s: page token %q repeated", channelID, page.NextPageToken)
		}
		seen[page.NextPageToken] = struct{}{}
		token = page.NextPageToken
	}
}

// ResolveChannel returns the channel id for a handle such as "@ourlumenpoint".
func (c *Client) ResolveChannel(ctx context.Context, handle string) (string, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return "", errors.New("channel handle must not be empty")
	}
	if !strings.HasPrefix(handle, "@") {
		handle = "@" + handle
	}

	params := url.Values{}
	params.Set("part", "id")
	params.Set("forHandle", handle)

	var payload channelsResponse
	if err := c.get(ctx, "/channels", params, &payload); err != nil {
		return "", fmt.Errorf("resolve channel %s: %w", handle, err)
	}
	if len(payload.Items) == 0 || payload.Items[0].ID == "" {
		return "", fmt.Errorf("resolve channel %s: %w", handle, ErrChannelNotFound)
	}
	return payload.Items[0].ID, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse catalog url: %w", err)
	}
	params.Set("key", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		apiErr.Message = payload.Error.Message
		if len(payload.Error.Errors) > 0 {
			apiErr.Reason = payload.Error.Errors[0].Reason
		}
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}
