package catalog

// Config holds configuration for the video catalog (YouTube Data API v3).
type Config struct {
	// APIKey is the YouTube Data API key.
	APIKey string `mapstructure:"api_key" default:""`
	// BaseURL is the root of the YouTube Data API.
	BaseURL string `mapstructure:"base_url" default:"https://www.googleapis.com/youtube/v3"`
	// ChannelID is the channel to reconcile against. Takes precedence over ChannelHandle.
	ChannelID string `mapstructure:"channel_id" default:""`
	// ChannelHandle is resolved to a channel id when ChannelID is empty (e.g. @ourlumenpoint).
	ChannelHandle string `mapstructure:"channel_handle" default:""`
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// RequestsPerSecond throttles outgoing API calls.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"5"`
	// PageSize is the page size used when listing every channel video (max 50).
	PageSize int `mapstructure:"page_size" default:"50"`
}
