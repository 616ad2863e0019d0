package catalog

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MaxPageSize is the largest maxResults value the API accepts.
	MaxPageSize = 50
)

// ErrChannelNotFound is returned when a channel handle does not resolve to a channel.
var ErrChannelNotFound = errors.New("channel not found")

// Video is a catalog entry.
type Video struct {
	ID          string    `json:"videoId"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Page is one page of a channel listing.
type Page struct {
	Videos        []Video
	NextPageToken string
}

// APIError is returned for non-2xx API responses.
type APIError struct {
	StatusCode int
	Message    string
	Reason     string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("youtube api error %d (%s): %s", e.StatusCode, e.Reason, e.Message)
	}
	return fmt.Sprintf("youtube api error %d: %s", e.StatusCode, e.Message)
}

type searchResponse struct {
	NextPageToken string       `json:"nextPageToken"`
	Items         []searchItem `json:"items"`
}

type searchItem struct {
	ID struct {
		Kind    string `json:"kind"`
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title       string    `json:"title"`
		PublishedAt time.Time `json:"publishedAt"`
		ChannelID   string    `json:"channelId"`
	} `json:"snippet"`
}

type channelsResponse struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

func (r searchResponse) videos() []Video {
	videos := make([]Video, 0, len(r.Items))
	for _, item := range r.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, Video{
			ID:          item.ID.VideoID,
			Title:       item.Snippet.Title,
			PublishedAt: item.Snippet.PublishedAt,
		})
	}
	return videos
}
