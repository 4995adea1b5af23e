package providers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/course-service/internal/models"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const watchURL = "https://www.youtube.com/watch?v="

// YouTubeClient searches YouTube for videos matching a lesson query
type YouTubeClient struct {
	service *youtube.Service
	logger  *slog.Logger
}

func NewYouTubeClient(ctx context.Context, apiKey string, logger *slog.Logger, opts ...option.ClientOption) (*YouTubeClient, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &YouTubeClient{service: service, logger: logger}, nil
}

// Search returns up to maxResults videos for query
func (y *YouTubeClient) Search(ctx context.Context, query string, maxResults int64) ([]models.VideoRef, error) {
	resp, err := y.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search failed: %w", err)
	}

	videos := make([]models.VideoRef, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, models.VideoRef{
			Title:     item.Snippet.Title,
			ID:        item.Id.VideoId,
			URL:       watchURL + item.Id.VideoId,
			Thumbnail: defaultThumbnail(item.Snippet.Thumbnails),
		})
	}
	return videos, nil
}

func defaultThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil || t.Default == nil {
		return ""
	}
	return t.Default.Url
}
