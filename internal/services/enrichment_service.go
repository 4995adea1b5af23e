package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	"github.com/SAP-F-2025/course-service/internal/models"
	"golang.org/x/sync/errgroup"
)

// DefaultVideosPerLesson is the result cap of each lesson's media query
const DefaultVideosPerLesson int64 = 2

// MediaSearcher is a media-search provider returning at most maxResults video references
type MediaSearcher interface {
	Search(ctx context.Context, query string, maxResults int64) ([]models.VideoRef, error)
}

// EnrichmentService attaches videos to every lesson of a course. It never fails as a whole.
type EnrichmentService interface {
	Enrich(ctx context.Context, topic string, course *models.Course) *models.Course
}

type enrichmentService struct {
	searcher   MediaSearcher
	maxResults int64
	logger     *ServiceLogger
}

func NewEnrichmentService(searcher MediaSearcher, maxResults int64, logger *slog.Logger) EnrichmentService {
	if maxResults <= 0 {
		maxResults = DefaultVideosPerLesson
	}
	return &enrichmentService{
		searcher:   searcher,
		maxResults: maxResults,
		logger:     NewServiceLogger(logger, LogConfig{Service: "course-service", Component: "enrichment"}),
	}
}

// Enrich queries "<topic> <lesson title>" for every lesson concurrently and waits for all of
// them. A failed query leaves that lesson with an empty video list; results are joined by
// lesson index. The input course is not modified.
func (s *enrichmentService) Enrich(ctx context.Context, topic string, course *models.Course) *models.Course {
	out := course.Clone()
	if strings.TrimSpace(topic) == "" {
		topic = out.Name
	}
	results := make([][]models.VideoRef, len(out.Lessons))

	// plain Group: a failing branch must not cancel its siblings
	var g errgroup.Group
	for i := range out.Lessons {
		i := i
		query := lessonQuery(topic, out.Lessons[i].Title)
		g.Go(func() error {
			results[i] = s.searchLesson(ctx, i, query)
			return nil
		})
	}
	_ = g.Wait()

	for i := range out.Lessons {
		out.Lessons[i].Videos = results[i]
	}
	return &out
}

func (s *enrichmentService) searchLesson(ctx context.Context, index int, query string) (videos []models.VideoRef) {
	videos = []models.VideoRef{}

	defer func() {
		if r := recover(); r != nil {
			s.logger.LogRecovery(ctx, "enrich_lesson", r, debug.Stack())
			videos = []models.VideoRef{}
		}
	}()

	found, err := s.searcher.Search(ctx, query, s.maxResults)
	if err != nil {
		s.logger.logger.Warn("Lesson enrichment failed",
			"lesson_index", index,
			"query", query,
			"error", err)
		return videos
	}
	if int64(len(found)) > s.maxResults {
		found = found[:s.maxResults]
	}
	if found != nil {
		videos = found
	}

	s.logger.logger.Debug("Lesson enriched",
		"lesson_index", index,
		"query", query,
		"videos", len(videos))
	return videos
}

func lessonQuery(topic, title string) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", topic, title))
}
