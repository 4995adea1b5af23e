package repositories

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/course-service/internal/cache"
	"github.com/SAP-F-2025/course-service/internal/models"
)

// CachedCourseRepository serves reads from the cache and falls back to the wrapped store.
// Cache failures are logged and never surface to the caller.
type CachedCourseRepository struct {
	next   CourseRepository
	cache  cache.CacheService
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedCourseRepository(next CourseRepository, c cache.CacheService, ttl time.Duration, logger *slog.Logger) *CachedCourseRepository {
	return &CachedCourseRepository{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

func courseKey(id string) string {
	return "course:" + id
}

func (r *CachedCourseRepository) Save(ctx context.Context, course *models.Course) (string, error) {
	id, err := r.next.Save(ctx, course)
	if err != nil {
		return "", err
	}

	stored := course.Clone()
	stored.ID = id
	if err := r.cache.Set(ctx, courseKey(id), stored, r.ttl); err != nil {
		r.logger.Warn("Failed to cache saved course", "course_id", id, "error", err)
	}
	return id, nil
}

func (r *CachedCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	err := r.cache.Get(ctx, courseKey(id), &course)
	if err == nil {
		return &course, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		r.logger.Warn("Course cache read failed", "course_id", id, "error", err)
	}

	found, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, courseKey(id), found, r.ttl); err != nil {
		r.logger.Warn("Failed to cache course", "course_id", id, "error", err)
	}
	return found, nil
}
