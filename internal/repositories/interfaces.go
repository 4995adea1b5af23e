package repositories

import (
	"context"
	"errors"

	"github.com/SAP-F-2025/course-service/internal/models"
)

// ErrNotFound is returned by lookups that match no stored course
var ErrNotFound = errors.New("record not found")

// CourseRepository is the course store. Save persists the whole enriched
// course as one unit and returns the identifier it was stored under.
type CourseRepository interface {
	Save(ctx context.Context, course *models.Course) (string, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
}
