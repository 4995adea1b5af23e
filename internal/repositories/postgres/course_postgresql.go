package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CoursePostgreSQL struct {
	db *gorm.DB
}

func NewCoursePostgreSQL(db *gorm.DB) repositories.CourseRepository {
	return &CoursePostgreSQL{db: db}
}

// Save stores the course document in a single row. The caller's course is not modified.
func (c *CoursePostgreSQL) Save(ctx context.Context, course *models.Course) (string, error) {
	if course == nil {
		return "", fmt.Errorf("course is nil")
	}

	doc := course.Clone()
	doc.ID = uuid.NewString()

	record := &models.CourseRecord{
		ID:          doc.ID,
		Name:        doc.Name,
		LessonCount: len(doc.Lessons),
		Document:    datatypes.NewJSONType(doc),
		CreatedAt:   doc.CreatedAt,
	}

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create course: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return record.ID, nil
}

// GetByID retrieves a stored course by ID
func (c *CoursePostgreSQL) GetByID(ctx context.Context, id string) (*models.Course, error) {
	var record models.CourseRecord
	err := c.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	course := record.Document.Data()
	course.ID = record.ID
	return &course, nil
}
