package postgres

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "courses.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CourseRecord{}))
	return db
}

func sampleCourse() *models.Course {
	return &models.Course{
		Name:      "Intro to Go",
		Goal:      "Write small programs.",
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Lessons: []models.Lesson{{
			Title:       "Types",
			Explanation: "Go is statically typed.",
			Quizzes: []models.Quiz{
				{Question: "Is Go compiled?", Type: models.TrueFalse, Answer: "True"},
			},
			Videos: []models.VideoRef{
				{Title: "Go types", ID: "abc", URL: "https://www.youtube.com/watch?v=abc"},
			},
		}},
	}
}

func TestCoursePostgreSQL_SaveAndGet(t *testing.T) {
	repo := NewCoursePostgreSQL(newTestDB(t))
	ctx := context.Background()
	course := sampleCourse()

	id, err := repo.Save(ctx, course)
	require.NoError(t, err)
	assert.Len(t, id, 36)
	assert.Empty(t, course.ID, "caller's course must not be mutated")

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, course.Name, got.Name)
	assert.Equal(t, course.Lessons, got.Lessons)
	assert.True(t, course.CreatedAt.Equal(got.CreatedAt))
}

func TestCoursePostgreSQL_DistinctIDs(t *testing.T) {
	repo := NewCoursePostgreSQL(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Save(ctx, sampleCourse())
	require.NoError(t, err)
	second, err := repo.Save(ctx, sampleCourse())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCoursePostgreSQL_NotFound(t *testing.T) {
	repo := NewCoursePostgreSQL(newTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCoursePostgreSQL_LongCourseName(t *testing.T) {
	repo := NewCoursePostgreSQL(newTestDB(t))
	ctx := context.Background()
	course := sampleCourse()
	course.Name = strings.Repeat("Advanced topics in distributed systems ", 20)

	id, err := repo.Save(ctx, course)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, course.Name, got.Name)
}
