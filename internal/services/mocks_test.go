package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockMediaSearcher struct {
	mock.Mock
}

func (m *MockMediaSearcher) Search(ctx context.Context, query string, maxResults int64) ([]models.VideoRef, error) {
	args := m.Called(ctx, query, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VideoRef), args.Error(1)
}

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Save(ctx context.Context, course *models.Course) (string, error) {
	args := m.Called(ctx, course)
	return args.String(0), args.Error(1)
}

func (m *MockCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleQuizzes() []models.Quiz {
	return []models.Quiz{
		{Question: "Capital of France?", Type: models.MultipleChoice, Options: []string{"Berlin", "Paris", "Rome", "Madrid"}, Answer: "Paris"},
		{Question: "Paris is in France.", Type: models.TrueFalse, Answer: "True"},
		{Question: "River through Paris?", Type: models.ShortAnswer, Answer: "Seine"},
		{Question: "Largest French city?", Type: models.MultipleChoice, Options: []string{"Lyon", "Paris", "Nice", "Lille"}, Answer: "Paris"},
		{Question: "Lyon is a capital.", Type: models.TrueFalse, Answer: "False"},
	}
}

func sampleCourse(lessons int) *models.Course {
	course := &models.Course{Name: "Geography of France", Goal: "Learn the basics.", Lessons: []models.Lesson{}}
	for i := 0; i < lessons; i++ {
		course.Lessons = append(course.Lessons, models.Lesson{
			Title:       []string{"Cities", "Rivers", "Regions", "Mountains"}[i%4],
			Explanation: "An explanation.",
			Quizzes:     sampleQuizzes(),
		})
	}
	return course
}
