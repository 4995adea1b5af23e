package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func providerReply(t *testing.T, course *models.Course) string {
	t.Helper()
	body, err := json.Marshal(course)
	require.NoError(t, err)
	return "Sure! Here is the course:\n```json\n" + string(body) + "\n```\nEnjoy."
}

func newGenerationService(gen TextGenerator) GenerationService {
	return NewGenerationService(gen, validator.New(), testLogger())
}

func TestGenerationService_GenerateCourse(t *testing.T) {
	gen := new(MockTextGenerator)
	ctx := context.Background()
	req := models.CourseRequest{Topic: "French geography", LessonCount: 2}

	gen.On("Generate", ctx, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Topic: French geography") &&
			strings.Contains(prompt, "Number of lessons: 2") &&
			strings.Contains(prompt, "exactly 5 quizzes")
	})).Return(providerReply(t, sampleCourse(2)), nil).Once()

	course, err := newGenerationService(gen).GenerateCourse(ctx, req)
	require.NoError(t, err)
	require.Len(t, course.Lessons, 2)
	for _, lesson := range course.Lessons {
		assert.Len(t, lesson.Quizzes, models.QuizzesPerLesson)
		assert.Empty(t, lesson.Videos)
	}
	gen.AssertExpectations(t)
}

func TestGenerationService_Failures(t *testing.T) {
	fourQuizzes := sampleCourse(1)
	fourQuizzes.Lessons[0].Quizzes = fourQuizzes.Lessons[0].Quizzes[:4]

	tests := []struct {
		name      string
		reply     string
		replyErr  error
		lessons   int
		wantCause string
	}{
		{
			name:      "provider error",
			replyErr:  errors.New("quota exceeded"),
			lessons:   1,
			wantCause: "quota exceeded",
		},
		{
			name:      "no json in reply",
			reply:     "I cannot help with that.",
			lessons:   1,
			wantCause: ErrPayloadNotFound.Error(),
		},
		{
			name:      "wrong quiz count",
			reply:     providerReply(t, fourQuizzes),
			lessons:   1,
			wantCause: "lessons[0].quizzes",
		},
		{
			name:      "wrong lesson count",
			reply:     providerReply(t, sampleCourse(2)),
			lessons:   3,
			wantCause: "exactly 3 lessons",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(MockTextGenerator)
			gen.On("Generate", mock.Anything, mock.Anything).Return(tt.reply, tt.replyErr).Once()

			course, err := newGenerationService(gen).GenerateCourse(context.Background(),
				models.CourseRequest{Topic: "France", LessonCount: tt.lessons})
			assert.Nil(t, course)
			require.Error(t, err)
			assert.True(t, IsGeneration(err))

			var genErr *GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Contains(t, genErr.Cause, tt.wantCause)
			gen.AssertNumberOfCalls(t, "Generate", 1)
		})
	}
}
