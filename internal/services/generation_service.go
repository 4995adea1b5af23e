package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apperrors "github.com/SAP-F-2025/course-service/internal/errors"
	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/utils"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

// TextGenerator is a generative text provider taking one prompt and returning free-form text
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerationService elicits a validated course skeleton (no videos yet) from the provider
type GenerationService interface {
	GenerateCourse(ctx context.Context, req models.CourseRequest) (*models.Course, error)
}

type generationService struct {
	generator TextGenerator
	validator *validator.Validator
	logger    *ServiceLogger
}

func NewGenerationService(generator TextGenerator, v *validator.Validator, logger *slog.Logger) GenerationService {
	return &generationService{
		generator: generator,
		validator: v,
		logger:    NewServiceLogger(logger, LogConfig{Service: "course-service", Component: "generation"}),
	}
}

const courseInstructions = `You are a professional online course creator. Given a course topic and a number of lessons, return a VALID, strictly-structured JSON object in this form:
{
  "course_name": "...",
  "goal": "...one paragraph...",
  "lessons": [
    {
      "title": "...",
      "explanation": "...(multi-paragraph explanation for a beginner)...",
      "quizzes": [
        {
          "question": "...",
          "type": "multiple choice" | "true/false" | "short answer",
          "options": ["...","...","...","..."],
          "answer": "..."
        }
      ]
    }
  ]
}
Important constraints:
- Return exactly %[1]d lessons.
- Each lesson must have exactly %[2]d quizzes. Mix multiple choice, true/false and short answer types.
- For multiple choice, include "options" as an array of %[3]d possible answers given as plain text, never prefixed with "A."/"B." etc.
- Include "options" ONLY for multiple choice.
- "answer" must match the exact option text or the expected answer.
- Only output pure JSON.
`

func buildCoursePrompt(req models.CourseRequest) string {
	return fmt.Sprintf(courseInstructions, req.LessonCount, models.QuizzesPerLesson, models.MultipleChoiceOptions) +
		fmt.Sprintf("\nTopic: %s\nNumber of lessons: %d", req.Topic, req.LessonCount)
}

// GenerateCourse makes a single provider call. Provider errors, extraction misses and
// validation failures all come back as *GenerationError.
func (s *generationService) GenerateCourse(ctx context.Context, req models.CourseRequest) (*models.Course, error) {
	op := s.logger.WithOperation(ctx, "generate_course")

	text, err := s.generator.Generate(ctx, buildCoursePrompt(req))
	if err != nil {
		genErr := NewGenerationError(err.Error(), err)
		op.LogResult("", "course", genErr)
		return nil, genErr
	}

	payload, ok := utils.ExtractJSONObject(text)
	if !ok {
		genErr := NewGenerationError(ErrPayloadNotFound.Error(), ErrPayloadNotFound)
		op.LogResult("", "course", genErr)
		return nil, genErr
	}

	course, err := s.validator.Course().Validate(payload, req.LessonCount)
	if err != nil {
		cause := "generated course is invalid: " + err.Error()
		var ve *apperrors.ValidationError
		if errors.As(err, &ve) {
			cause = fmt.Sprintf("generated course is invalid: %s %s", ve.Field, ve.Message)
		}
		genErr := NewGenerationError(cause, err)
		op.LogResult("", "course", genErr)
		return nil, genErr
	}

	op.LogResult("", "course", nil)
	return course, nil
}
