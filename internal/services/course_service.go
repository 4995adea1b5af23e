package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

// CourseService composes the generation pipeline and the stored-course operations
type CourseService interface {
	Generate(ctx context.Context, req models.CourseRequest) (*models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
	GradeStored(ctx context.Context, id string, answers models.LessonAnswers) (*models.GradingSummary, error)
}

type courseService struct {
	repo       repositories.CourseRepository
	generation GenerationService
	enrichment EnrichmentService
	publisher  events.EventPublisher
	validator  *validator.Validator
	logger     *ServiceLogger
	now        func() time.Time
}

func NewCourseService(
	repo repositories.CourseRepository,
	generation GenerationService,
	enrichment EnrichmentService,
	publisher events.EventPublisher,
	v *validator.Validator,
	logger *slog.Logger,
) CourseService {
	return &courseService{
		repo:       repo,
		generation: generation,
		enrichment: enrichment,
		publisher:  publisher,
		validator:  v,
		logger:     NewServiceLogger(logger, LogConfig{Service: "course-service", Component: "course"}),
		now:        time.Now,
	}
}

// Generate validates req, generates and enriches the course, persists it and returns a
// detached copy carrying the stored id. Nothing is called downstream of a failed step.
func (s *courseService) Generate(ctx context.Context, req models.CourseRequest) (*models.Course, error) {
	op := s.logger.WithOperation(ctx, "generate")

	if err := s.validator.Validate(req); err != nil {
		inputErr := toInputError(err)
		op.LogResult("", "course", inputErr)
		return nil, inputErr
	}

	skeleton, err := s.generation.GenerateCourse(ctx, req)
	if err != nil {
		op.LogResult("", "course", err)
		return nil, err
	}

	course := s.enrichment.Enrich(ctx, req.Topic, skeleton)
	course.CreatedAt = s.now().UTC()

	id, err := s.repo.Save(ctx, course)
	if err != nil {
		persistErr := NewPersistenceError("save", err)
		op.LogResult("", "course", persistErr)
		return nil, persistErr
	}

	result := course.Clone()
	result.ID = id

	s.publishGenerated(ctx, req, &result)
	op.LogResult(id, "course", nil)
	return &result, nil
}

func (s *courseService) GetByID(ctx context.Context, id string) (*models.Course, error) {
	op := s.logger.WithOperation(ctx, "get")

	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			err = ErrCourseNotFound
		} else {
			err = NewPersistenceError("get", err)
		}
		op.LogResult(id, "course", err)
		return nil, err
	}

	op.LogResult(id, "course", nil)
	return course, nil
}

func (s *courseService) GradeStored(ctx context.Context, id string, answers models.LessonAnswers) (*models.GradingSummary, error) {
	course, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := Grade(course, answers).Summary()
	return &summary, nil
}

func (s *courseService) publishGenerated(ctx context.Context, req models.CourseRequest, course *models.Course) {
	if s.publisher == nil {
		return
	}
	event := events.NewCourseEvent(events.EventCourseGenerated, events.CourseGeneratedEvent{
		CourseID:    course.ID,
		CourseName:  course.Name,
		Topic:       req.Topic,
		LessonCount: len(course.Lessons),
		VideoCount:  course.VideoCount(),
	})
	if err := s.publisher.PublishCourseEvent(ctx, event); err != nil {
		s.logger.logger.Warn("Failed to publish course generated event", "course_id", course.ID, "error", err)
	}
}

func toInputError(err error) *InputError {
	var errs ValidationErrors
	if errors.As(err, &errs) {
		return NewInputError(errs...)
	}
	return NewInputError(ValidationError{Field: "request", Message: err.Error()})
}
