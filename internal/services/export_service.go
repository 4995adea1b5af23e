package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExportService renders a caller-supplied course as a PDF document or an xlsx workbook
type ExportService interface {
	ExportDocument(ctx context.Context, course *models.Course) (*ExportResult, error)
	ExportWorkbook(ctx context.Context, course *models.Course) (*ExportResult, error)
}

type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

type exportService struct {
	renderer  DocumentRenderer
	publisher events.EventPublisher
	logger    *ServiceLogger
}

func NewExportService(renderer DocumentRenderer, publisher events.EventPublisher, logger *slog.Logger) ExportService {
	return &exportService{
		renderer:  renderer,
		publisher: publisher,
		logger:    NewServiceLogger(logger, LogConfig{Service: "course-service", Component: "export"}),
	}
}

func (s *exportService) ExportDocument(ctx context.Context, course *models.Course) (*ExportResult, error) {
	op := s.logger.WithOperation(ctx, "export_document")

	data, err := s.renderer.Render(course)
	if err != nil {
		op.LogResult("", "course", err)
		return nil, err
	}

	result := &ExportResult{
		Filename:    ExportFilename(course.Name, models.ExportPDF),
		ContentType: models.ExportPDF.ContentType(),
		Data:        data,
	}
	s.publishExported(ctx, course, models.ExportPDF, len(data))
	op.LogResult(course.ID, "course", nil)
	return result, nil
}

var quizHeaders = []interface{}{
	"Lesson", "Lesson Title", "Number", "Question", "Type",
	"Option A", "Option B", "Option C", "Option D", "Answer",
}

var videoHeaders = []interface{}{"Lesson", "Lesson Title", "Video Title", "Video ID", "URL", "Thumbnail"}

// ExportWorkbook writes a "Quizzes" sheet with one row per quiz and a "Videos" sheet with one row per video
func (s *exportService) ExportWorkbook(ctx context.Context, course *models.Course) (*ExportResult, error) {
	op := s.logger.WithOperation(ctx, "export_workbook")

	if err := checkRenderable(course); err != nil {
		op.LogResult("", "course", err)
		return nil, err
	}

	data, err := buildWorkbook(course)
	if err != nil {
		op.LogResult("", "course", err)
		return nil, err
	}

	result := &ExportResult{
		Filename:    ExportFilename(course.Name, models.ExportWorkbook),
		ContentType: models.ExportWorkbook.ContentType(),
		Data:        data,
	}
	s.publishExported(ctx, course, models.ExportWorkbook, len(data))
	op.LogResult(course.ID, "course", nil)
	return result, nil
}

const (
	quizSheet  = "Quizzes"
	videoSheet = "Videos"
)

func buildWorkbook(course *models.Course) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", quizSheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	if _, err := f.NewSheet(videoSheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	if err := writeRow(f, quizSheet, 1, quizHeaders); err != nil {
		return nil, err
	}
	if err := writeRow(f, videoSheet, 1, videoHeaders); err != nil {
		return nil, err
	}

	quizRow, videoRow := 2, 2
	for li, lesson := range course.Lessons {
		for qi, quiz := range lesson.Quizzes {
			qt, ok := models.ParseQuizType(string(quiz.Type))
			if !ok {
				qt = quiz.Type
			}
			row := []interface{}{li + 1, lesson.Title, qi + 1, quiz.Question, string(qt)}
			for oi := 0; oi < models.MultipleChoiceOptions; oi++ {
				opt := ""
				if qt == models.MultipleChoice && oi < len(quiz.Options) {
					opt = quiz.Options[oi]
				}
				row = append(row, opt)
			}
			row = append(row, quiz.Answer)

			if err := writeRow(f, quizSheet, quizRow, row); err != nil {
				return nil, err
			}
			quizRow++
		}

		for _, v := range lesson.Videos {
			row := []interface{}{li + 1, lesson.Title, v.Title, v.ID, v.URL, v.Thumbnail}
			if err := writeRow(f, videoSheet, videoRow, row); err != nil {
				return nil, err
			}
			videoRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func (s *exportService) publishExported(ctx context.Context, course *models.Course, format models.ExportFormat, size int) {
	if s.publisher == nil {
		return
	}
	event := events.NewCourseEvent(events.EventCourseExported, events.CourseExportedEvent{
		CourseName: course.Name,
		Format:     string(format),
		SizeBytes:  size,
	})
	if err := s.publisher.PublishCourseEvent(ctx, event); err != nil {
		s.logger.logger.Warn("Failed to publish course exported event", "format", format, "error", err)
	}
}
