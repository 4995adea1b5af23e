package services

import (
	"log/slog"

	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

// ServiceManager hands the service layer to the HTTP handlers
type ServiceManager interface {
	Course() CourseService
	Export() ExportService
}

type Providers struct {
	Text           TextGenerator
	Media          MediaSearcher
	VideosPerQuery int64
}

type serviceManager struct {
	course CourseService
	export ExportService
}

func NewServiceManager(
	repo repositories.CourseRepository,
	providers Providers,
	publisher events.EventPublisher,
	v *validator.Validator,
	logger *slog.Logger,
) ServiceManager {
	generation := NewGenerationService(providers.Text, v, logger)
	enrichment := NewEnrichmentService(providers.Media, providers.VideosPerQuery, logger)

	return &serviceManager{
		course: NewCourseService(repo, generation, enrichment, publisher, v, logger),
		export: NewExportService(NewDocumentRenderer(logger), publisher, logger),
	}
}

func (m *serviceManager) Course() CourseService {
	return m.course
}

func (m *serviceManager) Export() ExportService {
	return m.export
}
