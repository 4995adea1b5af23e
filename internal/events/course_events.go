package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the course lifecycle events emitted by the service
type EventType string

const (
	EventCourseGenerated EventType = "course.generated"
	EventCourseExported  EventType = "course.exported"
)

const (
	eventSource  = "course-service"
	eventVersion = "1.0"
)

// CourseEvent is the envelope for every published event
type CourseEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type CourseGeneratedEvent struct {
	CourseID    string `json:"course_id"`
	CourseName  string `json:"course_name"`
	Topic       string `json:"topic"`
	LessonCount int    `json:"lesson_count"`
	VideoCount  int    `json:"video_count"`
}

type CourseExportedEvent struct {
	CourseName string `json:"course_name"`
	Format     string `json:"format"`
	SizeBytes  int    `json:"size_bytes"`
}

// NewCourseEvent wraps data into an envelope with a fresh id and timestamp
func NewCourseEvent(eventType EventType, data interface{}) *CourseEvent {
	return &CourseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}
