package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourseEvent(t *testing.T) {
	event := NewCourseEvent(EventCourseGenerated, CourseGeneratedEvent{CourseID: "c1", LessonCount: 3})

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventCourseGenerated, event.Type)
	assert.Equal(t, "course-service", event.Source)
	assert.False(t, event.Timestamp.IsZero())

	body, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"type":"course.generated"`)
	assert.Contains(t, string(body), `"course_id":"c1"`)
}

func TestMockEventPublisher(t *testing.T) {
	pub := NewMockEventPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	require.NoError(t, pub.PublishCourseEvent(ctx, NewCourseEvent(EventCourseGenerated, nil)))
	require.NoError(t, pub.PublishCourseEvent(ctx, NewCourseEvent(EventCourseExported, CourseExportedEvent{Format: "pdf"})))

	published := pub.GetPublishedEvents()
	require.Len(t, published, 2)
	assert.Equal(t, EventCourseExported, published[1].Type)

	pub.ClearEvents()
	assert.Empty(t, pub.GetPublishedEvents())
	assert.NoError(t, pub.Close())
}

func TestLogEventPublisher(t *testing.T) {
	pub := NewLogEventPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		require.NoError(t, pub.PublishCourseEvent(ctx, NewCourseEvent(EventCourseGenerated, CourseGeneratedEvent{CourseID: "c1"})))
	}
	assert.Equal(t, LogEventPublisher{logger: pub.logger}, *pub)
	assert.NoError(t, pub.Close())
}
