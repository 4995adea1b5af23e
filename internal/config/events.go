package config

import (
	"log/slog"
	"strings"

	"github.com/SAP-F-2025/course-service/internal/events"
)

// EventConfig holds configuration for event publishing
type EventConfig struct {
	Enabled      bool
	Publisher    string // kafka or log
	KafkaBrokers string
	CourseTopic  string
}

// GetKafkaBrokers returns Kafka brokers as a slice
func (c *EventConfig) GetKafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// CreateEventPublisher creates an event publisher based on configuration
func (c *EventConfig) CreateEventPublisher(logger *slog.Logger) (events.EventPublisher, error) {
	if !c.Enabled {
		logger.Info("Event publishing disabled, events are only logged")
		return events.NewLogEventPublisher(logger), nil
	}

	switch c.Publisher {
	case "kafka":
		logger.Info("Creating Kafka event publisher",
			"brokers", c.KafkaBrokers,
			"topic", c.CourseTopic)

		return events.NewKafkaEventPublisher(events.PublisherConfig{
			KafkaBrokers: c.GetKafkaBrokers(),
			TopicName:    c.CourseTopic,
			Logger:       logger,
		})
	case "log", "mock":
		logger.Info("Using log event publisher")
		return events.NewLogEventPublisher(logger), nil
	default:
		logger.Warn("Unknown event publisher type, falling back to log publisher", "publisher", c.Publisher)
		return events.NewLogEventPublisher(logger), nil
	}
}
