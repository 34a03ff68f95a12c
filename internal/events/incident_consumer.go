package events

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/safestride/service-navigation/internal/application"
	"github.com/safestride/service-navigation/pkg/events"
	"github.com/safestride/service-navigation/pkg/kafka"
)

// incidentCategoryToReportType maps SOS/incident categories onto safety
// report types. Unmapped categories fall back to unsafe_area.
var incidentCategoryToReportType = map[string]string{
	"harassment":          "harassment",
	"theft":               "theft",
	"assault":             "assault",
	"stalking":            "suspicious_activity",
	"suspicious_activity": "suspicious_activity",
}

// IncidentEventConsumer listens to incident events from sibling services and
// folds them into the report store, so subsequent route queries score against
// them.
type IncidentEventConsumer struct {
	consumer *kafka.Consumer
	service  *application.ReportService
	logger   *zap.Logger
}

// NewIncidentEventConsumer creates a new IncidentEventConsumer.
func NewIncidentEventConsumer(
	brokers []string,
	groupID string,
	service *application.ReportService,
	logger *zap.Logger,
) *IncidentEventConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, events.TopicIncidentEvents, logger)
	return &IncidentEventConsumer{
		consumer: consumer,
		service:  service,
		logger:   logger,
	}
}

// Start begins consuming incident events. This blocks until the context is
// cancelled.
func (c *IncidentEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *IncidentEventConsumer) Close() error {
	return c.consumer.Close()
}

func (c *IncidentEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	var cloudEvent kafka.CloudEvent
	if err := json.Unmarshal(msg.Value, &cloudEvent); err != nil {
		c.logger.Error("failed to parse cloud event from incident topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case events.IncidentReported:
		return c.handleIncidentReported(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled incident event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *IncidentEventConsumer) handleIncidentReported(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var evt events.IncidentReportedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse IncidentReportedEvent data",
			zap.Error(err),
		)
		return nil // Don't retry malformed data
	}

	reportType, ok := incidentCategoryToReportType[evt.Category]
	if !ok {
		reportType = "unsafe_area"
	}

	req := application.SubmitReportRequest{
		Location:    evt.Location,
		ReportType:  reportType,
		Severity:    evt.Severity,
		Description: evt.Description,
		IsAnonymous: evt.UserID == nil,
	}

	_, err := c.service.SubmitReport(ctx, evt.UserID, req)
	if err != nil {
		c.logger.Error("failed to ingest incident as safety report",
			zap.String("incident_id", evt.IncidentID.String()),
			zap.Error(err),
		)
		// Validation failures are permanent; don't redeliver.
		return nil
	}

	c.logger.Info("incident ingested as safety report",
		zap.String("incident_id", evt.IncidentID.String()),
		zap.String("report_type", reportType),
	)
	return nil
}
