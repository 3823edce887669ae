package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"example.com/workout/internal/domain"
	"example.com/workout/internal/events"
)

type summarizer interface {
	Summarize(context.Context, events.WorkoutPackage) (*domain.Summary, error)
}

type summaryPublisher interface {
	PublishSummary(ctx context.Context, tenantID string, summary domain.Summary) error
	PublishRejected(ctx context.Context, rejected events.WorkoutRejected) error
}

// SummaryHandler turns workout packages into published summaries. Packages
// that fail validation go to the dead-letter topic and count as handled.
type SummaryHandler struct {
	service   summarizer
	publisher summaryPublisher
	logger    *log.Logger
}

// NewSummaryHandler constructs a SummaryHandler.
func NewSummaryHandler(service summarizer, publisher summaryPublisher, logger *log.Logger) *SummaryHandler {
	if logger == nil {
		logger = log.New(log.Writer(), "[consumer] ", log.LstdFlags)
	}
	return &SummaryHandler{service: service, publisher: publisher, logger: logger}
}

// Handle implements Handler.
func (h *SummaryHandler) Handle(ctx context.Context, msg Message) error {
	if msg.EventType != events.TypeWorkoutPackage {
		recordSkipped(msg)
		return nil
	}

	var pkg events.WorkoutPackage
	if err := json.Unmarshal(msg.Payload, &pkg); err != nil {
		return h.reject(ctx, msg, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInputData, err))
	}

	summary, err := h.service.Summarize(ctx, pkg)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInputData) {
			return h.reject(ctx, msg, &pkg, err)
		}
		return err
	}

	if err := h.publisher.PublishSummary(ctx, msg.TenantID, *summary); err != nil {
		return fmt.Errorf("publish summary %s: %w", summary.ID, err)
	}
	return nil
}

func (h *SummaryHandler) reject(ctx context.Context, msg Message, pkg *events.WorkoutPackage, cause error) error {
	h.logger.Printf("rejecting package (tenant=%s, offset=%d): %v", msg.TenantID, msg.Offset, cause)

	rejected := events.WorkoutRejected{
		TenantID: msg.TenantID,
		Package:  pkg,
		Reason:   cause.Error(),
	}
	if pkg == nil {
		rejected.RawPayload = string(msg.Payload)
	}
	if err := h.publisher.PublishRejected(ctx, rejected); err != nil {
		return fmt.Errorf("publish rejected package: %w", err)
	}
	recordRejected(msg)
	return nil
}
