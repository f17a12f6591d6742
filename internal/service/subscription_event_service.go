// FILE: internal/service/subscription_event_service.go
// Reacts to subscription changes published on the event bus
package service

import (
	"context"

	"guide-catalog-be/internal/pkg/logger"
	"guide-catalog-be/pkg/events"
)

type ISubscriptionEventService interface {
	Handle(ctx context.Context, event events.Event) error
}

type subscriptionEventService struct {
	quotaService QuotaService
	logger       logger.ILogger
}

func NewSubscriptionEventService(quotaService QuotaService, logger logger.ILogger) ISubscriptionEventService {
	return &subscriptionEventService{
		quotaService: quotaService,
		logger:       logger,
	}
}

// Handle drops the cached quota of the user named in the event. Malformed
// events are logged and acknowledged; only cache failures are retried.
func (s *subscriptionEventService) Handle(ctx context.Context, event events.Event) error {
	userId, err := events.UserID(event)
	if err != nil {
		s.logger.Warn("SUBSCRIPTION_EVENTS", "Ignoring subscription event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return nil
	}

	if err := s.quotaService.InvalidateQuota(ctx, userId); err != nil {
		s.logger.Error("SUBSCRIPTION_EVENTS", "Failed to invalidate quota", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return err
	}

	s.logger.Info("SUBSCRIPTION_EVENTS", "Quota invalidated", map[string]interface{}{
		"type":    event.EventType(),
		"user_id": userId.String(),
	})
	return nil
}
