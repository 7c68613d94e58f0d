package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lumiforge/mealsub-backend/internal/models"
	"github.com/lumiforge/mealsub-backend/internal/ydb"
)

// Service writes and reads the subscription history trail
type Service struct {
	db  ydb.Database
	log *slog.Logger
}

// NewService builds an audit service instance
func NewService(db ydb.Database, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{db: db, log: log}
}

// Record is one subscription lifecycle event
type Record struct {
	ID             string
	Timestamp      time.Time
	SubscriptionID string
	EventType      models.HistoryEventType
	ActorID        string
	Details        map[string]any
}

// Record stores the event synchronously
func (s *Service) Record(ctx context.Context, record Record) error {
	if record.SubscriptionID == "" {
		return errors.New("subscription_id is required")
	}
	if record.EventType == "" {
		return errors.New("event_type is required")
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	detailsJSON := "{}"
	if len(record.Details) > 0 {
		data, err := json.Marshal(record.Details)
		if err != nil {
			return fmt.Errorf("marshal details: %w", err)
		}
		detailsJSON = string(data)
	}

	history := &ydb.SubscriptionHistory{
		HistoryID:      record.ID,
		SubscriptionID: record.SubscriptionID,
		EventType:      string(record.EventType),
		ActorID:        record.ActorID,
		Details:        detailsJSON,
		ChangedAt:      record.Timestamp,
	}

	if err := s.db.CreateSubscriptionHistory(ctx, history); err != nil {
		s.log.Error("failed to write subscription history", "error", err, "event", record.EventType, "subscription_id", record.SubscriptionID)
		return err
	}
	return nil
}

// ListHistory fetches stored events of one subscription, newest first
func (s *Service) ListHistory(ctx context.Context, subscriptionID string) ([]*models.HistoryEntry, error) {
	entries, err := s.db.GetSubscriptionHistory(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	result := make([]*models.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		details := json.RawMessage(entry.Details)
		if len(details) == 0 || !json.Valid(details) {
			details = json.RawMessage("{}")
		}
		result = append(result, &models.HistoryEntry{
			ID:             entry.HistoryID,
			SubscriptionID: entry.SubscriptionID,
			EventType:      entry.EventType,
			ActorID:        entry.ActorID,
			Details:        details,
			ChangedAt:      entry.ChangedAt,
		})
	}
	return result, nil
}
