package models

import (
	"encoding/json"
	"time"
)

// HistoryEntry представляет событие в истории подписки
// @Description	Subscription lifecycle event
type HistoryEntry struct {
	ID             string          `json:"id"`
	SubscriptionID string          `json:"subscription_id"`
	EventType      string          `json:"event_type"`
	ActorID        string          `json:"actor_id,omitempty"`
	Details        json.RawMessage `json:"details"`
	ChangedAt      time.Time       `json:"changed_at"`
}

// HistoryEventType содержит константы для типов событий подписки
type HistoryEventType string

const (
	HistorySubscriptionCreated  HistoryEventType = "created"
	HistorySubscriptionPaused   HistoryEventType = "paused"
	HistorySubscriptionResumed  HistoryEventType = "resumed"
	HistorySubscriptionCanceled HistoryEventType = "canceled"
	HistorySubscriptionExpired  HistoryEventType = "expired"
	HistoryDeliveryCompleted    HistoryEventType = "delivery_completed"
	HistoryPriceOverride        HistoryEventType = "price_override"
)
