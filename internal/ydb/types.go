package ydb

import (
	"time"
)

// Plan представляет тарифный план питания
type Plan struct {
	PlanID     string    `db:"plan_id"`
	Name       string    `db:"name"`
	BaseRate   string    `db:"base_rate"`
	Multiplier string    `db:"multiplier"`
	IsActive   bool      `db:"is_active"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// PromoCode представляет сезонный промокод
type PromoCode struct {
	Code       string     `db:"code"`
	Percent    string     `db:"percent"`
	IsActive   bool       `db:"is_active"`
	ValidUntil *time.Time `db:"valid_until"`
	CreatedAt  time.Time  `db:"created_at"`
}

// Subscription представляет подписку клиента на доставку питания.
// Денежные значения хранятся строкой в десятичном представлении.
// Version увеличивается при каждой записи и используется для оптимистичной блокировки.
type Subscription struct {
	SubscriptionID  string     `db:"subscription_id"`
	CustomerID      string     `db:"customer_id"`
	ContactEmail    string     `db:"contact_email"`
	PlanID          string     `db:"plan_id"`
	Status          string     `db:"status"` // "active", "paused", "canceled", "expired"
	Frequency       string     `db:"frequency"`
	DurationWeeks   int32      `db:"duration_weeks"`
	WeeklyPrice     string     `db:"weekly_price"`
	StartDate       time.Time  `db:"start_date"`
	NextBillingDate time.Time  `db:"next_billing_date"`
	PauseCount      int32      `db:"pause_count"`
	PausedAt        *time.Time `db:"paused_at"`
	PausedUntil     *time.Time `db:"paused_until"`
	Version         int64      `db:"version"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// Delivery представляет одну запланированную доставку
type Delivery struct {
	DeliveryID     string     `db:"delivery_id"`
	SubscriptionID string     `db:"subscription_id"`
	ScheduledDate  time.Time  `db:"scheduled_date"`
	Status         string     `db:"status"` // "pending", "completed", "skipped"
	CompletedAt    *time.Time `db:"completed_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// SubscriptionHistory представляет историю изменений подписок
type SubscriptionHistory struct {
	HistoryID      string    `db:"history_id"`
	SubscriptionID string    `db:"subscription_id"`
	EventType      string    `db:"event_type"`
	ActorID        string    `db:"actor_id"`
	Details        string    `db:"details"`
	ChangedAt      time.Time `db:"changed_at"`
}

// Order представляет оформленный заказ и ссылку на документ в хранилище
type Order struct {
	OrderID        string    `db:"order_id"`
	SubscriptionID string    `db:"subscription_id"`
	CustomerID     string    `db:"customer_id"`
	PlanID         string    `db:"plan_id"`
	FinalTotal     string    `db:"final_total"`
	DocumentKey    string    `db:"document_key"`
	CreatedAt      time.Time `db:"created_at"`
}
