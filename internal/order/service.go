package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lumiforge/mealsub-backend/internal/audit"
	"github.com/lumiforge/mealsub-backend/internal/calendar"
	"github.com/lumiforge/mealsub-backend/internal/email"
	"github.com/lumiforge/mealsub-backend/internal/logger"
	"github.com/lumiforge/mealsub-backend/internal/models"
	"github.com/lumiforge/mealsub-backend/internal/pricing"
	"github.com/lumiforge/mealsub-backend/internal/schedule"
	"github.com/lumiforge/mealsub-backend/internal/storage"
	"github.com/lumiforge/mealsub-backend/internal/subscription"
	"github.com/lumiforge/mealsub-backend/internal/ydb"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	documentPrefix      = "orders/"
	documentContentType = "application/json"
	documentURLLifetime = 15 * time.Minute
)

// Quoter prices a selection
type Quoter interface {
	Quote(ctx context.Context, sel pricing.MealSelection, override *pricing.AdminOverride) (pricing.PriceBreakdown, error)
}

// SubscriptionCreator opens the subscription behind an order and
// abandons it when the order cannot be handed off
type SubscriptionCreator interface {
	Create(ctx context.Context, params subscription.CreateParams) (*subscription.Subscription, []schedule.Delivery, error)
	Abandon(ctx context.Context, subscriptionID string, actorID string, reason string) error
}

// Confirmer sends the order confirmation email
type Confirmer interface {
	SendOrderConfirmation(ctx context.Context, toEmail, orderID, finalTotal string, firstDelivery time.Time) (*email.EmailMessage, error)
}

// HistoryRecorder writes subscription history events
type HistoryRecorder interface {
	Record(ctx context.Context, record audit.Record) error
}

// Request is a customer order ready to be placed
type Request struct {
	CustomerID   string
	ContactEmail string
	Selection    pricing.MealSelection
	Override     *pricing.AdminOverride
	ActorID      string
}

// InvalidDaysError carries every calendar rule the selected days break
type InvalidDaysError struct {
	Errors []calendar.ValidationError
}

func (e *InvalidDaysError) Error() string {
	return fmt.Sprintf("selected days are not valid: %d problem(s)", len(e.Errors))
}

// Result is a placed order
type Result struct {
	OrderID      string
	DocumentKey  string
	Subscription *subscription.Subscription
	Deliveries   []schedule.Delivery
	Breakdown    pricing.PriceBreakdown
}

// Document is the order payload dropped in the orders bucket for the
// order service
type Document struct {
	OrderID        string             `json:"order_id"`
	SubscriptionID string             `json:"subscription_id"`
	CustomerID     string             `json:"customer_id"`
	ContactEmail   string             `json:"contact_email,omitempty"`
	PlanID         string             `json:"plan_id"`
	DurationWeeks  int                `json:"duration_weeks"`
	ItemsPerDay    int                `json:"items_per_day"`
	Days           []string           `json:"days"`
	Deliveries     []DocumentDelivery `json:"deliveries"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	Discounts      []DocumentDiscount `json:"discounts"`
	TotalDiscount  decimal.Decimal    `json:"total_discount"`
	FinalTotal     decimal.Decimal    `json:"final_total"`
	WeeklyPrice    decimal.Decimal    `json:"weekly_price"`
	CreatedAt      time.Time          `json:"created_at"`
}

type DocumentDelivery struct {
	DeliveryID string `json:"delivery_id"`
	Date       string `json:"date"`
}

type DocumentDiscount struct {
	Kind    string          `json:"kind"`
	Percent decimal.Decimal `json:"percent"`
	Amount  decimal.Decimal `json:"amount"`
	Reason  string          `json:"reason,omitempty"`
}

// Service places orders: validates days, prices the selection, opens the
// subscription and hands the order document to the order service
type Service struct {
	db            ydb.Database
	storage       storage.StorageProvider
	quoter        Quoter
	subscriptions SubscriptionCreator
	confirmer     Confirmer
	history       HistoryRecorder
	now           func() time.Time
}

// NewService создает новый order сервис
func NewService(
	db ydb.Database,
	storageClient storage.StorageProvider,
	quoter Quoter,
	subscriptions SubscriptionCreator,
	confirmer Confirmer,
	history HistoryRecorder,
) *Service {
	return &Service{
		db:            db,
		storage:       storageClient,
		quoter:        quoter,
		subscriptions: subscriptions,
		confirmer:     confirmer,
		history:       history,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// WithClock подменяет источник времени
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Place validates and prices the selection, then creates the subscription
// and stores the order. A storage failure after the subscription is created
// is returned to the caller and the subscription is abandoned.
func (s *Service) Place(ctx context.Context, req Request) (*Result, error) {
	log := logger.FromContext(ctx)
	sel := req.Selection

	if problems := CheckDays(sel.Days, sel.DurationWeeks, s.now()); len(problems) > 0 {
		return nil, &InvalidDaysError{Errors: problems}
	}

	breakdown, err := s.quoter.Quote(ctx, sel, req.Override)
	if err != nil {
		return nil, err
	}

	sub, deliveries, err := s.subscriptions.Create(ctx, subscription.CreateParams{
		CustomerID:    req.CustomerID,
		ContactEmail:  req.ContactEmail,
		PlanID:        sel.PlanID,
		Days:          sel.Days,
		DurationWeeks: sel.DurationWeeks,
		Breakdown:     breakdown,
	})
	if err != nil {
		return nil, err
	}

	orderID := uuid.New().String()
	key := documentPrefix + orderID + ".json"
	now := s.now()

	doc := buildDocument(orderID, req, sub, deliveries, breakdown, now)
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order document: %w", err)
	}
	if err := s.storage.PutObject(ctx, key, body, documentContentType); err != nil {
		log.Error("Failed to upload order document",
			"order_id", orderID,
			"subscription_id", sub.ID,
			"bucket", s.storage.GetBucket(),
			"error", err,
		)
		s.abandon(ctx, sub.ID, req.ActorID, "order document upload failed")
		return nil, fmt.Errorf("failed to upload order document: %w", err)
	}

	if err := s.db.CreateOrder(ctx, &ydb.Order{
		OrderID:        orderID,
		SubscriptionID: sub.ID,
		CustomerID:     req.CustomerID,
		PlanID:         sel.PlanID,
		FinalTotal:     breakdown.FinalTotal.StringFixed(2),
		DocumentKey:    key,
		CreatedAt:      now,
	}); err != nil {
		// Документ без строки заказа не должен попасть в обработку
		if delErr := s.storage.DeleteObject(ctx, key); delErr != nil {
			log.Error("Failed to remove orphaned order document", "key", key, "error", delErr)
		}
		s.abandon(ctx, sub.ID, req.ActorID, "order record write failed")
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	log.Info("Order placed",
		"order_id", orderID,
		"subscription_id", sub.ID,
		"final_total", breakdown.FinalTotal.StringFixed(2),
	)

	if req.Override != nil && s.history != nil {
		err := s.history.Record(ctx, audit.Record{
			SubscriptionID: sub.ID,
			EventType:      models.HistoryPriceOverride,
			ActorID:        req.ActorID,
			Details: map[string]any{
				"order_id":       orderID,
				"reason":         req.Override.Reason,
				"admin_discount": breakdown.AdminDiscount.StringFixed(2),
				"final_total":    breakdown.FinalTotal.StringFixed(2),
			},
		})
		if err != nil {
			log.Error("Failed to record price override", "order_id", orderID, "error", err)
		}
	}

	if s.confirmer != nil && req.ContactEmail != "" && len(deliveries) > 0 {
		if _, err := s.confirmer.SendOrderConfirmation(ctx, req.ContactEmail, orderID, breakdown.FinalTotal.StringFixed(2), deliveries[0].Date); err != nil {
			log.Warn("Failed to send order confirmation", "order_id", orderID, "error", err)
		}
	}

	return &Result{
		OrderID:      orderID,
		DocumentKey:  key,
		Subscription: sub,
		Deliveries:   deliveries,
		Breakdown:    breakdown,
	}, nil
}

// abandon rolls back the subscription of an order that was not handed off
func (s *Service) abandon(ctx context.Context, subscriptionID, actorID, reason string) {
	if err := s.subscriptions.Abandon(ctx, subscriptionID, actorID, reason); err != nil {
		logger.FromContext(ctx).Error("Failed to abandon subscription of failed order",
			"subscription_id", subscriptionID,
			"reason", reason,
			"error", err,
		)
	}
}

// Get returns a stored order with a short-lived link to its document
func (s *Service) Get(ctx context.Context, orderID string) (*models.OrderResponse, error) {
	row, err := s.db.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	total, err := decimal.NewFromString(row.FinalTotal)
	if err != nil {
		return nil, fmt.Errorf("invalid final total for order %s: %w", orderID, err)
	}

	resp := &models.OrderResponse{
		OrderID:        row.OrderID,
		SubscriptionID: row.SubscriptionID,
		CustomerID:     row.CustomerID,
		PlanID:         row.PlanID,
		FinalTotal:     total.InexactFloat64(),
		CreatedAt:      row.CreatedAt,
	}

	url, err := s.storage.GeneratePresignedDownloadURL(ctx, row.DocumentKey, documentURLLifetime)
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to presign order document", "order_id", orderID, "error", err)
	} else {
		resp.DocumentURL = url
	}
	return resp, nil
}

// Document reads the order payload back from the orders bucket
func (s *Service) Document(ctx context.Context, orderID string) (*Document, error) {
	row, err := s.db.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	body, err := s.storage.GetObject(ctx, row.DocumentKey)
	if err != nil {
		return nil, fmt.Errorf("failed to download order document %s: %w", row.DocumentKey, err)
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode order document %s: %w", row.DocumentKey, err)
	}
	return &doc, nil
}

// CheckDays runs the calendar rules and the selection horizon check
func CheckDays(days []time.Time, duration calendar.DurationWeeks, today time.Time) []calendar.ValidationError {
	problems := calendar.Validate(days, duration)
	if !duration.Valid() {
		return problems
	}
	return append(problems, calendar.CheckHorizon(days, duration, today)...)
}

// IsInvalidDays reports whether err is a day selection failure
func IsInvalidDays(err error) (*InvalidDaysError, bool) {
	var target *InvalidDaysError
	ok := errors.As(err, &target)
	return target, ok
}

func buildDocument(orderID string, req Request, sub *subscription.Subscription, deliveries []schedule.Delivery, b pricing.PriceBreakdown, now time.Time) Document {
	return Document{
		OrderID:        orderID,
		SubscriptionID: sub.ID,
		CustomerID:     req.CustomerID,
		ContactEmail:   req.ContactEmail,
		PlanID:         req.Selection.PlanID,
		DurationWeeks:  int(req.Selection.DurationWeeks),
		ItemsPerDay:    b.ItemsPerDay,
		Days: lo.Map(deliveries, func(d schedule.Delivery, _ int) string {
			return d.Date.Format(time.DateOnly)
		}),
		Deliveries: lo.Map(deliveries, func(d schedule.Delivery, _ int) DocumentDelivery {
			return DocumentDelivery{DeliveryID: d.ID, Date: d.Date.Format(time.DateOnly)}
		}),
		Subtotal: b.Subtotal,
		Discounts: lo.Map(b.Discounts, func(d pricing.Discount, _ int) DocumentDiscount {
			return DocumentDiscount{Kind: string(d.Kind), Percent: d.Percent, Amount: d.Amount, Reason: d.Reason}
		}),
		TotalDiscount: b.TotalDiscount,
		FinalTotal:    b.FinalTotal,
		WeeklyPrice:   b.WeeklyPrice(),
		CreatedAt:     now,
	}
}
