package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lumiforge/mealsub-backend/internal/audit"
	"github.com/lumiforge/mealsub-backend/internal/calendar"
	"github.com/lumiforge/mealsub-backend/internal/email"
	app_errors "github.com/lumiforge/mealsub-backend/internal/errors"
	"github.com/lumiforge/mealsub-backend/internal/logger"
	"github.com/lumiforge/mealsub-backend/internal/models"
	"github.com/lumiforge/mealsub-backend/internal/pricing"
	"github.com/lumiforge/mealsub-backend/internal/schedule"
	"github.com/lumiforge/mealsub-backend/internal/ydb"
	"github.com/samber/lo"
)

// Notifier отправляет клиенту уведомления об изменении подписки
type Notifier interface {
	SendPauseNotice(ctx context.Context, toEmail, subscriptionID string, durationDays int, nextDelivery *time.Time) (*email.EmailMessage, error)
	SendResumeNotice(ctx context.Context, toEmail, subscriptionID string, nextDelivery *time.Time) (*email.EmailMessage, error)
	SendCancellationNotice(ctx context.Context, toEmail, subscriptionID string) (*email.EmailMessage, error)
}

// HistoryRecorder пишет события в историю подписки
type HistoryRecorder interface {
	Record(ctx context.Context, record audit.Record) error
}

// Service реализует жизненный цикл подписки: создание, паузу,
// возобновление, отмену, истечение и отметку доставок
type Service struct {
	db       ydb.Database
	notifier Notifier
	history  HistoryRecorder
	policy   Policy
	locks    *keyedMutex
	now      func() time.Time
}

// NewService создает новый subscription сервис
func NewService(db ydb.Database, notifier Notifier, history HistoryRecorder, policy Policy) *Service {
	return &Service{
		db:       db,
		notifier: notifier,
		history:  history,
		policy:   policy,
		locks:    newKeyedMutex(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock подменяет источник времени
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateParams описывает подтвержденный заказ
type CreateParams struct {
	CustomerID    string
	ContactEmail  string
	PlanID        string
	Days          []time.Time
	DurationWeeks calendar.DurationWeeks
	Breakdown     pricing.PriceBreakdown
}

// ResumeResult описывает итог возобновления
type ResumeResult struct {
	Subscription     *Subscription
	ResumeAt         time.Time
	ShiftDays        int
	NextDeliveryDate *time.Time
}

// Create создает активную подписку и по одной ожидающей доставке на каждый выбранный день
func (s *Service) Create(ctx context.Context, params CreateParams) (*Subscription, []schedule.Delivery, error) {
	days := calendar.Normalize(params.Days)
	if len(days) == 0 {
		return nil, nil, errors.New("at least one delivery day is required")
	}
	if !params.DurationWeeks.Valid() {
		return nil, nil, fmt.Errorf("unsupported duration: %d weeks", params.DurationWeeks)
	}

	now := s.now()
	sub := &Subscription{
		ID:              uuid.New().String(),
		CustomerID:      params.CustomerID,
		ContactEmail:    params.ContactEmail,
		PlanID:          params.PlanID,
		Frequency:       FrequencyWeekly,
		DurationWeeks:   params.DurationWeeks,
		WeeklyPrice:     params.Breakdown.WeeklyPrice(),
		StartDate:       days[0],
		NextBillingDate: days[0].AddDate(0, 0, params.DurationWeeks.Days()),
		CreatedAt:       now,
		UpdatedAt:       now,
		status:          StatusActive,
	}

	deliveries := lo.Map(days, func(day time.Time, _ int) schedule.Delivery {
		return schedule.Delivery{ID: uuid.New().String(), Date: day, Status: schedule.StatusPending}
	})

	if err := s.save(ctx, sub, deliveries); err != nil {
		return nil, nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	logger.FromContext(ctx).Info("Subscription created",
		"subscription_id", sub.ID,
		"customer_id", sub.CustomerID,
		"plan_id", sub.PlanID,
		"deliveries", len(deliveries),
	)
	s.record(ctx, sub.ID, models.HistorySubscriptionCreated, params.CustomerID, map[string]any{
		"plan_id":        sub.PlanID,
		"duration_weeks": int(sub.DurationWeeks),
		"final_total":    params.Breakdown.FinalTotal.StringFixed(2),
		"deliveries":     len(deliveries),
	})

	return sub, deliveries, nil
}

// Get возвращает подписку по ID
func (s *Service) Get(ctx context.Context, subscriptionID string) (*Subscription, error) {
	sub, _, err := s.load(ctx, subscriptionID)
	return sub, err
}

// Schedule строит проекцию расписания доставок
func (s *Service) Schedule(ctx context.Context, subscriptionID string) (*schedule.Projection, error) {
	sub, deliveries, err := s.load(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	window := s.policy.PauseWindow(sub, deliveries, s.now())
	projection := schedule.Project(sub.ID, deliveries, window)
	return &projection, nil
}

// CanPause проверяет, можно ли сейчас поставить подписку на паузу
func (s *Service) CanPause(ctx context.Context, subscriptionID string) (schedule.PauseWindow, error) {
	sub, deliveries, err := s.load(ctx, subscriptionID)
	if err != nil {
		return schedule.PauseWindow{}, err
	}
	return s.policy.PauseWindow(sub, deliveries, s.now()), nil
}

// Pause ставит подписку на паузу и сдвигает ожидающие доставки на durationDays
func (s *Service) Pause(ctx context.Context, subscriptionID string, durationDays int, actorID string) (*Subscription, error) {
	if !s.policy.AllowsPauseDuration(durationDays) {
		return nil, &PauseError{
			Code:   CodeInvalidPauseDuration,
			Reason: fmt.Sprintf("pause duration must be one of %v days", s.policy.PauseDurations),
		}
	}

	var next *time.Time
	sub, _, err := s.mutate(ctx, subscriptionID, func(sub *Subscription, deliveries []schedule.Delivery, now time.Time) ([]schedule.Delivery, error) {
		if _, perr := s.policy.checkPause(sub, deliveries, now); perr != nil {
			return nil, perr
		}
		if err := sub.transition(StatusPaused); err != nil {
			return nil, err
		}

		shifted := schedule.ShiftPending(deliveries, durationDays)
		sub.PauseCount++
		sub.PausedAt = &now
		sub.NextBillingDate = sub.NextBillingDate.AddDate(0, 0, durationDays)
		if d, ok := schedule.NextPending(shifted); ok {
			next = &d
		}
		sub.PausedUntil = next
		return shifted, nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Subscription paused",
		"subscription_id", sub.ID,
		"duration_days", durationDays,
	)
	details := map[string]any{"duration_days": durationDays}
	if next != nil {
		details["next_delivery"] = next.Format(time.DateOnly)
	}
	s.record(ctx, sub.ID, models.HistorySubscriptionPaused, actorID, details)
	s.notify(ctx, "pause", func() (*email.EmailMessage, error) {
		return s.notifier.SendPauseNotice(ctx, sub.ContactEmail, sub.ID, durationDays, next)
	})

	return sub, nil
}

// Resume возобновляет подписку. Без resumeDate доставки продолжаются с
// ближайшей ожидающей даты, но не раньше чем через ResumeNotice.
func (s *Service) Resume(ctx context.Context, subscriptionID string, resumeDate *time.Time, actorID string) (*ResumeResult, error) {
	result := &ResumeResult{}

	sub, updated, err := s.mutate(ctx, subscriptionID, func(sub *Subscription, deliveries []schedule.Delivery, now time.Time) ([]schedule.Delivery, error) {
		resumeAt, shift, rerr := s.policy.resumePlan(sub, deliveries, now, resumeDate)
		if rerr != nil {
			return nil, rerr
		}
		if err := sub.transition(StatusActive); err != nil {
			return nil, err
		}

		result.ResumeAt = resumeAt
		result.ShiftDays = shift
		sub.PausedUntil = nil
		if shift == 0 {
			return deliveries, nil
		}
		return schedule.ShiftPending(deliveries, shift), nil
	})
	if err != nil {
		return nil, err
	}

	result.Subscription = sub
	if next, ok := schedule.NextPending(updated); ok {
		result.NextDeliveryDate = &next
	}

	logger.FromContext(ctx).Info("Subscription resumed",
		"subscription_id", sub.ID,
		"resume_at", result.ResumeAt,
		"shift_days", result.ShiftDays,
	)
	s.record(ctx, sub.ID, models.HistorySubscriptionResumed, actorID, map[string]any{
		"resume_at":  result.ResumeAt.Format(time.RFC3339),
		"shift_days": result.ShiftDays,
		"explicit":   resumeDate != nil,
	})
	s.notify(ctx, "resume", func() (*email.EmailMessage, error) {
		return s.notifier.SendResumeNotice(ctx, sub.ContactEmail, sub.ID, result.NextDeliveryDate)
	})

	return result, nil
}

// Cancel отменяет подписку; оставшиеся доставки помечаются пропущенными
func (s *Service) Cancel(ctx context.Context, subscriptionID string, actorID string) (*Subscription, error) {
	sub, err := s.cancel(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Subscription canceled", "subscription_id", sub.ID)
	s.record(ctx, sub.ID, models.HistorySubscriptionCanceled, actorID, nil)
	s.notify(ctx, "cancel", func() (*email.EmailMessage, error) {
		return s.notifier.SendCancellationNotice(ctx, sub.ContactEmail, sub.ID)
	})

	return sub, nil
}

// Abandon отменяет подписку, заказ по которой не удалось оформить.
// Клиент не уведомляется: заказ для него не состоялся.
func (s *Service) Abandon(ctx context.Context, subscriptionID string, actorID string, reason string) error {
	sub, err := s.cancel(ctx, subscriptionID)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Warn("Subscription abandoned", "subscription_id", sub.ID, "reason", reason)
	s.record(ctx, sub.ID, models.HistorySubscriptionCanceled, actorID, map[string]any{
		"reason": reason,
	})
	return nil
}

func (s *Service) cancel(ctx context.Context, subscriptionID string) (*Subscription, error) {
	sub, _, err := s.mutate(ctx, subscriptionID, func(sub *Subscription, deliveries []schedule.Delivery, _ time.Time) ([]schedule.Delivery, error) {
		if err := sub.transition(StatusCanceled); err != nil {
			return nil, err
		}
		sub.PausedUntil = nil
		return schedule.SkipPending(deliveries), nil
	})
	return sub, err
}

// Expire переводит подписку в статус expired
func (s *Service) Expire(ctx context.Context, subscriptionID string, actorID string) (*Subscription, error) {
	sub, _, err := s.mutate(ctx, subscriptionID, func(sub *Subscription, deliveries []schedule.Delivery, _ time.Time) ([]schedule.Delivery, error) {
		if err := sub.transition(StatusExpired); err != nil {
			return nil, err
		}
		sub.PausedUntil = nil
		return schedule.SkipPending(deliveries), nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Subscription expired", "subscription_id", sub.ID)
	s.record(ctx, sub.ID, models.HistorySubscriptionExpired, actorID, nil)
	return sub, nil
}

// ExpireDue истекает подписки без ожидающих доставок, у которых последняя
// доставка уже в прошлом. Ошибки по отдельным подпискам не прерывают обход.
func (s *Service) ExpireDue(ctx context.Context) (int, error) {
	rows, err := s.db.ListSubscriptionsByStatus(ctx, []string{string(StatusActive), string(StatusPaused)})
	if err != nil {
		return 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	log := logger.FromContext(ctx)
	today := calendar.Day(s.now())
	expired := 0
	var errs []error

	for _, row := range rows {
		due, err := s.isDue(ctx, row.SubscriptionID, today)
		if err != nil {
			errs = append(errs, err)
			log.Error("Failed to check subscription expiry", "subscription_id", row.SubscriptionID, "error", err)
			continue
		}
		if !due {
			continue
		}
		if _, err := s.Expire(ctx, row.SubscriptionID, ""); err != nil {
			errs = append(errs, err)
			log.Error("Failed to expire subscription", "subscription_id", row.SubscriptionID, "error", err)
			continue
		}
		expired++
	}

	return expired, errors.Join(errs...)
}

func (s *Service) isDue(ctx context.Context, subscriptionID string, today time.Time) (bool, error) {
	rows, err := s.db.GetDeliveriesBySubscription(ctx, subscriptionID)
	if err != nil {
		return false, err
	}
	deliveries := lo.Map(rows, func(row *ydb.Delivery, _ int) schedule.Delivery { return deliveryFromRow(row) })

	if _, pending := schedule.NextPending(deliveries); pending {
		return false, nil
	}
	last, ok := schedule.LastDate(deliveries)
	return !ok || last.Before(today), nil
}

// MarkDelivered отмечает доставку выполненной
func (s *Service) MarkDelivered(ctx context.Context, deliveryID string, actorID string) (*schedule.Delivery, error) {
	row, err := s.db.GetDeliveryByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	var completed schedule.Delivery
	sub, _, err := s.mutate(ctx, row.SubscriptionID, func(sub *Subscription, deliveries []schedule.Delivery, now time.Time) ([]schedule.Delivery, error) {
		if sub.status != StatusActive {
			return nil, app_errors.ErrSubscriptionNotActive
		}
		idx := lo.IndexOf(lo.Map(deliveries, func(d schedule.Delivery, _ int) string { return d.ID }), deliveryID)
		if idx < 0 {
			return nil, app_errors.ErrDeliveryNotFound
		}
		if !deliveries[idx].IsPending() {
			return nil, app_errors.ErrDeliveryNotPending
		}

		updated := append([]schedule.Delivery(nil), deliveries...)
		updated[idx].Status = schedule.StatusCompleted
		updated[idx].CompletedAt = &now
		completed = updated[idx]
		return updated, nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, sub.ID, models.HistoryDeliveryCompleted, actorID, map[string]any{
		"delivery_id": deliveryID,
		"date":        completed.Date.Format(time.DateOnly),
	})
	return &completed, nil
}

type mutation func(sub *Subscription, deliveries []schedule.Delivery, now time.Time) ([]schedule.Delivery, error)

// mutate загружает подписку под блокировкой, применяет fn и сохраняет
// результат одной транзакцией
func (s *Service) mutate(ctx context.Context, subscriptionID string, fn mutation) (*Subscription, []schedule.Delivery, error) {
	unlock := s.locks.Lock(subscriptionID)
	defer unlock()

	sub, deliveries, err := s.load(ctx, subscriptionID)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	updated, err := fn(sub, deliveries, now)
	if err != nil {
		return nil, nil, err
	}
	sub.UpdatedAt = now

	if err := s.save(ctx, sub, updated); err != nil {
		return nil, nil, err
	}
	return sub, updated, nil
}

func (s *Service) load(ctx context.Context, subscriptionID string) (*Subscription, []schedule.Delivery, error) {
	row, err := s.db.GetSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		return nil, nil, err
	}
	sub, err := fromRow(row)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.db.GetDeliveriesBySubscription(ctx, subscriptionID)
	if err != nil {
		return nil, nil, err
	}
	deliveries := lo.Map(rows, func(row *ydb.Delivery, _ int) schedule.Delivery { return deliveryFromRow(row) })

	return sub, schedule.Sorted(deliveries), nil
}

func (s *Service) save(ctx context.Context, sub *Subscription, deliveries []schedule.Delivery) error {
	row := sub.toRow()
	rows := lo.Map(deliveries, func(d schedule.Delivery, _ int) *ydb.Delivery { return deliveryToRow(sub.ID, d) })

	if err := s.db.SaveSubscriptionTx(ctx, row, rows); err != nil {
		return err
	}
	sub.version = row.Version
	return nil
}

// record пишет историю; сбой не откатывает уже сохраненное изменение
func (s *Service) record(ctx context.Context, subscriptionID string, event models.HistoryEventType, actorID string, details map[string]any) {
	if s.history == nil {
		return
	}
	err := s.history.Record(ctx, audit.Record{
		SubscriptionID: subscriptionID,
		EventType:      event,
		ActorID:        actorID,
		Details:        details,
	})
	if err != nil {
		logger.FromContext(ctx).Error("Failed to record subscription history",
			"subscription_id", subscriptionID,
			"event", event,
			"error", err,
		)
	}
}

func (s *Service) notify(ctx context.Context, kind string, send func() (*email.EmailMessage, error)) {
	if s.notifier == nil {
		return
	}
	if _, err := send(); err != nil {
		logger.FromContext(ctx).Warn("Failed to send subscription notice", "notice", kind, "error", err)
	}
}
