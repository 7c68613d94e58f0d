package ydb

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	app_errors "github.com/lumiforge/mealsub-backend/internal/errors"
	"github.com/lumiforge/mealsub-backend/internal/config"
	"github.com/samber/lo"
	"github.com/ydb-platform/ydb-go-sdk/v3"
	"github.com/ydb-platform/ydb-go-sdk/v3/table"
	"github.com/ydb-platform/ydb-go-sdk/v3/table/result/named"
	"github.com/ydb-platform/ydb-go-sdk/v3/table/types"
	yc "github.com/ydb-platform/ydb-go-yc"
)

// YDBClient реализация интерфейса Database
type YDBClient struct {
	driver       *ydb.Driver
	databasePath string
}

// NewYDBClient создает новый клиент YDB
func NewYDBClient(ctx context.Context, cfg *config.Config) (*YDBClient, error) {
	endpoint := cfg.MSYDBEndpoint
	database := cfg.MSYDBDatabasePath

	if endpoint == "" || database == "" {
		return nil, fmt.Errorf("YDB credentials not provided. Please set MS_YDB_ENDPOINT and MS_YDB_DATABASE_PATH environment variables")
	}

	driver, err := ydb.Open(ctx, endpoint,
		ydb.WithDatabase(database),
		yc.WithMetadataCredentials(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to YDB: %w", err)
	}

	log.Println("Successfully connected to YDB")

	client := &YDBClient{
		driver:       driver,
		databasePath: database,
	}

	// Создаём таблицы только если флаг установлен
	if cfg.MSYDBAutoCreateTables > 0 {
		log.Println("MS_YDB_AUTO_CREATE_TABLES is enabled, checking and creating tables...")
		if err := client.Initialize(ctx); err != nil {
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
	}

	return client, nil
}

// Close закрывает соединение с базой данных
func (c *YDBClient) Close() error {
	if c.driver != nil {
		return c.driver.Close(context.Background())
	}
	return nil
}

// Initialize создает отсутствующие таблицы и заполняет справочники
func (c *YDBClient) Initialize(ctx context.Context) error {
	return c.createTables(ctx)
}

// tableExists checks if a table exists in the database
func (c *YDBClient) tableExists(ctx context.Context, tableName string) (bool, error) {
	fullPath := path.Join(c.databasePath, tableName)
	err := c.driver.Table().Do(ctx, func(ctx context.Context, session table.Session) error {
		_, err := session.DescribeTable(ctx, fullPath)
		return err
	})

	if err != nil {
		// YDB returns SchemeError with "Path not found", code 400070
		msg := err.Error()
		if strings.Contains(msg, "not found") ||
			strings.Contains(msg, "does not exist") ||
			strings.Contains(msg, "Path not found") ||
			strings.Contains(msg, "code = 400070") {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// executeSchemeQuery выполняет DDL запрос
func (c *YDBClient) executeSchemeQuery(ctx context.Context, query string) error {
	return c.driver.Table().Do(ctx, func(ctx context.Context, session table.Session) error {
		return session.ExecuteSchemeQuery(ctx, query)
	})
}

// executeQuery выполняет запрос без параметров
func (c *YDBClient) executeQuery(ctx context.Context, query string) error {
	return c.driver.Table().Do(ctx, func(ctx context.Context, session table.Session) error {
		_, _, err := session.Execute(ctx, table.DefaultTxControl(), query, table.NewQueryParameters())
		return err
	})
}

func optionalTimestamp(name string, t *time.Time) table.ParameterOption {
	if t == nil {
		return table.ValueParam(name, types.NullValue(types.TypeTimestamp))
	}
	return table.ValueParam(name, types.OptionalValue(types.TimestampValueFromTime(*t)))
}

// GetPlanByID получает тарифный план по ID
func (c *YDBClient) GetPlanByID(ctx context.Context, planID string) (*Plan, error) {
	query := `
		DECLARE $plan_id AS Text;
		SELECT plan_id, name, base_rate, multiplier, is_active, created_at, updated_at
		FROM plans
		WHERE plan_id = $plan_id
	`

	var plan Plan
	var found bool

	err := c.driver.Table().Do(ctx, func(ctx context.Context, session table.Session) error {
		_, res, err := session.Execute(ctx, table.DefaultTxControl(), query,
			table.NewQueryParameters(
				table.ValueParam("$plan_id", types.TextValue(planID)),
			),
		)
		if err != nil {
			return err
		}
		defer res.Close()

		if res.NextResultSet(ctx) && res.NextRow() {
			found = true
			err := res.ScanNamed(
				named.Required("plan_id", &plan.PlanID),
				named.OptionalWithDefault("name", &plan.Name),
				named.Required("base_rate", &plan.BaseRate),
				named.Required("multiplier", &plan.Multiplier),
				named.OptionalWithDefault("is_active", &plan.IsActive),
				named.OptionalWithDefault("created_at", &plan.CreatedAt),
				named.OptionalWithDefault("updated_at", &plan.UpdatedAt),
			)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}
		}
		return res.Err()
	})

	if err != nil {
		return nil, err
	}
	if !found {
		return nil, app_errors.ErrPlanNotFound
	}

	return &plan, nil
}

// GetAllPlans получает все тарифные планы
func (c *YDBClient) GetAllPlans(ctx context.Context) ([]*Plan, error) {
	query := `
		SELECT plan_id, name, base_rate, multiplier, is_active, created_at, updated_at
		FROM plans
		ORDER BY plan_id
	`

	var plans []*Plan

	err := c.driver.Table().Do(ctx, func(ctx context.Context, session table.Session) error {
		_, res, err := session.Execute(ctx, table.DefaultTxControl(), query, table.NewQueryParameters())
		if err != nil {
			return err
		}
		defer res.Close()

		for res.NextResultSet(ctx) {
			for res.NextRow() {
				var plan Plan
				if err := res.ScanNamed(
					named.Required("plan_id", &plan.PlanID),
					named.OptionalWithDefault("name", &plan.Name),
					named.Required("base_rate", &plan.BaseRate),
					named.Required("multiplier", &plan.Multiplier),
					named.OptionalWithDefault("is_active", &plan.IsActive),
					named.OptionalWithDefault("created_at", &plan.CreatedAt),
					named.OptionalWithDefault("updated_at", &plan.UpdatedAt),
				); err != nil {
					return fmt.Errorf("scan failed: %w", err)
				}
				plans = append(plans, &plan)
			}
		}
		return res.Err()
	})

	if err != nil {
		return nil, err
	}

	return plans, nil
}

// GetPromoCode получает промокод по нормализованному коду
func (c *YDBClient) GetPromoCode(ctx context.Context, code string) (*PromoCode, error) {
	query := `
		DECLARE $code AS Text;
		SELECT code, percent, is_active, valid_until, created_at
		FROM promo_codes
		WHERE code = $code
	`

	var promo PromoCode
	var found bool

	err := c.driver.Table().Do(ctx, func(ctx context.Context, session table.Session) error {
		_, res, err := session.Execute(ctx, table.DefaultTxControl(), query,
			table.NewQueryParameters(
				table.ValueParam("$code", types.TextValue(code)),
			),
		)
		if err != nil {
			return err
		}
		defer res.Close()

		if res.NextResultSet(ctx) && res.NextRow() {
			found = true
			if err := res.ScanNamed(
				named.Required("code", &promo.Code),
				named.Required("percent", &promo.Percent),
				named.OptionalWithDefault("is_active", &promo.IsActive),
				named.Optional("valid_until", &promo.ValidUntil),
				named.OptionalWithDefault("created_at", &promo.CreatedAt),
			); err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}
		}
		return res.Err()
	})

	if err != nil {
		return nil, err
	}
	if !found {
		return nil, app_errors.ErrPromoCodeNotFound
	}

	return &promo, nil
}

const subscriptionColumns = `subscription_id, customer_id, contact_email, plan_id, status, frequency,
	duration_weeks, weekly_price, start_date, next_billing_date, pause_count,
	paused_at, paused_until, version, created_at, updated_at`

func scanSubscription(res interface {
	ScanNamed(namedValues ...named.Value) error
}, s *Subscription) error {
	return res.ScanNamed(
		named.Required("subscription_id", &s.SubscriptionID),
		named.Required("customer_id", &s.CustomerID),
		named.OptionalWithDefault("contact_email", &s.ContactEmail),
		named.Required("plan_id", &s.PlanID),
		named.Required("status", &s.Status),
		named.OptionalWithDefault("frequency", &s.Frequency),
		named.Required("duration_weeks", &s.DurationWeeks),
		named.Required("weekly_price", &s.WeeklyPrice),
		named.Required("start_date", &s.StartDate),
		named.Required("next_billing_date", &s.NextBillingDate),
		named.OptionalWithDefault("pause_count", &s.PauseCount),
		named.Optional("paused_at", &s.PausedAt),
		named.Optional("paused_until", &s.PausedUntil),
		named.Required("version", &s.Version),
		named.OptionalWithDefault("created_at", &s.CreatedAt),
		named.OptionalWithDefault("updated_at", &s.UpdatedAt),
	)
}

// GetSubscriptionByID получает подписку по ID
func (c *YDBClient) GetSubscriptionByID(ctx context.Context, subscriptionID string) (*Subscription, error) {
	query := `
		DECLARE $subscription_id AS Text;
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE subscription_id = $subscription_id
	`

	var subscription Subscription
	var found bool

	err := c.driver.Table().Do(ctx, func(ctx context.Context, session table.Session) error {
		_, res, err := session.Execute(ctx, table.DefaultTxControl(), query,
			table.NewQueryParameters(
				table.ValueParam("$subscription_id", types.TextValue(subscriptionID)),
			),
		)
		if err != nil {
			return err
		}
		defer res.Close()

		if res.NextResultSet(ctx) && res.NextRow() {
			found = true
			if err := scanSubscription(res, &subscription); err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}
		}
		return res.Err()
	})

	if err != nil {
		return nil, err
	}
	if !found {
		return nil, app_errors.ErrSubscriptionNotFound
	}

	return &subscription, nil
}

// ListSubscriptionsByStatus получает подписки в указанных статусах
func (c *YDBClient) ListSubscriptionsByStatus(ctx context.Context, statuses []string) ([]*Subscription, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	query := `
		DECLARE $statuses AS List<Text>;
		SELECT ` + subscriptionColumns + `
		FROM subscriptions VIEW status_idx
		WHERE status IN $statuses
	`

	statusValues := lo.Map(statuses, func(s string, _ int) types.Value {
		return types.TextValue(s)
	})

	var subscriptions []*Subscription

	err := c.driver.Table().Do(ctx, func(ctx context.Context, session table.Session) error {
		_, res, err := session.Execute(ctx, table.DefaultTxControl(), query,
			table.NewQueryParameters(
				table.ValueParam("$statuses", types.ListValue(statusValues...)),
			),
		)
		if err != nil {
			return err
		}
		defer res.Close()

		for res.NextResultSet(ctx) {
			for res.NextRow() {
				var subscription Subscription
				if err := scanSubscription(res, &subscription); err != nil {
					return fmt.Errorf("scan failed: %w", err)
				}
				subscriptions = append(subscriptions, &subscription)
			}
		}
		return res.Err()
	})

	if err != nil {
		return nil, err
	}

	return subscriptions, nil
}

// SaveSubscriptionTx записывает подписку и доставки в одной сериализуемой транзакции
func (c *YDBClient) SaveSubscriptionTx(ctx context.Context, subscription *Subscription, deliveries []*Delivery) error {
	versionQuery := `
		DECLARE $subscription_id AS Text;
		SELECT version FROM subscriptions WHERE subscription_id = $subscription_id
	`

	upsertSubscriptionQuery := `
		DECLARE $subscription_id AS Text;
		DECLARE $customer_id AS Text;
		DECLARE $contact_email AS Text;
		DECLARE $plan_id AS Text;
		DECLARE $status AS Text;
		DECLARE $frequency AS Text;
		DECLARE $duration_weeks AS Int32;
		DECLARE $weekly_price AS Text;
		DECLARE $start_date AS Date;
		DECLARE $next_billing_date AS Date;
		DECLARE $pause_count AS Int32;
		DECLARE $paused_at AS Optional<Timestamp>;
		DECLARE $paused_until AS Optional<Timestamp>;
		DECLARE $version AS Int64;
		DECLARE $created_at AS Timestamp;
		DECLARE $updated_at AS Timestamp;

		UPSERT INTO subscriptions (
			subscription_id, customer_id, contact_email, plan_id, status, frequency,
			duration_weeks, weekly_price, start_date, next_billing_date, pause_count,
			paused_at, paused_until, version, created_at, updated_at
		) VALUES (
			$subscription_id, $customer_id, $contact_email, $plan_id, $status, $frequency,
			$duration_weeks, $weekly_price, $start_date, $next_billing_date, $pause_count,
			$paused_at, $paused_until, $version, $created_at, $updated_at
		)
	`

	upsertDeliveriesQuery := `
		DECLARE $deliveries AS List<Struct<
			delivery_id: Text,
			subscription_id: Text,
			scheduled_date: Date,
			status: Text,
			completed_at: Optional<Timestamp>,
			updated_at: Timestamp
		>>;

		UPSERT INTO deliveries
		SELECT delivery_id, subscription_id, scheduled_date, status, completed_at, updated_at
		FROM AS_TABLE($deliveries)
	`

	now := time.Now().UTC()
	if subscription.CreatedAt.IsZero() {
		subscription.CreatedAt = now
	}
	subscription.UpdatedAt = now
	nextVersion := subscription.Version + 1

	deliveryValues := make([]types.Value, 0, len(deliveries))
	for _, d := range deliveries {
		d.UpdatedAt = now
		completedAt := types.NullValue(types.TypeTimestamp)
		if d.CompletedAt != nil {
			completedAt = types.OptionalValue(types.TimestampValueFromTime(*d.CompletedAt))
		}
		deliveryValues = append(deliveryValues, types.StructValue(
			types.StructFieldValue("delivery_id", types.TextValue(d.DeliveryID)),
			types.StructFieldValue("subscription_id", types.TextValue(d.SubscriptionID)),
			types.StructFieldValue("scheduled_date", types.DateValueFromTime(d.ScheduledDate)),
			types.StructFieldValue("status", types.TextValue(d.Status)),
			types.StructFieldValue("completed_at", completedAt),
			types.StructFieldValue("updated_at", types.TimestampValueFromTime(d.UpdatedAt)),
		))
	}

	err := c.driver.Table().DoTx(ctx, func(ctx context.Context, tx table.TransactionActor) error {
		res, err := tx.Execute(ctx, versionQuery,
			table.NewQueryParameters(
				table.ValueParam("$subscription_id", types.TextValue(subscription.SubscriptionID)),
			),
		)
		if err != nil {
			return err
		}

		var current int64
		var found bool
		if res.NextResultSet(ctx) && res.NextRow() {
			found = true
			if err := res.ScanNamed(named.OptionalWithDefault("version", &current)); err != nil {
				_ = res.Close()
				return fmt.Errorf("scan failed: %w", err)
			}
		}
		if err := res.Err(); err != nil {
			_ = res.Close()
			return err
		}
		_ = res.Close()

		switch {
		case subscription.Version == 0 && found:
			return app_errors.ErrSubscriptionExists
		case subscription.Version > 0 && !found:
			return app_errors.ErrSubscriptionNotFound
		case subscription.Version > 0 && current != subscription.Version:
			return app_errors.ErrConcurrentModification
		}

		_, err = tx.Execute(ctx, upsertSubscriptionQuery,
			table.NewQueryParameters(
				table.ValueParam("$subscription_id", types.TextValue(subscription.SubscriptionID)),
				table.ValueParam("$customer_id", types.TextValue(subscription.CustomerID)),
				table.ValueParam("$contact_email", types.TextValue(subscription.ContactEmail)),
				table.ValueParam("$plan_id", types.TextValue(subscription.PlanID)),
				table.ValueParam("$status", types.TextValue(subscription.Status)),
				table.ValueParam("$frequency", types.TextValue(subscription.Frequency)),
				table.ValueParam("$duration_weeks", types.Int32Value(subscription.DurationWeeks)),
				table.ValueParam("$weekly_price", types.TextValue(subscription.WeeklyPrice)),
				table.ValueParam("$start_date", types.DateValueFromTime(subscription.StartDate)),
				table.ValueParam("$next_billing_date", types.DateValueFromTime(subscription.NextBillingDate)),
				table.ValueParam("$pause_count", types.Int32Value(subscription.PauseCount)),
				optionalTimestamp("$paused_at", subscription.PausedAt),
				optionalTimestamp("$paused_until", subscription.PausedUntil),
				table.ValueParam("$version", types.Int64Value(nextVersion)),
				table.ValueParam("$created_at", types.TimestampValueFromTime(subscription.CreatedAt)),
				table.ValueParam("$updated_at", types.TimestampValueFromTime(subscription.UpdatedAt)),
			),
		)
		if err != nil {
			return err
		}

		if len(deliveryValues) == 0 {
			return nil
		}

		_, err = tx.Execute(ctx, upsertDeliveriesQuery,
			table.NewQueryParameters(
				table.ValueParam("$deliveries", types.ListValue(deliveryValues...)),
			),
		)
		return err
	}, table.WithIdempotent())

	if err != nil {
		return err
	}

	subscription.Version = nextVersion
	return nil
}

func scanDelivery(res interface {
	ScanNamed(namedValues ...named.Value) error
}, d *Delivery) error {
	return res.ScanNamed(
		named.Required("delivery_id", &d.DeliveryID),
		named.Required("subscription_id", &d.SubscriptionID),
		named.Required("scheduled_date", &d.ScheduledDate),
		named.Required("status", &d.Status),
		named.Optional("completed_at", &d.CompletedAt),
		named.OptionalWithDefault("updated_at", &d.UpdatedAt),
	)
}

// GetDeliveriesBySubscription получает доставки подписки в порядке дат
func (c *YDBClient) GetDeliveriesBySubscription(ctx context.Context, subscriptionID string) ([]*Delivery, error) {
	query := `
		DECLARE $subscription_id AS Text;
		SELECT delivery_id, subscription_id, scheduled_date, status, completed_at, updated_at
		FROM deliveries VIEW subscription_idx
		WHERE subscription_id = $subscription_id
		ORDER BY scheduled_date
	`

	var deliveries []*Delivery

	err := c.driver.Table().Do(ctx, func(ctx context.Context, session table.Session) error {
		_, res, err := session.Execute(ctx, table.DefaultTxControl(), query,
			table.NewQueryParameters(
				table.ValueParam("$subscription_id", types.TextValue(subscriptionID)),
			),
		)
		if err != nil {
			return err
		}
		defer res.Close()

		for res.NextResultSet(ctx) {
			for res.NextRow() {
				var delivery Delivery
				if err := scanDelivery(res, &delivery); err != nil {
					return fmt.Errorf("scan failed: %w", err)
				}
				deliveries = append(deliveries, &delivery)
			}
		}
		return res.Err()
	})

	if err != nil {
		return nil, err
	}

	return deliveries, nil
}

// GetDeliveryByID получает доставку по ID
func (c *YDBClient) GetDeliveryByID(ctx context.Context, deliveryID string) (*Delivery, error) {
	query := `
		DECLARE $delivery_id AS Text;
		SELECT delivery_id, subscription_id, scheduled_date, status, completed_at, updated_at
		FROM deliveries
		WHERE delivery_id = $delivery_id
	`

	var delivery Delivery
	var found bool

	err := c.driver.Table().Do(ctx, func(ctx context.Context, session table.Session) error {
		_, res, err := session.Execute(ctx, table.DefaultTxControl(), query,
			table.NewQueryParameters(
				table.ValueParam("$delivery_id", types.TextValue(deliveryID)),
			),
		)
		if err != nil {
			return err
		}
		defer res.Close()

		if res.NextResultSet(ctx) && res.NextRow() {
			found = true
			if err := scanDelivery(res, &delivery); err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}
		}
		return res.Err()
	})

	if err != nil {
		return nil, err
	}
	if !found {
		return nil, app_errors.ErrDeliveryNotFound
	}

	return &delivery, nil
}

// CreateSubscriptionHistory создает запись истории подписки
func (c *YDBClient) CreateSubscriptionHistory(ctx context.Context, history *SubscriptionHistory) error {
	query := `
		DECLARE $history_id AS Text;
		DECLARE $subscription_id AS Text;
		DECLARE $event_type AS Text;
		DECLARE $actor_id AS Text;
		DECLARE $details AS Json;
		DECLARE $changed_at AS Timestamp;

		REPLACE INTO subscription_history (history_id, subscription_id, event_type, actor_id, details, changed_at)
		VALUES ($history_id, $subscription_id, $event_type, $actor_id, $details, $changed_at)
	`

	if history.ChangedAt.IsZero() {
		history.ChangedAt = time.Now().UTC()
	}
	details := history.Details
	if details == "" {
		details = "{}"
	}

	return c.driver.Table().Do(ctx, func(ctx context.Context, session table.Session) error {
		_, _, err := session.Execute(ctx, table.DefaultTxControl(), query,
			table.NewQueryParameters(
				table.ValueParam("$history_id", types.TextValue(history.HistoryID)),
				table.ValueParam("$subscription_id", types.TextValue(history.SubscriptionID)),
				table.ValueParam("$event_type", types.TextValue(history.EventType)),
				table.ValueParam("$actor_id", types.TextValue(history.ActorID)),
				table.ValueParam("$details", types.JSONValue(details)),
				table.ValueParam("$changed_at", types.TimestampValueFromTime(history.ChangedAt)),
			),
		)
		return err
	})
}

// GetSubscriptionHistory получает историю подписки, новые события первыми
func (c *YDBClient) GetSubscriptionHistory(ctx context.Context, subscriptionID string) ([]*SubscriptionHistory, error) {
	query := `
		DECLARE $subscription_id AS Text;
		SELECT history_id, subscription_id, event_type, actor_id, CAST(details AS Text) AS details, changed_at
		FROM subscription_history VIEW subscription_idx
		WHERE subscription_id = $subscription_id
		ORDER BY changed_at DESC
	`

	var histories []*SubscriptionHistory

	err := c.driver.Table().Do(ctx, func(ctx context.Context, session table.Session) error {
		_, res, err := session.Execute(ctx, table.DefaultTxControl(), query,
			table.NewQueryParameters(
				table.ValueParam("$subscription_id", types.TextValue(subscriptionID)),
			),
		)
		if err != nil {
			return err
		}
		defer res.Close()

		for res.NextResultSet(ctx) {
			for res.NextRow() {
				var history SubscriptionHistory
				if err := res.ScanNamed(
					named.Required("history_id", &history.HistoryID),
					named.Required("subscription_id", &history.SubscriptionID),
					named.Required("event_type", &history.EventType),
					named.OptionalWithDefault("actor_id", &history.ActorID),
					named.OptionalWithDefault("details", &history.Details),
					named.Required("changed_at", &history.ChangedAt),
				); err != nil {
					return fmt.Errorf("scan failed: %w", err)
				}
				histories = append(histories, &history)
			}
		}
		return res.Err()
	})

	if err != nil {
		return nil, err
	}

	return histories, nil
}

// CreateOrder сохраняет заказ
func (c *YDBClient) CreateOrder(ctx context.Context, order *Order) error {
	query := `
		DECLARE $order_id AS Text;
		DECLARE $subscription_id AS Text;
		DECLARE $customer_id AS Text;
		DECLARE $plan_id AS Text;
		DECLARE $final_total AS Text;
		DECLARE $document_key AS Text;
		DECLARE $created_at AS Timestamp;

		REPLACE INTO orders (order_id, subscription_id, customer_id, plan_id, final_total, document_key, created_at)
		VALUES ($order_id, $subscription_id, $customer_id, $plan_id, $final_total, $document_key, $created_at)
	`

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	return c.driver.Table().Do(ctx, func(ctx context.Context, session table.Session) error {
		_, _, err := session.Execute(ctx, table.DefaultTxControl(), query,
			table.NewQueryParameters(
				table.ValueParam("$order_id", types.TextValue(order.OrderID)),
				table.ValueParam("$subscription_id", types.TextValue(order.SubscriptionID)),
				table.ValueParam("$customer_id", types.TextValue(order.CustomerID)),
				table.ValueParam("$plan_id", types.TextValue(order.PlanID)),
				table.ValueParam("$final_total", types.TextValue(order.FinalTotal)),
				table.ValueParam("$document_key", types.TextValue(order.DocumentKey)),
				table.ValueParam("$created_at", types.TimestampValueFromTime(order.CreatedAt)),
			),
		)
		return err
	})
}

// GetOrderByID получает заказ по ID
func (c *YDBClient) GetOrderByID(ctx context.Context, orderID string) (*Order, error) {
	query := `
		DECLARE $order_id AS Text;
		SELECT order_id, subscription_id, customer_id, plan_id, final_total, document_key, created_at
		FROM orders
		WHERE order_id = $order_id
	`

	var order Order
	var found bool

	err := c.driver.Table().Do(ctx, func(ctx context.Context, session table.Session) error {
		_, res, err := session.Execute(ctx, table.DefaultTxControl(), query,
			table.NewQueryParameters(
				table.ValueParam("$order_id", types.TextValue(orderID)),
			),
		)
		if err != nil {
			return err
		}
		defer res.Close()

		if res.NextResultSet(ctx) && res.NextRow() {
			found = true
			if err := res.ScanNamed(
				named.Required("order_id", &order.OrderID),
				named.Required("subscription_id", &order.SubscriptionID),
				named.Required("customer_id", &order.CustomerID),
				named.Required("plan_id", &order.PlanID),
				named.Required("final_total", &order.FinalTotal),
				named.OptionalWithDefault("document_key", &order.DocumentKey),
				named.Required("created_at", &order.CreatedAt),
			); err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}
		}
		return res.Err()
	})

	if err != nil {
		return nil, err
	}
	if !found {
		return nil, app_errors.ErrOrderNotFound
	}

	return &order, nil
}
