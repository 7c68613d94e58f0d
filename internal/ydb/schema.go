package ydb

import (
	"context"
	"fmt"
	"log"
	"time"
)

type tableDefinition struct {
	name string
	ddl  string
	seed string
}

var tableDefinitions = []tableDefinition{
	{
		name: "plans",
		ddl: `
			CREATE TABLE plans (
				plan_id Text NOT NULL,
				name Text,
				base_rate Text NOT NULL,
				multiplier Text NOT NULL,
				is_active Bool,
				created_at Timestamp,
				updated_at Timestamp,
				PRIMARY KEY (plan_id)
			)
		`,
		seed: `
			REPLACE INTO plans (plan_id, name, base_rate, multiplier, is_active, created_at, updated_at)
			VALUES
			('weight-loss', 'Weight Loss', '30000', '1.00', true, CurrentUtcTimestamp(), CurrentUtcTimestamp()),
			('balanced', 'Balanced', '28000', '1.00', true, CurrentUtcTimestamp(), CurrentUtcTimestamp()),
			('muscle-gain', 'Muscle Gain', '32000', '1.15', true, CurrentUtcTimestamp(), CurrentUtcTimestamp()),
			('keto', 'Keto', '35000', '1.10', true, CurrentUtcTimestamp(), CurrentUtcTimestamp())
		`,
	},
	{
		name: "promo_codes",
		ddl: `
			CREATE TABLE promo_codes (
				code Text NOT NULL,
				percent Text NOT NULL,
				is_active Bool,
				valid_until Optional<Timestamp>,
				created_at Timestamp,
				PRIMARY KEY (code)
			)
		`,
		seed: `
			REPLACE INTO promo_codes (code, percent, is_active, valid_until, created_at)
			VALUES
			('WELCOME10', '10', true, NULL, CurrentUtcTimestamp()),
			('RAMADAN15', '15', true, NULL, CurrentUtcTimestamp())
		`,
	},
	{
		name: "subscriptions",
		ddl: `
			CREATE TABLE subscriptions (
				subscription_id Text NOT NULL,
				customer_id Text NOT NULL,
				contact_email Text,
				plan_id Text NOT NULL,
				status Text NOT NULL,
				frequency Text,
				duration_weeks Int32 NOT NULL,
				weekly_price Text NOT NULL,
				start_date Date NOT NULL,
				next_billing_date Date NOT NULL,
				pause_count Int32,
				paused_at Optional<Timestamp>,
				paused_until Optional<Timestamp>,
				version Int64 NOT NULL,
				created_at Timestamp,
				updated_at Timestamp,
				PRIMARY KEY (subscription_id),
				INDEX customer_idx GLOBAL ON (customer_id),
				INDEX status_idx GLOBAL ON (status)
			)
		`,
	},
	{
		name: "deliveries",
		ddl: `
			CREATE TABLE deliveries (
				delivery_id Text NOT NULL,
				subscription_id Text NOT NULL,
				scheduled_date Date NOT NULL,
				status Text NOT NULL,
				completed_at Optional<Timestamp>,
				updated_at Timestamp,
				PRIMARY KEY (delivery_id),
				INDEX subscription_idx GLOBAL ON (subscription_id)
			)
		`,
	},
	{
		name: "subscription_history",
		ddl: `
			CREATE TABLE subscription_history (
				history_id Text NOT NULL,
				subscription_id Text NOT NULL,
				event_type Text NOT NULL,
				actor_id Text,
				details Json,
				changed_at Timestamp,
				PRIMARY KEY (history_id),
				INDEX subscription_idx GLOBAL ON (subscription_id)
			)
		`,
	},
	{
		name: "orders",
		ddl: `
			CREATE TABLE orders (
				order_id Text NOT NULL,
				subscription_id Text NOT NULL,
				customer_id Text NOT NULL,
				plan_id Text NOT NULL,
				final_total Text NOT NULL,
				document_key Text,
				created_at Timestamp,
				PRIMARY KEY (order_id),
				INDEX customer_idx GLOBAL ON (customer_id)
			)
		`,
	},
}

// createTables создает отсутствующие таблицы
func (c *YDBClient) createTables(ctx context.Context) error {
	log.Println("Starting table creation...")

	for i, def := range tableDefinitions {
		if i > 0 {
			// Задержка между DDL для избежания лимита schema operations
			time.Sleep(500 * time.Millisecond)
		}

		log.Printf("Creating table: %s", def.name)
		exists, err := c.tableExists(ctx, def.name)
		if err != nil {
			return fmt.Errorf("failed to check %s table existence: %w", def.name, err)
		}
		if exists {
			log.Printf("Table %s already exists, skipping creation", def.name)
			continue
		}

		if err := c.executeSchemeQuery(ctx, def.ddl); err != nil {
			return fmt.Errorf("failed to create %s table: %w", def.name, err)
		}

		// Справочники заполняются только сразу после создания таблицы
		if def.seed != "" {
			if err := c.executeQuery(ctx, def.seed); err != nil {
				return fmt.Errorf("failed to seed %s: %w", def.name, err)
			}
		}
	}

	return nil
}
