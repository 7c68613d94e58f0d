package ydb

import (
	"context"
)

// Database определяет интерфейс для работы с базой данных
type Database interface {
	// Тарифные планы
	GetPlanByID(ctx context.Context, planID string) (*Plan, error)
	GetAllPlans(ctx context.Context) ([]*Plan, error)

	// Промокоды
	GetPromoCode(ctx context.Context, code string) (*PromoCode, error)

	// Подписки
	GetSubscriptionByID(ctx context.Context, subscriptionID string) (*Subscription, error)
	ListSubscriptionsByStatus(ctx context.Context, statuses []string) ([]*Subscription, error)

	// SaveSubscriptionTx атомарно записывает подписку и её доставки.
	// Version == 0 означает создание новой подписки, иначе запись выполняется
	// только если версия в базе совпадает с subscription.Version.
	// При успехе subscription.Version увеличивается.
	SaveSubscriptionTx(ctx context.Context, subscription *Subscription, deliveries []*Delivery) error

	// Доставки
	GetDeliveriesBySubscription(ctx context.Context, subscriptionID string) ([]*Delivery, error)
	GetDeliveryByID(ctx context.Context, deliveryID string) (*Delivery, error)

	// История подписок
	CreateSubscriptionHistory(ctx context.Context, history *SubscriptionHistory) error
	GetSubscriptionHistory(ctx context.Context, subscriptionID string) ([]*SubscriptionHistory, error)

	// Заказы
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)

	// Инициализация и миграции
	Initialize(ctx context.Context) error
	Close() error
}
