package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lumiforge/mealsub-backend/internal/audit"
	"github.com/lumiforge/mealsub-backend/internal/catalog"
	"github.com/lumiforge/mealsub-backend/internal/config"
	"github.com/lumiforge/mealsub-backend/internal/email"
	app_errors "github.com/lumiforge/mealsub-backend/internal/errors"
	httpserver "github.com/lumiforge/mealsub-backend/internal/http"
	"github.com/lumiforge/mealsub-backend/internal/jwt"
	"github.com/lumiforge/mealsub-backend/internal/logger"
	"github.com/lumiforge/mealsub-backend/internal/order"
	"github.com/lumiforge/mealsub-backend/internal/pricing"
	"github.com/lumiforge/mealsub-backend/internal/rbac"
	"github.com/lumiforge/mealsub-backend/internal/scheduler"
	"github.com/lumiforge/mealsub-backend/internal/storage"
	"github.com/lumiforge/mealsub-backend/internal/subscription"
	"github.com/lumiforge/mealsub-backend/internal/telegram"
	"github.com/lumiforge/mealsub-backend/internal/ydb"
)

// App содержит готовые к работе компоненты приложения
type App struct {
	Config        *config.Config
	Handler       http.Handler
	Subscriptions *subscription.Service
	// Scheduler равен nil, если MS_EXPIRY_SWEEP_ENABLED выключен
	Scheduler *scheduler.Scheduler

	db ydb.Database
}

// Close останавливает планировщик и закрывает соединение с YDB
func (a *App) Close() error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Initialize настраивает все зависимости и возвращает приложение с готовым HTTP роутером
func Initialize(ctx context.Context) (*App, error) {
	// Загрузка конфигурации
	cfg := config.Load()

	// Инициализация Telegram клиента
	tgClient := telegram.NewClient(cfg)

	// Инициализация логгера
	log := logger.New(cfg, tgClient)
	slog.SetDefault(log)

	// Инициализация JWT менеджера
	jwtManager := jwt.NewJWTManager(cfg)
	if jwtManager == nil {
		return nil, app_errors.ErrJWTSecretKeyNotConfigured
	}

	// Инициализация YDB
	db, err := ydb.NewYDBClient(ctx, cfg)
	if err != nil {
		log.Error("Failed to connect to YDB", "error", err)
		return nil, app_errors.ErrFailedToConnectYDB
	}

	// Инициализация S3 клиента для документов заказов
	storageClient, err := storage.NewClient(ctx, cfg)
	if err != nil {
		log.Error("Failed to initialize storage client", "error", err)
		return nil, errors.Join(app_errors.ErrFailedToInitStorageClient, db.Close())
	}

	// Инициализация email клиента
	emailClient := email.NewClient(cfg)
	if !emailClient.IsConfigured() {
		if cfg.IsProduction() {
			log.Error("Postbox is not configured in production, notifications will be skipped")
		} else {
			log.Warn("Postbox is not configured, notifications will be skipped")
		}
	}

	// Инициализация RBAC
	rbacManager := rbac.NewRBAC()

	// Инициализация сервисов
	auditService := audit.NewService(db, log)
	catalogService := catalog.NewService(db)
	calculator := pricing.NewCalculator(catalogService)

	policy := subscription.DefaultPolicy()
	policy.PauseNotice = cfg.PauseNotice
	policy.ResumeNotice = cfg.ResumeNotice
	subscriptionService := subscription.NewService(db, emailClient, auditService, policy)

	orderService := order.NewService(db, storageClient, calculator, subscriptionService, emailClient, auditService)

	// Инициализация HTTP сервера
	server := httpserver.NewServer(catalogService, calculator, subscriptionService, orderService, auditService, rbacManager)

	// Настройка роутера
	router := httpserver.SetupRouter(server, jwtManager)

	app := &App{
		Config:        cfg,
		Handler:       router,
		Subscriptions: subscriptionService,
		db:            db,
	}

	// Планировщик истечения подписок
	if cfg.ExpirySweepEnabled {
		sched, err := scheduler.New(cfg.ExpiryCron, subscriptionService, log)
		if err != nil {
			return nil, errors.Join(err, db.Close())
		}
		app.Scheduler = sched
	}

	log.Info("Application initialized successfully",
		"env", cfg.AppEnv,
		"expiry_sweep", cfg.ExpirySweepEnabled,
	)
	return app, nil
}
