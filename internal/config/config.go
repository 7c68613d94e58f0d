package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Runtime
	AppEnv      string
	ServiceName string
	LogLevel    string

	// S3/Storage configuration
	S3Endpoint         string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	OrdersBucket       string

	// YDB configuration
	MSYDBEndpoint         string
	MSYDBDatabasePath     string
	MSYDBAutoCreateTables int

	// Telegram configuration
	TelegramBotToken    string
	TelegramAdminChatID string

	// JWT configuration
	JWTSecretKey string

	// Email/Postbox configuration
	SESEndpoint        string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
	EmailFrom          string

	// Subscription lifecycle
	ExpiryCron         string
	PauseNotice        time.Duration
	ResumeNotice       time.Duration
	ExpirySweepEnabled bool

	// HTTP configuration
	HTTPPort string
}

func Load() *Config {
	appEnv := getEnv("APP_ENV", "development")
	if appEnv != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}

	s3Endpoint := getEnv("S3_ENDPOINT", "https://storage.yandexcloud.net")
	// An explicitly empty value must not disable the default endpoint.
	if s3Endpoint == "" {
		s3Endpoint = "https://storage.yandexcloud.net"
	}
	if !strings.HasPrefix(s3Endpoint, "http://") && !strings.HasPrefix(s3Endpoint, "https://") {
		s3Endpoint = "https://" + s3Endpoint
		log.Printf("WARN: S3_ENDPOINT was missing a protocol scheme. Prepending 'https://'. New endpoint: %s", s3Endpoint)
	}

	return &Config{
		AppEnv:      appEnv,
		ServiceName: getEnv("MS_SERVICE_NAME", "mealsub-backend"),
		LogLevel:    getEnv("MS_LOG_LEVEL", "info"),

		// S3/Storage configuration
		S3Endpoint:         s3Endpoint,
		AWSAccessKeyID:     getEnv("MS_SA_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("MS_SA_KEY", ""),
		OrdersBucket:       getEnv("MS_ORDERS_BUCKET", "mealsub-orders"),

		// YDB configuration
		MSYDBEndpoint:         mustGetEnv("MS_YDB_ENDPOINT"),
		MSYDBDatabasePath:     mustGetEnv("MS_YDB_DATABASE_PATH"),
		MSYDBAutoCreateTables: getEnvInt("MS_YDB_AUTO_CREATE_TABLES", 0, 0, 1),

		// Telegram configuration
		TelegramBotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramAdminChatID: getEnv("TELEGRAM_CHAT_ID", ""),

		// JWT configuration
		JWTSecretKey: mustGetEnv("MS_JWT_SECRET_KEY"),

		// Email/Postbox configuration
		SESEndpoint:        getEnv("MS_POSTBOX_ENDPOINT", ""),
		SESRegion:          getEnv("MS_POSTBOX_REGION", "ru-central1"),
		SESAccessKeyID:     getEnv("MS_POSTBOX_ACCESS_KEY_ID", ""),
		SESSecretAccessKey: getEnv("MS_POSTBOX_SECRET_ACCESS_KEY", ""),
		EmailFrom:          getEnv("MS_EMAIL_FROM", ""),

		// Subscription lifecycle
		ExpiryCron:         getEnv("MS_EXPIRY_CRON", "0 3 * * *"),
		PauseNotice:        time.Duration(getEnvInt("MS_PAUSE_NOTICE_HOURS", 72, 1, 24*14)) * time.Hour,
		ResumeNotice:       time.Duration(getEnvInt("MS_RESUME_NOTICE_HOURS", 48, 1, 24*14)) * time.Hour,
		ExpirySweepEnabled: getEnvAsBool("MS_EXPIRY_SWEEP_ENABLED", true),

		// HTTP configuration
		HTTPPort: getEnv("MS_HTTP_PORT", "8080"),
	}
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func mustGetEnv(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		log.Fatalf("FATAL: Environment variable %s is not set.", key)
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, fallback, min, max int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			if n < min {
				return min
			}
			if n > max {
				return max
			}
			return n
		}
	}
	return fallback
}
