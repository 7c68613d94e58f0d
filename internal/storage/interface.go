package storage

import (
	"context"
	"time"
)

// StorageProvider определяет интерфейс для работы с объектным хранилищем (S3)
type StorageProvider interface {
	// Запись и чтение документов заказов
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
	GetObject(ctx context.Context, key string) ([]byte, error)
	DeleteObject(ctx context.Context, key string) error

	// Ссылка на скачивание документа
	GeneratePresignedDownloadURL(ctx context.Context, key string, lifetime time.Duration) (string, error)

	GetBucket() string
}
