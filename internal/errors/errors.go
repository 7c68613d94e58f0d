package errors

import "errors"

// Инфраструктура
var (
	ErrFailedToConnectYDB        = errors.New("failed to connect to YDB")
	ErrJWTSecretKeyNotConfigured = errors.New("JWT secret key is not configured")
	ErrFailedToInitStorageClient = errors.New("failed to initialize storage client")
)

// Авторизация
var (
	ErrAuthHeaderEmpty       = errors.New("authorization header is empty")
	ErrAuthHeaderWrongFormat = errors.New("authorization header format must be Bearer {token}")
	ErrInvalidToken          = errors.New("invalid token")
	ErrTokenExpired          = errors.New("token expired")
	ErrInvalidTokenClaims    = errors.New("invalid token claims")
	ErrAccessDenied          = errors.New("access denied")
)

// Доменные сущности
var (
	ErrPlanNotFound           = errors.New("plan not found")
	ErrPromoCodeNotFound      = errors.New("promo code not found")
	ErrSubscriptionNotFound   = errors.New("subscription not found")
	ErrDeliveryNotFound       = errors.New("delivery not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrDeliveryNotPending     = errors.New("delivery is not pending")
	ErrSubscriptionNotActive  = errors.New("subscription is not active")
	ErrConcurrentModification = errors.New("subscription was modified concurrently")
	ErrSubscriptionExists     = errors.New("subscription already exists")
)
