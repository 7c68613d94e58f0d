package jwt

import "time"

// TokenManager выпускает и проверяет access токены
type TokenManager interface {
	GenerateToken(userID, email, role string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	GetTokenExpiry() time.Duration
}

var _ TokenManager = (*JWTManager)(nil)
