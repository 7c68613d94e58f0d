package main

import (
	"context"

	"github.com/lumiforge/mealsub-backend/internal/cloudfunction"
)

// Handler - точка входа Yandex Cloud Function
func Handler(ctx context.Context, request []byte) ([]byte, error) {
	return cloudfunction.Handler(ctx, request)
}

func main() {}
