package audit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/lumiforge/mealsub-backend/internal/models"
	"github.com/lumiforge/mealsub-backend/internal/ydb"
	ydbmocks "github.com/lumiforge/mealsub-backend/internal/ydb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Record(t *testing.T) {
	mockDB := new(ydbmocks.Database)
	service := NewService(mockDB, nil)
	ctx := context.Background()

	mockDB.On("CreateSubscriptionHistory", ctx, mock.MatchedBy(func(h *ydb.SubscriptionHistory) bool {
		var details map[string]any
		_ = json.Unmarshal([]byte(h.Details), &details)
		return h.SubscriptionID == "sub-1" &&
			h.EventType == "paused" &&
			h.ActorID == "user-1" &&
			h.HistoryID != "" &&
			!h.ChangedAt.IsZero() &&
			details["duration_days"] == float64(7)
	})).Return(nil)

	err := service.Record(ctx, Record{
		SubscriptionID: "sub-1",
		EventType:      models.HistorySubscriptionPaused,
		ActorID:        "user-1",
		Details:        map[string]any{"duration_days": 7},
	})

	assert.NoError(t, err)
	mockDB.AssertExpectations(t)
}

func TestService_Record_Validation(t *testing.T) {
	service := NewService(new(ydbmocks.Database), nil)

	assert.Error(t, service.Record(context.Background(), Record{EventType: models.HistorySubscriptionPaused}))
	assert.Error(t, service.Record(context.Background(), Record{SubscriptionID: "sub-1"}))
}

func TestService_Record_StorageFailure(t *testing.T) {
	mockDB := new(ydbmocks.Database)
	service := NewService(mockDB, nil)
	ctx := context.Background()

	mockDB.On("CreateSubscriptionHistory", ctx, mock.Anything).Return(errors.New("ydb unavailable"))

	err := service.Record(ctx, Record{SubscriptionID: "sub-1", EventType: models.HistorySubscriptionCreated})

	assert.EqualError(t, err, "ydb unavailable")
}

func TestService_ListHistory(t *testing.T) {
	mockDB := new(ydbmocks.Database)
	service := NewService(mockDB, nil)
	ctx := context.Background()
	changed := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	mockDB.On("GetSubscriptionHistory", ctx, "sub-1").Return([]*ydb.SubscriptionHistory{
		{HistoryID: "h2", SubscriptionID: "sub-1", EventType: "resumed", Details: `{"shift_days":3}`, ChangedAt: changed},
		{HistoryID: "h1", SubscriptionID: "sub-1", EventType: "created", Details: "", ChangedAt: changed},
	}, nil)

	entries, err := service.ListHistory(ctx, "sub-1")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.JSONEq(t, `{"shift_days":3}`, string(entries[0].Details))
	assert.JSONEq(t, `{}`, string(entries[1].Details))
	mockDB.AssertExpectations(t)
}
