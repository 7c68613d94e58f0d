package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/lumiforge/mealsub-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSES struct {
	mock.Mock
}

func (m *mockSES) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sesv2.SendEmailOutput)
	return out, args.Error(1)
}

func TestNewClient_NotConfigured(t *testing.T) {
	client := NewClient(&config.Config{})

	assert.False(t, client.IsConfigured())

	msg, err := client.SendCancellationNotice(context.Background(), "client@example.com", "sub-1")
	require.NoError(t, err)
	assert.Equal(t, EmailStatusSkipped, msg.Status)
}

func TestClient_SendPauseNotice(t *testing.T) {
	ses := new(mockSES)
	client := &Client{SESClient: ses, Sender: "noreply@mealsub.example"}
	ctx := context.Background()
	next := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	ses.On("SendEmail", ctx, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
		return in.Destination.ToAddresses[0] == "client@example.com" &&
			aws.ToString(in.FromEmailAddress) == "noreply@mealsub.example"
	})).Return(&sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil)

	msg, err := client.SendPauseNotice(ctx, "client@example.com", "sub-<1>", 7, &next)

	require.NoError(t, err)
	assert.Equal(t, EmailStatusSent, msg.Status)
	assert.Equal(t, "msg-1", msg.MessageID)
	assert.Contains(t, msg.Body, "2026-11-02")
	assert.Contains(t, msg.Body, "sub-&lt;1&gt;")
	ses.AssertExpectations(t)
}

func TestClient_SendFailure(t *testing.T) {
	ses := new(mockSES)
	client := &Client{SESClient: ses, Sender: "noreply@mealsub.example"}
	ctx := context.Background()

	ses.On("SendEmail", ctx, mock.Anything).Return(nil, errors.New("throttled"))

	msg, err := client.SendResumeNotice(ctx, "client@example.com", "sub-1", nil)

	assert.Error(t, err)
	assert.Equal(t, EmailStatusFailed, msg.Status)
	assert.Equal(t, "throttled", msg.Error)
}
