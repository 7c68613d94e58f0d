package email

import (
	"context"
	"fmt"
	"html"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	appconfig "github.com/lumiforge/mealsub-backend/internal/config"
)

// SESAPI is the part of the SES v2 client used for notices.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type Client struct {
	SESClient SESAPI
	Sender    string
}

// NewClient создает клиента Postbox (SES API). Без endpoint и ключей
// возвращается ненастроенный клиент, который не отправляет письма.
func NewClient(appCfg *appconfig.Config) *Client {
	if appCfg.SESEndpoint == "" || appCfg.SESAccessKeyID == "" || appCfg.SESSecretAccessKey == "" {
		return &Client{Sender: appCfg.EmailFrom}
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(appCfg.SESAccessKeyID, appCfg.SESSecretAccessKey, "")),
		config.WithRegion(appCfg.SESRegion),
	)
	if err != nil {
		log.Fatalf("failed to load SES config: %v", err)
	}

	sesClient := sesv2.NewFromConfig(cfg, func(o *sesv2.Options) {
		o.BaseEndpoint = aws.String(appCfg.SESEndpoint)
	})

	return &Client{
		SESClient: sesClient,
		Sender:    appCfg.EmailFrom,
	}
}

// IsConfigured проверяет, настроен ли email сервис
func (c *Client) IsConfigured() bool {
	return c.Sender != "" && c.SESClient != nil
}

// sendHTMLEmail отправляет HTML email через SES
func (c *Client) sendHTMLEmail(ctx context.Context, toEmail, subject, htmlBody string) (string, error) {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: &c.Sender,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data: &subject,
				},
				Body: &types.Body{
					Html: &types.Content{
						Data: &htmlBody,
					},
				},
			},
		},
	}

	out, err := c.SESClient.SendEmail(ctx, input)
	if err != nil {
		return "", err
	}
	return aws.ToString(out.MessageId), nil
}

func (c *Client) send(ctx context.Context, kind EmailType, toEmail, subject, body string) (*EmailMessage, error) {
	message := &EmailMessage{
		Type:      kind,
		Recipient: toEmail,
		Subject:   subject,
		Body:      body,
		Status:    EmailStatusSent,
		SentAt:    time.Now().UTC(),
	}

	if !c.IsConfigured() || toEmail == "" {
		message.Status = EmailStatusSkipped
		return message, nil
	}

	id, err := c.sendHTMLEmail(ctx, toEmail, subject, body)
	if err != nil {
		message.Status = EmailStatusFailed
		message.Error = err.Error()
		return message, err
	}
	message.MessageID = id

	return message, nil
}

func layout(title, content string) string {
	return fmt.Sprintf(`
		<html>
		<head>
			<meta charset="UTF-8">
		</head>
		<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
			<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
				<h2>%s</h2>
				%s
				<p style="margin-top: 30px; border-top: 1px solid #ddd; padding-top: 20px; font-size: 12px; color: #999;">
					This message was generated automatically. Please do not reply.
				</p>
			</div>
		</body>
		</html>
	`, html.EscapeString(title), content)
}

// SendOrderConfirmation подтверждает оформление подписки
func (c *Client) SendOrderConfirmation(ctx context.Context, toEmail, orderID, finalTotal string, firstDelivery time.Time) (*EmailMessage, error) {
	subject := "Your meal subscription is confirmed"
	body := layout(subject, fmt.Sprintf(
		`<p>Order <strong>%s</strong> is confirmed.</p><p>Total: <strong>%s</strong></p><p>First delivery: %s</p>`,
		html.EscapeString(orderID), html.EscapeString(finalTotal), firstDelivery.Format(time.DateOnly),
	))
	return c.send(ctx, EmailTypeOrderConfirmation, toEmail, subject, body)
}

// SendPauseNotice сообщает о постановке подписки на паузу
func (c *Client) SendPauseNotice(ctx context.Context, toEmail, subscriptionID string, durationDays int, nextDelivery *time.Time) (*EmailMessage, error) {
	subject := "Your meal deliveries are paused"
	next := "no upcoming deliveries"
	if nextDelivery != nil {
		next = nextDelivery.Format(time.DateOnly)
	}
	body := layout(subject, fmt.Sprintf(
		`<p>Subscription <strong>%s</strong> is paused for %d days.</p><p>Next delivery: %s</p>`,
		html.EscapeString(subscriptionID), durationDays, next,
	))
	return c.send(ctx, EmailTypePauseNotice, toEmail, subject, body)
}

// SendResumeNotice сообщает о возобновлении доставок
func (c *Client) SendResumeNotice(ctx context.Context, toEmail, subscriptionID string, nextDelivery *time.Time) (*EmailMessage, error) {
	subject := "Your meal deliveries are back"
	next := "no upcoming deliveries"
	if nextDelivery != nil {
		next = nextDelivery.Format(time.DateOnly)
	}
	body := layout(subject, fmt.Sprintf(
		`<p>Subscription <strong>%s</strong> is active again.</p><p>Next delivery: %s</p>`,
		html.EscapeString(subscriptionID), next,
	))
	return c.send(ctx, EmailTypeResumeNotice, toEmail, subject, body)
}

// SendCancellationNotice сообщает об отмене подписки
func (c *Client) SendCancellationNotice(ctx context.Context, toEmail, subscriptionID string) (*EmailMessage, error) {
	subject := "Your meal subscription is canceled"
	body := layout(subject, fmt.Sprintf(
		`<p>Subscription <strong>%s</strong> is canceled. Remaining deliveries will not be sent.</p>`,
		html.EscapeString(subscriptionID),
	))
	return c.send(ctx, EmailTypeCancelNotice, toEmail, subject, body)
}
