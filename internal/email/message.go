package email

import "time"

// EmailType тип уведомления
type EmailType string

const (
	EmailTypeOrderConfirmation EmailType = "order_confirmation"
	EmailTypePauseNotice       EmailType = "pause_notice"
	EmailTypeResumeNotice      EmailType = "resume_notice"
	EmailTypeCancelNotice      EmailType = "cancel_notice"
)

// EmailStatus статус отправки
type EmailStatus string

const (
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
	EmailStatusSkipped EmailStatus = "skipped"
)

// EmailMessage результат отправки уведомления
type EmailMessage struct {
	Type      EmailType   `json:"type"`
	Recipient string      `json:"recipient"`
	Subject   string      `json:"subject"`
	Body      string      `json:"body"`
	Status    EmailStatus `json:"status"`
	SentAt    time.Time   `json:"sent_at"`
	MessageID string      `json:"message_id"`
	Error     string      `json:"error,omitempty"`
}
