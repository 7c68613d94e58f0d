package subscription

import "time"

// Pause failure codes.
const (
	CodeInvalidPauseDuration = "invalid_duration"
	CodeNotActive            = "not_active"
	CodeAlreadyPaused        = "already_paused_once"
	CodeNoPendingDeliveries  = "no_pending_deliveries"
	CodeTooCloseToDelivery   = "too_close_to_next_delivery"
)

// Resume failure codes.
const (
	CodeNotPaused     = "not_paused"
	CodeResumeTooSoon = "resume_too_soon"
)

// PauseError explains why a pause was refused. EligibleAt is set when
// the refusal is only about the notice period.
type PauseError struct {
	Code       string
	Reason     string
	EligibleAt *time.Time
}

func (e *PauseError) Error() string {
	return "cannot pause subscription: " + e.Reason
}

// ResumeError explains why a resume was refused.
type ResumeError struct {
	Code   string
	Reason string
}

func (e *ResumeError) Error() string {
	return "cannot resume subscription: " + e.Reason
}
