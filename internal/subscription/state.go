package subscription

import "fmt"

// Status is the lifecycle state of a subscription.
type Status string

const (
	StatusActive   Status = "active"
	StatusPaused   Status = "paused"
	StatusCanceled Status = "canceled"
	StatusExpired  Status = "expired"
)

// Transition is a directed status change.
type Transition struct {
	From Status
	To   Status
}

// Canceled and expired are terminal: nothing leaves them.
var transitions = map[Transition]bool{
	{StatusActive, StatusPaused}:   true,
	{StatusPaused, StatusActive}:   true,
	{StatusActive, StatusCanceled}: true,
	{StatusPaused, StatusCanceled}: true,
	{StatusActive, StatusExpired}:  true,
	{StatusPaused, StatusExpired}:  true,
}

// CanTransition reports whether from -> to is allowed.
func CanTransition(from, to Status) bool {
	return transitions[Transition{From: from, To: to}]
}

// ParseStatus validates a stored status value.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusActive, StatusPaused, StatusCanceled, StatusExpired:
		return st, nil
	}
	return "", fmt.Errorf("unknown subscription status %q", s)
}

// TransitionError is returned for a status change the lifecycle forbids.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("subscription cannot move from %s to %s", e.From, e.To)
}
