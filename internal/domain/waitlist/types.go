package waitlist

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusNotified  Status = "notified"
	StatusSeated    Status = "seated"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusNotified, StatusSeated, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the entry still occupies a queue slot.
func (s Status) IsActive() bool {
	return s == StatusWaiting || s == StatusNotified
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusSeated || s == StatusCancelled
}

// CanTransitionTo encodes the forward-only lifecycle:
// waiting → notified → seated, and waiting|notified → cancelled.
func (s Status) CanTransitionTo(next Status) bool {
	switch next {
	case StatusNotified:
		return s == StatusWaiting
	case StatusSeated:
		return s == StatusWaiting || s == StatusNotified
	case StatusCancelled:
		return s.IsActive()
	default:
		return false
	}
}

// AllowedSourcesFor lists every status a transition to target may start
// from, derived from CanTransitionTo so store-level guards and the
// aggregate always enforce the same lifecycle.
func AllowedSourcesFor(target Status) []Status {
	var sources []Status
	for _, s := range []Status{StatusWaiting, StatusNotified, StatusSeated, StatusCancelled} {
		if s.CanTransitionTo(target) {
			sources = append(sources, s)
		}
	}
	return sources
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
