package waitlist

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmptyName         = errors.New("name must not be empty")
)

// Entry is one party's place in the waiting list. The queue number is
// assigned by the store at insert time and never reused; notifiedAt and
// seatedAt are set exactly once, on the transition that introduces them.
type Entry struct {
	id          uuid.UUID
	userID      uuid.UUID
	name        string
	phoneNumber string
	partySize   PartySize
	status      Status
	queueNumber int
	waitMinutes int
	createdAt   time.Time
	notifiedAt  *time.Time
	seatedAt    *time.Time
}

// NewEntry builds a not-yet-persisted entry in the waiting state. The
// queue number and creation timestamp are store-assigned on insert.
func NewEntry(userID uuid.UUID, name, phoneNumber string, partySize PartySize) (*Entry, error) {
	if len(name) == 0 {
		return nil, ErrEmptyName
	}
	return &Entry{
		id:          uuid.New(),
		userID:      userID,
		name:        name,
		phoneNumber: phoneNumber,
		partySize:   partySize,
		status:      StatusWaiting,
	}, nil
}

// Notify transitions waiting → notified.
func (e *Entry) Notify(now time.Time) error {
	if !e.status.CanTransitionTo(StatusNotified) {
		return ErrInvalidTransition
	}
	e.status = StatusNotified
	t := now
	e.notifiedAt = &t
	return nil
}

// Seat transitions waiting|notified → seated.
func (e *Entry) Seat(now time.Time) error {
	if !e.status.CanTransitionTo(StatusSeated) {
		return ErrInvalidTransition
	}
	e.status = StatusSeated
	t := now
	e.seatedAt = &t
	return nil
}

// Cancel transitions waiting|notified → cancelled.
func (e *Entry) Cancel() error {
	if !e.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	e.status = StatusCancelled
	return nil
}

func (e *Entry) IsActive() bool {
	return e.status.IsActive()
}

func (e *Entry) ID() uuid.UUID          { return e.id }
func (e *Entry) UserID() uuid.UUID      { return e.userID }
func (e *Entry) Name() string           { return e.name }
func (e *Entry) PhoneNumber() string    { return e.phoneNumber }
func (e *Entry) PartySize() PartySize   { return e.partySize }
func (e *Entry) Status() Status         { return e.status }
func (e *Entry) QueueNumber() int       { return e.queueNumber }
func (e *Entry) WaitMinutes() int       { return e.waitMinutes }
func (e *Entry) CreatedAt() time.Time   { return e.createdAt }
func (e *Entry) NotifiedAt() *time.Time { return e.notifiedAt }
func (e *Entry) SeatedAt() *time.Time   { return e.seatedAt }
