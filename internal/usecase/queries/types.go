package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type WaitlistEntryView struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phone_number"`
	PartySize   int        `json:"party_size"`
	Status      string     `json:"status"`
	QueueNumber int        `json:"queue_number"`
	WaitMinutes int        `json:"wait_minutes"`
	CreatedAt   time.Time  `json:"created_at"`
	NotifiedAt  *time.Time `json:"notified_at,omitempty"`
	SeatedAt    *time.Time `json:"seated_at,omitempty"`
}

// WaitlistStatusView is the customer-facing view of their own entry,
// with position and wait recomputed from live queue state.
type WaitlistStatusView struct {
	Status      string     `json:"status"`
	QueueNumber int        `json:"queue_number"`
	WaitMinutes int        `json:"wait_minutes"`
	Position    int        `json:"position"`
	PartySize   int        `json:"party_size"`
	NotifiedAt  *time.Time `json:"notified_at,omitempty"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}
