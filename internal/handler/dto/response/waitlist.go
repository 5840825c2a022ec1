package response

import (
	"time"

	"github.com/google/uuid"

	"waitline/internal/usecase/commands"
)

// Envelope is the wire shape of all waitlist endpoints.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

func Failure(message string, data any) Envelope {
	return Envelope{Success: false, Message: message, Data: data}
}

type JoinData struct {
	QueueNumber int    `json:"queue_number"`
	WaitMinutes int    `json:"wait_minutes"`
	Position    int    `json:"position"`
	Status      string `json:"status"`
}

func FromJoinResult(res *commands.JoinResult) JoinData {
	return JoinData{
		QueueNumber: res.QueueNumber,
		WaitMinutes: res.WaitMinutes,
		Position:    res.Position,
		Status:      res.Status.String(),
	}
}

type EntryData struct {
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

func FromEntryRecord(rec *commands.EntryRecord) EntryData {
	return EntryData{
		ID:          rec.ID,
		UserID:      rec.UserID,
		Name:        rec.Name,
		PhoneNumber: rec.PhoneNumber,
		PartySize:   rec.PartySize,
		Status:      rec.Status.String(),
		QueueNumber: rec.QueueNumber,
		WaitMinutes: rec.WaitMinutes,
		CreatedAt:   rec.CreatedAt,
		NotifiedAt:  rec.NotifiedAt,
		SeatedAt:    rec.SeatedAt,
	}
}

type ListData struct {
	Count   int `json:"count"`
	Entries any `json:"entries"`
}
