//go:build unit || e2e

package builder

import (
	"time"

	reqdto "waitline/internal/handler/dto/request"
	"waitline/internal/usecase/commands"
	"waitline/internal/usecase/queries"

	"waitline/internal/domain/waitlist"

	"github.com/google/uuid"
)

type WaitlistBuilder struct {
	UserID      uuid.UUID
	Name        string
	PhoneNumber string
	PartySize   int
	Status      string
	QueueNumber int
	WaitMinutes int
}

func NewWaitlistBuilder() *WaitlistBuilder {
	return &WaitlistBuilder{
		UserID:      uuid.New(),
		Name:        "Test Customer",
		PhoneNumber: "+819012345678",
		PartySize:   2,
		Status:      "waiting",
		QueueNumber: 1,
		WaitMinutes: 0,
	}
}

func (b *WaitlistBuilder) BuildJoinDTO() reqdto.JoinRequest {
	return reqdto.JoinRequest{
		Name:        b.Name,
		PhoneNumber: b.PhoneNumber,
		PartySize:   b.PartySize,
	}
}

func (b *WaitlistBuilder) BuildRecord() *commands.EntryRecord {
	return &commands.EntryRecord{
		ID:          uuid.New(),
		UserID:      b.UserID,
		Name:        b.Name,
		PhoneNumber: b.PhoneNumber,
		PartySize:   b.PartySize,
		Status:      waitlist.Status(b.Status),
		QueueNumber: b.QueueNumber,
		WaitMinutes: b.WaitMinutes,
		CreatedAt:   time.Now(),
	}
}

func (b *WaitlistBuilder) BuildView() *queries.WaitlistEntryView {
	return &queries.WaitlistEntryView{
		ID:          uuid.New(),
		UserID:      b.UserID,
		Name:        b.Name,
		PhoneNumber: b.PhoneNumber,
		PartySize:   b.PartySize,
		Status:      b.Status,
		QueueNumber: b.QueueNumber,
		WaitMinutes: b.WaitMinutes,
		CreatedAt:   time.Now(),
	}
}

// Fluent builder methods
func (b *WaitlistBuilder) WithUserID(id uuid.UUID) *WaitlistBuilder {
	b.UserID = id
	return b
}

func (b *WaitlistBuilder) WithPartySize(n int) *WaitlistBuilder {
	b.PartySize = n
	return b
}

func (b *WaitlistBuilder) WithStatus(status string) *WaitlistBuilder {
	b.Status = status
	return b
}

func (b *WaitlistBuilder) WithQueueNumber(n int) *WaitlistBuilder {
	b.QueueNumber = n
	return b
}
