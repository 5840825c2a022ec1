package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"waitline/internal/domain/waitlist"
	"waitline/internal/infra/db"
)

// Write-side record of a waitlist entry, independent of the read-side
// view types (CQRS separation).
type EntryRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	PhoneNumber string
	PartySize   int
	Status      waitlist.Status
	QueueNumber int
	WaitMinutes int
	CreatedAt   time.Time
	NotifiedAt  *time.Time
	SeatedAt    *time.Time
}

type WaitlistRepository interface {
	// FindActiveByUser returns the user's waiting/notified entry, or a
	// KindNotFound repository error.
	FindActiveByUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) (*EntryRecord, error)
	FindByID(ctx context.Context, tx db.DBTX, entryID uuid.UUID) (*EntryRecord, error)
	CountActive(ctx context.Context, tx db.DBTX) (int, error)
	// CountActiveUpTo counts active entries with queue_number <= queueNumber.
	CountActiveUpTo(ctx context.Context, tx db.DBTX, queueNumber int) (int, error)
	// MaxQueueNumber scans every entry ever created, terminal ones
	// included; issued numbers are never recycled.
	MaxQueueNumber(ctx context.Context, tx db.DBTX) (int, error)
	Insert(ctx context.Context, tx db.DBTX, entry *waitlist.Entry, queueNumber, waitMinutes int) error
	// Transition applies a guarded status update: the row changes only
	// if its current status is in from. Returns the updated record, or
	// nil when no row matched.
	Transition(ctx context.Context, tx db.DBTX, entryID uuid.UUID, from []waitlist.Status, to waitlist.Status, at time.Time) (*EntryRecord, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
