package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"waitline/internal/domain/waitlist"
	"waitline/internal/infra"
	"waitline/internal/infra/db"
	"waitline/internal/pkg/clock"
	"waitline/internal/pkg/config"
	"waitline/internal/pkg/errs"
	"waitline/internal/usecase/shared"
)

var (
	ErrQueueFull               = errs.New("waiting list is full")
	ErrEntryNotFound           = errs.New("waitlist entry not found")
	ErrInvalidTransition       = errs.New("invalid status transition")
	ErrNoActiveEntry           = errs.New("no active waitlist entry")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type JoinParty struct {
	Name        string
	PhoneNumber string
	PartySize   int
}

// JoinResult carries the outcome of a join attempt. AlreadyQueued marks
// the duplicate case: no entry was created and the fields describe the
// caller's existing entry.
type JoinResult struct {
	QueueNumber   int
	WaitMinutes   int
	Position      int
	Status        waitlist.Status
	AlreadyQueued bool
}

type WaitlistCommands interface {
	Join(ctx context.Context, userID uuid.UUID, party JoinParty) (*JoinResult, error)
	Notify(ctx context.Context, entryID uuid.UUID) (*EntryRecord, error)
	Seat(ctx context.Context, entryID uuid.UUID) (*EntryRecord, error)
	Cancel(ctx context.Context, userID uuid.UUID) (*EntryRecord, error)
}

type waitlistCommandsImpl struct {
	repo  WaitlistRepository
	pool  *pgxpool.Pool
	clock clock.Clock
	cfg   config.WaitlistConfig
}

func NewWaitlistCommands(repo WaitlistRepository, pool *pgxpool.Pool, clk clock.Clock, cfg config.WaitlistConfig) WaitlistCommands {
	return &waitlistCommandsImpl{
		repo:  repo,
		pool:  pool,
		clock: clk,
		cfg:   cfg,
	}
}

// Join admits a party to the waiting list. The duplicate check, capacity
// check, queue-number issuance and insert run in one serializable
// transaction; two concurrent joins can never observe the same
// max(queue_number) and both commit.
func (w *waitlistCommandsImpl) Join(ctx context.Context, userID uuid.UUID, party JoinParty) (*JoinResult, error) {
	partySize, err := waitlist.NewPartySize(party.PartySize)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entry, err := waitlist.NewEntry(userID, party.Name, party.PhoneNumber, partySize)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	result, err := shared.WithSerializable(ctx, w.pool, func(tx db.DBTX) (*JoinResult, error) {
		existing, findErr := w.repo.FindActiveByUser(ctx, tx, userID)
		if findErr != nil && !infra.IsKind(findErr, infra.KindNotFound) {
			return nil, findErr
		}
		if existing != nil {
			position, posErr := w.repo.CountActiveUpTo(ctx, tx, existing.QueueNumber)
			if posErr != nil {
				return nil, posErr
			}
			return &JoinResult{
				QueueNumber:   existing.QueueNumber,
				WaitMinutes:   position * w.cfg.AvgWaitMinutes,
				Position:      position,
				Status:        existing.Status,
				AlreadyQueued: true,
			}, nil
		}

		active, countErr := w.repo.CountActive(ctx, tx)
		if countErr != nil {
			return nil, countErr
		}
		if active >= w.cfg.MaxQueueCapacity {
			return nil, ErrQueueFull
		}

		maxIssued, maxErr := w.repo.MaxQueueNumber(ctx, tx)
		if maxErr != nil {
			return nil, maxErr
		}
		queueNumber := maxIssued + 1
		// Stored estimate counts only the parties already ahead; status
		// reads recompute from live position and repair the stored value.
		waitMinutes := active * w.cfg.AvgWaitMinutes

		if insertErr := w.repo.Insert(ctx, tx, entry, queueNumber, waitMinutes); insertErr != nil {
			return nil, insertErr
		}

		return &JoinResult{
			QueueNumber: queueNumber,
			WaitMinutes: waitMinutes,
			Position:    active + 1,
			Status:      waitlist.StatusWaiting,
		}, nil
	})
	if err != nil {
		if errs.Is(err, ErrQueueFull) {
			return nil, ErrQueueFull
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return result, nil
}

// Notify marks a waiting party as called. Only waiting entries may be
// notified; re-notifying and touching terminal entries are rejected.
func (w *waitlistCommandsImpl) Notify(ctx context.Context, entryID uuid.UUID) (*EntryRecord, error) {
	return w.transition(ctx, entryID, waitlist.StatusNotified)
}

// Seat marks a party as seated, from waiting or notified.
func (w *waitlistCommandsImpl) Seat(ctx context.Context, entryID uuid.UUID) (*EntryRecord, error) {
	return w.transition(ctx, entryID, waitlist.StatusSeated)
}

// Cancel removes the caller's own active entry from the queue. The entry
// is retained as history with status cancelled.
func (w *waitlistCommandsImpl) Cancel(ctx context.Context, userID uuid.UUID) (*EntryRecord, error) {
	record, err := shared.WithReadCommitted(ctx, w.pool, func(tx db.DBTX) (*EntryRecord, error) {
		existing, findErr := w.repo.FindActiveByUser(ctx, tx, userID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return nil, ErrNoActiveEntry
			}
			return nil, findErr
		}

		updated, txErr := w.repo.Transition(ctx, tx, existing.ID,
			waitlist.AllowedSourcesFor(waitlist.StatusCancelled),
			waitlist.StatusCancelled, w.clock.Now())
		if txErr != nil {
			return nil, txErr
		}
		if updated == nil {
			return nil, ErrInvalidTransition
		}
		return updated, nil
	})
	if err != nil {
		if errs.Is(err, ErrNoActiveEntry) || errs.Is(err, ErrInvalidTransition) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return record, nil
}

func (w *waitlistCommandsImpl) transition(ctx context.Context, entryID uuid.UUID, to waitlist.Status) (*EntryRecord, error) {
	record, err := shared.WithReadCommitted(ctx, w.pool, func(tx db.DBTX) (*EntryRecord, error) {
		updated, txErr := w.repo.Transition(ctx, tx, entryID, waitlist.AllowedSourcesFor(to), to, w.clock.Now())
		if txErr != nil {
			return nil, txErr
		}
		if updated != nil {
			return updated, nil
		}

		// Distinguish unknown id from a disallowed transition.
		if _, findErr := w.repo.FindByID(ctx, tx, entryID); findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return nil, ErrEntryNotFound
			}
			return nil, findErr
		}
		return nil, ErrInvalidTransition
	})
	if err != nil {
		if errs.Is(err, ErrEntryNotFound) || errs.Is(err, ErrInvalidTransition) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return record, nil
}
