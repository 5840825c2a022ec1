package queries

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"waitline/internal/infra"
	"waitline/internal/pkg/config"
	"waitline/internal/pkg/errs"
)

var ErrNotInQueue = errs.New("not in waiting list")

type WaitlistQueries interface {
	// StatusByUser recomputes position and estimated wait for the
	// caller's active entry. The stored estimate is read-repaired when
	// the recomputed value differs.
	StatusByUser(ctx context.Context, userID uuid.UUID) (*WaitlistStatusView, error)
	// ListActive returns all waiting/notified entries in FIFO order.
	ListActive(ctx context.Context) ([]*WaitlistEntryView, error)
}

type WaitlistReadStore interface {
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*WaitlistEntryView, error)
	FindAllActive(ctx context.Context) ([]*WaitlistEntryView, error)
	// CountActiveUpTo counts active entries with queue_number <= queueNumber,
	// i.e. the live position of the entry holding that number.
	CountActiveUpTo(ctx context.Context, queueNumber int) (int, error)
}

// WaitRepairer persists a recomputed estimate as a side effect of a read.
type WaitRepairer interface {
	RepairWaitMinutes(ctx context.Context, entryID uuid.UUID, waitMinutes int) error
}

type waitlistQueriesImpl struct {
	readStore WaitlistReadStore
	repairer  WaitRepairer
	cfg       config.WaitlistConfig
}

func NewWaitlistQueries(readStore WaitlistReadStore, repairer WaitRepairer, cfg config.WaitlistConfig) WaitlistQueries {
	return &waitlistQueriesImpl{
		readStore: readStore,
		repairer:  repairer,
		cfg:       cfg,
	}
}

func (q *waitlistQueriesImpl) StatusByUser(ctx context.Context, userID uuid.UUID) (*WaitlistStatusView, error) {
	entry, err := q.readStore.FindActiveByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotInQueue
		}
		return nil, err
	}

	position, err := q.readStore.CountActiveUpTo(ctx, entry.QueueNumber)
	if err != nil {
		return nil, err
	}

	waitMinutes := position * q.cfg.AvgWaitMinutes
	if waitMinutes != entry.WaitMinutes {
		// Best-effort read-repair: the read must succeed even if the
		// write does not.
		if repairErr := q.repairer.RepairWaitMinutes(ctx, entry.ID, waitMinutes); repairErr != nil {
			slog.Warn("failed to repair stored wait estimate",
				"entry_id", entry.ID,
				"error", repairErr.Error())
		}
	}

	return &WaitlistStatusView{
		Status:      entry.Status,
		QueueNumber: entry.QueueNumber,
		WaitMinutes: waitMinutes,
		Position:    position,
		PartySize:   entry.PartySize,
		NotifiedAt:  entry.NotifiedAt,
	}, nil
}

func (q *waitlistQueriesImpl) ListActive(ctx context.Context) ([]*WaitlistEntryView, error) {
	return q.readStore.FindAllActive(ctx)
}
