package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"waitline/internal/domain/waitlist"
	"waitline/internal/infra"
	"waitline/internal/infra/db"
	"waitline/internal/usecase/commands"
)

const entryColumns = `id, user_id, name, phone_number, party_size, status, queue_number, wait_minutes, created_at, notified_at, seated_at`

type WaitlistRepository struct{}

func NewWaitlistRepository() *WaitlistRepository {
	return &WaitlistRepository{}
}

func (r *WaitlistRepository) FindActiveByUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) (*commands.EntryRecord, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+entryColumns+`
		FROM waitlist_entries
		WHERE user_id = $1 AND status IN ('waiting', 'notified')`,
		userID)

	record, err := scanEntryRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("active waitlist entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active waitlist entry", err)
	}
	return record, nil
}

func (r *WaitlistRepository) FindByID(ctx context.Context, tx db.DBTX, entryID uuid.UUID) (*commands.EntryRecord, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+entryColumns+`
		FROM waitlist_entries
		WHERE id = $1`,
		entryID)

	record, err := scanEntryRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("waitlist entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find waitlist entry", err)
	}
	return record, nil
}

func (r *WaitlistRepository) CountActive(ctx context.Context, tx db.DBTX) (int, error) {
	var count int
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM waitlist_entries
		WHERE status IN ('waiting', 'notified')`).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active entries", err)
	}
	return count, nil
}

func (r *WaitlistRepository) CountActiveUpTo(ctx context.Context, tx db.DBTX, queueNumber int) (int, error) {
	var count int
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM waitlist_entries
		WHERE status IN ('waiting', 'notified') AND queue_number <= $1`,
		queueNumber).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count entries ahead", err)
	}
	return count, nil
}

func (r *WaitlistRepository) MaxQueueNumber(ctx context.Context, tx db.DBTX) (int, error) {
	var maxIssued int
	err := tx.QueryRow(ctx, `
		SELECT COALESCE(MAX(queue_number), 0) FROM waitlist_entries`).Scan(&maxIssued)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read max queue number", err)
	}
	return maxIssued, nil
}

func (r *WaitlistRepository) Insert(ctx context.Context, tx db.DBTX, entry *waitlist.Entry, queueNumber, waitMinutes int) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO waitlist_entries (id, user_id, name, phone_number, party_size, status, queue_number, wait_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID(), entry.UserID(), entry.Name(), entry.PhoneNumber(),
		entry.PartySize().Value(), entry.Status().String(), queueNumber, waitMinutes)
	if err != nil {
		return infra.WrapRepoErr("failed to insert waitlist entry", err)
	}
	return nil
}

func (r *WaitlistRepository) Transition(ctx context.Context, tx db.DBTX, entryID uuid.UUID, from []waitlist.Status, to waitlist.Status, at time.Time) (*commands.EntryRecord, error) {
	fromStatuses := make([]string, len(from))
	for i, s := range from {
		fromStatuses[i] = s.String()
	}

	row := tx.QueryRow(ctx, `
		UPDATE waitlist_entries
		SET status = $2,
		    notified_at = CASE WHEN $2 = 'notified' THEN $3 ELSE notified_at END,
		    seated_at   = CASE WHEN $2 = 'seated'   THEN $3 ELSE seated_at END
		WHERE id = $1 AND status = ANY($4)
		RETURNING `+entryColumns,
		entryID, to.String(), at, fromStatuses)

	record, err := scanEntryRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No row in the allowed source statuses; the caller decides
			// whether that means not-found or a rejected transition.
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to transition waitlist entry", err)
	}
	return record, nil
}

// WaitlistRepairStore persists recomputed estimates outside any caller
// transaction (the read-repair path of status queries). It is bound to
// the pool rather than a transaction on purpose: repair is best-effort
// and must never hold up a read.
type WaitlistRepairStore struct {
	db db.DBTX
}

func NewWaitlistRepairStore(db db.DBTX) *WaitlistRepairStore {
	return &WaitlistRepairStore{db: db}
}

func (s *WaitlistRepairStore) RepairWaitMinutes(ctx context.Context, entryID uuid.UUID, waitMinutes int) error {
	_, err := s.db.Exec(ctx, `
		UPDATE waitlist_entries SET wait_minutes = $2 WHERE id = $1`,
		entryID, waitMinutes)
	if err != nil {
		return infra.WrapRepoErr("failed to update wait estimate", err)
	}
	return nil
}

func scanEntryRecord(row pgx.Row) (*commands.EntryRecord, error) {
	var (
		rec    commands.EntryRecord
		status string
	)
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Name, &rec.PhoneNumber, &rec.PartySize,
		&status, &rec.QueueNumber, &rec.WaitMinutes, &rec.CreatedAt,
		&rec.NotifiedAt, &rec.SeatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Status = waitlist.Status(status)
	return &rec, nil
}
