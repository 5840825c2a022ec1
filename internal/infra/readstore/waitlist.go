package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"waitline/internal/infra"
	"waitline/internal/infra/db"
	"waitline/internal/usecase/queries"
)

const entryViewColumns = `id, user_id, name, phone_number, party_size, status, queue_number, wait_minutes, created_at, notified_at, seated_at`

type WaitlistReadStore struct {
	db db.DBTX
}

func NewWaitlistReadStore(db db.DBTX) *WaitlistReadStore {
	return &WaitlistReadStore{db: db}
}

func (r *WaitlistReadStore) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*queries.WaitlistEntryView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+entryViewColumns+`
		FROM waitlist_entries
		WHERE user_id = $1 AND status IN ('waiting', 'notified')`,
		userID)

	view, err := scanEntryView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("active waitlist entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active waitlist entry", err)
	}
	return view, nil
}

func (r *WaitlistReadStore) FindAllActive(ctx context.Context) ([]*queries.WaitlistEntryView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+entryViewColumns+`
		FROM waitlist_entries
		WHERE status IN ('waiting', 'notified')
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active waitlist entries", err)
	}
	defer rows.Close()

	var result []*queries.WaitlistEntryView
	for rows.Next() {
		view, scanErr := scanEntryView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan waitlist entry", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate waitlist entries", err)
	}
	return result, nil
}

func (r *WaitlistReadStore) CountActiveUpTo(ctx context.Context, queueNumber int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM waitlist_entries
		WHERE status IN ('waiting', 'notified') AND queue_number <= $1`,
		queueNumber).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count entries ahead", err)
	}
	return count, nil
}

func scanEntryView(row pgx.Row) (*queries.WaitlistEntryView, error) {
	var view queries.WaitlistEntryView
	err := row.Scan(
		&view.ID, &view.UserID, &view.Name, &view.PhoneNumber, &view.PartySize,
		&view.Status, &view.QueueNumber, &view.WaitMinutes, &view.CreatedAt,
		&view.NotifiedAt, &view.SeatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
