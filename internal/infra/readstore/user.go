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

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, `
		SELECT id, phone_number, name, role, is_active
		FROM users
		WHERE id = $1`,
		id).Scan(&view.ID, &view.PhoneNumber, &view.Name, &view.Role, &view.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

func (r *UserReadStore) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*queries.AuthorizedUserView, string, error) {
	var (
		view           queries.AuthorizedUserView
		hashedPassword string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, phone_number, name, role, is_active, password_hash
		FROM users
		WHERE phone_number = $1`,
		phoneNumber).Scan(&view.ID, &view.PhoneNumber, &view.Name, &view.Role, &view.IsActive, &hashedPassword)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by phone number", err)
	}
	return &view, hashedPassword, nil
}
