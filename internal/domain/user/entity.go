package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id          uuid.UUID
	phoneNumber PhoneNumber
	name        string
	role        Role
	isActive    bool
	lastLogin   *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewUser(phone PhoneNumber, name string, role Role) (*User, error) {
	if len(name) == 0 {
		return nil, ErrEmptyName
	}
	return &User{
		id:          uuid.New(),
		phoneNumber: phone,
		name:        name,
		role:        role,
		isActive:    true,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	phone PhoneNumber,
	name string,
	role Role,
	isActive bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:          id,
		phoneNumber: phone,
		name:        name,
		role:        role,
		isActive:    isActive,
		lastLogin:   lastLogin,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) PhoneNumber() PhoneNumber { return u.phoneNumber }
func (u *User) Name() string             { return u.name }
func (u *User) Role() Role               { return u.role }
func (u *User) IsActive() bool           { return u.isActive }
func (u *User) LastLogin() *time.Time    { return u.lastLogin }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }
