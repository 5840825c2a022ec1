//go:build unit || e2e

package builder

import (
	"waitline/internal/domain/user"
	"waitline/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	PhoneNumber string
	Name        string
	Role        string
	IsActive    bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		PhoneNumber: "+819012345678",
		Name:        "Test Customer",
		Role:        "customer",
		IsActive:    true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	phone, err := user.NewPhoneNumber(u.PhoneNumber)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(phone, u.Name, role)
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          uuid.New(),
		PhoneNumber: u.PhoneNumber,
		Name:        u.Name,
		Role:        u.Role,
		IsActive:    u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithPhoneNumber(phone string) *UserBuilder {
	u.PhoneNumber = phone
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
