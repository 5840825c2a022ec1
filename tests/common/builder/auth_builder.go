//go:build unit || e2e

package builder

import (
	reqdto "waitline/internal/handler/dto/request"
)

type AuthBuilder struct {
	PhoneNumber string
	Password    string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		PhoneNumber: "+819012345678",
		Password:    "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		PhoneNumber: a.PhoneNumber,
		Password:    a.Password,
	}
}
