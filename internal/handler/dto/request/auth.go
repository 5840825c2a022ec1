package request

import (
	"waitline/internal/domain/user"
)

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	phone, err := user.NewPhoneNumber(r.PhoneNumber)
	if err != nil {
		return user.Credentials{}, err
	}
	password, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(phone, password), nil
}

// RefreshToken may be omitted when the refresh token cookie is present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
