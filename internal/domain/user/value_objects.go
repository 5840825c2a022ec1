package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")
	ErrInvalidRole        = errors.New("invalid role")
	ErrPasswordTooWeak    = errors.New("password must be at least 8 characters long")
	ErrEmptyName          = errors.New("name must not be empty")
)

// E.164-ish: optional +, 8-15 digits.
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

type PhoneNumber struct {
	value string
}

func NewPhoneNumber(s string) (PhoneNumber, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return PhoneNumber{}, ErrInvalidPhoneNumber
	}
	return PhoneNumber{value: s}, nil
}

func (p PhoneNumber) Value() string {
	return p.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	phoneNumber PhoneNumber
	password    Password
}

func NewCredentials(phone PhoneNumber, password Password) Credentials {
	return Credentials{phoneNumber: phone, password: password}
}

func (c Credentials) PhoneNumber() PhoneNumber { return c.phoneNumber }
func (c Credentials) Password() Password      { return c.password }
