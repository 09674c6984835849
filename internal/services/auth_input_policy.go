package services

import (
	"errors"
	"strings"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

var (
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

func ValidateSignupInput(username string, password string) error {
	if len([]rune(strings.TrimSpace(username))) < minUsernameLength {
		return ErrUsernameTooShort
	}
	if len([]rune(password)) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
