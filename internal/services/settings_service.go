package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/studyquest/internal/store"
)

var ErrUnknownAvatar = errors.New("unknown avatar id")

type SettingsService struct {
	users *store.UserStore
}

func NewSettingsService(users *store.UserStore) *SettingsService {
	return &SettingsService{users: users}
}

// Rename applies the same length policy as signup, then lets the store reject
// names held by a different user.
func (service *SettingsService) Rename(userID uint, newUsername string) error {
	trimmed := strings.TrimSpace(newUsername)
	if len([]rune(trimmed)) < minUsernameLength {
		return ErrUsernameTooShort
	}
	if !service.users.Rename(userID, trimmed) {
		return store.ErrDuplicateUsername
	}
	return nil
}

func (service *SettingsService) UpdateAvatar(userID uint, avatarID string) error {
	if !service.users.SetAvatar(userID, avatarID) {
		return ErrUnknownAvatar
	}
	return nil
}
