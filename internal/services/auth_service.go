package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/studyquest/internal/models"
	"github.com/terraincognita07/studyquest/internal/store"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users *store.UserStore
}

func NewAuthService(users *store.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register validates signup input and creates a level-1 profile with the
// default avatar. Duplicate usernames surface store.ErrDuplicateUsername.
func (service *AuthService) Register(username string, password string) (models.User, error) {
	if err := ValidateSignupInput(username, password); err != nil {
		return models.User{}, err
	}
	return service.CreateUser(strings.TrimSpace(username), password, 1, 0, models.DefaultAvatarID)
}

// CreateUser stores a profile with explicit progress, used by Register and by
// the demo seed. The password is hashed before it reaches the store; the raw
// value is never kept.
func (service *AuthService) CreateUser(username string, password string, level int, xp int, avatar string) (models.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		Level:        level,
		XP:           xp,
		Avatar:       avatar,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// VerifyCredentials looks the user up by username and compares the password
// hash. The same false result covers unknown usernames and wrong passwords.
func (service *AuthService) VerifyCredentials(username string, password string) (models.User, bool) {
	user, exists := service.users.FindByUsername(strings.TrimSpace(username))
	if !exists {
		return models.User{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, false
	}
	return user, true
}

func (service *AuthService) FindByID(userID uint) (models.User, bool) {
	return service.users.FindByID(userID)
}
