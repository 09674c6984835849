package store

import (
	"errors"
	"sync"
	"time"

	"github.com/terraincognita07/studyquest/internal/models"
)

var ErrDuplicateUsername = errors.New("username already taken")

// UserStore keeps every profile in process memory. Data is deliberately
// ephemeral: a restart starts the store empty again.
type UserStore struct {
	mu         sync.Mutex
	usersByID  map[uint]models.User
	idByName   map[string]uint
	nextUserID uint
}

func NewUserStore() *UserStore {
	return &UserStore{
		usersByID:  make(map[uint]models.User),
		idByName:   make(map[string]uint),
		nextUserID: 1,
	}
}

// Create assigns the next sequential id and stores the user. Usernames are
// unique and compared case-sensitively.
func (store *UserStore) Create(user *models.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, taken := store.idByName[user.Username]; taken {
		return ErrDuplicateUsername
	}

	user.ID = store.nextUserID
	store.nextUserID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	store.usersByID[user.ID] = *user
	store.idByName[user.Username] = user.ID
	return nil
}

func (store *UserStore) FindByID(userID uint) (models.User, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	user, exists := store.usersByID[userID]
	return user, exists
}

// FindByUsername resolves a username case-sensitively.
func (store *UserStore) FindByUsername(username string) (models.User, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	userID, exists := store.idByName[username]
	if !exists {
		return models.User{}, false
	}
	return store.usersByID[userID], true
}

// Rename changes the username, keeping both lookup maps consistent. It fails
// when the new name already belongs to a different user.
func (store *UserStore) Rename(userID uint, newUsername string) bool {
	store.mu.Lock()
	defer store.mu.Unlock()

	user, exists := store.usersByID[userID]
	if !exists {
		return false
	}
	if ownerID, taken := store.idByName[newUsername]; taken && ownerID != userID {
		return false
	}

	delete(store.idByName, user.Username)
	user.Username = newUsername
	store.usersByID[userID] = user
	store.idByName[newUsername] = userID
	return true
}

// SetAvatar rejects ids outside the fixed avatar catalog.
func (store *UserStore) SetAvatar(userID uint, avatarID string) bool {
	if _, known := models.AvatarImageURL(avatarID); !known {
		return false
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	user, exists := store.usersByID[userID]
	if !exists {
		return false
	}
	user.Avatar = avatarID
	store.usersByID[userID] = user
	return true
}

// Mutate runs fn against the stored user while holding the store lock, so
// read-modify-write sequences such as XP grants cannot lose updates between
// concurrent requests. It returns the user as saved.
func (store *UserStore) Mutate(userID uint, fn func(user *models.User)) (models.User, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	user, exists := store.usersByID[userID]
	if !exists {
		return models.User{}, false
	}
	fn(&user)
	store.usersByID[userID] = user
	return user, true
}

func (store *UserStore) Count() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.usersByID)
}
