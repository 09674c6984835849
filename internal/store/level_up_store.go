package store

import (
	"sync"

	"github.com/terraincognita07/studyquest/internal/models"
)

// LevelUpStore records level-up events per user, newest last.
type LevelUpStore struct {
	mu     sync.Mutex
	byUser map[uint][]models.LevelUpEvent
}

func NewLevelUpStore() *LevelUpStore {
	return &LevelUpStore{byUser: make(map[uint][]models.LevelUpEvent)}
}

func (store *LevelUpStore) Append(event models.LevelUpEvent) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.byUser[event.UserID] = append(store.byUser[event.UserID], event)
}

func (store *LevelUpStore) ListByUser(userID uint) []models.LevelUpEvent {
	store.mu.Lock()
	defer store.mu.Unlock()

	events := store.byUser[userID]
	listed := make([]models.LevelUpEvent, len(events))
	copy(listed, events)
	return listed
}
