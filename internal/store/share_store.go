package store

import "sync"

type shareTarget struct {
	UserID   uint
	RecordID uint
}

// ShareStore maps public share tokens to record owners. Tokens die with the
// process, like everything else in the store.
type ShareStore struct {
	mu            sync.Mutex
	targetByToken map[string]shareTarget
	tokenByTarget map[shareTarget]string
}

func NewShareStore() *ShareStore {
	return &ShareStore{
		targetByToken: make(map[string]shareTarget),
		tokenByTarget: make(map[shareTarget]string),
	}
}

func (store *ShareStore) Put(token string, userID uint, recordID uint) {
	store.mu.Lock()
	defer store.mu.Unlock()

	target := shareTarget{UserID: userID, RecordID: recordID}
	store.targetByToken[token] = target
	store.tokenByTarget[target] = token
}

// TokenFor returns the token already minted for a record, if any, so sharing
// the same record twice yields a stable URL.
func (store *ShareStore) TokenFor(userID uint, recordID uint) (string, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	token, exists := store.tokenByTarget[shareTarget{UserID: userID, RecordID: recordID}]
	return token, exists
}

func (store *ShareStore) Resolve(token string) (userID uint, recordID uint, ok bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	target, exists := store.targetByToken[token]
	if !exists {
		return 0, 0, false
	}
	return target.UserID, target.RecordID, true
}

// Remove drops any share pointing at the record, used when the record itself
// is deleted.
func (store *ShareStore) Remove(userID uint, recordID uint) {
	store.mu.Lock()
	defer store.mu.Unlock()

	target := shareTarget{UserID: userID, RecordID: recordID}
	if token, exists := store.tokenByTarget[target]; exists {
		delete(store.targetByToken, token)
		delete(store.tokenByTarget, target)
	}
}
