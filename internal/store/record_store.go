package store

import (
	"sync"
	"time"

	"github.com/terraincognita07/studyquest/internal/models"
)

// RecordStore keeps study records per owner in process memory, in insertion
// order. Every mutating method checks the owner, so a record id from another
// user never resolves.
type RecordStore struct {
	mu           sync.Mutex
	byUser       map[uint][]models.StudyRecord
	nextRecordID uint
}

func NewRecordStore() *RecordStore {
	return &RecordStore{
		byUser:       make(map[uint][]models.StudyRecord),
		nextRecordID: 1,
	}
}

// Add assigns the next sequential id and appends the record to its owner's list.
func (store *RecordStore) Add(record *models.StudyRecord) {
	store.mu.Lock()
	defer store.mu.Unlock()

	record.ID = store.nextRecordID
	store.nextRecordID++
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	store.byUser[record.UserID] = append(store.byUser[record.UserID], *record)
}

// ListByUser returns the owner's records in storage order. Callers may re-sort.
func (store *RecordStore) ListByUser(userID uint) []models.StudyRecord {
	store.mu.Lock()
	defer store.mu.Unlock()

	records := store.byUser[userID]
	listed := make([]models.StudyRecord, len(records))
	copy(listed, records)
	return listed
}

func (store *RecordStore) Get(userID uint, recordID uint) (models.StudyRecord, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, record := range store.byUser[userID] {
		if record.ID == recordID {
			return record, true
		}
	}
	return models.StudyRecord{}, false
}

// Delete removes the record when it exists and belongs to userID.
func (store *RecordStore) Delete(userID uint, recordID uint) bool {
	store.mu.Lock()
	defer store.mu.Unlock()

	records := store.byUser[userID]
	for index, record := range records {
		if record.ID == recordID {
			store.byUser[userID] = append(records[:index:index], records[index+1:]...)
			return true
		}
	}
	return false
}

// ToggleMastery flips the mastered flag, stamping MasteredAt on the way in and
// clearing it on the way out. The second result is false when the record does
// not exist or is owned by someone else.
func (store *RecordStore) ToggleMastery(userID uint, recordID uint, now time.Time) (models.StudyRecord, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	records := store.byUser[userID]
	for index := range records {
		if records[index].ID != recordID {
			continue
		}
		records[index].IsMastered = !records[index].IsMastered
		if records[index].IsMastered {
			stamped := now
			records[index].MasteredAt = &stamped
		} else {
			records[index].MasteredAt = nil
		}
		return records[index], true
	}
	return models.StudyRecord{}, false
}

func (store *RecordStore) CountByUser(userID uint) int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.byUser[userID])
}

// DatesByUser returns the set of study dates with at least one record, keyed
// by the record's own date string.
func (store *RecordStore) DatesByUser(userID uint) map[string]bool {
	store.mu.Lock()
	defer store.mu.Unlock()

	dates := make(map[string]bool, len(store.byUser[userID]))
	for _, record := range store.byUser[userID] {
		dates[record.StudyDate] = true
	}
	return dates
}
