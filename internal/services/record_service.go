package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/studyquest/internal/models"
	"github.com/terraincognita07/studyquest/internal/store"
)

var (
	ErrEmptyField          = errors.New("subject and content are required")
	ErrInvalidLearningTime = errors.New("learning time must be a positive number of minutes")
)

type RecordService struct {
	records  *store.RecordStore
	users    *store.UserStore
	levelUps *store.LevelUpStore
	shares   *store.ShareStore
}

func NewRecordService(stores *store.Stores) *RecordService {
	return &RecordService{
		records:  stores.Records,
		users:    stores.Users,
		levelUps: stores.LevelUps,
		shares:   stores.Shares,
	}
}

type AddRecordInput struct {
	Subject      string
	Content      string
	Difficulty   int
	LearningTime int
	StudyDate    string
}

type ProgressResult struct {
	GrantedXP int
	LeveledUp bool
	Level     int
	XP        int
}

type AddRecordResult struct {
	Record   models.StudyRecord
	Progress ProgressResult
}

// Add validates the input, stores the record and grants the study XP. Subject
// and content must be non-empty after trimming; the study date falls back to
// today when absent or unparsable, matching form behavior.
func (service *RecordService) Add(userID uint, input AddRecordInput) (AddRecordResult, error) {
	subject := strings.TrimSpace(input.Subject)
	content := strings.TrimSpace(input.Content)
	if subject == "" || content == "" {
		return AddRecordResult{}, ErrEmptyField
	}
	if input.LearningTime <= 0 {
		return AddRecordResult{}, ErrInvalidLearningTime
	}

	now := time.Now()
	record := models.StudyRecord{
		UserID:       userID,
		Subject:      subject,
		Content:      content,
		Difficulty:   clampDifficulty(input.Difficulty),
		LearningTime: input.LearningTime,
		StudyDate:    normalizeStudyDate(input.StudyDate, now),
		CreatedAt:    now,
	}
	service.records.Add(&record)

	grant := RecordXP(record.LearningTime, record.Difficulty)
	progress := service.grantXP(userID, grant, "Studied "+subject)

	return AddRecordResult{Record: record, Progress: progress}, nil
}

// List returns the user's records sorted by study date descending, newest
// entry first within a date.
func (service *RecordService) List(userID uint) []models.StudyRecord {
	records := service.records.ListByUser(userID)
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].StudyDate == records[j].StudyDate {
			return records[i].ID > records[j].ID
		}
		return records[i].StudyDate > records[j].StudyDate
	})
	return records
}

func (service *RecordService) Unmastered(records []models.StudyRecord) []models.StudyRecord {
	unmastered := make([]models.StudyRecord, 0, len(records))
	for _, record := range records {
		if !record.IsMastered {
			unmastered = append(unmastered, record)
		}
	}
	return unmastered
}

// Delete removes the record when owned by userID, along with any share link
// pointing at it. Deletion never refunds XP.
func (service *RecordService) Delete(userID uint, recordID uint) bool {
	if !service.records.Delete(userID, recordID) {
		return false
	}
	service.shares.Remove(userID, recordID)
	return true
}

type MasteryResult struct {
	Record   models.StudyRecord
	Progress ProgressResult
}

// ToggleMastery flips the flag and grants review XP only on the transition to
// mastered. Toggling back grants nothing and claws nothing back.
func (service *RecordService) ToggleMastery(userID uint, recordID uint) (MasteryResult, bool) {
	record, found := service.records.ToggleMastery(userID, recordID, time.Now())
	if !found {
		return MasteryResult{}, false
	}

	result := MasteryResult{Record: record}
	if record.IsMastered {
		grant := ReviewXP(record.LearningTime)
		result.Progress = service.grantXP(userID, grant, "Reviewed "+record.Subject)
	} else if user, found := service.users.FindByID(userID); found {
		result.Progress = ProgressResult{Level: user.Level, XP: user.XP}
	}
	return result, true
}

func (service *RecordService) StudyDates(userID uint) map[string]bool {
	return service.records.DatesByUser(userID)
}

func (service *RecordService) Count(userID uint) int {
	return service.records.CountByUser(userID)
}

func (service *RecordService) LevelHistory(userID uint) []models.LevelUpEvent {
	return service.levelUps.ListByUser(userID)
}

// grantXP applies the grant atomically through the user store and records a
// level-up event when one happened.
func (service *RecordService) grantXP(userID uint, amount int, reason string) ProgressResult {
	oldLevel := 0
	leveled := false
	updated, found := service.users.Mutate(userID, func(user *models.User) {
		oldLevel = user.Level
		leveled = ApplyXP(user, amount)
	})
	if !found {
		return ProgressResult{}
	}

	if leveled {
		service.levelUps.Append(models.LevelUpEvent{
			UserID:    userID,
			OldLevel:  oldLevel,
			NewLevel:  updated.Level,
			XPEarned:  amount,
			Reason:    reason,
			Timestamp: time.Now(),
		})
	}

	return ProgressResult{
		GrantedXP: amount,
		LeveledUp: leveled,
		Level:     updated.Level,
		XP:        updated.XP,
	}
}

func clampDifficulty(difficulty int) int {
	if difficulty < 1 {
		return 1
	}
	if difficulty > 5 {
		return 5
	}
	return difficulty
}

func normalizeStudyDate(raw string, now time.Time) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return now.Format("2006-01-02")
	}
	parsed, err := time.ParseInLocation("2006-01-02", trimmed, now.Location())
	if err != nil {
		return now.Format("2006-01-02")
	}
	return parsed.Format("2006-01-02")
}
