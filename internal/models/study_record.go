package models

import "time"

type StudyRecord struct {
	ID           uint
	UserID       uint
	Subject      string
	Content      string
	Difficulty   int // 1..5
	LearningTime int // minutes
	StudyDate    string
	CreatedAt    time.Time
	IsMastered   bool
	MasteredAt   *time.Time
}

type LevelUpEvent struct {
	UserID    uint
	OldLevel  int
	NewLevel  int
	XPEarned  int
	Reason    string
	Timestamp time.Time
}
