package models

import "time"

type User struct {
	ID           uint
	Username     string
	PasswordHash string
	Level        int
	XP           int
	Avatar       string
	CreatedAt    time.Time
}

// XPToNext is the amount of XP needed to advance past the current level.
func (user User) XPToNext() int {
	return user.Level * 100
}
