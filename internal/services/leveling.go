package services

import "github.com/terraincognita07/studyquest/internal/models"

// XPToNext is the XP threshold for advancing past level.
func XPToNext(level int) int {
	return level * 100
}

// ApplyXP adds amount to the user's XP and resolves every level-up it pays
// for. The cost of a level is fixed at the threshold in effect when the grant
// lands, so one large grant can cross several levels. Negative amounts are
// clamped to zero. After the call 0 <= xp < level*100 holds.
func ApplyXP(user *models.User, amount int) bool {
	if amount < 0 {
		amount = 0
	}

	oldLevel := user.Level
	user.XP += amount
	threshold := XPToNext(user.Level)
	for user.XP >= threshold {
		user.XP -= threshold
		user.Level++
	}
	return user.Level > oldLevel
}

// RecordXP is the grant for logging a study session: half the minutes plus a
// difficulty bonus. Integer division gives the uniform floor rounding rule.
func RecordXP(learningTimeMinutes int, difficulty int) int {
	return learningTimeMinutes/2 + difficulty*5
}

// ReviewXP is the grant for mastering a record. Awarded only on the
// unmastered-to-mastered transition and never clawed back.
func ReviewXP(learningTimeMinutes int) int {
	return learningTimeMinutes / 5
}
