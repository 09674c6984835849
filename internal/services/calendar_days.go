package services

import (
	"fmt"
	"time"
)

type CalendarDay struct {
	Date       time.Time
	DateString string
	Day        int
	DayName    string
	InMonth    bool
	IsToday    bool
	HasRecord  bool
}

// MonthDays builds the Sunday-first month grid: full weeks from the one
// containing the 1st through the one containing the last day, padding days
// from the adjacent months included. The result is a flat ordered slice,
// weeks top to bottom and days left to right; consumers regroup into rows of
// seven. recordDates holds the date strings on which the user studied.
func MonthDays(year int, month time.Month, recordDates map[string]bool, now time.Time) ([]CalendarDay, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month %d", int(month))
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("invalid year %d", year)
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	todayKey := now.Format("2006-01-02")

	days := make([]CalendarDay, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		days = append(days, CalendarDay{
			Date:       day,
			DateString: key,
			Day:        day.Day(),
			DayName:    day.Format("Mon"),
			InMonth:    day.Month() == month,
			IsToday:    key == todayKey,
			HasRecord:  recordDates[key],
		})
	}

	return days, nil
}
