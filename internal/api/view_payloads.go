package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/studyquest/internal/models"
	"github.com/terraincognita07/studyquest/internal/services"
)

func (handler *Handler) userPayload(user *models.User) fiber.Map {
	avatarURL, known := models.AvatarImageURL(user.Avatar)
	if !known {
		avatarURL, _ = models.AvatarImageURL(models.DefaultAvatarID)
	}

	return fiber.Map{
		"id":            user.ID,
		"username":      user.Username,
		"level":         user.Level,
		"xp":            user.XP,
		"xp_to_next":    user.XPToNext(),
		"avatar":        user.Avatar,
		"avatar_url":    avatarURL,
		"records_count": handler.recordService.Count(user.ID),
		"created_at":    user.CreatedAt.Format(time.RFC3339),
	}
}

func recordPayload(record models.StudyRecord) fiber.Map {
	payload := fiber.Map{
		"id":            record.ID,
		"subject":       record.Subject,
		"content":       record.Content,
		"difficulty":    record.Difficulty,
		"learning_time": record.LearningTime,
		"study_date":    record.StudyDate,
		"created_at":    record.CreatedAt.Format(time.RFC3339),
		"is_mastered":   record.IsMastered,
	}
	if record.MasteredAt != nil {
		payload["mastered_at"] = record.MasteredAt.Format(time.RFC3339)
	}
	return payload
}

func recordListPayload(records []models.StudyRecord) []fiber.Map {
	payloads := make([]fiber.Map, 0, len(records))
	for _, record := range records {
		payloads = append(payloads, recordPayload(record))
	}
	return payloads
}

func progressPayload(progress services.ProgressResult) fiber.Map {
	return fiber.Map{
		"xp_earned":  progress.GrantedXP,
		"leveled_up": progress.LeveledUp,
		"level":      progress.Level,
		"xp":         progress.XP,
	}
}

func calendarDayPayload(day services.CalendarDay) fiber.Map {
	return fiber.Map{
		"date":       day.DateString,
		"day":        day.Day,
		"day_name":   day.DayName,
		"is_padding": !day.InMonth,
		"is_today":   day.IsToday,
		"has_record": day.HasRecord,
	}
}

func calendarPayload(year int, month time.Month, days []services.CalendarDay) fiber.Map {
	dayPayloads := make([]fiber.Map, 0, len(days))
	for _, day := range days {
		dayPayloads = append(dayPayloads, calendarDayPayload(day))
	}
	return fiber.Map{
		"year":  year,
		"month": int(month),
		"days":  dayPayloads,
	}
}

func avatarCatalogPayload() []fiber.Map {
	options := models.DefaultAvatarOptions()
	payloads := make([]fiber.Map, 0, len(options))
	for _, option := range options {
		payloads = append(payloads, fiber.Map{
			"id":        option.ID,
			"image_url": option.ImageURL,
		})
	}
	return payloads
}
