package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) LevelHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	events := handler.recordService.LevelHistory(user.ID)
	totalXP := 0
	payloads := make([]fiber.Map, 0, len(events))
	for _, event := range events {
		totalXP += event.XPEarned
		payloads = append(payloads, fiber.Map{
			"old_level": event.OldLevel,
			"new_level": event.NewLevel,
			"xp_earned": event.XPEarned,
			"reason":    event.Reason,
			"timestamp": event.Timestamp.Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{
		"events":          payloads,
		"current_level":   user.Level,
		"total_level_ups": len(events),
		"total_xp_earned": totalXP,
	})
}
