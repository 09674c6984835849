package api

import "github.com/gofiber/fiber/v2"

// Friends serves hardcoded placeholder data; there is no social graph.
func (handler *Handler) Friends(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{
		"friends": []fiber.Map{
			{"username": "yamada", "level": 15, "xp_to_next": 75, "last_activity": "2 hours ago", "avatar_id": "cat"},
			{"username": "suzuki", "level": 12, "xp_to_next": 40, "last_activity": "1 day ago", "avatar_id": "dog"},
			{"username": "sato", "level": 18, "xp_to_next": 90, "last_activity": "30 minutes ago", "avatar_id": "bear"},
			{"username": "tanaka", "level": 8, "xp_to_next": 20, "last_activity": "3 days ago", "avatar_id": "fox"},
			{"username": "ito", "level": 22, "xp_to_next": 55, "last_activity": "today", "avatar_id": "rabbit"},
		},
	})
}
