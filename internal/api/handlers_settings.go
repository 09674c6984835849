package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/studyquest/internal/services"
	"github.com/terraincognita07/studyquest/internal/store"
)

type renameInput struct {
	Username string `json:"username" form:"username"`
}

type avatarInput struct {
	AvatarID string `json:"avatar_id" form:"avatar_id"`
}

func (handler *Handler) ShowSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{
		"user":    handler.userPayload(user),
		"avatars": avatarCatalogPayload(),
	})
}

func (handler *Handler) UpdateUsername(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := renameInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.settingsService.Rename(user.ID, input.Username); err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTooShort):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, store.ErrDuplicateUsername):
			return apiError(c, fiber.StatusConflict, "username already taken")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update username")
		}
	}

	updated, _ := handler.authService.FindByID(user.ID)
	return c.JSON(fiber.Map{"ok": true, "user": handler.userPayload(&updated)})
}

func (handler *Handler) UpdateAvatar(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := avatarInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.settingsService.UpdateAvatar(user.ID, input.AvatarID); err != nil {
		return apiError(c, fiber.StatusBadRequest, "unknown avatar id")
	}

	updated, _ := handler.authService.FindByID(user.ID)
	return c.JSON(fiber.Map{"ok": true, "user": handler.userPayload(&updated)})
}
