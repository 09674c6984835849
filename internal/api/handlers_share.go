package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) CreateShareLink(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recordID, err := parseRecordID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	token, created := handler.shareService.CreateLink(user.ID, recordID)
	if !created {
		return apiError(c, fiber.StatusNotFound, "record not found")
	}

	return c.JSON(fiber.Map{
		"token":     token,
		"share_url": c.BaseURL() + "/shared/" + token,
	})
}

// SharedRecord is the only route served without authentication: it answers a
// minted share token with the record and the owner's public profile.
func (handler *Handler) SharedRecord(c *fiber.Ctx) error {
	shared, found := handler.shareService.Resolve(c.Params("token"))
	if !found {
		return apiError(c, fiber.StatusNotFound, "shared record not found")
	}

	return c.JSON(fiber.Map{
		"record": recordPayload(shared.Record),
		"owner": fiber.Map{
			"username":   shared.OwnerUsername,
			"level":      shared.OwnerLevel,
			"avatar_url": shared.OwnerAvatarURL,
		},
	})
}

// ShareQR is a stub: QR generation is deliberately not implemented.
func (handler *Handler) ShareQR(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotImplemented, "qr code sharing is not available")
}
