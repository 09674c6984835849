package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/studyquest/internal/models"
	"github.com/terraincognita07/studyquest/internal/services"
)

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now().In(handler.location)
	days, err := services.MonthDays(now.Year(), now.Month(), handler.recordService.StudyDates(user.ID), now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build calendar")
	}

	return c.JSON(fiber.Map{
		"user":     handler.userPayload(user),
		"calendar": calendarPayload(now.Year(), now.Month(), days),
		"subjects": models.DefaultSubjects(),
	})
}

// GetCalendar serves an arbitrary month, defaulting to the current one.
func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now().In(handler.location)
	year := c.QueryInt("year", now.Year())
	month := time.Month(c.QueryInt("month", int(now.Month())))

	days, err := services.MonthDays(year, month, handler.recordService.StudyDates(user.ID), now)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(calendarPayload(year, month, days))
}
