package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/studyquest/internal/services"
)

type recordInput struct {
	Subject      string `json:"subject" form:"study_subject"`
	Content      string `json:"content" form:"study_content"`
	Difficulty   int    `json:"difficulty" form:"study_difficulty"`
	LearningTime int    `json:"learning_time" form:"study_time_minutes"`
	StudyDate    string `json:"study_date" form:"study_date"`
}

func (handler *Handler) CreateRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := recordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := handler.recordService.Add(user.ID, services.AddRecordInput{
		Subject:      input.Subject,
		Content:      input.Content,
		Difficulty:   input.Difficulty,
		LearningTime: input.LearningTime,
		StudyDate:    input.StudyDate,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyField) || errors.Is(err, services.ErrInvalidLearningTime) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to add record")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"record":   recordPayload(result.Record),
		"progress": progressPayload(result.Progress),
	})
}

func (handler *Handler) ListRecords(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	records := handler.recordService.List(user.ID)
	return c.JSON(fiber.Map{
		"records":    recordListPayload(records),
		"unmastered": recordListPayload(handler.recordService.Unmastered(records)),
	})
}

func (handler *Handler) DeleteRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recordID, err := parseRecordID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	if !handler.recordService.Delete(user.ID, recordID) {
		return apiError(c, fiber.StatusNotFound, "record not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ToggleMastery(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recordID, err := parseRecordID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	result, found := handler.recordService.ToggleMastery(user.ID, recordID)
	if !found {
		return apiError(c, fiber.StatusNotFound, "record not found")
	}

	return c.JSON(fiber.Map{
		"record":   recordPayload(result.Record),
		"progress": progressPayload(result.Progress),
	})
}

func parseRecordID(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}
