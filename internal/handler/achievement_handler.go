package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/service/achievement"
	"github.com/propelhq/propel-be/internal/service/activity"
)

type AchievementHandler struct {
	activityService    activity.Service
	achievementService achievement.Service
}

func NewAchievementHandler(activityService activity.Service, achievementService achievement.Service) *AchievementHandler {
	return &AchievementHandler{
		activityService:    activityService,
		achievementService: achievementService,
	}
}

func (h *AchievementHandler) ListUserAchievements(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}

	achievements, err := h.achievementService.ListUserAchievements(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(achievements)
}

func (h *AchievementHandler) ListUserActivities(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}

	params := domain.PaginationParams{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	activities, err := h.activityService.ListByUser(c.Context(), userID, params)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(activities)
}

// RecordActivity appends an activity and evaluates its category in one call,
// returning any badges the activity unlocked.
func (h *AchievementHandler) RecordActivity(c *fiber.Ctx) error {
	var input domain.RecordActivityInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	recorded, err := h.activityService.Record(c.Context(), input)
	if err != nil {
		return err
	}

	badges, err := h.achievementService.CheckAchievements(c.Context(), input.UserID, input.ActivityType)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"activity": recorded,
		"badges":   badges,
	})
}
