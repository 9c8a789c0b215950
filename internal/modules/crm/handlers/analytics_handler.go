package handlers

import (
	"strconv"
	"time"

	"github.com/adylai/lawyer-saas-ai-be/internal/core/analytics"
	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	rollups *analytics.RollupService
}

func NewAnalyticsHandler(rollups *analytics.RollupService) *AnalyticsHandler {
	return &AnalyticsHandler{
		rollups: rollups,
	}
}

func periodFromQuery(c *fiber.Ctx) (time.Time, time.Time) {
	days := 30
	if daysStr := c.Query("days"); daysStr != "" {
		if parsed, err := strconv.Atoi(daysStr); err == nil && parsed > 0 {
			days = parsed
		}
	}
	to := time.Now()
	return to.AddDate(0, 0, -days), to
}

// GetChatAnalytics godoc
// @Summary Daily chat analytics
// @Description Daily chat rollups for a lawyer over a period (default: last 30 days)
// @Tags Analytics
// @Produce json
// @Param lawyerID path string true "Lawyer ID"
// @Param days query int false "Period length in days" default(30)
// @Success 200 {array} models.ChatAnalytics
// @Router /analytics/{lawyerID}/chat [get]
func (h *AnalyticsHandler) GetChatAnalytics(c *fiber.Ctx) error {
	lawyerID, err := parseLawyerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lawyer ID",
		})
	}

	from, to := periodFromQuery(c)
	rows, err := h.rollups.ChatDaily(lawyerID, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(rows)
}

// GetLeadAnalytics godoc
// @Summary Daily lead analytics
// @Description Daily lead rollups for a lawyer over a period (default: last 30 days)
// @Tags Analytics
// @Produce json
// @Param lawyerID path string true "Lawyer ID"
// @Param days query int false "Period length in days" default(30)
// @Success 200 {array} models.LeadAnalytics
// @Router /analytics/{lawyerID}/leads [get]
func (h *AnalyticsHandler) GetLeadAnalytics(c *fiber.Ctx) error {
	lawyerID, err := parseLawyerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lawyer ID",
		})
	}

	from, to := periodFromQuery(c)
	rows, err := h.rollups.LeadDaily(lawyerID, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(rows)
}
