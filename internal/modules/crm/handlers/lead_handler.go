package handlers

import (
	"strconv"
	"time"

	"github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/repositories"
	"github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/services"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/apperr"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LeadHandler struct {
	leadService *services.LeadService
}

func NewLeadHandler(leadService *services.LeadService) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

func statusFor(err error) int {
	switch {
	case apperr.IsValidation(err):
		return fiber.StatusBadRequest
	case apperr.IsNotFound(err):
		return fiber.StatusNotFound
	case apperr.IsPrecondition(err):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func parseLawyerID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("lawyerID"))
}

// ListLeads godoc
// @Summary List leads
// @Description List a lawyer's leads with filtering and pagination
// @Tags CRM
// @Produce json
// @Param lawyerID path string true "Lawyer ID"
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Param source query string false "Filter by source"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{}
// @Router /crm/{lawyerID}/leads [get]
func (h *LeadHandler) ListLeads(c *fiber.Ctx) error {
	lawyerID, err := parseLawyerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lawyer ID",
		})
	}

	filter := repositories.LeadFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Source:   c.Query("source"),
		Limit:    50,
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			filter.Offset = offset
		}
	}

	leads, total, err := h.leadService.List(lawyerID, filter)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"leads": leads,
		"total": total,
	})
}

// GetLead godoc
// @Summary Get lead by ID
// @Tags CRM
// @Produce json
// @Param lawyerID path string true "Lawyer ID"
// @Param id path string true "Lead ID"
// @Success 200 {object} models.Lead
// @Failure 404 {object} map[string]interface{}
// @Router /crm/{lawyerID}/leads/{id} [get]
func (h *LeadHandler) GetLead(c *fiber.Ctx) error {
	lawyerID, err := parseLawyerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lawyer ID",
		})
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lead ID",
		})
	}

	lead, err := h.leadService.Get(lawyerID, id)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(lead)
}

// UpdateLead godoc
// @Summary Update lead
// @Description Update status, priority or internal notes of a lead
// @Tags CRM
// @Accept json
// @Produce json
// @Param lawyerID path string true "Lawyer ID"
// @Param id path string true "Lead ID"
// @Param lead body services.UpdateLeadRequest true "Lead updates"
// @Success 200 {object} models.Lead
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /crm/{lawyerID}/leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *fiber.Ctx) error {
	lawyerID, err := parseLawyerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lawyer ID",
		})
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lead ID",
		})
	}

	var req services.UpdateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	lead, err := h.leadService.Update(lawyerID, id, &req)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(lead)
}

// GetLeadStats godoc
// @Summary Lead statistics
// @Description Summary counts for the CRM dashboard over a period (default: last 30 days)
// @Tags CRM
// @Produce json
// @Param lawyerID path string true "Lawyer ID"
// @Param days query int false "Period length in days" default(30)
// @Success 200 {object} services.LeadStats
// @Router /crm/{lawyerID}/leads/stats [get]
func (h *LeadHandler) GetLeadStats(c *fiber.Ctx) error {
	lawyerID, err := parseLawyerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lawyer ID",
		})
	}

	days := 30
	if daysStr := c.Query("days"); daysStr != "" {
		if parsed, err := strconv.Atoi(daysStr); err == nil && parsed > 0 {
			days = parsed
		}
	}

	to := time.Now()
	from := to.AddDate(0, 0, -days)
	stats, err := h.leadService.Stats(lawyerID, from, to)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(stats)
}
