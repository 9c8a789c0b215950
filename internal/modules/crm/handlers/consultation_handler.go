package handlers

import (
	"strconv"

	"github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/repositories"
	"github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ConsultationHandler struct {
	consultationService *services.ConsultationService
}

func NewConsultationHandler(consultationService *services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{
		consultationService: consultationService,
	}
}

// ListConsultations godoc
// @Summary List consultations
// @Description List a lawyer's consultations ordered by scheduled time
// @Tags CRM
// @Produce json
// @Param lawyerID path string true "Lawyer ID"
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{}
// @Router /crm/{lawyerID}/consultations [get]
func (h *ConsultationHandler) ListConsultations(c *fiber.Ctx) error {
	lawyerID, err := parseLawyerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lawyer ID",
		})
	}

	filter := repositories.ConsultationFilter{
		Status: c.Query("status"),
		Limit:  50,
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

	consultations, total, err := h.consultationService.List(lawyerID, filter)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"consultations": consultations,
		"total":         total,
	})
}

// GetConsultation godoc
// @Summary Get consultation by ID
// @Tags CRM
// @Produce json
// @Param lawyerID path string true "Lawyer ID"
// @Param id path string true "Consultation ID"
// @Success 200 {object} models.Consultation
// @Failure 404 {object} map[string]interface{}
// @Router /crm/{lawyerID}/consultations/{id} [get]
func (h *ConsultationHandler) GetConsultation(c *fiber.Ctx) error {
	lawyerID, err := parseLawyerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lawyer ID",
		})
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid consultation ID",
		})
	}

	consultation, err := h.consultationService.Get(lawyerID, id)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(consultation)
}

// UpdateConsultation godoc
// @Summary Update consultation
// @Description Update status, time, location or notes of a consultation
// @Tags CRM
// @Accept json
// @Produce json
// @Param lawyerID path string true "Lawyer ID"
// @Param id path string true "Consultation ID"
// @Param consultation body services.UpdateConsultationRequest true "Consultation updates"
// @Success 200 {object} models.Consultation
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /crm/{lawyerID}/consultations/{id} [put]
func (h *ConsultationHandler) UpdateConsultation(c *fiber.Ctx) error {
	lawyerID, err := parseLawyerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lawyer ID",
		})
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid consultation ID",
		})
	}

	var req services.UpdateConsultationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	consultation, err := h.consultationService.Update(lawyerID, id, &req)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(consultation)
}
