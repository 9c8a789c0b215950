package handlers

import (
	"github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/services"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/apperr"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LawyerHandler struct {
	lawyerService *services.LawyerService
}

func NewLawyerHandler(lawyerService *services.LawyerService) *LawyerHandler {
	return &LawyerHandler{
		lawyerService: lawyerService,
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

// ProvisionLawyer godoc
// @Summary Provision a new lawyer
// @Description Create a lawyer profile with a unique slug and default chat configuration
// @Tags Lawyers
// @Accept json
// @Produce json
// @Param lawyer body services.ProvisionRequest true "Lawyer data"
// @Success 201 {object} models.Lawyer
// @Failure 400 {object} map[string]interface{}
// @Router /lawyers [post]
func (h *LawyerHandler) ProvisionLawyer(c *fiber.Ctx) error {
	var req services.ProvisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	lawyer, err := h.lawyerService.Provision(&req)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(lawyer)
}

// GetLawyer godoc
// @Summary Get lawyer by ID
// @Tags Lawyers
// @Produce json
// @Param id path string true "Lawyer ID"
// @Success 200 {object} models.Lawyer
// @Failure 404 {object} map[string]interface{}
// @Router /lawyers/{id} [get]
func (h *LawyerHandler) GetLawyer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lawyer ID",
		})
	}

	lawyer, err := h.lawyerService.GetByID(id)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(lawyer)
}

// GetLawyerBySlug godoc
// @Summary Get public lawyer profile by slug
// @Tags Lawyers
// @Produce json
// @Param slug path string true "Domain slug"
// @Success 200 {object} models.Lawyer
// @Failure 404 {object} map[string]interface{}
// @Router /lawyers/slug/{slug} [get]
func (h *LawyerHandler) GetLawyerBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Slug is required",
		})
	}

	lawyer, err := h.lawyerService.GetBySlug(slug)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(lawyer)
}

// ListPublishedLawyers godoc
// @Summary List published lawyers
// @Tags Lawyers
// @Produce json
// @Success 200 {array} models.Lawyer
// @Router /lawyers [get]
func (h *LawyerHandler) ListPublishedLawyers(c *fiber.Ctx) error {
	lawyers, err := h.lawyerService.ListPublished()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(lawyers)
}

// UpdateLawyer godoc
// @Summary Update lawyer profile
// @Tags Lawyers
// @Accept json
// @Produce json
// @Param id path string true "Lawyer ID"
// @Param lawyer body services.UpdateProfileRequest true "Profile updates"
// @Success 200 {object} models.Lawyer
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /lawyers/{id} [put]
func (h *LawyerHandler) UpdateLawyer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lawyer ID",
		})
	}

	var req services.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	lawyer, err := h.lawyerService.UpdateProfile(id, &req)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(lawyer)
}

// PublishWebsite godoc
// @Summary Publish or unpublish the lawyer's website
// @Tags Lawyers
// @Accept json
// @Produce json
// @Param id path string true "Lawyer ID"
// @Param request body object{published=bool} true "Publish flag"
// @Success 200 {object} models.Lawyer
// @Failure 404 {object} map[string]interface{}
// @Router /lawyers/{id}/publish [patch]
func (h *LawyerHandler) PublishWebsite(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lawyer ID",
		})
	}

	var req struct {
		Published bool `json:"published"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	lawyer, err := h.lawyerService.SetPublished(id, req.Published)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(lawyer)
}

// GetChatLinkQR godoc
// @Summary Get the chat widget link as a QR code
// @Description Returns the public chat URL for the lawyer and a base64 PNG QR code for it
// @Tags Lawyers
// @Produce json
// @Param slug path string true "Domain slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /lawyers/slug/{slug}/qr [get]
func (h *LawyerHandler) GetChatLinkQR(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Slug is required",
		})
	}

	link, qr, err := h.lawyerService.ChatLinkQR(slug)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"chat_url": link,
		"qr_png":   qr,
	})
}

// GetChatConfig godoc
// @Summary Get assistant configuration
// @Tags Lawyers
// @Produce json
// @Param id path string true "Lawyer ID"
// @Success 200 {object} models.ChatConfiguration
// @Failure 404 {object} map[string]interface{}
// @Router /lawyers/{id}/chat-config [get]
func (h *LawyerHandler) GetChatConfig(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lawyer ID",
		})
	}

	config, err := h.lawyerService.GetChatConfig(id)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(config)
}

// UpdateChatConfig godoc
// @Summary Update assistant configuration
// @Tags Lawyers
// @Accept json
// @Produce json
// @Param id path string true "Lawyer ID"
// @Param config body services.UpdateChatConfigRequest true "Configuration updates"
// @Success 200 {object} models.ChatConfiguration
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /lawyers/{id}/chat-config [put]
func (h *LawyerHandler) UpdateChatConfig(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lawyer ID",
		})
	}

	var req services.UpdateChatConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	config, err := h.lawyerService.UpdateChatConfig(id, &req)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(config)
}
