package handlers

import (
	"github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/services"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/apperr"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChatHandler struct {
	engine *services.Engine
}

func NewChatHandler(engine *services.Engine) *ChatHandler {
	return &ChatHandler{
		engine: engine,
	}
}

// fail renders the uniform error envelope, mapping the error taxonomy onto
// HTTP statuses.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case apperr.IsValidation(err):
		status = fiber.StatusBadRequest
	case apperr.IsNotFound(err):
		status = fiber.StatusNotFound
	case apperr.IsPrecondition(err):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func parseSessionToken(raw string) (uuid.UUID, error) {
	token, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid session_id")
	}
	return token, nil
}

// StartChat godoc
// @Summary Start a chat session
// @Description Open a new conversation with a lawyer's assistant and return the welcome message
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body object{lawyer_slug=string,visitor_name=string} true "Lawyer slug and optional visitor name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /chat/start [post]
func (h *ChatHandler) StartChat(c *fiber.Ctx) error {
	var req struct {
		LawyerSlug  string `json:"lawyer_slug"`
		VisitorName string `json:"visitor_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.LawyerSlug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "lawyer_slug is required",
		})
	}

	result, err := h.engine.Start(c.Context(), req.LawyerSlug, services.VisitorMeta{
		Name:      req.VisitorName,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
		Referrer:  c.Get("Referer"),
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"session_id":  result.SessionToken,
		"message":     result.Message,
		"lawyer_name": result.LawyerName,
		"language":    result.Language,
	})
}

// SendMessage godoc
// @Summary Send a visitor message
// @Description Send a message to the assistant and receive the reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body object{session_id=string,message=string} true "Message"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /chat/message [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	token, err := parseSessionToken(req.SessionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid session_id",
		})
	}

	reply, err := h.engine.HandleMessage(c.Context(), token, req.Message)
	if err != nil {
		return fail(c, err)
	}

	resp := fiber.Map{
		"success":                true,
		"message":                reply.Message,
		"should_collect_contact": reply.ShouldCollectContact,
	}
	if reply.ContactForm != nil {
		resp["contact_form"] = reply.ContactForm
	}
	if reply.IsOffline {
		resp["is_offline"] = true
	}
	if reply.ResponseTimeMS > 0 {
		resp["response_time_ms"] = reply.ResponseTimeMS
	}
	return c.JSON(resp)
}

// SubmitContact godoc
// @Summary Submit visitor contact details
// @Description Store the contact form submission and create a lead
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body object{session_id=string,name=string,phone=string,email=string} true "Contact details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /chat/contact [post]
func (h *ChatHandler) SubmitContact(c *fiber.Ctx) error {
	var req struct {
		SessionID string `json:"session_id"`
		Name      string `json:"name"`
		Phone     string `json:"phone"`
		Email     string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	token, err := parseSessionToken(req.SessionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid session_id",
		})
	}

	_, confirmation, err := h.engine.SubmitContact(c.Context(), token, req.Name, req.Phone, req.Email)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      confirmation,
		"lead_created": true,
	})
}

// ScheduleAppointment godoc
// @Summary Schedule a consultation
// @Description Book a consultation for a session that already has contact details
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body object{session_id=string,date=string,time=string,consultation_type=string} true "Appointment details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /chat/schedule [post]
func (h *ChatHandler) ScheduleAppointment(c *fiber.Ctx) error {
	var req struct {
		SessionID        string `json:"session_id"`
		Date             string `json:"date"`
		Time             string `json:"time"`
		ConsultationType string `json:"consultation_type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	token, err := parseSessionToken(req.SessionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid session_id",
		})
	}

	consultation, confirmation, err := h.engine.ScheduleAppointment(c.Context(), token, req.Date, req.Time, req.ConsultationType)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"message":         confirmation,
		"consultation_id": consultation.ID,
		"scheduled_time":  consultation.ScheduledTime,
	})
}

// EndChat godoc
// @Summary End a chat session
// @Description Close the conversation; derives a lead when contact info was collected
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body object{session_id=string} true "Session"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /chat/end [post]
func (h *ChatHandler) EndChat(c *fiber.Ctx) error {
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	token, err := parseSessionToken(req.SessionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid session_id",
		})
	}

	if err := h.engine.End(c.Context(), token); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// SubmitFeedback godoc
// @Summary Rate a conversation
// @Description Store the visitor's rating for a session, one rating per session
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body object{session_id=string,rating=int,comment=string,would_recommend=bool} true "Feedback"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /chat/feedback [post]
func (h *ChatHandler) SubmitFeedback(c *fiber.Ctx) error {
	var req struct {
		SessionID      string `json:"session_id"`
		Rating         int    `json:"rating"`
		Comment        string `json:"comment"`
		WouldRecommend bool   `json:"would_recommend"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	token, err := parseSessionToken(req.SessionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid session_id",
		})
	}

	feedback, err := h.engine.SubmitFeedback(c.Context(), token, req.Rating, req.Comment, req.WouldRecommend)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"feedback": feedback,
	})
}

// GetHistory godoc
// @Summary Get chat history
// @Description Return the ordered message log of a session
// @Tags Chat
// @Produce json
// @Param session_id query string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /chat/history [get]
func (h *ChatHandler) GetHistory(c *fiber.Ctx) error {
	raw := c.Query("session_id")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Session ID required",
		})
	}

	token, err := parseSessionToken(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid session_id",
		})
	}

	entries, info, err := h.engine.History(c.Context(), token)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"messages":     entries,
		"session_info": info,
	})
}
