package handlers

import (
	"github.com/adylai/lawyer-saas-ai-be/internal/core/llm"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/database"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	db *database.DB
	ai *llm.Service
}

func NewHealthHandler(db *database.DB, ai *llm.Service) *HealthHandler {
	return &HealthHandler{
		db: db,
		ai: ai,
	}
}

// GetHealth godoc
// @Summary Health check
// @Description Report service, database and AI provider status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	dbStatus := "up"
	if err := h.db.Ping(); err != nil {
		dbStatus = "down"
	}

	return c.JSON(fiber.Map{
		"status":      "ok",
		"database":    dbStatus,
		"ai_provider": h.ai.GetProviderName(),
		"ai_model":    h.ai.GetModel(),
	})
}
