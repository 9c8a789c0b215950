package services

import (
	"encoding/json"
	"fmt"

	chatmodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/models"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/apperr"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UpdateChatConfigRequest is a partial update of the assistant settings.
type UpdateChatConfigRequest struct {
	AIModel                 *string         `json:"ai_model"`
	MaxTokens               *int            `json:"max_tokens"`
	Temperature             *float32        `json:"temperature"`
	CollectContactInfo      *bool           `json:"collect_contact_info"`
	AutoSuggestConsultation *bool           `json:"auto_suggest_consultation"`
	WelcomeMessageRU        *string         `json:"welcome_message_ru"`
	WelcomeMessageKY        *string         `json:"welcome_message_ky"`
	WelcomeMessageEN        *string         `json:"welcome_message_en"`
	OfficeHoursEnabled      *bool           `json:"office_hours_enabled"`
	OfficeHours             json.RawMessage `json:"office_hours"`
	OfflineMessage          *string         `json:"offline_message"`
	LegalDisclaimer         *string         `json:"legal_disclaimer"`
	ShowDisclaimer          *bool           `json:"show_disclaimer"`
}

// GetChatConfig returns the lawyer's assistant configuration, creating it
// with defaults on first use.
func (s *LawyerService) GetChatConfig(lawyerID uuid.UUID) (*chatmodels.ChatConfiguration, error) {
	if _, err := s.lawyers.GetByID(lawyerID); err != nil {
		return nil, err
	}
	return s.configs.GetOrCreate(lawyerID)
}

// UpdateChatConfig applies a partial update to the assistant configuration.
func (s *LawyerService) UpdateChatConfig(lawyerID uuid.UUID, req *UpdateChatConfigRequest) (*chatmodels.ChatConfiguration, error) {
	config, err := s.GetChatConfig(lawyerID)
	if err != nil {
		return nil, err
	}

	if req.AIModel != nil {
		config.AIModel = *req.AIModel
	}
	if req.MaxTokens != nil {
		if *req.MaxTokens <= 0 {
			return nil, fmt.Errorf("%w: max_tokens must be positive", apperr.ErrValidation)
		}
		config.MaxTokens = *req.MaxTokens
	}
	if req.Temperature != nil {
		if *req.Temperature < 0 || *req.Temperature > 2 {
			return nil, fmt.Errorf("%w: temperature must be between 0 and 2", apperr.ErrValidation)
		}
		config.Temperature = *req.Temperature
	}
	if req.CollectContactInfo != nil {
		config.CollectContactInfo = *req.CollectContactInfo
	}
	if req.AutoSuggestConsultation != nil {
		config.AutoSuggestConsultation = *req.AutoSuggestConsultation
	}
	if req.WelcomeMessageRU != nil {
		config.WelcomeMessageRU = *req.WelcomeMessageRU
	}
	if req.WelcomeMessageKY != nil {
		config.WelcomeMessageKY = *req.WelcomeMessageKY
	}
	if req.WelcomeMessageEN != nil {
		config.WelcomeMessageEN = *req.WelcomeMessageEN
	}
	if req.OfficeHoursEnabled != nil {
		config.OfficeHoursEnabled = *req.OfficeHoursEnabled
	}
	if req.OfficeHours != nil {
		if !json.Valid(req.OfficeHours) {
			return nil, fmt.Errorf("%w: office_hours must be valid JSON", apperr.ErrValidation)
		}
		config.OfficeHours = datatypes.JSON(req.OfficeHours)
	}
	if req.OfflineMessage != nil {
		config.OfflineMessage = *req.OfflineMessage
	}
	if req.LegalDisclaimer != nil {
		config.LegalDisclaimer = *req.LegalDisclaimer
	}
	if req.ShowDisclaimer != nil {
		config.ShowDisclaimer = *req.ShowDisclaimer
	}

	if err := s.configs.Update(config); err != nil {
		return nil, err
	}
	return config, nil
}
