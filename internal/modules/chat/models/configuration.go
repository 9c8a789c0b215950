package models

import (
	"fmt"
	"time"

	lawyermodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ChatConfiguration is the per-lawyer assistant configuration. At most one
// row per lawyer; created lazily with defaults on first use.
type ChatConfiguration struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LawyerID uuid.UUID `gorm:"type:uuid;unique;not null" json:"lawyer_id"`

	// AI settings
	AIModel     string  `gorm:"type:text;default:'deepseek-chat'" json:"ai_model"`
	MaxTokens   int     `gorm:"default:300" json:"max_tokens"`
	Temperature float32 `gorm:"type:real;default:0.7" json:"temperature"`

	// Chat behavior
	CollectContactInfo     bool `gorm:"default:true" json:"collect_contact_info"`
	AutoSuggestConsultation bool `gorm:"default:true" json:"auto_suggest_consultation"`

	// Greeting messages per language
	WelcomeMessageRU string `gorm:"type:text" json:"welcome_message_ru"`
	WelcomeMessageKY string `gorm:"type:text" json:"welcome_message_ky"`
	WelcomeMessageEN string `gorm:"type:text" json:"welcome_message_en"`

	// Business hours
	OfficeHoursEnabled bool           `gorm:"default:false" json:"office_hours_enabled"`
	OfficeHours        datatypes.JSON `gorm:"type:jsonb" json:"office_hours"`
	OfflineMessage     string         `gorm:"type:text" json:"offline_message"`

	// Legal disclaimer shown by the widget
	LegalDisclaimer string `gorm:"type:text" json:"legal_disclaimer"`
	ShowDisclaimer  bool   `gorm:"default:true" json:"show_disclaimer"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationship
	Lawyer lawyermodels.Lawyer `gorm:"foreignKey:LawyerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name
func (ChatConfiguration) TableName() string {
	return "chat_configurations"
}

// BeforeCreate sets UUID before creating
func (c *ChatConfiguration) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// WelcomeMessage returns the configured greeting for a language, falling
// back to the built-in per-language default.
func (c *ChatConfiguration) WelcomeMessage(language, lawyerName string) string {
	var configured string
	switch language {
	case lawyermodels.LanguageKyrgyz:
		configured = c.WelcomeMessageKY
	case lawyermodels.LanguageEnglish:
		configured = c.WelcomeMessageEN
	default:
		configured = c.WelcomeMessageRU
	}

	if configured != "" {
		return configured
	}
	return DefaultWelcomeMessage(language, lawyerName)
}

// DefaultWelcomeMessage is the built-in greeting per language.
func DefaultWelcomeMessage(language, lawyerName string) string {
	switch language {
	case lawyermodels.LanguageKyrgyz:
		return fmt.Sprintf("Саламатсызбы! Мен юрист %sдын жардамчысымын. Кантип жардам бере алам?", lawyerName)
	case lawyermodels.LanguageEnglish:
		return fmt.Sprintf("Hello! I'm %s's legal assistant. How can I help you?", lawyerName)
	default:
		return fmt.Sprintf("Здравствуйте! Я помощник юриста %s. Как могу помочь?", lawyerName)
	}
}
