package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message roles. A single closed set: assistant covers both AI-generated
// and system-generated (welcome, confirmation) texts, the latter marked by
// ModelSystem in AIModel.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// AIModel markers for assistant messages not produced by the AI provider.
const (
	ModelSystem   = "system"
	ModelFallback = "fallback"
)

// ChatMessage is one entry in a session's append-only message log. Rows are
// never mutated after creation except for the two quality flags.
type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`

	Role    string `gorm:"type:text;not null" json:"role"`
	Content string `gorm:"type:text;not null" json:"content"`

	// AI response metadata
	AIModel        string `gorm:"type:text" json:"ai_model,omitempty"`
	ResponseTimeMS *int   `json:"response_time_ms,omitempty"`
	TokensUsed     *int   `json:"tokens_used,omitempty"`

	// Quality flags
	IsHelpful   bool `gorm:"default:false" json:"is_helpful"`
	NeedsReview bool `gorm:"default:false" json:"needs_review"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationship
	Session ChatSession `gorm:"foreignKey:SessionID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name
func (ChatMessage) TableName() string {
	return "chat_messages"
}

// BeforeCreate sets UUID before creating
func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsWelcome reports whether this is the system-generated greeting that is
// excluded from the AI context window.
func (m *ChatMessage) IsWelcome() bool {
	return m.Role == RoleAssistant && m.AIModel == ModelSystem
}
