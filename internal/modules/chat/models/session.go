package models

import (
	"time"

	lawyermodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session status values. Both ended and transferred are terminal.
const (
	SessionActive      = "active"
	SessionEnded       = "ended"
	SessionTransferred = "transferred"
)

// ChatSession is one visitor's conversation with a lawyer's assistant.
// Visitor contact columns fill in over time; once VisitorPhone is set by
// extraction it is never overwritten (explicit contact submission is the
// only path that replaces it).
type ChatSession struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LawyerID uuid.UUID `gorm:"type:uuid;not null;index" json:"lawyer_id"`

	// Opaque token handed to the widget
	SessionID uuid.UUID `gorm:"type:uuid;unique;not null" json:"session_id"`

	// Visitor contact, filled in over time
	VisitorName  string `gorm:"type:text" json:"visitor_name"`
	VisitorEmail string `gorm:"type:text" json:"visitor_email"`
	VisitorPhone string `gorm:"type:text" json:"visitor_phone"`
	VisitorIP    string `gorm:"type:text" json:"visitor_ip"`

	// Session state
	Status        string `gorm:"type:text;default:'active'" json:"status"`
	Language      string `gorm:"type:text;default:'ru'" json:"language"`
	LegalCategory string `gorm:"type:text" json:"legal_category"`

	ConsultationRequested bool `gorm:"default:false" json:"consultation_requested"`

	// Request metadata
	UserAgent string `gorm:"type:text" json:"user_agent"`
	Referrer  string `gorm:"type:text" json:"referrer"`

	StartedAt    time.Time  `gorm:"autoCreateTime" json:"started_at"`
	EndedAt      *time.Time `json:"ended_at"`
	LastActivity time.Time  `gorm:"autoUpdateTime" json:"last_activity"`

	// Relationship
	Lawyer lawyermodels.Lawyer `gorm:"foreignKey:LawyerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name
func (ChatSession) TableName() string {
	return "chat_sessions"
}

// BeforeCreate sets UUIDs before creating
func (s *ChatSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SessionID == uuid.Nil {
		s.SessionID = uuid.New()
	}
	return nil
}

// IsTerminal reports whether no further transitions are allowed.
func (s *ChatSession) IsTerminal() bool {
	return s.Status == SessionEnded || s.Status == SessionTransferred
}

// IsLead reports whether the session qualifies for lead derivation.
func (s *ChatSession) IsLead() bool {
	return s.VisitorEmail != "" || s.VisitorPhone != "" || s.ConsultationRequested
}
