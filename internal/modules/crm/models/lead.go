package models

import (
	"time"

	lawyermodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead status values
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
	LeadStatusSpam      = "spam"
)

// Lead priority values
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Lead source values
const (
	SourceChatbot     = "chatbot"
	SourceWebsiteChat = "website_chat"
	SourceWebsiteForm = "website_form"
	SourceReferral    = "referral"
	SourceOther       = "other"
)

// Lead is a contact record representing sales interest, usually derived
// from a chat session. Independent of the session after creation.
type Lead struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LawyerID uuid.UUID `gorm:"type:uuid;not null;index" json:"lawyer_id"`

	// Contact information
	Name  string `gorm:"type:text;not null" json:"name"`
	Email string `gorm:"type:text" json:"email"`
	Phone string `gorm:"type:text" json:"phone"`

	// Lead details
	LegalCategory   string `gorm:"type:text" json:"legal_category"`
	CaseDescription string `gorm:"type:text" json:"case_description"`

	// Lead management
	Status   string `gorm:"type:text;default:'new'" json:"status"`
	Priority string `gorm:"type:text;default:'medium'" json:"priority"`
	Source   string `gorm:"type:text;default:'website_form'" json:"source"`

	// Tracking
	SessionRef *uuid.UUID `gorm:"type:uuid;index" json:"session_ref,omitempty"`
	IPAddress  string     `gorm:"type:text" json:"ip_address"`
	UserAgent  string     `gorm:"type:text" json:"user_agent"`
	Referrer   string     `gorm:"type:text" json:"referrer"`

	// Notes and follow-up
	InternalNotes string `gorm:"type:text" json:"internal_notes"`

	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	ContactedAt *time.Time `json:"contacted_at"`

	// Relationship
	Lawyer lawyermodels.Lawyer `gorm:"foreignKey:LawyerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name
func (Lead) TableName() string {
	return "leads"
}

// BeforeCreate sets UUID before creating
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
