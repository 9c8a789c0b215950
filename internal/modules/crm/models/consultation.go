package models

import (
	"time"

	lawyermodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Consultation status values
const (
	ConsultationScheduled   = "scheduled"
	ConsultationConfirmed   = "confirmed"
	ConsultationCompleted   = "completed"
	ConsultationCancelled   = "cancelled"
	ConsultationNoShow      = "no_show"
	ConsultationRescheduled = "rescheduled"
)

// Consultation type values
const (
	ConsultationFree      = "free"
	ConsultationPaid      = "paid"
	ConsultationFollowUp  = "follow_up"
	ConsultationEmergency = "emergency"
)

// Meeting method values
const (
	MeetingInPerson = "in_person"
	MeetingPhone    = "phone"
	MeetingVideo    = "video"
)

// Consultation is a scheduled meeting between the lawyer and a lead.
type Consultation struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LeadID   uuid.UUID `gorm:"type:uuid;not null;index" json:"lead_id"`
	LawyerID uuid.UUID `gorm:"type:uuid;not null;index" json:"lawyer_id"`

	// Appointment details
	ScheduledTime    time.Time `gorm:"not null" json:"scheduled_time"`
	DurationMinutes  int       `gorm:"default:60" json:"duration_minutes"`
	ConsultationType string    `gorm:"type:text;default:'free'" json:"consultation_type"`

	// Status and management
	Status string  `gorm:"type:text;default:'scheduled'" json:"status"`
	Fee    float64 `gorm:"type:decimal(10,2);default:0" json:"fee"`

	// Meeting details
	MeetingMethod string `gorm:"type:text;default:'in_person'" json:"meeting_method"`
	Location      string `gorm:"type:text" json:"location"`

	// Notes
	Agenda      string `gorm:"type:text" json:"agenda"`
	LawyerNotes string `gorm:"type:text" json:"lawyer_notes"`

	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// Relationships
	Lead   Lead                `gorm:"foreignKey:LeadID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Lawyer lawyermodels.Lawyer `gorm:"foreignKey:LawyerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name
func (Consultation) TableName() string {
	return "consultations"
}

// BeforeCreate sets UUID before creating
func (c *Consultation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// EndTime returns when the consultation finishes.
func (c *Consultation) EndTime() time.Time {
	return c.ScheduledTime.Add(time.Duration(c.DurationMinutes) * time.Minute)
}

// IsUpcoming reports whether the consultation is still ahead and active.
func (c *Consultation) IsUpcoming(now time.Time) bool {
	return c.ScheduledTime.After(now) &&
		(c.Status == ConsultationScheduled || c.Status == ConsultationConfirmed)
}
