package models

import (
	"time"

	lawyermodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LeadAnalytics is a per-lawyer daily rollup of lead and consultation
// activity, written by the nightly aggregation job.
type LeadAnalytics struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LawyerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_lead_analytics_lawyer_date" json:"lawyer_id"`
	Date     time.Time `gorm:"type:date;not null;uniqueIndex:idx_lead_analytics_lawyer_date" json:"date"`

	// Lead statistics
	NewLeads       int `gorm:"default:0" json:"new_leads"`
	QualifiedLeads int `gorm:"default:0" json:"qualified_leads"`
	ConvertedLeads int `gorm:"default:0" json:"converted_leads"`

	// Consultation statistics
	ConsultationsScheduled int `gorm:"default:0" json:"consultations_scheduled"`
	ConsultationsCompleted int `gorm:"default:0" json:"consultations_completed"`

	// Conversion
	LeadToConsultationRate float64 `gorm:"default:0" json:"lead_to_consultation_rate"`

	// Top sources for the day, e.g. [{"source":"website_chat","count":4}]
	TopSources datatypes.JSON `gorm:"type:jsonb" json:"top_sources"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationship
	Lawyer lawyermodels.Lawyer `gorm:"foreignKey:LawyerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name
func (LeadAnalytics) TableName() string {
	return "lead_analytics"
}

// BeforeCreate sets UUID before creating
func (a *LeadAnalytics) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
