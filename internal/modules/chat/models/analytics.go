package models

import (
	"time"

	lawyermodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatAnalytics is a per-lawyer daily rollup written by the nightly
// aggregation job. Unique on (lawyer_id, date).
type ChatAnalytics struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LawyerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chat_analytics_lawyer_date" json:"lawyer_id"`
	Date     time.Time `gorm:"type:date;not null;uniqueIndex:idx_chat_analytics_lawyer_date" json:"date"`

	// Session statistics
	TotalSessions     int `gorm:"default:0" json:"total_sessions"`
	CompletedSessions int `gorm:"default:0" json:"completed_sessions"`

	// Message statistics
	TotalMessages     int     `gorm:"default:0" json:"total_messages"`
	AvgResponseTimeMS float64 `gorm:"default:0" json:"avg_response_time_ms"`

	// Lead generation
	ConsultationRequests int     `gorm:"default:0" json:"consultation_requests"`
	ConversionRate       float64 `gorm:"default:0" json:"conversion_rate"`

	// Satisfaction
	AvgRating     float64 `gorm:"default:0" json:"avg_rating"`
	TotalFeedback int     `gorm:"default:0" json:"total_feedback"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationship
	Lawyer lawyermodels.Lawyer `gorm:"foreignKey:LawyerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name
func (ChatAnalytics) TableName() string {
	return "chat_analytics"
}

// BeforeCreate sets UUID before creating
func (a *ChatAnalytics) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
