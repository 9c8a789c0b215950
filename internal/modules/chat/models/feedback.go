package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatFeedback is a visitor's rating of a finished conversation. One row
// per session.
type ChatFeedback struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID uuid.UUID `gorm:"type:uuid;unique;not null" json:"session_id"`

	Rating         int    `gorm:"not null" json:"rating"` // 1..5
	Comment        string `gorm:"type:text" json:"comment"`
	WouldRecommend bool   `gorm:"default:true" json:"would_recommend"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationship
	Session ChatSession `gorm:"foreignKey:SessionID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name
func (ChatFeedback) TableName() string {
	return "chat_feedback"
}

// BeforeCreate sets UUID before creating
func (f *ChatFeedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
