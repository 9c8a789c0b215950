package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Language codes supported by the platform
const (
	LanguageRussian = "ru"
	LanguageKyrgyz  = "ky"
	LanguageEnglish = "en"
)

// Lawyer is the tenant of the platform: one lawyer, one published website,
// one chat assistant.
type Lawyer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	// Identity
	FullName string `gorm:"type:text;not null" json:"full_name"`
	Email    string `gorm:"type:text;not null" json:"email"`
	Phone    string `gorm:"type:text" json:"phone"`
	Bio      string `gorm:"type:text" json:"bio"`

	// Professional information
	Specialties     pq.StringArray `gorm:"type:text[]" json:"specialties"`
	LicenseNumber   string         `gorm:"type:text" json:"license_number"`
	YearsExperience int            `gorm:"default:0" json:"years_experience"`
	ConsultationFee float64        `gorm:"type:decimal(10,2);default:0" json:"consultation_fee"`

	// Website settings
	PrimaryLanguage  string `gorm:"type:text;default:'ru'" json:"primary_language"`
	DomainSlug       string `gorm:"type:text;unique;not null" json:"domain_slug"`
	WebsitePublished bool   `gorm:"default:false" json:"website_published"`

	// Weekly office hours schedule, keyed by lowercase weekday name
	OfficeHours datatypes.JSON `gorm:"type:jsonb" json:"office_hours"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Lawyer) TableName() string {
	return "lawyers"
}

// BeforeCreate sets UUID before creating
func (l *Lawyer) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
