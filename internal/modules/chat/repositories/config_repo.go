package repositories

import (
	"errors"

	"github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConfigRepo interface {
	GetOrCreate(lawyerID uuid.UUID) (*models.ChatConfiguration, error)
	Update(config *models.ChatConfiguration) error
}

type configRepo struct {
	db *gorm.DB
}

func NewConfigRepo(db *gorm.DB) ConfigRepo {
	return &configRepo{db: db}
}

func (r *configRepo) GetOrCreate(lawyerID uuid.UUID) (*models.ChatConfiguration, error) {
	var config models.ChatConfiguration
	err := r.db.Where("lawyer_id = ?", lawyerID).First(&config).Error
	if err == nil {
		return &config, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	config = models.ChatConfiguration{
		LawyerID:                lawyerID,
		AIModel:                 "deepseek-chat",
		MaxTokens:               300,
		Temperature:             0.7,
		CollectContactInfo:      true,
		AutoSuggestConsultation: true,
		ShowDisclaimer:          true,
	}
	if err := r.db.Create(&config).Error; err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *configRepo) Update(config *models.ChatConfiguration) error {
	return r.db.Save(config).Error
}
