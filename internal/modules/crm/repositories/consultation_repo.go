package repositories

import (
	"errors"
	"fmt"

	"github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/models"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationFilter struct {
	Status string
	Limit  int
	Offset int
}

type ConsultationRepo interface {
	Create(consultation *models.Consultation) error
	Update(consultation *models.Consultation) error
	GetByID(lawyerID, id uuid.UUID) (*models.Consultation, error)
	List(lawyerID uuid.UUID, filter ConsultationFilter) ([]models.Consultation, int64, error)
	ListByLead(leadID uuid.UUID) ([]models.Consultation, error)
}

type consultationRepo struct {
	db *gorm.DB
}

func NewConsultationRepo(db *gorm.DB) ConsultationRepo {
	return &consultationRepo{db: db}
}

func (r *consultationRepo) Create(consultation *models.Consultation) error {
	return r.db.Create(consultation).Error
}

func (r *consultationRepo) Update(consultation *models.Consultation) error {
	return r.db.Save(consultation).Error
}

func (r *consultationRepo) GetByID(lawyerID, id uuid.UUID) (*models.Consultation, error) {
	var consultation models.Consultation
	err := r.db.Where("id = ? AND lawyer_id = ?", id, lawyerID).First(&consultation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: consultation %s", apperr.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepo) List(lawyerID uuid.UUID, filter ConsultationFilter) ([]models.Consultation, int64, error) {
	var consultations []models.Consultation
	var total int64

	query := r.db.Model(&models.Consultation{}).Where("lawyer_id = ?", lawyerID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	err := query.Order("scheduled_time ASC").Limit(limit).Offset(filter.Offset).Find(&consultations).Error
	return consultations, total, err
}

func (r *consultationRepo) ListByLead(leadID uuid.UUID) ([]models.Consultation, error) {
	var consultations []models.Consultation
	err := r.db.Where("lead_id = ?", leadID).Order("scheduled_time ASC").Find(&consultations).Error
	return consultations, err
}
