package repositories

import (
	"errors"
	"fmt"

	"github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/models"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LawyerRepo interface {
	Create(lawyer *models.Lawyer) error
	Update(lawyer *models.Lawyer) error
	GetByID(id uuid.UUID) (*models.Lawyer, error)
	GetBySlug(slug string) (*models.Lawyer, error)
	SlugExists(slug string) (bool, error)
	ListPublished() ([]models.Lawyer, error)
	ListAll() ([]models.Lawyer, error)
}

type lawyerRepo struct {
	db *gorm.DB
}

func NewLawyerRepo(db *gorm.DB) LawyerRepo {
	return &lawyerRepo{db: db}
}

func (r *lawyerRepo) Create(lawyer *models.Lawyer) error {
	return r.db.Create(lawyer).Error
}

func (r *lawyerRepo) Update(lawyer *models.Lawyer) error {
	return r.db.Save(lawyer).Error
}

func (r *lawyerRepo) GetByID(id uuid.UUID) (*models.Lawyer, error) {
	var lawyer models.Lawyer
	err := r.db.Where("id = ?", id).First(&lawyer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: lawyer %s", apperr.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &lawyer, nil
}

func (r *lawyerRepo) GetBySlug(slug string) (*models.Lawyer, error) {
	var lawyer models.Lawyer
	err := r.db.Where("domain_slug = ?", slug).First(&lawyer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: lawyer %q", apperr.ErrNotFound, slug)
	}
	if err != nil {
		return nil, err
	}
	return &lawyer, nil
}

func (r *lawyerRepo) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Lawyer{}).Where("domain_slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *lawyerRepo) ListPublished() ([]models.Lawyer, error) {
	var lawyers []models.Lawyer
	err := r.db.Where("website_published = ?", true).Order("created_at DESC").Find(&lawyers).Error
	return lawyers, err
}

func (r *lawyerRepo) ListAll() ([]models.Lawyer, error) {
	var lawyers []models.Lawyer
	err := r.db.Order("created_at DESC").Find(&lawyers).Error
	return lawyers, err
}
