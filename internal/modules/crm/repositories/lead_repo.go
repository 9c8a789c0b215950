package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/models"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadFilter struct {
	Status   string
	Priority string
	Source   string
	Limit    int
	Offset   int
}

type LeadRepo interface {
	Create(lead *models.Lead) error
	Update(lead *models.Lead) error
	GetByID(lawyerID, id uuid.UUID) (*models.Lead, error)
	// GetOrCreateByPhone reuses an existing lead of the lawyer with the same
	// phone instead of creating a duplicate.
	GetOrCreateByPhone(lead *models.Lead) (*models.Lead, bool, error)
	HasForSession(sessionRef uuid.UUID) (bool, error)
	List(lawyerID uuid.UUID, filter LeadFilter) ([]models.Lead, int64, error)
	CountByLawyerBetween(lawyerID uuid.UUID, from, to time.Time) (int64, error)
	CountByStatusBetween(lawyerID uuid.UUID, status string, from, to time.Time) (int64, error)
	SourceCountsBetween(lawyerID uuid.UUID, from, to time.Time) (map[string]int64, error)
}

type leadRepo struct {
	db *gorm.DB
}

func NewLeadRepo(db *gorm.DB) LeadRepo {
	return &leadRepo{db: db}
}

func (r *leadRepo) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

func (r *leadRepo) Update(lead *models.Lead) error {
	return r.db.Save(lead).Error
}

func (r *leadRepo) GetByID(lawyerID, id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.Where("id = ? AND lawyer_id = ?", id, lawyerID).First(&lead).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: lead %s", apperr.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepo) GetOrCreateByPhone(lead *models.Lead) (*models.Lead, bool, error) {
	var existing models.Lead
	err := r.db.Where("lawyer_id = ? AND phone = ?", lead.LawyerID, lead.Phone).
		Order("created_at DESC").First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if err := r.db.Create(lead).Error; err != nil {
		return nil, false, err
	}
	return lead, true, nil
}

func (r *leadRepo) HasForSession(sessionRef uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).Where("session_ref = ?", sessionRef).Count(&count).Error
	return count > 0, err
}

func (r *leadRepo) List(lawyerID uuid.UUID, filter LeadFilter) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	query := r.db.Model(&models.Lead{}).Where("lawyer_id = ?", lawyerID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(filter.Offset).Find(&leads).Error
	return leads, total, err
}

func (r *leadRepo) CountByLawyerBetween(lawyerID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).
		Where("lawyer_id = ? AND created_at >= ? AND created_at < ?", lawyerID, from, to).
		Count(&count).Error
	return count, err
}

func (r *leadRepo) CountByStatusBetween(lawyerID uuid.UUID, status string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).
		Where("lawyer_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
			lawyerID, status, from, to).
		Count(&count).Error
	return count, err
}

func (r *leadRepo) SourceCountsBetween(lawyerID uuid.UUID, from, to time.Time) (map[string]int64, error) {
	type row struct {
		Source string
		Total  int64
	}
	var rows []row
	err := r.db.Model(&models.Lead{}).
		Where("lawyer_id = ? AND created_at >= ? AND created_at < ?", lawyerID, from, to).
		Select("source, COUNT(*) AS total").
		Group("source").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Source] = rw.Total
	}
	return counts, nil
}
