package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/models"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepo interface {
	Create(session *models.ChatSession) error
	Update(session *models.ChatSession) error
	GetByToken(token uuid.UUID) (*models.ChatSession, error)
	ListByLawyer(lawyerID uuid.UUID, limit, offset int) ([]models.ChatSession, int64, error)
	TouchActivity(id uuid.UUID, at time.Time) error
	CountByLawyerBetween(lawyerID uuid.UUID, from, to time.Time) (int64, error)
	CountEndedByLawyerBetween(lawyerID uuid.UUID, from, to time.Time) (int64, error)
	CountConsultationRequestsBetween(lawyerID uuid.UUID, from, to time.Time) (int64, error)
}

type sessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepo {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(session *models.ChatSession) error {
	return r.db.Create(session).Error
}

func (r *sessionRepo) Update(session *models.ChatSession) error {
	return r.db.Save(session).Error
}

func (r *sessionRepo) GetByToken(token uuid.UUID) (*models.ChatSession, error) {
	var session models.ChatSession
	err := r.db.Where("session_id = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: session %s", apperr.ErrNotFound, token)
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) ListByLawyer(lawyerID uuid.UUID, limit, offset int) ([]models.ChatSession, int64, error) {
	var sessions []models.ChatSession
	var total int64

	query := r.db.Model(&models.ChatSession{}).Where("lawyer_id = ?", lawyerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("started_at DESC").Limit(limit).Offset(offset).Find(&sessions).Error
	return sessions, total, err
}

func (r *sessionRepo) TouchActivity(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.ChatSession{}).Where("id = ?", id).
		Update("last_activity", at).Error
}

func (r *sessionRepo) CountByLawyerBetween(lawyerID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ChatSession{}).
		Where("lawyer_id = ? AND started_at >= ? AND started_at < ?", lawyerID, from, to).
		Count(&count).Error
	return count, err
}

func (r *sessionRepo) CountEndedByLawyerBetween(lawyerID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ChatSession{}).
		Where("lawyer_id = ? AND status = ? AND started_at >= ? AND started_at < ?",
			lawyerID, models.SessionEnded, from, to).
		Count(&count).Error
	return count, err
}

func (r *sessionRepo) CountConsultationRequestsBetween(lawyerID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ChatSession{}).
		Where("lawyer_id = ? AND consultation_requested = ? AND started_at >= ? AND started_at < ?",
			lawyerID, true, from, to).
		Count(&count).Error
	return count, err
}
