package repositories

import (
	"time"

	"github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepo interface {
	Create(feedback *models.ChatFeedback) error
	ExistsForSession(sessionID uuid.UUID) (bool, error)
	AvgRatingBetween(lawyerID uuid.UUID, from, to time.Time) (float64, int64, error)
}

type feedbackRepo struct {
	db *gorm.DB
}

func NewFeedbackRepo(db *gorm.DB) FeedbackRepo {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Create(feedback *models.ChatFeedback) error {
	return r.db.Create(feedback).Error
}

func (r *feedbackRepo) ExistsForSession(sessionID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ChatFeedback{}).Where("session_id = ?", sessionID).Count(&count).Error
	return count > 0, err
}

func (r *feedbackRepo) AvgRatingBetween(lawyerID uuid.UUID, from, to time.Time) (float64, int64, error) {
	type row struct {
		Avg   float64
		Total int64
	}
	var out row
	err := r.db.Model(&models.ChatFeedback{}).
		Joins("JOIN chat_sessions ON chat_sessions.id = chat_feedback.session_id").
		Where("chat_sessions.lawyer_id = ? AND chat_feedback.created_at >= ? AND chat_feedback.created_at < ?",
			lawyerID, from, to).
		Select("COALESCE(AVG(chat_feedback.rating), 0) AS avg, COUNT(*) AS total").
		Scan(&out).Error
	return out.Avg, out.Total, err
}
