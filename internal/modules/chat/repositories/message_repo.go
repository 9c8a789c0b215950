package repositories

import (
	"errors"
	"time"

	"github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepo interface {
	Append(message *models.ChatMessage) error
	ListBySession(sessionID uuid.UUID) ([]models.ChatMessage, error)
	// Recent returns the last limit non-system messages of the session in
	// chronological order. Welcome and confirmation messages carry the
	// system marker and are skipped.
	Recent(sessionID uuid.UUID, limit int) ([]models.ChatMessage, error)
	CountByRole(sessionID uuid.UUID, role string) (int64, error)
	LastByRole(sessionID uuid.UUID, role string) (*models.ChatMessage, error)
	ConcatContentByRole(sessionID uuid.UUID, role string) (string, error)
	AvgResponseTimeBetween(lawyerID uuid.UUID, from, to time.Time) (float64, error)
	CountBySessionsBetween(lawyerID uuid.UUID, from, to time.Time) (int64, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &messageRepo{db: db}
}

func (r *messageRepo) Append(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

func (r *messageRepo) ListBySession(sessionID uuid.UUID) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.Where("session_id = ?", sessionID).Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func (r *messageRepo) Recent(sessionID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.Where("session_id = ? AND ai_model != ?", sessionID, models.ModelSystem).
		Order("created_at DESC").Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, err
	}
	// reverse into chronological order
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *messageRepo) CountByRole(sessionID uuid.UUID, role string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ChatMessage{}).
		Where("session_id = ? AND role = ?", sessionID, role).Count(&count).Error
	return count, err
}

func (r *messageRepo) LastByRole(sessionID uuid.UUID, role string) (*models.ChatMessage, error) {
	var message models.ChatMessage
	err := r.db.Where("session_id = ? AND role = ?", sessionID, role).
		Order("created_at DESC").First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepo) ConcatContentByRole(sessionID uuid.UUID, role string) (string, error) {
	messages, err := r.ListBySession(sessionID)
	if err != nil {
		return "", err
	}
	var out string
	for _, m := range messages {
		if m.Role != role {
			continue
		}
		if out != "" {
			out += " "
		}
		out += m.Content
	}
	return out, nil
}

func (r *messageRepo) AvgResponseTimeBetween(lawyerID uuid.UUID, from, to time.Time) (float64, error) {
	var avg float64
	err := r.db.Model(&models.ChatMessage{}).
		Joins("JOIN chat_sessions ON chat_sessions.id = chat_messages.session_id").
		Where("chat_sessions.lawyer_id = ? AND chat_messages.response_time_ms IS NOT NULL AND chat_messages.created_at >= ? AND chat_messages.created_at < ?",
			lawyerID, from, to).
		Select("COALESCE(AVG(chat_messages.response_time_ms), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *messageRepo) CountBySessionsBetween(lawyerID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ChatMessage{}).
		Joins("JOIN chat_sessions ON chat_sessions.id = chat_messages.session_id").
		Where("chat_sessions.lawyer_id = ? AND chat_messages.created_at >= ? AND chat_messages.created_at < ?",
			lawyerID, from, to).
		Count(&count).Error
	return count, err
}
