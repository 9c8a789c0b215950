package analytics

import (
	"time"

	chatmodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/models"
	crmmodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/models"
	"github.com/google/uuid"
)

// ChatDaily returns the chat rollup rows for a lawyer over a period, newest
// first.
func (s *RollupService) ChatDaily(lawyerID uuid.UUID, from, to time.Time) ([]chatmodels.ChatAnalytics, error) {
	var rows []chatmodels.ChatAnalytics
	err := s.db.Where("lawyer_id = ? AND date >= ? AND date < ?", lawyerID, from, to).
		Order("date DESC").Find(&rows).Error
	return rows, err
}

// LeadDaily returns the lead rollup rows for a lawyer over a period, newest
// first.
func (s *RollupService) LeadDaily(lawyerID uuid.UUID, from, to time.Time) ([]crmmodels.LeadAnalytics, error) {
	var rows []crmmodels.LeadAnalytics
	err := s.db.Where("lawyer_id = ? AND date >= ? AND date < ?", lawyerID, from, to).
		Order("date DESC").Find(&rows).Error
	return rows, err
}
