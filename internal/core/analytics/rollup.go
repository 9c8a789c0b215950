package analytics

import (
	"encoding/json"
	"sort"
	"time"

	chatmodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/models"
	chatrepos "github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/repositories"
	crmmodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/models"
	crmrepos "github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/repositories"
	lawyerrepos "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/repositories"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/utils"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RollupService computes the per-lawyer daily analytics rows. Rollups are
// idempotent upserts keyed on (lawyer_id, date), so re-running a day is
// safe.
type RollupService struct {
	db       *gorm.DB
	lawyers  lawyerrepos.LawyerRepo
	sessions chatrepos.SessionRepo
	messages chatrepos.MessageRepo
	feedback chatrepos.FeedbackRepo
	leads    crmrepos.LeadRepo
}

func NewRollupService(
	db *gorm.DB,
	lawyers lawyerrepos.LawyerRepo,
	sessions chatrepos.SessionRepo,
	messages chatrepos.MessageRepo,
	feedback chatrepos.FeedbackRepo,
	leads crmrepos.LeadRepo,
) *RollupService {
	return &RollupService{
		db:       db,
		lawyers:  lawyers,
		sessions: sessions,
		messages: messages,
		feedback: feedback,
		leads:    leads,
	}
}

// RollupDay aggregates the given calendar day for every lawyer.
func (s *RollupService) RollupDay(day time.Time) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	lawyers, err := s.lawyers.ListAll()
	if err != nil {
		utils.LogError("analytics rollup: failed to list lawyers", err, nil)
		return
	}

	for _, lawyer := range lawyers {
		if err := s.rollupChatDay(lawyer.ID, from, to); err != nil {
			utils.LogError("chat analytics rollup failed", err, map[string]interface{}{
				"lawyer_id": lawyer.ID.String(),
				"date":      from.Format("2006-01-02"),
			})
		}
		if err := s.rollupLeadDay(lawyer.ID, from, to); err != nil {
			utils.LogError("lead analytics rollup failed", err, map[string]interface{}{
				"lawyer_id": lawyer.ID.String(),
				"date":      from.Format("2006-01-02"),
			})
		}
	}

	utils.LogInfo("analytics rollup finished", map[string]interface{}{
		"date":    from.Format("2006-01-02"),
		"lawyers": len(lawyers),
	})
}

// RollupYesterday is the nightly job body.
func (s *RollupService) RollupYesterday() {
	s.RollupDay(time.Now().AddDate(0, 0, -1))
}

func (s *RollupService) rollupChatDay(lawyerID uuid.UUID, from, to time.Time) error {
	total, err := s.sessions.CountByLawyerBetween(lawyerID, from, to)
	if err != nil {
		return err
	}
	completed, err := s.sessions.CountEndedByLawyerBetween(lawyerID, from, to)
	if err != nil {
		return err
	}
	messages, err := s.messages.CountBySessionsBetween(lawyerID, from, to)
	if err != nil {
		return err
	}
	avgResponse, err := s.messages.AvgResponseTimeBetween(lawyerID, from, to)
	if err != nil {
		return err
	}
	requests, err := s.sessions.CountConsultationRequestsBetween(lawyerID, from, to)
	if err != nil {
		return err
	}
	avgRating, feedbackCount, err := s.feedback.AvgRatingBetween(lawyerID, from, to)
	if err != nil {
		return err
	}

	var conversionRate float64
	if total > 0 {
		conversionRate = float64(requests) / float64(total)
	}

	row := chatmodels.ChatAnalytics{
		LawyerID:             lawyerID,
		Date:                 from,
		TotalSessions:        int(total),
		CompletedSessions:    int(completed),
		TotalMessages:        int(messages),
		AvgResponseTimeMS:    avgResponse,
		ConsultationRequests: int(requests),
		ConversionRate:       conversionRate,
		AvgRating:            avgRating,
		TotalFeedback:        int(feedbackCount),
	}

	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "lawyer_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_sessions", "completed_sessions", "total_messages",
			"avg_response_time_ms", "consultation_requests", "conversion_rate",
			"avg_rating", "total_feedback",
		}),
	}).Create(&row).Error
}

func (s *RollupService) rollupLeadDay(lawyerID uuid.UUID, from, to time.Time) error {
	newLeads, err := s.leads.CountByLawyerBetween(lawyerID, from, to)
	if err != nil {
		return err
	}
	qualified, err := s.leads.CountByStatusBetween(lawyerID, crmmodels.LeadStatusQualified, from, to)
	if err != nil {
		return err
	}
	converted, err := s.leads.CountByStatusBetween(lawyerID, crmmodels.LeadStatusConverted, from, to)
	if err != nil {
		return err
	}
	sourceCounts, err := s.leads.SourceCountsBetween(lawyerID, from, to)
	if err != nil {
		return err
	}

	var scheduled, completedConsults int64
	err = s.db.Model(&crmmodels.Consultation{}).
		Where("lawyer_id = ? AND created_at >= ? AND created_at < ?", lawyerID, from, to).
		Count(&scheduled).Error
	if err != nil {
		return err
	}
	err = s.db.Model(&crmmodels.Consultation{}).
		Where("lawyer_id = ? AND status = ? AND completed_at >= ? AND completed_at < ?",
			lawyerID, crmmodels.ConsultationCompleted, from, to).
		Count(&completedConsults).Error
	if err != nil {
		return err
	}

	var rate float64
	if newLeads > 0 {
		rate = float64(scheduled) / float64(newLeads)
	}

	topSources, err := encodeTopSources(sourceCounts)
	if err != nil {
		return err
	}

	row := crmmodels.LeadAnalytics{
		LawyerID:               lawyerID,
		Date:                   from,
		NewLeads:               int(newLeads),
		QualifiedLeads:         int(qualified),
		ConvertedLeads:         int(converted),
		ConsultationsScheduled: int(scheduled),
		ConsultationsCompleted: int(completedConsults),
		LeadToConsultationRate: rate,
		TopSources:             topSources,
	}

	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "lawyer_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"new_leads", "qualified_leads", "converted_leads",
			"consultations_scheduled", "consultations_completed",
			"lead_to_consultation_rate", "top_sources",
		}),
	}).Create(&row).Error
}

type sourceCount struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

func encodeTopSources(counts map[string]int64) (datatypes.JSON, error) {
	rows := make([]sourceCount, 0, len(counts))
	for source, count := range counts {
		rows = append(rows, sourceCount{Source: source, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Source < rows[j].Source
	})

	raw, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
