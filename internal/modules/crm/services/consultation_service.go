package services

import (
	"fmt"
	"time"

	"github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/models"
	"github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/repositories"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/apperr"
	"github.com/google/uuid"
)

var consultationStatuses = map[string]bool{
	models.ConsultationScheduled:   true,
	models.ConsultationConfirmed:   true,
	models.ConsultationCompleted:   true,
	models.ConsultationCancelled:   true,
	models.ConsultationNoShow:      true,
	models.ConsultationRescheduled: true,
}

// UpdateConsultationRequest is a partial update from the lawyer's calendar.
type UpdateConsultationRequest struct {
	Status        *string    `json:"status"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	Location      *string    `json:"location"`
	Agenda        *string    `json:"agenda"`
	LawyerNotes   *string    `json:"lawyer_notes"`
}

type ConsultationService struct {
	consultations repositories.ConsultationRepo
}

func NewConsultationService(consultations repositories.ConsultationRepo) *ConsultationService {
	return &ConsultationService{consultations: consultations}
}

func (s *ConsultationService) List(lawyerID uuid.UUID, filter repositories.ConsultationFilter) ([]models.Consultation, int64, error) {
	if filter.Status != "" && !consultationStatuses[filter.Status] {
		return nil, 0, fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, filter.Status)
	}
	return s.consultations.List(lawyerID, filter)
}

func (s *ConsultationService) Get(lawyerID, id uuid.UUID) (*models.Consultation, error) {
	return s.consultations.GetByID(lawyerID, id)
}

func (s *ConsultationService) ListByLead(leadID uuid.UUID) ([]models.Consultation, error) {
	return s.consultations.ListByLead(leadID)
}

// Update applies the partial update. Marking a consultation completed stamps
// CompletedAt; moving its time flips the status to rescheduled.
func (s *ConsultationService) Update(lawyerID, id uuid.UUID, req *UpdateConsultationRequest) (*models.Consultation, error) {
	consultation, err := s.consultations.GetByID(lawyerID, id)
	if err != nil {
		return nil, err
	}

	if req.ScheduledTime != nil {
		consultation.ScheduledTime = *req.ScheduledTime
		if consultation.Status == models.ConsultationScheduled || consultation.Status == models.ConsultationConfirmed {
			consultation.Status = models.ConsultationRescheduled
		}
	}
	if req.Status != nil {
		if !consultationStatuses[*req.Status] {
			return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, *req.Status)
		}
		if *req.Status == models.ConsultationCompleted && consultation.CompletedAt == nil {
			now := time.Now()
			consultation.CompletedAt = &now
		}
		consultation.Status = *req.Status
	}
	if req.Location != nil {
		consultation.Location = *req.Location
	}
	if req.Agenda != nil {
		consultation.Agenda = *req.Agenda
	}
	if req.LawyerNotes != nil {
		consultation.LawyerNotes = *req.LawyerNotes
	}

	if err := s.consultations.Update(consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}
