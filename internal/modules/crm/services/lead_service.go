package services

import (
	"fmt"
	"time"

	"github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/models"
	"github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/repositories"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/apperr"
	"github.com/google/uuid"
)

var leadStatuses = map[string]bool{
	models.LeadStatusNew:       true,
	models.LeadStatusContacted: true,
	models.LeadStatusQualified: true,
	models.LeadStatusConverted: true,
	models.LeadStatusLost:      true,
	models.LeadStatusSpam:      true,
}

var leadPriorities = map[string]bool{
	models.PriorityLow:    true,
	models.PriorityMedium: true,
	models.PriorityHigh:   true,
	models.PriorityUrgent: true,
}

// UpdateLeadRequest is a partial update applied by the lawyer's CRM views.
type UpdateLeadRequest struct {
	Status        *string `json:"status"`
	Priority      *string `json:"priority"`
	InternalNotes *string `json:"internal_notes"`
}

type LeadService struct {
	leads repositories.LeadRepo
}

func NewLeadService(leads repositories.LeadRepo) *LeadService {
	return &LeadService{leads: leads}
}

func (s *LeadService) List(lawyerID uuid.UUID, filter repositories.LeadFilter) ([]models.Lead, int64, error) {
	if filter.Status != "" && !leadStatuses[filter.Status] {
		return nil, 0, fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, filter.Status)
	}
	if filter.Priority != "" && !leadPriorities[filter.Priority] {
		return nil, 0, fmt.Errorf("%w: unknown priority %q", apperr.ErrValidation, filter.Priority)
	}
	return s.leads.List(lawyerID, filter)
}

func (s *LeadService) Get(lawyerID, id uuid.UUID) (*models.Lead, error) {
	return s.leads.GetByID(lawyerID, id)
}

// Update applies the partial update. Moving a lead out of "new" stamps
// ContactedAt once.
func (s *LeadService) Update(lawyerID, id uuid.UUID, req *UpdateLeadRequest) (*models.Lead, error) {
	lead, err := s.leads.GetByID(lawyerID, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !leadStatuses[*req.Status] {
			return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, *req.Status)
		}
		if lead.Status == models.LeadStatusNew && *req.Status != models.LeadStatusNew && lead.ContactedAt == nil {
			now := time.Now()
			lead.ContactedAt = &now
		}
		lead.Status = *req.Status
	}
	if req.Priority != nil {
		if !leadPriorities[*req.Priority] {
			return nil, fmt.Errorf("%w: unknown priority %q", apperr.ErrValidation, *req.Priority)
		}
		lead.Priority = *req.Priority
	}
	if req.InternalNotes != nil {
		lead.InternalNotes = *req.InternalNotes
	}

	if err := s.leads.Update(lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// LeadStats is a point-in-time summary for the CRM dashboard.
type LeadStats struct {
	Total     int64            `json:"total"`
	New       int64            `json:"new"`
	Contacted int64            `json:"contacted"`
	Converted int64            `json:"converted"`
	BySource  map[string]int64 `json:"by_source"`
}

func (s *LeadService) Stats(lawyerID uuid.UUID, from, to time.Time) (*LeadStats, error) {
	total, err := s.leads.CountByLawyerBetween(lawyerID, from, to)
	if err != nil {
		return nil, err
	}
	newCount, err := s.leads.CountByStatusBetween(lawyerID, models.LeadStatusNew, from, to)
	if err != nil {
		return nil, err
	}
	contacted, err := s.leads.CountByStatusBetween(lawyerID, models.LeadStatusContacted, from, to)
	if err != nil {
		return nil, err
	}
	converted, err := s.leads.CountByStatusBetween(lawyerID, models.LeadStatusConverted, from, to)
	if err != nil {
		return nil, err
	}
	bySource, err := s.leads.SourceCountsBetween(lawyerID, from, to)
	if err != nil {
		return nil, err
	}

	return &LeadStats{
		Total:     total,
		New:       newCount,
		Contacted: contacted,
		Converted: converted,
		BySource:  bySource,
	}, nil
}
