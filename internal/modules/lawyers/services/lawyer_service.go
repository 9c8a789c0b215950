package services

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/repositories"
	"github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/models"
	lawyerrepos "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/repositories"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/apperr"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/utils"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

var slugCleaner = regexp.MustCompile(`[^a-z0-9-]+`)

// ProvisionRequest carries the data needed to onboard a lawyer. Profile
// creation is an explicit call made at account-provisioning time, never a
// side effect of some other write.
type ProvisionRequest struct {
	FullName        string   `json:"full_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Bio             string   `json:"bio"`
	Specialties     []string `json:"specialties"`
	LicenseNumber   string   `json:"license_number"`
	YearsExperience int      `json:"years_experience"`
	ConsultationFee float64  `json:"consultation_fee"`
	PrimaryLanguage string   `json:"primary_language"`
	DomainSlug      string   `json:"domain_slug"`
}

type UpdateProfileRequest struct {
	FullName        *string   `json:"full_name"`
	Phone           *string   `json:"phone"`
	Bio             *string   `json:"bio"`
	Specialties     *[]string `json:"specialties"`
	LicenseNumber   *string   `json:"license_number"`
	YearsExperience *int      `json:"years_experience"`
	ConsultationFee *float64  `json:"consultation_fee"`
	PrimaryLanguage *string   `json:"primary_language"`
}

type LawyerService struct {
	lawyers       lawyerrepos.LawyerRepo
	configs       repositories.ConfigRepo
	publicBaseURL string
}

func NewLawyerService(lawyers lawyerrepos.LawyerRepo, configs repositories.ConfigRepo, publicBaseURL string) *LawyerService {
	return &LawyerService{
		lawyers:       lawyers,
		configs:       configs,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Provision creates a lawyer profile with a unique slug and its default chat
// configuration.
func (s *LawyerService) Provision(req *ProvisionRequest) (*models.Lawyer, error) {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: full_name and email are required", apperr.ErrValidation)
	}

	language := req.PrimaryLanguage
	if language == "" {
		language = models.LanguageRussian
	}
	switch language {
	case models.LanguageRussian, models.LanguageKyrgyz, models.LanguageEnglish:
	default:
		return nil, fmt.Errorf("%w: unsupported language %q", apperr.ErrValidation, language)
	}

	slug, err := s.uniqueSlug(req.DomainSlug, req.FullName)
	if err != nil {
		return nil, err
	}

	lawyer := &models.Lawyer{
		FullName:        strings.TrimSpace(req.FullName),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		Bio:             req.Bio,
		Specialties:     req.Specialties,
		LicenseNumber:   req.LicenseNumber,
		YearsExperience: req.YearsExperience,
		ConsultationFee: req.ConsultationFee,
		PrimaryLanguage: language,
		DomainSlug:      slug,
	}
	if err := s.lawyers.Create(lawyer); err != nil {
		return nil, err
	}

	// The chat configuration exists from day one so the widget never races
	// the lazy-create path.
	if _, err := s.configs.GetOrCreate(lawyer.ID); err != nil {
		return nil, err
	}

	utils.LogInfo("lawyer provisioned", map[string]interface{}{
		"lawyer_id": lawyer.ID.String(),
		"slug":      lawyer.DomainSlug,
	})
	return lawyer, nil
}

func (s *LawyerService) GetByID(id uuid.UUID) (*models.Lawyer, error) {
	return s.lawyers.GetByID(id)
}

func (s *LawyerService) GetBySlug(slug string) (*models.Lawyer, error) {
	return s.lawyers.GetBySlug(slug)
}

func (s *LawyerService) ListPublished() ([]models.Lawyer, error) {
	return s.lawyers.ListPublished()
}

func (s *LawyerService) UpdateProfile(id uuid.UUID, req *UpdateProfileRequest) (*models.Lawyer, error) {
	lawyer, err := s.lawyers.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		if strings.TrimSpace(*req.FullName) == "" {
			return nil, fmt.Errorf("%w: full_name cannot be empty", apperr.ErrValidation)
		}
		lawyer.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		lawyer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Bio != nil {
		lawyer.Bio = *req.Bio
	}
	if req.Specialties != nil {
		lawyer.Specialties = *req.Specialties
	}
	if req.LicenseNumber != nil {
		lawyer.LicenseNumber = *req.LicenseNumber
	}
	if req.YearsExperience != nil {
		lawyer.YearsExperience = *req.YearsExperience
	}
	if req.ConsultationFee != nil {
		lawyer.ConsultationFee = *req.ConsultationFee
	}
	if req.PrimaryLanguage != nil {
		switch *req.PrimaryLanguage {
		case models.LanguageRussian, models.LanguageKyrgyz, models.LanguageEnglish:
			lawyer.PrimaryLanguage = *req.PrimaryLanguage
		default:
			return nil, fmt.Errorf("%w: unsupported language %q", apperr.ErrValidation, *req.PrimaryLanguage)
		}
	}

	if err := s.lawyers.Update(lawyer); err != nil {
		return nil, err
	}
	return lawyer, nil
}

// SetPublished flips website visibility.
func (s *LawyerService) SetPublished(id uuid.UUID, published bool) (*models.Lawyer, error) {
	lawyer, err := s.lawyers.GetByID(id)
	if err != nil {
		return nil, err
	}
	lawyer.WebsitePublished = published
	if err := s.lawyers.Update(lawyer); err != nil {
		return nil, err
	}
	return lawyer, nil
}

// ChatLink is the public widget URL for a lawyer's assistant.
func (s *LawyerService) ChatLink(slug string) string {
	return fmt.Sprintf("%s/chat/%s", s.publicBaseURL, slug)
}

// ChatLinkQR renders the chat link as a base64-encoded PNG QR code.
func (s *LawyerService) ChatLinkQR(slug string) (string, string, error) {
	lawyer, err := s.lawyers.GetBySlug(slug)
	if err != nil {
		return "", "", err
	}

	link := s.ChatLink(lawyer.DomainSlug)
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return "", "", err
	}
	return link, base64.StdEncoding.EncodeToString(png), nil
}

// uniqueSlug normalizes the requested slug (or derives one from the name)
// and suffixes a counter until it is free.
func (s *LawyerService) uniqueSlug(requested, fullName string) (string, error) {
	base := Slugify(requested)
	if base == "" {
		base = Slugify(fullName)
	}
	if base == "" {
		base = "lawyer"
	}

	candidate := base
	for i := 2; ; i++ {
		exists, err := s.lawyers.SlugExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// Slugify lowercases and strips a string down to [a-z0-9-].
func Slugify(value string) string {
	slug := strings.ToLower(strings.TrimSpace(value))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugCleaner.ReplaceAllString(slug, "")
	slug = strings.Trim(slug, "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return slug
}
