package notify

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Service sends lead and consultation alerts to the owning lawyer. Delivery
// is best effort: a failed alert never fails the chat operation behind it.
type Service struct {
	provider EmailProvider
}

// NewService creates a notification service with the given email provider.
// A nil provider disables alerts.
func NewService(provider EmailProvider) *Service {
	return &Service{provider: provider}
}

// GetProviderName returns the name of the configured email provider.
func (s *Service) GetProviderName() string {
	if s.provider == nil {
		return "none"
	}
	return s.provider.GetProviderName()
}

// NewLeadAlert tells the lawyer a lead was captured from the chat widget.
func (s *Service) NewLeadAlert(lawyerEmail, lawyerName, leadName, leadPhone, category string) {
	if s.provider == nil || lawyerEmail == "" {
		return
	}

	subject := fmt.Sprintf("Новая заявка: %s", leadName)
	body := fmt.Sprintf(
		"<p>Здравствуйте, %s!</p>"+
			"<p>Через чат на вашем сайте поступила новая заявка:</p>"+
			"<ul><li>Имя: %s</li><li>Телефон: %s</li><li>Категория: %s</li></ul>"+
			"<p>Свяжитесь с клиентом в ближайшее время.</p>",
		lawyerName, leadName, leadPhone, category,
	)

	if err := s.provider.SendEmail(lawyerEmail, subject, body); err != nil {
		log.Warn().Err(err).Str("lawyer_email", lawyerEmail).Msg("failed to send lead alert")
	}
}

// ConsultationAlert tells the lawyer a consultation was scheduled in chat.
func (s *Service) ConsultationAlert(lawyerEmail, lawyerName, clientName, phone, when string) {
	if s.provider == nil || lawyerEmail == "" {
		return
	}

	subject := fmt.Sprintf("Запись на консультацию: %s", clientName)
	body := fmt.Sprintf(
		"<p>Здравствуйте, %s!</p>"+
			"<p>Клиент записался на консультацию через чат:</p>"+
			"<ul><li>Имя: %s</li><li>Телефон: %s</li><li>Время: %s</li></ul>",
		lawyerName, clientName, phone, when,
	)

	if err := s.provider.SendEmail(lawyerEmail, subject, body); err != nil {
		log.Warn().Err(err).Str("lawyer_email", lawyerEmail).Msg("failed to send consultation alert")
	}
}
