package notify

// EmailProvider defines the interface for transactional email providers
type EmailProvider interface {
	SendEmail(to, subject, body string) error
	GetProviderName() string
}
