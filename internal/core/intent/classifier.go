package intent

import (
	"regexp"
	"strings"
)

// Tag is a coarse classification of a visitor message. Multiple tags may
// co-occur on the same message.
type Tag string

const (
	TagAppointmentRequest Tag = "appointment_request"
	TagLegalTopic         Tag = "legal_topic"
	TagContactSharing     Tag = "contact_sharing"
	TagContactProvided    Tag = "contact_provided"
	TagGeneralInquiry     Tag = "general_inquiry"
)

var (
	phonePattern = regexp.MustCompile(`\+?\d{10,}`)
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
)

// appointmentKeywords is the narrow set: scheduling and meeting words only.
var appointmentKeywords = map[string][]string{
	"ru": {"консультация", "встреча", "прием", "записаться", "встретиться"},
	"ky": {"консультация", "жолугушуу", "кабыл алуу", "жазылуу"},
	"en": {"consultation", "meeting", "appointment", "schedule", "book"},
}

var contactKeywords = map[string][]string{
	"ru": {"телефон", "контакт", "связь", "номер", "email"},
	"ky": {"телефон", "байланыш", "номер", "email"},
	"en": {"phone", "contact", "number", "email", "call"},
}

// genericLegalKeywords trigger the legal_topic tag without pinning a category.
var genericLegalKeywords = map[string][]string{
	"ru": {"юрист", "адвокат", "закон", "право", "суд", "иск"},
	"ky": {"юрист", "адвокат", "мыйзам", "укук", "сот", "доо"},
	"en": {"lawyer", "attorney", "law", "legal", "court", "lawsuit"},
}

// Classify returns the set of intent tags for a message in the given
// language. Pure and stateless; unknown languages fall back to Russian.
func Classify(message, language string) []Tag {
	lower := strings.ToLower(message)

	var tags []Tag
	if containsAny(lower, keywordsFor(appointmentKeywords, language)) {
		tags = append(tags, TagAppointmentRequest)
	}
	if hasLegalTopic(lower, language) {
		tags = append(tags, TagLegalTopic)
	}
	if containsAny(lower, keywordsFor(contactKeywords, language)) {
		tags = append(tags, TagContactSharing)
	}
	if phonePattern.MatchString(message) || emailPattern.MatchString(message) {
		tags = append(tags, TagContactProvided)
	}
	if len(tags) == 0 {
		tags = append(tags, TagGeneralInquiry)
	}
	return tags
}

// Has reports whether tags contains the given tag.
func Has(tags []Tag, tag Tag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func hasLegalTopic(lower, language string) bool {
	if containsAny(lower, keywordsFor(genericLegalKeywords, language)) {
		return true
	}
	for _, bucket := range categoryBuckets {
		if containsAny(lower, keywordsFor(bucket.keywords, language)) {
			return true
		}
	}
	return false
}

func keywordsFor(table map[string][]string, language string) []string {
	if kws, ok := table[language]; ok {
		return kws
	}
	return table["ru"]
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
