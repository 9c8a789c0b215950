package extract

import "regexp"

// ContactInfo is a partial contact tuple pulled out of free text. Empty
// fields mean nothing was found; extraction is heuristic and false
// negatives are expected.
type ContactInfo struct {
	Name  string
	Phone string
	Email string
}

var (
	phonePattern = regexp.MustCompile(`\+?\d{10,}`)
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

	// A single token is captured; multi-word names are not recognized.
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)меня зовут (\p{L}+)`),
		regexp.MustCompile(`(?i)my name is (\p{L}+)`),
		regexp.MustCompile(`(?i)менин атым (\p{L}+)`),
	}
)

// Contact extracts phone, email and name candidates from a message.
func Contact(message string) ContactInfo {
	info := ContactInfo{
		Phone: phonePattern.FindString(message),
		Email: emailPattern.FindString(message),
	}

	for _, pattern := range namePatterns {
		if m := pattern.FindStringSubmatch(message); m != nil {
			info.Name = m[1]
			break
		}
	}

	return info
}

// Empty reports whether nothing at all was extracted.
func (c ContactInfo) Empty() bool {
	return c.Name == "" && c.Phone == "" && c.Email == ""
}
