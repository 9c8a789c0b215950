package intent

import "testing"

func TestClassifyAppointmentRequest(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		language string
	}{
		{"russian", "Хочу записаться на встречу", "ru"},
		{"kyrgyz", "Жолугушууга жазылгым келет", "ky"},
		{"english", "I want to book an appointment", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := Classify(tt.message, tt.language)
			if !Has(tags, TagAppointmentRequest) {
				t.Fatalf("expected appointment_request tag, got %v", tags)
			}
		})
	}
}

func TestClassifyLegalTopic(t *testing.T) {
	tags := Classify("У меня развод, что делать?", "ru")
	if !Has(tags, TagLegalTopic) {
		t.Fatalf("expected legal_topic tag, got %v", tags)
	}
	if Has(tags, TagAppointmentRequest) {
		t.Fatalf("did not expect appointment_request tag, got %v", tags)
	}
}

func TestClassifyContactProvided(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"phone", "Мой номер +996700123456"},
		{"email", "Пишите на ana@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := Classify(tt.message, "ru")
			if !Has(tags, TagContactProvided) {
				t.Fatalf("expected contact_provided tag, got %v", tags)
			}
		})
	}
}

func TestClassifyGeneralInquiryWhenNothingMatches(t *testing.T) {
	tags := Classify("Привет, как дела?", "ru")
	if len(tags) != 1 || tags[0] != TagGeneralInquiry {
		t.Fatalf("expected only general_inquiry, got %v", tags)
	}
}

func TestClassifyMultipleTagsCoOccur(t *testing.T) {
	tags := Classify("Хочу консультацию по разводу, мой телефон +996700123456", "ru")
	for _, want := range []Tag{TagAppointmentRequest, TagLegalTopic, TagContactProvided} {
		if !Has(tags, want) {
			t.Fatalf("expected %s in %v", want, tags)
		}
	}
}

func TestClassifyUnknownLanguageFallsBackToRussian(t *testing.T) {
	tags := Classify("Хочу записаться", "de")
	if !Has(tags, TagAppointmentRequest) {
		t.Fatalf("expected russian keyword table fallback, got %v", tags)
	}
}
