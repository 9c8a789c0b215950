package models

import (
	"strings"
	"testing"
)

func TestWelcomeMessagePrefersConfiguredText(t *testing.T) {
	config := ChatConfiguration{
		WelcomeMessageRU: "Добро пожаловать в чат!",
	}
	if got := config.WelcomeMessage("ru", "Aida Asanova"); got != "Добро пожаловать в чат!" {
		t.Fatalf("configured welcome should win, got %q", got)
	}
}

func TestWelcomeMessageDefaultsPerLanguage(t *testing.T) {
	var config ChatConfiguration
	tests := []struct {
		language string
		contains string
	}{
		{"ru", "Я помощник юриста Aida Asanova"},
		{"ky", "юрист Aida Asanova"},
		{"en", "Aida Asanova's legal assistant"},
		{"de", "Я помощник юриста Aida Asanova"}, // unknown falls back to russian
	}
	for _, tt := range tests {
		got := config.WelcomeMessage(tt.language, "Aida Asanova")
		if !strings.Contains(got, tt.contains) {
			t.Fatalf("welcome for %q = %q, want substring %q", tt.language, got, tt.contains)
		}
	}
}

func TestWelcomeMessageFallsBackWhenLanguageVariantMissing(t *testing.T) {
	config := ChatConfiguration{
		WelcomeMessageRU: "Добро пожаловать!",
	}
	// EN variant is not configured, so the built-in english default is used.
	got := config.WelcomeMessage("en", "Aida")
	if !strings.Contains(got, "legal assistant") {
		t.Fatalf("missing EN variant should use the english default, got %q", got)
	}
}
