package intent

import "testing"

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		language string
		want     Category
	}{
		{"divorce", "У меня развод, что делать?", "ru", CategoryFamily},
		{"dismissal", "Меня незаконно уволили с работы", "ru", CategoryLabor},
		{"inheritance", "Как оформить наследство после смерти отца?", "ru", CategoryInheritance},
		{"fine", "Мне выписали штраф, хочу обжаловать", "ru", CategoryAdministrative},
		{"contract", "Арендодатель нарушил договор аренды", "ru", CategoryCivil},
		{"generic legal", "Нужен юрист", "ru", CategoryGeneral},
		{"english divorce", "I'm going through a divorce", "en", CategoryFamily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectCategory(tt.message, tt.language)
			if !ok {
				t.Fatalf("expected a category for %q", tt.message)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDetectCategoryNoLegalTopic(t *testing.T) {
	if _, ok := DetectCategory("Привет, как дела?", "ru"); ok {
		t.Fatalf("expected no category for small talk")
	}
}

func TestDetectCategoryFirstMatchWins(t *testing.T) {
	// Family is checked before civil, so a message with both keyword sets
	// lands in family.
	got, ok := DetectCategory("Развод и раздел имущества по договору", "ru")
	if !ok || got != CategoryFamily {
		t.Fatalf("expected family, got %s (ok=%v)", got, ok)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		category Category
		language string
		want     string
	}{
		{CategoryFamily, "ru", "Семейное право"},
		{CategoryFamily, "en", "Family Law"},
		{CategoryGeneral, "ru", "Общая консультация"},
		{CategoryLabor, "de", "Трудовое право"}, // unknown language falls back to Russian
	}

	for _, tt := range tests {
		if got := DisplayName(tt.category, tt.language); got != tt.want {
			t.Fatalf("DisplayName(%s, %s) = %q, want %q", tt.category, tt.language, got, tt.want)
		}
	}
}
