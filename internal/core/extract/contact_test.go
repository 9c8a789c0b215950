package extract

import "testing"

func TestContactPhone(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"plus prefixed", "Мой номер +996700123456", "+996700123456"},
		{"bare digits", "Звоните 0700123456789", "0700123456789"},
		{"too short", "Мой код 12345", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contact(tt.message).Phone; got != tt.want {
				t.Fatalf("Phone = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContactEmail(t *testing.T) {
	info := Contact("Пишите на ana@example.com пожалуйста")
	if info.Email != "ana@example.com" {
		t.Fatalf("Email = %q, want ana@example.com", info.Email)
	}
}

func TestContactName(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"russian", "Здравствуйте, меня зовут Анара", "Анара"},
		{"english", "Hello, my name is Ana", "Ana"},
		{"kyrgyz", "Менин атым Айбек", "Айбек"},
		{"case insensitive", "МЕНЯ ЗОВУТ Болот", "Болот"},
		{"single token only", "my name is Ana Maria", "Ana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contact(tt.message).Name; got != tt.want {
				t.Fatalf("Name = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContactEmpty(t *testing.T) {
	if !Contact("Привет, как дела?").Empty() {
		t.Fatalf("expected empty extraction for small talk")
	}
	if Contact("меня зовут Ана").Empty() {
		t.Fatalf("expected non-empty extraction")
	}
}
