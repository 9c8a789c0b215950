package services

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Aida Asanova", "aida-asanova"},
		{"  Bakyt   Toktogulov  ", "bakyt-toktogulov"},
		{"ADVOKAT.KG", "advokatkg"},
		{"Aida--Asanova", "aida-asanova"},
		{"-aida-", "aida"},
		{"Айгуль", ""}, // non-latin letters are stripped
		{"law-office-2", "law-office-2"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
