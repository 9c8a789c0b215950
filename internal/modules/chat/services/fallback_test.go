package services

import (
	"strings"
	"testing"

	lawyermodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/models"
)

func fallbackLawyer(fee float64) *lawyermodels.Lawyer {
	return &lawyermodels.Lawyer{
		FullName:        "Aida Asanova",
		Email:           "aida@example.com",
		Phone:           "+996555000111",
		ConsultationFee: fee,
	}
}

func TestFallbackReplyIsDeterministic(t *testing.T) {
	lawyer := fallbackLawyer(500)
	first := FallbackReply("Вопрос по договору аренды", "ru", lawyer)
	second := FallbackReply("Вопрос по договору аренды", "ru", lawyer)
	if first != second {
		t.Fatalf("same input must produce the same reply:\n%q\n%q", first, second)
	}
	if first == "" {
		t.Fatalf("fallback reply must not be empty")
	}
}

func TestFallbackReplyTopicBuckets(t *testing.T) {
	lawyer := fallbackLawyer(500)
	tests := []struct {
		name     string
		message  string
		language string
		opening  string
	}{
		{"contract ru", "Хочу расторгнуть договор аренды", "ru", "Вопросы по договорам"},
		{"family ru", "Как подать на развод?", "ru", "Семейные споры"},
		{"labor ru", "Получил уведомление об увольнении", "ru", "Трудовые споры"},
		{"real estate ru", "Покупаю квартиру, что проверить?", "ru", "Сделки с недвижимостью"},
		{"generic ru", "Просто общий вопрос", "ru", "Спасибо за ваш вопрос!"},
		{"contract en", "I need help with a lease agreement", "en", "Contract and rental matters"},
		{"family ky", "Ажырашуу боюнча суроом бар", "ky", "Үй-бүлөлүк талаштар"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := FallbackReply(tt.message, tt.language, lawyer)
			if !strings.HasPrefix(reply, tt.opening) {
				t.Fatalf("reply %q should open with %q", reply, tt.opening)
			}
			if !strings.Contains(reply, lawyer.Phone) || !strings.Contains(reply, lawyer.Email) {
				t.Fatalf("reply must carry the lawyer's contacts: %q", reply)
			}
		})
	}
}

func TestFallbackReplyFeeText(t *testing.T) {
	paid := FallbackReply("вопрос", "ru", fallbackLawyer(1500))
	if !strings.Contains(paid, "1500 сом") {
		t.Fatalf("expected fee in soms, got %q", paid)
	}

	free := FallbackReply("вопрос", "ru", fallbackLawyer(0))
	if !strings.Contains(free, "Первая консультация бесплатно") {
		t.Fatalf("expected free-consultation text, got %q", free)
	}

	english := FallbackReply("question", "en", fallbackLawyer(2000))
	if !strings.Contains(english, "2000 KGS") {
		t.Fatalf("expected fee in KGS for english, got %q", english)
	}
}

func TestFallbackReplyUnknownLanguageFallsBackToRussian(t *testing.T) {
	reply := FallbackReply("вопрос", "de", fallbackLawyer(500))
	if !strings.Contains(reply, "рекомендую обратиться") {
		t.Fatalf("unknown language should fall back to russian, got %q", reply)
	}
}

func TestOfflineReply(t *testing.T) {
	for _, language := range []string{"ru", "ky", "en"} {
		if OfflineReply(language) == "" {
			t.Fatalf("offline reply for %q must not be empty", language)
		}
	}
	if OfflineReply("de") != OfflineReply("ru") {
		t.Fatalf("unknown language should use the russian offline reply")
	}
}
