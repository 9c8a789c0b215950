package services

import (
	"fmt"
	"strings"

	lawyermodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/models"
)

// fallbackTopic is a coarse bucket used only for picking the canned opening
// line of a fallback reply.
type fallbackTopic string

const (
	topicContract   fallbackTopic = "contract"
	topicFamily     fallbackTopic = "family"
	topicLabor      fallbackTopic = "labor"
	topicRealEstate fallbackTopic = "real_estate"
	topicGeneric    fallbackTopic = "generic"
)

var fallbackTopicKeywords = []struct {
	topic    fallbackTopic
	keywords map[string][]string
}{
	{topicContract, map[string][]string{
		"ru": {"договор", "аренд", "контракт"},
		"ky": {"келишим", "ижара"},
		"en": {"contract", "agreement", "rent", "lease"},
	}},
	{topicFamily, map[string][]string{
		"ru": {"развод", "алимент", "брак", "опек"},
		"ky": {"ажыраш", "алимент", "нике"},
		"en": {"divorce", "custody", "alimony", "family"},
	}},
	{topicLabor, map[string][]string{
		"ru": {"увольнен", "труд", "зарплат", "работодател"},
		"ky": {"жумуш", "эмгек", "айлык"},
		"en": {"dismiss", "employ", "salary", "labor", "job"},
	}},
	{topicRealEstate, map[string][]string{
		"ru": {"недвижим", "квартир", "земл", "ипотек"},
		"ky": {"кыймылсыз", "батир", "жер"},
		"en": {"real estate", "property", "apartment", "mortgage", "land"},
	}},
}

var fallbackOpenings = map[fallbackTopic]map[string]string{
	topicContract: {
		"ru": "Вопросы по договорам и аренде требуют внимательного изучения документов.",
		"ky": "Келишим жана ижара маселелери документтерди кылдат изилдөөнү талап кылат.",
		"en": "Contract and rental matters require a careful review of the documents.",
	},
	topicFamily: {
		"ru": "Семейные споры — развод, алименты, опека — решаются с учетом всех обстоятельств дела.",
		"ky": "Үй-бүлөлүк талаштар иштин бардык жагдайларын эске алуу менен чечилет.",
		"en": "Family disputes such as divorce, alimony and custody depend on the full circumstances of the case.",
	},
	topicLabor: {
		"ru": "Трудовые споры — увольнение, невыплата зарплаты — часто имеют короткие сроки обжалования.",
		"ky": "Эмгек талаштары көбүнчө кыска даттануу мөөнөттөрүнө ээ.",
		"en": "Employment disputes such as dismissal or unpaid wages often have short appeal deadlines.",
	},
	topicRealEstate: {
		"ru": "Сделки с недвижимостью требуют проверки документов перед подписанием.",
		"ky": "Кыймылсыз мүлк боюнча бүтүмдөр кол коюудан мурун документтерди текшерүүнү талап кылат.",
		"en": "Real estate transactions require checking the paperwork before anything is signed.",
	},
	topicGeneric: {
		"ru": "Спасибо за ваш вопрос!",
		"ky": "Суроонуз үчүн рахмат!",
		"en": "Thank you for your question!",
	},
}

var fallbackBodies = map[string]string{
	"ru": "Для получения детальной консультации рекомендую обратиться к %s напрямую:\n\n📞 Телефон: %s\n📧 Email: %s\n💰 Стоимость: %s\n\nХотите записаться на встречу?",
	"ky": "Толук консультация алуу үчүн %s менен түз байланышууну сунуштайм:\n\n📞 Телефон: %s\n📧 Email: %s\n💰 Баасы: %s\n\nЖолугушууга жазылгыңыз келеби?",
	"en": "For a detailed consultation I recommend contacting %s directly:\n\n📞 Phone: %s\n📧 Email: %s\n💰 Fee: %s\n\nWould you like to book a meeting?",
}

var offlineFallbacks = map[string]string{
	"ru": "Извините, в данный момент я не могу ответить. Пожалуйста, оставьте ваши контактные данные, и наш юрист свяжется с вами в ближайшее время.",
	"ky": "Кечириңиз, азыр жооп бере албайм. Сураныч, байланыш маалыматыңызды калтырыңыз, биздин юрист сиз менен жакын арада байланышат.",
	"en": "Sorry, I cannot respond at the moment. Please leave your contact information and our lawyer will get back to you soon.",
}

// FallbackReply builds the deterministic local reply used when the AI call
// fails. Pure function of the message text and the lawyer's public contacts.
func FallbackReply(message, language string, lawyer *lawyermodels.Lawyer) string {
	topic := detectFallbackTopic(message, language)

	opening := pickLocalized(fallbackOpenings[topic], language)
	body := pickLocalized(fallbackBodies, language)

	return opening + "\n\n" + fmt.Sprintf(body,
		lawyer.FullName, lawyer.Phone, lawyer.Email, feeText(lawyer.ConsultationFee, language))
}

// OfflineReply is the canned reply used outside office hours when the lawyer
// has not configured an offline message.
func OfflineReply(language string) string {
	return pickLocalized(offlineFallbacks, language)
}

func detectFallbackTopic(message, language string) fallbackTopic {
	lower := strings.ToLower(message)
	for _, entry := range fallbackTopicKeywords {
		keywords, ok := entry.keywords[language]
		if !ok {
			keywords = entry.keywords["ru"]
		}
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return entry.topic
			}
		}
	}
	return topicGeneric
}

func feeText(fee float64, language string) string {
	if fee <= 0 {
		switch language {
		case lawyermodels.LanguageKyrgyz:
			return "Биринчи консультация акысыз"
		case lawyermodels.LanguageEnglish:
			return "First consultation is free"
		default:
			return "Первая консультация бесплатно"
		}
	}
	if language == lawyermodels.LanguageEnglish {
		return fmt.Sprintf("%.0f KGS", fee)
	}
	return fmt.Sprintf("%.0f сом", fee)
}

func pickLocalized(table map[string]string, language string) string {
	if text, ok := table[language]; ok {
		return text
	}
	return table["ru"]
}
