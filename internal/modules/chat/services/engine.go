package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/adylai/lawyer-saas-ai-be/internal/core/extract"
	"github.com/adylai/lawyer-saas-ai-be/internal/core/intent"
	"github.com/adylai/lawyer-saas-ai-be/internal/core/llm"
	"github.com/adylai/lawyer-saas-ai-be/internal/core/notify"
	"github.com/adylai/lawyer-saas-ai-be/internal/core/officehours"
	"github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/models"
	"github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/repositories"
	crmmodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/models"
	crmrepos "github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/repositories"
	lawyermodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/models"
	lawyerrepos "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/repositories"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/apperr"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/utils"
	"github.com/google/uuid"
)

const (
	// contextWindowSize is the number of prior messages handed to the AI,
	// welcome and confirmation messages excluded.
	contextWindowSize = 6

	// minMessagesForSuggestion is how many visitor messages must exist
	// before a scheduling hint in the assistant's reply triggers the
	// contact form on its own.
	minMessagesForSuggestion = 3

	// caseDescriptionLimit caps the derived case description of a lead.
	caseDescriptionLimit = 1000

	defaultConsultationMinutes = 60

	scheduleLayout = "2006-01-02 15:04"
)

// VisitorMeta is the request metadata captured at session start.
type VisitorMeta struct {
	Name      string
	IP        string
	UserAgent string
	Referrer  string
}

// ContactForm describes the contact capture form the widget should render.
type ContactForm struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Fields   []string `json:"fields"`
}

// StartResult is what the widget needs to open a conversation.
type StartResult struct {
	SessionToken uuid.UUID `json:"session_id"`
	Message      string    `json:"message"`
	LawyerName   string    `json:"lawyer_name"`
	Language     string    `json:"language"`
}

// Reply is the outcome of handling one visitor message.
type Reply struct {
	Message              string       `json:"message"`
	ShouldCollectContact bool         `json:"should_collect_contact"`
	ContactForm          *ContactForm `json:"contact_form,omitempty"`
	IsOffline            bool         `json:"is_offline,omitempty"`
	ResponseTimeMS       int          `json:"response_time_ms,omitempty"`
}

// Engine turns inbound visitor messages into assistant replies, updating
// session state and capturing leads as a side effect. All state lives in the
// repositories; the engine itself is stateless and safe for concurrent use.
type Engine struct {
	sessions      repositories.SessionRepo
	messages      repositories.MessageRepo
	configs       repositories.ConfigRepo
	feedback      repositories.FeedbackRepo
	lawyers       lawyerrepos.LawyerRepo
	leads         crmrepos.LeadRepo
	consultations crmrepos.ConsultationRepo
	ai            *llm.Service
	notifier      *notify.Service
}

func NewEngine(
	sessions repositories.SessionRepo,
	messages repositories.MessageRepo,
	configs repositories.ConfigRepo,
	feedback repositories.FeedbackRepo,
	lawyers lawyerrepos.LawyerRepo,
	leads crmrepos.LeadRepo,
	consultations crmrepos.ConsultationRepo,
	ai *llm.Service,
	notifier *notify.Service,
) *Engine {
	return &Engine{
		sessions:      sessions,
		messages:      messages,
		configs:       configs,
		feedback:      feedback,
		lawyers:       lawyers,
		leads:         leads,
		consultations: consultations,
		ai:            ai,
		notifier:      notifier,
	}
}

// Start opens a new session for a lawyer's published assistant and appends
// the welcome greeting. Calling twice produces two independent sessions.
func (e *Engine) Start(ctx context.Context, lawyerSlug string, meta VisitorMeta) (*StartResult, error) {
	lawyer, err := e.lawyers.GetBySlug(lawyerSlug)
	if err != nil {
		return nil, err
	}

	session := &models.ChatSession{
		LawyerID:    lawyer.ID,
		Status:      models.SessionActive,
		Language:    lawyer.PrimaryLanguage,
		VisitorName: strings.TrimSpace(meta.Name),
		VisitorIP:   meta.IP,
		UserAgent:   meta.UserAgent,
		Referrer:    meta.Referrer,
	}
	if session.Language == "" {
		session.Language = lawyermodels.LanguageRussian
	}
	if err := e.sessions.Create(session); err != nil {
		return nil, err
	}

	config, err := e.configs.GetOrCreate(lawyer.ID)
	if err != nil {
		return nil, err
	}

	welcome := config.WelcomeMessage(session.Language, lawyer.FullName)
	if err := e.messages.Append(&models.ChatMessage{
		SessionID: session.ID,
		Role:      models.RoleAssistant,
		Content:   welcome,
		AIModel:   models.ModelSystem,
	}); err != nil {
		return nil, err
	}

	utils.LogInfo("chat session started", map[string]interface{}{
		"lawyer_id":  lawyer.ID.String(),
		"session_id": session.SessionID.String(),
		"language":   session.Language,
	})

	return &StartResult{
		SessionToken: session.SessionID,
		Message:      welcome,
		LawyerName:   lawyer.FullName,
		Language:     session.Language,
	}, nil
}

// HandleMessage processes one visitor message: persists it, classifies
// intent, asks the AI for a reply (or falls back), and decides whether the
// widget should show the contact form. AI failures never surface to the
// caller; the reply is always non-empty.
func (e *Engine) HandleMessage(ctx context.Context, token uuid.UUID, text string) (*Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: message is required", apperr.ErrValidation)
	}

	session, err := e.sessions.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if session.IsTerminal() {
		return nil, fmt.Errorf("%w: session is %s", apperr.ErrPrecondition, session.Status)
	}

	lawyer, err := e.lawyers.GetByID(session.LawyerID)
	if err != nil {
		return nil, err
	}
	config, err := e.configs.GetOrCreate(lawyer.ID)
	if err != nil {
		return nil, err
	}

	// The visitor's message is persisted before anything downstream can
	// fail.
	userMsg := &models.ChatMessage{
		SessionID: session.ID,
		Role:      models.RoleUser,
		Content:   text,
	}
	if err := e.messages.Append(userMsg); err != nil {
		return nil, err
	}

	tags := intent.Classify(text, session.Language)
	if intent.Has(tags, intent.TagAppointmentRequest) {
		session.ConsultationRequested = true
	}
	if session.LegalCategory == "" {
		if category, ok := intent.DetectCategory(text, session.Language); ok {
			session.LegalCategory = intent.DisplayName(category, session.Language)
		}
	}
	if intent.Has(tags, intent.TagContactProvided) {
		e.absorbContact(session, text)
	}
	session.LastActivity = time.Now()
	if err := e.sessions.Update(session); err != nil {
		return nil, err
	}

	// Outside office hours the AI is skipped entirely.
	if config.OfficeHoursEnabled && !e.withinOfficeHours(config.OfficeHours, time.Now()) {
		offline := config.OfflineMessage
		if offline == "" {
			offline = OfflineReply(session.Language)
		}
		if err := e.messages.Append(&models.ChatMessage{
			SessionID: session.ID,
			Role:      models.RoleAssistant,
			Content:   offline,
			AIModel:   models.ModelSystem,
		}); err != nil {
			return nil, err
		}
		return &Reply{Message: offline, IsOffline: true}, nil
	}

	reply := e.completeOrFallback(ctx, session, lawyer, config, userMsg)

	appointmentAsked := intent.Has(tags, intent.TagAppointmentRequest)
	reply.ShouldCollectContact = e.shouldCollectContact(session, config, appointmentAsked, reply.Message)
	if reply.ShouldCollectContact {
		reply.ContactForm = contactFormFor(session.Language, lawyer.FullName)
	}

	return reply, nil
}

// completeOrFallback runs the single bounded AI attempt and degrades to the
// deterministic local reply on any failure.
func (e *Engine) completeOrFallback(ctx context.Context, session *models.ChatSession, lawyer *lawyermodels.Lawyer, config *models.ChatConfiguration, userMsg *models.ChatMessage) *Reply {
	messages, err := e.buildContext(session, lawyer, userMsg)

	var result *llm.Result
	if err == nil {
		result, err = e.ai.Complete(ctx, llm.Request{
			Messages:    messages,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
		})
	}

	if err != nil {
		utils.LogWarn("AI completion failed, using fallback", map[string]interface{}{
			"session_id": session.SessionID.String(),
			"error":      err.Error(),
		})

		fallback := FallbackReply(userMsg.Content, session.Language, lawyer)
		if appendErr := e.messages.Append(&models.ChatMessage{
			SessionID: session.ID,
			Role:      models.RoleAssistant,
			Content:   fallback,
			AIModel:   models.ModelFallback,
		}); appendErr != nil {
			utils.LogError("failed to persist fallback message", appendErr, map[string]interface{}{
				"session_id": session.SessionID.String(),
			})
		}
		return &Reply{Message: fallback}
	}

	latency := result.LatencyMS
	tokens := result.TokensUsed
	if appendErr := e.messages.Append(&models.ChatMessage{
		SessionID:      session.ID,
		Role:           models.RoleAssistant,
		Content:        result.Content,
		AIModel:        e.ai.GetModel(),
		ResponseTimeMS: &latency,
		TokensUsed:     &tokens,
	}); appendErr != nil {
		utils.LogError("failed to persist assistant message", appendErr, map[string]interface{}{
			"session_id": session.SessionID.String(),
		})
	}

	return &Reply{Message: result.Content, ResponseTimeMS: latency}
}

// buildContext assembles the AI message window: system prompt, then the last
// prior messages in chronological order, then the current user message.
func (e *Engine) buildContext(session *models.ChatSession, lawyer *lawyermodels.Lawyer, userMsg *models.ChatMessage) ([]llm.Message, error) {
	profile := llm.LawyerProfile{
		FullName:        lawyer.FullName,
		Email:           lawyer.Email,
		Phone:           lawyer.Phone,
		Specialties:     lawyer.Specialties,
		YearsExperience: lawyer.YearsExperience,
		ConsultationFee: lawyer.ConsultationFee,
	}
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: llm.BuildSystemPrompt(profile, session.Language)},
	}

	// Fetch one extra: the just-persisted user message comes back from the
	// store and is skipped here, then re-appended last.
	recent, err := e.messages.Recent(session.ID, contextWindowSize+1)
	if err != nil {
		return nil, err
	}
	prior := make([]models.ChatMessage, 0, len(recent))
	for _, msg := range recent {
		if msg.ID != userMsg.ID {
			prior = append(prior, msg)
		}
	}
	if len(prior) > contextWindowSize {
		prior = prior[len(prior)-contextWindowSize:]
	}

	for _, msg := range prior {
		switch msg.Role {
		case models.RoleUser:
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: msg.Content})
		case models.RoleAssistant:
			messages = append(messages, llm.Message{Role: llm.RoleAssistant, Content: msg.Content})
		}
	}

	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMsg.Content})
	return messages, nil
}

// absorbContact applies heuristic extraction with first-write-wins on every
// visitor field.
func (e *Engine) absorbContact(session *models.ChatSession, text string) {
	info := extract.Contact(text)
	if info.Empty() {
		return
	}
	if session.VisitorPhone == "" && info.Phone != "" {
		session.VisitorPhone = info.Phone
	}
	if session.VisitorEmail == "" && info.Email != "" {
		session.VisitorEmail = info.Email
	}
	if session.VisitorName == "" && info.Name != "" {
		session.VisitorName = info.Name
	}
}

func (e *Engine) shouldCollectContact(session *models.ChatSession, config *models.ChatConfiguration, appointmentAsked bool, assistantText string) bool {
	if !config.CollectContactInfo || session.VisitorPhone != "" {
		return false
	}
	if appointmentAsked {
		return true
	}

	userCount, err := e.messages.CountByRole(session.ID, models.RoleUser)
	if err != nil {
		return false
	}
	return userCount >= minMessagesForSuggestion &&
		containsSchedulingMarker(assistantText, session.Language)
}

func (e *Engine) withinOfficeHours(raw []byte, now time.Time) bool {
	if len(raw) == 0 {
		return true
	}
	var schedule officehours.WeeklySchedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		utils.LogWarn("unreadable office hours schedule, treating as open", map[string]interface{}{
			"error": err.Error(),
		})
		return true
	}
	return officehours.IsOpen(schedule, now)
}

var schedulingMarkers = map[string][]string{
	"ru": {"записаться", "встреч", "консультаци"},
	"ky": {"жазыл", "жолугуш", "консультация"},
	"en": {"appointment", "schedule", "meeting", "consultation"},
}

func containsSchedulingMarker(text, language string) bool {
	markers, ok := schedulingMarkers[language]
	if !ok {
		markers = schedulingMarkers["ru"]
	}
	lower := strings.ToLower(text)
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func contactFormFor(language, lawyerName string) *ContactForm {
	form := &ContactForm{Fields: []string{"name", "phone", "email"}}
	switch language {
	case lawyermodels.LanguageKyrgyz:
		form.Title = "Консультацияга жазылуу"
		form.Subtitle = fmt.Sprintf("Байланыш маалыматыңызды калтырыңыз, %s сиз менен байланышат", lawyerName)
	case lawyermodels.LanguageEnglish:
		form.Title = "Book a consultation"
		form.Subtitle = fmt.Sprintf("Leave your contact details and %s will get back to you", lawyerName)
	default:
		form.Title = "Записаться на консультацию"
		form.Subtitle = fmt.Sprintf("Оставьте ваши контакты, и %s свяжется с вами", lawyerName)
	}
	return form
}

// SubmitContact stores the explicitly submitted contact details, creates a
// lead and appends a localized confirmation. Unlike extraction, an explicit
// submission always overwrites the stored visitor fields.
func (e *Engine) SubmitContact(ctx context.Context, token uuid.UUID, name, phone, email string) (*crmmodels.Lead, string, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)
	if name == "" || phone == "" {
		return nil, "", fmt.Errorf("%w: name and phone are required", apperr.ErrValidation)
	}

	session, err := e.sessions.GetByToken(token)
	if err != nil {
		return nil, "", err
	}
	lawyer, err := e.lawyers.GetByID(session.LawyerID)
	if err != nil {
		return nil, "", err
	}

	session.VisitorName = name
	session.VisitorPhone = phone
	session.VisitorEmail = email
	session.ConsultationRequested = true
	session.LastActivity = time.Now()
	if err := e.sessions.Update(session); err != nil {
		return nil, "", err
	}

	lead := &crmmodels.Lead{
		LawyerID:        lawyer.ID,
		Name:            name,
		Phone:           phone,
		Email:           email,
		LegalCategory:   defaultLeadCategory(session.Language),
		CaseDescription: fmt.Sprintf("Запрос на консультацию через чат-бот. Сессия: %s", session.SessionID),
		Source:          crmmodels.SourceWebsiteChat,
		Status:          crmmodels.LeadStatusNew,
		Priority:        crmmodels.PriorityMedium,
		SessionRef:      &session.ID,
		IPAddress:       session.VisitorIP,
		UserAgent:       session.UserAgent,
		Referrer:        session.Referrer,
	}
	if err := e.leads.Create(lead); err != nil {
		return nil, "", err
	}

	confirmation := contactConfirmation(session.Language, name, phone, email, lawyer.FullName)
	if err := e.messages.Append(&models.ChatMessage{
		SessionID: session.ID,
		Role:      models.RoleAssistant,
		Content:   confirmation,
		AIModel:   models.ModelSystem,
	}); err != nil {
		return nil, "", err
	}

	e.notifier.NewLeadAlert(lawyer.Email, lawyer.FullName, name, phone, lead.LegalCategory)

	utils.LogInfo("lead captured from chat", map[string]interface{}{
		"lawyer_id":  lawyer.ID.String(),
		"session_id": session.SessionID.String(),
		"lead_id":    lead.ID.String(),
	})

	return lead, confirmation, nil
}

// ScheduleAppointment books a consultation for a session that already has
// contact details on file. Lead identity is deduplicated here by
// (lawyer, phone), unlike SubmitContact which always creates a fresh lead.
func (e *Engine) ScheduleAppointment(ctx context.Context, token uuid.UUID, date, clock, consultationType string) (*crmmodels.Consultation, string, error) {
	session, err := e.sessions.GetByToken(token)
	if err != nil {
		return nil, "", err
	}
	if session.VisitorName == "" || session.VisitorPhone == "" {
		return nil, "", fmt.Errorf("%w: contact details must be collected before scheduling", apperr.ErrPrecondition)
	}

	when, err := time.ParseInLocation(scheduleLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(clock), time.Local)
	if err != nil {
		return nil, "", fmt.Errorf("%w: date and time must be YYYY-MM-DD HH:MM", apperr.ErrValidation)
	}

	switch consultationType {
	case "":
		consultationType = crmmodels.ConsultationFree
	case crmmodels.ConsultationFree, crmmodels.ConsultationPaid,
		crmmodels.ConsultationFollowUp, crmmodels.ConsultationEmergency:
	default:
		return nil, "", fmt.Errorf("%w: unknown consultation type %q", apperr.ErrValidation, consultationType)
	}

	lawyer, err := e.lawyers.GetByID(session.LawyerID)
	if err != nil {
		return nil, "", err
	}

	category := session.LegalCategory
	if category == "" {
		category = defaultLeadCategory(session.Language)
	}

	lead, created, err := e.leads.GetOrCreateByPhone(&crmmodels.Lead{
		LawyerID:        lawyer.ID,
		Name:            session.VisitorName,
		Phone:           session.VisitorPhone,
		Email:           session.VisitorEmail,
		LegalCategory:   category,
		CaseDescription: fmt.Sprintf("Запись на консультацию через чат-бот. Сессия: %s", session.SessionID),
		Source:          crmmodels.SourceChatbot,
		Status:          crmmodels.LeadStatusNew,
		Priority:        crmmodels.PriorityMedium,
		SessionRef:      &session.ID,
		IPAddress:       session.VisitorIP,
		UserAgent:       session.UserAgent,
		Referrer:        session.Referrer,
	})
	if err != nil {
		return nil, "", err
	}

	var fee float64
	if consultationType == crmmodels.ConsultationPaid || consultationType == crmmodels.ConsultationEmergency {
		fee = lawyer.ConsultationFee
	}
	consultation := &crmmodels.Consultation{
		LeadID:           lead.ID,
		LawyerID:         lawyer.ID,
		ScheduledTime:    when,
		DurationMinutes:  defaultConsultationMinutes,
		ConsultationType: consultationType,
		Status:           crmmodels.ConsultationScheduled,
		Fee:              fee,
		MeetingMethod:    crmmodels.MeetingInPerson,
	}
	if err := e.consultations.Create(consultation); err != nil {
		return nil, "", err
	}

	session.ConsultationRequested = true
	session.LastActivity = time.Now()
	if err := e.sessions.Update(session); err != nil {
		return nil, "", err
	}

	confirmation := scheduleConfirmation(session.Language, session.VisitorName, when, category, lawyer.FullName)
	if err := e.messages.Append(&models.ChatMessage{
		SessionID: session.ID,
		Role:      models.RoleAssistant,
		Content:   confirmation,
		AIModel:   models.ModelSystem,
	}); err != nil {
		return nil, "", err
	}

	e.notifier.ConsultationAlert(lawyer.Email, lawyer.FullName, session.VisitorName, session.VisitorPhone, when.Format(scheduleLayout))

	utils.LogInfo("consultation scheduled from chat", map[string]interface{}{
		"lawyer_id":       lawyer.ID.String(),
		"session_id":      session.SessionID.String(),
		"lead_id":         lead.ID.String(),
		"consultation_id": consultation.ID.String(),
		"lead_reused":     !created,
	})

	return consultation, confirmation, nil
}

// End closes a session and derives a lead from it once, if it qualifies.
// Ending an already terminal session is a no-op.
func (e *Engine) End(ctx context.Context, token uuid.UUID) error {
	session, err := e.sessions.GetByToken(token)
	if err != nil {
		return err
	}
	if session.IsTerminal() {
		return nil
	}

	now := time.Now()
	session.Status = models.SessionEnded
	session.EndedAt = &now
	session.LastActivity = now
	if err := e.sessions.Update(session); err != nil {
		return err
	}

	if !session.IsLead() {
		return nil
	}
	exists, err := e.leads.HasForSession(session.ID)
	if err != nil || exists {
		return err
	}

	description, err := e.messages.ConcatContentByRole(session.ID, models.RoleUser)
	if err != nil {
		return err
	}
	if runes := []rune(description); len(runes) > caseDescriptionLimit {
		description = string(runes[:caseDescriptionLimit])
	}

	name := session.VisitorName
	if name == "" {
		name = fmt.Sprintf("Chat Visitor (%s)", session.VisitorIP)
	}
	lead := &crmmodels.Lead{
		LawyerID:        session.LawyerID,
		Name:            name,
		Phone:           session.VisitorPhone,
		Email:           session.VisitorEmail,
		LegalCategory:   session.LegalCategory,
		CaseDescription: description,
		Source:          crmmodels.SourceChatbot,
		Status:          crmmodels.LeadStatusNew,
		Priority:        crmmodels.PriorityMedium,
		SessionRef:      &session.ID,
		IPAddress:       session.VisitorIP,
		UserAgent:       session.UserAgent,
		Referrer:        session.Referrer,
	}
	if err := e.leads.Create(lead); err != nil {
		return err
	}

	utils.LogInfo("lead derived from ended session", map[string]interface{}{
		"session_id": session.SessionID.String(),
		"lead_id":    lead.ID.String(),
	})
	return nil
}

// HistoryEntry is one message as exposed to the widget.
type HistoryEntry struct {
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionInfo accompanies the history payload.
type SessionInfo struct {
	LawyerName string `json:"lawyer_name"`
	Status     string `json:"status"`
	Language   string `json:"language"`
}

// History returns the full ordered message log of a session.
func (e *Engine) History(ctx context.Context, token uuid.UUID) ([]HistoryEntry, *SessionInfo, error) {
	session, err := e.sessions.GetByToken(token)
	if err != nil {
		return nil, nil, err
	}
	lawyer, err := e.lawyers.GetByID(session.LawyerID)
	if err != nil {
		return nil, nil, err
	}

	messages, err := e.messages.ListBySession(session.ID)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]HistoryEntry, 0, len(messages))
	for _, msg := range messages {
		entries = append(entries, HistoryEntry{
			Type:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.CreatedAt,
		})
	}

	info := &SessionInfo{
		LawyerName: lawyer.FullName,
		Status:     session.Status,
		Language:   session.Language,
	}
	return entries, info, nil
}

// SubmitFeedback records the visitor's rating for a finished conversation.
// At most one feedback row per session.
func (e *Engine) SubmitFeedback(ctx context.Context, token uuid.UUID, rating int, comment string, wouldRecommend bool) (*models.ChatFeedback, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", apperr.ErrValidation)
	}

	session, err := e.sessions.GetByToken(token)
	if err != nil {
		return nil, err
	}

	exists, err := e.feedback.ExistsForSession(session.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: feedback already submitted for this session", apperr.ErrPrecondition)
	}

	feedback := &models.ChatFeedback{
		SessionID:      session.ID,
		Rating:         rating,
		Comment:        comment,
		WouldRecommend: wouldRecommend,
	}
	if err := e.feedback.Create(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func defaultLeadCategory(language string) string {
	switch language {
	case lawyermodels.LanguageKyrgyz:
		return "Жалпы консультация"
	case lawyermodels.LanguageEnglish:
		return "General consultation"
	default:
		return "Общая консультация"
	}
}

func contactConfirmation(language, name, phone, email, lawyerName string) string {
	switch language {
	case lawyermodels.LanguageKyrgyz:
		return fmt.Sprintf("Мыкты! Байланыш маалыматыңыз сакталды.\n\n👤 Аты: %s\n📞 Телефон: %s\n📧 Email: %s\n\n%s сиз менен жакын арада байланышат.\n\nКайрылганыңыз үчүн рахмат! 🙏", name, phone, email, lawyerName)
	case lawyermodels.LanguageEnglish:
		return fmt.Sprintf("Great! Your contact details are saved.\n\n👤 Name: %s\n📞 Phone: %s\n📧 Email: %s\n\n%s will get back to you shortly to arrange a meeting.\n\nThank you for reaching out! 🙏", name, phone, email, lawyerName)
	default:
		return fmt.Sprintf("Отлично! Ваши контакты сохранены.\n\n👤 Имя: %s\n📞 Телефон: %s\n📧 Email: %s\n\n%s свяжется с вами в ближайшее время для назначения встречи.\n\nОбычно мы отвечаем в течение 1-2 часов в рабочее время (9:00-18:00).\n\nСпасибо за обращение! 🙏", name, phone, email, lawyerName)
	}
}

func scheduleConfirmation(language, name string, when time.Time, category, lawyerName string) string {
	formatted := when.Format(scheduleLayout)
	switch language {
	case lawyermodels.LanguageKyrgyz:
		return fmt.Sprintf("Консультация белгиленди!\n\n📅 Убактысы: %s\n👤 Кардар: %s\n📋 Багыты: %s\n\n%s жолугушууну ырастоо үчүн сиз менен байланышат.", formatted, name, category, lawyerName)
	case lawyermodels.LanguageEnglish:
		return fmt.Sprintf("Your consultation is booked!\n\n📅 Time: %s\n👤 Client: %s\n📋 Topic: %s\n\n%s will contact you to confirm the meeting.", formatted, name, category, lawyerName)
	default:
		return fmt.Sprintf("Консультация назначена!\n\n📅 Время: %s\n👤 Клиент: %s\n📋 Направление: %s\n\n%s свяжется с вами для подтверждения встречи.", formatted, name, category, lawyerName)
	}
}
