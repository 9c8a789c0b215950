package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/adylai/lawyer-saas-ai-be/internal/core/llm"
	"github.com/adylai/lawyer-saas-ai-be/internal/core/notify"
	"github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/models"
	crmmodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/models"
	crmrepos "github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/repositories"
	lawyermodels "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/models"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/apperr"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ---- fakes -------------------------------------------------------------

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*models.ChatSession // keyed by token
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*models.ChatSession)}
}

func (r *fakeSessionRepo) Create(s *models.ChatSession) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SessionID == uuid.Nil {
		s.SessionID = uuid.New()
	}
	s.StartedAt = time.Now()
	r.sessions[s.SessionID] = s
	return nil
}

func (r *fakeSessionRepo) Update(s *models.ChatSession) error {
	r.sessions[s.SessionID] = s
	return nil
}

func (r *fakeSessionRepo) GetByToken(token uuid.UUID) (*models.ChatSession, error) {
	s, ok := r.sessions[token]
	if !ok {
		return nil, fmt.Errorf("%w: session %s", apperr.ErrNotFound, token)
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSessionRepo) ListByLawyer(uuid.UUID, int, int) ([]models.ChatSession, int64, error) {
	return nil, 0, nil
}
func (r *fakeSessionRepo) TouchActivity(uuid.UUID, time.Time) error { return nil }
func (r *fakeSessionRepo) CountByLawyerBetween(uuid.UUID, time.Time, time.Time) (int64, error) {
	return 0, nil
}
func (r *fakeSessionRepo) CountEndedByLawyerBetween(uuid.UUID, time.Time, time.Time) (int64, error) {
	return 0, nil
}
func (r *fakeSessionRepo) CountConsultationRequestsBetween(uuid.UUID, time.Time, time.Time) (int64, error) {
	return 0, nil
}

type fakeMessageRepo struct {
	messages []models.ChatMessage
	clock    time.Time
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{clock: time.Now()}
}

func (r *fakeMessageRepo) Append(m *models.ChatMessage) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.clock = r.clock.Add(time.Second)
	m.CreatedAt = r.clock
	r.messages = append(r.messages, *m)
	return nil
}

func (r *fakeMessageRepo) ListBySession(sessionID uuid.UUID) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range r.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) Recent(sessionID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range r.messages {
		if m.SessionID == sessionID && m.AIModel != models.ModelSystem {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (r *fakeMessageRepo) CountByRole(sessionID uuid.UUID, role string) (int64, error) {
	var count int64
	for _, m := range r.messages {
		if m.SessionID == sessionID && m.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *fakeMessageRepo) LastByRole(sessionID uuid.UUID, role string) (*models.ChatMessage, error) {
	for i := len(r.messages) - 1; i >= 0; i-- {
		if r.messages[i].SessionID == sessionID && r.messages[i].Role == role {
			m := r.messages[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (r *fakeMessageRepo) ConcatContentByRole(sessionID uuid.UUID, role string) (string, error) {
	var parts []string
	for _, m := range r.messages {
		if m.SessionID == sessionID && m.Role == role {
			parts = append(parts, m.Content)
		}
	}
	return strings.Join(parts, " "), nil
}

func (r *fakeMessageRepo) AvgResponseTimeBetween(uuid.UUID, time.Time, time.Time) (float64, error) {
	return 0, nil
}
func (r *fakeMessageRepo) CountBySessionsBetween(uuid.UUID, time.Time, time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeMessageRepo) bySession(sessionID uuid.UUID, role string) []models.ChatMessage {
	var out []models.ChatMessage
	for _, m := range r.messages {
		if m.SessionID == sessionID && (role == "" || m.Role == role) {
			out = append(out, m)
		}
	}
	return out
}

type fakeConfigRepo struct {
	configs map[uuid.UUID]*models.ChatConfiguration
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: make(map[uuid.UUID]*models.ChatConfiguration)}
}

func (r *fakeConfigRepo) GetOrCreate(lawyerID uuid.UUID) (*models.ChatConfiguration, error) {
	if c, ok := r.configs[lawyerID]; ok {
		copied := *c
		return &copied, nil
	}
	c := &models.ChatConfiguration{
		ID:                      uuid.New(),
		LawyerID:                lawyerID,
		AIModel:                 "deepseek-chat",
		MaxTokens:               300,
		Temperature:             0.7,
		CollectContactInfo:      true,
		AutoSuggestConsultation: true,
		ShowDisclaimer:          true,
	}
	r.configs[lawyerID] = c
	copied := *c
	return &copied, nil
}

func (r *fakeConfigRepo) Update(c *models.ChatConfiguration) error {
	r.configs[c.LawyerID] = c
	return nil
}

type fakeFeedbackRepo struct {
	feedback []models.ChatFeedback
}

func (r *fakeFeedbackRepo) Create(f *models.ChatFeedback) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.feedback = append(r.feedback, *f)
	return nil
}

func (r *fakeFeedbackRepo) ExistsForSession(sessionID uuid.UUID) (bool, error) {
	for _, f := range r.feedback {
		if f.SessionID == sessionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFeedbackRepo) AvgRatingBetween(uuid.UUID, time.Time, time.Time) (float64, int64, error) {
	return 0, 0, nil
}

type fakeLawyerRepo struct {
	lawyers map[uuid.UUID]*lawyermodels.Lawyer
}

func newFakeLawyerRepo(lawyers ...*lawyermodels.Lawyer) *fakeLawyerRepo {
	r := &fakeLawyerRepo{lawyers: make(map[uuid.UUID]*lawyermodels.Lawyer)}
	for _, l := range lawyers {
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		r.lawyers[l.ID] = l
	}
	return r
}

func (r *fakeLawyerRepo) Create(l *lawyermodels.Lawyer) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	r.lawyers[l.ID] = l
	return nil
}

func (r *fakeLawyerRepo) Update(l *lawyermodels.Lawyer) error {
	r.lawyers[l.ID] = l
	return nil
}

func (r *fakeLawyerRepo) GetByID(id uuid.UUID) (*lawyermodels.Lawyer, error) {
	l, ok := r.lawyers[id]
	if !ok {
		return nil, fmt.Errorf("%w: lawyer %s", apperr.ErrNotFound, id)
	}
	return l, nil
}

func (r *fakeLawyerRepo) GetBySlug(slug string) (*lawyermodels.Lawyer, error) {
	for _, l := range r.lawyers {
		if l.DomainSlug == slug {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: lawyer %q", apperr.ErrNotFound, slug)
}

func (r *fakeLawyerRepo) SlugExists(slug string) (bool, error) {
	_, err := r.GetBySlug(slug)
	return err == nil, nil
}

func (r *fakeLawyerRepo) ListPublished() ([]lawyermodels.Lawyer, error) { return nil, nil }
func (r *fakeLawyerRepo) ListAll() ([]lawyermodels.Lawyer, error)      { return nil, nil }

type fakeLeadRepo struct {
	leads []crmmodels.Lead
}

func (r *fakeLeadRepo) Create(l *crmmodels.Lead) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	r.leads = append(r.leads, *l)
	return nil
}

func (r *fakeLeadRepo) Update(l *crmmodels.Lead) error {
	for i := range r.leads {
		if r.leads[i].ID == l.ID {
			r.leads[i] = *l
		}
	}
	return nil
}

func (r *fakeLeadRepo) GetByID(lawyerID, id uuid.UUID) (*crmmodels.Lead, error) {
	for _, l := range r.leads {
		if l.ID == id && l.LawyerID == lawyerID {
			copied := l
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: lead %s", apperr.ErrNotFound, id)
}

func (r *fakeLeadRepo) GetOrCreateByPhone(lead *crmmodels.Lead) (*crmmodels.Lead, bool, error) {
	for _, l := range r.leads {
		if l.LawyerID == lead.LawyerID && l.Phone == lead.Phone {
			copied := l
			return &copied, false, nil
		}
	}
	if err := r.Create(lead); err != nil {
		return nil, false, err
	}
	return lead, true, nil
}

func (r *fakeLeadRepo) HasForSession(sessionRef uuid.UUID) (bool, error) {
	for _, l := range r.leads {
		if l.SessionRef != nil && *l.SessionRef == sessionRef {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLeadRepo) List(uuid.UUID, crmrepos.LeadFilter) ([]crmmodels.Lead, int64, error) {
	return nil, 0, nil
}
func (r *fakeLeadRepo) CountByLawyerBetween(uuid.UUID, time.Time, time.Time) (int64, error) {
	return 0, nil
}
func (r *fakeLeadRepo) CountByStatusBetween(uuid.UUID, string, time.Time, time.Time) (int64, error) {
	return 0, nil
}
func (r *fakeLeadRepo) SourceCountsBetween(uuid.UUID, time.Time, time.Time) (map[string]int64, error) {
	return nil, nil
}

type fakeConsultationRepo struct {
	consultations []crmmodels.Consultation
}

func (r *fakeConsultationRepo) Create(c *crmmodels.Consultation) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.consultations = append(r.consultations, *c)
	return nil
}

func (r *fakeConsultationRepo) Update(c *crmmodels.Consultation) error { return nil }

func (r *fakeConsultationRepo) GetByID(lawyerID, id uuid.UUID) (*crmmodels.Consultation, error) {
	for _, c := range r.consultations {
		if c.ID == id && c.LawyerID == lawyerID {
			copied := c
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: consultation %s", apperr.ErrNotFound, id)
}

func (r *fakeConsultationRepo) List(uuid.UUID, crmrepos.ConsultationFilter) ([]crmmodels.Consultation, int64, error) {
	return nil, 0, nil
}
func (r *fakeConsultationRepo) ListByLead(uuid.UUID) ([]crmmodels.Consultation, error) {
	return nil, nil
}

// fakeProvider is a scripted AI provider.
type fakeProvider struct {
	response string
	err      error
	requests []llm.Request
}

func (p *fakeProvider) Complete(ctx context.Context, req llm.Request) (*llm.Completion, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	return &llm.Completion{Content: p.response, TokensUsed: 42}, nil
}

func (p *fakeProvider) GetProviderName() string { return "fake" }
func (p *fakeProvider) GetModel() string        { return "fake-model" }

// ---- harness -----------------------------------------------------------

type engineFixture struct {
	engine        *Engine
	lawyer        *lawyermodels.Lawyer
	sessions      *fakeSessionRepo
	messages      *fakeMessageRepo
	configs       *fakeConfigRepo
	feedback      *fakeFeedbackRepo
	leads         *fakeLeadRepo
	consultations *fakeConsultationRepo
	provider      *fakeProvider
}

func newEngineFixture(provider *fakeProvider) *engineFixture {
	lawyer := &lawyermodels.Lawyer{
		ID:              uuid.New(),
		FullName:        "Aida Asanova",
		Email:           "aida@example.com",
		Phone:           "+996555000111",
		Specialties:     []string{"Семейное право"},
		YearsExperience: 10,
		ConsultationFee: 500,
		PrimaryLanguage: "ru",
		DomainSlug:      "aida",
	}

	f := &engineFixture{
		lawyer:        lawyer,
		sessions:      newFakeSessionRepo(),
		messages:      newFakeMessageRepo(),
		configs:       newFakeConfigRepo(),
		feedback:      &fakeFeedbackRepo{},
		leads:         &fakeLeadRepo{},
		consultations: &fakeConsultationRepo{},
		provider:      provider,
	}
	f.engine = NewEngine(
		f.sessions, f.messages, f.configs, f.feedback,
		newFakeLawyerRepo(lawyer), f.leads, f.consultations,
		llm.NewServiceWithProvider(provider),
		notify.NewService(nil),
	)
	return f
}

func (f *engineFixture) start(t *testing.T) *StartResult {
	t.Helper()
	result, err := f.engine.Start(context.Background(), "aida", VisitorMeta{IP: "10.0.0.1"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return result
}

// ---- tests -------------------------------------------------------------

func TestStartAppendsWelcome(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "ok"})
	result := f.start(t)

	if result.Message == "" {
		t.Fatalf("expected a welcome message")
	}
	if !strings.Contains(result.Message, "Aida Asanova") {
		t.Fatalf("welcome should mention the lawyer, got %q", result.Message)
	}
	if result.Language != "ru" {
		t.Fatalf("language = %q, want ru", result.Language)
	}

	session, _ := f.sessions.GetByToken(result.SessionToken)
	welcome := f.messages.bySession(session.ID, models.RoleAssistant)
	if len(welcome) != 1 || welcome[0].AIModel != models.ModelSystem {
		t.Fatalf("expected one system-tagged welcome message, got %+v", welcome)
	}
}

func TestStartTwiceCreatesIndependentSessions(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "ok"})
	first := f.start(t)
	second := f.start(t)
	if first.SessionToken == second.SessionToken {
		t.Fatalf("expected two distinct sessions")
	}
}

func TestHandleMessageAppendsExactlyOneUserAndOneAssistant(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "Могу помочь с этим вопросом."})
	result := f.start(t)
	session, _ := f.sessions.GetByToken(result.SessionToken)

	before := len(f.messages.bySession(session.ID, ""))
	if _, err := f.engine.HandleMessage(context.Background(), result.SessionToken, "Добрый день"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}

	users := f.messages.bySession(session.ID, models.RoleUser)
	assistants := f.messages.bySession(session.ID, models.RoleAssistant)
	total := len(f.messages.bySession(session.ID, ""))
	if len(users) != 1 {
		t.Fatalf("expected exactly one user message, got %d", len(users))
	}
	// welcome plus the new reply
	if len(assistants) != 2 {
		t.Fatalf("expected welcome plus one reply, got %d assistant messages", len(assistants))
	}
	if total != before+2 {
		t.Fatalf("expected exactly two new messages, got %d", total-before)
	}
}

func TestHandleMessageEmptyTextIsValidationError(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "ok"})
	result := f.start(t)

	_, err := f.engine.HandleMessage(context.Background(), result.SessionToken, "   ")
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHandleMessageUnknownSessionCreatesNothing(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "ok"})

	_, err := f.engine.HandleMessage(context.Background(), uuid.New(), "Привет")
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if len(f.messages.messages) != 0 {
		t.Fatalf("expected no messages persisted, got %d", len(f.messages.messages))
	}
}

func TestHandleMessageFallbackIsDeterministicAndTagged(t *testing.T) {
	providerErr := errors.New("boom")
	f := newEngineFixture(&fakeProvider{err: providerErr})
	result := f.start(t)
	session, _ := f.sessions.GetByToken(result.SessionToken)

	reply, err := f.engine.HandleMessage(context.Background(), result.SessionToken, "Вопрос по договору аренды")
	if err != nil {
		t.Fatalf("AI failure must not surface: %v", err)
	}
	if reply.Message == "" {
		t.Fatalf("fallback reply must be non-empty")
	}

	want := FallbackReply("Вопрос по договору аренды", "ru", f.lawyer)
	if reply.Message != want {
		t.Fatalf("fallback is not deterministic:\ngot  %q\nwant %q", reply.Message, want)
	}

	assistants := f.messages.bySession(session.ID, models.RoleAssistant)
	last := assistants[len(assistants)-1]
	if last.AIModel != models.ModelFallback {
		t.Fatalf("fallback message should carry the fallback marker, got %q", last.AIModel)
	}
}

func TestHandleMessageContextExcludesWelcome(t *testing.T) {
	provider := &fakeProvider{response: "ok"}
	f := newEngineFixture(provider)
	result := f.start(t)

	if _, err := f.engine.HandleMessage(context.Background(), result.SessionToken, "Первый вопрос"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}

	req := provider.requests[0]
	if req.Messages[0].Role != llm.RoleSystem {
		t.Fatalf("first context entry must be the system prompt")
	}
	// system prompt + current user message only; the welcome is excluded
	if len(req.Messages) != 2 {
		t.Fatalf("expected 2 context entries, got %d: %+v", len(req.Messages), req.Messages)
	}
	for _, m := range req.Messages[1:] {
		if strings.Contains(m.Content, "помощник юриста") {
			t.Fatalf("welcome message leaked into AI context: %q", m.Content)
		}
	}
}

func TestHandleMessageContextWindowIsBounded(t *testing.T) {
	provider := &fakeProvider{response: "ok"}
	f := newEngineFixture(provider)
	result := f.start(t)

	for i := 0; i < 8; i++ {
		if _, err := f.engine.HandleMessage(context.Background(), result.SessionToken, fmt.Sprintf("Вопрос номер %d", i)); err != nil {
			t.Fatalf("HandleMessage %d failed: %v", i, err)
		}
	}

	last := provider.requests[len(provider.requests)-1]
	// system + 6 prior + current
	if len(last.Messages) != 8 {
		t.Fatalf("expected 8 context entries, got %d", len(last.Messages))
	}
}

func TestLegalCategorySetOnceAndIdempotent(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "ok"})
	result := f.start(t)

	if _, err := f.engine.HandleMessage(context.Background(), result.SessionToken, "У меня развод, что делать?"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	session, _ := f.sessions.GetByToken(result.SessionToken)
	if session.LegalCategory != "Семейное право" {
		t.Fatalf("legal_category = %q, want Семейное право", session.LegalCategory)
	}

	if _, err := f.engine.HandleMessage(context.Background(), result.SessionToken, "И еще меня уволили с работы"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	session, _ = f.sessions.GetByToken(result.SessionToken)
	if session.LegalCategory != "Семейное право" {
		t.Fatalf("legal_category must not change once set, got %q", session.LegalCategory)
	}
}

func TestShouldCollectContactOnAppointmentRequest(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "Конечно."})
	result := f.start(t)

	reply, err := f.engine.HandleMessage(context.Background(), result.SessionToken, "Хочу записаться на встречу")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if !reply.ShouldCollectContact {
		t.Fatalf("expected should_collect_contact=true")
	}
	if reply.ContactForm == nil {
		t.Fatalf("expected a contact form descriptor")
	}
	wantFields := []string{"name", "phone", "email"}
	if len(reply.ContactForm.Fields) != len(wantFields) {
		t.Fatalf("form fields = %v, want %v", reply.ContactForm.Fields, wantFields)
	}
	for i, field := range wantFields {
		if reply.ContactForm.Fields[i] != field {
			t.Fatalf("form fields = %v, want %v", reply.ContactForm.Fields, wantFields)
		}
	}
}

func TestShouldCollectContactFalseWhenPhoneOnFile(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "Давайте запишемся на консультацию."})
	result := f.start(t)

	session := f.sessions.sessions[result.SessionToken]
	session.VisitorPhone = "+996700123456"

	reply, err := f.engine.HandleMessage(context.Background(), result.SessionToken, "Хочу записаться на встречу")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if reply.ShouldCollectContact {
		t.Fatalf("should_collect_contact must be false when a phone is on file")
	}
}

func TestShouldCollectContactAfterThreeMessagesWithSchedulingHint(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "Рекомендую записаться на консультацию."})
	result := f.start(t)

	var reply *Reply
	var err error
	for _, text := range []string{"Добрый день", "У меня вопрос по налогам", "Что посоветуете?"} {
		reply, err = f.engine.HandleMessage(context.Background(), result.SessionToken, text)
		if err != nil {
			t.Fatalf("HandleMessage failed: %v", err)
		}
	}
	if !reply.ShouldCollectContact {
		t.Fatalf("expected contact collection after 3 user messages with a scheduling hint")
	}
}

func TestExtractionIsFirstWriteWins(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "ok"})
	result := f.start(t)

	if _, err := f.engine.HandleMessage(context.Background(), result.SessionToken, "Мой телефон +996700123456"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if _, err := f.engine.HandleMessage(context.Background(), result.SessionToken, "Вот другой номер +996555999888"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}

	session, _ := f.sessions.GetByToken(result.SessionToken)
	if session.VisitorPhone != "+996700123456" {
		t.Fatalf("extracted phone must not be overwritten, got %q", session.VisitorPhone)
	}
}

func TestSubmitContactCreatesLead(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "ok"})
	result := f.start(t)

	lead, confirmation, err := f.engine.SubmitContact(context.Background(), result.SessionToken, "Ana", "+996700123456", "")
	if err != nil {
		t.Fatalf("SubmitContact failed: %v", err)
	}
	if confirmation == "" {
		t.Fatalf("expected a confirmation message")
	}

	if len(f.leads.leads) != 1 {
		t.Fatalf("expected exactly one lead, got %d", len(f.leads.leads))
	}
	if lead.Name != "Ana" || lead.Phone != "+996700123456" {
		t.Fatalf("lead contact fields wrong: %+v", lead)
	}
	if lead.Source != crmmodels.SourceWebsiteChat {
		t.Fatalf("lead source = %q, want website_chat", lead.Source)
	}

	session, _ := f.sessions.GetByToken(result.SessionToken)
	if !session.ConsultationRequested {
		t.Fatalf("consultation_requested must be true after contact submission")
	}
	if session.VisitorName != "Ana" || session.VisitorPhone != "+996700123456" {
		t.Fatalf("explicit submission must overwrite visitor fields: %+v", session)
	}
}

func TestSubmitContactRequiresNameAndPhone(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "ok"})
	result := f.start(t)

	if _, _, err := f.engine.SubmitContact(context.Background(), result.SessionToken, "", "+996700123456", ""); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}
	if _, _, err := f.engine.SubmitContact(context.Background(), result.SessionToken, "Ana", "", ""); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for missing phone, got %v", err)
	}
}

func TestScheduleAppointmentRequiresContactFirst(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "ok"})
	result := f.start(t)

	_, _, err := f.engine.ScheduleAppointment(context.Background(), result.SessionToken, "2026-09-01", "14:00", "")
	if !apperr.IsPrecondition(err) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestScheduleAppointmentStrictTimeFormat(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "ok"})
	result := f.start(t)
	if _, _, err := f.engine.SubmitContact(context.Background(), result.SessionToken, "Ana", "+996700123456", ""); err != nil {
		t.Fatalf("SubmitContact failed: %v", err)
	}

	_, _, err := f.engine.ScheduleAppointment(context.Background(), result.SessionToken, "01.09.2026", "14:00", "")
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for bad date format, got %v", err)
	}
}

func TestScheduleAppointmentReusesLeadByPhone(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "ok"})
	result := f.start(t)
	if _, _, err := f.engine.SubmitContact(context.Background(), result.SessionToken, "Ana", "+996700123456", ""); err != nil {
		t.Fatalf("SubmitContact failed: %v", err)
	}

	first, _, err := f.engine.ScheduleAppointment(context.Background(), result.SessionToken, "2026-09-01", "14:00", "")
	if err != nil {
		t.Fatalf("first ScheduleAppointment failed: %v", err)
	}
	second, _, err := f.engine.ScheduleAppointment(context.Background(), result.SessionToken, "2026-09-02", "10:00", "")
	if err != nil {
		t.Fatalf("second ScheduleAppointment failed: %v", err)
	}

	if first.LeadID != second.LeadID {
		t.Fatalf("both consultations must reuse the same lead: %s vs %s", first.LeadID, second.LeadID)
	}
	if len(f.consultations.consultations) != 2 {
		t.Fatalf("expected two consultations, got %d", len(f.consultations.consultations))
	}

	got := first
	if got.DurationMinutes != 60 || got.MeetingMethod != crmmodels.MeetingInPerson || got.Status != crmmodels.ConsultationScheduled {
		t.Fatalf("consultation defaults wrong: %+v", got)
	}
}

func TestEndDerivesLeadOnce(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "ok"})
	result := f.start(t)

	if _, err := f.engine.HandleMessage(context.Background(), result.SessionToken, "Мой телефон +996700123456"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if err := f.engine.End(context.Background(), result.SessionToken); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	session, _ := f.sessions.GetByToken(result.SessionToken)
	if session.Status != models.SessionEnded || session.EndedAt == nil {
		t.Fatalf("session must be ended with a timestamp: %+v", session)
	}
	if len(f.leads.leads) != 1 {
		t.Fatalf("expected one derived lead, got %d", len(f.leads.leads))
	}
	if !strings.Contains(f.leads.leads[0].CaseDescription, "+996700123456") {
		t.Fatalf("case description should concatenate the visitor's messages, got %q", f.leads.leads[0].CaseDescription)
	}

	// Ending again is a no-op and must not create a second lead.
	if err := f.engine.End(context.Background(), result.SessionToken); err != nil {
		t.Fatalf("second End failed: %v", err)
	}
	if len(f.leads.leads) != 1 {
		t.Fatalf("second End must not derive another lead, got %d", len(f.leads.leads))
	}
}

func TestEndWithoutContactCreatesNoLead(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "ok"})
	result := f.start(t)

	if _, err := f.engine.HandleMessage(context.Background(), result.SessionToken, "Просто вопрос"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if err := f.engine.End(context.Background(), result.SessionToken); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if len(f.leads.leads) != 0 {
		t.Fatalf("expected no lead for an anonymous session, got %d", len(f.leads.leads))
	}
}

func TestOfficeHoursGateSkipsAI(t *testing.T) {
	provider := &fakeProvider{response: "ok"}
	f := newEngineFixture(provider)
	result := f.start(t)

	config := f.configs.configs[f.lawyer.ID]
	config.OfficeHoursEnabled = true
	// Every day disabled: always closed.
	config.OfficeHours = datatypes.JSON([]byte(`{"monday":{"enabled":false}}`))
	config.OfflineMessage = "Мы сейчас офлайн, оставьте контакты."

	reply, err := f.engine.HandleMessage(context.Background(), result.SessionToken, "Добрый день")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if !reply.IsOffline {
		t.Fatalf("expected offline reply")
	}
	if reply.Message != "Мы сейчас офлайн, оставьте контакты." {
		t.Fatalf("expected the configured offline message, got %q", reply.Message)
	}
	if len(provider.requests) != 0 {
		t.Fatalf("AI must not be called outside office hours")
	}
}

func TestSubmitFeedbackOncePerSession(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "ok"})
	result := f.start(t)

	if _, err := f.engine.SubmitFeedback(context.Background(), result.SessionToken, 5, "отлично", true); err != nil {
		t.Fatalf("SubmitFeedback failed: %v", err)
	}
	if _, err := f.engine.SubmitFeedback(context.Background(), result.SessionToken, 4, "", false); !apperr.IsPrecondition(err) {
		t.Fatalf("expected precondition error on duplicate feedback, got %v", err)
	}
	if _, err := f.engine.SubmitFeedback(context.Background(), result.SessionToken, 9, "", false); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for out-of-range rating, got %v", err)
	}
}

func TestEndToEndRussianScenario(t *testing.T) {
	f := newEngineFixture(&fakeProvider{response: "Отвечаю по сути вашего вопроса."})
	result := f.start(t)
	if result.Message == "" {
		t.Fatalf("expected welcome message")
	}

	reply, err := f.engine.HandleMessage(context.Background(), result.SessionToken, "У меня развод, что делать?")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if reply.Message == "" {
		t.Fatalf("expected assistant reply")
	}
	session, _ := f.sessions.GetByToken(result.SessionToken)
	if session.LegalCategory != "Семейное право" {
		t.Fatalf("legal_category = %q, want Семейное право", session.LegalCategory)
	}

	reply, err = f.engine.HandleMessage(context.Background(), result.SessionToken, "Хочу записаться на встречу")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if !reply.ShouldCollectContact || reply.ContactForm == nil {
		t.Fatalf("expected contact form after appointment request")
	}
	wantFields := []string{"name", "phone", "email"}
	for i, field := range wantFields {
		if reply.ContactForm.Fields[i] != field {
			t.Fatalf("form fields = %v, want %v", reply.ContactForm.Fields, wantFields)
		}
	}
}
