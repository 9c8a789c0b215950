package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/adylai/lawyer-saas-ai-be/internal/core/analytics"
	"github.com/adylai/lawyer-saas-ai-be/internal/core/llm"
	"github.com/adylai/lawyer-saas-ai-be/internal/core/notify"
	chathandlers "github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/handlers"
	chatrepos "github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/repositories"
	chatservices "github.com/adylai/lawyer-saas-ai-be/internal/modules/chat/services"
	crmhandlers "github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/handlers"
	crmrepos "github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/repositories"
	crmservices "github.com/adylai/lawyer-saas-ai-be/internal/modules/crm/services"
	lawyerhandlers "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/handlers"
	lawyerrepos "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/repositories"
	lawyerservices "github.com/adylai/lawyer-saas-ai-be/internal/modules/lawyers/services"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/config"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/database"
	"github.com/adylai/lawyer-saas-ai-be/internal/shared/utils"

	_ "github.com/adylai/lawyer-saas-ai-be/cmd/api/docs"
)

// @title AdylAI Lawyer SaaS API
// @version 1.0
// @description API for the lawyer website and AI chat assistant platform
// @contact.name API Support
// @contact.email support@adylai.kg
// @license.name MIT
// @host localhost:8080
// @BasePath /api
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting api on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// Init repositories (use GORM instance)
	lawyerRepo := lawyerrepos.NewLawyerRepo(db.GORM)
	sessionRepo := chatrepos.NewSessionRepo(db.GORM)
	messageRepo := chatrepos.NewMessageRepo(db.GORM)
	configRepo := chatrepos.NewConfigRepo(db.GORM)
	feedbackRepo := chatrepos.NewFeedbackRepo(db.GORM)
	leadRepo := crmrepos.NewLeadRepo(db.GORM)
	consultationRepo := crmrepos.NewConsultationRepo(db.GORM)

	// Init LLM service (multi-provider support)
	llmService := llm.NewService()

	// Init email notifications (multi-provider support)
	var emailProvider notify.EmailProvider
	switch cfg.EmailProvider {
	case "resend":
		emailProvider = notify.NewResendProvider(cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	case "brevo":
		emailProvider = notify.NewBrevoProvider(cfg.BrevoAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	default:
		if cfg.BrevoAPIKey != "" {
			emailProvider = notify.NewBrevoProvider(cfg.BrevoAPIKey, cfg.EmailFrom, cfg.EmailFromName)
		} else if cfg.ResendAPIKey != "" {
			emailProvider = notify.NewResendProvider(cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailFromName)
		}
	}
	notifyService := notify.NewService(emailProvider)

	log.Printf("🤖 Using LLM provider: %s", llmService.GetProviderName())
	if emailProvider != nil {
		log.Printf("📧 Using Email provider: %s", notifyService.GetProviderName())
	} else {
		log.Printf("⚠️  Email notifications not configured")
	}

	// Init services
	engine := chatservices.NewEngine(
		sessionRepo, messageRepo, configRepo, feedbackRepo,
		lawyerRepo, leadRepo, consultationRepo,
		llmService, notifyService,
	)
	lawyerService := lawyerservices.NewLawyerService(lawyerRepo, configRepo, cfg.PublicBaseURL)
	leadService := crmservices.NewLeadService(leadRepo)
	consultationService := crmservices.NewConsultationService(consultationRepo)
	rollupService := analytics.NewRollupService(db.GORM, lawyerRepo, sessionRepo, messageRepo, feedbackRepo, leadRepo)

	// Nightly analytics rollup at 02:10
	scheduler := analytics.NewScheduler()
	if err := scheduler.AddJob("daily-rollup", "10 2 * * *", rollupService.RollupYesterday); err != nil {
		log.Fatalf("❌ Failed to schedule analytics rollup: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Init handlers
	healthHandler := chathandlers.NewHealthHandler(db, llmService)
	chatHandler := chathandlers.NewChatHandler(engine)
	lawyerHandler := lawyerhandlers.NewLawyerHandler(lawyerService)
	leadHandler := crmhandlers.NewLeadHandler(leadService)
	consultationHandler := crmhandlers.NewConsultationHandler(consultationService)
	analyticsHandler := crmhandlers.NewAnalyticsHandler(rollupService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "AdylAI Lawyer SaaS API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	api := app.Group("/api")

	// Chat widget routes
	api.Post("/chat/start", chatHandler.StartChat)
	api.Post("/chat/message", chatHandler.SendMessage)
	api.Post("/chat/contact", chatHandler.SubmitContact)
	api.Post("/chat/schedule", chatHandler.ScheduleAppointment)
	api.Post("/chat/end", chatHandler.EndChat)
	api.Post("/chat/feedback", chatHandler.SubmitFeedback)
	api.Get("/chat/history", chatHandler.GetHistory)

	// Lawyer routes
	api.Post("/lawyers", lawyerHandler.ProvisionLawyer)
	api.Get("/lawyers", lawyerHandler.ListPublishedLawyers)
	api.Get("/lawyers/slug/:slug", lawyerHandler.GetLawyerBySlug)
	api.Get("/lawyers/slug/:slug/qr", lawyerHandler.GetChatLinkQR)
	api.Get("/lawyers/:id", lawyerHandler.GetLawyer)
	api.Put("/lawyers/:id", lawyerHandler.UpdateLawyer)
	api.Patch("/lawyers/:id/publish", lawyerHandler.PublishWebsite)
	api.Get("/lawyers/:id/chat-config", lawyerHandler.GetChatConfig)
	api.Put("/lawyers/:id/chat-config", lawyerHandler.UpdateChatConfig)

	// CRM routes
	api.Get("/crm/:lawyerID/leads/stats", leadHandler.GetLeadStats)
	api.Get("/crm/:lawyerID/leads", leadHandler.ListLeads)
	api.Get("/crm/:lawyerID/leads/:id", leadHandler.GetLead)
	api.Put("/crm/:lawyerID/leads/:id", leadHandler.UpdateLead)
	api.Get("/crm/:lawyerID/consultations", consultationHandler.ListConsultations)
	api.Get("/crm/:lawyerID/consultations/:id", consultationHandler.GetConsultation)
	api.Put("/crm/:lawyerID/consultations/:id", consultationHandler.UpdateConsultation)

	// Analytics routes
	api.Get("/analytics/:lawyerID/chat", analyticsHandler.GetChatAnalytics)
	api.Get("/analytics/:lawyerID/leads", analyticsHandler.GetLeadAnalytics)

	log.Printf("✅ api running at :%s", cfg.Port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
