package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"careerlink/database"
	"careerlink/internal/auth"
	"careerlink/internal/config"
	"careerlink/internal/email"
	"careerlink/internal/handlers"
	"careerlink/internal/logger"
	"careerlink/internal/middleware"
	"careerlink/internal/models"
	"careerlink/internal/monitoring"
	"careerlink/internal/repositories"
	"careerlink/internal/resume"
	"careerlink/internal/routes"
	"careerlink/internal/services"
	"careerlink/internal/storage"
	"careerlink/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms"
	"gorm.io/gorm"
)

// Deps lets callers swap external collaborators. Nil fields are built from
// config.
type Deps struct {
	Storage       storage.Storage
	EmailProvider email.Provider
	ReviewModel   llms.Model
	Extractor     resume.TextExtractor
}

// Run serves HTTP until ctx is cancelled or SIGINT/SIGTERM arrives, then
// shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := monitoring.Init(cfg.Sentry.DSN, cfg.Sentry.Environment, cfg.Sentry.SampleRate); err != nil {
		logger.Warn("Sentry disabled", "error", err)
	}
	defer monitoring.Flush()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}

	router, err := SetupRouter(ctx, cfg, db, Deps{})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", cfg.Address(), "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server startup error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// SetupRouter builds every collaborator, the middleware chain and the routes.
func SetupRouter(ctx context.Context, cfg *config.Config, db *gorm.DB, deps Deps) (*gin.Engine, error) {
	if err := fillDeps(ctx, cfg, &deps); err != nil {
		return nil, err
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.TokenTTL())
	session := auth.SessionCookie{
		Name:     cfg.JWT.CookieName,
		Domain:   cfg.JWT.CookieDomain,
		Secure:   cfg.JWT.CookieSecure,
		SameSite: auth.ParseSameSite(cfg.JWT.SameSite),
		TTL:      tokens.TTL(),
	}

	serviceContainer := initializeServices(cfg, tokens, deps)
	baseHandler := handlers.NewBaseHandler(validator.New(), middleware.AuthMiddleware(tokens, cfg.JWT.CookieName))
	appHandlers := initializeHandlers(baseHandler, serviceContainer, session, cfg.Upload.MaxSize)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := initializeGinRouter(cfg, db)
	routes.RegisterRoutes(router, appHandlers)

	if local, ok := deps.Storage.(*storage.LocalStorage); ok {
		router.Static(cfg.Storage.BaseURL, local.BasePath())
	}

	return router, nil
}

func fillDeps(ctx context.Context, cfg *config.Config, deps *Deps) error {
	var err error
	if deps.Storage == nil {
		deps.Storage, err = storage.NewStorage(storage.Config{
			Type:       cfg.Storage.Type,
			BasePath:   cfg.Storage.BasePath,
			BaseURL:    cfg.Storage.BaseURL,
			Bucket:     cfg.Storage.Bucket,
			Region:     cfg.Storage.Region,
			AccessKey:  cfg.Storage.AccessKey,
			SecretKey:  cfg.Storage.SecretKey,
			Endpoint:   cfg.Storage.Endpoint,
			PublicRead: cfg.Storage.PublicRead,
		})
		if err != nil {
			return fmt.Errorf("initialize storage: %w", err)
		}
		logger.Info("Storage initialized", "type", cfg.Storage.Type)
	}

	if deps.EmailProvider == nil {
		deps.EmailProvider = email.NewProvider(email.Config{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	}

	if deps.Extractor == nil {
		deps.Extractor, err = resume.NewPDFExtractor(cfg.AI.PDFLicenseKey)
		if err != nil {
			return err
		}
	}

	if deps.ReviewModel == nil && cfg.AI.APIKey != "" {
		deps.ReviewModel, err = resume.NewGeminiModel(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			return err
		}
	}
	if deps.ReviewModel == nil {
		logger.Warn("AI API key not set, resume review disabled")
	}
	return nil
}

func initializeServices(cfg *config.Config, tokens *auth.TokenManager, deps Deps) *services.ServiceContainer {
	notifier := email.NewNotifier(deps.EmailProvider)

	userRepo := repositories.NewUserRepository()
	companyRepo := repositories.NewCompanyRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()

	var reviewer services.ResumeReviewer
	if deps.ReviewModel != nil {
		reviewer = resume.NewReviewer(deps.ReviewModel, resume.ReviewerConfig{
			MaxChars:      cfg.AI.MaxResumeChars,
			CacheSize:     cfg.AI.CacheSize,
			CacheTTL:      time.Duration(cfg.AI.CacheTTL) * time.Minute,
			RatePerMinute: cfg.AI.RatePerMinute,
		})
	}

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, companyRepo, tokens, notifier),
		CompanyService:     services.NewCompanyService(companyRepo),
		JobService:         services.NewJobService(jobRepo, userRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, userRepo, notifier),
		EducationService:   services.NewEducationService(repositories.NewSectionRepository[models.Education]()),
		ExperienceService:  services.NewExperienceService(repositories.NewSectionRepository[models.Experience]()),
		ProjectService:     services.NewProjectService(repositories.NewSectionRepository[models.Project]()),
		SkillService:       services.NewSkillService(userRepo),
		ResumeService: services.NewResumeService(userRepo, deps.Storage, deps.Extractor, reviewer, services.UploadConfig{
			MaxSize:      cfg.Upload.MaxSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
		}),
	}
}

func initializeHandlers(base *handlers.BaseHandler, svc *services.ServiceContainer, session auth.SessionCookie, maxUpload int64) *handlers.AppHandlers {
	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(base, svc.AuthService, session),
		CompanyHandler:     handlers.NewCompanyHandler(base, svc.CompanyService),
		JobHandler:         handlers.NewJobHandler(base, svc.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(base, svc.ApplicationService),
		EducationHandler:   handlers.NewSectionHandler(base, "/education", svc.EducationService),
		ExperienceHandler:  handlers.NewSectionHandler(base, "/experience", svc.ExperienceService),
		ProjectHandler:     handlers.NewSectionHandler(base, "/projects", svc.ProjectService),
		SkillHandler:       handlers.NewSkillHandler(base, svc.SkillService),
		ResumeHandler:      handlers.NewResumeHandler(base, svc.ResumeService, maxUpload),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.SentryMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}
