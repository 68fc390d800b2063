package main

import (
	"log"

	"kairos/internal/config"
	"kairos/internal/database"
	"kairos/internal/middleware"
	"kairos/internal/modules/access"
	"kairos/internal/modules/assist"
	"kairos/internal/modules/calendar"
	"kairos/internal/modules/moderation"
	"kairos/internal/modules/prayer"
	"kairos/internal/notify"
	"kairos/internal/observability"
	"kairos/internal/pkg/jwt"
	"kairos/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := database.Seed(db); err != nil {
		logger.Fatal("Failed to seed database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	prayerRepo := repository.NewPrayerRepository(db)

	// Shared infrastructure
	jwtService := jwt.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := notify.NewHub()
	defer hub.Close()

	var mailer notify.Mailer
	if cfg.MailEnabled() {
		mailer = notify.NewMailer(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunAPIBase)
		logger.Info("moderation mail enabled", zap.String("moderator", cfg.ModeratorEmail))
	}
	notifier := notify.NewNotifier(logger, mailer, hub, cfg.ModeratorEmail, cfg.MailFrom)

	assistClient := assist.NewClient(cfg.AssistAPIKey, cfg.AssistModel, cfg.AssistTimeout, logger)
	if !assistClient.Enabled() {
		logger.Info("assist API key not set, text features fall back to originals")
	}

	// Services
	accessService := access.NewService(userRepo, jwtService, notifier)
	moderationService := moderation.NewService(userRepo, prayerRepo)
	calendarService := calendar.NewService(eventRepo, assistClient)
	prayerService := prayer.NewService(prayerRepo, userRepo, notifier)

	// Handlers
	accessHandler := access.NewHandler(accessService)
	moderationHandler := moderation.NewHandler(moderationService, accessService, hub)
	calendarHandler := calendar.NewHandler(calendarService)
	prayerHandler := prayer.NewHandler(prayerService)
	assistHandler := assist.NewHandler(assistClient)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	accessHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.Auth(jwtService))
	{
		accessHandler.RegisterProtectedRoutes(protected)
		calendarHandler.RegisterRoutes(protected, middleware.EditorOrAdmin())
		prayerHandler.RegisterRoutes(protected)
		assistHandler.RegisterRoutes(protected)

		admin := protected.Group("/admin")
		admin.Use(middleware.AdminOnly())
		moderationHandler.RegisterRoutes(admin)
	}

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed to start", zap.Error(err))
	}
}
