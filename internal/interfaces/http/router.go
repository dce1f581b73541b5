package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	journalApp "vita/internal/application/journal"
	profileApp "vita/internal/application/profile"
	trackerUsecases "vita/internal/application/tracker/usecases"
	"vita/internal/infrastructure/auth"
	"vita/internal/infrastructure/cache"
	"vita/internal/infrastructure/config"
	"vita/internal/infrastructure/email"
	"vita/internal/infrastructure/fitbit"
	"vita/internal/infrastructure/repository"
	"vita/internal/interfaces/http/handlers"
	"vita/internal/interfaces/http/middleware"
	"vita/internal/shared/constants"
	"vita/internal/shared/logger"
	"vita/internal/shared/services/markdown"
)

// Router wires the HTTP surface together.
type Router struct {
	engine          *gin.Engine
	profileHandler  *handlers.ProfileHandler
	trackerHandler  *handlers.TrackerHandler
	journalHandler  *handlers.JournalHandler
	activeProfileMW *middleware.ActiveProfileMiddleware
}

// NewRouter builds all handlers and middleware from infrastructure.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	// Repositories
	profileRepo := repository.NewProfileRepository(db)
	integrationRepo := repository.NewIntegrationRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	weightRepo := repository.NewWeightRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	sleepRepo := repository.NewSleepRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	medicationRepo := repository.NewMedicationRepository(db)
	seizureRepo := repository.NewSeizureRepository(db)
	cycleRepo := repository.NewCycleRepository(db)

	// Infrastructure services
	tokenService := auth.NewProfileTokenService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ProfileExpDays)
	pendingStore := cache.NewRedisPendingStore(redisClient, "fitbit:pending", trackerUsecases.PendingTTL)
	oauthClient := fitbit.NewOAuthClient(&cfg.Fitbit)
	gateway := fitbit.NewGateway(log)
	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Email.BaseURL,
	})

	tokenFactory := func(userID uint) trackerUsecases.TokenProvider {
		return fitbit.NewIntegrationTokenSource(integrationRepo, &cfg.Fitbit, userID)
	}

	// Use cases and services
	beginUC := trackerUsecases.NewBeginConnectionUseCase(oauthClient, pendingStore, log)
	completeUC := trackerUsecases.NewCompleteConnectionUseCase(oauthClient, pendingStore, integrationRepo, log)
	syncUC := trackerUsecases.NewSyncWindowUseCase(
		integrationRepo, activityRepo, weightRepo, foodRepo, sleepRepo,
		tokenFactory, gateway, emailService,
		cfg.Email.NotifyAddress, cfg.Sync.FailureThreshold, log,
	)
	statusUC := trackerUsecases.NewSyncStatusUseCase(integrationRepo, cfg.Sync.IntervalMinutes)
	disconnectUC := trackerUsecases.NewDisconnectUseCase(integrationRepo, log)
	recordsUC := trackerUsecases.NewGetRecordsUseCase(activityRepo, weightRepo, foodRepo, sleepRepo)

	profileService := profileApp.NewService(profileRepo, tokenService, log)
	journalService := journalApp.NewService(moodRepo, medicationRepo, seizureRepo, cycleRepo, markdown.NewService(), log)

	// Handlers and middleware
	cookieCfg := &cfg.Auth.Cookie
	profileHandler := handlers.NewProfileHandler(profileService, cookieCfg, log)
	trackerHandler := handlers.NewTrackerHandler(
		beginUC, completeUC, syncUC, statusUC, disconnectUC, recordsUC,
		profileService, tokenService, cookieCfg, log,
	)
	journalHandler := handlers.NewJournalHandler(journalService, log)
	activeProfileMW := middleware.NewActiveProfileMiddleware(tokenService, log)

	return &Router{
		engine:          engine,
		profileHandler:  profileHandler,
		trackerHandler:  trackerHandler,
		journalHandler:  journalHandler,
		activeProfileMW: activeProfileMW,
	}
}

// SetupRoutes registers middleware and all routes.
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.engine.Group("/api/v1")

	// Profile creation and listing are the entry point for a fresh
	// browser: no cookie exists yet.
	profiles := v1.Group("/profiles")
	{
		profiles.POST("", r.profileHandler.Create)
		profiles.GET("", r.profileHandler.List)
		profiles.POST("/:id/activate", r.profileHandler.Activate)

		authed := profiles.Group("", r.activeProfileMW.Require())
		{
			authed.GET("/:id", r.profileHandler.Get)
			authed.PUT("/:id", r.profileHandler.Update)
			authed.DELETE("/:id", r.profileHandler.Delete)
			authed.POST("/deactivate", r.profileHandler.Deactivate)
		}
	}

	tracker := v1.Group("/tracker")
	{
		// The callback authenticates via the pending state entry, not
		// the cookie: the active profile may have changed mid-redirect.
		tracker.GET("/callback", r.activeProfileMW.Optional(), r.trackerHandler.Callback)

		authed := tracker.Group("", r.activeProfileMW.Require())
		{
			authed.GET("/connect", r.trackerHandler.Connect)
			authed.POST("/sync", r.trackerHandler.Sync)
			authed.GET("/status", r.trackerHandler.Status)
			authed.GET("/records", r.trackerHandler.Records)
			authed.DELETE("", r.trackerHandler.Disconnect)
		}
	}

	journal := v1.Group("/journal", r.activeProfileMW.Require())
	{
		moods := journal.Group("/moods")
		{
			moods.POST("", r.journalHandler.CreateMood)
			moods.GET("", r.journalHandler.ListMoods)
			moods.GET("/:id", r.journalHandler.GetMood)
			moods.PUT("/:id", r.journalHandler.UpdateMood)
			moods.DELETE("/:id", r.journalHandler.DeleteMood)
			moods.GET("/:id/note/html", r.journalHandler.NoteHTML(journalApp.KindMood))
		}

		medications := journal.Group("/medications")
		{
			medications.POST("", r.journalHandler.CreateMedication)
			medications.GET("", r.journalHandler.ListMedications)
			medications.GET("/:id", r.journalHandler.GetMedication)
			medications.PUT("/:id", r.journalHandler.UpdateMedication)
			medications.DELETE("/:id", r.journalHandler.DeleteMedication)
			medications.GET("/:id/note/html", r.journalHandler.NoteHTML(journalApp.KindMedication))
		}

		seizures := journal.Group("/seizures")
		{
			seizures.POST("", r.journalHandler.CreateSeizure)
			seizures.GET("", r.journalHandler.ListSeizures)
			seizures.GET("/:id", r.journalHandler.GetSeizure)
			seizures.PUT("/:id", r.journalHandler.UpdateSeizure)
			seizures.DELETE("/:id", r.journalHandler.DeleteSeizure)
			seizures.GET("/:id/note/html", r.journalHandler.NoteHTML(journalApp.KindSeizure))
		}

		cycles := journal.Group("/cycles")
		{
			cycles.POST("", r.journalHandler.CreateCycle)
			cycles.GET("", r.journalHandler.ListCycles)
			cycles.GET("/:id", r.journalHandler.GetCycle)
			cycles.PUT("/:id", r.journalHandler.UpdateCycle)
			cycles.DELETE("/:id", r.journalHandler.DeleteCycle)
			cycles.GET("/:id/note/html", r.journalHandler.NoteHTML(journalApp.KindCycle))
		}
	}
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
