package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	trackerUsecases "vita/internal/application/tracker/usecases"
	"vita/internal/infrastructure/config"
	"vita/internal/infrastructure/database"
	"vita/internal/infrastructure/email"
	"vita/internal/infrastructure/fitbit"
	"vita/internal/infrastructure/repository"
	"vita/internal/infrastructure/scheduler"
	"vita/internal/shared/biztime"
	"vita/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting tracker sync worker", "environment", env)

	if err := biztime.Init(cfg.Sync.Timezone); err != nil {
		log.Fatalw("failed to initialize business timezone", "error", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	db := database.Get()
	integrationRepo := repository.NewIntegrationRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	weightRepo := repository.NewWeightRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	sleepRepo := repository.NewSleepRepository(db)
	profileRepo := repository.NewProfileRepository(db)

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

	syncUC := trackerUsecases.NewSyncWindowUseCase(
		integrationRepo, activityRepo, weightRepo, foodRepo, sleepRepo,
		tokenFactory, gateway, emailService,
		cfg.Email.NotifyAddress, cfg.Sync.FailureThreshold, log,
	)

	syncScheduler := scheduler.NewSyncScheduler(
		syncUC, integrationRepo, profileRepo,
		cfg.Sync.IntervalMinutes, cfg.Sync.WindowDays, log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	syncScheduler.Start(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig)

	syncScheduler.Stop()
	log.Infow("tracker sync worker stopped")
}
