package main

import (
	"fmt"
	"os"
	"time"

	"goflix/internal/config"
	"goflix/internal/console"
	"goflix/internal/models"
	"goflix/internal/repositories"
	"goflix/internal/services/account"
	"goflix/internal/services/catalog"
	"goflix/internal/services/session"
	"goflix/internal/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := utils.NewLogger(cfg.LogLevel)
	logger.Info("Starting Goflix")

	mediaRepo := repositories.NewMediaRepository()
	userRepo := repositories.NewUserRepository()

	catalogSvc := catalog.NewService(mediaRepo, logger)
	accountSvc := account.NewService(userRepo, catalogSvc, logger)
	sessionSvc := session.NewService(accountSvc, time.Duration(cfg.SessionTTLMinutes)*time.Minute, logger)

	// All state is in-memory, so the administrator is seeded fresh on
	// every run.
	admin := models.NewUser(cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
	admin.Admin = true
	if err := accountSvc.AddUser(admin); err != nil {
		return fmt.Errorf("failed to seed administrator: %w", err)
	}
	logger.WithField("email", admin.Email).Info("Administrator seeded")

	app := console.NewApp(catalogSvc, accountSvc, sessionSvc, os.Stdin, os.Stdout, logger)
	return app.Run()
}
