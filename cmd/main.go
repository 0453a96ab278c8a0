package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"pricehawk/internal/api"
	"pricehawk/internal/configuration"
	"pricehawk/internal/credential"
	"pricehawk/internal/dashboard"
	"pricehawk/internal/dialog"
	"pricehawk/internal/forecast"
	"pricehawk/internal/liveprice"
	"pricehawk/internal/logger"
	"pricehawk/internal/notification"
	"pricehawk/internal/session"
	"pricehawk/internal/tracking"
)

func main() {
	if err := runApp(); err != nil {
		os.Exit(1)
	}
}

func runApp() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logOutput := io.Writer(os.Stderr)
	appLogger := logger.NewLogger(logger.LevelError, logOutput)

	defer func() {
		if r := recover(); r != nil {
			appLogger.Errorf("APPLICATION CRASHED: %+v", r)
		}
	}()

	// Optional .env next to the binary, mirroring how the backend is pointed
	// at in development.
	_ = godotenv.Load()

	config, err := configuration.GetConfig("config.toml")
	if err != nil {
		appLogger.Error("Error getting configuration from config.toml:", err)
		return err
	}

	if config.LogToFile {
		logFile, err := os.OpenFile("pricehawk.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			appLogger.Error("Error opening log file:", err)
			return err
		}
		defer func() {
			if err := logFile.Close(); err != nil {
				appLogger.Error("Error closing log file:", err)
			}
		}()
		logOutput = io.MultiWriter(logOutput, logFile)
	}
	appLogger = logger.NewLogger(config.LogLevel, logOutput)

	creds, err := credential.OpenKeyring(config.CredentialFileDir)
	if err != nil {
		appLogger.Error("Error opening credential store:", err)
		return err
	}

	apiClient := api.NewClient(&http.Client{Timeout: config.HTTPTimeout}, config.APIBaseURL, appLogger)

	a := &app{
		logger:  appLogger,
		api:     apiClient,
		session: session.NewManager(apiClient, creds, appLogger),
		prompt:  dialog.Form{},
	}
	a.tracking = tracking.NewStore(apiClient, appLogger)
	a.notifications = notification.NewAggregator(apiClient, appLogger)
	a.dashboard = dashboard.Service{
		Tracking:      a.tracking,
		Notifications: a.notifications,
		Logger:        appLogger,
	}
	a.forecast = forecast.NewEstimator(apiClient, appLogger)
	a.prober = liveprice.NewProber(apiClient, appLogger)

	return a.rootCmd().ExecuteContext(ctx)
}
