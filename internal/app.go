package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"

	logger_adapter "github.com/stnslvsvnv/ted-scraper/internal/adapters/logger"
	"github.com/stnslvsvnv/ted-scraper/internal/adapters/rest"
	"github.com/stnslvsvnv/ted-scraper/internal/adapters/tedapi"
	"github.com/stnslvsvnv/ted-scraper/internal/configs"
	"github.com/stnslvsvnv/ted-scraper/internal/core/port"
	"github.com/stnslvsvnv/ted-scraper/internal/core/usecase"
	fluentlogger "github.com/stnslvsvnv/ted-scraper/pkg/fluent_logger"
)

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	logger       port.LoggerPort
	fluentClient *fluent.Fluent // держим отдельно для корректного закрытия
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. Инициализация логгеров ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. Исходящий адаптер к TED ---
	tedAdapter := tedapi.NewTedFetcherAdapter(tedapi.Config{
		BaseURL: appConfig.TedAPI.URL,
		APIKey:  appConfig.TedAPI.APIKey,
		Scope:   appConfig.TedAPI.Scope,
		Fields:  appConfig.TedAPI.Fields,
		Timeout: appConfig.TedAPI.Timeout,
	})
	appLogger.Info("TED adapter initialized", port.Fields{
		"url":             appConfig.TedAPI.URL,
		"api_key_present": appConfig.TedAPI.APIKey != "",
		"custom_fields":   len(appConfig.TedAPI.Fields) > 0,
	})

	// --- 3. Use cases (ядро бизнес-логики) ---
	searchNoticesUseCase := usecase.NewSearchNoticesUseCase(tedAdapter)
	getNoticeUseCase := usecase.NewGetNoticeUseCase(tedAdapter)
	checkHealthUseCase := usecase.NewCheckHealthUseCase(tedAdapter)

	// --- 4. Входящий адаптер (REST + статика фронтенда) ---
	apiHandlers := rest.NewSearchHandlers(searchNoticesUseCase, getNoticeUseCase, checkHealthUseCase)
	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.WebDir, apiHandlers, baseLogger)

	return &App{
		config:       appConfig,
		apiServer:    apiServer,
		logger:       appLogger,
		fluentClient: fluentClient,
	}, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// пишем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		a.logger.Error("HTTP server failed to start, shutting down", err, nil)
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
