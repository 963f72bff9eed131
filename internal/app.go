package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	jwt_adapter "property-service/internal/adapters/jwt"
	logger_adapter "property-service/internal/adapters/logger"
	postgres_adapter "property-service/internal/adapters/postgres"
	rabbitmq_adapter "property-service/internal/adapters/rabbitmq"
	"property-service/internal/adapters/rest"
	"property-service/internal/configs"
	"property-service/internal/core/port"
	"property-service/internal/core/usecase"
	"property-service/internal/db"
	fluentlogger "property-service/pkg/fluent_logger"
	"property-service/pkg/postgres"
	"property-service/pkg/rabbitmq"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App wires every adapter and use case together and owns their
// lifecycles.
type App struct {
	config    *configs.Config
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	eventPublisher port.EventPublisherPort
	fluentClient   *fluent.Fluent
	logger         port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- loggers ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

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

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- storage ---
	if err := db.RunMigrations(appConfig.DatabaseURL); err != nil {
		appLogger.Error("Failed to apply database migrations", err, nil)
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	appLogger.Info("Database migrations applied.", nil)

	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.DatabaseURL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	propertyStorage, err := postgres_adapter.NewPropertyStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create property storage adapter: %w", err)
	}
	userRepository, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	favoritesRepository, err := postgres_adapter.NewFavoritesRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create favorites repository: %w", err)
	}
	blogRepository, err := postgres_adapter.NewBlogRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create blog repository: %w", err)
	}

	tokenService, err := jwt_adapter.NewTokenService(appConfig.JWTSecret)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	// --- event publishing, optional ---
	var eventPublisher port.EventPublisherPort
	if appConfig.RabbitMQ.Enabled {
		producer, err := rabbitmq.NewPublisher(rabbitmq.PublisherConfig{
			URL:                      appConfig.RabbitMQ.URL,
			ExchangeName:             appConfig.RabbitMQ.Exchange,
			ExchangeType:             "topic",
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
		})
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ, continuing without event publishing", err, nil)
		} else {
			eventPublisher, err = rabbitmq_adapter.NewPropertyEventsPublisher(producer)
			if err != nil {
				producer.Close()
				dbPool.Close()
				return nil, fmt.Errorf("failed to create property events publisher: %w", err)
			}
			appLogger.Info("RabbitMQ event publisher initialized.", port.Fields{"exchange": appConfig.RabbitMQ.Exchange})
		}
	}

	appLogger.Info("All persistence and service adapters initialized.", nil)

	// --- use cases ---
	searchPropertiesUseCase := usecase.NewSearchPropertiesUseCase(propertyStorage)
	getPropertyUseCase := usecase.NewGetPropertyUseCase(propertyStorage)
	createPropertyUseCase := usecase.NewCreatePropertyUseCase(propertyStorage, eventPublisher)
	updatePropertyUseCase := usecase.NewUpdatePropertyUseCase(propertyStorage, eventPublisher)
	deletePropertyUseCase := usecase.NewDeletePropertyUseCase(propertyStorage, eventPublisher)
	getPropertyStatsUseCase := usecase.NewGetPropertyStatsUseCase(propertyStorage)

	registerUserUseCase := usecase.NewRegisterUserUseCase(userRepository)
	loginUserUseCase := usecase.NewLoginUserUseCase(userRepository, tokenService, appConfig.TokenTTL)
	validateTokenUseCase := usecase.NewValidateTokenUseCase(tokenService)
	getUserUseCase := usecase.NewGetUserUseCase(userRepository)

	addToFavoritesUseCase := usecase.NewAddToFavoritesUseCase(favoritesRepository, propertyStorage)
	removeFromFavoritesUseCase := usecase.NewRemoveFromFavoritesUseCase(favoritesRepository)
	getUserFavoritesUseCase := usecase.NewGetUserFavoritesUseCase(favoritesRepository)
	checkFavoriteUseCase := usecase.NewCheckFavoriteUseCase(favoritesRepository)

	listBlogPostsUseCase := usecase.NewListBlogPostsUseCase(blogRepository)
	getBlogPostUseCase := usecase.NewGetBlogPostUseCase(blogRepository)
	createBlogPostUseCase := usecase.NewCreateBlogPostUseCase(blogRepository)

	// --- REST server ---
	propertiesHandler := rest.NewPropertiesHandler(
		searchPropertiesUseCase, getPropertyUseCase, createPropertyUseCase,
		updatePropertyUseCase, deletePropertyUseCase, getPropertyStatsUseCase,
	)
	authHandler := rest.NewAuthHandler(registerUserUseCase, loginUserUseCase, getUserUseCase)
	favoritesHandler := rest.NewFavoritesHandler(
		addToFavoritesUseCase, removeFromFavoritesUseCase,
		getUserFavoritesUseCase, checkFavoriteUseCase,
	)
	blogHandler := rest.NewBlogHandler(listBlogPostsUseCase, getBlogPostUseCase, createBlogPostUseCase)
	authMiddleware := rest.NewAuthMiddleware(validateTokenUseCase)

	apiServer := rest.NewServer(
		appConfig.Port, appConfig.CORSAllowedOrigins,
		propertiesHandler, authHandler, favoritesHandler, blogHandler,
		authMiddleware, baseLogger,
	)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:         appConfig,
		dbPool:         dbPool,
		apiServer:      apiServer,
		eventPublisher: eventPublisher,
		fluentClient:   fluentClient,
		logger:         appLogger,
	}, nil
}

// Run starts the application and blocks until a shutdown signal or a
// server error.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.eventPublisher != nil {
			if err := a.eventPublisher.Close(); err != nil {
				a.logger.Error("Error closing event publisher", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// stdout, fluent may already be gone
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Port})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

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
