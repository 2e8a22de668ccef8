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
	"time"

	token_adapter "idx-service/internal/adapters/jwt"
	logger_adapter "idx-service/internal/adapters/logger"
	"idx-service/internal/adapters/memstore"
	postgres_adapter "idx-service/internal/adapters/postgres"
	rabbitmq_adapter "idx-service/internal/adapters/rabbitmq"
	"idx-service/internal/adapters/rest"
	"idx-service/internal/configs"
	"idx-service/internal/contextkeys"
	"idx-service/internal/core/port"
	"idx-service/internal/core/usecase"
	"idx-service/pkg/fluentlogger"
	"idx-service/pkg/postgres"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	store     *memstore.Store
	apiServer *rest.Server

	eventPublisher port.ListingEventPublisherPort
	eventListener  port.EventListenerPort

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. Loggers ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
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

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. Persistence and adapters ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	userRepo, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	favoritesRepo, err := postgres_adapter.NewFavoritesRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create favorites repository: %w", err)
	}
	savedSearchRepo, err := postgres_adapter.NewSavedSearchRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create saved search repository: %w", err)
	}
	notificationRepo, err := postgres_adapter.NewNotificationRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}

	tokenService, err := token_adapter.NewTokenService(appConfig.Auth.SigningKey)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	listingStore, err := memstore.NewStore(baseLogger.WithFields(port.Fields{"component": "memstore"}))
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to initialize listing store: %w", err)
	}
	appLogger.Info("All persistence and service adapters initialized.", nil)

	// --- 3. Use cases ---
	accessTokenTTL := time.Duration(appConfig.Auth.AccessTokenTTL) * time.Minute

	searchListingsUseCase := usecase.NewSearchListingsUseCase(listingStore)
	getListingUseCase := usecase.NewGetListingByIDUseCase(listingStore)
	registerUserUseCase := usecase.NewRegisterUserUseCase(userRepo, tokenService, accessTokenTTL)
	loginUserUseCase := usecase.NewLoginUserUseCase(userRepo, tokenService, accessTokenTTL)
	validateTokenUseCase := usecase.NewValidateTokenUseCase(tokenService)
	addToFavoritesUseCase := usecase.NewAddToFavoritesUseCase(favoritesRepo, listingStore)
	removeFromFavoritesUseCase := usecase.NewRemoveFromFavoritesUseCase(favoritesRepo)
	getUserFavoritesUseCase := usecase.NewGetUserFavoritesUseCase(favoritesRepo, listingStore)
	createSavedSearchUseCase := usecase.NewCreateSavedSearchUseCase(savedSearchRepo)
	getSavedSearchesUseCase := usecase.NewGetSavedSearchesUseCase(savedSearchRepo)
	getNotificationsUseCase := usecase.NewGetNotificationsUseCase(notificationRepo)
	markNotificationReadUseCase := usecase.NewMarkNotificationReadUseCase(notificationRepo)
	matchListingUseCase := usecase.NewMatchListingUseCase(savedSearchRepo, notificationRepo)

	// --- 4. Messaging ---
	eventPublisher, err := rabbitmq_adapter.NewListingEventPublisher(appConfig.RabbitMQ.URL,
		baseLogger.WithFields(port.Fields{"component": "listing_event_publisher"}))
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create listing event publisher: %w", err)
	}

	eventListener, err := rabbitmq_adapter.NewListingEventListener(appConfig.RabbitMQ.URL, matchListingUseCase,
		baseLogger.WithFields(port.Fields{"component": "listing_event_listener"}))
	if err != nil {
		_ = eventPublisher.Close()
		dbPool.Close()
		return nil, fmt.Errorf("failed to create listing event listener: %w", err)
	}

	// --- 5. REST API server ---
	listingsHandler := rest.NewListingsHandler(searchListingsUseCase, getListingUseCase)
	authHandlers := rest.NewAuthHandlers(registerUserUseCase, loginUserUseCase)
	favoritesHandlers := rest.NewFavoritesHandlers(addToFavoritesUseCase, removeFromFavoritesUseCase, getUserFavoritesUseCase)
	alertsHandlers := rest.NewAlertsHandlers(createSavedSearchUseCase, getSavedSearchesUseCase,
		getNotificationsUseCase, markNotificationReadUseCase)
	authMiddleware := rest.NewAuthMiddleware(validateTokenUseCase)

	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.CorsAllowedOrigins,
		listingsHandler, authHandlers, favoritesHandlers, alertsHandlers, authMiddleware, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		dbPool:    dbPool,
		store:     listingStore,
		apiServer: apiServer,

		eventPublisher: eventPublisher,
		eventListener:  eventListener,

		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run starts all components and blocks until a shutdown signal or a fatal
// component error.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.eventListener != nil {
			if err := a.eventListener.Close(); err != nil {
				a.logger.Error("Error closing event listener", err, nil)
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
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	listenerErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting listing event listener...", nil)
		if err := a.eventListener.Start(appCtx); err != nil {
			listenerErrors <- err
		}
	}()

	go a.announceSeedListings(appCtx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or component error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		a.logger.Error("Server failed, shutting down", err, nil)
	case err := <-listenerErrors:
		a.logger.Error("Event listener failed, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

// announceSeedListings publishes an ingest event for every listing loaded
// from the seed feed so saved-search alerts fire for pre-existing accounts.
func (a *App) announceSeedListings(ctx context.Context) {
	ctx = contextkeys.ContextWithLogger(ctx, a.logger)

	listings, err := a.store.All(ctx)
	if err != nil {
		a.logger.Error("Failed to load listings for ingest announcement", err, nil)
		return
	}

	published := 0
	for _, listing := range listings {
		if ctx.Err() != nil {
			return
		}
		if err := a.eventPublisher.PublishIngested(ctx, listing); err != nil {
			a.logger.Error("Failed to publish ingest event", err, port.Fields{"listing_id": listing.ID})
			continue
		}
		published++
	}
	a.logger.Info("Seed listings announced", port.Fields{"published": published})
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
