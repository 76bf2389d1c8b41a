package server

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cyphera/store-admin/apps/api/handlers"
	awsclient "github.com/cyphera/store-admin/libs/go/client/aws"
	"github.com/cyphera/store-admin/libs/go/client/navigation"
	"github.com/cyphera/store-admin/libs/go/client/notices"
	"github.com/cyphera/store-admin/libs/go/client/options"
	"github.com/cyphera/store-admin/libs/go/client/plugins"
	"github.com/cyphera/store-admin/libs/go/client/tracks"
	"github.com/cyphera/store-admin/libs/go/constants"
	"github.com/cyphera/store-admin/libs/go/helpers"
	"github.com/cyphera/store-admin/libs/go/interfaces"
	"github.com/cyphera/store-admin/libs/go/logger"
	"github.com/cyphera/store-admin/libs/go/middleware"
	"github.com/cyphera/store-admin/libs/go/services"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	chartHandler        *handlers.ChartHandler
	paymentsTaskHandler *handlers.PaymentsTaskHandler
	marketingHandler    *handlers.MarketingHandler
	optionsHandler      *handlers.OptionsHandler
	noticesHandler      *handlers.NoticesHandler
	healthHandler       *handlers.HealthHandler

	rateLimiter  *middleware.RateLimiter
	optionsStore *options.Store
)

// Default rate limit: 100 requests per second, burst of 200
const (
	defaultRateLimit = 100
	defaultRateBurst = 200
)

// optionsBackend is what the server needs from a persistence layer
type optionsBackend interface {
	interfaces.OptionsBackend
	Ping(ctx context.Context) error
}

func InitializeHandlers() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	stage, defaulted, err := helpers.ResolveStage(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	if defaulted {
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	backend := newOptionsBackend(ctx, stage, secretsClient)
	store := options.NewStore(backend)
	seedStoreCountry(ctx, store)
	optionsStore = store

	noticeQueue := notices.NewQueue()
	router := navigation.NewRouter()

	paymentsTask := services.NewPaymentsTaskService(services.PaymentsTaskConfig{
		Options:   store,
		Notifier:  noticeQueue,
		Router:    router,
		Recorder:  newEventRecorder(ctx, secretsClient),
		Installer: plugins.NewInstaller(store),
	})
	if err := paymentsTask.Initialize(ctx); err != nil {
		logger.Fatal("Failed to initialize payments task", zap.Error(err))
	}

	chartHandler = handlers.NewChartHandler(services.NewChartService())
	paymentsTaskHandler = handlers.NewPaymentsTaskHandler(paymentsTask)
	marketingHandler = handlers.NewMarketingHandler(services.NewWelcomeCardService(store))
	optionsHandler = handlers.NewOptionsHandler(store)
	noticesHandler = handlers.NewNoticesHandler(noticeQueue, router)
	healthHandler = handlers.NewHealthHandler().WithCheck("options_backend", backend.Ping)

	rateLimiter = middleware.NewRateLimiter(defaultRateLimit, defaultRateBurst)
}

// newOptionsBackend connects to Postgres. Deployed stages build the DSN from
// the RDS secret; the local stage reads DATABASE_URL and falls back to an
// in-memory backend when it is not set.
func newOptionsBackend(ctx context.Context, stage string, secretsClient *awsclient.SecretsManagerClient) optionsBackend {
	dsn, err := helpers.ResolveDatabaseDSN(ctx, stage, secretsClient, os.Getenv)
	if errors.Is(err, helpers.ErrNoDatabaseURL) {
		logger.Warn("DATABASE_URL not set, keeping store options in memory", zap.Error(err))
		return options.NewMemoryBackend(nil)
	}
	if err != nil {
		logger.Fatal("Unable to resolve database DSN", zap.String("stage", stage), zap.Error(err))
	}

	pool, err := helpers.NewPool(ctx, dsn, helpers.PoolSettings{
		MaxConns:        10,
		MinConns:        2,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 15 * time.Minute,
	})
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	backend := options.NewPostgresBackend(pool)
	if err := backend.EnsureSchema(ctx); err != nil {
		logger.Fatal("Unable to prepare options table", zap.Error(err))
	}
	return backend
}

// newEventRecorder publishes tracking events to SQS when a queue is
// configured and logs them otherwise.
func newEventRecorder(ctx context.Context, secretsClient *awsclient.SecretsManagerClient) interfaces.EventRecorder {
	queueURL, err := secretsClient.GetSecretString(ctx, "EVENTS_QUEUE_URL_ARN", "EVENTS_QUEUE_URL")
	if err != nil {
		logger.Info("No events queue configured, tracking events will only be logged")
		return tracks.NewLogRecorder()
	}

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Fatal("Unable to load AWS SDK config for SQS", zap.Error(err))
	}

	logger.Info("Publishing tracking events to SQS", zap.String("queue_url", queueURL))
	return tracks.NewSQSRecorder(sqs.NewFromConfig(awsCfg), queueURL)
}

// seedStoreCountry writes STORE_COUNTRY as the store's default country when
// the store has none yet.
func seedStoreCountry(ctx context.Context, store *options.Store) {
	country := os.Getenv("STORE_COUNTRY")
	if country == "" {
		return
	}

	current, err := store.GetOptions(ctx, []string{constants.OptionDefaultCountry})
	if err != nil {
		logger.Fatal("Failed to read store country", zap.Error(err))
	}
	if existing, _ := current[constants.OptionDefaultCountry].(string); existing != "" {
		return
	}

	if err := store.SaveOptions(ctx, map[string]interface{}{constants.OptionDefaultCountry: country}); err != nil {
		logger.Fatal("Failed to seed store country", zap.Error(err))
	}
	logger.Info("Seeded store country", zap.String("country", country))
}

// Shutdown waits for queued option writes and stops background workers
func Shutdown() {
	if optionsStore != nil {
		optionsStore.Wait()
	}
	if rateLimiter != nil {
		rateLimiter.Stop()
	}
}

func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(rateLimiter.Middleware())

	isDevelopment := os.Getenv("GIN_MODE") != "release"
	router.Use(middleware.EnhancedLoggingMiddleware(isDevelopment))
	if !isDevelopment {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/charts/prepare", chartHandler.PrepareChart)

		payments := v1.Group("/tasks/payments")
		{
			payments.GET("", paymentsTaskHandler.GetPaymentsTask)
			payments.POST("/refresh", paymentsTaskHandler.RefreshPaymentsTask)
			payments.POST("/complete", paymentsTaskHandler.CompleteTask)
			payments.POST("/skip", paymentsTaskHandler.SkipTask)

			methods := payments.Group("/methods/:key")
			{
				methods.POST("/toggle", paymentsTaskHandler.ToggleMethod)
				methods.POST("/configure", paymentsTaskHandler.ConfigureMethod)
				methods.POST("/configured", paymentsTaskHandler.MarkMethodConfigured)
				methods.POST("/configuration-finished", paymentsTaskHandler.FinishMethodConfiguration)
				methods.POST("/install", paymentsTaskHandler.InstallMethodPlugins)
			}
		}

		marketing := v1.Group("/marketing")
		{
			marketing.GET("/welcome-card", marketingHandler.GetWelcomeCard)
			marketing.POST("/welcome-card/hide", marketingHandler.HideWelcomeCard)
		}

		v1.GET("/options", optionsHandler.GetOptions)
		v1.PUT("/options", optionsHandler.UpdateOptions)

		v1.GET("/notices", noticesHandler.DrainNotices)
		v1.GET("/navigation", noticesHandler.GetNavigation)
		v1.POST("/navigation", noticesHandler.Navigate)
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = envList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	corsConfig.AllowMethods = envList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "OPTIONS"})
	corsConfig.AllowHeaders = envList("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"})
	corsConfig.ExposeHeaders = envList("CORS_EXPOSED_HEADERS", []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		"X-Correlation-ID",
	})
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}

// envList splits a comma separated environment variable, or returns def when unset
func envList(key string, def []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	items := strings.Split(raw, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}
