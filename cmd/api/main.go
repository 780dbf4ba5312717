package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/intercity/internal/graph"
	"github.com/piresc/intercity/internal/pkg/auth"
	"github.com/piresc/intercity/internal/pkg/config"
	"github.com/piresc/intercity/internal/pkg/constants"
	"github.com/piresc/intercity/internal/pkg/database"
	"github.com/piresc/intercity/internal/pkg/health"
	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/piresc/intercity/internal/pkg/middleware"
	nsqpkg "github.com/piresc/intercity/internal/pkg/nsq"
	"github.com/piresc/intercity/internal/pkg/ratelimit"
	"github.com/piresc/intercity/internal/pkg/server"
	bookingRepository "github.com/piresc/intercity/services/bookings/repository"
	bookingUsecase "github.com/piresc/intercity/services/bookings/usecase"
	driverRepository "github.com/piresc/intercity/services/drivers/repository"
	driverUsecase "github.com/piresc/intercity/services/drivers/usecase"
	notificationGateway "github.com/piresc/intercity/services/notifications/gateway"
	notificationRepository "github.com/piresc/intercity/services/notifications/repository"
	notificationUsecase "github.com/piresc/intercity/services/notifications/usecase"
	paymentGateway "github.com/piresc/intercity/services/payments/gateway"
	paymentRepository "github.com/piresc/intercity/services/payments/repository"
	paymentUsecase "github.com/piresc/intercity/services/payments/usecase"
	reviewRepository "github.com/piresc/intercity/services/reviews/repository"
	reviewUsecase "github.com/piresc/intercity/services/reviews/usecase"
	tripRepository "github.com/piresc/intercity/services/trips/repository"
	tripUsecase "github.com/piresc/intercity/services/trips/usecase"
	userRepository "github.com/piresc/intercity/services/users/repository"
	userUsecase "github.com/piresc/intercity/services/users/usecase"
)

func main() {
	startedAt := time.Now()
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/api.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL connection pool
	db, err := database.Init(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	if configs.Database.AutoMigrate {
		if err := database.Migrate(context.Background(), db); err != nil {
			zapLogger.Fatal("Failed to migrate database", logger.Err(err))
		}
	}

	healthHandler := health.NewHandler(startedAt)
	healthHandler.AddCheck("postgres", func(ctx context.Context) error {
		var one int
		return db.Get(ctx, &one, "SELECT 1")
	})

	// Initialize rate limiter
	limitCfg := ratelimit.Config{Window: configs.RateLimit.Window, MaxRequests: configs.RateLimit.MaxRequests}
	var limiter ratelimit.Limiter
	var redisClient *database.RedisClient
	switch configs.RateLimit.Backend {
	case "redis":
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		limiter = ratelimit.NewRedisLimiter(redisClient.GetClient(), limitCfg, constants.KeyRateLimitIP, time.Now)
		healthHandler.AddCheck("redis", func(ctx context.Context) error {
			return redisClient.GetClient().Ping(ctx).Err()
		})
	default:
		memLimiter := ratelimit.NewMemoryLimiter(limitCfg, time.Now)
		memLimiter.StartSweeper(5 * time.Minute)
		defer memLimiter.Stop()
		limiter = memLimiter
	}

	// Initialize NSQ producer
	var publisher nsqpkg.Publisher = nsqpkg.NopPublisher{}
	var producer *nsqpkg.Producer
	if configs.NSQ.Address != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to create NSQ producer", logger.Err(err))
		}
		publisher = producer
	} else {
		zapLogger.Warn("NSQ_ADDRESS is empty, notifications will be dropped")
	}
	notificationGW := notificationGateway.NewNotificationGW(publisher)

	// Initialize repositories
	userRepo := userRepository.NewUserRepo(db)
	driverRepo := driverRepository.NewDriverRepo(db)
	tripRepo := tripRepository.NewTripRepo(db)
	bookingRepo := bookingRepository.NewBookingRepo(db)
	paymentRepo := paymentRepository.NewPaymentRepo(db)
	reviewRepo := reviewRepository.NewReviewRepo(db)
	notificationRepo := notificationRepository.NewNotificationRepo(db)

	// Initialize usecases
	services := graph.Services{
		Users:         userUsecase.NewUserUC(userRepo),
		Drivers:       driverUsecase.NewDriverUC(driverRepo, userRepo),
		Trips:         tripUsecase.NewTripUC(tripRepo, driverRepo, notificationGW),
		Bookings:      bookingUsecase.NewBookingUC(bookingRepo, notificationGW, configs.Booking),
		Payments:      paymentUsecase.NewPaymentUC(paymentRepo, bookingRepo, paymentGateway.NewHTTPGateway(configs.PaymentGateway), notificationGW),
		Reviews:       reviewUsecase.NewReviewUC(reviewRepo, bookingRepo, notificationGW),
		Notifications: notificationUsecase.NewNotificationUC(notificationRepo),
	}

	schema, err := graph.NewSchema(graph.NewResolver(services))
	if err != nil {
		zapLogger.Fatal("Failed to parse GraphQL schema", logger.Err(err))
	}
	policy, err := graph.NewPolicy(graph.SDL, graph.DefaultPolicy)
	if err != nil {
		zapLogger.Fatal("Failed to build access policy", logger.Err(err))
	}
	if missing, unknown := policy.Uncovered(); len(missing) > 0 || len(unknown) > 0 {
		zapLogger.Warn("Access policy does not match schema",
			logger.Strings("missing", missing),
			logger.Strings("unknown", unknown))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.RateLimiterMiddleware(limiter))
	e.Use(middleware.AuthContextMiddleware(auth.NewContextBuilder(auth.NewJWTVerifier(configs.JWT))))

	health.RegisterHealthEndpoints(e, healthHandler)
	graph.NewHandler(schema, policy, configs.App.IsProduction()).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if producer != nil {
		srv.OnShutdown(func(context.Context) error {
			producer.Stop()
			return nil
		})
	}
	if redisClient != nil {
		srv.OnShutdown(func(context.Context) error {
			return redisClient.Close()
		})
	}
	srv.OnShutdown(func(context.Context) error {
		return database.Close()
	})

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
