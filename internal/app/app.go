package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/analytics"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/config"
	domainservice "github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/infrastructure/ai"
	cronpkg "github.com/Isha-commits965/wellness-tracker-backend/internal/infrastructure/cron"
	infradb "github.com/Isha-commits965/wellness-tracker-backend/internal/infrastructure/db"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/infrastructure/kafka"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/infrastructure/postgres"
	infraredis "github.com/Isha-commits965/wellness-tracker-backend/internal/infrastructure/redis"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/logger"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/service"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/transport/grpc"
	transporthttp "github.com/Isha-commits965/wellness-tracker-backend/internal/transport/http"
	"github.com/Isha-commits965/wellness-tracker-backend/pkg/hash"
	pkgjwt "github.com/Isha-commits965/wellness-tracker-backend/pkg/jwt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// healthInterval is how often the gRPC health status re-checks dependencies
const healthInterval = 15 * time.Second

const defaultShutdownTimeout = 10 * time.Second

// App represents the application
type App struct {
	config          *config.Config
	log             *zap.Logger
	httpServer      *transporthttp.Server
	grpcServer      *grpc.Server
	digestScheduler *cronpkg.DigestScheduler
	producer        *kafka.Producer
	redisClient     *redis.Client
	dbPool          *pgxpool.Pool
}

// NewLogger builds the process logger from the logging section
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Fields: map[string]string{
			"service":     cfg.Service.Name,
			"environment": cfg.Service.Environment,
			"version":     cfg.Service.Version,
		},
	})
}

// New creates a new application
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	loc, err := cfg.Analytics.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load analytics timezone: %w", err)
	}
	policy, err := analytics.ParseStreakPolicy(cfg.Analytics.StreakPolicy)
	if err != nil {
		return nil, fmt.Errorf("failed to parse streak policy: %w", err)
	}

	dbPool, err := infradb.NewPostgresPool(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	log.Info("Connected to PostgreSQL", zap.String("host", cfg.Database.Host))

	a := &App{config: cfg, log: log, dbPool: dbPool}

	if cfg.Database.AutoMigrate {
		if err := infradb.Migrate(ctx, dbPool, log); err != nil {
			a.close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Interface values stay nil when a backend is disabled
	var cache domainservice.AnalyticsCache
	if cfg.Redis.Enabled {
		client, err := infraredis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		a.redisClient = client
		cache = infraredis.NewAnalyticsCache(client, cfg.Redis.AnalyticsTTL)
		log.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		log.Info("Analytics cache is disabled in configuration")
	}

	var publisher domainservice.EventPublisher
	if cfg.Kafka.Enabled {
		a.producer = kafka.NewProducer(&cfg.Kafka, log)
		publisher = a.producer
		log.Info("Kafka producer initialized", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	} else {
		log.Info("Event publishing is disabled in configuration")
	}

	companion, err := ai.NewCompanion(&cfg.AI, log)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create journal companion: %w", err)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	habitRepo := postgres.NewHabitRepository(dbPool)
	checkInRepo := postgres.NewCheckInRepository(dbPool)
	moodRepo := postgres.NewMoodRepository(dbPool)
	journalRepo := postgres.NewJournalRepository(dbPool)
	goalRepo := postgres.NewGoalRepository(dbPool)

	// Services
	clock := service.NewClock(loc)
	tokenManager := pkgjwt.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.Issuer)
	authService := service.NewAuthService(userRepo, hash.NewHasher(cfg.JWT.BcryptCost), tokenManager, log)
	habitService := service.NewHabitService(habitRepo, checkInRepo, clock, cache, publisher, log)
	moodService := service.NewMoodService(moodRepo, clock, cache, publisher, log)
	journalService := service.NewJournalService(journalRepo, companion, clock, cache, publisher, log)
	goalService := service.NewGoalService(goalRepo, clock, publisher, log)
	analyticsService := service.NewAnalyticsService(service.AnalyticsRepositories{
		Users:    userRepo,
		Habits:   habitRepo,
		CheckIns: checkInRepo,
		Moods:    moodRepo,
		Journals: journalRepo,
	}, cache, publisher, clock, policy, log)

	// HTTP
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	router := transporthttp.NewRouter(transporthttp.RouterConfig{
		ServiceName:        cfg.Service.Name,
		Version:            cfg.Service.Version,
		AllowedOrigins:     cfg.CORS.AllowedOrigins,
		RateLimitPerMinute: cfg.HTTP.RateLimitPerMinute,
		MetricsPath:        metricsPath,
	}, transporthttp.Handlers{
		Auth:      transporthttp.NewAuthHandler(authService, log),
		Habits:    transporthttp.NewHabitHandler(habitService, analyticsService, log),
		Moods:     transporthttp.NewMoodHandler(moodService, log),
		Journal:   transporthttp.NewJournalHandler(journalService, log),
		Goals:     transporthttp.NewGoalHandler(goalService, log),
		Analytics: transporthttp.NewAnalyticsHandler(analyticsService, log),
	}, authService, log)
	a.httpServer = transporthttp.NewServer(&cfg.HTTP, router, log)

	if cfg.GRPC.Enabled {
		a.grpcServer = grpc.NewServer(cfg.GRPC.Port, log)
	}

	if cfg.Scheduler.Enabled {
		if publisher == nil {
			log.Warn("Digest scheduler enabled without Kafka, digests will be skipped")
		}
		a.digestScheduler = cronpkg.NewDigestScheduler(analyticsService, cfg.Scheduler.DigestSpec, loc, log)
	} else {
		log.Info("Digest scheduler is disabled in configuration")
	}

	return a, nil
}

// Run starts the application and blocks until an interrupt or a server failure
func (a *App) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.digestScheduler != nil {
		if err := a.digestScheduler.Start(); err != nil {
			a.close()
			return fmt.Errorf("failed to start digest scheduler: %w", err)
		}
	}

	serverErr := make(chan error, 2)

	go func() {
		if err := a.httpServer.Start(); err != nil {
			serverErr <- fmt.Errorf("http server: %w", err)
		}
	}()

	if a.grpcServer != nil {
		go a.grpcServer.MonitorHealth(ctx, healthInterval, a.healthChecks())
		go func() {
			if err := a.grpcServer.Start(); err != nil {
				serverErr <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	a.log.Info("Service started",
		zap.Int("http_port", a.config.HTTP.Port),
		zap.Bool("grpc_enabled", a.grpcServer != nil),
	)

	var runErr error
	select {
	case sig := <-quit:
		a.log.Info("Shutting down", zap.String("signal", sig.String()))
	case runErr = <-serverErr:
		a.log.Error("Server failed, shutting down", zap.Error(runErr))
	}

	cancel()
	if err := a.shutdown(); err != nil {
		runErr = errors.Join(runErr, err)
	}

	a.log.Info("Server shutdown complete")
	return runErr
}

func (a *App) healthChecks() map[string]grpc.CheckFunc {
	checks := map[string]grpc.CheckFunc{
		"postgres": a.dbPool.Ping,
	}
	if a.redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return a.redisClient.Ping(ctx).Err()
		}
	}
	return checks
}

// shutdown stops the servers before the backends they depend on
func (a *App) shutdown() error {
	timeout := a.config.HTTP.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if a.grpcServer != nil {
		a.grpcServer.Stop()
	}
	if a.digestScheduler != nil {
		a.digestScheduler.Stop()
	}

	if err := a.close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// close releases the backend clients that were opened
func (a *App) close() error {
	var errs []error
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close kafka producer: %w", err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
		}
	}
	if a.dbPool != nil {
		a.dbPool.Close()
	}
	return errors.Join(errs...)
}
