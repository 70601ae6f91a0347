package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/kebabmane/toDo/internal/config"
	"github.com/kebabmane/toDo/internal/db"
	"github.com/kebabmane/toDo/internal/health"
	"github.com/kebabmane/toDo/internal/jwt"
	"github.com/kebabmane/toDo/internal/logger"
	"github.com/kebabmane/toDo/internal/metrics"
	"github.com/kebabmane/toDo/internal/middlewares"
	"github.com/kebabmane/toDo/internal/password"
	"github.com/kebabmane/toDo/internal/repositories"
	"github.com/kebabmane/toDo/internal/server"
	"github.com/kebabmane/toDo/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	shutdownTimeout     = 10 * time.Second
	healthCheckInterval = 10 * time.Second
)

// @title ToDo API
// @version 1.0.0
// @description Multi-user todo service with lists, ordering and role based administration
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// newKafkaWriter returns nil when no brokers are configured, which disables
// reset event publishing.
func newKafkaWriter(cfg config.KafkaConfig) services.KafkaWriter {
	if len(cfg.Brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.ResetTopic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// run initializes the logger, database, Redis, Kafka and both servers, then
// blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	metrics.Init()

	dsn := cfg.Postgres.DSN()
	if cfg.App.AutoMigrate {
		if err := db.MigrateUp(dsn); err != nil {
			return err
		}
		logger.Log.Info("Database migrations applied")
	}

	conn, err := db.Open(ctx, dsn, cfg.Postgres.MaxOpenConns, cfg.Postgres.MaxIdleConns)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer conn.Close()

	kafkaWriter := newKafkaWriter(cfg.Kafka)
	if kafkaWriter != nil {
		defer kafkaWriter.Close()
	}

	tokens := jwt.New(jwt.WithSecretKey(cfg.JWT.SecretKey), jwt.WithExpiration(cfg.JWT.Expiration()))
	hasher := password.Hasher{}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(conn, middlewares.GetTxFromContext)
	resetRepo := repositories.NewResetTokenRepository(conn, middlewares.GetTxFromContext)
	todoRepo := repositories.NewTodoRepository(conn, middlewares.GetTxFromContext)
	listRepo := repositories.NewTodoListRepository(conn, middlewares.GetTxFromContext)

	// Initialize services
	svcs := server.Services{
		Auth:      services.NewAuthService(userRepo, resetRepo, tokens, hasher, kafkaWriter, cfg.ResetTokenTTL),
		Todos:     services.NewTodoService(todoRepo),
		Lists:     services.NewTodoListService(listRepo, todoRepo),
		ListTodos: services.NewListTodoService(listRepo, todoRepo),
		Users:     services.NewAdminService(userRepo, hasher),
	}

	opts := []server.Option{
		server.WithVersion(buildVersion),
		server.WithSwaggerURL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.App.Host, cfg.App.Port)),
	}
	if cfg.RateLimit.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		limiter := repositories.NewRateLimitRepository(rdb, cfg.RateLimit.Window)
		opts = append(opts, server.WithRateLimit(limiter, int64(cfg.RateLimit.Requests)))
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.App.Host, cfg.App.Port),
		Handler:           server.NewRouter(conn, tokens, svcs, opts...),
		ReadHeaderTimeout: 5 * time.Second,
	}

	healthLis, err := net.Listen("tcp", ":"+cfg.GRPCHealthPort)
	if err != nil {
		return fmt.Errorf("gRPC health listener failed: %w", err)
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		if err := health.New(conn, healthCheckInterval).Serve(ctxShutdown, healthLis); err != nil {
			errChan <- fmt.Errorf("gRPC health server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
