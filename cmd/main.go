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
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/mundo-divertido/internal/handlers"
	"github.com/sbilibin2017/mundo-divertido/internal/health"
	"github.com/sbilibin2017/mundo-divertido/internal/jwt"
	"github.com/sbilibin2017/mundo-divertido/internal/logger"
	"github.com/sbilibin2017/mundo-divertido/internal/middlewares"
	"github.com/sbilibin2017/mundo-divertido/internal/repositories"
	"github.com/sbilibin2017/mundo-divertido/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/mundo-divertido/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title mundo-divertido API
// @version 1.0.0
// @description Children's activity tracker: accounts, child profiles, activity time and catalog
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
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

// config is the process configuration read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	StoreBackend   string // memory or postgres
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	SessionBackend string // memory or redis
	SessionSecret  string
	SessionTTL     time.Duration
	SessionPrune   time.Duration

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string // empty disables activity events
	KafkaTopic   string

	GRPCHealthPort string // empty disables the health listener
}

// parseConfig loads environment variables from a file and returns the
// application, storage, session, Redis, Kafka and health configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var firstErr error
	getInt := func(key, defaultValue string) int {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", key, err)
		}
		return n
	}

	cfg := &config{
		// Application config
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		// Store config
		StoreBackend:   getEnv("STORE_BACKEND", "memory"),
		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         getInt("POSTGRES_PORT", "5432"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "database"),
		PGMaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", "16"),
		PGMaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", "8"),

		// Session config
		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
		SessionSecret:  getEnv("SESSION_SECRET", "mundo-divertido-secret"),
		SessionTTL:     time.Duration(getInt("SESSION_TTL_SECOND", "86400")) * time.Second,
		SessionPrune:   time.Duration(getInt("SESSION_PRUNE_SECOND", "86400")) * time.Second,

		// Redis config
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getInt("REDIS_PORT", "6379"),
		RedisDB:           getInt("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", "2"),

		// Kafka config
		KafkaTopic: getEnv("KAFKA_TOPIC", "activities"),

		// gRPC health config
		GRPCHealthPort: getEnv("GRPC_HEALTH_PORT", ""),
	}
	if firstErr != nil {
		return nil, firstErr
	}

	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	switch cfg.StoreBackend {
	case "memory", "postgres":
	default:
		return nil, fmt.Errorf("STORE_BACKEND: unknown backend %q", cfg.StoreBackend)
	}
	switch cfg.SessionBackend {
	case "memory", "redis":
	default:
		return nil, fmt.Errorf("SESSION_BACKEND: unknown backend %q", cfg.SessionBackend)
	}
	if cfg.SessionTTL <= 0 {
		return nil, errors.New("SESSION_TTL_SECOND must be positive")
	}

	return cfg, nil
}

// store is the method set both Activity Store backends provide.
type store interface {
	services.UserRepository
	services.ChildRepository
	services.ActivityRepository
	services.CatalogRepository
}

// app holds the services the router dispatches to.
type app struct {
	tokens     *jwt.JWT
	auth       *services.AuthService
	children   *services.ChildService
	activities *services.ActivityService
	catalog    *services.CatalogService
	dashboard  *services.DashboardService
}

func newApp(st store, sessions services.SessionRepository, tokens *jwt.JWT, ttl time.Duration, kafkaWriter services.KafkaWriter) *app {
	activities := services.NewActivityService(st, kafkaWriter)
	return &app{
		tokens:     tokens,
		auth:       services.NewAuthService(st, sessions, tokens, services.WithSessionTTL(ttl)),
		children:   services.NewChildService(st),
		activities: activities,
		catalog:    services.NewCatalogService(st),
		dashboard:  services.NewDashboardService(st, activities),
	}
}

// newRouter mounts every API route under /api plus the swagger UI.
func newRouter(swaggerURL string, a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.SessionMiddleware(a.tokens, a.auth))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/login", handlers.NewLoginHandler(a.auth, a.tokens))
		r.Post("/guest-login", handlers.NewGuestLoginHandler(a.auth, a.tokens))
		r.Post("/register", handlers.NewRegisterHandler(a.auth, a.tokens))
		r.Post("/logout", handlers.NewLogoutHandler(a.auth, a.tokens))

		r.Post("/activity", handlers.NewCreateActivityHandler(a.activities))
		r.Get("/activities/{childId}/{date}", handlers.NewListActivitiesHandler(a.activities))
		r.Get("/activities/{childId}/{date}/stats", handlers.NewDailyStatsHandler(a.activities))

		r.Get("/photos", handlers.NewPhotosHandler(a.catalog))
		r.Get("/songs", handlers.NewSongsHandler(a.catalog))

		// Routes that need a guest or user session
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireSession)
			r.Get("/user", handlers.NewGetUserHandler(a.auth))
			r.Get("/child", handlers.NewGetChildHandler(a.children))
			r.Post("/child", handlers.NewCreateChildHandler(a.children))
			r.Put("/child/{id}", handlers.NewUpdateChildHandler(a.children))
			r.Get("/dashboard", handlers.NewDashboardHandler(a.dashboard))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}

// newKafkaWriter builds the activity event writer. Writes are async so a
// request never waits for a batch to fill; delivery errors are logged.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("Failed to deliver activity events to Kafka", "count", len(messages), "error", err)
			}
		},
	}
}

// run initializes the logger, the store and session backends, the Kafka
// writer and the HTTP and gRPC health servers, then blocks until shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	checks := map[string]health.Checker{}

	// Activity Store
	var st store
	switch cfg.StoreBackend {
	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
		log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.PGMaxOpenConns)
		db.SetMaxIdleConns(cfg.PGMaxIdleConns)

		pg := repositories.NewPostgresStore(db)
		if err := pg.Migrate(ctx); err != nil {
			return fmt.Errorf("PostgreSQL migration failed: %w", err)
		}
		st = pg
		checks["store"] = db.PingContext
	default:
		log.Info("Using in-memory store")
		st = repositories.NewMemoryStore()
	}

	// Session store
	var sessions services.SessionRepository
	switch cfg.SessionBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		sessions = repositories.NewRedisSessionStore(rdb)
		checks["sessions"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	default:
		mem := repositories.NewMemorySessionStore()
		mem.StartPruner(ctx, cfg.SessionPrune)
		sessions = mem
	}

	// Activity events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := newKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer w.Close()
		kafkaWriter = w
		log.Infow("Publishing activity events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	tokens := jwt.New(jwt.WithSecretKey(cfg.SessionSecret), jwt.WithExpiration(cfg.SessionTTL))
	a := newApp(st, sessions, tokens, cfg.SessionTTL, kafkaWriter)

	addr := net.JoinHostPort(cfg.AppHost, cfg.AppPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: newRouter(fmt.Sprintf("http://%s/swagger/doc.json", addr), a),
	}

	errChan := make(chan error, 2)

	if cfg.GRPCHealthPort != "" {
		hs := health.NewServer(net.JoinHostPort(cfg.AppHost, cfg.GRPCHealthPort), 10*time.Second, checks)
		go func() {
			if err := hs.Run(ctx); err != nil {
				errChan <- fmt.Errorf("gRPC health server failed: %w", err)
			}
		}()
	}

	go func() {
		log.Infof("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	// Graceful shutdown
	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
