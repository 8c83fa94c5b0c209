package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/zodin-dev/symphony/internal/handlers"
	"github.com/zodin-dev/symphony/internal/jwt"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/middlewares"
	"github.com/zodin-dev/symphony/internal/repositories"
	"github.com/zodin-dev/symphony/internal/services"
	"github.com/zodin-dev/symphony/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/zodin-dev/symphony/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything the service needs to start.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers string
	KafkaTopic   string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	JWTSecretKey string
	JWTExpSecond int

	PostsPerPage int
	MediaPerPage int
}

// @title symphony API
// @version 1.0.0
// @description Social platform for sharing music and videos: follower graph, post feed, uploads and playback
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	var err error
	getEnvInt := func(key string, defaultValue int) int {
		v, convErr := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
		if convErr != nil && err == nil {
			err = fmt.Errorf("%s: %w", key, convErr)
		}
		return v
	}

	cfg := config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		PgHost:         getEnv("POSTGRES_HOST", "localhost"),
		PgPort:         getEnvInt("POSTGRES_PORT", 5432),
		PgUser:         getEnv("POSTGRES_USER", "user"),
		PgPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PgDB:           getEnv("POSTGRES_DB", "symphony"),
		PgMaxOpenConns: getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16),
		PgMaxIdleConns: getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8),

		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getEnvInt("REDIS_PORT", 6379),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getEnvInt("REDIS_POOL_SIZE", 10),
		RedisMinIdleConns: getEnvInt("REDIS_MIN_IDLE_CONNS", 2),
		RedisExpSecond:    getEnvInt("REDIS_EXP_SECOND", 60),

		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "engagement-events"),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    getEnv("MINIO_BUCKET", "symphony-media"),
		MinioUseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTExpSecond: getEnvInt("JWT_EXP_SECOND", 3600),

		PostsPerPage: getEnvInt("FEED_POSTS_PER_PAGE", 10),
		MediaPerPage: getEnvInt("FEED_MEDIA_PER_PAGE", 5),
	}

	return cfg, err
}

// run initializes the logger, database, Redis, MinIO, Kafka, and the HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.PgHost, cfg.PgPort, cfg.PgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Connect to MinIO
	mediaStorage, err := storage.NewMediaStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		logger.Log.Fatal("MinIO connection error:", err)
	}

	// Kafka writer for engagement events, optional
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaBrokers != "" {
		w := kafka.NewWriter(kafka.WriterConfig{
			Brokers: []string{cfg.KafkaBrokers},
			Topic:   cfg.KafkaTopic,
			Async:   true,
		})
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	followReadRepo := repositories.NewFollowReadRepository(db)
	followWriteRepo := repositories.NewFollowWriteRepository(db)
	followCacheRepo := repositories.NewFollowCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
	postReadRepo := repositories.NewPostReadRepository(db)
	postWriteRepo := repositories.NewPostWriteRepository(db)
	mediaReadRepo := repositories.NewMediaReadRepository(db)
	mediaWriteRepo := repositories.NewMediaWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	socialService := services.NewSocialService(userReadRepo, followWriteRepo, followCacheRepo)
	feedService := services.NewFeedService(followReadRepo, followCacheRepo, postReadRepo, mediaReadRepo, userReadRepo, cfg.PostsPerPage, cfg.MediaPerPage)
	contentService := services.NewContentService(mediaReadRepo, mediaWriteRepo, postWriteRepo, mediaStorage, kafkaWriter)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	followHandler := handlers.NewFollowHandler(socialService)
	unfollowHandler := handlers.NewUnfollowHandler(socialService)
	postsFeedHandler := handlers.NewPostsFeedHandler(feedService)
	musicFeedHandler := handlers.NewMusicFeedHandler(feedService)
	videosFeedHandler := handlers.NewVideosFeedHandler(feedService)
	createPostHandler := handlers.NewCreatePostHandler(contentService)
	getProfileHandler := handlers.NewGetProfileHandler(profileService)
	updateProfileHandler := handlers.NewUpdateProfileHandler(profileService)
	userPostsHandler := handlers.NewUserPostsHandler(feedService)
	userMusicHandler := handlers.NewUserMusicHandler(feedService)
	userVideosHandler := handlers.NewUserVideosHandler(feedService)
	uploadMusicHandler := handlers.NewUploadMusicHandler(contentService)
	uploadVideoHandler := handlers.NewUploadVideoHandler(contentService)
	listenHandler := handlers.NewListenHandler(contentService)
	watchHandler := handlers.NewWatchHandler(contentService)
	deleteMusicHandler := handlers.NewDeleteMusicHandler(contentService)
	deleteVideoHandler := handlers.NewDeleteVideoHandler(contentService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.TxMiddleware(db))

	// Public routes
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)

	// Public content routes; a token is honored when present so artists
	// don't count their own plays
	r.Group(func(r chi.Router) {
		r.Use(middlewares.OptionalAuthMiddleware(tokener))
		r.Get("/listen/{title}", listenHandler)
		r.Get("/watch/{title}", watchHandler)
		r.Get("/users/{username}/music", userMusicHandler)
		r.Get("/users/{username}/videos", userVideosHandler)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Use(middlewares.LastSeenMiddleware(userWriteRepo))

		r.Get("/feed/posts", postsFeedHandler)
		r.Get("/feed/music", musicFeedHandler)
		r.Get("/feed/videos", videosFeedHandler)
		r.Post("/posts", createPostHandler)

		r.Get("/users/{username}", getProfileHandler)
		r.Get("/users/{username}/posts", userPostsHandler)
		r.Put("/profile", updateProfileHandler)

		r.Post("/users/{username}/follow", followHandler)
		r.Delete("/users/{username}/follow", unfollowHandler)

		r.Post("/upload/music", uploadMusicHandler)
		r.Post("/upload/videos", uploadVideoHandler)
		r.Delete("/music/{title}", deleteMusicHandler)
		r.Delete("/videos/{title}", deleteVideoHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
