package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-tracker/docs"
	"github.com/johnquangdev/meeting-tracker/internal/adapter/handler"
	"github.com/johnquangdev/meeting-tracker/internal/adapter/repository"
	"github.com/johnquangdev/meeting-tracker/internal/adapter/repository/memory"
	"github.com/johnquangdev/meeting-tracker/internal/domain/repositories"
	"github.com/johnquangdev/meeting-tracker/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-tracker/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-tracker/internal/infrastructure/external/assemblyai"
	httpmw "github.com/johnquangdev/meeting-tracker/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-tracker/internal/infrastructure/storage"
	aiuse "github.com/johnquangdev/meeting-tracker/internal/usecase/ai"
	"github.com/johnquangdev/meeting-tracker/internal/usecase/cachekey"
	"github.com/johnquangdev/meeting-tracker/internal/usecase/dashboard"
	"github.com/johnquangdev/meeting-tracker/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-tracker/internal/usecase/task"
	pkgai "github.com/johnquangdev/meeting-tracker/pkg/ai"
	"github.com/johnquangdev/meeting-tracker/pkg/config"
	"github.com/johnquangdev/meeting-tracker/pkg/jwt"
	pkglogger "github.com/johnquangdev/meeting-tracker/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-tracker/pkg/validator"
)

// @title           Meeting Tracker API
// @version         1.0
// @description     Meetings, transcripts, AI summaries, tasks and the per-user dashboard.

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(httpmw.SecureHeaders())
	e.Use(httpmw.RateLimit(cfg.RateLimit, logger))
	e.Use(httpmw.Compression(cfg.Server.Environment))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Cookie", httpmw.NoCompressionHeader},
		AllowCredentials: true,
	}))

	log.Println("🔧 Initializing dependencies...")

	// Storage
	var (
		meetingRepo repositories.MeetingRepository
		taskRepo    repositories.TaskRepository
	)
	if cfg.Database.Driver == "memory" {
		log.Println("⚠️  Using in-memory storage, data is lost on restart")
		db := memory.NewDB()
		meetingRepo = memory.NewMeetingRepository(db)
		taskRepo = memory.NewTaskRepository(db)
	} else {
		log.Println("📦 Connecting to database...")
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.CloseDB(db)

		if cfg.Database.AutoMigrate {
			if cfg.IsProduction() {
				log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE and run cmd/migrate instead.")
			}
			log.Println("🔄 Applying migrations (development only) ...")
			n, err := database.Migrate(db, cfg.Database.Migrations, migrate.Up, 0)
			if err != nil {
				log.Fatalf("Failed to apply migrations: %v", err)
			}
			log.Printf("✅ Applied %d migrations", n)
		}

		meetingRepo = repository.NewMeetingRepository(db)
		taskRepo = repository.NewTaskRepository(db)
	}

	// Cache
	codec, err := cache.NewCodec(cfg.Cache.Codec)
	if err != nil {
		log.Fatalf("Invalid cache codec: %v", err)
	}
	var store cache.Store
	if cfg.Cache.Backend == "memory" {
		log.Println("📦 Using in-process cache")
		store = cache.NewMemoryStore(codec, cfg.Cache.CleanupPeriod)
	} else {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient, codec)
	}
	aside := cache.NewAside(store, logger)
	invalidator := cachekey.NewInvalidator(store, logger)

	// AI
	log.Println("🤖 Initializing AI components...")
	var completer aiuse.ChatCompleter
	if groq := pkgai.NewGroqClient(&cfg.Groq); groq.Configured() {
		completer = groq
	} else {
		log.Println("⚠️  GROQ_API_KEY not set, summaries are disabled")
	}
	summarizer := aiuse.NewGroqSummarizer(completer, cfg.Groq.MaxRetries, logger)

	meetingOpts := []meeting.Option{
		meeting.WithLogger(logger),
		meeting.WithCacheTTL(cfg.Cache.DefaultTTL),
		meeting.WithSummaryTTL(cfg.Cache.SummaryTTL),
	}
	if transcriber := assemblyai.NewTranscriber(cfg.Assembly.APIKey, cfg.Assembly.LanguageCode, logger); transcriber != nil {
		meetingOpts = append(meetingOpts, meeting.WithTranscriber(transcriber))
	} else {
		log.Println("⚠️  ASSEMBLYAI_API_KEY not set, transcription is disabled")
	}

	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to transcript storage...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		archive, err := storage.NewTranscriptArchive(ctx, &cfg.Storage)
		cancel()
		if err != nil {
			logger.Warn("storage.unavailable", zap.Error(err))
		} else {
			meetingOpts = append(meetingOpts, meeting.WithArchive(archive))
		}
	}

	// Services
	log.Println("⚙️  Initializing services...")
	meetingService := meeting.NewMeetingService(meetingRepo, summarizer, aside, invalidator, meetingOpts...)
	taskService := task.NewTaskService(taskRepo, meetingRepo, aside, invalidator, cfg.Cache.DefaultTTL, logger)
	dashboardService := dashboard.NewDashboardService(meetingRepo, taskRepo, aside, cfg.Cache.DefaultTTL, logger)

	// Auth
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry, cfg.JWT.Issuer)
	authEchoMW := httpmw.EchoAuth(jwtManager, logger)

	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(
		cfg,
		logger,
		authEchoMW,
		handler.NewDashboardHandler(dashboardService, logger),
		handler.NewMeetingHandler(meetingService, logger),
		handler.NewTaskHandler(taskService, logger),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
