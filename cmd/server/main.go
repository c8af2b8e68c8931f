package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/kolink/configs"
	"github.com/maheshrc27/kolink/internal/ai"
	"github.com/maheshrc27/kolink/internal/api/handlers"
	"github.com/maheshrc27/kolink/internal/api/middleware"
	"github.com/maheshrc27/kolink/internal/cache"
	"github.com/maheshrc27/kolink/internal/database"
	job "github.com/maheshrc27/kolink/internal/jobs"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/internal/queue"
	"github.com/maheshrc27/kolink/internal/repository"
	"github.com/maheshrc27/kolink/internal/service"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	slog.SetDefault(middleware.NewLogger(cfg.Env))

	ctx := context.Background()

	account := models.Account{
		Plan:     models.PlanFree,
		Credits:  models.PlanCredits[models.PlanFree],
		Level:    1,
		Language: cfg.DefaultLanguage,
		Timezone: cfg.DefaultTimezone,
	}

	var db *sql.DB
	var store *repository.Store
	if cfg.StoreDriver == config.StorePostgres {
		var err error
		db, err = database.Open(cfg.PostgresURI)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer closeDB(db)
		store = repository.NewPostgresStore(db)
	} else {
		store = repository.NewMemoryStore(account, cfg.SeedDemoData, time.Now())
		log.Println("Using in-memory store")
	}

	var statsCache cache.StatsCache
	var scheduler service.PostScheduler
	var redisConn asynq.RedisConnOpt
	if cfg.RedisURI != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURI)
		if err != nil {
			log.Fatalf("Redis is unreachable: %v", err)
		}
		defer redisClient.Close()
		statsCache = cache.NewStatsCache(redisClient, cfg.StatsCacheTTL)

		redisConn, err = asynq.ParseRedisURI(redisURI(cfg.RedisURI))
		if err != nil {
			log.Fatalf("Invalid REDIS_URI: %v", err)
		}
		client := asynq.NewClient(redisConn)
		defer client.Close()
		scheduler = queue.NewScheduler(client)
	} else {
		log.Println("REDIS_URI not set, statistics caching and go-live notifications are disabled")
	}

	var aiClient ai.Client
	gemini, err := ai.NewGeminiClient(ctx, ai.GeminiConfig{
		APIKey:    cfg.Gemini.APIKey,
		TextModel: cfg.Gemini.TextModel,
		FastModel: cfg.Gemini.FastModel,
		Timeout:   cfg.Gemini.Timeout,
	})
	switch {
	case err == nil:
		aiClient = gemini
	case errors.Is(err, ai.ErrNotConfigured):
		log.Println("GEMINI_API_KEY not set, AI features are disabled")
	default:
		log.Fatalf("Failed to create AI client: %v", err)
	}

	var storage service.StorageService
	if cfg.R2Enabled() {
		storage, err = service.NewR2Storage(ctx, cfg.R2)
		if err != nil {
			log.Fatalf("Failed to configure R2 storage: %v", err)
		}
	}

	accountService := service.NewAccountService(store.Account, store.Notifications, nil)
	personalizationService := service.NewPersonalizationService(store.Personalization, store.Account)
	postService := service.NewPostService(store.Posts, store.Account, accountService, storage, scheduler, statsCache, nil)
	notificationService := service.NewNotificationService(store.Notifications, store.Posts, store.Account, statsCache, nil)

	app := fiber.New(fiber.Config{
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    int(service.MaxImageSize) + 1024*1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	prom := fiberprometheus.New("kolink")
	prom.RegisterAt(app, "/metrics")

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(prom.Middleware)
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if db != nil {
			if err := db.PingContext(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	handlers.RegisterRoutes(api, handlers.Services{
		Posts:           postService,
		Statistics:      service.NewStatisticsService(store.Posts, store.Account, statsCache, nil),
		Generator:       service.NewGeneratorService(aiClient, accountService, postService, personalizationService, store, nil),
		Autopilot:       service.NewAutopilotService(aiClient, accountService, postService, personalizationService, store, nil),
		Knowledge:       service.NewKnowledgeService(store.Knowledge),
		Inspiration:     service.NewInspirationService(store.Inspiration),
		Personalization: personalizationService,
		Accounts:        accountService,
		Notifications:   notificationService,
	})

	// cron jobs
	refillJob := job.NewCreditRefillJob(accountService)

	c := cron.New()
	if err := c.AddFunc(cfg.CreditRefillSpec, refillJob.RefillCredits); err != nil {
		log.Fatalf("Invalid CREDIT_REFILL_SPEC: %v", err)
	}
	c.Start()
	defer c.Stop()

	if redisConn != nil {
		worker := queue.NewQueue(notificationService)

		go func() {
			server := asynq.NewServer(redisConn, asynq.Config{
				Concurrency: 10,
			})

			mux := asynq.NewServeMux()
			worker.Register(mux)

			log.Println("Starting the Asynq server...")
			if err := server.Run(mux); err != nil {
				log.Fatalf("Could not start Asynq server: %v", err)
			}
		}()
	}

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app)
}

// redisURI lets REDIS_URI be a bare host:port.
func redisURI(uri string) string {
	if strings.Contains(uri, "://") {
		return uri
	}
	return "redis://" + uri
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

// gracefulShutdown blocks until SIGINT or SIGTERM, then stops the HTTP server.
// Deferred closers in main release the database and Redis afterwards.
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}
