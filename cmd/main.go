package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"configurator-service/internal/ai/gemini"
	"configurator-service/internal/catalog"
	"configurator-service/internal/config"
	"configurator-service/internal/database/minio"
	"configurator-service/internal/database/postgres"
	"configurator-service/internal/database/redis"
	"configurator-service/internal/event"
	"configurator-service/internal/handlers"
	"configurator-service/internal/repository"
	"configurator-service/internal/services"
	"configurator-service/internal/worker"

	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"
)

func setupLogging() (*os.File, error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic: %v\n", r)
		}
	}()

	logDir := filepath.Join("/byteberry", "log", "configurator_service")
	fmt.Println("Log directory:", logDir)
	err := os.MkdirAll(logDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment: %v", err)
	}

	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	if err := catalog.Validate(); err != nil {
		log.Fatalf("Catalog is inconsistent: %v", err)
	}

	cfg := config.New()
	log.Printf("Connecting to PostgreSQL with: host=%s, port=%s, user=%s, dbname=%s",
		cfg.PostgresCfg.Host, cfg.PostgresCfg.Port, cfg.PostgresCfg.Username, cfg.PostgresCfg.DBname)
	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		log.Printf("error connect to database: %s", err)
		go postgres.RetryConnectOnFailed(30*time.Second, &db, cfg.PostgresCfg)
	}

	redisClient, err := redis.NewRedisClient(cfg.RedisCfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Core pricing stack. The rate service never fails; everything below it
	// degrades instead.
	rateService := services.NewExchangeRateService(cfg.ExchangeRateCfg)
	calculator := services.NewPriceCalculator()

	// Optional AI client. Without a key the recommendation service falls
	// back to static prose.
	var geminiClient *gemini.GeminiClient
	if cfg.GeminiAPICfg.APIKey != "" {
		geminiClient, err = gemini.NewGenAIClient(cfg.GeminiAPICfg.APIKey, cfg.GeminiAPICfg.FlashName, cfg.GeminiAPICfg.ProName)
		if err != nil {
			log.Printf("Failed to initialize Gemini client, continuing without AI: %v", err)
			geminiClient = nil
		} else {
			defer geminiClient.Close()
		}
	}
	recommendationService := services.NewRecommendationService(geminiClient)

	// Optional document storage.
	var documentService *services.DocumentService
	minioClient, err := minio.NewMinioClient(cfg.MinioCfg)
	if err != nil {
		log.Printf("Failed to connect to MinIO, documents disabled: %v", err)
	} else {
		documentService = services.NewDocumentService(minioClient, calculator, recommendationService)
	}

	// Optional event publishing.
	var orderPublisher *event.OrderPublisher
	rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
	if err != nil {
		log.Printf("Failed to connect to RabbitMQ, events disabled: %v", err)
	} else {
		defer rabbitConn.Close()
		orderPublisher = event.NewOrderPublisher(rabbitConn)
	}

	// The repository reads through &db so the reconnect loop's new handle
	// is picked up without rewiring anything.
	orderRepository := repository.NewOrderRepository(&db)
	orderService := services.NewOrderService(orderRepository, rateService, calculator, orderPublisher, cfg)
	sessionService := services.NewSessionService(redisClient, rateService, calculator)

	app := fiber.New()
	app.Use(recoverer.New())
	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Configurator service is healthy")
	})

	handlers.NewCatalogHandler().Register(app)
	handlers.NewPricingHandler(rateService, calculator).Register(app)
	handlers.NewOrderHandler(orderService, documentService).Register(app)
	handlers.NewSessionHandler(sessionService).Register(app)
	handlers.NewRecommendationHandler(recommendationService).Register(app)

	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())
	defer cancelScheduler()
	scheduler := worker.NewJobScheduler("configurator", services.RateFreshnessWindow)
	scheduler.AddJob(worker.NewRateWarmJob(rateService))
	go scheduler.Run(schedulerCtx)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting configurator-service on port %s", cfg.Port)
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", cfg.Port)); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("Shutting down server...")
}
