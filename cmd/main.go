package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"claims-service/internal/adjudication"
	"claims-service/internal/ai/gemini"
	"claims-service/internal/config"
	"claims-service/internal/database/minio"
	"claims-service/internal/database/postgres"
	"claims-service/internal/database/redis"
	"claims-service/internal/event"
	"claims-service/internal/handlers"
	"claims-service/internal/policy"
	"claims-service/internal/repository"
	"claims-service/internal/services"

	"github.com/gofiber/fiber/v3"
)

func setupLogging() (*os.File, error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic: %v\n", r)
		}
	}()

	logDir := filepath.Join("/var", "log", "claims_service")
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
	slog.SetDefault(slog.New(slog.NewTextHandler(file, nil)))

	return file, nil
}

func loadPolicyTerms(path string) policy.Terms {
	if path == "" {
		log.Printf("No POLICY_TERMS_PATH set, using built-in policy terms")
		return policy.Default()
	}

	terms, err := policy.LoadFromFile(path)
	if err != nil {
		log.Fatalf("Failed to load policy terms from %s: %v", path, err)
	}
	log.Printf("Loaded policy terms %s from %s", terms.PolicyID, path)
	return terms
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.New()
	terms := loadPolicyTerms(cfg.PolicyTermsPath)

	log.Printf("Connecting to PostgreSQL with: host=%s, port=%s, user=%s, dbname=%s",
		cfg.PostgresCfg.Host, cfg.PostgresCfg.Port, cfg.PostgresCfg.Username, cfg.PostgresCfg.DBname)
	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		log.Printf("error connect to database: %s", err)
		go postgres.RetryConnectOnFailed(30*time.Second, &db, cfg.PostgresCfg)
	}

	redisClient, err := redis.NewClient(cfg.RedisCfg)
	if err != nil {
		log.Printf("Warning: Redis unavailable, dashboard caching disabled: %v", err)
		redisClient = nil
	}

	minioClient, err := minio.NewMinioClient(cfg.MinioCfg)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	geminiClient, err := gemini.NewGenAIClient(cfg.GeminiAPICfg.APIKey, cfg.GeminiAPICfg.FlashName, cfg.GeminiAPICfg.ProName)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	selector := gemini.NewClientSelector([]gemini.GeminiClient{*geminiClient})

	var publisher *event.ClaimPublisher
	rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
	if err != nil {
		log.Printf("Warning: RabbitMQ unavailable, claim events disabled: %v", err)
	} else {
		defer rabbitConn.Close()
		publisher, err = event.NewClaimPublisher(rabbitConn)
		if err != nil {
			log.Printf("Warning: failed to set up claim event publisher: %v", err)
			publisher = nil
		}
	}

	claimRepo := repository.NewClaimRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	engine := adjudication.NewEngine(terms)
	extractionService := services.NewExtractionService(selector)
	dashboardService := services.NewDashboardService(dashboardRepo, redisClient)
	claimService := services.NewClaimService(claimRepo, extractionService, minioClient, engine, publisher, dashboardService)

	app := fiber.New(fiber.Config{
		BodyLimit: 32 * 1024 * 1024,
	})
	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Claims service is healthy")
	})

	handlers.NewClaimHandler(claimService).Register(app)
	handlers.NewDashboardHandler(dashboardService).Register(app)

	log.Printf("Claims service listening on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
