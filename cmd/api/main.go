// @title StudyByte API
// @version 1.0
// @description Content analysis and quiz generation for uploaded study materials.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "studybyte/cmd/api/docs"
	"studybyte/internal/adapter"
	"studybyte/internal/adapter/llm"
	"studybyte/internal/cache"
	"studybyte/internal/config"
	"studybyte/internal/database"
	"studybyte/internal/domain"
	"studybyte/internal/handler"
	"studybyte/internal/logger"
	"studybyte/internal/middleware"
	"studybyte/internal/repository"
	"studybyte/internal/service"
	"studybyte/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Logger)
	defer appLogger.Sync()

	ctx := context.Background()

	// Each collaborator below is optional. Interfaces stay untyped nil when
	// the matching section of the config is empty.
	var analyzer domain.ContentAnalyzer
	var sectionAnalyzer domain.SectionAnalyzer
	if cfg.LLM.Enabled() {
		model, err := llm.NewModel(ctx, cfg.LLM)
		if err != nil {
			appLogger.Fatal("Failed to create LLM client", zap.Error(err))
		}
		contentAnalyzer := llm.NewContentAnalyzer(model, cfg.LLM.Timeout, cfg.LLM.Temperature, appLogger)
		analyzer = contentAnalyzer
		sectionAnalyzer = contentAnalyzer
		appLogger.Info("LLM analyzer initialized", zap.String("provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.Model))
	} else {
		appLogger.Info("No LLM provider configured, serving template analyses only")
	}

	var cacheBackend domain.Cache
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheBackend = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis")
	}

	var materialRepository domain.MaterialRepository
	if cfg.DB.Enabled() {
		db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		materialRepository = repository.NewSQLXMaterialRepository(db)
		appLogger.Info("Material store initialized")
	}

	// Initialize services
	analysisCache := service.NewAnalysisCacheService(cacheBackend, cfg.Redis.AnalysisTTL, appLogger)
	analysisService := service.NewAnalysisService(analyzer, sectionAnalyzer, analysisCache, appLogger)
	quizService := service.NewQuizService(materialRepository, cfg.Quiz, appLogger)
	materialService := service.NewMaterialService(materialRepository, analysisService, cfg.Upload, appLogger)

	validator := validation.NewValidator(cfg.Quiz.MaxQuestions)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(appLogger),
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(appLogger))
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Handlers{
		Quiz:       handler.NewQuizHandler(quizService, validator),
		Analysis:   handler.NewAnalysisHandler(analysisService, validator),
		Material:   handler.NewMaterialHandler(materialService, validator, cfg.Upload.MaxBytes, appLogger),
		Status:     handler.NewStatusHandler(analysisService, materialService, cacheBackend, appLogger),
		Validation: middleware.NewValidationMiddleware(validator),
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
