// @title Notes Quiz API
// @version 1.0
// @description Generates interactive quizzes from uploaded study notes.
// @host localhost:8080
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"notes-quiz/internal/config"
	"notes-quiz/internal/extract"
	"notes-quiz/internal/handler"
	"notes-quiz/internal/llm"
	"notes-quiz/internal/logger"
	"notes-quiz/internal/middleware"
	"notes-quiz/internal/ocr"
	"notes-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	llmClient, err := llm.New(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	appLogger.Info("LLM client initialized",
		zap.String("model", cfg.LLM.Model),
		zap.String("base_url", cfg.LLM.BaseURL))

	ocrEngine, cleanup, err := buildOCREngine(cfg, llmClient)
	if err != nil {
		appLogger.Fatal("Failed to create OCR engine", zap.Error(err))
	}
	defer cleanup()
	appLogger.Info("OCR engine initialized", zap.String("engine", ocrEngine.Name()))

	dispatcher := extract.NewDispatcher(
		extract.NewPlainTextExtractor(),
		extract.NewImageExtractor(ocrEngine, cfg.Extract.OCRTimeout),
		extract.NewPDFExtractor(cfg.Extract.PDFEnabled, cfg.Extract.PDFMaxPages),
		cfg.Extract.Concurrency,
	)
	if !cfg.Extract.PDFEnabled {
		appLogger.Warn("PDF extraction is disabled by policy")
	}

	quizService := service.NewQuizService(dispatcher, llmClient, cfg.Extract.MaxPromptChars)
	quizHandler := handler.NewQuizHandler(quizService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestLogger())

	api := app.Group("/api")
	api.Get("/health", handler.Health)
	api.Post("/quiz/generate", quizHandler.GenerateQuiz)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		appLogger.Info("Starting server", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown failed", zap.Error(err))
	}
}

// buildOCREngine picks the configured OCR backend. The chat engine reuses
// the quiz model's chat client, so it needs no extra credentials.
func buildOCREngine(cfg *config.Config, llmClient *llm.Client) (ocr.Engine, func(), error) {
	switch cfg.Extract.OCREngine {
	case "chat":
		return ocr.NewChatEngine(llmClient.Model()), func() {}, nil
	case "vision", "":
		engine, err := ocr.NewVisionEngine(context.Background())
		if err != nil {
			return nil, nil, err
		}
		return engine, func() { _ = engine.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported OCR engine: %s", cfg.Extract.OCREngine)
	}
}
