package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/verdora/voicecart-server/adapters/catalog"
	"github.com/verdora/voicecart-server/adapters/llm"
	"github.com/verdora/voicecart-server/adapters/stt"
	"github.com/verdora/voicecart-server/adapters/tts"
	"github.com/verdora/voicecart-server/internal/api"
	"github.com/verdora/voicecart-server/usecase"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	ctx := context.Background()

	// Initialize provider adapters once; handles are reused across requests
	speechToText, err := stt.NewGoogleSpeechToText(ctx, stt.NewGoogleSpeechConfigFromEnv(), logger)
	if err != nil {
		logger.Fatal("failed to initialize speech-to-text", zap.Error(err))
	}
	defer speechToText.Close()

	productCatalog, err := catalog.NewAirtableCatalog(catalog.NewAirtableConfigFromEnv(), logger)
	if err != nil {
		logger.Fatal("failed to initialize product catalog", zap.Error(err))
	}

	conversationModel, err := llm.NewGeminiModel(ctx, llm.NewGeminiConfigFromEnv(), logger)
	if err != nil {
		logger.Fatal("failed to initialize conversation model", zap.Error(err))
	}

	textToSpeech, err := tts.NewElevenLabsTTS(tts.NewElevenLabsConfigFromEnv(), logger)
	if err != nil {
		logger.Fatal("failed to initialize text-to-speech", zap.Error(err))
	}

	responder := usecase.NewResponder(conversationModel, logger)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Initialize API routes
	api.InitRoutes(e, api.NewHandler(speechToText, productCatalog, responder, textToSpeech, logger))

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Voice storefront relay started", zap.String("port", port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
