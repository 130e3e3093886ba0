package api

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/verdora/voicecart-server/domain/repositories"
	"github.com/verdora/voicecart-server/usecase"
)

// User-visible failure messages are fixed per endpoint; the raw upstream
// error is only logged server-side.
const (
	errTranscriptionFailed = "Transcription failed"
	errSearchFailed        = "Product search failed"
	errAIResponseFailed    = "AI response failed"
	errTTSFailed           = "Text-to-speech failed"
)

// Handler bundles the process-lifetime provider adapters behind the HTTP
// endpoints. Each handler performs one outbound call; no handler calls
// another.
type Handler struct {
	stt       repositories.SpeechToText
	catalog   repositories.ProductCatalog
	responder *usecase.Responder
	tts       repositories.TextToSpeech
	logger    *zap.Logger
}

// NewHandler creates the API handler with its injected dependencies
func NewHandler(
	stt repositories.SpeechToText,
	catalog repositories.ProductCatalog,
	responder *usecase.Responder,
	tts repositories.TextToSpeech,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		stt:       stt,
		catalog:   catalog,
		responder: responder,
		tts:       tts,
		logger:    logger,
	}
}

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.Banner)
	e.GET("/api/health", h.Health)

	e.POST("/api/transcribe", h.Transcribe)
	e.POST("/api/search-products", h.SearchProducts)
	e.POST("/api/get-response", h.GetResponse)
	e.POST("/api/speak", h.Speak)
}

// Banner serves the liveness banner
func (h *Handler) Banner(c echo.Context) error {
	return c.String(http.StatusOK, "VoiceCart relay server is running")
}

// Health serves the liveness JSON
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Transcribe accepts a multipart audio upload and relays it to the
// speech-to-text provider. The file is buffered fully into memory; no size
// cap is enforced here.
func (h *Handler) Transcribe(c echo.Context) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		h.logger.Error("Missing audio upload", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: errTranscriptionFailed})
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open audio upload", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: errTranscriptionFailed})
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read audio upload", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: errTranscriptionFailed})
	}

	transcript, err := h.stt.Transcribe(c.Request().Context(), audio, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.logger.Error("Transcription relay failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: errTranscriptionFailed})
	}

	return c.JSON(http.StatusOK, TranscribeResponse{Transcript: transcript})
}

// SearchProducts translates the structured search request into a store
// filter and returns the normalized records.
func (h *Handler) SearchProducts(c echo.Context) error {
	var req SearchProductsRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("Failed to bind search request", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: errSearchFailed})
	}

	products, err := h.catalog.Search(c.Request().Context(), req.toQuery())
	if err != nil {
		h.logger.Error("Catalog search failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: errSearchFailed})
	}

	return c.JSON(http.StatusOK, SearchProductsResponse{Products: products})
}

// GetResponse builds a grounded prompt from the supplied catalog slice and
// conversation history and returns the model's reply with attributed
// products.
func (h *Handler) GetResponse(c echo.Context) error {
	var req GetResponseRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("Failed to bind conversation request", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: errAIResponseFailed})
	}

	response, err := h.responder.Respond(c.Request().Context(), req.UserMessage, req.ConversationHistory, req.AvailableProducts)
	if err != nil {
		h.logger.Error("Conversation responder failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: errAIResponseFailed})
	}

	return c.JSON(http.StatusOK, response)
}

// Speak relays the response text to the synthesis provider and returns the
// full audio buffer.
func (h *Handler) Speak(c echo.Context) error {
	var req SpeakRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("Failed to bind speak request", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: errTTSFailed})
	}

	audio, err := h.tts.Synthesize(c.Request().Context(), req.Text)
	if err != nil {
		h.logger.Error("Speech synthesis relay failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: errTTSFailed})
	}

	return c.Blob(http.StatusOK, "audio/mpeg", audio)
}
