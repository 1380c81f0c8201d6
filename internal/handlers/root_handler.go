// internal/handlers/root_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/config"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/service"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/webutil"
)

type RootHandler struct {
	progress service.ProgressService
	storage  string
	logger   *slog.Logger
}

func NewRootHandler(progress service.ProgressService, storage string, logger *slog.Logger) *RootHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RootHandler{progress: progress, storage: storage, logger: logger}
}

func (h *RootHandler) Banner(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithJSON(w, http.StatusOK, model.BannerResponse{
		Message: config.AppName + " is running",
		Version: config.AppVersion,
	}, h.logger)
}

// Health は進捗ストアを読めるかどうかで判定します。
func (h *RootHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Health"))

	if _, err := h.progress.GetProgress(r.Context()); err != nil {
		logger.Error("Health check failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.HealthResponse{Status: "ok", Storage: h.storage}, logger)
}
