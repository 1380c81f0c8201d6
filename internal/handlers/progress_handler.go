// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/service"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// GetProgress は進捗マップ全体を返すハンドラ
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgress"))

	progress, err := h.service.GetProgress(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if progress == nil {
		progress = model.Progress{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// PostProgress は1単語の状態を記録するハンドラ
func (h *ProgressHandler) PostProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostProgress"))

	var req model.ProgressUpdateRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid progress request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.RecordProgress(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
