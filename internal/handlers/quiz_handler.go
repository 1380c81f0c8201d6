// internal/handlers/quiz_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/service"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/webutil"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		service: s,
		logger:  logger,
	}
}

// GetLevels はレベル一覧を返すハンドラ
func (h *QuizHandler) GetLevels(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLevels"))

	levels, err := h.service.ListLevels(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.LevelsResponse{Levels: levels}, logger)
}

// GetWord は次の出題単語を返すハンドラ
func (h *QuizHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	level := chi.URLParam(r, "level")
	logger := h.logger.With(slog.String("handler", "GetWord"), slog.String("level", level))

	retry, err := webutil.QueryBool(r, "retry_incorrect", false)
	if err != nil {
		logger.Warn("Invalid retry_incorrect parameter", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.NextWord(r.Context(), level, retry)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetVocabulary はレベルの単語帳全体を返すハンドラ。未知のレベルは空の配列。
func (h *QuizHandler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	level := chi.URLParam(r, "level")
	logger := h.logger.With(slog.String("handler", "GetVocabulary"), slog.String("level", level))

	entries, err := h.service.GetVocabulary(r.Context(), level)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if entries == nil {
		entries = []model.VocabEntry{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

// GetReviewList は状態付きの単語一覧を返すハンドラ (?status=all|correct|incorrect)
func (h *QuizHandler) GetReviewList(w http.ResponseWriter, r *http.Request) {
	level := chi.URLParam(r, "level")
	logger := h.logger.With(slog.String("handler", "GetReviewList"), slog.String("level", level))

	filter, err := model.ParseReviewFilter(r.URL.Query().Get("status"))
	if err != nil {
		appErr := model.NewAppError("INVALID_QUERY_PARAM", "statusはall、correct、incorrectのいずれかを指定してください。", "status", err)
		webutil.HandleError(w, logger, appErr)
		return
	}

	items, err := h.service.ReviewList(r.Context(), level, filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if items == nil {
		items = []model.ReviewItem{}
	}
	logger.Info("Review list returned", slog.Int("count", len(items)), slog.String("filter", string(filter)))
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// ReloadVocabulary は単語帳のキャッシュを破棄するハンドラ (?level= 省略時は全レベル)
func (h *QuizHandler) ReloadVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ReloadVocabulary"))

	if err := h.service.ReloadVocabulary(r.Context(), r.URL.Query().Get("level")); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PostAnswer は回答を採点して記録するハンドラ
func (h *QuizHandler) PostAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAnswer"))

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid answer request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
